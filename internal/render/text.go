package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/alexanderramin/itinera/internal/itinerary"
	"github.com/alexanderramin/itinera/internal/pricing"
)

const (
	dayMonthLayout = "02/01"
	stampLayout    = "02/01/2006 15:04"
)

// GeneralNotes is the fixed disclaimer block closing every summary.
var GeneralNotes = []string{
	"Valores por pessoa conforme faixa etária",
	"Sem taxas extras de serviço",
	"Sujeito à disponibilidade no momento da reserva",
	"Levar protetor solar, chapéu e água",
	"Horários podem variar conforme condições climáticas",
}

const callToAction = "📱 Entre em contato para confirmar sua reserva!"

// Text renders the shareable plain-text summary of an itinerary. The output
// depends only on the itinerary and generatedAt, which is the sole clock
// reading in the text.
func Text(it *itinerary.TripItinerary, generatedAt time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🗺️ ROTEIRO RESUMIDO — %s a %s (%s)\n",
		it.Dates.Arrival.Format(dayMonthLayout),
		it.Dates.Departure.Format(dayMonthLayout),
		pluralDays(it.Dates.Days))
	fmt.Fprintf(&b, "🏨 Hospedagem: %s\n", it.Accommodation.Name)
	fmt.Fprintf(&b, "👥 Pessoas: %s\n\n", PeopleSummary(it.People))

	for _, day := range it.Days {
		writeDay(&b, day)
	}

	fmt.Fprintf(&b, "💰 TOTAL DA VIAGEM: %s\n", it.TotalPricing.Total)
	if it.TotalPricing.HasDeposit() {
		fmt.Fprintf(&b, "📋 Pré-reserva total: %s\n", *it.TotalPricing.Deposit)
		fmt.Fprintf(&b, "💳 A pagar nos dias: %s\n", *it.TotalPricing.Remaining)
	}

	b.WriteString("\n📌 Observações gerais:\n")
	for _, note := range GeneralNotes {
		fmt.Fprintf(&b, "• %s\n", note)
	}
	b.WriteString("\n")

	b.WriteString(callToAction + "\n")
	fmt.Fprintf(&b, "Roteiro gerado em %s", generatedAt.Format(stampLayout))

	return b.String()
}

func writeDay(b *strings.Builder, day itinerary.DayItinerary) {
	fmt.Fprintf(b, "📅 DIA %d — %s\n", day.Day, day.Date.Format(dayMonthLayout))

	if day.IsFree() {
		b.WriteString("• Dia livre\n\n")
		return
	}

	for _, sel := range day.Activities {
		writeActivity(b, sel.Activity)
	}

	fmt.Fprintf(b, "💰 Total do dia: %s\n", day.Pricing.Total)
	if day.Pricing.HasDeposit() {
		fmt.Fprintf(b, "📋 Pré-reserva: %s\n", *day.Pricing.Deposit)
		fmt.Fprintf(b, "💳 No dia: %s\n", *day.Pricing.Remaining)
	}
	b.WriteString("\n")
}

func writeActivity(b *strings.Builder, a domain.Activity) {
	fmt.Fprintf(b, "🎯 %s\n", a.Name)
	if a.Schedule != "" {
		fmt.Fprintf(b, "🕐 %s\n", a.Schedule)
	}
	if a.Duration != "" {
		fmt.Fprintf(b, "⏱️ Duração: %s\n", a.Duration)
	}
	if len(a.Includes) > 0 {
		fmt.Fprintf(b, "✅ Inclui: %s\n", strings.Join(a.Includes, ", "))
	}
	if len(a.Excludes) > 0 {
		fmt.Fprintf(b, "❌ Não inclui: %s\n", strings.Join(a.Excludes, ", "))
	}
	if len(a.Requirements) > 0 {
		fmt.Fprintf(b, "⚠️ Requisitos: %s\n", strings.Join(a.Requirements, ", "))
	}
}

// PeopleSummary renders a roster as "2 ADU + 1 +60 + 2 CHD (5, 8 anos) + 1 INF",
// skipping empty categories.
func PeopleSummary(roster domain.Roster) string {
	c := roster.Counts()

	var parts []string
	if c.Adults > 0 {
		parts = append(parts, fmt.Sprintf("%d ADU", c.Adults))
	}
	if c.Seniors > 0 {
		parts = append(parts, fmt.Sprintf("%d +60", c.Seniors))
	}
	if c.Children > 0 {
		ages := roster.AgesOf(domain.TravelerChild)
		strs := make([]string, len(ages))
		for i, a := range ages {
			strs[i] = strconv.Itoa(a)
		}
		parts = append(parts, fmt.Sprintf("%d CHD (%s anos)", c.Children, strings.Join(strs, ", ")))
	}
	if c.Infants > 0 {
		parts = append(parts, fmt.Sprintf("%d INF", c.Infants))
	}
	return strings.Join(parts, " + ")
}

// ActivitySummary is the short card text for one activity and roster.
func ActivitySummary(a domain.Activity, roster domain.Roster) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", a.Name)
	fmt.Fprintf(&b, "👥 %s\n", PeopleSummary(roster))
	fmt.Fprintf(&b, "⏱️ %s\n", a.Duration)
	if a.Schedule != "" {
		fmt.Fprintf(&b, "🕐 %s\n", a.Schedule)
	}
	return b.String()
}

// PricingPreview is the quick total with the deposit split when present.
func PricingPreview(p pricing.Breakdown) string {
	s := fmt.Sprintf("💰 Total: %s", p.Total)
	if p.HasDeposit() {
		s += fmt.Sprintf("\n📋 Pré-reserva: %s", *p.Deposit)
		s += fmt.Sprintf("\n💳 No local: %s", *p.Remaining)
	}
	return s
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 dia"
	}
	return fmt.Sprintf("%d dias", n)
}
