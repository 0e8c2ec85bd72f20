package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/itinera/internal/contract"
	"github.com/alexanderramin/itinera/internal/itinerary"
	"github.com/alexanderramin/itinera/internal/render"
)

// FormatItineraryView renders the per-day overview of a trip: one row per
// day with its activities and totals, followed by the trip totals.
func FormatItineraryView(it *itinerary.TripItinerary) string {
	var b strings.Builder

	b.WriteString(Header("Roteiro") + "\n")
	fmt.Fprintf(&b, "%s · %s · %s\n",
		it.Accommodation.Name,
		pluralize(it.Dates.Days, "dia", "dias"),
		OrDash(render.PeopleSummary(it.People)))
	fmt.Fprintf(&b, "%s\n\n", Dim(fmt.Sprintf("%s a %s",
		it.Dates.Arrival.Format("02/01/2006"), it.Dates.Departure.Format("02/01/2006"))))

	rows := make([][]string, 0, len(it.Days))
	for _, day := range it.Days {
		activities := Dim("dia livre")
		total, deposit := "--", "--"
		if !day.IsFree() {
			names := make([]string, len(day.Activities))
			for i, sel := range day.Activities {
				names[i] = sel.Activity.Name
			}
			activities = strings.Join(names, ", ")
			total = day.Pricing.Total.String()
			if day.Pricing.HasDeposit() {
				deposit = day.Pricing.Deposit.String()
			}
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", day.Day),
			ShortDate(day.Date),
			activities,
			total,
			deposit,
		})
	}
	b.WriteString(RenderTable([]string{"DIA", "DATA", "ATIVIDADES", "TOTAL", "PRÉ-RESERVA"}, rows, AlignRight(0, 3, 4)))

	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", Bold(fmt.Sprintf("%-17s", "Total da viagem:")), it.TotalPricing.Total)
	if it.TotalPricing.HasDeposit() {
		fmt.Fprintf(&b, "%s %s\n", Dim(fmt.Sprintf("%-17s", "Pré-reserva:")), *it.TotalPricing.Deposit)
		fmt.Fprintf(&b, "%s %s\n", Dim("A pagar nos dias:"), *it.TotalPricing.Remaining)
	}
	return b.String()
}

// FormatRejected lists requested activities left out of the plan.
func FormatRejected(rejected []contract.RejectedSelection) string {
	if len(rejected) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", StyleYellow.Render(fmt.Sprintf("⚠ %s fora do roteiro:",
		pluralize(len(rejected), "seleção ficou", "seleções ficaram"))))
	for _, r := range rejected {
		fmt.Fprintf(&b, "  dia %d  %s  %s\n", r.Day, r.ActivityID, Dim(r.Reason))
	}
	return b.String()
}
