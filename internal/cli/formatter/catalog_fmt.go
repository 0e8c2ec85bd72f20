package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/itinera/internal/domain"
)

// FormatAccommodations renders the lodging list as a table.
func FormatAccommodations(accs []*domain.Accommodation) string {
	if len(accs) == 0 {
		return Dim("Nenhuma hospedagem no catálogo.") + "\n"
	}

	rows := make([][]string, 0, len(accs))
	for _, a := range accs {
		rows = append(rows, []string{a.ID, a.Name, a.Location, OrDash(a.Type)})
	}

	var b strings.Builder
	b.WriteString(Header("Hospedagens") + "\n\n")
	b.WriteString(RenderTable([]string{"ID", "NOME", "LOCAL", "TIPO"}, rows))
	return b.String()
}

// FormatActivities renders activities grouped by category, in category
// display order. Empty categories are skipped.
func FormatActivities(acts []*domain.Activity) string {
	if len(acts) == 0 {
		return Dim("Nenhuma atividade no catálogo.") + "\n"
	}

	byCategory := make(map[domain.ActivityCategory][]*domain.Activity)
	for _, a := range acts {
		byCategory[a.Category] = append(byCategory[a.Category], a)
	}

	var b strings.Builder
	b.WriteString(Header("Atividades") + "\n")
	for _, c := range domain.Categories {
		group := byCategory[c]
		if len(group) == 0 {
			continue
		}

		rows := make([][]string, 0, len(group))
		for _, a := range group {
			deposit := "--"
			if a.Deposit != nil {
				deposit = a.Deposit.Adult.String()
			}
			rows = append(rows, []string{
				a.ID,
				a.Name,
				UnitBadge(a.Type),
				a.Pricing.Adult.String(),
				a.Pricing.Child.String(),
				deposit,
			})
		}

		b.WriteString("\n" + CategoryHeading(c, len(group)) + "\n")
		b.WriteString(RenderTable(
			[]string{"ID", "NOME", "TIPO", "ADULTO", "CRIANÇA", "PRÉ-RESERVA"},
			rows, AlignRight(3, 4, 5)))
	}
	return b.String()
}

// FormatActivityDetail renders every catalog field of one activity.
func FormatActivityDetail(a *domain.Activity) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", Bold(a.Name), Dim("("+a.ID+")"))
	fmt.Fprintf(&b, "%s %s · %s\n", a.Category.Icon(), a.Category.Label(), UnitBadge(a.Type))
	if a.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", a.Description)
	}
	b.WriteString("\n")

	field := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", Dim(fmt.Sprintf("%-13s", label+":")), value)
	}
	field("Duração", OrDash(a.Duration))
	if a.Schedule != "" {
		field("Horário", a.Schedule)
	}
	field("Adulto", a.Pricing.Adult.String())
	field("Criança", a.Pricing.Child.String())
	field("Bebê", a.Pricing.Infant.String())
	if a.Deposit != nil {
		field("Pré-reserva", fmt.Sprintf("%s adulto, %s criança, %s bebê",
			a.Deposit.Adult, a.Deposit.Child, a.Deposit.InfantOrZero()))
	}
	field("Grupo", fmt.Sprintf("mín. %s, máx. %s",
		pluralize(a.MinAdults, "adulto", "adultos"), pluralize(a.MaxCapacity, "pessoa", "pessoas")))
	if a.AdultsOnly {
		field("Restrição", StyleRed.Render("somente adultos"))
	}
	if len(a.Includes) > 0 {
		field("Inclui", strings.Join(a.Includes, ", "))
	}
	if len(a.Excludes) > 0 {
		field("Não inclui", strings.Join(a.Excludes, ", "))
	}
	if len(a.Requirements) > 0 {
		field("Requisitos", strings.Join(a.Requirements, ", "))
	}
	return b.String()
}

// FormatAccommodationDetail renders one lodging.
func FormatAccommodationDetail(a *domain.Accommodation) string {
	return fmt.Sprintf("%s %s\n🏨 %s · %s\n", Bold(a.Name), Dim("("+a.ID+")"), a.Location, OrDash(a.Type))
}

// FormatImport reports a finished catalog import.
func FormatImport(imp *domain.CatalogImport) string {
	return fmt.Sprintf("%s %s e %s importadas de %s %s\n",
		StyleGreen.Render("✔"),
		pluralize(imp.AccommodationCount, "hospedagem", "hospedagens"),
		pluralize(imp.ActivityCount, "atividade", "atividades"),
		imp.Source,
		Dim("["+imp.ID+"]"))
}
