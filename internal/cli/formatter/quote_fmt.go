package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/itinera/internal/contract"
	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/alexanderramin/itinera/internal/pricing"
	"github.com/alexanderramin/itinera/internal/render"
)

// FormatQuote renders the price split and booking verdict for one activity.
func FormatQuote(q *contract.QuoteResponse) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", Bold(q.Activity.Name), Dim("("+q.Activity.ID+")"))
	fmt.Fprintf(&b, "👥 %s\n\n", OrDash(render.PeopleSummary(q.Roster)))

	b.WriteString(RenderTable([]string{"CATEGORIA", "QTD", "VALOR"}, quoteRows(q), AlignRight(1, 2)))
	b.WriteString("\n")
	b.WriteString(render.PricingPreview(q.Pricing) + "\n\n")

	b.WriteString(EligibilityIndicator(q.Validation.Valid) + "\n")
	for _, msg := range q.Validation.Messages() {
		fmt.Fprintf(&b, "  %s %s\n", StyleRed.Render("✖"), msg)
	}
	return b.String()
}

func quoteRows(q *contract.QuoteResponse) [][]string {
	c := q.Roster.Counts()
	type line struct {
		label  string
		count  int
		amount domain.Money
	}
	lines := []line{
		{"Adultos", c.Adults, adultShare(q.Pricing, c, c.Adults)},
		{"Seniores (+60)", c.Seniors, adultShare(q.Pricing, c, c.Seniors)},
		{"Crianças", c.Children, q.Pricing.Children},
		{"Bebês", c.Infants, q.Pricing.Infants},
	}

	var rows [][]string
	for _, l := range lines {
		if l.count == 0 {
			continue
		}
		rows = append(rows, []string{l.label, strconv.Itoa(l.count), l.amount.String()})
	}
	return rows
}

// adultShare splits the adult subtotal between plain adults and seniors,
// who are billed at the same rate.
func adultShare(p pricing.Breakdown, c domain.RosterCounts, n int) domain.Money {
	billable := c.BillableAdults()
	if billable == 0 {
		return 0
	}
	return p.Adults / domain.Money(billable) * domain.Money(n)
}
