package domain

import (
	"math"

	"github.com/dustin/go-humanize"
)

// Money is an amount in centavos. All pricing arithmetic happens on this
// integer representation; only formatting converts to a decimal.
type Money int64

// CurrencySymbol is followed by a no-break space, as pt-BR formatting does.
const CurrencySymbol = "R$\u00a0"

// MoneyFromReais rounds a decimal amount to the nearest centavo.
func MoneyFromReais(v float64) Money {
	return Money(math.Round(v * 100))
}

// Reais returns the amount as a decimal number of reais.
func (m Money) Reais() float64 {
	return float64(m) / 100
}

// Times multiplies a unit amount by a head count.
func (m Money) Times(n int) Money {
	return m * Money(n)
}

func (m Money) String() string {
	return FormatBRL(m)
}

// FormatBRL renders an amount as "R$ 1.234,56": dot thousands separator,
// comma decimal separator, always two decimals.
func FormatBRL(m Money) string {
	if m < 0 {
		return "-" + CurrencySymbol + humanize.FormatFloat("#.###,##", (-m).Reais())
	}
	return CurrencySymbol + humanize.FormatFloat("#.###,##", m.Reais())
}

// MoneyPtr returns a pointer to m, for optional amounts.
func MoneyPtr(m Money) *Money {
	return &m
}
