package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		in   Money
		want string
	}{
		{0, "R$\u00a00,00"},
		{7, "R$\u00a00,07"},
		{15000, "R$\u00a0150,00"},
		{123456, "R$\u00a01.234,56"},
		{123456789, "R$\u00a01.234.567,89"},
		{-2550, "-R$\u00a025,50"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBRL(tt.in))
			assert.Equal(t, tt.want, tt.in.String())
		})
	}
}

func TestMoneyFromReais_RoundsToCentavos(t *testing.T) {
	assert.Equal(t, Money(15000), MoneyFromReais(150))
	assert.Equal(t, Money(9990), MoneyFromReais(99.9))
	assert.Equal(t, Money(1), MoneyFromReais(0.005))
	assert.Equal(t, Money(-1), MoneyFromReais(-0.005))
}

func TestMoney_Times(t *testing.T) {
	assert.Equal(t, Money(45000), Money(15000).Times(3))
	assert.Zero(t, Money(15000).Times(0))
}
