package cli

import (
	"testing"

	"github.com/alexanderramin/itinera/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayFlag_Set(t *testing.T) {
	var f dayFlag
	require.NoError(t, f.Set("1=trancoso_dia"))
	require.NoError(t, f.Set("3= recife_fora , centro_historico_noite"))
	require.NoError(t, f.Set("1=transfer_aeroporto"))

	assert.Equal(t, []contract.DaySelection{
		{Day: 1, ActivityIDs: []string{"trancoso_dia", "transfer_aeroporto"}},
		{Day: 3, ActivityIDs: []string{"recife_fora", "centro_historico_noite"}},
	}, f.days)
	assert.Equal(t, "1=trancoso_dia,transfer_aeroporto 3=recife_fora,centro_historico_noite", f.String())
	assert.Equal(t, "day=ids", f.Type())
}

func TestDayFlag_Invalid(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"trancoso_dia", "expected N=activity"},
		{"0=trancoso_dia", "invalid day"},
		{"dois=trancoso_dia", "invalid day"},
		{"2=", "lists no activities"},
		{"2= , ", "lists no activities"},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			var f dayFlag
			err := f.Set(tt.value)
			assert.ErrorContains(t, err, tt.want)
			assert.Empty(t, f.days)
		})
	}
}
