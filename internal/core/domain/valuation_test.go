package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klearr/customs-calculator/internal/apperrors"
	"github.com/klearr/customs-calculator/internal/core/domain"
)

func TestParseTransportMode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantMode domain.TransportMode
		wantErr  bool
	}{
		{name: "air", input: "air", wantMode: domain.ModeAir},
		{name: "ocean", input: "ocean", wantMode: domain.ModeOcean},
		{name: "sea alias", input: "sea", wantMode: domain.ModeSea},
		{name: "mixed case with whitespace", input: "  Air ", wantMode: domain.ModeAir},
		{name: "land rejected", input: "land", wantErr: true},
		{name: "rail rejected", input: "rail", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, err := domain.ParseTransportMode(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidTransportMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMode, mode)
		})
	}
}

func TestTransportMode_InsuranceRate(t *testing.T) {
	assert.True(t, domain.ModeAir.InsuranceRate().Equal(decimal.NewFromFloat(0.01)))
	assert.True(t, domain.ModeOcean.InsuranceRate().Equal(decimal.NewFromFloat(0.015)))
	assert.True(t, domain.ModeSea.InsuranceRate().Equal(decimal.NewFromFloat(0.015)))
}
