package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klearr/customs-calculator/internal/apperrors"
	"github.com/klearr/customs-calculator/internal/core/domain"
)

func TestCurrencyTable_ResolveCode(t *testing.T) {
	table := domain.DefaultCurrencyTable()

	tests := []struct {
		name       string
		identifier string
		wantCode   string
		wantErr    bool
	}{
		{name: "iso code", identifier: "USD", wantCode: "USD"},
		{name: "iso code lower case", identifier: "usd", wantCode: "USD"},
		{name: "iso code with whitespace", identifier: "  GBP ", wantCode: "GBP"},
		{name: "published name", identifier: "U.S. DOLLAR", wantCode: "USD"},
		{name: "published name lower case", identifier: "canadian dollar", wantCode: "CAD"},
		{name: "name fragment", identifier: "CANADIAN", wantCode: "CAD"},
		{name: "base currency", identifier: "JMD", wantCode: "JMD"},
		{name: "unknown identifier", identifier: "ZZZ", wantErr: true},
		{name: "empty identifier", identifier: "", wantErr: true},
		{name: "blank identifier", identifier: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := table.ResolveCode(tt.identifier)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrUnknownCurrency)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestCurrencyTable_NameFor(t *testing.T) {
	table := domain.DefaultCurrencyTable()

	name, ok := table.NameFor("usd")
	assert.True(t, ok)
	assert.Equal(t, "U.S. DOLLAR", name)

	_, ok = table.NameFor("ZZZ")
	assert.False(t, ok)
}

func TestNewCurrencyTable_IgnoresDuplicatesAndBlanks(t *testing.T) {
	table := domain.NewCurrencyTable([]domain.Currency{
		{Code: "USD", Name: "U.S. DOLLAR"},
		{Code: "USD", Name: "UNITED STATES DOLLAR"}, // later duplicate code ignored
		{Code: "", Name: "NAMELESS"},
		{Code: "XXX", Name: ""},
	})

	assert.Equal(t, 1, table.Len())

	name, ok := table.NameFor("USD")
	assert.True(t, ok)
	assert.Equal(t, "U.S. DOLLAR", name)
}
