package domain

import (
	"strings"

	"github.com/klearr/customs-calculator/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransportMode is the mode a shipment travelled by. It selects the insurance
// rate applied during CIF valuation.
type TransportMode string

const (
	ModeAir   TransportMode = "air"
	ModeOcean TransportMode = "ocean"
	ModeSea   TransportMode = "sea" // alias accepted by the intake forms
)

var insuranceRates = map[TransportMode]decimal.Decimal{
	ModeAir:   decimal.NewFromFloat(0.01),
	ModeOcean: decimal.NewFromFloat(0.015),
	ModeSea:   decimal.NewFromFloat(0.015),
}

// ParseTransportMode validates a transport mode string. Anything outside the
// recognized enumeration is a hard error; there is no zero-insurance fallback.
func ParseTransportMode(mode string) (TransportMode, error) {
	m := TransportMode(strings.ToLower(strings.TrimSpace(mode)))
	if _, ok := insuranceRates[m]; !ok {
		return "", apperrors.ErrInvalidTransportMode
	}
	return m, nil
}

// InsuranceRate returns the fraction of the CIF sum charged as estimated
// insurance for this mode.
func (m TransportMode) InsuranceRate() decimal.Decimal {
	return insuranceRates[m]
}

// MixedCurrency tags a CIF sum whose product and freight components were
// priced in different currencies.
const MixedCurrency = "Mixed"

// CIFValuation is the customs valuation of one shipment in three currency
// views: the original pricing currency (or currencies), JMD, and USD. It is
// computed once per request and never mutated.
type CIFValuation struct {
	CIFOriginal         decimal.Decimal `json:"cifOriginal"`
	CIFOriginalCurrency string          `json:"cifOriginalCurrency"` // product currency, or "Mixed"
	CIFJMD              decimal.Decimal `json:"cifJmd"`
	CIFUSD              decimal.Decimal `json:"cifUsd"`

	ProductPriceOriginal   decimal.Decimal `json:"productPriceOriginal"`
	ProductCurrency        string          `json:"productCurrency"`
	FreightChargesOriginal decimal.Decimal `json:"freightChargesOriginal"`
	FreightCurrency        string          `json:"freightCurrency"`

	ProductPriceJMD   decimal.Decimal `json:"productPriceJmd"`
	FreightChargesJMD decimal.Decimal `json:"freightChargesJmd"`
	ProductPriceUSD   decimal.Decimal `json:"productPriceUsd"`
	FreightChargesUSD decimal.Decimal `json:"freightChargesUsd"`

	InsuranceOriginal decimal.Decimal `json:"insuranceOriginalCurrency"`
	InsuranceJMD      decimal.Decimal `json:"insuranceJmd"`

	ModeOfTransportation TransportMode `json:"modeOfTransportation"`

	// ExchangeRates snapshots every selling rate consulted for this
	// valuation, keyed by ISO code, so a stored result stays auditable after
	// the rate table moves on.
	ExchangeRates map[string]decimal.Decimal `json:"exchangeRates"`
}
