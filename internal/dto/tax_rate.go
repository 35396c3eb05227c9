package dto

import (
	"github.com/klearr/customs-calculator/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TaxRateResponse is the API shape of one tariff schedule entry.
type TaxRateResponse struct {
	HSCode        string          `json:"hsCode"`
	TaxID         string          `json:"taxId"`
	Rate          decimal.Decimal `json:"rate"`
	EffectiveRate decimal.Decimal `json:"effectiveRate"`
}

// ToTaxRateResponse converts a schedule entry, attaching the normalized
// fractional rate alongside the raw one.
func ToTaxRateResponse(r *domain.TaxRate, effective decimal.Decimal) TaxRateResponse {
	return TaxRateResponse{
		HSCode:        r.HSCode,
		TaxID:         r.TaxID,
		Rate:          r.Rate,
		EffectiveRate: effective,
	}
}
