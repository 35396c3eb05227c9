package mapping

import (
	"github.com/klearr/customs-calculator/internal/core/domain"
	"github.com/klearr/customs-calculator/internal/models"
)

// ToDomainTaxRate converts a database TaxRate model to its domain representation.
func ToDomainTaxRate(m models.TaxRate) domain.TaxRate {
	return domain.TaxRate{
		HSCode: m.HSCode,
		TaxID:  m.TaxID,
		Rate:   m.Rate,
	}
}

// ToModelTaxRate converts a domain TaxRate to its database model.
func ToModelTaxRate(d domain.TaxRate) models.TaxRate {
	return models.TaxRate{
		HSCode: d.HSCode,
		TaxID:  d.TaxID,
		Rate:   d.Rate,
	}
}

// ToDomainTaxRates converts a slice of TaxRate models.
func ToDomainTaxRates(ms []models.TaxRate) []domain.TaxRate {
	out := make([]domain.TaxRate, len(ms))
	for i, m := range ms {
		out[i] = ToDomainTaxRate(m)
	}
	return out
}
