package mapping

import (
	"github.com/klearr/customs-calculator/internal/core/domain"
	"github.com/klearr/customs-calculator/internal/models"
)

// ToDomainCurrency converts a database Currency model to its domain representation.
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		Entity: m.Entity,
		Code:   m.Code,
		Name:   m.Name,
	}
}

// ToModelCurrency converts a domain Currency to its database model.
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		Entity: d.Entity,
		Code:   d.Code,
		Name:   d.Name,
	}
}

// ToDomainCurrencies converts a slice of Currency models.
func ToDomainCurrencies(ms []models.Currency) []domain.Currency {
	out := make([]domain.Currency, len(ms))
	for i, m := range ms {
		out[i] = ToDomainCurrency(m)
	}
	return out
}
