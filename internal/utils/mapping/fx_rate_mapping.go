package mapping

import (
	"github.com/klearr/customs-calculator/internal/core/domain"
	"github.com/klearr/customs-calculator/internal/models"
)

// ToDomainFXRate converts a database FXRate model to its domain representation.
func ToDomainFXRate(m models.FXRate) domain.FXRate {
	return domain.FXRate{
		RateDate:    m.RateDate,
		Currency:    m.Currency,
		BuyingRate:  m.BuyingRate,
		SellingRate: m.SellingRate,
		ScrapedAt:   m.ScrapedAt,
	}
}

// ToModelFXRate converts a domain FXRate to its database model.
func ToModelFXRate(d domain.FXRate) models.FXRate {
	return models.FXRate{
		RateDate:    d.RateDate,
		Currency:    d.Currency,
		BuyingRate:  d.BuyingRate,
		SellingRate: d.SellingRate,
		ScrapedAt:   d.ScrapedAt,
	}
}

// ToDomainFXRates converts a slice of FXRate models.
func ToDomainFXRates(ms []models.FXRate) []domain.FXRate {
	out := make([]domain.FXRate, len(ms))
	for i, m := range ms {
		out[i] = ToDomainFXRate(m)
	}
	return out
}
