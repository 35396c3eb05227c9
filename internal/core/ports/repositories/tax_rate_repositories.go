package repositories

import (
	"context"

	"github.com/klearr/customs-calculator/internal/core/domain"
)

// TaxRateReader defines read operations for the tariff schedule.
type TaxRateReader interface {
	// FindRatesForHSCode lists every schedule entry for an HS code. An
	// unknown code yields an empty slice, not an error.
	FindRatesForHSCode(ctx context.Context, hsCode string) ([]domain.TaxRate, error)

	// CountRates reports the total number of schedule entries.
	CountRates(ctx context.Context) (int64, error)
}

// TaxRateWriter defines write operations for the tariff schedule.
type TaxRateWriter interface {
	// SaveTaxRates persists a batch of schedule entries, skipping
	// duplicates. Returns the number of rows actually inserted.
	SaveTaxRates(ctx context.Context, rates []domain.TaxRate) (int, error)
}

// TaxRateRepositoryFacade combines all tariff-schedule repository interfaces.
type TaxRateRepositoryFacade interface {
	TaxRateReader
	TaxRateWriter
}
