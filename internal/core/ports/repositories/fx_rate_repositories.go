package repositories

import (
	"context"
	"time"

	"github.com/klearr/customs-calculator/internal/core/domain"
)

// FXRateReader defines read operations for daily indicative rates.
type FXRateReader interface {
	// FindLatestRateForCurrency returns the rate for the given published
	// currency name on the most recent date present anywhere in the table.
	// A currency absent from that date fails with ErrNotFound; it is never
	// served from an older date.
	FindLatestRateForCurrency(ctx context.Context, currencyName string) (*domain.FXRate, error)

	// FindLatestRateDate returns the most recent date present in the rate
	// table, or ErrNotFound when the table is empty.
	FindLatestRateDate(ctx context.Context) (time.Time, error)

	// FindRatesByDate lists every rate published on a given date.
	FindRatesByDate(ctx context.Context, date time.Time) ([]domain.FXRate, error)

	// CountRates reports the total number of stored rate rows.
	CountRates(ctx context.Context) (int64, error)
}

// FXRateWriter defines write operations for daily indicative rates.
type FXRateWriter interface {
	// SaveRate persists a single rate, failing with ErrDuplicate when a row
	// already exists for the same date and currency.
	SaveRate(ctx context.Context, rate domain.FXRate) error

	// SaveRates persists a scraped batch atomically, skipping rows that
	// already exist. Returns (saved, skipped).
	SaveRates(ctx context.Context, rates []domain.FXRate) (int, int, error)
}

// FXRateRepositoryFacade combines all rate-related repository interfaces.
type FXRateRepositoryFacade interface {
	FXRateReader
	FXRateWriter
}
