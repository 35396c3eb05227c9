package services

import (
	"context"
	"time"

	"github.com/klearr/customs-calculator/internal/core/domain"
)

// RateFetcher acquires the published indicative rates for a date from an
// external source. Implemented by the central bank scraper; faked in tests.
type RateFetcher interface {
	// FetchRates returns every rate published for the given date. An empty
	// result means the source had nothing for that date.
	FetchRates(ctx context.Context, date time.Time) ([]domain.FXRate, error)
}
