package services

import (
	"context"
	"time"

	"github.com/klearr/customs-calculator/internal/core/domain"
	"github.com/klearr/customs-calculator/internal/dto"
)

// FXRateReaderSvc defines read operations for daily indicative rates.
type FXRateReaderSvc interface {
	// GetLatestRates returns every rate published on the most recent date in
	// the table, along with that date.
	GetLatestRates(ctx context.Context) (time.Time, []domain.FXRate, error)
}

// FXRateWriterSvc defines write operations for daily indicative rates.
type FXRateWriterSvc interface {
	// CreateRate persists a manually supplied rate.
	CreateRate(ctx context.Context, req dto.CreateFXRateRequest) (*domain.FXRate, error)

	// RefreshRates scrapes the central bank sheet for the current business
	// day and stores anything new. Returns (saved, skipped).
	RefreshRates(ctx context.Context) (int, int, error)
}

// FXRateSvcFacade combines all rate-related service interfaces.
type FXRateSvcFacade interface {
	FXRateReaderSvc
	FXRateWriterSvc
}
