package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/klearr/customs-calculator/internal/apperrors"
	"github.com/klearr/customs-calculator/internal/core/domain"
	portsrepo "github.com/klearr/customs-calculator/internal/core/ports/repositories"
	portssvc "github.com/klearr/customs-calculator/internal/core/ports/services"
	"github.com/klearr/customs-calculator/internal/dto"
)

// FXRateService provides business logic for daily indicative rates: reads for
// the API, manual entry, and refreshes driven by the scraper.
type FXRateService struct {
	rateRepo portsrepo.FXRateRepositoryFacade
	fetcher  portssvc.RateFetcher
	calendar *domain.BusinessCalendar
}

// NewFXRateService creates a new FXRateService.
func NewFXRateService(rateRepo portsrepo.FXRateRepositoryFacade, fetcher portssvc.RateFetcher, calendar *domain.BusinessCalendar) *FXRateService {
	return &FXRateService{
		rateRepo: rateRepo,
		fetcher:  fetcher,
		calendar: calendar,
	}
}

// GetLatestRates returns every rate published on the most recent date in the
// table, along with that date.
func (s *FXRateService) GetLatestRates(ctx context.Context) (time.Time, []domain.FXRate, error) {
	date, err := s.rateRepo.FindLatestRateDate(ctx)
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("failed to find latest rate date: %w", err)
	}
	rates, err := s.rateRepo.FindRatesByDate(ctx, date)
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("failed to list rates for %s: %w", date.Format("2006-01-02"), err)
	}
	return date, rates, nil
}

// CreateRate persists a manually supplied rate.
func (s *FXRateService) CreateRate(ctx context.Context, req dto.CreateFXRateRequest) (*domain.FXRate, error) {
	if !req.SellingRate.IsPositive() || !req.BuyingRate.IsPositive() {
		return nil, fmt.Errorf("%w: rates must be positive", apperrors.ErrValidation)
	}

	rate := domain.FXRate{
		RateDate:    req.RateDate.Truncate(24 * time.Hour),
		Currency:    req.Currency,
		BuyingRate:  req.BuyingRate,
		SellingRate: req.SellingRate,
		ScrapedAt:   time.Now().UTC(),
	}
	if err := s.rateRepo.SaveRate(ctx, rate); err != nil {
		return nil, fmt.Errorf("failed to save rate in service: %w", err)
	}
	return &rate, nil
}

// RefreshRates scrapes the central bank sheet and stores anything new. When
// today is a weekend or holiday the last business day is scraped instead,
// since no sheet is published on non-business days.
func (s *FXRateService) RefreshRates(ctx context.Context) (int, int, error) {
	now := time.Now().In(s.calendar.Location())
	target := now
	if !s.calendar.IsBusinessDay(now) {
		target = s.calendar.LastBusinessDay(now)
		if name, ok := s.calendar.HolidayName(now); ok {
			slog.Default().Info("Holiday today; refreshing rates for last business day",
				slog.String("holiday", name),
				slog.String("target_date", target.Format("2006-01-02")))
		}
	}

	rates, err := s.fetcher.FetchRates(ctx, target)
	if err != nil {
		return 0, 0, fmt.Errorf("rate fetch failed for %s: %w", target.Format("2006-01-02"), err)
	}
	if len(rates) == 0 {
		return 0, 0, fmt.Errorf("%w: no rates published for %s", apperrors.ErrNotFound, target.Format("2006-01-02"))
	}

	saved, skipped, err := s.rateRepo.SaveRates(ctx, rates)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to store refreshed rates: %w", err)
	}
	return saved, skipped, nil
}
