package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/klearr/customs-calculator/internal/apperrors"
	"github.com/klearr/customs-calculator/internal/core/domain"
	portsrepo "github.com/klearr/customs-calculator/internal/core/ports/repositories"
)

// TaxScheduleService provides tariff schedule lookups by HS code.
type TaxScheduleService struct {
	taxRepo portsrepo.TaxRateReader
}

// NewTaxScheduleService creates a new TaxScheduleService.
func NewTaxScheduleService(taxRepo portsrepo.TaxRateReader) *TaxScheduleService {
	return &TaxScheduleService{taxRepo: taxRepo}
}

// GetScheduleForHSCode returns the stage->raw-rate mapping for an HS code
// along with the underlying entries. An unknown code yields an empty
// schedule; callers decide whether that warrants a warning.
func (s *TaxScheduleService) GetScheduleForHSCode(ctx context.Context, hsCode string) (domain.TaxSchedule, []domain.TaxRate, error) {
	code := strings.TrimSpace(hsCode)
	if code == "" {
		return nil, nil, fmt.Errorf("%w: HS code cannot be empty", apperrors.ErrValidation)
	}

	entries, err := s.taxRepo.FindRatesForHSCode(ctx, code)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get tax rates for HS code %s: %w", code, err)
	}

	schedule := make(domain.TaxSchedule, len(entries))
	for _, e := range entries {
		schedule[e.TaxID] = e.Rate
	}
	return schedule, entries, nil
}
