package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/klearr/customs-calculator/internal/apperrors"
	"github.com/klearr/customs-calculator/internal/core/domain"
	portsrepo "github.com/klearr/customs-calculator/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// RateResolverService resolves currency identifiers to the current JMD
// selling rate. The currency table is injected and immutable, so the resolver
// holds no mutable state and is safe for concurrent use.
type RateResolverService struct {
	table    *domain.CurrencyTable
	rateRepo portsrepo.FXRateReader
}

// NewRateResolverService creates a new RateResolverService.
func NewRateResolverService(table *domain.CurrencyTable, rateRepo portsrepo.FXRateReader) *RateResolverService {
	return &RateResolverService{
		table:    table,
		rateRepo: rateRepo,
	}
}

// Resolve returns the JMD price of one unit of the identified currency, taken
// from the most recent date present in the rate table. The base currency is
// always exactly 1.0 and never touches the repository. A known currency with
// no record on the latest date is a hard failure; substituting 1.0 there
// would silently treat missing market data as "no conversion needed".
func (s *RateResolverService) Resolve(ctx context.Context, currencyIdentifier string) (decimal.Decimal, error) {
	code, err := s.table.ResolveCode(currencyIdentifier)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", apperrors.ErrUnknownCurrency, currencyIdentifier)
	}

	if code == domain.BaseCurrencyCode {
		return decimal.NewFromInt(1), nil
	}

	name, ok := s.table.NameFor(code)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", apperrors.ErrUnknownCurrency, currencyIdentifier)
	}

	rate, err := s.rateRepo.FindLatestRateForCurrency(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, fmt.Errorf("%w: no rate for %s on the latest published date", apperrors.ErrRateNotFound, code)
		}
		return decimal.Zero, fmt.Errorf("failed to look up rate for %s: %w", code, err)
	}

	if !rate.SellingRate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: stored selling rate for %s is not positive", apperrors.ErrRateNotFound, code)
	}

	return rate.SellingRate, nil
}

// ResolveCode exposes identifier normalization for callers that need the ISO
// code alongside the rate (e.g. the valuation snapshot).
func (s *RateResolverService) ResolveCode(currencyIdentifier string) (string, error) {
	code, err := s.table.ResolveCode(currencyIdentifier)
	if err != nil {
		return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownCurrency, currencyIdentifier)
	}
	return code, nil
}
