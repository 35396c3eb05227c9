package services

import (
	"context"

	"github.com/klearr/customs-calculator/internal/core/domain"
	"github.com/klearr/customs-calculator/internal/dto"
	"github.com/shopspring/decimal"
)

// RateResolverSvc resolves a currency identifier (ISO code or published name)
// to the current JMD selling rate for one unit of that currency.
type RateResolverSvc interface {
	// Resolve returns the current rate. The base currency resolves to 1.0
	// without a lookup; unknown identifiers fail with ErrUnknownCurrency and
	// known currencies without a dated record fail with ErrRateNotFound.
	Resolve(ctx context.Context, currencyIdentifier string) (decimal.Decimal, error)

	// ResolveCode normalizes an identifier (ISO code, published name, or
	// name fragment) to its ISO code without touching the rate table.
	ResolveCode(currencyIdentifier string) (string, error)
}

// ValuationSvc computes the Cost-Insurance-Freight valuation of a shipment.
type ValuationSvc interface {
	// ComputeCIF values a shipment in its original currency, JMD, and USD.
	// Rate lookup failures propagate; no partial valuation is returned.
	ComputeCIF(ctx context.Context, req dto.CIFRequest) (*domain.CIFValuation, error)
}

// AssessmentSvc runs the duty cascade over a CIF valuation.
type AssessmentSvc interface {
	// CalculateCustoms orchestrates valuation, schedule lookup, CAF
	// determination and the cascade for one request.
	CalculateCustoms(ctx context.Context, req dto.CustomsRequest) (*dto.CustomsResponse, error)

	// AssessDuties runs the fixed cascade. Pure: no lookups, no I/O.
	AssessDuties(schedule domain.TaxSchedule, cifJMD, caf decimal.Decimal) domain.DutyAssessment

	// DetermineCAF decides the flat administration fee for a declaration.
	DetermineCAF(ctx context.Context, transactionType, packageType string, cifValue decimal.Decimal, inputCurrency string) (decimal.Decimal, error)
}

// TaxScheduleSvc provides tariff schedule lookups by HS code.
type TaxScheduleSvc interface {
	// GetScheduleForHSCode returns the stage->raw-rate mapping and the
	// underlying entries. Unknown codes yield an empty schedule, not an error.
	GetScheduleForHSCode(ctx context.Context, hsCode string) (domain.TaxSchedule, []domain.TaxRate, error)
}
