package services

import (
	"context"
	"fmt"

	"github.com/klearr/customs-calculator/internal/apperrors"
	"github.com/klearr/customs-calculator/internal/core/domain"
	portssvc "github.com/klearr/customs-calculator/internal/core/ports/services"
	"github.com/klearr/customs-calculator/internal/dto"
	"github.com/shopspring/decimal"
)

// ValuationService computes CIF valuations. Stateless besides the injected
// resolver; safe to share across requests.
type ValuationService struct {
	resolver portssvc.RateResolverSvc
}

// NewValuationService creates a new ValuationService.
func NewValuationService(resolver portssvc.RateResolverSvc) *ValuationService {
	return &ValuationService{resolver: resolver}
}

// ComputeCIF values a shipment in its original currency, JMD, and USD.
//
// Every stored monetary field is rounded to 2 decimal places as it is
// computed, not in a single final pass. Totals differ between the two
// approaches, and published assessments were produced with per-step rounding,
// so it is load-bearing for reproducibility.
func (s *ValuationService) ComputeCIF(ctx context.Context, req dto.CIFRequest) (*domain.CIFValuation, error) {
	if !req.ProductPrice.IsPositive() {
		return nil, fmt.Errorf("%w: product price must be positive", apperrors.ErrValidation)
	}
	if req.FreightCharges.IsNegative() {
		return nil, fmt.Errorf("%w: freight charges cannot be negative", apperrors.ErrValidation)
	}

	mode, err := domain.ParseTransportMode(req.ModeOfTransportation)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidTransportMode, req.ModeOfTransportation)
	}

	productCode, err := s.resolver.ResolveCode(req.ProductCurrency)
	if err != nil {
		return nil, err
	}
	freightCode, err := s.resolver.ResolveCode(req.FreightCurrency)
	if err != nil {
		return nil, err
	}

	jmdRate, err := s.resolver.Resolve(ctx, domain.BaseCurrencyCode)
	if err != nil {
		return nil, err
	}
	usdRate, err := s.resolver.Resolve(ctx, domain.ReferenceCurrencyCode)
	if err != nil {
		return nil, err
	}
	productRate, err := s.resolver.Resolve(ctx, productCode)
	if err != nil {
		return nil, err
	}
	freightRate, err := s.resolver.Resolve(ctx, freightCode)
	if err != nil {
		return nil, err
	}

	// Selling rates are JMD per unit of foreign currency, so the JMD view is
	// a multiplication and the USD view divides the JMD view by the USD rate.
	productJMD := req.ProductPrice.Mul(productRate).Round(2)
	freightJMD := req.FreightCharges.Mul(freightRate).Round(2)
	productUSD := productJMD.Div(usdRate).Round(2)
	freightUSD := freightJMD.Div(usdRate).Round(2)

	cifOriginal := req.ProductPrice.Add(req.FreightCharges).Round(2)
	cifOriginalCurrency := productCode
	if productCode != freightCode {
		cifOriginalCurrency = domain.MixedCurrency
	}

	// Insurance is estimated off the original-currency sum and assumed to be
	// denominated in the product's currency.
	insuranceOriginal := cifOriginal.Mul(mode.InsuranceRate()).Round(2)
	insuranceJMD := insuranceOriginal.Mul(productRate).Round(2)

	cifJMD := productJMD.Add(freightJMD).Add(insuranceJMD).Round(2)
	cifUSD := cifJMD.Div(usdRate).Round(2)

	return &domain.CIFValuation{
		CIFOriginal:            cifOriginal,
		CIFOriginalCurrency:    cifOriginalCurrency,
		CIFJMD:                 cifJMD,
		CIFUSD:                 cifUSD,
		ProductPriceOriginal:   req.ProductPrice.Round(2),
		ProductCurrency:        productCode,
		FreightChargesOriginal: req.FreightCharges.Round(2),
		FreightCurrency:        freightCode,
		ProductPriceJMD:        productJMD,
		FreightChargesJMD:      freightJMD,
		ProductPriceUSD:        productUSD,
		FreightChargesUSD:      freightUSD,
		InsuranceOriginal:      insuranceOriginal,
		InsuranceJMD:           insuranceJMD,
		ModeOfTransportation:   mode,
		ExchangeRates: map[string]decimal.Decimal{
			domain.BaseCurrencyCode:      jmdRate,
			domain.ReferenceCurrencyCode: usdRate,
			productCode:                  productRate.Round(4),
			freightCode:                  freightRate.Round(4),
		},
	}, nil
}
