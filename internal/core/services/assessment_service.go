package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/klearr/customs-calculator/internal/apperrors"
	"github.com/klearr/customs-calculator/internal/core/domain"
	portssvc "github.com/klearr/customs-calculator/internal/core/ports/services"
	"github.com/klearr/customs-calculator/internal/dto"
	"github.com/shopspring/decimal"
)

// AssessmentService runs the fixed duty cascade over a CIF valuation. It
// orchestrates the valuation and schedule services but the cascade itself is
// a pure function of its inputs.
type AssessmentService struct {
	valuation portssvc.ValuationSvc
	schedule  portssvc.TaxScheduleSvc
	resolver  portssvc.RateResolverSvc
}

// NewAssessmentService creates a new AssessmentService.
func NewAssessmentService(valuation portssvc.ValuationSvc, schedule portssvc.TaxScheduleSvc, resolver portssvc.RateResolverSvc) *AssessmentService {
	return &AssessmentService{
		valuation: valuation,
		schedule:  schedule,
		resolver:  resolver,
	}
}

// CalculateCustoms values the shipment, looks up the tariff schedule,
// determines the administration fee and runs the cascade. Rate lookup
// failures propagate uncaught; no partial assessment is ever returned. An HS
// code with no schedule entries is a valid business state (new or ungazetted
// products) and produces an assessment with only the CAF charged.
func (s *AssessmentService) CalculateCustoms(ctx context.Context, req dto.CustomsRequest) (*dto.CustomsResponse, error) {
	cif, err := s.valuation.ComputeCIF(ctx, req.CIFRequest)
	if err != nil {
		return nil, err
	}

	schedule, _, err := s.schedule.GetScheduleForHSCode(ctx, req.HSCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load tax schedule for HS code %s: %w", req.HSCode, err)
	}
	if len(schedule) == 0 {
		slog.Default().Warn("No tax schedule entries for HS code; assessing CAF only", slog.String("hs_code", req.HSCode))
	}

	caf, err := s.DetermineCAF(ctx, req.TransactionType, req.PackageType, cif.CIFUSD, domain.ReferenceCurrencyCode)
	if err != nil {
		return nil, err
	}

	assessment := s.AssessDuties(schedule, cif.CIFJMD, caf)

	return &dto.CustomsResponse{
		CIFDetails:         dto.ToCIFResponse(cif),
		TaxRates:           schedule,
		BaseValues:         assessment.BaseValues,
		Charges:            assessment.Charges,
		CAF:                caf,
		TotalCustomCharges: assessment.Total,
	}, nil
}

// AssessDuties runs the fixed cascade:
//
//	base1 = CIF (JMD)
//	ID-01 off base1; base2 = base1 + ID-01
//	ASD05, SCTA08, SCTS18, SCTF028 off base2
//	SCF90, ENVL20 off base1
//	CAF passed through at rate 1.0
//	base4 = base2 + those six charges + CAF
//	GCT 06, EXC023 off base4
//
// Every charge and base is rounded to 2 decimal places as it is produced.
// The total sums all ten stages before filtering; the returned charge map
// keeps only strictly positive entries.
func (s *AssessmentService) AssessDuties(schedule domain.TaxSchedule, cifJMD, caf decimal.Decimal) domain.DutyAssessment {
	rate := func(stage string) decimal.Decimal {
		return domain.NormalizeScheduleRate(schedule[stage])
	}

	base1 := cifJMD.Round(2)
	importDuty := base1.Mul(rate(domain.StageImportDuty)).Round(2)
	base2 := base1.Add(importDuty).Round(2)

	additionalStamp := base2.Mul(rate(domain.StageAdditionalStamp)).Round(2)
	sctAdValorem := base2.Mul(rate(domain.StageSCTAdValorem)).Round(2)
	sctSpecific := base2.Mul(rate(domain.StageSCTSpecific)).Round(2)
	sctFuel := base2.Mul(rate(domain.StageSCTFuel)).Round(2)

	standardsFee := base1.Mul(rate(domain.StageStandardsFee)).Round(2)
	envLevy := base1.Mul(rate(domain.StageEnvironmentalLevy)).Round(2)

	base3 := caf.Round(2)
	cafCharge := base3 // charged in full, rate 1.0

	base4 := base2.Add(additionalStamp).Add(sctAdValorem).Add(sctSpecific).Add(sctFuel).
		Add(standardsFee).Add(envLevy).Add(cafCharge).Round(2)

	gct := base4.Mul(rate(domain.StageGCT)).Round(2)
	excise := base4.Mul(rate(domain.StageExcise)).Round(2)

	charges := map[string]decimal.Decimal{
		domain.StageImportDuty:        importDuty,
		domain.StageAdditionalStamp:   additionalStamp,
		domain.StageSCTAdValorem:      sctAdValorem,
		domain.StageSCTSpecific:       sctSpecific,
		domain.StageSCTFuel:           sctFuel,
		domain.StageStandardsFee:      standardsFee,
		domain.StageEnvironmentalLevy: envLevy,
		domain.StageCAF:               cafCharge,
		domain.StageGCT:               gct,
		domain.StageExcise:            excise,
	}

	total := decimal.Zero
	for _, amount := range charges {
		total = total.Add(amount)
	}
	total = total.Round(2)

	filtered := make(map[string]decimal.Decimal, len(charges))
	for stage, amount := range charges {
		if amount.IsPositive() {
			filtered[stage] = amount
		}
	}

	return domain.DutyAssessment{
		Charges: filtered,
		BaseValues: map[string]decimal.Decimal{
			"cif":                base1,
			"cifPlusImportDuty":  base2,
			"caf":                base3,
			"aggregateChargeSet": base4,
		},
		Total: total,
	}
}

// DetermineCAF decides the flat administration fee for a declaration.
//
// Motor vehicles pay a fixed fee regardless of regime or value. Household
// declarations (IMS4) below the USD threshold pay the low fixed fee and
// escalate to the commercial fee at or above it. Commercial declarations
// (IM4) and any unrecognized non-empty regime pay the commercial fee; an
// empty regime is rejected rather than silently defaulted.
func (s *AssessmentService) DetermineCAF(ctx context.Context, transactionType, packageType string, cifValue decimal.Decimal, inputCurrency string) (decimal.Decimal, error) {
	txnType := domain.NormalizeTransactionType(transactionType)
	if txnType == "" {
		return decimal.Zero, apperrors.ErrMissingTransactionType
	}

	if strings.EqualFold(strings.TrimSpace(packageType), domain.MotorVehiclePackage) {
		return domain.CAFMotorVehicle, nil
	}

	cifUSD := cifValue
	if !strings.EqualFold(strings.TrimSpace(inputCurrency), domain.ReferenceCurrencyCode) {
		usdRate, err := s.resolver.Resolve(ctx, domain.ReferenceCurrencyCode)
		if err != nil {
			return decimal.Zero, err
		}
		inputRate, err := s.resolver.Resolve(ctx, inputCurrency)
		if err != nil {
			return decimal.Zero, err
		}
		cifUSD = cifValue.Mul(inputRate.Div(usdRate)).Round(2)
	}

	switch txnType {
	case domain.TxnHousehold:
		if cifUSD.LessThan(domain.CAFHouseholdThreshold) {
			return domain.CAFHouseholdLowValue, nil
		}
		return domain.CAFCommercial, nil
	case domain.TxnCommercial:
		return domain.CAFCommercial, nil
	default:
		// Conservative default: unknown regimes are assessed at the
		// commercial fee rather than under-charged.
		return domain.CAFCommercial, nil
	}
}
