package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/klearr/customs-calculator/internal/apperrors"
	"github.com/klearr/customs-calculator/internal/core/domain"
	portssvc "github.com/klearr/customs-calculator/internal/core/ports/services"
	"github.com/klearr/customs-calculator/internal/core/services"
	"github.com/klearr/customs-calculator/internal/dto"
)

// --- Mock ValuationSvc ---
type MockValuationSvc struct {
	mock.Mock
}

func (m *MockValuationSvc) ComputeCIF(ctx context.Context, req dto.CIFRequest) (*domain.CIFValuation, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CIFValuation), args.Error(1)
}

var _ portssvc.ValuationSvc = (*MockValuationSvc)(nil)

// --- Mock TaxScheduleSvc ---
type MockTaxScheduleSvc struct {
	mock.Mock
}

func (m *MockTaxScheduleSvc) GetScheduleForHSCode(ctx context.Context, hsCode string) (domain.TaxSchedule, []domain.TaxRate, error) {
	args := m.Called(ctx, hsCode)
	var schedule domain.TaxSchedule
	if args.Get(0) != nil {
		schedule = args.Get(0).(domain.TaxSchedule)
	}
	var entries []domain.TaxRate
	if args.Get(1) != nil {
		entries = args.Get(1).([]domain.TaxRate)
	}
	return schedule, entries, args.Error(2)
}

var _ portssvc.TaxScheduleSvc = (*MockTaxScheduleSvc)(nil)

// --- Suite ---
type AssessmentServiceTestSuite struct {
	suite.Suite
	valuation  *MockValuationSvc
	schedule   *MockTaxScheduleSvc
	resolver   *MockRateResolver
	assessment *services.AssessmentService
	ctx        context.Context
}

func (s *AssessmentServiceTestSuite) SetupTest() {
	s.valuation = new(MockValuationSvc)
	s.schedule = new(MockTaxScheduleSvc)
	s.resolver = new(MockRateResolver)
	s.assessment = services.NewAssessmentService(s.valuation, s.schedule, s.resolver)
	s.ctx = context.Background()
}

func TestAssessmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssessmentServiceTestSuite))
}

func (s *AssessmentServiceTestSuite) mustEqual(want string, got decimal.Decimal, label string) {
	s.True(decimal.RequireFromString(want).Equal(got), "%s: want %s, got %s", label, want, got)
}

func (s *AssessmentServiceTestSuite) TestAssessDuties_CascadeBases() {
	schedule := domain.TaxSchedule{
		domain.StageImportDuty: decimal.NewFromInt(10), // 10% off CIF
		domain.StageGCT:        decimal.NewFromInt(15), // 15% off the aggregate base
	}

	got := s.assessment.AssessDuties(schedule, decimal.NewFromInt(100000), decimal.NewFromInt(10000))

	s.mustEqual("100000", got.BaseValues["cif"], "base1")
	s.mustEqual("110000", got.BaseValues["cifPlusImportDuty"], "base2")
	s.mustEqual("10000", got.BaseValues["caf"], "base3")
	s.mustEqual("120000", got.BaseValues["aggregateChargeSet"], "base4")

	s.mustEqual("10000", got.Charges[domain.StageImportDuty], "import duty")
	s.mustEqual("10000", got.Charges[domain.StageCAF], "caf")
	s.mustEqual("18000", got.Charges[domain.StageGCT], "gct")
	s.Len(got.Charges, 3, "zero-amount stages are filtered out")

	s.mustEqual("38000", got.Total, "total")
}

func (s *AssessmentServiceTestSuite) TestAssessDuties_FractionalRatesUsedAsIs() {
	schedule := domain.TaxSchedule{
		domain.StageImportDuty: decimal.RequireFromString("0.2"), // already fractional
	}

	got := s.assessment.AssessDuties(schedule, decimal.NewFromInt(1000), decimal.Zero)

	s.mustEqual("200", got.Charges[domain.StageImportDuty], "import duty")
	s.mustEqual("1200", got.BaseValues["cifPlusImportDuty"], "base2")
}

func (s *AssessmentServiceTestSuite) TestAssessDuties_EmptyScheduleChargesCAFOnly() {
	got := s.assessment.AssessDuties(domain.TaxSchedule{}, decimal.NewFromInt(50000), decimal.NewFromInt(2500))

	s.Len(got.Charges, 1)
	s.mustEqual("2500", got.Charges[domain.StageCAF], "caf")
	s.mustEqual("2500", got.Total, "total")
}

func (s *AssessmentServiceTestSuite) TestAssessDuties_AllZeroIsEmpty() {
	got := s.assessment.AssessDuties(domain.TaxSchedule{}, decimal.NewFromInt(50000), decimal.Zero)

	s.Empty(got.Charges)
	s.True(got.Total.IsZero())
}

func (s *AssessmentServiceTestSuite) TestAssessDuties_NegativeRateClampsToZero() {
	schedule := domain.TaxSchedule{
		domain.StageEnvironmentalLevy: decimal.NewFromInt(-5),
	}

	got := s.assessment.AssessDuties(schedule, decimal.NewFromInt(100000), decimal.Zero)

	_, present := got.Charges[domain.StageEnvironmentalLevy]
	s.False(present)
	s.True(got.Total.IsZero())
}

func (s *AssessmentServiceTestSuite) TestDetermineCAF_EmptyRegimeRejected() {
	_, err := s.assessment.DetermineCAF(s.ctx, "   ", "box", decimal.NewFromInt(100), "USD")
	s.ErrorIs(err, apperrors.ErrMissingTransactionType)
}

func (s *AssessmentServiceTestSuite) TestDetermineCAF_MotorVehicleFlatFee() {
	caf, err := s.assessment.DetermineCAF(s.ctx, "IMS4", "Motor Vehicle", decimal.NewFromInt(100), "USD")
	s.Require().NoError(err)
	s.True(caf.Equal(domain.CAFMotorVehicle))
}

func (s *AssessmentServiceTestSuite) TestDetermineCAF_HouseholdBelowThreshold() {
	caf, err := s.assessment.DetermineCAF(s.ctx, "ims4", "box", decimal.RequireFromString("4999.99"), "USD")
	s.Require().NoError(err)
	s.True(caf.Equal(domain.CAFHouseholdLowValue))
}

func (s *AssessmentServiceTestSuite) TestDetermineCAF_HouseholdAtThresholdPaysCommercial() {
	caf, err := s.assessment.DetermineCAF(s.ctx, "IMS4", "box", decimal.NewFromInt(5000), "USD")
	s.Require().NoError(err)
	s.True(caf.Equal(domain.CAFCommercial))
}

func (s *AssessmentServiceTestSuite) TestDetermineCAF_CommercialAndUnknownRegimes() {
	caf, err := s.assessment.DetermineCAF(s.ctx, "IM4", "box", decimal.NewFromInt(100), "USD")
	s.Require().NoError(err)
	s.True(caf.Equal(domain.CAFCommercial))

	caf, err = s.assessment.DetermineCAF(s.ctx, "EX1", "box", decimal.NewFromInt(100), "USD")
	s.Require().NoError(err)
	s.True(caf.Equal(domain.CAFCommercial))
}

func (s *AssessmentServiceTestSuite) TestDetermineCAF_ConvertsNonUSDValue() {
	s.resolver.On("Resolve", s.ctx, domain.ReferenceCurrencyCode).Return(decimal.NewFromInt(150), nil)
	s.resolver.On("Resolve", s.ctx, "JMD").Return(decimal.NewFromInt(1), nil)

	// 600000 JMD at 150 JMD/USD is 4000 USD, below the threshold.
	caf, err := s.assessment.DetermineCAF(s.ctx, "IMS4", "box", decimal.NewFromInt(600000), "JMD")
	s.Require().NoError(err)
	s.True(caf.Equal(domain.CAFHouseholdLowValue))
}

func (s *AssessmentServiceTestSuite) TestCalculateCustoms_WiresEverythingTogether() {
	req := dto.CustomsRequest{
		CIFRequest: dto.CIFRequest{
			ProductPrice:         decimal.NewFromInt(1000),
			ProductCurrency:      "USD",
			FreightCharges:       decimal.NewFromInt(100),
			FreightCurrency:      "USD",
			ModeOfTransportation: "air",
		},
		HSCode:          "8471.30",
		TransactionType: "IM4",
		PackageType:     "box",
	}

	cif := &domain.CIFValuation{
		CIFJMD:              decimal.NewFromInt(100000),
		CIFUSD:              decimal.RequireFromString("645.16"),
		CIFOriginalCurrency: "USD",
	}
	schedule := domain.TaxSchedule{
		domain.StageImportDuty: decimal.NewFromInt(20),
	}

	s.valuation.On("ComputeCIF", s.ctx, req.CIFRequest).Return(cif, nil)
	s.schedule.On("GetScheduleForHSCode", s.ctx, "8471.30").Return(schedule, []domain.TaxRate(nil), nil)

	resp, err := s.assessment.CalculateCustoms(s.ctx, req)
	s.Require().NoError(err)

	s.mustEqual("10000", resp.CAF, "caf")
	s.mustEqual("20000", resp.Charges[domain.StageImportDuty], "import duty")
	s.mustEqual("30000", resp.TotalCustomCharges, "total")
	s.Equal(schedule, resp.TaxRates)
	s.Equal("USD", resp.CIFDetails.CIFOriginalCurrency)
	s.valuation.AssertExpectations(s.T())
	s.schedule.AssertExpectations(s.T())
}

func (s *AssessmentServiceTestSuite) TestCalculateCustoms_EmptyScheduleStillAssessesCAF() {
	req := dto.CustomsRequest{
		CIFRequest: dto.CIFRequest{
			ProductPrice:         decimal.NewFromInt(100),
			ProductCurrency:      "USD",
			FreightCharges:       decimal.NewFromInt(10),
			FreightCurrency:      "USD",
			ModeOfTransportation: "air",
		},
		HSCode:          "0000.00",
		TransactionType: "IMS4",
		PackageType:     "box",
	}

	cif := &domain.CIFValuation{
		CIFJMD: decimal.NewFromInt(17000),
		CIFUSD: decimal.RequireFromString("110.00"),
	}

	s.valuation.On("ComputeCIF", s.ctx, req.CIFRequest).Return(cif, nil)
	s.schedule.On("GetScheduleForHSCode", s.ctx, "0000.00").Return(domain.TaxSchedule{}, []domain.TaxRate(nil), nil)

	resp, err := s.assessment.CalculateCustoms(s.ctx, req)
	s.Require().NoError(err)

	s.mustEqual("2500", resp.CAF, "caf")
	s.mustEqual("2500", resp.TotalCustomCharges, "total")
	s.Len(resp.Charges, 1)
}

func (s *AssessmentServiceTestSuite) TestCalculateCustoms_ValuationFailurePropagates() {
	req := dto.CustomsRequest{
		CIFRequest: dto.CIFRequest{
			ProductPrice:         decimal.NewFromInt(100),
			ProductCurrency:      "XXX",
			FreightCurrency:      "USD",
			ModeOfTransportation: "air",
		},
		HSCode:          "8471.30",
		TransactionType: "IM4",
		PackageType:     "box",
	}

	s.valuation.On("ComputeCIF", s.ctx, req.CIFRequest).Return(nil, apperrors.ErrUnknownCurrency)

	_, err := s.assessment.CalculateCustoms(s.ctx, req)
	s.ErrorIs(err, apperrors.ErrUnknownCurrency)
	s.schedule.AssertNotCalled(s.T(), "GetScheduleForHSCode", mock.Anything, mock.Anything)
}
