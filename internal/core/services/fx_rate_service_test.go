package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/klearr/customs-calculator/internal/apperrors"
	"github.com/klearr/customs-calculator/internal/core/domain"
	portsrepo "github.com/klearr/customs-calculator/internal/core/ports/repositories"
	portssvc "github.com/klearr/customs-calculator/internal/core/ports/services"
	"github.com/klearr/customs-calculator/internal/core/services"
	"github.com/klearr/customs-calculator/internal/dto"
)

// --- Mock FXRateRepositoryFacade ---
type MockFXRateRepository struct {
	MockFXRateReader
}

func (m *MockFXRateRepository) SaveRate(ctx context.Context, rate domain.FXRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockFXRateRepository) SaveRates(ctx context.Context, rates []domain.FXRate) (int, int, error) {
	args := m.Called(ctx, rates)
	return args.Int(0), args.Int(1), args.Error(2)
}

var _ portsrepo.FXRateRepositoryFacade = (*MockFXRateRepository)(nil)

// --- Mock RateFetcher ---
type MockRateFetcher struct {
	mock.Mock
}

func (m *MockRateFetcher) FetchRates(ctx context.Context, date time.Time) ([]domain.FXRate, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FXRate), args.Error(1)
}

var _ portssvc.RateFetcher = (*MockRateFetcher)(nil)

// --- Suite ---
type FXRateServiceTestSuite struct {
	suite.Suite
	rateRepo *MockFXRateRepository
	fetcher  *MockRateFetcher
	svc      *services.FXRateService
	ctx      context.Context
}

func (s *FXRateServiceTestSuite) SetupTest() {
	s.rateRepo = new(MockFXRateRepository)
	s.fetcher = new(MockRateFetcher)
	s.svc = services.NewFXRateService(s.rateRepo, s.fetcher, domain.DefaultJamaicaCalendar())
	s.ctx = context.Background()
}

func TestFXRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FXRateServiceTestSuite))
}

func (s *FXRateServiceTestSuite) TestGetLatestRates() {
	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	published := []domain.FXRate{
		{RateDate: date, Currency: "U.S. DOLLAR", SellingRate: decimal.RequireFromString("155.27")},
	}

	s.rateRepo.On("FindLatestRateDate", s.ctx).Return(date, nil)
	s.rateRepo.On("FindRatesByDate", s.ctx, date).Return(published, nil)

	gotDate, gotRates, err := s.svc.GetLatestRates(s.ctx)
	s.Require().NoError(err)
	s.Equal(date, gotDate)
	s.Equal(published, gotRates)
}

func (s *FXRateServiceTestSuite) TestGetLatestRates_EmptyTable() {
	s.rateRepo.On("FindLatestRateDate", s.ctx).
		Return(time.Time{}, apperrors.NewNotFoundError("no FX rates stored"))

	_, _, err := s.svc.GetLatestRates(s.ctx)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *FXRateServiceTestSuite) TestCreateRate_RejectsNonPositiveRates() {
	_, err := s.svc.CreateRate(s.ctx, dto.CreateFXRateRequest{
		RateDate:    time.Now(),
		Currency:    "U.S. DOLLAR",
		BuyingRate:  decimal.Zero,
		SellingRate: decimal.RequireFromString("155.27"),
	})
	s.ErrorIs(err, apperrors.ErrValidation)
	s.rateRepo.AssertNotCalled(s.T(), "SaveRate", mock.Anything, mock.Anything)
}

func (s *FXRateServiceTestSuite) TestCreateRate_Saves() {
	s.rateRepo.On("SaveRate", s.ctx, mock.AnythingOfType("domain.FXRate")).Return(nil)

	rate, err := s.svc.CreateRate(s.ctx, dto.CreateFXRateRequest{
		RateDate:    time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC),
		Currency:    "U.S. DOLLAR",
		BuyingRate:  decimal.RequireFromString("154.12"),
		SellingRate: decimal.RequireFromString("155.27"),
	})
	s.Require().NoError(err)
	s.Equal("U.S. DOLLAR", rate.Currency)
	s.rateRepo.AssertExpectations(s.T())
}

func (s *FXRateServiceTestSuite) TestRefreshRates_StoresFetchedBatch() {
	fetched := []domain.FXRate{
		{Currency: "U.S. DOLLAR", SellingRate: decimal.RequireFromString("155.27")},
		{Currency: "EURO", SellingRate: decimal.RequireFromString("168.40")},
	}

	s.fetcher.On("FetchRates", s.ctx, mock.AnythingOfType("time.Time")).Return(fetched, nil)
	s.rateRepo.On("SaveRates", s.ctx, fetched).Return(2, 0, nil)

	saved, skipped, err := s.svc.RefreshRates(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, saved)
	s.Equal(0, skipped)
	s.fetcher.AssertExpectations(s.T())
	s.rateRepo.AssertExpectations(s.T())
}

func (s *FXRateServiceTestSuite) TestRefreshRates_NothingPublished() {
	s.fetcher.On("FetchRates", s.ctx, mock.AnythingOfType("time.Time")).
		Return([]domain.FXRate{}, nil)

	_, _, err := s.svc.RefreshRates(s.ctx)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.rateRepo.AssertNotCalled(s.T(), "SaveRates", mock.Anything, mock.Anything)
}

func (s *FXRateServiceTestSuite) TestRefreshRates_TargetsBusinessDay() {
	cal := domain.DefaultJamaicaCalendar()

	s.fetcher.On("FetchRates", s.ctx, mock.MatchedBy(func(d time.Time) bool {
		return cal.IsBusinessDay(d)
	})).Return([]domain.FXRate{{Currency: "U.S. DOLLAR", SellingRate: decimal.NewFromInt(155)}}, nil)
	s.rateRepo.On("SaveRates", s.ctx, mock.Anything).Return(1, 0, nil)

	_, _, err := s.svc.RefreshRates(s.ctx)
	s.Require().NoError(err)
	s.fetcher.AssertExpectations(s.T())
}
