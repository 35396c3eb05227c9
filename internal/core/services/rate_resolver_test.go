package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/klearr/customs-calculator/internal/apperrors"
	"github.com/klearr/customs-calculator/internal/core/domain"
	portsrepo "github.com/klearr/customs-calculator/internal/core/ports/repositories"
	"github.com/klearr/customs-calculator/internal/core/services"
)

// --- Mock FXRateReader ---
type MockFXRateReader struct {
	mock.Mock
}

func (m *MockFXRateReader) FindLatestRateForCurrency(ctx context.Context, currencyName string) (*domain.FXRate, error) {
	args := m.Called(ctx, currencyName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FXRate), args.Error(1)
}

func (m *MockFXRateReader) FindLatestRateDate(ctx context.Context) (time.Time, error) {
	args := m.Called(ctx)
	return args.Get(0).(time.Time), args.Error(1)
}

func (m *MockFXRateReader) FindRatesByDate(ctx context.Context, date time.Time) ([]domain.FXRate, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FXRate), args.Error(1)
}

func (m *MockFXRateReader) CountRates(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

var _ portsrepo.FXRateReader = (*MockFXRateReader)(nil)

// --- Suite ---
type RateResolverServiceTestSuite struct {
	suite.Suite
	rateRepo *MockFXRateReader
	resolver *services.RateResolverService
	ctx      context.Context
}

func (s *RateResolverServiceTestSuite) SetupTest() {
	s.rateRepo = new(MockFXRateReader)
	s.resolver = services.NewRateResolverService(domain.DefaultCurrencyTable(), s.rateRepo)
	s.ctx = context.Background()
}

func TestRateResolverServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RateResolverServiceTestSuite))
}

func (s *RateResolverServiceTestSuite) TestResolve_BaseCurrencySkipsLookup() {
	rate, err := s.resolver.Resolve(s.ctx, "JMD")
	s.Require().NoError(err)
	s.True(rate.Equal(decimal.NewFromInt(1)))
	s.rateRepo.AssertNotCalled(s.T(), "FindLatestRateForCurrency", mock.Anything, mock.Anything)
}

func (s *RateResolverServiceTestSuite) TestResolve_LooksUpByPublishedName() {
	s.rateRepo.On("FindLatestRateForCurrency", s.ctx, "U.S. DOLLAR").Return(&domain.FXRate{
		Currency:    "U.S. DOLLAR",
		SellingRate: decimal.RequireFromString("155.27"),
	}, nil)

	rate, err := s.resolver.Resolve(s.ctx, "usd")
	s.Require().NoError(err)
	s.True(rate.Equal(decimal.RequireFromString("155.27")))
	s.rateRepo.AssertExpectations(s.T())
}

func (s *RateResolverServiceTestSuite) TestResolve_NameIdentifierResolvesSameAsCode() {
	s.rateRepo.On("FindLatestRateForCurrency", s.ctx, "CANADIAN DOLLAR").Return(&domain.FXRate{
		Currency:    "CANADIAN DOLLAR",
		SellingRate: decimal.RequireFromString("112.50"),
	}, nil)

	rate, err := s.resolver.Resolve(s.ctx, "canadian dollar")
	s.Require().NoError(err)
	s.True(rate.Equal(decimal.RequireFromString("112.50")))
}

func (s *RateResolverServiceTestSuite) TestResolve_UnknownCurrency() {
	_, err := s.resolver.Resolve(s.ctx, "ZZZ")
	s.ErrorIs(err, apperrors.ErrUnknownCurrency)
	s.rateRepo.AssertNotCalled(s.T(), "FindLatestRateForCurrency", mock.Anything, mock.Anything)
}

func (s *RateResolverServiceTestSuite) TestResolve_MissingRateIsHardFailure() {
	s.rateRepo.On("FindLatestRateForCurrency", s.ctx, "EURO").
		Return(nil, apperrors.NewNotFoundError("no rate"))

	_, err := s.resolver.Resolve(s.ctx, "EUR")
	s.ErrorIs(err, apperrors.ErrRateNotFound)
}

func (s *RateResolverServiceTestSuite) TestResolve_NonPositiveStoredRateIsHardFailure() {
	s.rateRepo.On("FindLatestRateForCurrency", s.ctx, "EURO").Return(&domain.FXRate{
		Currency:    "EURO",
		SellingRate: decimal.Zero,
	}, nil)

	_, err := s.resolver.Resolve(s.ctx, "EUR")
	s.ErrorIs(err, apperrors.ErrRateNotFound)
}

func (s *RateResolverServiceTestSuite) TestResolveCode() {
	code, err := s.resolver.ResolveCode("u.s. dollar")
	s.Require().NoError(err)
	s.Equal("USD", code)

	_, err = s.resolver.ResolveCode("ZZZ")
	s.ErrorIs(err, apperrors.ErrUnknownCurrency)
}

func TestResolve_RepositoryErrorPropagates(t *testing.T) {
	rateRepo := new(MockFXRateReader)
	resolver := services.NewRateResolverService(domain.DefaultCurrencyTable(), rateRepo)

	rateRepo.On("FindLatestRateForCurrency", mock.Anything, "EURO").
		Return(nil, apperrors.NewAppError(500, "db down", nil))

	_, err := resolver.Resolve(context.Background(), "EUR")
	require.Error(t, err)
	require.NotErrorIs(t, err, apperrors.ErrRateNotFound)
}
