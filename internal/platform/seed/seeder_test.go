package seed_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/klearr/customs-calculator/internal/core/domain"
	portsrepo "github.com/klearr/customs-calculator/internal/core/ports/repositories"
	"github.com/klearr/customs-calculator/internal/platform/seed"
)

// --- Mock writers ---
type MockCurrencyWriter struct {
	mock.Mock
}

func (m *MockCurrencyWriter) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyWriter) SaveCurrencies(ctx context.Context, currencies []domain.Currency) (int, error) {
	args := m.Called(ctx, currencies)
	return args.Int(0), args.Error(1)
}

var _ portsrepo.CurrencyWriter = (*MockCurrencyWriter)(nil)

type MockFXRateWriter struct {
	mock.Mock
}

func (m *MockFXRateWriter) SaveRate(ctx context.Context, rate domain.FXRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockFXRateWriter) SaveRates(ctx context.Context, rates []domain.FXRate) (int, int, error) {
	args := m.Called(ctx, rates)
	return args.Int(0), args.Int(1), args.Error(2)
}

var _ portsrepo.FXRateWriter = (*MockFXRateWriter)(nil)

type MockTaxRateWriter struct {
	mock.Mock
}

func (m *MockTaxRateWriter) SaveTaxRates(ctx context.Context, rates []domain.TaxRate) (int, error) {
	args := m.Called(ctx, rates)
	return args.Int(0), args.Error(1)
}

var _ portsrepo.TaxRateWriter = (*MockTaxRateWriter)(nil)

// --- Suite ---
type SeederTestSuite struct {
	suite.Suite
	dataDir      string
	currencyRepo *MockCurrencyWriter
	rateRepo     *MockFXRateWriter
	taxRepo      *MockTaxRateWriter
	seeder       *seed.Seeder
	ctx          context.Context
}

func (s *SeederTestSuite) SetupTest() {
	s.dataDir = s.T().TempDir()
	s.currencyRepo = new(MockCurrencyWriter)
	s.rateRepo = new(MockFXRateWriter)
	s.taxRepo = new(MockTaxRateWriter)
	s.seeder = seed.NewSeeder(s.currencyRepo, s.rateRepo, s.taxRepo, s.dataDir, slog.Default())
	s.ctx = context.Background()
}

func TestSeederTestSuite(t *testing.T) {
	suite.Run(t, new(SeederTestSuite))
}

func (s *SeederTestSuite) writeFile(name, content string) {
	require.NoError(s.T(), os.WriteFile(filepath.Join(s.dataDir, name), []byte(content), 0o644))
}

func (s *SeederTestSuite) TestRun_MissingFilesAreSkipped() {
	err := s.seeder.Run(s.ctx)
	s.Require().NoError(err)
	s.currencyRepo.AssertNotCalled(s.T(), "SaveCurrencies", mock.Anything, mock.Anything)
	s.rateRepo.AssertNotCalled(s.T(), "SaveRates", mock.Anything, mock.Anything)
	s.taxRepo.AssertNotCalled(s.T(), "SaveTaxRates", mock.Anything, mock.Anything)
}

func (s *SeederTestSuite) TestRun_SeedsCurrencies() {
	s.writeFile("currency.csv", "Entity,Currency,Code,X,Y,Z\n"+
		"UNITED STATES,U.S.  Dollar,usd,,,\n"+
		"CANADA,Canadian Dollar,CAD,,,\n"+
		"BROKEN,,XX,,,\n"+ // blank name skipped
		"LONGCODE,Something,ABCD,,,\n") // code too long skipped

	s.currencyRepo.On("SaveCurrencies", s.ctx, []domain.Currency{
		{Entity: "UNITED STATES", Code: "USD", Name: "U.S. DOLLAR"},
		{Entity: "CANADA", Code: "CAD", Name: "CANADIAN DOLLAR"},
	}).Return(2, nil)

	err := s.seeder.Run(s.ctx)
	s.Require().NoError(err)
	s.currencyRepo.AssertExpectations(s.T())
}

func (s *SeederTestSuite) TestRun_SeedsRatesAndTaxRates() {
	s.writeFile("boj_indicative_rates.csv", "Date,Currency,Buying,Selling\n"+
		"2025-03-14,U.S. DOLLAR,154.12,155.27\n"+
		"not-a-date,EURO,1,2\n") // bad date skipped

	s.writeFile("tax_rates.csv", "HS Code,ID,Rate\n"+
		"8471.30,ID-01,20%\n"+
		"8471.30,ID-01,25%\n"+ // duplicate pair keeps the first
		"8471.30,GCT 06,15\n")

	s.rateRepo.On("SaveRates", s.ctx, mock.MatchedBy(func(rates []domain.FXRate) bool {
		return len(rates) == 1 && rates[0].Currency == "U.S. DOLLAR"
	})).Return(1, 0, nil)

	s.taxRepo.On("SaveTaxRates", s.ctx, mock.MatchedBy(func(rates []domain.TaxRate) bool {
		return len(rates) == 2 && rates[0].TaxID == "ID-01" && rates[1].TaxID == "GCT 06"
	})).Return(2, nil)

	err := s.seeder.Run(s.ctx)
	s.Require().NoError(err)
	s.rateRepo.AssertExpectations(s.T())
	s.taxRepo.AssertExpectations(s.T())
}
