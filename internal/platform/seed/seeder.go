package seed

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/klearr/customs-calculator/internal/core/domain"
	portsrepo "github.com/klearr/customs-calculator/internal/core/ports/repositories"
)

// Seed data file names, as shipped alongside the binary.
const (
	currencyFile = "currency.csv"
	fxRatesFile  = "boj_indicative_rates.csv"
	taxRatesFile = "tax_rates.csv"
)

// Seeder loads reference data from CSV files into the database. Inserts go
// through the batch writers, which skip rows that already exist, so seeding
// is idempotent and safe to run on every startup. A missing file is skipped
// with a log line, not an error.
type Seeder struct {
	currencyRepo portsrepo.CurrencyWriter
	rateRepo     portsrepo.FXRateWriter
	taxRepo      portsrepo.TaxRateWriter
	dataDir      string
	logger       *slog.Logger
}

// NewSeeder creates a Seeder reading from the given data directory.
func NewSeeder(
	currencyRepo portsrepo.CurrencyWriter,
	rateRepo portsrepo.FXRateWriter,
	taxRepo portsrepo.TaxRateWriter,
	dataDir string,
	logger *slog.Logger,
) *Seeder {
	return &Seeder{
		currencyRepo: currencyRepo,
		rateRepo:     rateRepo,
		taxRepo:      taxRepo,
		dataDir:      dataDir,
		logger:       logger,
	}
}

// Run seeds currencies, historical rates and the tariff schedule in order.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedCurrencies(ctx); err != nil {
		return fmt.Errorf("currency seed failed: %w", err)
	}
	if err := s.seedFXRates(ctx); err != nil {
		return fmt.Errorf("rate seed failed: %w", err)
	}
	if err := s.seedTaxRates(ctx); err != nil {
		return fmt.Errorf("tax rate seed failed: %w", err)
	}
	return nil
}

// seedCurrencies loads the published currency list. Only the first three
// columns (entity, name, code) carry data; rows with malformed codes are
// skipped.
func (s *Seeder) seedCurrencies(ctx context.Context) error {
	records, ok, err := s.readCSV(currencyFile)
	if err != nil || !ok {
		return err
	}

	var currencies []domain.Currency
	skipped := 0
	for _, row := range records {
		if len(row) < 3 {
			skipped++
			continue
		}
		entity := strings.TrimSpace(row[0])
		name := strings.ToUpper(strings.Join(strings.Fields(row[1]), " "))
		code := strings.ToUpper(strings.TrimSpace(row[2]))
		if entity == "" || name == "" || code == "" || len(code) > 3 {
			skipped++
			continue
		}
		currencies = append(currencies, domain.Currency{
			Entity: entity,
			Code:   code,
			Name:   name,
		})
	}

	saved, err := s.currencyRepo.SaveCurrencies(ctx, currencies)
	if err != nil {
		return err
	}
	s.logger.Info("Currency seed complete",
		slog.Int("saved", saved),
		slog.Int("already_present", len(currencies)-saved),
		slog.Int("skipped_rows", skipped))
	return nil
}

// seedFXRates loads historical indicative rates. Columns: Date, Currency,
// Buying, Selling.
func (s *Seeder) seedFXRates(ctx context.Context) error {
	records, ok, err := s.readCSV(fxRatesFile)
	if err != nil || !ok {
		return err
	}

	scrapedAt := time.Now().UTC()
	var rates []domain.FXRate
	skipped := 0
	for _, row := range records {
		if len(row) < 4 {
			skipped++
			continue
		}
		date, err := parseSeedDate(row[0])
		if err != nil {
			skipped++
			continue
		}
		currency := strings.ToUpper(strings.Join(strings.Fields(row[1]), " "))
		buying, errB := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(row[2]), ",", ""))
		selling, errS := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(row[3]), ",", ""))
		if currency == "" || errB != nil || errS != nil {
			skipped++
			continue
		}
		rates = append(rates, domain.FXRate{
			RateDate:    date,
			Currency:    currency,
			BuyingRate:  buying,
			SellingRate: selling,
			ScrapedAt:   scrapedAt,
		})
	}

	saved, alreadyPresent, err := s.rateRepo.SaveRates(ctx, rates)
	if err != nil {
		return err
	}
	s.logger.Info("FX rate seed complete",
		slog.Int("saved", saved),
		slog.Int("already_present", alreadyPresent),
		slog.Int("skipped_rows", skipped))
	return nil
}

// seedTaxRates loads the tariff schedule. Columns: HS Code, ID, Rate. Rate
// cells come in mixed formats and go through ParseScheduleRate; duplicate
// (HS code, tax ID) pairs keep the first occurrence.
func (s *Seeder) seedTaxRates(ctx context.Context) error {
	records, ok, err := s.readCSV(taxRatesFile)
	if err != nil || !ok {
		return err
	}

	seen := make(map[string]bool, len(records))
	var taxRates []domain.TaxRate
	skipped := 0
	unparseable := 0
	for _, row := range records {
		if len(row) < 3 {
			skipped++
			continue
		}
		hsCode := strings.TrimSpace(row[0])
		taxID := strings.TrimSpace(row[1])
		if hsCode == "" || taxID == "" {
			skipped++
			continue
		}

		key := hsCode + "|" + taxID
		if seen[key] {
			skipped++
			continue
		}
		seen[key] = true

		rate, parsed := ParseScheduleRate(row[2])
		if !parsed {
			unparseable++
		}
		taxRates = append(taxRates, domain.TaxRate{
			HSCode: hsCode,
			TaxID:  taxID,
			Rate:   rate,
		})
	}

	saved, err := s.taxRepo.SaveTaxRates(ctx, taxRates)
	if err != nil {
		return err
	}
	s.logger.Info("Tax rate seed complete",
		slog.Int("saved", saved),
		slog.Int("already_present", len(taxRates)-saved),
		slog.Int("skipped_rows", skipped),
		slog.Int("unparseable_rates", unparseable))
	return nil
}

// readCSV reads a seed file, dropping the header row. The second return
// value reports whether the file exists.
func (s *Seeder) readCSV(name string) ([][]string, bool, error) {
	path := filepath.Join(s.dataDir, name)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Info("Seed file not present; skipping", slog.String("file", path))
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	var records [][]string
	header := true
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, true, fmt.Errorf("failed to read %s: %w", name, err)
		}
		if header {
			header = false
			continue
		}
		records = append(records, row)
	}
	return records, true, nil
}

var seedDateLayouts = []string{"2006-01-02", "02/01/2006", "2 Jan 2006", "02 Jan 2006"}

func parseSeedDate(s string) (time.Time, error) {
	trimmed := strings.TrimSpace(s)
	var lastErr error
	for _, layout := range seedDateLayouts {
		t, err := time.Parse(layout, trimmed)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
