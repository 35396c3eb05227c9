package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/klearr/customs-calculator/internal/apperrors"
	"github.com/klearr/customs-calculator/internal/core/domain"
	"github.com/klearr/customs-calculator/internal/models"
	"github.com/klearr/customs-calculator/internal/utils/mapping"
)

// PgxFXRateRepository implements the FX rate repository ports using pgxpool.
type PgxFXRateRepository struct {
	BaseRepository
}

// NewPgxFXRateRepository creates a new PgxFXRateRepository.
func NewPgxFXRateRepository(db *pgxpool.Pool) *PgxFXRateRepository {
	return &PgxFXRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// FindLatestRateForCurrency returns the rate for a published currency name on
// the most recent date present anywhere in the table. The subquery pins the
// date first: a currency missing from the latest sheet is NotFound even if it
// appeared on older sheets.
func (r *PgxFXRateRepository) FindLatestRateForCurrency(ctx context.Context, currencyName string) (*domain.FXRate, error) {
	query := `
		SELECT id, rate_date, currency, buying_rate, selling_rate, scraped_at
		FROM fx_rates
		WHERE rate_date = (SELECT MAX(rate_date) FROM fx_rates)
		  AND UPPER(currency) = UPPER($1)
		LIMIT 1;
	`

	var m models.FXRate
	err := r.Pool.QueryRow(ctx, query, currencyName).Scan(
		&m.ID, &m.RateDate, &m.Currency, &m.BuyingRate, &m.SellingRate, &m.ScrapedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no rate for " + currencyName + " on the latest date")
		}
		return nil, apperrors.NewAppError(500, "failed to find latest rate", err)
	}

	d := mapping.ToDomainFXRate(m)
	return &d, nil
}

// FindLatestRateDate returns the most recent date present in the rate table.
func (r *PgxFXRateRepository) FindLatestRateDate(ctx context.Context) (time.Time, error) {
	var date *time.Time
	err := r.Pool.QueryRow(ctx, `SELECT MAX(rate_date) FROM fx_rates;`).Scan(&date)
	if err != nil {
		return time.Time{}, apperrors.NewAppError(500, "failed to find latest rate date", err)
	}
	if date == nil {
		return time.Time{}, apperrors.NewNotFoundError("no FX rates stored")
	}
	return *date, nil
}

// FindRatesByDate lists every rate published on a given date.
func (r *PgxFXRateRepository) FindRatesByDate(ctx context.Context, date time.Time) ([]domain.FXRate, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT id, rate_date, currency, buying_rate, selling_rate, scraped_at
		FROM fx_rates
		WHERE rate_date = $1
		ORDER BY currency;
	`, date)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list rates by date", err)
	}
	defer rows.Close()

	var ms []models.FXRate
	for rows.Next() {
		var m models.FXRate
		if err := rows.Scan(&m.ID, &m.RateDate, &m.Currency, &m.BuyingRate, &m.SellingRate, &m.ScrapedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan rate", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read rates", err)
	}
	return mapping.ToDomainFXRates(ms), nil
}

// CountRates reports the total number of stored rate rows.
func (r *PgxFXRateRepository) CountRates(ctx context.Context) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM fx_rates;`).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count rates", err)
	}
	return count, nil
}

// SaveRate inserts a single rate, failing with ErrDuplicate when a row
// already exists for the same date and currency.
func (r *PgxFXRateRepository) SaveRate(ctx context.Context, rate domain.FXRate) error {
	m := mapping.ToModelFXRate(rate)

	tag, err := r.Pool.Exec(ctx, `
		INSERT INTO fx_rates (rate_date, currency, buying_rate, selling_rate, scraped_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (rate_date, currency) DO NOTHING`,
		m.RateDate, m.Currency, m.BuyingRate, m.SellingRate, m.ScrapedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save rate", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewAppError(409, "rate already recorded for "+m.Currency+" on "+m.RateDate.Format("2006-01-02"), apperrors.ErrDuplicate)
	}
	return nil
}

// SaveRates inserts a scraped batch inside one transaction, skipping rows
// that already exist. Returns (saved, skipped).
func (r *PgxFXRateRepository) SaveRates(ctx context.Context, rates []domain.FXRate) (int, int, error) {
	if len(rates) == 0 {
		return 0, 0, nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, 0, err
	}

	saved := 0
	for _, rate := range rates {
		m := mapping.ToModelFXRate(rate)
		tag, err := tx.Exec(ctx, `
			INSERT INTO fx_rates (rate_date, currency, buying_rate, selling_rate, scraped_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (rate_date, currency) DO NOTHING`,
			m.RateDate, m.Currency, m.BuyingRate, m.SellingRate, m.ScrapedAt,
		)
		if err != nil {
			_ = r.Rollback(ctx, tx)
			return 0, 0, apperrors.NewAppError(500, "failed to save rate batch", err)
		}
		saved += int(tag.RowsAffected())
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, 0, err
	}
	return saved, len(rates) - saved, nil
}
