package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/klearr/customs-calculator/internal/apperrors"
	"github.com/klearr/customs-calculator/internal/core/domain"
	"github.com/klearr/customs-calculator/internal/models"
	"github.com/klearr/customs-calculator/internal/utils/mapping"
)

// PgxTaxRateRepository implements the tariff schedule repository ports using pgxpool.
type PgxTaxRateRepository struct {
	BaseRepository
}

// NewPgxTaxRateRepository creates a new PgxTaxRateRepository.
func NewPgxTaxRateRepository(db *pgxpool.Pool) *PgxTaxRateRepository {
	return &PgxTaxRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// FindRatesForHSCode lists every schedule entry for an HS code. Unknown codes
// yield an empty slice; the caller decides whether that matters.
func (r *PgxTaxRateRepository) FindRatesForHSCode(ctx context.Context, hsCode string) ([]domain.TaxRate, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT id, hs_code, tax_id, rate
		FROM tax_rates
		WHERE hs_code = $1
		ORDER BY tax_id;
	`, hsCode)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query tax rates", err)
	}
	defer rows.Close()

	var ms []models.TaxRate
	for rows.Next() {
		var m models.TaxRate
		if err := rows.Scan(&m.ID, &m.HSCode, &m.TaxID, &m.Rate); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan tax rate", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read tax rates", err)
	}
	return mapping.ToDomainTaxRates(ms), nil
}

// CountRates reports the total number of schedule entries.
func (r *PgxTaxRateRepository) CountRates(ctx context.Context) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM tax_rates;`).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count tax rates", err)
	}
	return count, nil
}

// SaveTaxRates inserts a batch inside one transaction, skipping entries whose
// (hs_code, tax_id) pair already exists. Returns the number inserted.
func (r *PgxTaxRateRepository) SaveTaxRates(ctx context.Context, rates []domain.TaxRate) (int, error) {
	if len(rates) == 0 {
		return 0, nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}

	saved := 0
	for _, rate := range rates {
		m := mapping.ToModelTaxRate(rate)
		tag, err := tx.Exec(ctx, `
			INSERT INTO tax_rates (hs_code, tax_id, rate)
			VALUES ($1, $2, $3)
			ON CONFLICT (hs_code, tax_id) DO NOTHING`,
			m.HSCode, m.TaxID, m.Rate,
		)
		if err != nil {
			_ = r.Rollback(ctx, tx)
			return 0, apperrors.NewAppError(500, "failed to save tax rate batch", err)
		}
		saved += int(tag.RowsAffected())
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return saved, nil
}
