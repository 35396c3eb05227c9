package pgsql

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/klearr/customs-calculator/internal/apperrors"
	"github.com/klearr/customs-calculator/internal/core/domain"
	"github.com/klearr/customs-calculator/internal/models"
	"github.com/klearr/customs-calculator/internal/utils/mapping"
)

// PgxCurrencyRepository implements the currency repository ports using pgxpool.
type PgxCurrencyRepository struct {
	BaseRepository
}

// NewPgxCurrencyRepository creates a new PgxCurrencyRepository.
func NewPgxCurrencyRepository(db *pgxpool.Pool) *PgxCurrencyRepository {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// SaveCurrency inserts a currency, failing with ErrDuplicate when the
// (entity, code) pair already exists.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	m := mapping.ToModelCurrency(currency)

	tag, err := r.Pool.Exec(ctx, `
		INSERT INTO currencies (entity, code, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (entity, code) DO NOTHING`,
		m.Entity, m.Code, m.Name,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save currency", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewAppError(409, "currency already exists for entity "+m.Entity, apperrors.ErrDuplicate)
	}
	return nil
}

// SaveCurrencies inserts a batch inside one transaction, skipping rows whose
// (entity, code) pair already exists. Returns the number inserted.
func (r *PgxCurrencyRepository) SaveCurrencies(ctx context.Context, currencies []domain.Currency) (int, error) {
	if len(currencies) == 0 {
		return 0, nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}

	saved := 0
	for _, c := range currencies {
		m := mapping.ToModelCurrency(c)
		tag, err := tx.Exec(ctx, `
			INSERT INTO currencies (entity, code, name)
			VALUES ($1, $2, $3)
			ON CONFLICT (entity, code) DO NOTHING`,
			m.Entity, m.Code, m.Name,
		)
		if err != nil {
			_ = r.Rollback(ctx, tx)
			return 0, apperrors.NewAppError(500, "failed to save currency batch", err)
		}
		saved += int(tag.RowsAffected())
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return saved, nil
}

// FindCurrencyByCode retrieves a currency by ISO code. Codes shared by
// several entities resolve to the first registered row.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	query := `
		SELECT id, entity, code, name
		FROM currencies
		WHERE code = $1
		ORDER BY id
		LIMIT 1;
	`

	var m models.Currency
	err := r.Pool.QueryRow(ctx, query, strings.ToUpper(code)).Scan(&m.ID, &m.Entity, &m.Code, &m.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("currency " + code + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find currency", err)
	}

	d := mapping.ToDomainCurrency(m)
	return &d, nil
}

// ListCurrencies retrieves all currencies ordered by code.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT id, entity, code, name
		FROM currencies
		ORDER BY code, entity;
	`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list currencies", err)
	}
	defer rows.Close()

	var ms []models.Currency
	for rows.Next() {
		var m models.Currency
		if err := rows.Scan(&m.ID, &m.Entity, &m.Code, &m.Name); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan currency", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read currencies", err)
	}
	return mapping.ToDomainCurrencies(ms), nil
}
