package repositories

import (
	"context"

	"github.com/klearr/customs-calculator/internal/core/domain"
)

// CurrencyReader defines read operations for the published currency list.
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its ISO code.
	FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// ListCurrencies retrieves all known currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for the currency list.
type CurrencyWriter interface {
	// SaveCurrency persists a new currency.
	SaveCurrency(ctx context.Context, currency domain.Currency) error

	// SaveCurrencies persists a batch of currencies, skipping duplicates.
	// Returns the number of rows actually inserted.
	SaveCurrencies(ctx context.Context, currencies []domain.Currency) (int, error)
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces.
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
