package dto

import "github.com/klearr/customs-calculator/internal/core/domain"

// CreateCurrencyRequest defines the input for registering a currency.
type CreateCurrencyRequest struct {
	Entity string `json:"entity" binding:"required"`
	Code   string `json:"code" binding:"required,min=2,max=3,uppercase"`
	Name   string `json:"name" binding:"required"`
}

// CurrencyResponse is the API shape of a currency.
type CurrencyResponse struct {
	Entity string `json:"entity"`
	Code   string `json:"code"`
	Name   string `json:"name"`
}

// ToCurrencyResponse converts a domain Currency to its API shape.
func ToCurrencyResponse(c *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		Entity: c.Entity,
		Code:   c.Code,
		Name:   c.Name,
	}
}

// ToListCurrencyResponse converts a slice of domain currencies.
func ToListCurrencyResponse(cs []domain.Currency) []CurrencyResponse {
	out := make([]CurrencyResponse, len(cs))
	for i := range cs {
		out[i] = ToCurrencyResponse(&cs[i])
	}
	return out
}
