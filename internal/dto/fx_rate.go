package dto

import (
	"time"

	"github.com/klearr/customs-calculator/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateFXRateRequest defines the input for manually recording a daily rate.
type CreateFXRateRequest struct {
	RateDate    time.Time       `json:"rateDate" binding:"required"`
	Currency    string          `json:"currency" binding:"required"`
	BuyingRate  decimal.Decimal `json:"buyingRate" binding:"required"`
	SellingRate decimal.Decimal `json:"sellingRate" binding:"required"`
}

// FXRateResponse is the API shape of one daily rate.
type FXRateResponse struct {
	RateDate    time.Time       `json:"rateDate"`
	Currency    string          `json:"currency"`
	BuyingRate  decimal.Decimal `json:"buyingRate"`
	SellingRate decimal.Decimal `json:"sellingRate"`
}

// ToFXRateResponse converts a domain FXRate to its API shape.
func ToFXRateResponse(r *domain.FXRate) FXRateResponse {
	return FXRateResponse{
		RateDate:    r.RateDate,
		Currency:    r.Currency,
		BuyingRate:  r.BuyingRate,
		SellingRate: r.SellingRate,
	}
}

// LatestRatesResponse lists every rate published on the most recent date.
type LatestRatesResponse struct {
	RateDate time.Time        `json:"rateDate"`
	Rates    []FXRateResponse `json:"rates"`
}

// ToLatestRatesResponse converts a dated rate list to its API shape.
func ToLatestRatesResponse(date time.Time, rates []domain.FXRate) LatestRatesResponse {
	out := LatestRatesResponse{RateDate: date, Rates: make([]FXRateResponse, len(rates))}
	for i := range rates {
		out.Rates[i] = ToFXRateResponse(&rates[i])
	}
	return out
}

// RefreshRatesResponse reports the outcome of a manual scrape trigger.
type RefreshRatesResponse struct {
	Saved   int    `json:"saved"`
	Skipped int    `json:"skipped"`
	Message string `json:"message"`
}
