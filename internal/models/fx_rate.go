package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FXRate is the database row for one daily indicative rate. (rate_date,
// currency) is unique; re-scrapes of the same day are upserts.
type FXRate struct {
	ID          int64           `json:"id"`
	RateDate    time.Time       `json:"rateDate"`
	Currency    string          `json:"currency"`
	BuyingRate  decimal.Decimal `json:"buyingRate"`
	SellingRate decimal.Decimal `json:"sellingRate"`
	ScrapedAt   time.Time       `json:"scrapedAt"`
}
