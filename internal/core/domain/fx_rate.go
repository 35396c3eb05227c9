package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FXRate is one published indicative rate: the JMD price of one unit of a
// foreign currency on a given date. Selling rates drive every conversion in
// the valuation pipeline; buying rates are stored for completeness only.
type FXRate struct {
	RateDate    time.Time       `json:"rateDate"`
	Currency    string          `json:"currency"` // published name, e.g. "U.S. DOLLAR"
	BuyingRate  decimal.Decimal `json:"buyingRate"`
	SellingRate decimal.Decimal `json:"sellingRate"`
	ScrapedAt   time.Time       `json:"scrapedAt"`
}
