package models

import "github.com/shopspring/decimal"

// TaxRate is the database row for one tariff schedule entry. (hs_code,
// tax_id) is unique.
type TaxRate struct {
	ID     int64           `json:"id"`
	HSCode string          `json:"hsCode"`
	TaxID  string          `json:"taxId"`
	Rate   decimal.Decimal `json:"rate"`
}
