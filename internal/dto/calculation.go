package dto

import (
	"github.com/klearr/customs-calculator/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CIFRequest defines the input for a CIF valuation.
// Positivity of the price and non-negativity of the freight charges are
// validated at the service layer where decimal comparison is available.
type CIFRequest struct {
	ProductPrice         decimal.Decimal `json:"productPrice" binding:"required"`
	ProductCurrency      string          `json:"productCurrency" binding:"required"`
	FreightCharges       decimal.Decimal `json:"freightCharges"`
	FreightCurrency      string          `json:"freightCurrency" binding:"required"`
	ModeOfTransportation string          `json:"modeOfTransportation" binding:"required,transportmode"`
}

// CustomsRequest defines the input for a full duty assessment.
type CustomsRequest struct {
	CIFRequest
	HSCode          string `json:"hsCode" binding:"required"`
	TransactionType string `json:"transactionType" binding:"required"`
	PackageType     string `json:"packageType" binding:"required"`
}

// CIFResponse is the API shape of a CIF valuation.
type CIFResponse struct {
	CIFOriginal         decimal.Decimal `json:"cifOriginal"`
	CIFOriginalCurrency string          `json:"cifOriginalCurrency"`
	CIFJMD              decimal.Decimal `json:"cifJmd"`
	CIFUSD              decimal.Decimal `json:"cifUsd"`

	ProductPriceOriginal   decimal.Decimal `json:"productPriceOriginal"`
	ProductCurrency        string          `json:"productCurrency"`
	FreightChargesOriginal decimal.Decimal `json:"freightChargesOriginal"`
	FreightCurrency        string          `json:"freightCurrency"`

	ProductPriceJMD   decimal.Decimal `json:"productPriceJmd"`
	FreightChargesJMD decimal.Decimal `json:"freightChargesJmd"`
	ProductPriceUSD   decimal.Decimal `json:"productPriceUsd"`
	FreightChargesUSD decimal.Decimal `json:"freightChargesUsd"`

	InsuranceOriginal decimal.Decimal `json:"insuranceOriginalCurrency"`
	InsuranceJMD      decimal.Decimal `json:"insuranceJmd"`

	ModeOfTransportation string `json:"modeOfTransportation"`

	ExchangeRates map[string]decimal.Decimal `json:"exchangeRates"`
}

// ToCIFResponse converts a domain CIFValuation to its API shape.
func ToCIFResponse(v *domain.CIFValuation) CIFResponse {
	return CIFResponse{
		CIFOriginal:            v.CIFOriginal,
		CIFOriginalCurrency:    v.CIFOriginalCurrency,
		CIFJMD:                 v.CIFJMD,
		CIFUSD:                 v.CIFUSD,
		ProductPriceOriginal:   v.ProductPriceOriginal,
		ProductCurrency:        v.ProductCurrency,
		FreightChargesOriginal: v.FreightChargesOriginal,
		FreightCurrency:        v.FreightCurrency,
		ProductPriceJMD:        v.ProductPriceJMD,
		FreightChargesJMD:      v.FreightChargesJMD,
		ProductPriceUSD:        v.ProductPriceUSD,
		FreightChargesUSD:      v.FreightChargesUSD,
		InsuranceOriginal:      v.InsuranceOriginal,
		InsuranceJMD:           v.InsuranceJMD,
		ModeOfTransportation:   string(v.ModeOfTransportation),
		ExchangeRates:          v.ExchangeRates,
	}
}

// CustomsResponse is the API shape of a full duty assessment.
type CustomsResponse struct {
	CIFDetails         CIFResponse                `json:"cifDetails"`
	TaxRates           map[string]decimal.Decimal `json:"taxRates"`
	BaseValues         map[string]decimal.Decimal `json:"baseValues"`
	Charges            map[string]decimal.Decimal `json:"charges"`
	CAF                decimal.Decimal            `json:"caf"`
	TotalCustomCharges decimal.Decimal            `json:"totalCustomCharges"`
}
