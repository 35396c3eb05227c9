package domain

import (
	"strings"

	"github.com/klearr/customs-calculator/internal/apperrors"
)

const (
	// BaseCurrencyCode is the jurisdiction's own currency. All foreign amounts
	// are converted into it and it always resolves to a rate of exactly 1.0.
	BaseCurrencyCode = "JMD"

	// ReferenceCurrencyCode is the fixed foreign currency used as a secondary
	// valuation view and for CAF threshold checks.
	ReferenceCurrencyCode = "USD"
)

// Currency represents one row of the published currency list.
type Currency struct {
	Entity string `json:"entity"` // issuing country or region, e.g. "UNITED STATES"
	Code   string `json:"code"`   // ISO code, e.g. "USD"
	Name   string `json:"name"`   // name as published on the rate sheet, e.g. "U.S. DOLLAR"
}

// CurrencyTable is an immutable bidirectional code<->name lookup. It is built
// once at startup and injected into the rate resolver, which keeps the
// resolver free of ambient state and trivially testable with a fixed table.
type CurrencyTable struct {
	nameByCode map[string]string
	codeByName map[string]string
}

// NewCurrencyTable builds a CurrencyTable from a currency list. Codes and
// names are normalized to upper case; later duplicates are ignored.
func NewCurrencyTable(currencies []Currency) *CurrencyTable {
	t := &CurrencyTable{
		nameByCode: make(map[string]string, len(currencies)),
		codeByName: make(map[string]string, len(currencies)),
	}
	for _, c := range currencies {
		code := strings.ToUpper(strings.TrimSpace(c.Code))
		name := strings.ToUpper(strings.TrimSpace(c.Name))
		if code == "" || name == "" {
			continue
		}
		if _, ok := t.nameByCode[code]; !ok {
			t.nameByCode[code] = name
		}
		if _, ok := t.codeByName[name]; !ok {
			t.codeByName[name] = code
		}
	}
	return t
}

// ResolveCode maps a currency identifier (ISO code, full published name, or a
// fragment of the name) to its ISO code. Unrecognized identifiers fail with
// ErrUnknownCurrency rather than falling through to a default.
func (t *CurrencyTable) ResolveCode(identifier string) (string, error) {
	ident := strings.ToUpper(strings.TrimSpace(identifier))
	if ident == "" {
		return "", apperrors.ErrUnknownCurrency
	}
	if _, ok := t.nameByCode[ident]; ok {
		return ident, nil
	}
	if code, ok := t.codeByName[ident]; ok {
		return code, nil
	}
	// Partial-name fallback, e.g. "CANADIAN" -> CAD.
	for name, code := range t.codeByName {
		if strings.Contains(name, ident) {
			return code, nil
		}
	}
	return "", apperrors.ErrUnknownCurrency
}

// NameFor returns the published rate-sheet name for an ISO code.
func (t *CurrencyTable) NameFor(code string) (string, bool) {
	name, ok := t.nameByCode[strings.ToUpper(strings.TrimSpace(code))]
	return name, ok
}

// Len reports the number of currencies in the table.
func (t *CurrencyTable) Len() int {
	return len(t.nameByCode)
}

// DefaultCurrencyTable returns the built-in code<->name table covering the
// currencies published on the central bank rate sheet. The database-backed
// currency list supersedes this when available; the built-in table keeps the
// calculators usable before the first seed run.
func DefaultCurrencyTable() *CurrencyTable {
	return NewCurrencyTable([]Currency{
		{Code: "USD", Name: "U.S. DOLLAR"},
		{Code: "EUR", Name: "EURO"},
		{Code: "GBP", Name: "GREAT BRITAIN POUND"},
		{Code: "JPY", Name: "JAPANESE YEN"},
		{Code: "AUD", Name: "AUSTRALIAN DOLLAR"},
		{Code: "CAD", Name: "CANADIAN DOLLAR"},
		{Code: "CHF", Name: "SWISS FRANC"},
		{Code: "CNY", Name: "CHINESE YUAN"},
		{Code: "HKD", Name: "HONG KONG DOLLAR"},
		{Code: "NZD", Name: "NEW ZEALAND DOLLAR"},
		{Code: "INR", Name: "INDIAN RUPEE"},
		{Code: "SGD", Name: "SINGAPORE DOLLAR"},
		{Code: "THB", Name: "THAILAND BAHT"},
		{Code: "AED", Name: "UAE DIRHAM"},
		{Code: "ZAR", Name: "SOUTH AFRICA RAND"},
		{Code: "BRL", Name: "BRAZIL REAL"},
		{Code: "MXN", Name: "MEXICAN PESO"},
		{Code: "KRW", Name: "SOUTH KOREAN WON"},
		{Code: "IDR", Name: "INDONESIAN RUPIAH"},
		{Code: "TRY", Name: "TURKISH LIRA"},
		{Code: "SAR", Name: "SAUDI RIYAL"},
		{Code: "TTD", Name: "T&T DOLLAR"},
		{Code: "BBD", Name: "BARBADOS DOLLAR"},
		{Code: "BSD", Name: "BAHAMIAN DOLLAR"},
		{Code: "XCD", Name: "E.C. DOLLAR"},
		{Code: "KYD", Name: "CAYMAN DOLLAR"},
		{Code: "DKK", Name: "DANISH KRONER"},
		{Code: "NOK", Name: "NORWEGIAN KRONER"},
		{Code: "SEK", Name: "SWEDISH KRONER"},
		// The base currency maps to itself; it never appears on the sheet.
		{Code: "JMD", Name: "JMD"},
	})
}
