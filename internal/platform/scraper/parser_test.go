package scraper_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klearr/customs-calculator/internal/platform/scraper"
)

const sampleSheet = `
<html><body>
<table>
  <thead>
    <tr><th>Date</th><th>Currency</th><th>Buy</th><th>Sell</th></tr>
  </thead>
  <tbody>
    <tr><td>14 Mar 2025</td><td>U.S. DOLLAR</td><td>154.12</td><td>155.27</td></tr>
    <tr><td>14 Mar 2025</td><td>Canadian  Dollar</td><td>107.01</td><td>108.95</td></tr>
    <tr><td>14 Mar 2025</td><td>GREAT BRITAIN POUND</td><td>1,98.00</td><td>2,01.50</td></tr>
    <tr><td>14 Mar 2025</td><td>EURO</td><td>n/a</td><td>n/a</td></tr>
  </tbody>
</table>
</body></html>`

func TestParseRateSheet(t *testing.T) {
	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	rates, err := scraper.ParseRateSheet(strings.NewReader(sampleSheet), date)
	require.NoError(t, err)
	require.Len(t, rates, 3, "the n/a row is skipped")

	usd := rates[0]
	assert.Equal(t, "U.S. DOLLAR", usd.Currency)
	assert.True(t, usd.BuyingRate.Equal(decimal.RequireFromString("154.12")))
	assert.True(t, usd.SellingRate.Equal(decimal.RequireFromString("155.27")))
	assert.Equal(t, "2025-03-14", usd.RateDate.Format("2006-01-02"))
	assert.False(t, usd.ScrapedAt.IsZero())

	cad := rates[1]
	assert.Equal(t, "CANADIAN DOLLAR", cad.Currency, "whitespace collapsed and upper-cased")

	gbp := rates[2]
	assert.True(t, gbp.BuyingRate.Equal(decimal.RequireFromString("198.00")), "thousands separators stripped")
}

func TestParseRateSheet_ThreeColumnRowsUseRequestedDate(t *testing.T) {
	sheet := `
<table>
  <tr><td>U.S. DOLLAR</td><td>154.12</td><td>155.27</td></tr>
</table>`
	date := time.Date(2025, 3, 17, 15, 30, 0, 0, time.UTC)

	rates, err := scraper.ParseRateSheet(strings.NewReader(sheet), date)
	require.NoError(t, err)
	require.Len(t, rates, 1)
	assert.Equal(t, "2025-03-17", rates[0].RateDate.Format("2006-01-02"))
}

func TestParseRateSheet_EmptyPage(t *testing.T) {
	rates, err := scraper.ParseRateSheet(strings.NewReader("<html><body><p>No data</p></body></html>"), time.Now())
	require.NoError(t, err)
	assert.Empty(t, rates)
}

func TestNormalizeCurrencyName(t *testing.T) {
	assert.Equal(t, "U.S. DOLLAR", scraper.NormalizeCurrencyName("  u.s.   dollar "))
	assert.Equal(t, "", scraper.NormalizeCurrencyName("   "))
}
