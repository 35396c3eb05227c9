package scraper

import (
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/net/html"

	"github.com/klearr/customs-calculator/internal/core/domain"
)

// dateLayouts covers the formats the rate sheet has been observed to use.
var dateLayouts = []string{"2 Jan 2006", "02 Jan 2006", "2006-01-02", "02/01/2006"}

// ParseRateSheet extracts the published rates from the sheet HTML. Rows come
// in two shapes: four cells (date, currency, buying, selling) or three cells
// (currency, buying, selling) where the date column is omitted and the
// requested date applies. Header rows and rows without numeric rates are
// skipped rather than treated as errors.
func ParseRateSheet(r io.Reader, requestedDate time.Time) ([]domain.FXRate, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	scrapedAt := time.Now().UTC()
	day := truncateToDay(requestedDate)

	var rates []domain.FXRate
	for _, row := range tableRows(doc) {
		rate, ok := parseRow(row, day)
		if !ok {
			continue
		}
		rate.ScrapedAt = scrapedAt
		rates = append(rates, rate)
	}
	return rates, nil
}

// parseRow converts one row's cell texts into a rate.
func parseRow(cells []string, requestedDate time.Time) (domain.FXRate, bool) {
	var dateText, currency, buyText, sellText string
	switch len(cells) {
	case 4:
		dateText, currency, buyText, sellText = cells[0], cells[1], cells[2], cells[3]
	case 3:
		currency, buyText, sellText = cells[0], cells[1], cells[2]
	default:
		return domain.FXRate{}, false
	}

	buying, err := parseRateValue(buyText)
	if err != nil {
		return domain.FXRate{}, false
	}
	selling, err := parseRateValue(sellText)
	if err != nil {
		return domain.FXRate{}, false
	}

	name := NormalizeCurrencyName(currency)
	if name == "" {
		return domain.FXRate{}, false
	}

	rateDate := requestedDate
	if dateText != "" {
		if parsed, ok := parseSheetDate(dateText); ok {
			rateDate = parsed
		}
	}

	return domain.FXRate{
		RateDate:    rateDate,
		Currency:    name,
		BuyingRate:  buying,
		SellingRate: selling,
	}, true
}

// parseRateValue parses a published rate figure, tolerating thousands
// separators and surrounding whitespace.
func parseRateValue(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	return decimal.NewFromString(cleaned)
}

// NormalizeCurrencyName uppercases a published currency name and collapses
// internal whitespace so names match the currency list regardless of sheet
// formatting.
func NormalizeCurrencyName(name string) string {
	return strings.ToUpper(strings.Join(strings.Fields(name), " "))
}

func parseSheetDate(s string) (time.Time, bool) {
	trimmed := strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// tableRows walks the document and returns the cell texts of every table
// row, from every table on the page.
func tableRows(doc *html.Node) [][]string {
	var rows [][]string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			if cells := rowCells(n); len(cells) > 0 {
				rows = append(rows, cells)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return rows
}

// rowCells collects the text of each td cell in a row. Rows made of th
// cells yield nothing, which drops header rows for free.
func rowCells(tr *html.Node) []string {
	var cells []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "td" {
			cells = append(cells, strings.TrimSpace(nodeText(c)))
		}
	}
	return cells
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
