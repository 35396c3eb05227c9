package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/klearr/customs-calculator/internal/core/domain"
)

// BOJFetcher pulls the daily indicative rate sheet from the Bank of Jamaica
// website. The page renders the sheet as an HTML table; no API is offered.
type BOJFetcher struct {
	client  *retryablehttp.Client
	baseURL string
}

// NewBOJFetcher creates a fetcher against the given page URL.
func NewBOJFetcher(baseURL string, timeout time.Duration, maxRetries int, retryDelay time.Duration) *BOJFetcher {
	client := retryablehttp.NewClient()
	client.RetryMax = maxRetries
	client.RetryWaitMin = retryDelay
	client.RetryWaitMax = 4 * retryDelay
	client.HTTPClient.Timeout = timeout
	client.Logger = nil

	return &BOJFetcher{
		client:  client,
		baseURL: baseURL,
	}
}

// FetchRates returns every rate published for the given date. An empty
// result means the bank published nothing for that date.
func (f *BOJFetcher) FetchRates(ctx context.Context, date time.Time) ([]domain.FXRate, error) {
	reqURL, err := f.buildURL(date)
	if err != nil {
		return nil, fmt.Errorf("failed to build rate sheet URL: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rate sheet request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rate sheet request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate sheet request returned status %d", resp.StatusCode)
	}

	rates, err := ParseRateSheet(resp.Body, date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rate sheet: %w", err)
	}
	return rates, nil
}

// buildURL attaches the date range filter the page expects. Both ends of the
// range are the requested date so only one sheet comes back.
func (f *BOJFetcher) buildURL(date time.Time) (string, error) {
	u, err := url.Parse(f.baseURL)
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set("startdate", date.Format("2006-01-02"))
	q.Set("enddate", date.Format("2006-01-02"))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
