/*
This file fetches current USD spot prices from the CoinGecko simple-price API.

Adapters treat a symbol missing from the response as a failure for that pool,
never as a zero price: a silently-zero price would zero out staking values
and overstate ROI without any visible error.
*/

package datafetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/farmscan/farmscan/internal/logger"
)

var priceLogger = logger.GetForComponent("price_retriever")

var ErrInvalidPriceData = errors.New("invalid price data received")

const (
	defaultPriceAPIURL = "https://api.coingecko.com/api/v3/simple/price"
	maxRetries         = 3
	requestTimeout     = 15 * time.Second
)

// PriceClient queries a CoinGecko-compatible simple-price endpoint.
type PriceClient struct {
	baseURL string
	client  *http.Client
}

// NewPriceClient creates a price client. An empty baseURL selects the public
// CoinGecko endpoint.
func NewPriceClient(baseURL string) *PriceClient {
	if baseURL == "" {
		baseURL = defaultPriceAPIURL
	}
	return &PriceClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// LookupPrices returns the current USD price for each requested symbol.
// Symbols the API cannot resolve are absent from the returned map; callers
// must treat absence of a required symbol as a failure.
func (p *PriceClient) LookupPrices(ctx context.Context, symbols []string) (map[string]float64, error) {
	if len(symbols) == 0 {
		return map[string]float64{}, nil
	}

	query := url.Values{}
	query.Set("ids", strings.Join(symbols, ","))
	query.Set("vs_currencies", "usd")
	requestURL := p.baseURL + "?" + query.Encode()

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		priceLogger.Debug().
			Strs("symbols", symbols).
			Int("attempt", attempt).
			Int("maxRetries", maxRetries).
			Msg("Requesting spot prices")

		prices, err := p.fetchOnce(ctx, requestURL, symbols)
		if err == nil {
			return prices, nil
		}

		lastErr = err
		priceLogger.Warn().
			Err(err).
			Strs("symbols", symbols).
			Int("attempt", attempt).
			Msg("Price request failed, will retry if attempts remain")

		if attempt < maxRetries {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * time.Second):
			}
		}
	}

	priceLogger.Error().
		Err(lastErr).
		Strs("symbols", symbols).
		Int("maxRetries", maxRetries).
		Msg("All price retry attempts failed")
	return nil, fmt.Errorf("failed to fetch prices after %d attempts: %w", maxRetries, lastErr)
}

func (p *PriceClient) fetchOnce(ctx context.Context, requestURL string, symbols []string) (map[string]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build price request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("price request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("price API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read price response: %w", err)
	}

	var decoded map[string]struct {
		USD float64 `json:"usd"`
	}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPriceData, err)
	}

	prices := make(map[string]float64, len(decoded))
	for symbol, entry := range decoded {
		if math.IsNaN(entry.USD) || math.IsInf(entry.USD, 0) {
			return nil, fmt.Errorf("%w: price for %s is not finite", ErrInvalidPriceData, symbol)
		}
		if entry.USD < 0 {
			return nil, fmt.Errorf("%w: price for %s is negative: %f", ErrInvalidPriceData, symbol, entry.USD)
		}
		prices[symbol] = entry.USD
	}

	priceLogger.Debug().
		Int("requested", len(symbols)).
		Int("resolved", len(prices)).
		Msg("Resolved spot prices")

	return prices, nil
}
