// Package marketdata implements the client for the hosted quote service.
// All tickers of a portfolio are fetched in a single batched request; the
// response carries one quote record per recognized symbol.
package marketdata

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"folio/internal/config"
	apperrors "folio/internal/errors"
	"folio/internal/logger"
)

const quotesPath = "/api/v1/markets/stock/quotes"

// Quote is a snapshot of market data for a single symbol. Any field other
// than Symbol may be absent upstream; consumers apply named defaults
// (zero price, "Unknown" name/category) instead of treating the record as
// a loose dictionary.
type Quote struct {
	Symbol             string  `json:"symbol"`
	LongName           string  `json:"longName"`
	QuoteType          string  `json:"quoteType"`
	RegularMarketPrice float64 `json:"regularMarketPrice"`
}

// quotesResponse is the upstream envelope. A non-empty Message signals an
// application-level error even on a 200 response.
type quotesResponse struct {
	Message string  `json:"message"`
	Body    []Quote `json:"body"`
}

// Client calls the quote service over HTTP.
type Client struct {
	http *resty.Client
}

// NewClient creates a quote service client from application configuration.
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetBaseURL(cfg.MarketDataURL).
		SetTimeout(cfg.MarketDataTimeout).
		SetHeader("x-rapidapi-key", cfg.MarketDataKey).
		SetHeader("x-rapidapi-host", cfg.MarketDataHost)
	return &Client{http: client}
}

// GetQuotes fetches quotes for the given tickers in one request and returns
// them keyed by symbol. Symbols the service does not recognize are simply
// absent from the result. Distinct failures: HTTP 429 maps to ErrRateLimited,
// any other transport or upstream error maps to ErrMarketData.
func (c *Client) GetQuotes(ctx context.Context, tickers []string) (map[string]Quote, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParam("ticker", strings.Join(tickers, ",")).
		Get(quotesPath)
	if err != nil {
		logger.Get().Errorw("market data request failed", "error", err.Error())
		return nil, apperrors.Wrap(apperrors.ErrMarketData, err)
	}

	if resp.StatusCode() == http.StatusTooManyRequests {
		return nil, apperrors.ErrRateLimited
	}
	if !resp.IsSuccess() {
		logger.Get().Errorw("market data request returned error status",
			"status", resp.StatusCode(),
		)
		return nil, apperrors.Wrap(apperrors.ErrMarketData, errors.New(resp.Status()))
	}

	var parsed quotesResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrMarketData, err)
	}
	if parsed.Message != "" {
		logger.Get().Errorw("market data request rejected upstream", "message", parsed.Message)
		return nil, apperrors.Wrap(apperrors.ErrMarketData, errors.New(parsed.Message))
	}

	// An empty body is not an error here: for a single-ticker lookup it
	// means "symbol unknown", which callers surface as their own domain
	// error. Batch callers detect it through the missing currency pair.
	quotes := make(map[string]Quote, len(parsed.Body))
	for _, q := range parsed.Body {
		quotes[q.Symbol] = q
	}
	return quotes, nil
}
