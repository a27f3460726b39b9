package portfolio

import (
	apperrors "folio/internal/errors"
	"folio/internal/marketdata"
	"folio/internal/models"
)

// UnknownName is the placeholder used when a quote carries no long name.
const UnknownName = "Unknown"

// categoryByQuoteType maps the upstream quote type enum to display
// categories. Anything unmapped becomes CategoryUnknown.
var categoryByQuoteType = map[string]models.AssetCategory{
	"EQUITY":         models.CategoryEquity,
	"ETF":            models.CategoryETF,
	"CRYPTOCURRENCY": models.CategoryCrypto,
}

// Enrich merges persisted holding records with live quotes, computing the
// derived market fields of every holding. Tickers are matched exactly.
//
// The quotes come from a single batched upstream call, so a missing quote
// for any holding fails the whole batch: partially enriched data would mix
// live and absent figures in one view.
func Enrich(raw []models.Holding, quotes map[string]marketdata.Quote) ([]models.Holding, error) {
	enriched := make([]models.Holding, 0, len(raw))
	for _, h := range raw {
		q, ok := quotes[h.Ticker]
		if !ok {
			return nil, apperrors.WithMessage(apperrors.ErrMarketData, "No quote for ticker "+h.Ticker)
		}
		enriched = append(enriched, EnrichOne(h, q))
	}
	return enriched, nil
}

// EnrichOne computes the derived fields of a single holding from its quote.
// Absent quote fields get named defaults: zero price, UnknownName,
// CategoryUnknown. Idempotent: re-enriching with the same quote yields
// identical derived fields.
func EnrichOne(h models.Holding, q marketdata.Quote) models.Holding {
	h.Name = q.LongName
	if h.Name == "" {
		h.Name = UnknownName
	}

	category, ok := categoryByQuoteType[q.QuoteType]
	if !ok {
		category = models.CategoryUnknown
	}
	h.Category = category

	h.Price = q.RegularMarketPrice
	h.Value = h.Shares * h.Price
	h.Profit = h.Value - h.Investment
	if h.Investment != 0 {
		h.ProfitPercentage = h.Profit / h.Investment * 100
	} else {
		h.ProfitPercentage = 0
	}
	return h
}
