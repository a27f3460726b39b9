package services

import (
	"context"
	"math"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "folio/internal/errors"
	"folio/internal/logger"
	"folio/internal/marketdata"
	"folio/internal/models"
	"folio/internal/portfolio"
)

// portfolioService handles holdings and the portfolio load flow.
type portfolioService struct {
	db           *gorm.DB
	quotes       QuoteFetcher
	performance  PerformanceServicer
	currencyPair string
}

// NewPortfolioService creates a new PortfolioServicer. currencyPair is the
// pseudo-ticker appended to every batched quote request to obtain the
// secondary currency rate.
func NewPortfolioService(db *gorm.DB, quotes QuoteFetcher, performance PerformanceServicer, currencyPair string) PortfolioServicer {
	return &portfolioService{
		db:           db,
		quotes:       quotes,
		performance:  performance,
		currencyPair: currencyPair,
	}
}

// LoadPortfolio runs the full load flow: read holdings, read performance
// history, fetch one batched quote snapshot, enrich, aggregate, and
// reconcile the monthly performance point. A quote failure fails the whole
// load; no partially enriched view is ever returned.
func (s *portfolioService) LoadPortfolio(ctx context.Context, userID string) (*PortfolioView, error) {
	raw, err := s.getHoldings(userID)
	if err != nil {
		return nil, err
	}

	// An empty portfolio never reaches the market data service.
	if len(raw) == 0 {
		return &PortfolioView{
			Holdings:    []models.Holding{},
			Performance: []models.PerformancePoint{},
		}, nil
	}

	history, err := s.performance.GetHistory(userID)
	if err != nil {
		return nil, err
	}

	tickers := make([]string, 0, len(raw)+1)
	for _, h := range raw {
		tickers = append(tickers, h.Ticker)
	}
	tickers = append(tickers, s.currencyPair)

	quotes, err := s.quotes.GetQuotes(ctx, tickers)
	if err != nil {
		return nil, err
	}

	pair, ok := quotes[s.currencyPair]
	if !ok {
		return nil, apperrors.WithMessage(apperrors.ErrMarketData, "Currency rate missing from market data")
	}
	ccyRate := pair.RegularMarketPrice

	holdings, err := portfolio.Enrich(raw, quotes)
	if err != nil {
		return nil, err
	}

	summary := portfolio.ComputeSummary(holdings, ccyRate)
	allocation := portfolio.ComputeAllocation(holdings)

	// Reconcile only when the profit percentage is a defined number; the
	// degenerate zero-investment portfolio is rendered but not recorded.
	if summary != nil && !math.IsNaN(summary.TotalProfitPercentage) && !math.IsInf(summary.TotalProfitPercentage, 0) {
		history = s.performance.Reconcile(userID, time.Now(), summary.TotalProfitPercentage, history)
	}

	return &PortfolioView{
		Holdings:    holdings,
		Summary:     summary,
		Allocation:  allocation,
		Performance: history,
		CcyRate:     ccyRate,
	}, nil
}

// AddHolding validates and creates a new holding. The duplicate-ticker check
// runs before any market call; an unknown ticker surfaces as
// ErrTickerNotFound. The returned holding is enriched from the live quote.
func (s *portfolioService) AddHolding(ctx context.Context, userID, ticker string, shares, investment float64) (*models.Holding, error) {
	ticker = normalizeTicker(ticker)
	if err := validatePosition(ticker, shares, investment); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.Holding{}).
		Where("user_id = ? AND ticker = ?", userID, models.EscapeTicker(ticker)).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateTicker
	}

	quote, err := s.fetchQuote(ctx, ticker)
	if err != nil {
		return nil, err
	}

	holding := models.Holding{
		UserID:     userID,
		Ticker:     models.EscapeTicker(ticker),
		Shares:     shares,
		Investment: investment,
	}
	if err := s.db.Create(&holding).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	holding.Ticker = ticker
	enriched := portfolio.EnrichOne(holding, quote)
	return &enriched, nil
}

// UpdateHolding replaces the shares and investment of an existing holding,
// re-enriching it from a fresh quote.
func (s *portfolioService) UpdateHolding(ctx context.Context, userID, ticker string, shares, investment float64) (*models.Holding, error) {
	ticker = normalizeTicker(ticker)
	if err := validatePosition(ticker, shares, investment); err != nil {
		return nil, err
	}

	var holding models.Holding
	err := s.db.Where("user_id = ? AND ticker = ?", userID, models.EscapeTicker(ticker)).
		First(&holding).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrHoldingNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	quote, err := s.fetchQuote(ctx, ticker)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(&holding).Updates(map[string]interface{}{
		"shares":     shares,
		"investment": investment,
	}).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	holding.Ticker = ticker
	holding.Shares = shares
	holding.Investment = investment
	enriched := portfolio.EnrichOne(holding, quote)
	return &enriched, nil
}

// RemoveHolding deletes a holding by ticker. When the last holding goes,
// the performance history goes with it; a failure to clear it is logged but
// does not undo the removal.
func (s *portfolioService) RemoveHolding(ctx context.Context, userID, ticker string) error {
	ticker = normalizeTicker(ticker)

	result := s.db.Where("user_id = ? AND ticker = ?", userID, models.EscapeTicker(ticker)).
		Delete(&models.Holding{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrHoldingNotFound
	}

	var remaining int64
	if err := s.db.Model(&models.Holding{}).
		Where("user_id = ?", userID).
		Count(&remaining).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if remaining == 0 {
		if err := s.performance.Clear(userID); err != nil {
			logger.Get().Errorw("failed to clear performance history",
				"error", err.Error(),
			)
		}
	}

	return nil
}

// getHoldings reads a user's raw holdings in insertion order, with tickers
// converted back to display form.
func (s *portfolioService) getHoldings(userID string) ([]models.Holding, error) {
	var holdings []models.Holding
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&holdings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for i := range holdings {
		holdings[i].Ticker = models.UnescapeTicker(holdings[i].Ticker)
	}
	return holdings, nil
}

// fetchQuote fetches a single ticker's quote. A response without the symbol
// means the market data service does not know it.
func (s *portfolioService) fetchQuote(ctx context.Context, ticker string) (marketdata.Quote, error) {
	quotes, err := s.quotes.GetQuotes(ctx, []string{ticker})
	if err != nil {
		return marketdata.Quote{}, err
	}
	quote, ok := quotes[ticker]
	if !ok {
		return marketdata.Quote{}, apperrors.ErrTickerNotFound
	}
	return quote, nil
}

// normalizeTicker uppercases and trims a user-supplied ticker.
func normalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// validatePosition re-checks the form-level rules. Binding already enforces
// them at the HTTP surface; the service guards against other callers.
func validatePosition(ticker string, shares, investment float64) error {
	if ticker == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Ticker is required")
	}
	if shares <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Shares must be positive")
	}
	if investment <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Investment must be positive")
	}
	return nil
}
