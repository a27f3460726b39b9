package services

import (
	"context"
	"time"

	"folio/internal/marketdata"
	"folio/internal/models"
	"folio/internal/portfolio"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	AttemptLogin(email, password string) (*models.User, error)
}

// QuoteFetcher is the market data boundary consumed by the portfolio
// service. The production implementation is marketdata.Client.
type QuoteFetcher interface {
	GetQuotes(ctx context.Context, tickers []string) (map[string]marketdata.Quote, error)
}

// PortfolioView is the fully derived state of one portfolio load: enriched
// holdings, summary (nil for an empty portfolio), allocation breakdown, and
// the performance history after reconciliation.
type PortfolioView struct {
	Holdings    []models.Holding              `json:"holdings"`
	Summary     *portfolio.Summary            `json:"summary"`
	Allocation  portfolio.AllocationBreakdown `json:"allocation"`
	Performance []models.PerformancePoint     `json:"performance"`
	CcyRate     float64                       `json:"ccy_rate"`
}

// PortfolioServicer defines the contract for holdings and the load flow.
type PortfolioServicer interface {
	LoadPortfolio(ctx context.Context, userID string) (*PortfolioView, error)
	AddHolding(ctx context.Context, userID, ticker string, shares, investment float64) (*models.Holding, error)
	UpdateHolding(ctx context.Context, userID, ticker string, shares, investment float64) (*models.Holding, error)
	RemoveHolding(ctx context.Context, userID, ticker string) error
}

// PerformanceServicer defines the contract for the monthly performance
// time series.
type PerformanceServicer interface {
	GetHistory(userID string) ([]models.PerformancePoint, error)
	Reconcile(userID string, now time.Time, profitPct float64, history []models.PerformancePoint) []models.PerformancePoint
	Clear(userID string) error
}
