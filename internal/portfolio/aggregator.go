// Package portfolio contains the computational core of the tracker: merging
// persisted holdings with live quotes, deriving summary and allocation
// views, and the monthly performance reconciliation rule. Everything here is
// pure; persistence and network calls live in the service layer.
package portfolio

import (
	"math"

	"github.com/shopspring/decimal"

	"folio/internal/models"
)

// Summary holds portfolio-wide totals, each also converted to the secondary
// currency via the live rate. It is recomputed on every load and never
// persisted.
type Summary struct {
	CcyRate               float64 `json:"ccy_rate"`
	TotalInvestment       float64 `json:"total_investment"`
	TotalInvestmentCzk    float64 `json:"total_investment_czk"`
	TotalValue            float64 `json:"total_value"`
	TotalValueCzk         float64 `json:"total_value_czk"`
	TotalProfit           float64 `json:"total_profit"`
	TotalProfitCzk        float64 `json:"total_profit_czk"`
	TotalProfitPercentage float64 `json:"total_profit_percentage"`
}

// ComputeSummary derives the summary totals for a portfolio. An empty
// portfolio has no summary: callers must render "no data", not zeros.
//
// A portfolio whose total investment is zero yields an Inf/NaN profit
// percentage. That input is a genuine degenerate state (every holding fully
// written off), so the value is propagated rather than silently corrected.
func ComputeSummary(holdings []models.Holding, ccyRate float64) *Summary {
	if len(holdings) == 0 {
		return nil
	}

	var totalInvestment, totalValue, totalProfit float64
	for _, h := range holdings {
		totalInvestment += h.Investment
		totalValue += h.Value
		totalProfit += h.Profit
	}

	return &Summary{
		CcyRate:               ccyRate,
		TotalInvestment:       totalInvestment,
		TotalInvestmentCzk:    totalInvestment * ccyRate,
		TotalValue:            totalValue,
		TotalValueCzk:         totalValue * ccyRate,
		TotalProfit:           totalProfit,
		TotalProfitCzk:        totalProfit * ccyRate,
		TotalProfitPercentage: (totalValue - totalInvestment) / totalInvestment * 100,
	}
}

// AllocationGroup is one grouping entry of a breakdown view: the group name
// and its share of the view's total investment.
type AllocationGroup struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

// AllocationBreakdown holds the four percentage-of-investment views: all
// holdings grouped by category, and each category grouped by ticker.
// Group order is first-occurrence order; any display sort is up to the
// consumer.
type AllocationBreakdown struct {
	All    []AllocationGroup `json:"all"`
	Equity []AllocationGroup `json:"equity"`
	ETF    []AllocationGroup `json:"etf"`
	Crypto []AllocationGroup `json:"crypto"`
}

// ComputeAllocation derives the allocation breakdown for a portfolio.
// An empty portfolio produces an empty breakdown.
func ComputeAllocation(holdings []models.Holding) AllocationBreakdown {
	if len(holdings) == 0 {
		return AllocationBreakdown{}
	}

	byCategory := func(h models.Holding) string { return string(h.Category) }
	byTicker := func(h models.Holding) string { return h.Ticker }

	return AllocationBreakdown{
		All:    groupPercentages(holdings, byCategory),
		Equity: groupPercentages(filterCategory(holdings, models.CategoryEquity), byTicker),
		ETF:    groupPercentages(filterCategory(holdings, models.CategoryETF), byTicker),
		Crypto: groupPercentages(filterCategory(holdings, models.CategoryCrypto), byTicker),
	}
}

// filterCategory returns the holdings of a single category, preserving order.
func filterCategory(holdings []models.Holding, category models.AssetCategory) []models.Holding {
	var filtered []models.Holding
	for _, h := range holdings {
		if h.Category == category {
			filtered = append(filtered, h)
		}
	}
	return filtered
}

// groupPercentages sums investment per group key in first-occurrence order
// and expresses each sum as a rounded percentage of the subset total.
// A zero subset total propagates Inf/NaN, same policy as ComputeSummary.
func groupPercentages(holdings []models.Holding, key func(models.Holding) string) []AllocationGroup {
	if len(holdings) == 0 {
		return nil
	}

	var total float64
	sums := make(map[string]float64, len(holdings))
	order := make([]string, 0, len(holdings))
	for _, h := range holdings {
		total += h.Investment
		k := key(h)
		if _, seen := sums[k]; !seen {
			order = append(order, k)
		}
		sums[k] += h.Investment
	}

	groups := make([]AllocationGroup, 0, len(order))
	for _, k := range order {
		groups = append(groups, AllocationGroup{
			Name:       k,
			Percentage: round2(sums[k] / total * 100),
		})
	}
	return groups
}

// round2 rounds to two decimal places, half away from zero. NaN and Inf pass
// through untouched (decimal cannot represent them, and masking them would
// hide a degenerate input).
func round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	rounded, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return rounded
}
