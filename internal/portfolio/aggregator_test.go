package portfolio

import (
	"math"
	"testing"

	"folio/internal/models"
)

func holding(ticker string, category models.AssetCategory, investment, value, profit float64) models.Holding {
	return models.Holding{
		Ticker:     ticker,
		Category:   category,
		Investment: investment,
		Value:      value,
		Profit:     profit,
	}
}

func TestComputeSummary(t *testing.T) {
	t.Run("sums_and_conversions", func(t *testing.T) {
		holdings := []models.Holding{
			holding("AAPL", models.CategoryEquity, 1000, 1200, 200),
			holding("VWCE.DE", models.CategoryETF, 500, 450, -50),
		}

		summary := ComputeSummary(holdings, 22.5)
		if summary == nil {
			t.Fatal("expected a summary, got nil")
		}
		if summary.TotalInvestment != 1500 {
			t.Errorf("expected total investment 1500, got %f", summary.TotalInvestment)
		}
		if summary.TotalValue != 1650 {
			t.Errorf("expected total value 1650, got %f", summary.TotalValue)
		}
		if summary.TotalProfit != 150 {
			t.Errorf("expected total profit 150, got %f", summary.TotalProfit)
		}
		if summary.TotalInvestmentCzk != 1500*22.5 {
			t.Errorf("expected converted investment %f, got %f", 1500*22.5, summary.TotalInvestmentCzk)
		}
		if summary.TotalValueCzk != 1650*22.5 {
			t.Errorf("expected converted value %f, got %f", 1650*22.5, summary.TotalValueCzk)
		}
		if summary.TotalProfitCzk != 150*22.5 {
			t.Errorf("expected converted profit %f, got %f", 150*22.5, summary.TotalProfitCzk)
		}
		if summary.CcyRate != 22.5 {
			t.Errorf("expected rate 22.5, got %f", summary.CcyRate)
		}
		// (1650 - 1500) / 1500 * 100 = 10%
		if math.Abs(summary.TotalProfitPercentage-10) > 1e-9 {
			t.Errorf("expected profit percentage 10, got %f", summary.TotalProfitPercentage)
		}
	})

	t.Run("empty_portfolio_has_no_summary", func(t *testing.T) {
		if summary := ComputeSummary(nil, 22.5); summary != nil {
			t.Errorf("expected nil summary for empty portfolio, got %+v", summary)
		}
	})

	t.Run("zero_investment_propagates", func(t *testing.T) {
		holdings := []models.Holding{
			holding("AAPL", models.CategoryEquity, 0, 100, 100),
		}

		summary := ComputeSummary(holdings, 1)
		if summary == nil {
			t.Fatal("expected a summary, got nil")
		}
		if !math.IsInf(summary.TotalProfitPercentage, 1) {
			t.Errorf("expected +Inf profit percentage, got %f", summary.TotalProfitPercentage)
		}
	})
}

func TestComputeAllocation(t *testing.T) {
	t.Run("percentages_sum_to_hundred", func(t *testing.T) {
		holdings := []models.Holding{
			holding("AAPL", models.CategoryEquity, 333, 0, 0),
			holding("MSFT", models.CategoryEquity, 333, 0, 0),
			holding("VWCE.DE", models.CategoryETF, 334, 0, 0),
		}

		breakdown := ComputeAllocation(holdings)

		var allTotal float64
		for _, g := range breakdown.All {
			allTotal += g.Percentage
		}
		if math.Abs(allTotal-100) > 0.02 {
			t.Errorf("expected category percentages to sum to 100 within 0.02, got %f", allTotal)
		}

		var equityTotal float64
		for _, g := range breakdown.Equity {
			equityTotal += g.Percentage
		}
		if math.Abs(equityTotal-100) > 0.02 {
			t.Errorf("expected equity percentages to sum to 100 within 0.02, got %f", equityTotal)
		}
	})

	t.Run("groups_by_category_and_ticker", func(t *testing.T) {
		holdings := []models.Holding{
			holding("AAPL", models.CategoryEquity, 600, 0, 0),
			holding("VWCE.DE", models.CategoryETF, 200, 0, 0),
			holding("MSFT", models.CategoryEquity, 200, 0, 0),
		}

		breakdown := ComputeAllocation(holdings)

		if len(breakdown.All) != 2 {
			t.Fatalf("expected 2 category groups, got %d", len(breakdown.All))
		}
		// First-occurrence order: Equity appears before ETF.
		if breakdown.All[0].Name != "Equity" || breakdown.All[1].Name != "ETF" {
			t.Errorf("expected groups [Equity ETF], got [%s %s]", breakdown.All[0].Name, breakdown.All[1].Name)
		}
		if breakdown.All[0].Percentage != 80 {
			t.Errorf("expected Equity at 80%%, got %f", breakdown.All[0].Percentage)
		}
		if breakdown.All[1].Percentage != 20 {
			t.Errorf("expected ETF at 20%%, got %f", breakdown.All[1].Percentage)
		}

		if len(breakdown.Equity) != 2 {
			t.Fatalf("expected 2 equity groups, got %d", len(breakdown.Equity))
		}
		if breakdown.Equity[0].Name != "AAPL" || breakdown.Equity[0].Percentage != 75 {
			t.Errorf("expected AAPL at 75%%, got %s at %f", breakdown.Equity[0].Name, breakdown.Equity[0].Percentage)
		}
		if breakdown.Equity[1].Name != "MSFT" || breakdown.Equity[1].Percentage != 25 {
			t.Errorf("expected MSFT at 25%%, got %s at %f", breakdown.Equity[1].Name, breakdown.Equity[1].Percentage)
		}

		if len(breakdown.ETF) != 1 {
			t.Fatalf("expected 1 ETF group, got %d", len(breakdown.ETF))
		}
		if breakdown.ETF[0].Percentage != 100 {
			t.Errorf("expected VWCE.DE at 100%%, got %f", breakdown.ETF[0].Percentage)
		}
		if breakdown.Crypto != nil {
			t.Errorf("expected no crypto groups, got %v", breakdown.Crypto)
		}
	})

	t.Run("duplicate_keys_accumulate", func(t *testing.T) {
		holdings := []models.Holding{
			holding("AAPL", models.CategoryEquity, 100, 0, 0),
			holding("BTC-USD", models.CategoryCrypto, 100, 0, 0),
			holding("MSFT", models.CategoryEquity, 200, 0, 0),
		}

		breakdown := ComputeAllocation(holdings)

		if len(breakdown.All) != 2 {
			t.Fatalf("expected 2 category groups, got %d", len(breakdown.All))
		}
		if breakdown.All[0].Name != "Equity" || breakdown.All[0].Percentage != 75 {
			t.Errorf("expected Equity at 75%%, got %s at %f", breakdown.All[0].Name, breakdown.All[0].Percentage)
		}
	})

	t.Run("empty_portfolio", func(t *testing.T) {
		breakdown := ComputeAllocation(nil)
		if breakdown.All != nil || breakdown.Equity != nil || breakdown.ETF != nil || breakdown.Crypto != nil {
			t.Errorf("expected empty breakdown, got %+v", breakdown)
		}
	})

	t.Run("percentages_are_rounded", func(t *testing.T) {
		holdings := []models.Holding{
			holding("AAPL", models.CategoryEquity, 1, 0, 0),
			holding("MSFT", models.CategoryEquity, 2, 0, 0),
		}

		breakdown := ComputeAllocation(holdings)
		// 1/3 of the total investment, rounded half away from zero.
		if breakdown.Equity[0].Percentage != 33.33 {
			t.Errorf("expected 33.33, got %f", breakdown.Equity[0].Percentage)
		}
		if breakdown.Equity[1].Percentage != 66.67 {
			t.Errorf("expected 66.67, got %f", breakdown.Equity[1].Percentage)
		}
	})
}
