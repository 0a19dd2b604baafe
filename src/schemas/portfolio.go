package schemas

import "time"

// RiskTier is the static risk classification of an asset category.
type RiskTier string

const (
	RiskTierLow    RiskTier = "low"
	RiskTierMedium RiskTier = "medium"
	RiskTierHigh   RiskTier = "high"
)

// PortfolioSummary aggregates a client's assets into projection totals.
type PortfolioSummary struct {
	TotalCurrentValue    float64 `json:"total_current_value"`
	TotalFutureValue     float64 `json:"total_future_value"`
	TotalProjectedGrowth float64 `json:"total_projected_growth"`
	// OverallGrowthRate is an annualized fractional rate derived from the
	// current/future totals.
	OverallGrowthRate float64 `json:"overall_growth_rate"`
}

// AssetAllocation is one category bucket of a client's portfolio.
type AssetAllocation struct {
	Category   string   `json:"category"`
	Value      float64  `json:"value"`
	Percentage float64  `json:"percentage"`
	RiskTier   RiskTier `json:"risk_tier"`
}

// PortfolioSnapshotResponse is the on-demand rollup served by the portfolio
// endpoint.
type PortfolioSnapshotResponse struct {
	ClientID    string            `json:"client_id"`
	Summary     PortfolioSummary  `json:"summary"`
	Allocations []AssetAllocation `json:"allocations"`
	CashFlow    MonthlyCashFlow   `json:"cash_flow"`
	GeneratedAt time.Time         `json:"generated_at"`
}

// MonthlyCashFlow is the net monthly income position of a client.
type MonthlyCashFlow struct {
	MonthlyIncome   float64 `json:"monthly_income"`
	MonthlyExpenses float64 `json:"monthly_expenses"`
	NetCashFlow     float64 `json:"net_cash_flow"`
}
