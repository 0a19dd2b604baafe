package models

import "time"

// PortfolioSnapshot is a derived point-in-time rollup of a client's assets.
// Rows are regenerated from assets, never authored directly.
type PortfolioSnapshot struct {
	ID                   string    `db:"id"`
	ClientID             string    `db:"client_id"`
	TotalCurrentValue    float64   `db:"total_current_value"`
	TotalFutureValue     float64   `db:"total_future_value"`
	TotalProjectedGrowth float64   `db:"total_projected_growth"`
	OverallGrowthRate    float64   `db:"overall_growth_rate"`
	GeneratedAt          time.Time `db:"generated_at"`
}
