package models

import "time"

// AssetCategory buckets an asset for allocation purposes.
type AssetCategory string

const (
	CategoryResidence  AssetCategory = "residence"
	CategoryRRSP       AssetCategory = "rrsp"
	CategoryTFSA       AssetCategory = "tfsa"
	CategoryInvestment AssetCategory = "investment"
	CategorySavings    AssetCategory = "savings"
)

type Asset struct {
	ID       string        `db:"id"`
	ClientID string        `db:"client_id"`
	Name     string        `db:"name"`
	Category AssetCategory `db:"category"`
	// CurrentValue is the present market value, never negative.
	CurrentValue  float64  `db:"current_value"`
	PurchasePrice *float64 `db:"purchase_price"`
	// GrowthRate is an annual percentage (5 means 5%), bounded to [-100, 100].
	GrowthRate float64 `db:"growth_rate"`
	// ProjectionYears is the compounding horizon for this asset, at least 1.
	ProjectionYears int       `db:"projection_years"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}
