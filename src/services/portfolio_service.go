package services

import (
	"math"
	"sort"

	"advisory-server/src/models"
	"advisory-server/src/schemas"
)

// riskTierByCategory is the static classification table. Categories missing
// from the table fall back to medium.
var riskTierByCategory = map[models.AssetCategory]schemas.RiskTier{
	models.CategorySavings:    schemas.RiskTierLow,
	models.CategoryResidence:  schemas.RiskTierMedium,
	models.CategoryRRSP:       schemas.RiskTierMedium,
	models.CategoryTFSA:       schemas.RiskTierMedium,
	models.CategoryInvestment: schemas.RiskTierHigh,
}

type PortfolioServiceI interface {
	Compound(presentValue, rate float64, years int) float64
	AggregatePortfolio(assets []models.Asset) schemas.PortfolioSummary
	ClassifyAllocations(assets []models.Asset) []schemas.AssetAllocation
	MonthlyCashFlow(incomes []models.IncomeSource, expenses []models.Expense) schemas.MonthlyCashFlow
}

type PortfolioService struct{}

func NewPortfolioService() *PortfolioService {
	return &PortfolioService{}
}

// Compound returns the future value of presentValue compounded annually at
// the given fractional rate over years. No currency rounding is applied;
// rounding is a presentation concern.
func (ps *PortfolioService) Compound(presentValue, rate float64, years int) float64 {
	return presentValue * math.Pow(1+rate, float64(years))
}

// AggregatePortfolio sums the assets into projection totals. Every asset
// compounds independently on its own growth rate and horizon.
//
// The overall rate is annualized over the value-weighted mean projection
// horizon of the assets, so it stays consistent with the per-asset horizons
// that produced the future total.
func (ps *PortfolioService) AggregatePortfolio(assets []models.Asset) schemas.PortfolioSummary {
	var summary schemas.PortfolioSummary
	var weightedYears float64

	for _, asset := range assets {
		summary.TotalCurrentValue += asset.CurrentValue
		// growth_rate is stored as a percentage; this is the only place it
		// becomes fractional.
		summary.TotalFutureValue += ps.Compound(asset.CurrentValue, asset.GrowthRate/100, asset.ProjectionYears)
		weightedYears += asset.CurrentValue * float64(asset.ProjectionYears)
	}

	summary.TotalProjectedGrowth = summary.TotalFutureValue - summary.TotalCurrentValue

	if summary.TotalCurrentValue > 0 {
		horizon := weightedYears / summary.TotalCurrentValue
		if horizon > 0 {
			summary.OverallGrowthRate = math.Pow(summary.TotalFutureValue/summary.TotalCurrentValue, 1/horizon) - 1
		}
	}
	return summary
}

// ClassifyAllocations buckets the assets by category with each bucket's
// share of the total and its static risk tier. Percentages are 0 when the
// total value is 0.
func (ps *PortfolioService) ClassifyAllocations(assets []models.Asset) []schemas.AssetAllocation {
	valueByCategory := make(map[models.AssetCategory]float64)
	var totalValue float64

	for _, asset := range assets {
		valueByCategory[asset.Category] += asset.CurrentValue
		totalValue += asset.CurrentValue
	}

	categories := make([]models.AssetCategory, 0, len(valueByCategory))
	for category := range valueByCategory {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

	allocations := make([]schemas.AssetAllocation, 0, len(categories))
	for _, category := range categories {
		value := valueByCategory[category]
		percentage := 0.0
		if totalValue > 0 {
			percentage = value / totalValue * 100
		}
		allocations = append(allocations, schemas.AssetAllocation{
			Category:   string(category),
			Value:      value,
			Percentage: percentage,
			RiskTier:   RiskTierFor(category),
		})
	}
	return allocations
}

// MonthlyCashFlow nets active income sources against active expenses on a
// monthly basis. Inactive rows are ignored.
func (ps *PortfolioService) MonthlyCashFlow(incomes []models.IncomeSource, expenses []models.Expense) schemas.MonthlyCashFlow {
	var cashFlow schemas.MonthlyCashFlow
	for _, income := range incomes {
		if income.IsActive {
			cashFlow.MonthlyIncome += income.MonthlyAmount()
		}
	}
	for _, expense := range expenses {
		if expense.IsActive {
			cashFlow.MonthlyExpenses += expense.MonthlyAmount()
		}
	}
	cashFlow.NetCashFlow = cashFlow.MonthlyIncome - cashFlow.MonthlyExpenses
	return cashFlow
}

// RiskTierFor maps an asset category to its static risk tier.
func RiskTierFor(category models.AssetCategory) schemas.RiskTier {
	if tier, ok := riskTierByCategory[category]; ok {
		return tier
	}
	return schemas.RiskTierMedium
}
