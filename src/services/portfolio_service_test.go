package services_test

import (
	"math"
	"testing"

	"advisory-server/src/models"
	"advisory-server/src/schemas"
	"advisory-server/src/services"

	"github.com/stretchr/testify/assert"
)

func TestCompound(t *testing.T) {
	ps := services.NewPortfolioService()

	t.Run("ZeroRateReturnsPrincipal", func(t *testing.T) {
		assert.Equal(t, 10000.0, ps.Compound(10000, 0, 25))
	})

	t.Run("ZeroYearsReturnsPrincipal", func(t *testing.T) {
		assert.Equal(t, 10000.0, ps.Compound(10000, 0.07, 0))
	})

	t.Run("MatchesClosedForm", func(t *testing.T) {
		got := ps.Compound(875000, 0.05, 10)
		want := 875000 * math.Pow(1.05, 10)
		assert.InDelta(t, want, got, 1e-6)
	})

	t.Run("NegativeRateShrinksValue", func(t *testing.T) {
		got := ps.Compound(1000, -0.10, 2)
		assert.InDelta(t, 810.0, got, 1e-9)
	})
}

func TestAggregatePortfolio(t *testing.T) {
	ps := services.NewPortfolioService()

	t.Run("EmptyPortfolio", func(t *testing.T) {
		summary := ps.AggregatePortfolio(nil)
		assert.Zero(t, summary.TotalCurrentValue)
		assert.Zero(t, summary.TotalFutureValue)
		assert.Zero(t, summary.TotalProjectedGrowth)
		assert.Zero(t, summary.OverallGrowthRate)
	})

	t.Run("PerAssetCompounding", func(t *testing.T) {
		assets := []models.Asset{
			{Category: models.CategoryResidence, CurrentValue: 750000, GrowthRate: 3, ProjectionYears: 5},
			{Category: models.CategoryInvestment, CurrentValue: 125000, GrowthRate: 7, ProjectionYears: 5},
		}
		summary := ps.AggregatePortfolio(assets)

		assert.InDelta(t, 875000.0, summary.TotalCurrentValue, 1e-6)
		assert.InDelta(t, 1044774.52, summary.TotalFutureValue, 0.01)
		assert.InDelta(t, 169774.52, summary.TotalProjectedGrowth, 0.01)
	})

	t.Run("OverallRateAnnualizedOverWeightedHorizon", func(t *testing.T) {
		// One asset, so the weighted horizon is the asset's own horizon and
		// the overall rate must equal the asset's fractional rate.
		assets := []models.Asset{
			{Category: models.CategorySavings, CurrentValue: 50000, GrowthRate: 4, ProjectionYears: 8},
		}
		summary := ps.AggregatePortfolio(assets)
		assert.InDelta(t, 0.04, summary.OverallGrowthRate, 1e-9)
	})

	t.Run("MixedHorizons", func(t *testing.T) {
		assets := []models.Asset{
			{Category: models.CategorySavings, CurrentValue: 100000, GrowthRate: 2, ProjectionYears: 3},
			{Category: models.CategoryInvestment, CurrentValue: 300000, GrowthRate: 6, ProjectionYears: 15},
		}
		summary := ps.AggregatePortfolio(assets)

		wantFuture := 100000*math.Pow(1.02, 3) + 300000*math.Pow(1.06, 15)
		assert.InDelta(t, wantFuture, summary.TotalFutureValue, 1e-6)

		horizon := (100000*3 + 300000*15) / 400000.0
		wantRate := math.Pow(wantFuture/400000, 1/horizon) - 1
		assert.InDelta(t, wantRate, summary.OverallGrowthRate, 1e-9)
	})

	t.Run("ZeroValuePortfolioHasZeroRate", func(t *testing.T) {
		assets := []models.Asset{
			{Category: models.CategorySavings, CurrentValue: 0, GrowthRate: 5, ProjectionYears: 10},
		}
		summary := ps.AggregatePortfolio(assets)
		assert.Zero(t, summary.TotalCurrentValue)
		assert.Zero(t, summary.OverallGrowthRate)
	})
}

func TestClassifyAllocations(t *testing.T) {
	ps := services.NewPortfolioService()

	t.Run("PercentagesSumToHundred", func(t *testing.T) {
		assets := []models.Asset{
			{Category: models.CategoryResidence, CurrentValue: 600000},
			{Category: models.CategoryRRSP, CurrentValue: 150000},
			{Category: models.CategoryTFSA, CurrentValue: 50000},
			{Category: models.CategoryInvestment, CurrentValue: 150000},
			{Category: models.CategorySavings, CurrentValue: 50000},
		}
		allocations := ps.ClassifyAllocations(assets)
		assert.Len(t, allocations, 5)

		var total float64
		for _, allocation := range allocations {
			total += allocation.Percentage
		}
		assert.InDelta(t, 100.0, total, 1e-9)
	})

	t.Run("CategoriesMergeAndMapToTiers", func(t *testing.T) {
		assets := []models.Asset{
			{Category: models.CategorySavings, CurrentValue: 30000},
			{Category: models.CategorySavings, CurrentValue: 20000},
			{Category: models.CategoryInvestment, CurrentValue: 50000},
		}
		allocations := ps.ClassifyAllocations(assets)
		assert.Len(t, allocations, 2)

		byCategory := make(map[string]schemas.AssetAllocation)
		for _, allocation := range allocations {
			byCategory[allocation.Category] = allocation
		}
		assert.InDelta(t, 50000.0, byCategory["savings"].Value, 1e-9)
		assert.InDelta(t, 50.0, byCategory["savings"].Percentage, 1e-9)
		assert.Equal(t, schemas.RiskTierLow, byCategory["savings"].RiskTier)
		assert.Equal(t, schemas.RiskTierHigh, byCategory["investment"].RiskTier)
	})

	t.Run("ZeroTotalYieldsZeroPercentages", func(t *testing.T) {
		assets := []models.Asset{
			{Category: models.CategorySavings, CurrentValue: 0},
		}
		allocations := ps.ClassifyAllocations(assets)
		assert.Len(t, allocations, 1)
		assert.Zero(t, allocations[0].Percentage)
	})

	t.Run("UnknownCategoryDefaultsToMedium", func(t *testing.T) {
		assert.Equal(t, schemas.RiskTierMedium, services.RiskTierFor(models.AssetCategory("collectibles")))
	})
}

func TestMonthlyCashFlow(t *testing.T) {
	ps := services.NewPortfolioService()

	t.Run("NormalizesAnnualAmounts", func(t *testing.T) {
		incomes := []models.IncomeSource{
			{Amount: 120000, Frequency: models.FrequencyAnnual, IsActive: true},
			{Amount: 500, Frequency: models.FrequencyMonthly, IsActive: true},
		}
		expenses := []models.Expense{
			{Amount: 3000, Frequency: models.FrequencyMonthly, IsActive: true},
		}
		cashFlow := ps.MonthlyCashFlow(incomes, expenses)
		assert.InDelta(t, 10500.0, cashFlow.MonthlyIncome, 1e-9)
		assert.InDelta(t, 3000.0, cashFlow.MonthlyExpenses, 1e-9)
		assert.InDelta(t, 7500.0, cashFlow.NetCashFlow, 1e-9)
	})

	t.Run("InactiveRowsIgnored", func(t *testing.T) {
		incomes := []models.IncomeSource{
			{Amount: 5000, Frequency: models.FrequencyMonthly, IsActive: false},
		}
		expenses := []models.Expense{
			{Amount: 12000, Frequency: models.FrequencyAnnual, IsActive: false},
		}
		cashFlow := ps.MonthlyCashFlow(incomes, expenses)
		assert.Zero(t, cashFlow.MonthlyIncome)
		assert.Zero(t, cashFlow.MonthlyExpenses)
		assert.Zero(t, cashFlow.NetCashFlow)
	})
}
