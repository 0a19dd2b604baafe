package services_test

import (
	"context"
	"testing"
	"time"

	"advisory-server/src/models"
	"advisory-server/src/services"
	"advisory-server/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func newContextFixture() (*services.ContextService, *fakeClientRepo, *fakeAssetRepo) {
	dob := time.Date(1980, 6, 15, 0, 0, 0, 0, time.UTC)
	clientRepo := &fakeClientRepo{clients: map[string]*models.Client{
		"client-1": {
			ID:            "client-1",
			AdvisorID:     "advisor-1",
			Name:          "Dana Whitfield",
			Email:         "dana@example.com",
			RiskTolerance: models.RiskModerate,
			DateOfBirth:   &dob,
			AnnualIncome:  floatPtr(145000),
			NetWorth:      floatPtr(920000),
		},
	}}
	assetRepo := &fakeAssetRepo{assets: map[string][]models.Asset{
		"client-1": {
			{ID: "asset-1", ClientID: "client-1", Category: models.CategoryResidence, CurrentValue: 750000, GrowthRate: 3, ProjectionYears: 5},
			{ID: "asset-2", ClientID: "client-1", Category: models.CategoryInvestment, CurrentValue: 125000, GrowthRate: 7, ProjectionYears: 5},
		},
	}}
	cashFlowRepo := &fakeCashFlowRepo{
		incomes: map[string][]models.IncomeSource{
			"client-1": {{ID: "inc-1", ClientID: "client-1", Amount: 145000, Frequency: models.FrequencyAnnual, IsActive: true}},
		},
		expenses: map[string][]models.Expense{
			"client-1": {{ID: "exp-1", ClientID: "client-1", Amount: 4200, Frequency: models.FrequencyMonthly, IsActive: true}},
		},
	}
	targetDate := time.Date(2040, 1, 1, 0, 0, 0, 0, time.UTC)
	goalRepo := &fakeGoalRepo{goals: map[string][]models.Goal{
		"client-1": {{ID: "goal-1", ClientID: "client-1", Name: "Retirement", TargetAmount: 2000000, TargetDate: &targetDate}},
	}}

	service := services.NewContextService(clientRepo, assetRepo, cashFlowRepo, goalRepo, services.NewPortfolioService(), nil)
	return service, clientRepo, assetRepo
}

func TestBuildContext(t *testing.T) {
	t.Run("AssemblesFullContext", func(t *testing.T) {
		service, _, _ := newContextFixture()

		clientContext, err := service.BuildContext(context.Background(), "advisor-1", "client-1")
		require.NoError(t, err)
		require.NotNil(t, clientContext)

		assert.Equal(t, "client-1", clientContext.ClientID)
		assert.Equal(t, "Dana Whitfield", clientContext.Name)
		assert.Equal(t, "moderate", clientContext.RiskTolerance)
		require.NotNil(t, clientContext.Age)
		assert.Equal(t, utils.CalculateAge(time.Date(1980, 6, 15, 0, 0, 0, 0, time.UTC), time.Now()), *clientContext.Age)

		assert.InDelta(t, 875000.0, clientContext.Portfolio.TotalCurrentValue, 1e-6)
		assert.InDelta(t, 1044774.52, clientContext.Portfolio.TotalFutureValue, 0.01)
		assert.Len(t, clientContext.Allocations, 2)

		// 145000/12 income against 4200 monthly expenses.
		assert.InDelta(t, 145000.0/12-4200, clientContext.CashFlow.NetCashFlow, 1e-9)

		require.Len(t, clientContext.Goals, 1)
		assert.Equal(t, "Retirement", clientContext.Goals[0].Name)
		require.NotNil(t, clientContext.Goals[0].TargetDate)
		assert.Equal(t, "2040-01-01", *clientContext.Goals[0].TargetDate)
	})

	t.Run("UnknownClientIsNotFound", func(t *testing.T) {
		service, _, assetRepo := newContextFixture()

		clientContext, err := service.BuildContext(context.Background(), "advisor-1", "client-404")
		assert.Nil(t, clientContext)
		require.Error(t, err)

		var httpErr *utils.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 404, httpErr.Code)
		// The ownership check fails before any owned rows are fetched.
		assert.Zero(t, assetRepo.getCalls)
	})

	t.Run("OtherAdvisorsClientIsNotFound", func(t *testing.T) {
		service, _, assetRepo := newContextFixture()

		clientContext, err := service.BuildContext(context.Background(), "advisor-2", "client-1")
		assert.Nil(t, clientContext)
		require.Error(t, err)

		var httpErr *utils.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 404, httpErr.Code)
		assert.Zero(t, assetRepo.getCalls)
	})

	t.Run("RepositoryErrorPropagates", func(t *testing.T) {
		service, _, assetRepo := newContextFixture()
		assetRepo.err = errRepoUnavailable

		_, err := service.BuildContext(context.Background(), "advisor-1", "client-1")
		assert.ErrorIs(t, err, errRepoUnavailable)
	})
}
