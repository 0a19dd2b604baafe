package services_test

import (
	"context"
	"errors"

	"advisory-server/src/models"
)

// In-memory repository fakes shared across the service tests. They track
// call counts so tests can assert which lookups actually happened.

type fakeClientRepo struct {
	clients      map[string]*models.Client
	getByIDCalls int
}

func (f *fakeClientRepo) GetAll(_ context.Context, advisorID string) ([]models.Client, error) {
	var clients []models.Client
	for _, client := range f.clients {
		if client.AdvisorID == advisorID {
			clients = append(clients, *client)
		}
	}
	return clients, nil
}

func (f *fakeClientRepo) GetByID(_ context.Context, advisorID, id string) (*models.Client, error) {
	f.getByIDCalls++
	client, ok := f.clients[id]
	if !ok || client.AdvisorID != advisorID {
		return nil, nil
	}
	return client, nil
}

func (f *fakeClientRepo) GetAllIDs(_ context.Context) ([]string, error) {
	var ids []string
	for id := range f.clients {
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *fakeClientRepo) Create(_ context.Context, client *models.Client) error {
	f.clients[client.ID] = client
	return nil
}

func (f *fakeClientRepo) Update(_ context.Context, client *models.Client) (bool, error) {
	_, ok := f.clients[client.ID]
	if ok {
		f.clients[client.ID] = client
	}
	return ok, nil
}

func (f *fakeClientRepo) Delete(_ context.Context, advisorID, id string) (bool, error) {
	client, ok := f.clients[id]
	if !ok || client.AdvisorID != advisorID {
		return false, nil
	}
	delete(f.clients, id)
	return true, nil
}

type fakeAssetRepo struct {
	assets   map[string][]models.Asset
	getCalls int
	err      error
}

func (f *fakeAssetRepo) GetAllByClient(_ context.Context, clientID string) ([]models.Asset, error) {
	f.getCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.assets[clientID], nil
}

func (f *fakeAssetRepo) GetByID(_ context.Context, clientID, id string) (*models.Asset, error) {
	for _, asset := range f.assets[clientID] {
		if asset.ID == id {
			return &asset, nil
		}
	}
	return nil, nil
}

func (f *fakeAssetRepo) Create(_ context.Context, asset *models.Asset) error {
	f.assets[asset.ClientID] = append(f.assets[asset.ClientID], *asset)
	return nil
}

func (f *fakeAssetRepo) Update(_ context.Context, asset *models.Asset) (bool, error) {
	for i, existing := range f.assets[asset.ClientID] {
		if existing.ID == asset.ID {
			f.assets[asset.ClientID][i] = *asset
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAssetRepo) Delete(_ context.Context, clientID, id string) (bool, error) {
	for i, existing := range f.assets[clientID] {
		if existing.ID == id {
			f.assets[clientID] = append(f.assets[clientID][:i], f.assets[clientID][i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeCashFlowRepo struct {
	incomes  map[string][]models.IncomeSource
	expenses map[string][]models.Expense
}

func (f *fakeCashFlowRepo) GetIncomeSources(_ context.Context, clientID string) ([]models.IncomeSource, error) {
	return f.incomes[clientID], nil
}

func (f *fakeCashFlowRepo) GetExpenses(_ context.Context, clientID string) ([]models.Expense, error) {
	return f.expenses[clientID], nil
}

func (f *fakeCashFlowRepo) CreateIncomeSource(_ context.Context, income *models.IncomeSource) error {
	f.incomes[income.ClientID] = append(f.incomes[income.ClientID], *income)
	return nil
}

func (f *fakeCashFlowRepo) CreateExpense(_ context.Context, expense *models.Expense) error {
	f.expenses[expense.ClientID] = append(f.expenses[expense.ClientID], *expense)
	return nil
}

func (f *fakeCashFlowRepo) UpdateIncomeSource(_ context.Context, income *models.IncomeSource) (bool, error) {
	for i, existing := range f.incomes[income.ClientID] {
		if existing.ID == income.ID {
			f.incomes[income.ClientID][i] = *income
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCashFlowRepo) UpdateExpense(_ context.Context, expense *models.Expense) (bool, error) {
	for i, existing := range f.expenses[expense.ClientID] {
		if existing.ID == expense.ID {
			f.expenses[expense.ClientID][i] = *expense
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCashFlowRepo) DeleteIncomeSource(_ context.Context, clientID, id string) (bool, error) {
	for i, existing := range f.incomes[clientID] {
		if existing.ID == id {
			f.incomes[clientID] = append(f.incomes[clientID][:i], f.incomes[clientID][i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCashFlowRepo) DeleteExpense(_ context.Context, clientID, id string) (bool, error) {
	for i, existing := range f.expenses[clientID] {
		if existing.ID == id {
			f.expenses[clientID] = append(f.expenses[clientID][:i], f.expenses[clientID][i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeGoalRepo struct {
	goals map[string][]models.Goal
}

func (f *fakeGoalRepo) GetAllByClient(_ context.Context, clientID string) ([]models.Goal, error) {
	return f.goals[clientID], nil
}

func (f *fakeGoalRepo) Create(_ context.Context, goal *models.Goal) error {
	f.goals[goal.ClientID] = append(f.goals[goal.ClientID], *goal)
	return nil
}

func (f *fakeGoalRepo) Delete(_ context.Context, clientID, id string) (bool, error) {
	for i, existing := range f.goals[clientID] {
		if existing.ID == id {
			f.goals[clientID] = append(f.goals[clientID][:i], f.goals[clientID][i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeSnapshotRepo struct {
	snapshots map[string]*models.PortfolioSnapshot
	err       error
}

func (f *fakeSnapshotRepo) Upsert(_ context.Context, snapshot *models.PortfolioSnapshot) error {
	if f.err != nil {
		return f.err
	}
	snapshot.ID = "snap-" + snapshot.ClientID
	f.snapshots[snapshot.ClientID] = snapshot
	return nil
}

func (f *fakeSnapshotRepo) GetLatest(_ context.Context, clientID string) (*models.PortfolioSnapshot, error) {
	return f.snapshots[clientID], nil
}

var errRepoUnavailable = errors.New("repository unavailable")
