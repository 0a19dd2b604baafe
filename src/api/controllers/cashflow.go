package controllers

import (
	"context"
	"time"

	"advisory-server/src/models"
	"advisory-server/src/repositories"
	"advisory-server/src/schemas"
	"advisory-server/src/utils"
)

type CashFlowControllerI interface {
	GetIncomeSources(ctx context.Context, advisorID, clientID string) ([]models.IncomeSource, error)
	GetExpenses(ctx context.Context, advisorID, clientID string) ([]models.Expense, error)
	CreateIncomeSource(ctx context.Context, advisorID, clientID string, req *schemas.CreateCashFlowRequest) (*models.IncomeSource, error)
	CreateExpense(ctx context.Context, advisorID, clientID string, req *schemas.CreateCashFlowRequest) (*models.Expense, error)
	UpdateIncomeSource(ctx context.Context, advisorID, clientID, id string, req *schemas.UpdateCashFlowRequest) (*models.IncomeSource, error)
	UpdateExpense(ctx context.Context, advisorID, clientID, id string, req *schemas.UpdateCashFlowRequest) (*models.Expense, error)
	DeleteIncomeSource(ctx context.Context, advisorID, clientID, id string) error
	DeleteExpense(ctx context.Context, advisorID, clientID, id string) error

	GetGoals(ctx context.Context, advisorID, clientID string) ([]models.Goal, error)
	CreateGoal(ctx context.Context, advisorID, clientID string, req *schemas.CreateGoalRequest) (*models.Goal, error)
	DeleteGoal(ctx context.Context, advisorID, clientID, id string) error
}

type CashFlowController struct {
	clientRepo   repositories.ClientRepository
	cashFlowRepo repositories.CashFlowRepository
	goalRepo     repositories.GoalRepository
}

func NewCashFlowController(
	clientRepo repositories.ClientRepository,
	cashFlowRepo repositories.CashFlowRepository,
	goalRepo repositories.GoalRepository,
) *CashFlowController {
	return &CashFlowController{clientRepo: clientRepo, cashFlowRepo: cashFlowRepo, goalRepo: goalRepo}
}

func (c *CashFlowController) requireClient(ctx context.Context, advisorID, clientID string) error {
	client, err := c.clientRepo.GetByID(ctx, advisorID, clientID)
	if err != nil {
		return err
	}
	if client == nil {
		return utils.NotFound("client not found")
	}
	return nil
}

func (c *CashFlowController) GetIncomeSources(ctx context.Context, advisorID, clientID string) ([]models.IncomeSource, error) {
	if err := c.requireClient(ctx, advisorID, clientID); err != nil {
		return nil, err
	}
	return c.cashFlowRepo.GetIncomeSources(ctx, clientID)
}

func (c *CashFlowController) GetExpenses(ctx context.Context, advisorID, clientID string) ([]models.Expense, error) {
	if err := c.requireClient(ctx, advisorID, clientID); err != nil {
		return nil, err
	}
	return c.cashFlowRepo.GetExpenses(ctx, clientID)
}

func (c *CashFlowController) CreateIncomeSource(ctx context.Context, advisorID, clientID string, req *schemas.CreateCashFlowRequest) (*models.IncomeSource, error) {
	if err := c.requireClient(ctx, advisorID, clientID); err != nil {
		return nil, err
	}

	income := &models.IncomeSource{
		ClientID:  clientID,
		Name:      req.Name,
		Amount:    req.Amount,
		Frequency: models.CashFlowFrequency(req.Frequency),
		IsActive:  true,
	}
	if req.IsActive != nil {
		income.IsActive = *req.IsActive
	}
	if err := c.cashFlowRepo.CreateIncomeSource(ctx, income); err != nil {
		return nil, err
	}
	return income, nil
}

func (c *CashFlowController) CreateExpense(ctx context.Context, advisorID, clientID string, req *schemas.CreateCashFlowRequest) (*models.Expense, error) {
	if err := c.requireClient(ctx, advisorID, clientID); err != nil {
		return nil, err
	}

	expense := &models.Expense{
		ClientID:  clientID,
		Name:      req.Name,
		Amount:    req.Amount,
		Frequency: models.CashFlowFrequency(req.Frequency),
		IsActive:  true,
	}
	if req.IsActive != nil {
		expense.IsActive = *req.IsActive
	}
	if err := c.cashFlowRepo.CreateExpense(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (c *CashFlowController) UpdateIncomeSource(ctx context.Context, advisorID, clientID, id string, req *schemas.UpdateCashFlowRequest) (*models.IncomeSource, error) {
	if err := c.requireClient(ctx, advisorID, clientID); err != nil {
		return nil, err
	}

	incomes, err := c.cashFlowRepo.GetIncomeSources(ctx, clientID)
	if err != nil {
		return nil, err
	}
	var income *models.IncomeSource
	for i := range incomes {
		if incomes[i].ID == id {
			income = &incomes[i]
			break
		}
	}
	if income == nil {
		return nil, utils.NotFound("income source not found")
	}

	applyCashFlowUpdate(&income.Name, &income.Amount, &income.Frequency, &income.IsActive, req)

	updated, err := c.cashFlowRepo.UpdateIncomeSource(ctx, income)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, utils.NotFound("income source not found")
	}
	return income, nil
}

func (c *CashFlowController) UpdateExpense(ctx context.Context, advisorID, clientID, id string, req *schemas.UpdateCashFlowRequest) (*models.Expense, error) {
	if err := c.requireClient(ctx, advisorID, clientID); err != nil {
		return nil, err
	}

	expenses, err := c.cashFlowRepo.GetExpenses(ctx, clientID)
	if err != nil {
		return nil, err
	}
	var expense *models.Expense
	for i := range expenses {
		if expenses[i].ID == id {
			expense = &expenses[i]
			break
		}
	}
	if expense == nil {
		return nil, utils.NotFound("expense not found")
	}

	applyCashFlowUpdate(&expense.Name, &expense.Amount, &expense.Frequency, &expense.IsActive, req)

	updated, err := c.cashFlowRepo.UpdateExpense(ctx, expense)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, utils.NotFound("expense not found")
	}
	return expense, nil
}

func applyCashFlowUpdate(name *string, amount *float64, frequency *models.CashFlowFrequency, isActive *bool, req *schemas.UpdateCashFlowRequest) {
	if req.Name != nil {
		*name = *req.Name
	}
	if req.Amount != nil {
		*amount = *req.Amount
	}
	if req.Frequency != nil {
		*frequency = models.CashFlowFrequency(*req.Frequency)
	}
	if req.IsActive != nil {
		*isActive = *req.IsActive
	}
}

func (c *CashFlowController) DeleteIncomeSource(ctx context.Context, advisorID, clientID, id string) error {
	if err := c.requireClient(ctx, advisorID, clientID); err != nil {
		return err
	}
	deleted, err := c.cashFlowRepo.DeleteIncomeSource(ctx, clientID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return utils.NotFound("income source not found")
	}
	return nil
}

func (c *CashFlowController) DeleteExpense(ctx context.Context, advisorID, clientID, id string) error {
	if err := c.requireClient(ctx, advisorID, clientID); err != nil {
		return err
	}
	deleted, err := c.cashFlowRepo.DeleteExpense(ctx, clientID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return utils.NotFound("expense not found")
	}
	return nil
}

func (c *CashFlowController) GetGoals(ctx context.Context, advisorID, clientID string) ([]models.Goal, error) {
	if err := c.requireClient(ctx, advisorID, clientID); err != nil {
		return nil, err
	}
	return c.goalRepo.GetAllByClient(ctx, clientID)
}

func (c *CashFlowController) CreateGoal(ctx context.Context, advisorID, clientID string, req *schemas.CreateGoalRequest) (*models.Goal, error) {
	if err := c.requireClient(ctx, advisorID, clientID); err != nil {
		return nil, err
	}

	goal := &models.Goal{
		ClientID:     clientID,
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
	}
	if req.TargetDate != nil {
		date, err := time.Parse(utils.ShortDashDateLayout, *req.TargetDate)
		if err != nil {
			return nil, utils.UnprocessableEntity("invalid target_date")
		}
		goal.TargetDate = &date
	}
	if err := c.goalRepo.Create(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

func (c *CashFlowController) DeleteGoal(ctx context.Context, advisorID, clientID, id string) error {
	if err := c.requireClient(ctx, advisorID, clientID); err != nil {
		return err
	}
	deleted, err := c.goalRepo.Delete(ctx, clientID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return utils.NotFound("goal not found")
	}
	return nil
}
