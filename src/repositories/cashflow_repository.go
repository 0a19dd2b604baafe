package repositories

import (
	"context"

	"advisory-server/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CashFlowRepository persists income sources and expenses. Both tables share
// the same column layout so the queries are generated per table.
type CashFlowRepository interface {
	GetIncomeSources(ctx context.Context, clientID string) ([]models.IncomeSource, error)
	GetExpenses(ctx context.Context, clientID string) ([]models.Expense, error)
	CreateIncomeSource(ctx context.Context, income *models.IncomeSource) error
	CreateExpense(ctx context.Context, expense *models.Expense) error
	UpdateIncomeSource(ctx context.Context, income *models.IncomeSource) (bool, error)
	UpdateExpense(ctx context.Context, expense *models.Expense) (bool, error)
	DeleteIncomeSource(ctx context.Context, clientID, id string) (bool, error)
	DeleteExpense(ctx context.Context, clientID, id string) (bool, error)
}

type cashFlowRepo struct {
	db *pgxpool.Pool
}

func NewCashFlowRepository(db *pgxpool.Pool) CashFlowRepository {
	return &cashFlowRepo{db: db}
}

func (r *cashFlowRepo) GetIncomeSources(ctx context.Context, clientID string) ([]models.IncomeSource, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, client_id, name, amount, frequency, is_active, created_at
		 FROM income_sources WHERE client_id = $1 ORDER BY created_at`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var incomes []models.IncomeSource
	for rows.Next() {
		var income models.IncomeSource
		if err := rows.Scan(&income.ID, &income.ClientID, &income.Name, &income.Amount,
			&income.Frequency, &income.IsActive, &income.CreatedAt); err != nil {
			return nil, err
		}
		incomes = append(incomes, income)
	}
	return incomes, rows.Err()
}

func (r *cashFlowRepo) GetExpenses(ctx context.Context, clientID string) ([]models.Expense, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, client_id, name, amount, frequency, is_active, created_at
		 FROM expenses WHERE client_id = $1 ORDER BY created_at`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var expense models.Expense
		if err := rows.Scan(&expense.ID, &expense.ClientID, &expense.Name, &expense.Amount,
			&expense.Frequency, &expense.IsActive, &expense.CreatedAt); err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}

func (r *cashFlowRepo) CreateIncomeSource(ctx context.Context, income *models.IncomeSource) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO income_sources (client_id, name, amount, frequency, is_active)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
		income.ClientID, income.Name, income.Amount, income.Frequency, income.IsActive,
	).Scan(&income.ID, &income.CreatedAt)
}

func (r *cashFlowRepo) CreateExpense(ctx context.Context, expense *models.Expense) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO expenses (client_id, name, amount, frequency, is_active)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
		expense.ClientID, expense.Name, expense.Amount, expense.Frequency, expense.IsActive,
	).Scan(&expense.ID, &expense.CreatedAt)
}

func (r *cashFlowRepo) UpdateIncomeSource(ctx context.Context, income *models.IncomeSource) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE income_sources SET name = $1, amount = $2, frequency = $3, is_active = $4
		 WHERE id = $5 AND client_id = $6`,
		income.Name, income.Amount, income.Frequency, income.IsActive, income.ID, income.ClientID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *cashFlowRepo) UpdateExpense(ctx context.Context, expense *models.Expense) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE expenses SET name = $1, amount = $2, frequency = $3, is_active = $4
		 WHERE id = $5 AND client_id = $6`,
		expense.Name, expense.Amount, expense.Frequency, expense.IsActive, expense.ID, expense.ClientID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *cashFlowRepo) DeleteIncomeSource(ctx context.Context, clientID, id string) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM income_sources WHERE id = $1 AND client_id = $2`, id, clientID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *cashFlowRepo) DeleteExpense(ctx context.Context, clientID, id string) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM expenses WHERE id = $1 AND client_id = $2`, id, clientID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
