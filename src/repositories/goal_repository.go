package repositories

import (
	"context"

	"advisory-server/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type GoalRepository interface {
	GetAllByClient(ctx context.Context, clientID string) ([]models.Goal, error)
	Create(ctx context.Context, goal *models.Goal) error
	Delete(ctx context.Context, clientID, id string) (bool, error)
}

type goalRepo struct {
	db *pgxpool.Pool
}

func NewGoalRepository(db *pgxpool.Pool) GoalRepository {
	return &goalRepo{db: db}
}

func (r *goalRepo) GetAllByClient(ctx context.Context, clientID string) ([]models.Goal, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, client_id, name, target_amount, target_date, created_at
		 FROM goals WHERE client_id = $1 ORDER BY created_at`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		var goal models.Goal
		if err := rows.Scan(&goal.ID, &goal.ClientID, &goal.Name,
			&goal.TargetAmount, &goal.TargetDate, &goal.CreatedAt); err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}
	return goals, rows.Err()
}

func (r *goalRepo) Create(ctx context.Context, goal *models.Goal) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO goals (client_id, name, target_amount, target_date)
		 VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		goal.ClientID, goal.Name, goal.TargetAmount, goal.TargetDate,
	).Scan(&goal.ID, &goal.CreatedAt)
}

func (r *goalRepo) Delete(ctx context.Context, clientID, id string) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM goals WHERE id = $1 AND client_id = $2`, id, clientID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
