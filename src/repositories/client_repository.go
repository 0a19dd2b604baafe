package repositories

import (
	"context"
	"errors"

	"advisory-server/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ClientRepository interface {
	GetAll(ctx context.Context, advisorID string) ([]models.Client, error)
	GetByID(ctx context.Context, advisorID, id string) (*models.Client, error)
	GetAllIDs(ctx context.Context) ([]string, error)
	Create(ctx context.Context, client *models.Client) error
	Update(ctx context.Context, client *models.Client) (bool, error)
	Delete(ctx context.Context, advisorID, id string) (bool, error)
}

type clientRepo struct {
	db *pgxpool.Pool
}

func NewClientRepository(db *pgxpool.Pool) ClientRepository {
	return &clientRepo{db: db}
}

const clientColumns = `id, advisor_id, name, email, risk_tolerance, date_of_birth, annual_income, net_worth, created_at, updated_at`

func scanClient(row pgx.Row) (*models.Client, error) {
	var client models.Client
	err := row.Scan(
		&client.ID, &client.AdvisorID, &client.Name, &client.Email, &client.RiskTolerance,
		&client.DateOfBirth, &client.AnnualIncome, &client.NetWorth, &client.CreatedAt, &client.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepo) GetAll(ctx context.Context, advisorID string) ([]models.Client, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE advisor_id = $1 ORDER BY created_at`, advisorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []models.Client
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, *client)
	}
	return clients, rows.Err()
}

// GetByID returns nil without error when no row matches the advisor scope.
func (r *clientRepo) GetByID(ctx context.Context, advisorID, id string) (*models.Client, error) {
	client, err := scanClient(r.db.QueryRow(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = $1 AND advisor_id = $2`, id, advisorID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return client, nil
}

// GetAllIDs lists every client id regardless of advisor. Used by the
// snapshot scheduler only.
func (r *clientRepo) GetAllIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM clients`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *clientRepo) Create(ctx context.Context, client *models.Client) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO clients (advisor_id, name, email, risk_tolerance, date_of_birth, annual_income, net_worth)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		client.AdvisorID, client.Name, client.Email, client.RiskTolerance,
		client.DateOfBirth, client.AnnualIncome, client.NetWorth,
	).Scan(&client.ID, &client.CreatedAt, &client.UpdatedAt)
}

func (r *clientRepo) Update(ctx context.Context, client *models.Client) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE clients
		 SET name = $1, email = $2, risk_tolerance = $3, date_of_birth = $4,
		     annual_income = $5, net_worth = $6, updated_at = now()
		 WHERE id = $7 AND advisor_id = $8`,
		client.Name, client.Email, client.RiskTolerance, client.DateOfBirth,
		client.AnnualIncome, client.NetWorth, client.ID, client.AdvisorID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes the client; owned assets, cash-flow rows, goals and chat
// history cascade at the database level.
func (r *clientRepo) Delete(ctx context.Context, advisorID, id string) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM clients WHERE id = $1 AND advisor_id = $2`, id, advisorID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
