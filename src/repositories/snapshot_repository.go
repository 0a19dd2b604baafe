package repositories

import (
	"context"
	"errors"

	"advisory-server/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SnapshotRepository interface {
	Upsert(ctx context.Context, snapshot *models.PortfolioSnapshot) error
	GetLatest(ctx context.Context, clientID string) (*models.PortfolioSnapshot, error)
}

type snapshotRepo struct {
	db *pgxpool.Pool
}

func NewSnapshotRepository(db *pgxpool.Pool) SnapshotRepository {
	return &snapshotRepo{db: db}
}

// Upsert replaces the stored rollup for the client. Snapshots are derived
// data, so only the latest generation is kept per client.
func (r *snapshotRepo) Upsert(ctx context.Context, snapshot *models.PortfolioSnapshot) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO portfolio_snapshots
		   (client_id, total_current_value, total_future_value, total_projected_growth, overall_growth_rate, generated_at)
		 VALUES ($1, $2, $3, $4, $5, now())
		 ON CONFLICT (client_id) DO UPDATE SET
		   total_current_value = EXCLUDED.total_current_value,
		   total_future_value = EXCLUDED.total_future_value,
		   total_projected_growth = EXCLUDED.total_projected_growth,
		   overall_growth_rate = EXCLUDED.overall_growth_rate,
		   generated_at = EXCLUDED.generated_at
		 RETURNING id, generated_at`,
		snapshot.ClientID, snapshot.TotalCurrentValue, snapshot.TotalFutureValue,
		snapshot.TotalProjectedGrowth, snapshot.OverallGrowthRate,
	).Scan(&snapshot.ID, &snapshot.GeneratedAt)
}

func (r *snapshotRepo) GetLatest(ctx context.Context, clientID string) (*models.PortfolioSnapshot, error) {
	var snapshot models.PortfolioSnapshot
	err := r.db.QueryRow(ctx,
		`SELECT id, client_id, total_current_value, total_future_value, total_projected_growth, overall_growth_rate, generated_at
		 FROM portfolio_snapshots WHERE client_id = $1`, clientID).
		Scan(&snapshot.ID, &snapshot.ClientID, &snapshot.TotalCurrentValue, &snapshot.TotalFutureValue,
			&snapshot.TotalProjectedGrowth, &snapshot.OverallGrowthRate, &snapshot.GeneratedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}
