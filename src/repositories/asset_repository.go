package repositories

import (
	"context"
	"errors"

	"advisory-server/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AssetRepository interface {
	GetAllByClient(ctx context.Context, clientID string) ([]models.Asset, error)
	GetByID(ctx context.Context, clientID, id string) (*models.Asset, error)
	Create(ctx context.Context, asset *models.Asset) error
	Update(ctx context.Context, asset *models.Asset) (bool, error)
	Delete(ctx context.Context, clientID, id string) (bool, error)
}

type assetRepo struct {
	db *pgxpool.Pool
}

func NewAssetRepository(db *pgxpool.Pool) AssetRepository {
	return &assetRepo{db: db}
}

const assetColumns = `id, client_id, name, category, current_value, purchase_price, growth_rate, projection_years, created_at, updated_at`

func scanAsset(row pgx.Row) (*models.Asset, error) {
	var asset models.Asset
	err := row.Scan(
		&asset.ID, &asset.ClientID, &asset.Name, &asset.Category, &asset.CurrentValue,
		&asset.PurchasePrice, &asset.GrowthRate, &asset.ProjectionYears, &asset.CreatedAt, &asset.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *assetRepo) GetAllByClient(ctx context.Context, clientID string) ([]models.Asset, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+assetColumns+` FROM assets WHERE client_id = $1 ORDER BY created_at`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []models.Asset
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, *asset)
	}
	return assets, rows.Err()
}

func (r *assetRepo) GetByID(ctx context.Context, clientID, id string) (*models.Asset, error) {
	asset, err := scanAsset(r.db.QueryRow(ctx,
		`SELECT `+assetColumns+` FROM assets WHERE id = $1 AND client_id = $2`, id, clientID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return asset, nil
}

func (r *assetRepo) Create(ctx context.Context, asset *models.Asset) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO assets (client_id, name, category, current_value, purchase_price, growth_rate, projection_years)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		asset.ClientID, asset.Name, asset.Category, asset.CurrentValue,
		asset.PurchasePrice, asset.GrowthRate, asset.ProjectionYears,
	).Scan(&asset.ID, &asset.CreatedAt, &asset.UpdatedAt)
}

func (r *assetRepo) Update(ctx context.Context, asset *models.Asset) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE assets
		 SET name = $1, category = $2, current_value = $3, purchase_price = $4,
		     growth_rate = $5, projection_years = $6, updated_at = now()
		 WHERE id = $7 AND client_id = $8`,
		asset.Name, asset.Category, asset.CurrentValue, asset.PurchasePrice,
		asset.GrowthRate, asset.ProjectionYears, asset.ID, asset.ClientID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *assetRepo) Delete(ctx context.Context, clientID, id string) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM assets WHERE id = $1 AND client_id = $2`, id, clientID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
