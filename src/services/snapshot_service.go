package services

import (
	"context"

	"advisory-server/src/models"
	"advisory-server/src/repositories"
	"advisory-server/src/utils"
)

type SnapshotServiceI interface {
	RegenerateForClient(ctx context.Context, clientID string) (*models.PortfolioSnapshot, error)
	RegenerateAll(ctx context.Context) error
}

// SnapshotService regenerates derived portfolio rollups from asset rows.
type SnapshotService struct {
	clientRepo   repositories.ClientRepository
	assetRepo    repositories.AssetRepository
	snapshotRepo repositories.SnapshotRepository
	portfolio    PortfolioServiceI
}

func NewSnapshotService(
	clientRepo repositories.ClientRepository,
	assetRepo repositories.AssetRepository,
	snapshotRepo repositories.SnapshotRepository,
	portfolio PortfolioServiceI,
) *SnapshotService {
	return &SnapshotService{
		clientRepo:   clientRepo,
		assetRepo:    assetRepo,
		snapshotRepo: snapshotRepo,
		portfolio:    portfolio,
	}
}

func (ss *SnapshotService) RegenerateForClient(ctx context.Context, clientID string) (*models.PortfolioSnapshot, error) {
	assets, err := ss.assetRepo.GetAllByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	summary := ss.portfolio.AggregatePortfolio(assets)
	snapshot := &models.PortfolioSnapshot{
		ClientID:             clientID,
		TotalCurrentValue:    summary.TotalCurrentValue,
		TotalFutureValue:     summary.TotalFutureValue,
		TotalProjectedGrowth: summary.TotalProjectedGrowth,
		OverallGrowthRate:    summary.OverallGrowthRate,
	}
	if err := ss.snapshotRepo.Upsert(ctx, snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// RegenerateAll rebuilds the snapshot of every client. A failure on one
// client is logged and does not stop the rest.
func (ss *SnapshotService) RegenerateAll(ctx context.Context) error {
	logger := utils.LoggerFromContext(ctx)

	ids, err := ss.clientRepo.GetAllIDs(ctx)
	if err != nil {
		return err
	}

	for _, id := range ids {
		if _, err := ss.RegenerateForClient(ctx, id); err != nil {
			logger.Errorf("failed to regenerate snapshot for client %s: %v", id, err)
		}
	}
	return nil
}
