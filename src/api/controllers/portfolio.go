package controllers

import (
	"context"

	"advisory-server/src/repositories"
	"advisory-server/src/schemas"
	"advisory-server/src/services"
	"advisory-server/src/utils"
)

type PortfolioControllerI interface {
	GetPortfolioSnapshot(ctx context.Context, advisorID, clientID string) (*schemas.PortfolioSnapshotResponse, error)
	GetClientContext(ctx context.Context, advisorID, clientID string) (*schemas.ClientContext, error)
}

type PortfolioController struct {
	clientRepo   repositories.ClientRepository
	assetRepo    repositories.AssetRepository
	cashFlowRepo repositories.CashFlowRepository

	portfolioService services.PortfolioServiceI
	snapshotService  services.SnapshotServiceI
	contextService   services.ContextServiceI
}

func NewPortfolioController(
	clientRepo repositories.ClientRepository,
	assetRepo repositories.AssetRepository,
	cashFlowRepo repositories.CashFlowRepository,
	portfolioService services.PortfolioServiceI,
	snapshotService services.SnapshotServiceI,
	contextService services.ContextServiceI,
) *PortfolioController {
	return &PortfolioController{
		clientRepo:       clientRepo,
		assetRepo:        assetRepo,
		cashFlowRepo:     cashFlowRepo,
		portfolioService: portfolioService,
		snapshotService:  snapshotService,
		contextService:   contextService,
	}
}

// GetPortfolioSnapshot computes the rollup for one client and persists it
// as the latest derived snapshot row.
func (c *PortfolioController) GetPortfolioSnapshot(ctx context.Context, advisorID, clientID string) (*schemas.PortfolioSnapshotResponse, error) {
	client, err := c.clientRepo.GetByID(ctx, advisorID, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, utils.NotFound("client not found")
	}

	assets, err := c.assetRepo.GetAllByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	incomes, err := c.cashFlowRepo.GetIncomeSources(ctx, clientID)
	if err != nil {
		return nil, err
	}
	expenses, err := c.cashFlowRepo.GetExpenses(ctx, clientID)
	if err != nil {
		return nil, err
	}

	snapshot, err := c.snapshotService.RegenerateForClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	return &schemas.PortfolioSnapshotResponse{
		ClientID:    clientID,
		Summary:     c.portfolioService.AggregatePortfolio(assets),
		Allocations: c.portfolioService.ClassifyAllocations(assets),
		CashFlow:    c.portfolioService.MonthlyCashFlow(incomes, expenses),
		GeneratedAt: snapshot.GeneratedAt,
	}, nil
}

func (c *PortfolioController) GetClientContext(ctx context.Context, advisorID, clientID string) (*schemas.ClientContext, error) {
	return c.contextService.BuildContext(ctx, advisorID, clientID)
}
