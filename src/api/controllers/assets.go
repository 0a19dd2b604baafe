package controllers

import (
	"context"

	"advisory-server/src/models"
	"advisory-server/src/repositories"
	"advisory-server/src/schemas"
	"advisory-server/src/utils"
)

type AssetsControllerI interface {
	GetClientAssets(ctx context.Context, advisorID, clientID string) ([]models.Asset, error)
	CreateAsset(ctx context.Context, advisorID, clientID string, req *schemas.CreateAssetRequest) (*models.Asset, error)
	UpdateAsset(ctx context.Context, advisorID, clientID, assetID string, req *schemas.UpdateAssetRequest) (*models.Asset, error)
	DeleteAsset(ctx context.Context, advisorID, clientID, assetID string) error
}

type AssetsController struct {
	clientRepo repositories.ClientRepository
	assetRepo  repositories.AssetRepository
}

func NewAssetsController(clientRepo repositories.ClientRepository, assetRepo repositories.AssetRepository) *AssetsController {
	return &AssetsController{clientRepo: clientRepo, assetRepo: assetRepo}
}

// requireClient enforces the ownership predicate shared by every asset
// operation: the client must exist and belong to the requesting advisor.
func (c *AssetsController) requireClient(ctx context.Context, advisorID, clientID string) error {
	client, err := c.clientRepo.GetByID(ctx, advisorID, clientID)
	if err != nil {
		return err
	}
	if client == nil {
		return utils.NotFound("client not found")
	}
	return nil
}

func (c *AssetsController) GetClientAssets(ctx context.Context, advisorID, clientID string) ([]models.Asset, error) {
	if err := c.requireClient(ctx, advisorID, clientID); err != nil {
		return nil, err
	}
	return c.assetRepo.GetAllByClient(ctx, clientID)
}

func (c *AssetsController) CreateAsset(ctx context.Context, advisorID, clientID string, req *schemas.CreateAssetRequest) (*models.Asset, error) {
	if err := c.requireClient(ctx, advisorID, clientID); err != nil {
		return nil, err
	}

	asset := &models.Asset{
		ClientID:        clientID,
		Name:            req.Name,
		Category:        models.AssetCategory(req.Category),
		CurrentValue:    req.CurrentValue,
		PurchasePrice:   req.PurchasePrice,
		GrowthRate:      req.GrowthRate,
		ProjectionYears: req.ProjectionYears,
	}
	if err := c.assetRepo.Create(ctx, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

func (c *AssetsController) UpdateAsset(ctx context.Context, advisorID, clientID, assetID string, req *schemas.UpdateAssetRequest) (*models.Asset, error) {
	if err := c.requireClient(ctx, advisorID, clientID); err != nil {
		return nil, err
	}

	asset, err := c.assetRepo.GetByID(ctx, clientID, assetID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, utils.NotFound("asset not found")
	}

	if req.Name != nil {
		asset.Name = *req.Name
	}
	if req.Category != nil {
		asset.Category = models.AssetCategory(*req.Category)
	}
	if req.CurrentValue != nil {
		asset.CurrentValue = *req.CurrentValue
	}
	if req.PurchasePrice != nil {
		asset.PurchasePrice = req.PurchasePrice
	}
	if req.GrowthRate != nil {
		asset.GrowthRate = *req.GrowthRate
	}
	if req.ProjectionYears != nil {
		asset.ProjectionYears = *req.ProjectionYears
	}

	updated, err := c.assetRepo.Update(ctx, asset)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, utils.NotFound("asset not found")
	}
	return asset, nil
}

func (c *AssetsController) DeleteAsset(ctx context.Context, advisorID, clientID, assetID string) error {
	if err := c.requireClient(ctx, advisorID, clientID); err != nil {
		return err
	}

	deleted, err := c.assetRepo.Delete(ctx, clientID, assetID)
	if err != nil {
		return err
	}
	if !deleted {
		return utils.NotFound("asset not found")
	}
	return nil
}
