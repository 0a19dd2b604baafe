package controllers

import (
	"context"
	"time"

	"advisory-server/src/models"
	"advisory-server/src/repositories"
	"advisory-server/src/schemas"
	"advisory-server/src/utils"
)

type ClientsControllerI interface {
	GetAllClients(ctx context.Context, advisorID string) ([]*schemas.ClientResponse, error)
	GetClientByID(ctx context.Context, advisorID, id string) (*schemas.ClientResponse, error)
	CreateClient(ctx context.Context, advisorID string, req *schemas.CreateClientRequest) (*schemas.ClientResponse, error)
	UpdateClient(ctx context.Context, advisorID, id string, req *schemas.UpdateClientRequest) (*schemas.ClientResponse, error)
	DeleteClient(ctx context.Context, advisorID, id string) error
}

type ClientsController struct {
	clientRepo repositories.ClientRepository
}

func NewClientsController(clientRepo repositories.ClientRepository) *ClientsController {
	return &ClientsController{clientRepo: clientRepo}
}

func (c *ClientsController) GetAllClients(ctx context.Context, advisorID string) ([]*schemas.ClientResponse, error) {
	clients, err := c.clientRepo.GetAll(ctx, advisorID)
	if err != nil {
		return nil, err
	}
	responses := make([]*schemas.ClientResponse, len(clients))
	for i := range clients {
		responses[i] = schemas.NewClientResponse(&clients[i])
	}
	return responses, nil
}

func (c *ClientsController) GetClientByID(ctx context.Context, advisorID, id string) (*schemas.ClientResponse, error) {
	client, err := c.clientRepo.GetByID(ctx, advisorID, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, utils.NotFound("client not found")
	}
	return schemas.NewClientResponse(client), nil
}

func (c *ClientsController) CreateClient(ctx context.Context, advisorID string, req *schemas.CreateClientRequest) (*schemas.ClientResponse, error) {
	client := &models.Client{
		AdvisorID:     advisorID,
		Name:          req.Name,
		Email:         req.Email,
		RiskTolerance: models.RiskTolerance(req.RiskTolerance),
		AnnualIncome:  req.AnnualIncome,
		NetWorth:      req.NetWorth,
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse(utils.ShortDashDateLayout, *req.DateOfBirth)
		if err != nil {
			return nil, utils.UnprocessableEntity("invalid date_of_birth")
		}
		client.DateOfBirth = &dob
	}

	if err := c.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return schemas.NewClientResponse(client), nil
}

func (c *ClientsController) UpdateClient(ctx context.Context, advisorID, id string, req *schemas.UpdateClientRequest) (*schemas.ClientResponse, error) {
	client, err := c.clientRepo.GetByID(ctx, advisorID, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, utils.NotFound("client not found")
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.RiskTolerance != nil {
		client.RiskTolerance = models.RiskTolerance(*req.RiskTolerance)
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse(utils.ShortDashDateLayout, *req.DateOfBirth)
		if err != nil {
			return nil, utils.UnprocessableEntity("invalid date_of_birth")
		}
		client.DateOfBirth = &dob
	}
	if req.AnnualIncome != nil {
		client.AnnualIncome = req.AnnualIncome
	}
	if req.NetWorth != nil {
		client.NetWorth = req.NetWorth
	}

	updated, err := c.clientRepo.Update(ctx, client)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, utils.NotFound("client not found")
	}
	return schemas.NewClientResponse(client), nil
}

func (c *ClientsController) DeleteClient(ctx context.Context, advisorID, id string) error {
	deleted, err := c.clientRepo.Delete(ctx, advisorID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return utils.NotFound("client not found")
	}
	return nil
}
