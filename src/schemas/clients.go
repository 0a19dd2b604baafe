package schemas

import (
	"time"

	"advisory-server/src/models"
)

type CreateClientRequest struct {
	Name          string   `json:"name" validate:"required"`
	Email         string   `json:"email" validate:"required,email"`
	RiskTolerance string   `json:"risk_tolerance" validate:"required,oneof=conservative moderate aggressive"`
	DateOfBirth   *string  `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	AnnualIncome  *float64 `json:"annual_income,omitempty" validate:"omitempty,gte=0"`
	NetWorth      *float64 `json:"net_worth,omitempty"`
}

type UpdateClientRequest struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Email         *string  `json:"email,omitempty" validate:"omitempty,email"`
	RiskTolerance *string  `json:"risk_tolerance,omitempty" validate:"omitempty,oneof=conservative moderate aggressive"`
	DateOfBirth   *string  `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	AnnualIncome  *float64 `json:"annual_income,omitempty" validate:"omitempty,gte=0"`
	NetWorth      *float64 `json:"net_worth,omitempty"`
}

type ClientResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	RiskTolerance string     `json:"risk_tolerance"`
	DateOfBirth   *time.Time `json:"date_of_birth,omitempty"`
	AnnualIncome  *float64   `json:"annual_income,omitempty"`
	NetWorth      *float64   `json:"net_worth,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func NewClientResponse(client *models.Client) *ClientResponse {
	return &ClientResponse{
		ID:            client.ID,
		Name:          client.Name,
		Email:         client.Email,
		RiskTolerance: string(client.RiskTolerance),
		DateOfBirth:   client.DateOfBirth,
		AnnualIncome:  client.AnnualIncome,
		NetWorth:      client.NetWorth,
		CreatedAt:     client.CreatedAt,
		UpdatedAt:     client.UpdatedAt,
	}
}
