package models

import "time"

// RiskTolerance is the advisor-assessed risk appetite of a client.
type RiskTolerance string

const (
	RiskConservative RiskTolerance = "conservative"
	RiskModerate     RiskTolerance = "moderate"
	RiskAggressive   RiskTolerance = "aggressive"
)

type Client struct {
	ID            string        `db:"id"`
	AdvisorID     string        `db:"advisor_id"`
	Name          string        `db:"name"`
	Email         string        `db:"email"`
	RiskTolerance RiskTolerance `db:"risk_tolerance"`
	DateOfBirth   *time.Time    `db:"date_of_birth"`
	AnnualIncome  *float64      `db:"annual_income"`
	NetWorth      *float64      `db:"net_worth"`
	CreatedAt     time.Time     `db:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at"`
}
