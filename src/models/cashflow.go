package models

import "time"

// CashFlowFrequency is how often an income source or expense occurs.
type CashFlowFrequency string

const (
	FrequencyMonthly CashFlowFrequency = "monthly"
	FrequencyAnnual  CashFlowFrequency = "annual"
)

type IncomeSource struct {
	ID        string            `db:"id"`
	ClientID  string            `db:"client_id"`
	Name      string            `db:"name"`
	Amount    float64           `db:"amount"`
	Frequency CashFlowFrequency `db:"frequency"`
	IsActive  bool              `db:"is_active"`
	CreatedAt time.Time         `db:"created_at"`
}

type Expense struct {
	ID        string            `db:"id"`
	ClientID  string            `db:"client_id"`
	Name      string            `db:"name"`
	Amount    float64           `db:"amount"`
	Frequency CashFlowFrequency `db:"frequency"`
	IsActive  bool              `db:"is_active"`
	CreatedAt time.Time         `db:"created_at"`
}

// MonthlyAmount normalizes the amount to a monthly figure.
func (i IncomeSource) MonthlyAmount() float64 {
	return monthlyAmount(i.Amount, i.Frequency)
}

// MonthlyAmount normalizes the amount to a monthly figure.
func (e Expense) MonthlyAmount() float64 {
	return monthlyAmount(e.Amount, e.Frequency)
}

func monthlyAmount(amount float64, frequency CashFlowFrequency) float64 {
	if frequency == FrequencyAnnual {
		return amount / 12
	}
	return amount
}
