package schemas

// ClientContext is the structured snapshot of a client's financial state
// assembled for AI consumption. It is transient: built on demand and only
// cached keyed by client id plus a content hash of the underlying rows.
type ClientContext struct {
	ClientID      string  `json:"client_id"`
	Name          string  `json:"name"`
	RiskTolerance string  `json:"risk_tolerance"`
	Age           *int    `json:"age,omitempty"`
	AnnualIncome  *float64 `json:"annual_income,omitempty"`
	NetWorth      *float64 `json:"net_worth,omitempty"`

	Portfolio   PortfolioSummary  `json:"portfolio"`
	Allocations []AssetAllocation `json:"allocations"`
	CashFlow    MonthlyCashFlow   `json:"cash_flow"`
	Goals       []ContextGoal     `json:"goals,omitempty"`
}

type ContextGoal struct {
	Name         string  `json:"name"`
	TargetAmount float64 `json:"target_amount"`
	TargetDate   *string `json:"target_date,omitempty"`
}
