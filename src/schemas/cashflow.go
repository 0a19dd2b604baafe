package schemas

type CreateCashFlowRequest struct {
	Name      string  `json:"name" validate:"required"`
	Amount    float64 `json:"amount" validate:"gte=0"`
	Frequency string  `json:"frequency" validate:"required,oneof=monthly annual"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

type UpdateCashFlowRequest struct {
	Name      *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Amount    *float64 `json:"amount,omitempty" validate:"omitempty,gte=0"`
	Frequency *string  `json:"frequency,omitempty" validate:"omitempty,oneof=monthly annual"`
	IsActive  *bool    `json:"is_active,omitempty"`
}

type CreateGoalRequest struct {
	Name         string  `json:"name" validate:"required"`
	TargetAmount float64 `json:"target_amount" validate:"gt=0"`
	TargetDate   *string `json:"target_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
