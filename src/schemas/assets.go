package schemas

type CreateAssetRequest struct {
	Name          string   `json:"name" validate:"required"`
	Category      string   `json:"category" validate:"required,oneof=residence rrsp tfsa investment savings"`
	CurrentValue  float64  `json:"current_value" validate:"gte=0"`
	PurchasePrice *float64 `json:"purchase_price,omitempty" validate:"omitempty,gte=0"`
	// GrowthRate is an annual percentage, e.g. 5 for 5%.
	GrowthRate      float64 `json:"growth_rate" validate:"gte=-100,lte=100"`
	ProjectionYears int     `json:"projection_years" validate:"gte=1"`
}

type UpdateAssetRequest struct {
	Name            *string  `json:"name,omitempty" validate:"omitempty,min=1"`
	Category        *string  `json:"category,omitempty" validate:"omitempty,oneof=residence rrsp tfsa investment savings"`
	CurrentValue    *float64 `json:"current_value,omitempty" validate:"omitempty,gte=0"`
	PurchasePrice   *float64 `json:"purchase_price,omitempty" validate:"omitempty,gte=0"`
	GrowthRate      *float64 `json:"growth_rate,omitempty" validate:"omitempty,gte=-100,lte=100"`
	ProjectionYears *int     `json:"projection_years,omitempty" validate:"omitempty,gte=1"`
}
