package schemas

import "time"

type ChatRequest struct {
	SessionID string `json:"session_id" validate:"required"`
	Message   string `json:"message" validate:"required,max=4000"`
}

type ChatResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
}

type ChatMessageResponse struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// PortfolioInsights is the schema-constrained shape requested from the
// model for the insights endpoint. The model response is parsed into this
// struct and validated before it reaches any caller.
type PortfolioInsights struct {
	Summary         string   `json:"summary" validate:"required"`
	RiskAssessment  string   `json:"risk_assessment" validate:"required,oneof=low medium high"`
	Recommendations []string `json:"recommendations" validate:"required,min=1,dive,required"`
}
