package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"advisory-server/src/clients/openai"
	"advisory-server/src/models"
	"advisory-server/src/repositories"
	"advisory-server/src/schemas"
	"advisory-server/src/services"
	"advisory-server/src/utils"
)

const chatSystemPrompt = `You are a financial advisory assistant. You answer questions from a licensed
advisor about one of their clients. Base every answer strictly on the client
context JSON provided with the question. Be concise and never invent figures
that are not present in the context.`

const insightsSystemPrompt = `You are a financial advisory assistant. Given a client context JSON, produce
a portfolio review following the requested JSON schema exactly.`

// insightsSchema constrains the model output for the insights endpoint.
var insightsSchema = json.RawMessage(`{
	"type": "object",
	"additionalProperties": false,
	"required": ["summary", "risk_assessment", "recommendations"],
	"properties": {
		"summary": {"type": "string"},
		"risk_assessment": {"type": "string", "enum": ["low", "medium", "high"]},
		"recommendations": {"type": "array", "items": {"type": "string"}, "minItems": 1}
	}
}`)

type ChatControllerI interface {
	SendMessage(ctx context.Context, advisorID, clientID string, req *schemas.ChatRequest) (*schemas.ChatResponse, error)
	GetSessionHistory(ctx context.Context, advisorID, clientID, sessionID string) ([]schemas.ChatMessageResponse, error)
	GetInsights(ctx context.Context, advisorID, clientID string) (*schemas.PortfolioInsights, error)
}

type ChatController struct {
	clientRepo     repositories.ClientRepository
	chatRepo       repositories.ChatRepository
	contextService services.ContextServiceI
	openAIClient   openai.OpenAIServiceClientI
}

func NewChatController(
	clientRepo repositories.ClientRepository,
	chatRepo repositories.ChatRepository,
	contextService services.ContextServiceI,
	openAIClient openai.OpenAIServiceClientI,
) *ChatController {
	return &ChatController{
		clientRepo:     clientRepo,
		chatRepo:       chatRepo,
		contextService: contextService,
		openAIClient:   openAIClient,
	}
}

// SendMessage runs one chat turn: build the client context, call the model,
// then persist the user/assistant message pair under the session id. The
// context build fails first on unknown or unowned clients, so no model call
// is made in that case.
func (c *ChatController) SendMessage(ctx context.Context, advisorID, clientID string, req *schemas.ChatRequest) (*schemas.ChatResponse, error) {
	clientContext, err := c.contextService.BuildContext(ctx, advisorID, clientID)
	if err != nil {
		return nil, err
	}

	prompt, err := composePrompt(req.Message, clientContext)
	if err != nil {
		return nil, err
	}

	reply, err := c.openAIClient.CreateChatCompletion(ctx, chatSystemPrompt, prompt)
	if err != nil {
		utils.LoggerFromContext(ctx).Errorf("chat completion failed: %v", err)
		return nil, utils.ServiceUnavailable("the assistant is temporarily unavailable")
	}

	userMessage := &models.ChatMessage{
		ClientID:  clientID,
		SessionID: req.SessionID,
		Role:      models.RoleUser,
		Content:   req.Message,
	}
	assistantMessage := &models.ChatMessage{
		ClientID:  clientID,
		SessionID: req.SessionID,
		Role:      models.RoleAssistant,
		Content:   reply,
	}
	if err := c.chatRepo.Create(ctx, userMessage); err != nil {
		return nil, err
	}
	if err := c.chatRepo.Create(ctx, assistantMessage); err != nil {
		return nil, err
	}

	return &schemas.ChatResponse{SessionID: req.SessionID, Reply: reply}, nil
}

func (c *ChatController) GetSessionHistory(ctx context.Context, advisorID, clientID, sessionID string) ([]schemas.ChatMessageResponse, error) {
	client, err := c.clientRepo.GetByID(ctx, advisorID, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, utils.NotFound("client not found")
	}

	messages, err := c.chatRepo.GetSession(ctx, clientID, sessionID)
	if err != nil {
		return nil, err
	}

	responses := make([]schemas.ChatMessageResponse, len(messages))
	for i, message := range messages {
		responses[i] = schemas.ChatMessageResponse{
			Role:      string(message.Role),
			Content:   message.Content,
			CreatedAt: message.CreatedAt,
		}
	}
	return responses, nil
}

// GetInsights requests a schema-constrained portfolio review from the model
// and validates the parsed payload before returning it. A malformed model
// response never reaches the caller as partially-typed data.
func (c *ChatController) GetInsights(ctx context.Context, advisorID, clientID string) (*schemas.PortfolioInsights, error) {
	clientContext, err := c.contextService.BuildContext(ctx, advisorID, clientID)
	if err != nil {
		return nil, err
	}

	prompt, err := composePrompt("Review this client's portfolio.", clientContext)
	if err != nil {
		return nil, err
	}

	raw, err := c.openAIClient.CreateStructuredCompletion(ctx, insightsSystemPrompt, prompt, "portfolio_insights", insightsSchema)
	if err != nil {
		utils.LoggerFromContext(ctx).Errorf("insights completion failed: %v", err)
		return nil, utils.ServiceUnavailable("the assistant is temporarily unavailable")
	}

	var insights schemas.PortfolioInsights
	if err := json.Unmarshal(raw, &insights); err != nil {
		utils.LoggerFromContext(ctx).Errorf("malformed insights payload: %v", err)
		return nil, utils.NewHTTPError(http.StatusBadGateway, "received a malformed response from the model")
	}
	if err := schemas.Validate(&insights); err != nil {
		utils.LoggerFromContext(ctx).Errorf("invalid insights payload: %v", err)
		return nil, utils.NewHTTPError(http.StatusBadGateway, "received an invalid response from the model")
	}
	return &insights, nil
}

func composePrompt(message string, clientContext *schemas.ClientContext) (string, error) {
	contextJSON, err := json.Marshal(clientContext)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s\n\nClient context:\n%s", message, contextJSON), nil
}
