package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"advisory-server/src/config"
	"advisory-server/src/utils/requests"
)

const defaultBaseURL = "https://api.openai.com/v1"

type OpenAIServiceClientI interface {
	CreateChatCompletion(ctx context.Context, system, user string) (string, error)
	CreateStructuredCompletion(ctx context.Context, system, user, schemaName string, schema json.RawMessage) (json.RawMessage, error)
}

// OpenAIServiceClient calls the chat-completions API. It is constructed
// explicitly from config and injected into controllers; there is no
// package-level singleton.
type OpenAIServiceClient struct {
	API     *requests.ExternalAPIService
	BaseURL string
	APIKey  string
	Model   string
}

// NewClient creates a new instance of OpenAIServiceClient
func NewClient(cfg *config.Config) *OpenAIServiceClient {
	baseURL := cfg.ExternalClients.OpenAI.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &OpenAIServiceClient{
		API:     requests.NewExternalAPIService(60 * time.Second),
		BaseURL: baseURL,
		APIKey:  cfg.ExternalClients.OpenAI.APIKey,
		Model:   cfg.ExternalClients.OpenAI.Model,
	}
}

// CreateChatCompletion sends a system instruction plus a user message and
// returns the assistant's text reply.
func (c *OpenAIServiceClient) CreateChatCompletion(ctx context.Context, system, user string) (string, error) {
	response, err := c.complete(ctx, system, user, nil)
	if err != nil {
		return "", err
	}
	return response.Choices[0].Message.Content, nil
}

// CreateStructuredCompletion requests a completion constrained to the given
// JSON schema and returns the raw JSON payload. Callers parse and validate
// it into a typed struct.
func (c *OpenAIServiceClient) CreateStructuredCompletion(ctx context.Context, system, user, schemaName string, schema json.RawMessage) (json.RawMessage, error) {
	format := &ResponseFormat{
		Type: "json_schema",
		JSONSchema: &JSONSchemaSpec{
			Name:   schemaName,
			Strict: true,
			Schema: schema,
		},
	}
	response, err := c.complete(ctx, system, user, format)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(response.Choices[0].Message.Content), nil
}

func (c *OpenAIServiceClient) complete(ctx context.Context, system, user string, format *ResponseFormat) (*ChatCompletionResponse, error) {
	endpoint := fmt.Sprintf("%s/chat/completions", c.BaseURL)

	request := ChatCompletionRequest{
		Model: c.Model,
		Messages: []Message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		ResponseFormat: format,
	}

	var response ChatCompletionResponse
	if err := c.API.PostJSON(ctx, endpoint, c.APIKey, request, &response); err != nil {
		return nil, err
	}

	if len(response.Choices) == 0 || response.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("empty completion received from model")
	}
	return &response, nil
}
