package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"advisory-server/src/clients/openai"
	"advisory-server/src/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *openai.OpenAIServiceClient {
	cfg := &config.Config{}
	cfg.ExternalClients.OpenAI.BaseURL = baseURL
	cfg.ExternalClients.OpenAI.APIKey = "test-key"
	cfg.ExternalClients.OpenAI.Model = "gpt-4o-mini"
	return openai.NewClient(cfg)
}

func completionBody(content string) string {
	body, _ := json.Marshal(map[string]interface{}{
		"id": "cmpl-1",
		"choices": []map[string]interface{}{
			{"index": 0, "message": map[string]string{"role": "assistant", "content": content}},
		},
	})
	return string(body)
}

func TestCreateChatCompletion(t *testing.T) {
	t.Run("ReturnsAssistantReply", func(t *testing.T) {
		var captured openai.ChatCompletionRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(completionBody("Hello advisor")))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		reply, err := client.CreateChatCompletion(context.Background(), "system prompt", "user prompt")
		require.NoError(t, err)
		assert.Equal(t, "Hello advisor", reply)

		assert.Equal(t, "gpt-4o-mini", captured.Model)
		require.Len(t, captured.Messages, 2)
		assert.Equal(t, "system", captured.Messages[0].Role)
		assert.Equal(t, "user", captured.Messages[1].Role)
		assert.Nil(t, captured.ResponseFormat)
	})

	t.Run("UpstreamErrorStatus", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		_, err := client.CreateChatCompletion(context.Background(), "system", "user")
		assert.Error(t, err)
	})

	t.Run("EmptyChoices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id": "cmpl-1", "choices": []}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		_, err := client.CreateChatCompletion(context.Background(), "system", "user")
		assert.Error(t, err)
	})
}

func TestCreateStructuredCompletion(t *testing.T) {
	schema := json.RawMessage(`{"type": "object"}`)

	var captured openai.ChatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(completionBody(`{"summary": "ok"}`)))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	raw, err := client.CreateStructuredCompletion(context.Background(), "system", "user", "portfolio_insights", schema)
	require.NoError(t, err)
	assert.JSONEq(t, `{"summary": "ok"}`, string(raw))

	require.NotNil(t, captured.ResponseFormat)
	assert.Equal(t, "json_schema", captured.ResponseFormat.Type)
	require.NotNil(t, captured.ResponseFormat.JSONSchema)
	assert.Equal(t, "portfolio_insights", captured.ResponseFormat.JSONSchema.Name)
	assert.True(t, captured.ResponseFormat.JSONSchema.Strict)
}
