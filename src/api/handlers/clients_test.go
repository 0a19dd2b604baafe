package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"advisory-server/src/api/handlers"
	"advisory-server/src/schemas"
	"advisory-server/src/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type fakeClientsController struct {
	advisorID string
}

func (f *fakeClientsController) GetAllClients(_ context.Context, advisorID string) ([]*schemas.ClientResponse, error) {
	f.advisorID = advisorID
	return []*schemas.ClientResponse{{ID: "client-1", Name: "Dana Whitfield"}}, nil
}

func (f *fakeClientsController) GetClientByID(_ context.Context, advisorID, id string) (*schemas.ClientResponse, error) {
	if id != "client-1" {
		return nil, utils.NotFound("client not found")
	}
	return &schemas.ClientResponse{ID: id}, nil
}

func (f *fakeClientsController) CreateClient(_ context.Context, advisorID string, req *schemas.CreateClientRequest) (*schemas.ClientResponse, error) {
	return &schemas.ClientResponse{ID: "client-2", Name: req.Name}, nil
}

func (f *fakeClientsController) UpdateClient(_ context.Context, advisorID, id string, req *schemas.UpdateClientRequest) (*schemas.ClientResponse, error) {
	return &schemas.ClientResponse{ID: id}, nil
}

func (f *fakeClientsController) DeleteClient(_ context.Context, advisorID, id string) error {
	return nil
}

func newTestRouter(controller *fakeClientsController) *chi.Mux {
	logger := logrus.New()
	handler := handlers.NewHandler(controller, nil, nil, nil, nil, utils.NewTokenVerifier(testSecret), logger)

	router := chi.NewRouter()
	router.Get("/api/clients", handler.GetAllClients)
	router.Post("/api/clients", handler.CreateClient)
	router.Get("/api/clients/{id}", handler.GetClientByID)
	return router
}

func bearerToken(t *testing.T, advisorID string) string {
	t.Helper()
	auth := jwtauth.New("HS256", []byte(testSecret), nil)
	_, tokenString, err := auth.Encode(map[string]interface{}{"sub": advisorID})
	require.NoError(t, err)
	return "Bearer " + tokenString
}

func decodeEnvelope(t *testing.T, body string) schemas.APIResponse {
	t.Helper()
	var envelope schemas.APIResponse
	require.NoError(t, json.Unmarshal([]byte(body), &envelope))
	return envelope
}

func TestClientsEndpoints(t *testing.T) {
	t.Run("MissingTokenIsUnauthorized", func(t *testing.T) {
		router := newTestRouter(&fakeClientsController{})

		req := httptest.NewRequest("GET", "/api/clients", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		envelope := decodeEnvelope(t, rec.Body.String())
		assert.False(t, envelope.Success)
		assert.NotEmpty(t, envelope.Error)
	})

	t.Run("AdvisorScopedList", func(t *testing.T) {
		controller := &fakeClientsController{}
		router := newTestRouter(controller)

		req := httptest.NewRequest("GET", "/api/clients", nil)
		req.Header.Set("Authorization", bearerToken(t, "advisor-1"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "advisor-1", controller.advisorID)
		envelope := decodeEnvelope(t, rec.Body.String())
		assert.True(t, envelope.Success)
		assert.NotNil(t, envelope.Data)
	})

	t.Run("MalformedBodyIsBadRequest", func(t *testing.T) {
		router := newTestRouter(&fakeClientsController{})

		req := httptest.NewRequest("POST", "/api/clients", strings.NewReader(`{"name": `))
		req.Header.Set("Authorization", bearerToken(t, "advisor-1"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("InvalidFieldIsUnprocessable", func(t *testing.T) {
		router := newTestRouter(&fakeClientsController{})

		body := `{"name": "Sam", "email": "sam@example.com", "risk_tolerance": "reckless"}`
		req := httptest.NewRequest("POST", "/api/clients", strings.NewReader(body))
		req.Header.Set("Authorization", bearerToken(t, "advisor-1"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("ValidCreate", func(t *testing.T) {
		router := newTestRouter(&fakeClientsController{})

		body := `{"name": "Sam Okafor", "email": "sam@example.com", "risk_tolerance": "conservative", "date_of_birth": "1975-02-10"}`
		req := httptest.NewRequest("POST", "/api/clients", strings.NewReader(body))
		req.Header.Set("Authorization", bearerToken(t, "advisor-1"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		envelope := decodeEnvelope(t, rec.Body.String())
		assert.True(t, envelope.Success)
	})

	t.Run("UnknownClientIsNotFound", func(t *testing.T) {
		router := newTestRouter(&fakeClientsController{})

		req := httptest.NewRequest("GET", "/api/clients/client-404", nil)
		req.Header.Set("Authorization", bearerToken(t, "advisor-1"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		envelope := decodeEnvelope(t, rec.Body.String())
		assert.False(t, envelope.Success)
	})
}
