package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"advisory-server/src/api/controllers"
	"advisory-server/src/schemas"
	"advisory-server/src/utils"

	"github.com/go-chi/jwtauth"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	ClientsController   controllers.ClientsControllerI
	AssetsController    controllers.AssetsControllerI
	CashFlowController  controllers.CashFlowControllerI
	PortfolioController controllers.PortfolioControllerI
	ChatController      controllers.ChatControllerI

	Verifier *utils.TokenVerifier
	Logger   *logrus.Logger
}

func NewHandler(
	clientsController controllers.ClientsControllerI,
	assetsController controllers.AssetsControllerI,
	cashFlowController controllers.CashFlowControllerI,
	portfolioController controllers.PortfolioControllerI,
	chatController controllers.ChatControllerI,
	verifier *utils.TokenVerifier,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		ClientsController:   clientsController,
		AssetsController:    assetsController,
		CashFlowController:  cashFlowController,
		PortfolioController: portfolioController,
		ChatController:      chatController,
		Verifier:            verifier,
		Logger:              logger,
	}
}

// authorize resolves the requesting advisor from the bearer token. All
// downstream calls receive the advisor id explicitly.
func (h *Handler) authorize(r *http.Request) (string, error) {
	return h.Verifier.AdvisorFromToken(jwtauth.TokenFromHeader(r))
}

func (h *Handler) respond(w http.ResponseWriter, _ *http.Request, data interface{}, status int) {
	res, err := json.Marshal(schemas.APIResponse{Success: true, Data: data})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

func (h *Handler) respondError(w http.ResponseWriter, message string, status int) {
	res, err := json.Marshal(schemas.APIResponse{Success: false, Error: message})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

func (h *Handler) HandleErrors(w http.ResponseWriter, err error) {
	var httpErr *utils.HTTPError
	if errors.Is(err, context.DeadlineExceeded) {
		h.respondError(w, "Request timed out", http.StatusGatewayTimeout)
	} else if errors.As(err, &httpErr) {
		h.respondError(w, httpErr.Message, httpErr.Code)
	} else if err != nil {
		h.Logger.Errorf("unhandled error: %v", err)
		h.respondError(w, "Internal Server Error", http.StatusInternalServerError)
	} else {
		h.respondError(w, "Unhandled error", http.StatusInternalServerError)
	}
}

// decodeAndValidate decodes a JSON request body and runs schema validation.
// Malformed JSON maps to 400, failed validation to 422.
func decodeAndValidate(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return utils.BadRequest("invalid request body")
	}
	if err := schemas.Validate(v); err != nil {
		return utils.UnprocessableEntity(err.Error())
	}
	return nil
}
