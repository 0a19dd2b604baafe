package handlers

import (
	"context"
	"net/http"
	"time"

	"advisory-server/src/schemas"
	"advisory-server/src/utils"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) PostChatMessage(w http.ResponseWriter, r *http.Request) {
	// Model calls can take a while, so this timeout is wider than the CRUD ones.
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	advisorID, err := h.authorize(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	req := new(schemas.ChatRequest)
	if err := decodeAndValidate(r, req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	response, err := h.ChatController.SendMessage(ctx, advisorID, chi.URLParam(r, "id"), req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, response, http.StatusOK)
}

func (h *Handler) GetChatSession(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	advisorID, err := h.authorize(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	messages, err := h.ChatController.GetSessionHistory(ctx, advisorID, chi.URLParam(r, "id"), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, messages, http.StatusOK)
}

func (h *Handler) GetInsights(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	advisorID, err := h.authorize(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	insights, err := h.ChatController.GetInsights(ctx, advisorID, chi.URLParam(r, "id"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, insights, http.StatusOK)
}
