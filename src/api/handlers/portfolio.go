package handlers

import (
	"context"
	"net/http"
	"time"

	"advisory-server/src/utils"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetPortfolioSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	advisorID, err := h.authorize(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	snapshot, err := h.PortfolioController.GetPortfolioSnapshot(ctx, advisorID, chi.URLParam(r, "id"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, snapshot, http.StatusOK)
}

func (h *Handler) GetClientContext(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	advisorID, err := h.authorize(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	clientContext, err := h.PortfolioController.GetClientContext(ctx, advisorID, chi.URLParam(r, "id"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, clientContext, http.StatusOK)
}
