package handlers

import (
	"context"
	"net/http"
	"time"

	"advisory-server/src/schemas"
	"advisory-server/src/utils"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetAllClients(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	advisorID, err := h.authorize(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	clients, err := h.ClientsController.GetAllClients(ctx, advisorID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, clients, http.StatusOK)
}

func (h *Handler) GetClientByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	advisorID, err := h.authorize(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	client, err := h.ClientsController.GetClientByID(ctx, advisorID, chi.URLParam(r, "id"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, client, http.StatusOK)
}

func (h *Handler) CreateClient(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	advisorID, err := h.authorize(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	req := new(schemas.CreateClientRequest)
	if err := decodeAndValidate(r, req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	client, err := h.ClientsController.CreateClient(ctx, advisorID, req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, client, http.StatusCreated)
}

func (h *Handler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	advisorID, err := h.authorize(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	req := new(schemas.UpdateClientRequest)
	if err := decodeAndValidate(r, req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	client, err := h.ClientsController.UpdateClient(ctx, advisorID, chi.URLParam(r, "id"), req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, client, http.StatusOK)
}

func (h *Handler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	advisorID, err := h.authorize(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	if err := h.ClientsController.DeleteClient(ctx, advisorID, chi.URLParam(r, "id")); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, nil, http.StatusOK)
}
