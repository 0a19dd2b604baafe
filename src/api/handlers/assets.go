package handlers

import (
	"context"
	"net/http"
	"time"

	"advisory-server/src/schemas"
	"advisory-server/src/utils"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetClientAssets(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	advisorID, err := h.authorize(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	assets, err := h.AssetsController.GetClientAssets(ctx, advisorID, chi.URLParam(r, "id"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, assets, http.StatusOK)
}

func (h *Handler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	advisorID, err := h.authorize(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	req := new(schemas.CreateAssetRequest)
	if err := decodeAndValidate(r, req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	asset, err := h.AssetsController.CreateAsset(ctx, advisorID, chi.URLParam(r, "id"), req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, asset, http.StatusCreated)
}

func (h *Handler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	advisorID, err := h.authorize(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	req := new(schemas.UpdateAssetRequest)
	if err := decodeAndValidate(r, req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	asset, err := h.AssetsController.UpdateAsset(ctx, advisorID, chi.URLParam(r, "id"), chi.URLParam(r, "assetID"), req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, asset, http.StatusOK)
}

func (h *Handler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	advisorID, err := h.authorize(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	if err := h.AssetsController.DeleteAsset(ctx, advisorID, chi.URLParam(r, "id"), chi.URLParam(r, "assetID")); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, nil, http.StatusOK)
}
