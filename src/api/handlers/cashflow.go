package handlers

import (
	"context"
	"net/http"
	"time"

	"advisory-server/src/schemas"
	"advisory-server/src/utils"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetIncomeSources(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	advisorID, err := h.authorize(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	incomes, err := h.CashFlowController.GetIncomeSources(ctx, advisorID, chi.URLParam(r, "id"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, incomes, http.StatusOK)
}

func (h *Handler) CreateIncomeSource(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	advisorID, err := h.authorize(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	req := new(schemas.CreateCashFlowRequest)
	if err := decodeAndValidate(r, req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	income, err := h.CashFlowController.CreateIncomeSource(ctx, advisorID, chi.URLParam(r, "id"), req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, income, http.StatusCreated)
}

func (h *Handler) UpdateIncomeSource(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	advisorID, err := h.authorize(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	req := new(schemas.UpdateCashFlowRequest)
	if err := decodeAndValidate(r, req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	income, err := h.CashFlowController.UpdateIncomeSource(ctx, advisorID, chi.URLParam(r, "id"), chi.URLParam(r, "itemID"), req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, income, http.StatusOK)
}

func (h *Handler) DeleteIncomeSource(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	advisorID, err := h.authorize(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	if err := h.CashFlowController.DeleteIncomeSource(ctx, advisorID, chi.URLParam(r, "id"), chi.URLParam(r, "itemID")); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, nil, http.StatusOK)
}

func (h *Handler) GetExpenses(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	advisorID, err := h.authorize(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	expenses, err := h.CashFlowController.GetExpenses(ctx, advisorID, chi.URLParam(r, "id"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, expenses, http.StatusOK)
}

func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	advisorID, err := h.authorize(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	req := new(schemas.CreateCashFlowRequest)
	if err := decodeAndValidate(r, req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	expense, err := h.CashFlowController.CreateExpense(ctx, advisorID, chi.URLParam(r, "id"), req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, expense, http.StatusCreated)
}

func (h *Handler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	advisorID, err := h.authorize(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	req := new(schemas.UpdateCashFlowRequest)
	if err := decodeAndValidate(r, req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	expense, err := h.CashFlowController.UpdateExpense(ctx, advisorID, chi.URLParam(r, "id"), chi.URLParam(r, "itemID"), req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, expense, http.StatusOK)
}

func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	advisorID, err := h.authorize(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	if err := h.CashFlowController.DeleteExpense(ctx, advisorID, chi.URLParam(r, "id"), chi.URLParam(r, "itemID")); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, nil, http.StatusOK)
}

func (h *Handler) GetGoals(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	advisorID, err := h.authorize(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	goals, err := h.CashFlowController.GetGoals(ctx, advisorID, chi.URLParam(r, "id"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, goals, http.StatusOK)
}

func (h *Handler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	advisorID, err := h.authorize(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	req := new(schemas.CreateGoalRequest)
	if err := decodeAndValidate(r, req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	goal, err := h.CashFlowController.CreateGoal(ctx, advisorID, chi.URLParam(r, "id"), req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, goal, http.StatusCreated)
}

func (h *Handler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	ctx = utils.WithLogger(ctx, h.Logger)

	advisorID, err := h.authorize(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	if err := h.CashFlowController.DeleteGoal(ctx, advisorID, chi.URLParam(r, "id"), chi.URLParam(r, "itemID")); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, nil, http.StatusOK)
}
