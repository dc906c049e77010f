package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"bookbuddy/internal/domain/expenses"

	"github.com/go-chi/chi/v5"
)

type CreateExpensePayload struct {
	Description string  `json:"description" validate:"required,max=500"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required,max=100"`
	ReceiptURL  *string `json:"receipt_url" validate:"omitempty,url"`
}

// createExpenseHandler godoc
//
//	@Summary		Record an expense
//	@Description	Records a shared expense against a group, paid by the authenticated user.
//	@Tags			groups
//	@Accept			json
//	@Produce		json
//	@Param			groupID	path		int							true	"Group ID"
//	@Param			payload	body		CreateExpensePayload		true	"Expense details"
//	@Success		201		{object}	expenses.Expense			"Expense recorded"
//	@Failure		400		{object}	ErrorBadRequestResponse		"Bad request"
//	@Failure		404		{object}	error						"Group not found"
//	@Failure		500		{object}	ErrorInternalServerResponse	"Internal Server Error"
//	@Security		ApiKeyAuth
//	@Router			/groups/{groupID}/expenses [post]
func (app *application) createExpenseHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	groupID, err := strconv.ParseInt(chi.URLParam(r, "groupID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid group ID"))
		return
	}

	var payload CreateExpensePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	expense := &expenses.Expense{
		GroupID:     groupID,
		PayerID:     user.ID,
		Description: payload.Description,
		Amount:      payload.Amount,
		Category:    payload.Category,
		ReceiptURL:  payload.ReceiptURL,
	}

	if err := app.store.Expenses.Create(r.Context(), expense); err != nil {
		switch {
		case errors.Is(err, expenses.ErrGroupNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, expense); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getGroupExpensesHandler godoc
//
//	@Summary		List group expenses
//	@Description	Lists a group's recorded expenses.
//	@Tags			groups
//	@Produce		json
//	@Param			groupID	path		int							true	"Group ID"
//	@Success		200		{array}		expenses.Expense			"Expenses"
//	@Failure		400		{object}	ErrorBadRequestResponse		"Bad request"
//	@Failure		500		{object}	ErrorInternalServerResponse	"Internal Server Error"
//	@Security		ApiKeyAuth
//	@Router			/groups/{groupID}/expenses [get]
func (app *application) getGroupExpensesHandler(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.ParseInt(chi.URLParam(r, "groupID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid group ID"))
		return
	}

	results, err := app.store.Expenses.GetByGroup(r.Context(), groupID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, results); err != nil {
		app.internalServerError(w, r, err)
	}
}
