package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"bookbuddy/internal/domain/groups"

	"github.com/go-chi/chi/v5"
)

type CreateGroupPayload struct {
	Name        string   `json:"name" validate:"required,max=255"`
	Description *string  `json:"description"`
	EventDate   *string  `json:"event_date"`
	TotalBudget *float64 `json:"total_budget" validate:"omitempty,gt=0"`
}

// createGroupHandler godoc
//
//	@Summary		Create a group
//	@Description	Creates a planning group with the authenticated user as its organizer and first member.
//	@Tags			groups
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateGroupPayload			true	"Group details"
//	@Success		201		{object}	groups.Group				"Group created"
//	@Failure		400		{object}	ErrorBadRequestResponse		"Bad request"
//	@Failure		500		{object}	ErrorInternalServerResponse	"Internal Server Error"
//	@Security		ApiKeyAuth
//	@Router			/groups [post]
func (app *application) createGroupHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	var payload CreateGroupPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var eventDate *time.Time
	if payload.EventDate != nil {
		parsed, err := time.Parse(time.RFC3339, *payload.EventDate)
		if err != nil {
			app.badRequestResponse(w, r, fmt.Errorf("invalid event_date, expected RFC3339: %w", err))
			return
		}
		eventDate = &parsed
	}

	group := &groups.Group{
		Name:        payload.Name,
		Description: payload.Description,
		OrganizerID: user.ID,
		EventDate:   eventDate,
		TotalBudget: payload.TotalBudget,
	}

	if err := app.store.Groups.Create(r.Context(), group); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, group); err != nil {
		app.internalServerError(w, r, err)
	}
}

type AddGroupMemberPayload struct {
	UserID int64 `json:"user_id" validate:"required"`
}

// addGroupMemberHandler godoc
//
//	@Summary		Add a group member
//	@Description	Adds a user to a group and bumps the member count.
//	@Tags			groups
//	@Accept			json
//	@Produce		json
//	@Param			groupID	path		int							true	"Group ID"
//	@Param			payload	body		AddGroupMemberPayload		true	"Member details"
//	@Success		201		{object}	groups.Member				"Member added"
//	@Failure		400		{object}	ErrorBadRequestResponse		"Bad request"
//	@Failure		404		{object}	error						"Group or user not found"
//	@Failure		409		{object}	error						"Already a member"
//	@Failure		500		{object}	ErrorInternalServerResponse	"Internal Server Error"
//	@Security		ApiKeyAuth
//	@Router			/groups/{groupID}/members [post]
func (app *application) addGroupMemberHandler(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.ParseInt(chi.URLParam(r, "groupID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid group ID"))
		return
	}

	var payload AddGroupMemberPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	member, err := app.store.Groups.AddMember(r.Context(), groupID, payload.UserID)
	if err != nil {
		switch {
		case errors.Is(err, groups.ErrGroupNotFound), errors.Is(err, groups.ErrUserNotFound):
			app.notFoundResponse(w, r, err)
		case errors.Is(err, groups.ErrAlreadyMember):
			app.conflictResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, member); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getUserGroupsHandler godoc
//
//	@Summary		List groups
//	@Description	Lists the groups the authenticated user organizes or belongs to, each group once.
//	@Tags			groups
//	@Produce		json
//	@Success		200	{array}		groups.Group				"Groups"
//	@Failure		500	{object}	ErrorInternalServerResponse	"Internal Server Error"
//	@Security		ApiKeyAuth
//	@Router			/users/groups [get]
func (app *application) getUserGroupsHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	results, err := app.store.Groups.GetForUser(r.Context(), user.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, results); err != nil {
		app.internalServerError(w, r, err)
	}
}
