package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"bookbuddy/internal/domain/messages"

	"github.com/go-chi/chi/v5"
)

type CreateGroupMessagePayload struct {
	Message string `json:"message" validate:"required,max=2000"`
}

// createGroupMessageHandler godoc
//
//	@Summary		Post a group message
//	@Description	Posts a message to the group chat. Only group members can post.
//	@Tags			groups
//	@Accept			json
//	@Produce		json
//	@Param			groupID	path		int							true	"Group ID"
//	@Param			payload	body		CreateGroupMessagePayload	true	"Message"
//	@Success		201		{object}	messages.GroupMessage		"Message posted"
//	@Failure		400		{object}	ErrorBadRequestResponse		"Bad request"
//	@Failure		403		{object}	error						"Not a member"
//	@Failure		500		{object}	ErrorInternalServerResponse	"Internal Server Error"
//	@Security		ApiKeyAuth
//	@Router			/groups/{groupID}/messages [post]
func (app *application) createGroupMessageHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	groupID, err := strconv.ParseInt(chi.URLParam(r, "groupID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid group ID"))
		return
	}

	var payload CreateGroupMessagePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	msg := &messages.GroupMessage{
		GroupID: groupID,
		UserID:  user.ID,
		Message: payload.Message,
	}

	if err := app.store.Messages.Create(r.Context(), msg); err != nil {
		switch {
		case errors.Is(err, messages.ErrNotMember):
			app.forbiddenResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, msg); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getGroupMessagesHandler godoc
//
//	@Summary		List group messages
//	@Description	Lists a group's messages in chronological order.
//	@Tags			groups
//	@Produce		json
//	@Param			groupID	path		int							true	"Group ID"
//	@Success		200		{array}		messages.GroupMessage		"Messages"
//	@Failure		400		{object}	ErrorBadRequestResponse		"Bad request"
//	@Failure		500		{object}	ErrorInternalServerResponse	"Internal Server Error"
//	@Security		ApiKeyAuth
//	@Router			/groups/{groupID}/messages [get]
func (app *application) getGroupMessagesHandler(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.ParseInt(chi.URLParam(r, "groupID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid group ID"))
		return
	}

	results, err := app.store.Messages.GetByGroup(r.Context(), groupID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, results); err != nil {
		app.internalServerError(w, r, err)
	}
}
