package main

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// getUserNotificationsHandler godoc
//
//	@Summary		List notifications
//	@Description	Lists the authenticated user's notifications, unread first.
//	@Tags			notifications
//	@Produce		json
//	@Success		200	{array}		notifications.Notification	"Notifications"
//	@Failure		500	{object}	ErrorInternalServerResponse	"Internal Server Error"
//	@Security		ApiKeyAuth
//	@Router			/users/notifications [get]
func (app *application) getUserNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	results, err := app.store.Notifications.GetByUser(r.Context(), user.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, results); err != nil {
		app.internalServerError(w, r, err)
	}
}

// markNotificationReadHandler godoc
//
//	@Summary		Mark a notification read
//	@Description	Marks a notification as read if it belongs to the authenticated user. Reports whether anything was updated.
//	@Tags			notifications
//	@Produce		json
//	@Param			notificationID	path		int							true	"Notification ID"
//	@Success		200				{object}	map[string]bool				"Update result"
//	@Failure		400				{object}	ErrorBadRequestResponse		"Bad request"
//	@Failure		500				{object}	ErrorInternalServerResponse	"Internal Server Error"
//	@Security		ApiKeyAuth
//	@Router			/notifications/{notificationID}/read [put]
func (app *application) markNotificationReadHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	notificationID, err := strconv.ParseInt(chi.URLParam(r, "notificationID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid notification ID"))
		return
	}

	updated, err := app.store.Notifications.MarkRead(r.Context(), notificationID, user.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]bool{"updated": updated}); err != nil {
		app.internalServerError(w, r, err)
	}
}
