package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"bookbuddy/internal/domain/venues"

	"github.com/go-chi/chi/v5"
)

// addFavoriteHandler godoc
//
//	@Summary		Add a favorite
//	@Description	Marks a venue as a favorite for the authenticated user.
//	@Tags			favorites
//	@Produce		json
//	@Param			venueID	path		int							true	"Venue ID"
//	@Success		201		{object}	map[string]string			"Favorite added"
//	@Failure		400		{object}	ErrorBadRequestResponse		"Bad request"
//	@Failure		404		{object}	error						"Venue not found"
//	@Failure		409		{object}	error						"Already a favorite"
//	@Failure		500		{object}	ErrorInternalServerResponse	"Internal Server Error"
//	@Security		ApiKeyAuth
//	@Router			/venues/{venueID}/favorite [post]
func (app *application) addFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	venueID, err := strconv.ParseInt(chi.URLParam(r, "venueID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid venue ID"))
		return
	}

	if err := app.store.Venues.AddFavorite(r.Context(), user.ID, venueID); err != nil {
		switch {
		case errors.Is(err, venues.ErrVenueNotFound):
			app.notFoundResponse(w, r, err)
		case errors.Is(err, venues.ErrDuplicateFavorite):
			app.conflictResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, map[string]string{"message": "favorite added"}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// removeFavoriteHandler godoc
//
//	@Summary		Remove a favorite
//	@Description	Removes a venue from the authenticated user's favorites.
//	@Tags			favorites
//	@Produce		json
//	@Param			venueID	path		int							true	"Venue ID"
//	@Success		200		{object}	map[string]bool				"Removal result"
//	@Failure		400		{object}	ErrorBadRequestResponse		"Bad request"
//	@Failure		500		{object}	ErrorInternalServerResponse	"Internal Server Error"
//	@Security		ApiKeyAuth
//	@Router			/venues/{venueID}/favorite [delete]
func (app *application) removeFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	venueID, err := strconv.ParseInt(chi.URLParam(r, "venueID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid venue ID"))
		return
	}

	removed, err := app.store.Venues.RemoveFavorite(r.Context(), user.ID, venueID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]bool{"removed": removed}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getUserFavoritesHandler godoc
//
//	@Summary		List favorites
//	@Description	Lists the venues the authenticated user has favorited.
//	@Tags			favorites
//	@Produce		json
//	@Success		200	{array}		venues.Venue				"Favorited venues"
//	@Failure		500	{object}	ErrorInternalServerResponse	"Internal Server Error"
//	@Security		ApiKeyAuth
//	@Router			/users/favorites [get]
func (app *application) getUserFavoritesHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	results, err := app.store.Venues.GetFavoritesByUser(r.Context(), user.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, results); err != nil {
		app.internalServerError(w, r, err)
	}
}
