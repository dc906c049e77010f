package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"bookbuddy/internal/domain/reviews"

	"github.com/go-chi/chi/v5"
)

type CreateReviewPayload struct {
	Rating    int      `json:"rating" validate:"required,gte=1,lte=5"`
	Title     *string  `json:"title" validate:"omitempty,max=255"`
	Content   string   `json:"content" validate:"required"`
	ImageURLs []string `json:"image_urls" validate:"omitempty,dive,url"`
}

// createVenueReviewHandler godoc
//
//	@Summary		Create a review
//	@Description	Creates a review for a venue and refreshes the venue's aggregate rating. One review per user per venue.
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			venueID	path		int							true	"Venue ID"
//	@Param			payload	body		CreateReviewPayload			true	"Review details"
//	@Success		201		{object}	reviews.Review				"Review created"
//	@Failure		400		{object}	ErrorBadRequestResponse		"Bad request"
//	@Failure		404		{object}	error						"Venue not found"
//	@Failure		409		{object}	error						"Already reviewed"
//	@Failure		500		{object}	ErrorInternalServerResponse	"Internal Server Error"
//	@Security		ApiKeyAuth
//	@Router			/venues/{venueID}/reviews [post]
func (app *application) createVenueReviewHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	venueID, err := strconv.ParseInt(chi.URLParam(r, "venueID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid venue ID"))
		return
	}

	var payload CreateReviewPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	review := &reviews.Review{
		VenueID:   venueID,
		UserID:    user.ID,
		Rating:    payload.Rating,
		Title:     payload.Title,
		Content:   payload.Content,
		ImageURLs: payload.ImageURLs,
	}

	if err := app.store.Reviews.Create(r.Context(), review); err != nil {
		switch {
		case errors.Is(err, reviews.ErrVenueNotFound):
			app.notFoundResponse(w, r, err)
		case errors.Is(err, reviews.ErrDuplicateReview):
			app.conflictResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, review); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getVenueReviewsHandler godoc
//
//	@Summary		List venue reviews
//	@Description	Lists a venue's reviews, most helpful first.
//	@Tags			reviews
//	@Produce		json
//	@Param			venueID	path		int							true	"Venue ID"
//	@Success		200		{array}		reviews.Review				"Reviews"
//	@Failure		400		{object}	ErrorBadRequestResponse		"Bad request"
//	@Failure		500		{object}	ErrorInternalServerResponse	"Internal Server Error"
//	@Router			/venues/{venueID}/reviews [get]
func (app *application) getVenueReviewsHandler(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(chi.URLParam(r, "venueID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid venue ID"))
		return
	}

	results, err := app.store.Reviews.GetByVenue(r.Context(), venueID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, results); err != nil {
		app.internalServerError(w, r, err)
	}
}
