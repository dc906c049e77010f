package main

import (
	"fmt"
	"net/http"
	"strconv"

	"bookbuddy/internal/domain/users"
	"bookbuddy/internal/domain/venues"

	"github.com/go-chi/chi/v5"
)

type CreateVenuePayload struct {
	Name          string   `json:"name" validate:"required,max=255"`
	Description   string   `json:"description" validate:"required"`
	Category      string   `json:"category" validate:"required"`
	Address       string   `json:"address" validate:"required,max=500"`
	Latitude      *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude     *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Phone         *string  `json:"phone" validate:"omitempty,max=20"`
	Email         *string  `json:"email" validate:"omitempty,email"`
	WebsiteURL    *string  `json:"website_url" validate:"omitempty,url"`
	PriceRangeMin float64  `json:"price_range_min" validate:"required,gt=0"`
	PriceRangeMax float64  `json:"price_range_max" validate:"required,gt=0,gtefield=PriceRangeMin"`
	ThumbnailURL  *string  `json:"thumbnail_image_url" validate:"omitempty,url"`
}

// createVenueHandler godoc
//
//	@Summary		Create a venue
//	@Description	Creates a venue owned by the authenticated user. Requires the venue_owner or admin role.
//	@Tags			venues
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateVenuePayload			true	"Venue details"
//	@Success		201		{object}	venues.Venue				"Venue created"
//	@Failure		400		{object}	ErrorBadRequestResponse		"Bad request"
//	@Failure		403		{object}	error						"Forbidden"
//	@Failure		500		{object}	ErrorInternalServerResponse	"Internal Server Error"
//	@Security		ApiKeyAuth
//	@Router			/venues [post]
func (app *application) createVenueHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	if user.Role != users.RoleVenueOwner && user.Role != users.RoleAdmin {
		app.forbiddenResponse(w, r, fmt.Errorf("only venue owners can create venues"))
		return
	}

	var payload CreateVenuePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	category := venues.Category(payload.Category)
	if !venues.ValidCategory(category) {
		app.badRequestResponse(w, r, fmt.Errorf("invalid category: %s", payload.Category))
		return
	}

	venue := &venues.Venue{
		Name:              payload.Name,
		Description:       payload.Description,
		Category:          category,
		Address:           payload.Address,
		Latitude:          payload.Latitude,
		Longitude:         payload.Longitude,
		Phone:             payload.Phone,
		Email:             payload.Email,
		WebsiteURL:        payload.WebsiteURL,
		PriceRangeMin:     payload.PriceRangeMin,
		PriceRangeMax:     payload.PriceRangeMax,
		ThumbnailImageURL: payload.ThumbnailURL,
		OwnerID:           user.ID,
	}

	if err := app.store.Venues.Create(r.Context(), venue); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, venue); err != nil {
		app.internalServerError(w, r, err)
	}
}

// searchVenuesHandler godoc
//
//	@Summary		Search venues
//	@Description	Searches active venues by keyword, category, budget overlap and bounding box, ordered by the requested sort key.
//	@Tags			venues
//	@Produce		json
//	@Param			keyword		query		string						false	"Keyword matched against name and description"
//	@Param			category	query		string						false	"Venue category"
//	@Param			min_price	query		number						false	"Budget floor"
//	@Param			max_price	query		number						false	"Budget ceiling"
//	@Param			latitude	query		number						false	"Latitude"
//	@Param			longitude	query		number						false	"Longitude"
//	@Param			radius_km	query		number						false	"Search radius in kilometers"
//	@Param			sort_by		query		string						false	"rating | price_low | price_high | distance"
//	@Success		200			{array}		venues.Venue				"Matching venues"
//	@Failure		400			{object}	ErrorBadRequestResponse		"Bad request"
//	@Failure		500			{object}	ErrorInternalServerResponse	"Internal Server Error"
//	@Router			/venues [get]
func (app *application) searchVenuesHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := venues.SearchFilter{}.Parse(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	results, err := app.store.Venues.Search(r.Context(), filter)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, results); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getVenueHandler godoc
//
//	@Summary		Get a venue
//	@Description	Fetches a single venue by id. Returns null data when the venue does not exist.
//	@Tags			venues
//	@Produce		json
//	@Param			venueID	path		int							true	"Venue ID"
//	@Success		200		{object}	venues.Venue				"Venue or null"
//	@Failure		400		{object}	ErrorBadRequestResponse		"Bad request"
//	@Failure		500		{object}	ErrorInternalServerResponse	"Internal Server Error"
//	@Router			/venues/{venueID} [get]
func (app *application) getVenueHandler(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(chi.URLParam(r, "venueID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid venue ID"))
		return
	}

	venue, err := app.store.Venues.GetByID(r.Context(), venueID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, venue); err != nil {
		app.internalServerError(w, r, err)
	}
}
