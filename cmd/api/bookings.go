package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"bookbuddy/internal/domain/bookings"
	"bookbuddy/internal/domain/notifications"

	"github.com/go-chi/chi/v5"
)

type CreateBookingPayload struct {
	VenueID         int64   `json:"venue_id" validate:"required"`
	GroupID         *int64  `json:"group_id"`
	BookingDate     string  `json:"booking_date" validate:"required"`
	StartTime       string  `json:"start_time" validate:"required"`
	EndTime         *string `json:"end_time"`
	GuestCount      int     `json:"guest_count" validate:"required,gt=0"`
	SpecialRequests *string `json:"special_requests"`
}

// createBookingHandler godoc
//
//	@Summary		Create a booking
//	@Description	Books a venue for the authenticated user. The total is priced off the venue's minimum per-person price.
//	@Tags			bookings
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateBookingPayload		true	"Booking details"
//	@Success		201		{object}	bookings.Booking			"Booking created"
//	@Failure		400		{object}	ErrorBadRequestResponse		"Bad request"
//	@Failure		404		{object}	error						"Venue or group not found"
//	@Failure		500		{object}	ErrorInternalServerResponse	"Internal Server Error"
//	@Security		ApiKeyAuth
//	@Router			/bookings [post]
func (app *application) createBookingHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	var payload CreateBookingPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	bookingDate, err := time.Parse(time.RFC3339, payload.BookingDate)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid booking_date, expected RFC3339: %w", err))
		return
	}

	booking := &bookings.Booking{
		VenueID:         payload.VenueID,
		UserID:          user.ID,
		GroupID:         payload.GroupID,
		BookingDate:     bookingDate,
		StartTime:       payload.StartTime,
		EndTime:         payload.EndTime,
		GuestCount:      payload.GuestCount,
		SpecialRequests: payload.SpecialRequests,
	}

	ctx := r.Context()

	if err := app.store.Bookings.Create(ctx, booking); err != nil {
		switch {
		case errors.Is(err, bookings.ErrVenueNotFound):
			app.notFoundResponse(w, r, err)
		case errors.Is(err, bookings.ErrGroupNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	// Notify the venue owner. The booking is already committed, so a
	// failed notification is only logged.
	venue, err := app.store.Venues.GetByID(ctx, booking.VenueID)
	if err == nil && venue != nil {
		notification := &notifications.Notification{
			UserID:  venue.OwnerID,
			Type:    notifications.TypeBookingUpdate,
			Title:   "New booking received",
			Message: fmt.Sprintf("%s booked %s for %d guests", user.FirstName, venue.Name, booking.GuestCount),
			Data: map[string]any{
				"booking_id":        booking.ID,
				"venue_id":          venue.ID,
				"confirmation_code": booking.ConfirmationCode,
			},
		}
		if err := app.store.Notifications.Create(ctx, notification); err != nil {
			app.logger.Errorw("error creating booking notification", "error", err)
		}
	}

	if err := app.jsonResponse(w, http.StatusCreated, booking); err != nil {
		app.internalServerError(w, r, err)
	}
}

// cancelBookingHandler godoc
//
//	@Summary		Cancel a booking
//	@Description	Cancels a booking owned by the authenticated user and refunds its payment. Returns null data when no matching booking exists.
//	@Tags			bookings
//	@Produce		json
//	@Param			bookingID	path		int							true	"Booking ID"
//	@Success		200			{object}	bookings.Booking			"Cancelled booking or null"
//	@Failure		400			{object}	ErrorBadRequestResponse		"Bad request"
//	@Failure		500			{object}	ErrorInternalServerResponse	"Internal Server Error"
//	@Security		ApiKeyAuth
//	@Router			/bookings/{bookingID}/cancel [post]
func (app *application) cancelBookingHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	bookingID, err := strconv.ParseInt(chi.URLParam(r, "bookingID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid booking ID"))
		return
	}

	ctx := r.Context()

	booking, err := app.store.Bookings.Cancel(ctx, bookingID, user.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if booking != nil {
		notification := &notifications.Notification{
			UserID:  user.ID,
			Type:    notifications.TypeBookingUpdate,
			Title:   "Booking cancelled",
			Message: fmt.Sprintf("Your booking %s was cancelled and the payment refunded", booking.ConfirmationCode),
			Data: map[string]any{
				"booking_id": booking.ID,
				"venue_id":   booking.VenueID,
			},
		}
		if err := app.store.Notifications.Create(ctx, notification); err != nil {
			app.logger.Errorw("error creating cancellation notification", "error", err)
		}
	}

	if err := app.jsonResponse(w, http.StatusOK, booking); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getUserBookingsHandler godoc
//
//	@Summary		List bookings
//	@Description	Lists the authenticated user's bookings, newest first.
//	@Tags			bookings
//	@Produce		json
//	@Success		200	{array}		bookings.Booking			"Bookings"
//	@Failure		500	{object}	ErrorInternalServerResponse	"Internal Server Error"
//	@Security		ApiKeyAuth
//	@Router			/users/bookings [get]
func (app *application) getUserBookingsHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	results, err := app.store.Bookings.GetByUser(r.Context(), user.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, results); err != nil {
		app.internalServerError(w, r, err)
	}
}
