package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookbuddy/internal/domain/bookings"
	"bookbuddy/internal/domain/storage"
	"bookbuddy/internal/domain/venues"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelBookingNotOwned(t *testing.T) {
	mockBookings := new(MockBookingStore)
	mockBookings.On("Cancel", mock.Anything, int64(7), int64(42)).Return(nil, nil)

	mockNotifications := new(MockNotificationStore)

	app := newTestApplication(&storage.Container{
		Bookings:      mockBookings,
		Notifications: mockNotifications,
	})

	mux := chi.NewRouter()
	mux.Post("/bookings/{bookingID}/cancel", app.cancelBookingHandler)

	req := requestWithUser(httptest.NewRequest(http.MethodPost, "/bookings/7/cancel", nil), testUser())
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var envelope struct {
		Data *bookings.Booking `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	assert.Nil(t, envelope.Data)

	mockBookings.AssertExpectations(t)
	mockNotifications.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCancelBookingSuccess(t *testing.T) {
	cancelled := &bookings.Booking{
		ID:               7,
		VenueID:          3,
		UserID:           42,
		Status:           bookings.StatusCancelled,
		PaymentStatus:    bookings.PaymentRefunded,
		ConfirmationCode: "BBABC123",
	}

	mockBookings := new(MockBookingStore)
	mockBookings.On("Cancel", mock.Anything, int64(7), int64(42)).Return(cancelled, nil)

	mockNotifications := new(MockNotificationStore)
	mockNotifications.On("Create", mock.Anything, mock.Anything).Return(nil)

	app := newTestApplication(&storage.Container{
		Bookings:      mockBookings,
		Notifications: mockNotifications,
	})

	mux := chi.NewRouter()
	mux.Post("/bookings/{bookingID}/cancel", app.cancelBookingHandler)

	req := requestWithUser(httptest.NewRequest(http.MethodPost, "/bookings/7/cancel", nil), testUser())
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var envelope struct {
		Data *bookings.Booking `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Data)
	assert.Equal(t, bookings.StatusCancelled, envelope.Data.Status)
	assert.Equal(t, bookings.PaymentRefunded, envelope.Data.PaymentStatus)

	mockBookings.AssertExpectations(t)
	mockNotifications.AssertExpectations(t)
}

func TestCreateBookingVenueNotFound(t *testing.T) {
	mockBookings := new(MockBookingStore)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(bookings.ErrVenueNotFound)

	app := newTestApplication(&storage.Container{Bookings: mockBookings})

	payload := map[string]any{
		"venue_id":     99,
		"booking_date": "2026-10-01T00:00:00Z",
		"start_time":   "19:00",
		"guest_count":  4,
	}
	body, _ := json.Marshal(payload)

	req := requestWithUser(httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body)), testUser())
	rr := httptest.NewRecorder()
	app.createBookingHandler(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	mockBookings.AssertExpectations(t)
}

func TestCreateBookingSuccess(t *testing.T) {
	mockBookings := new(MockBookingStore)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	owner := int64(9)
	mockVenues := new(MockVenueStore)
	mockVenues.On("GetByID", mock.Anything, int64(3)).Return(&venues.Venue{ID: 3, Name: "Blue Note", OwnerID: owner}, nil)

	mockNotifications := new(MockNotificationStore)
	mockNotifications.On("Create", mock.Anything, mock.Anything).Return(nil)

	app := newTestApplication(&storage.Container{
		Bookings:      mockBookings,
		Venues:        mockVenues,
		Notifications: mockNotifications,
	})

	payload := map[string]any{
		"venue_id":     3,
		"booking_date": "2026-10-01T00:00:00Z",
		"start_time":   "19:00",
		"guest_count":  4,
	}
	body, _ := json.Marshal(payload)

	req := requestWithUser(httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body)), testUser())
	rr := httptest.NewRecorder()
	app.createBookingHandler(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	mockBookings.AssertExpectations(t)
	mockVenues.AssertExpectations(t)
	mockNotifications.AssertExpectations(t)
}

func TestCreateBookingInvalidDate(t *testing.T) {
	app := newTestApplication(&storage.Container{})

	payload := map[string]any{
		"venue_id":     3,
		"booking_date": "next friday",
		"start_time":   "19:00",
		"guest_count":  4,
	}
	body, _ := json.Marshal(payload)

	req := requestWithUser(httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body)), testUser())
	rr := httptest.NewRecorder()
	app.createBookingHandler(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
