package main

import (
	"context"
	"net/http"

	"bookbuddy/internal/domain/bookings"
	"bookbuddy/internal/domain/expenses"
	"bookbuddy/internal/domain/groups"
	"bookbuddy/internal/domain/messages"
	"bookbuddy/internal/domain/notifications"
	"bookbuddy/internal/domain/reviews"
	"bookbuddy/internal/domain/storage"
	"bookbuddy/internal/domain/users"
	"bookbuddy/internal/domain/venues"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Mock stores

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, user *users.User) error {
	args := m.Called(ctx, user)
	if user != nil {
		user.ID = 1
	}
	return args.Error(0)
}

func (m *MockUserStore) GetByID(ctx context.Context, userID int64) (*users.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

type MockVenueStore struct {
	mock.Mock
}

func (m *MockVenueStore) Create(ctx context.Context, venue *venues.Venue) error {
	args := m.Called(ctx, venue)
	if venue != nil {
		venue.ID = 1
	}
	return args.Error(0)
}

func (m *MockVenueStore) GetByID(ctx context.Context, venueID int64) (*venues.Venue, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*venues.Venue), args.Error(1)
}

func (m *MockVenueStore) Search(ctx context.Context, filter venues.SearchFilter) ([]venues.Venue, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]venues.Venue), args.Error(1)
}

func (m *MockVenueStore) AddFavorite(ctx context.Context, userID, venueID int64) error {
	args := m.Called(ctx, userID, venueID)
	return args.Error(0)
}

func (m *MockVenueStore) RemoveFavorite(ctx context.Context, userID, venueID int64) (bool, error) {
	args := m.Called(ctx, userID, venueID)
	return args.Bool(0), args.Error(1)
}

func (m *MockVenueStore) GetFavoritesByUser(ctx context.Context, userID int64) ([]venues.Venue, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]venues.Venue), args.Error(1)
}

type MockReviewStore struct {
	mock.Mock
}

func (m *MockReviewStore) Create(ctx context.Context, review *reviews.Review) error {
	args := m.Called(ctx, review)
	if review != nil {
		review.ID = 1
	}
	return args.Error(0)
}

func (m *MockReviewStore) GetByVenue(ctx context.Context, venueID int64) ([]reviews.Review, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]reviews.Review), args.Error(1)
}

type MockBookingStore struct {
	mock.Mock
}

func (m *MockBookingStore) Create(ctx context.Context, booking *bookings.Booking) error {
	args := m.Called(ctx, booking)
	if booking != nil {
		booking.ID = 1
		booking.ConfirmationCode = "BBTEST01"
	}
	return args.Error(0)
}

func (m *MockBookingStore) Cancel(ctx context.Context, bookingID, userID int64) (*bookings.Booking, error) {
	args := m.Called(ctx, bookingID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookings.Booking), args.Error(1)
}

func (m *MockBookingStore) GetByUser(ctx context.Context, userID int64) ([]bookings.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bookings.Booking), args.Error(1)
}

type MockGroupStore struct {
	mock.Mock
}

func (m *MockGroupStore) Create(ctx context.Context, group *groups.Group) error {
	args := m.Called(ctx, group)
	if group != nil {
		group.ID = 1
		group.MemberCount = 1
	}
	return args.Error(0)
}

func (m *MockGroupStore) AddMember(ctx context.Context, groupID, userID int64) (*groups.Member, error) {
	args := m.Called(ctx, groupID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*groups.Member), args.Error(1)
}

func (m *MockGroupStore) GetForUser(ctx context.Context, userID int64) ([]groups.Group, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]groups.Group), args.Error(1)
}

func (m *MockGroupStore) IsMember(ctx context.Context, groupID, userID int64) (bool, error) {
	args := m.Called(ctx, groupID, userID)
	return args.Bool(0), args.Error(1)
}

type MockMessageStore struct {
	mock.Mock
}

func (m *MockMessageStore) Create(ctx context.Context, msg *messages.GroupMessage) error {
	args := m.Called(ctx, msg)
	if msg != nil {
		msg.ID = 1
	}
	return args.Error(0)
}

func (m *MockMessageStore) GetByGroup(ctx context.Context, groupID int64) ([]messages.GroupMessage, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]messages.GroupMessage), args.Error(1)
}

type MockExpenseStore struct {
	mock.Mock
}

func (m *MockExpenseStore) Create(ctx context.Context, expense *expenses.Expense) error {
	args := m.Called(ctx, expense)
	if expense != nil {
		expense.ID = 1
	}
	return args.Error(0)
}

func (m *MockExpenseStore) GetByGroup(ctx context.Context, groupID int64) ([]expenses.Expense, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]expenses.Expense), args.Error(1)
}

type MockNotificationStore struct {
	mock.Mock
}

func (m *MockNotificationStore) Create(ctx context.Context, notification *notifications.Notification) error {
	args := m.Called(ctx, notification)
	if notification != nil {
		notification.ID = 1
	}
	return args.Error(0)
}

func (m *MockNotificationStore) GetByUser(ctx context.Context, userID int64) ([]notifications.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]notifications.Notification), args.Error(1)
}

func (m *MockNotificationStore) MarkRead(ctx context.Context, notificationID, userID int64) (bool, error) {
	args := m.Called(ctx, notificationID, userID)
	return args.Bool(0), args.Error(1)
}

// Test helpers

func newTestApplication(store *storage.Container) *application {
	return &application{
		logger: zap.NewNop().Sugar(),
		store:  store,
	}
}

func testUser() *users.User {
	return &users.User{
		ID:        42,
		Email:     "alex@example.com",
		FirstName: "Alex",
		LastName:  "Doe",
		Role:      users.RoleUser,
	}
}

func requestWithUser(r *http.Request, user *users.User) *http.Request {
	ctx := context.WithValue(r.Context(), userCtx, user)
	return r.WithContext(ctx)
}
