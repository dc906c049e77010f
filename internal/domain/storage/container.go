package storage

import (
	"bookbuddy/internal/domain/bookings"
	"bookbuddy/internal/domain/expenses"
	"bookbuddy/internal/domain/groups"
	"bookbuddy/internal/domain/messages"
	"bookbuddy/internal/domain/notifications"
	"bookbuddy/internal/domain/reviews"
	"bookbuddy/internal/domain/users"
	"bookbuddy/internal/domain/venues"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Container struct {
	Users         users.Store
	Venues        venues.Store
	Reviews       reviews.Store
	Bookings      bookings.Store
	Groups        groups.Store
	Messages      messages.Store
	Expenses      expenses.Store
	Notifications notifications.Store
}

func NewContainer(db *pgxpool.Pool) *Container {
	return &Container{
		Users:         users.NewRepository(db),
		Venues:        venues.NewRepository(db),
		Reviews:       reviews.NewRepository(db),
		Bookings:      bookings.NewRepository(db),
		Groups:        groups.NewRepository(db),
		Messages:      messages.NewRepository(db),
		Expenses:      expenses.NewRepository(db),
		Notifications: notifications.NewRepository(db),
	}
}
