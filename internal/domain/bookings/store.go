package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookbuddy/internal/database"
)

var (
	ErrVenueNotFound = errors.New("venue not found")
	ErrGroupNotFound = errors.New("group not found")
)

// maxCodeAttempts bounds retries when a generated confirmation code
// collides with an existing booking.
const maxCodeAttempts = 5

type Store interface {
	Create(ctx context.Context, booking *Booking) error
	Cancel(ctx context.Context, bookingID, userID int64) (*Booking, error)
	GetByUser(ctx context.Context, userID int64) ([]Booking, error)
}

type codeGenerator interface {
	Generate() string
}

type Repository struct {
	db      *pgxpool.Pool
	codeGen codeGenerator
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db, codeGen: NewConfirmationCodeGenerator()}
}

const bookingColumns = `id, venue_id, user_id, group_id, booking_date, start_time, end_time,
		guest_count, total_amount, status, special_requests, confirmation_code,
		payment_status, created_at, updated_at`

func scanBooking(row pgx.Row, b *Booking) error {
	return row.Scan(
		&b.ID,
		&b.VenueID,
		&b.UserID,
		&b.GroupID,
		&b.BookingDate,
		&b.StartTime,
		&b.EndTime,
		&b.GuestCount,
		&b.TotalAmount,
		&b.Status,
		&b.SpecialRequests,
		&b.ConfirmationCode,
		&b.PaymentStatus,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
}

// Create prices the booking off the venue's minimum per-person price and
// inserts it with a fresh confirmation code. Venue and group lookups and
// the insert run in one transaction so the price cannot change between
// reading it and writing the booking.
func (r *Repository) Create(ctx context.Context, booking *Booking) error {
	return database.WithTx(r.db, ctx, func(tx pgx.Tx) error {
		var pricePerPerson float64
		err := tx.QueryRow(ctx, `SELECT price_range_min FROM venues WHERE id = $1`, booking.VenueID).Scan(&pricePerPerson)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrVenueNotFound
			}
			return fmt.Errorf("could not fetch venue: %w", err)
		}

		if booking.GroupID != nil {
			var exists bool
			err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM groups WHERE id = $1)`, *booking.GroupID).Scan(&exists)
			if err != nil {
				return fmt.Errorf("could not check group: %w", err)
			}
			if !exists {
				return ErrGroupNotFound
			}
		}

		booking.TotalAmount = TotalAmount(pricePerPerson, booking.GuestCount)

		insert := `
			INSERT INTO bookings (
				venue_id, user_id, group_id, booking_date, start_time, end_time,
				guest_count, total_amount, special_requests, confirmation_code
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id, status, payment_status, created_at, updated_at
		`

		for attempt := 0; attempt < maxCodeAttempts; attempt++ {
			booking.ConfirmationCode = r.codeGen.Generate()

			// Each attempt runs in a savepoint: a unique violation
			// aborts only the savepoint, so the next attempt can
			// still run inside the same transaction.
			sp, err := tx.Begin(ctx)
			if err != nil {
				return fmt.Errorf("could not start savepoint: %w", err)
			}

			err = sp.QueryRow(ctx, insert,
				booking.VenueID,
				booking.UserID,
				booking.GroupID,
				booking.BookingDate,
				booking.StartTime,
				booking.EndTime,
				booking.GuestCount,
				booking.TotalAmount,
				booking.SpecialRequests,
				booking.ConfirmationCode,
			).Scan(&booking.ID, &booking.Status, &booking.PaymentStatus, &booking.CreatedAt, &booking.UpdatedAt)
			if err == nil {
				if err := sp.Commit(ctx); err != nil {
					return fmt.Errorf("could not release savepoint: %w", err)
				}
				return nil
			}

			_ = sp.Rollback(ctx)

			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "bookings_confirmation_code_key" {
				continue
			}
			return fmt.Errorf("could not create booking: %w", err)
		}

		return fmt.Errorf("could not generate a unique confirmation code after %d attempts", maxCodeAttempts)
	})
}

// Cancel marks the booking cancelled and its payment refunded. Only the
// booking's owner can cancel it; a miss on (id, user) returns (nil, nil).
func (r *Repository) Cancel(ctx context.Context, bookingID, userID int64) (*Booking, error) {
	query := `
		UPDATE bookings
		SET status = 'cancelled',
			payment_status = 'refunded',
			updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + bookingColumns

	var booking Booking
	if err := scanBooking(r.db.QueryRow(ctx, query, bookingID, userID), &booking); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not cancel booking: %w", err)
	}

	return &booking, nil
}

// GetByUser returns the user's bookings, newest first.
func (r *Repository) GetByUser(ctx context.Context, userID int64) ([]Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch bookings: %w", err)
	}
	defer rows.Close()

	results := []Booking{}
	for rows.Next() {
		var booking Booking
		if err := scanBooking(rows, &booking); err != nil {
			return nil, fmt.Errorf("could not scan booking row: %w", err)
		}
		results = append(results, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not iterate booking rows: %w", err)
	}

	return results, nil
}
