package bookings

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type Booking struct {
	ID               int64         `json:"id"`
	VenueID          int64         `json:"venue_id"`
	UserID           int64         `json:"user_id"`
	GroupID          *int64        `json:"group_id"`
	BookingDate      time.Time     `json:"booking_date"`
	StartTime        string        `json:"start_time"`
	EndTime          *string       `json:"end_time"`
	GuestCount       int           `json:"guest_count"`
	TotalAmount      float64       `json:"total_amount"`
	Status           Status        `json:"status"`
	SpecialRequests  *string       `json:"special_requests"`
	ConfirmationCode string        `json:"confirmation_code"`
	PaymentStatus    PaymentStatus `json:"payment_status"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}
