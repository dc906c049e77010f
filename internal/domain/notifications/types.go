package notifications

import "time"

type Type string

const (
	TypeBookingUpdate   Type = "booking_update"
	TypeGroupMessage    Type = "group_message"
	TypePriceAlert      Type = "price_alert"
	TypePaymentReminder Type = "payment_reminder"
)

type Notification struct {
	ID        int64          `json:"id"`
	UserID    int64          `json:"user_id"`
	Type      Type           `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data"`
	IsRead    bool           `json:"is_read"`
	CreatedAt time.Time      `json:"created_at"`
}
