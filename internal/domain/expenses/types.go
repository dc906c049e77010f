package expenses

import "time"

type Expense struct {
	ID          int64     `json:"id"`
	GroupID     int64     `json:"group_id"`
	PayerID     int64     `json:"payer_id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	ReceiptURL  *string   `json:"receipt_url"`
	CreatedAt   time.Time `json:"created_at"`
}
