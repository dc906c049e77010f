package reviews

import "time"

type Review struct {
	ID           int64     `json:"id"`
	VenueID      int64     `json:"venue_id"`
	UserID       int64     `json:"user_id"`
	Rating       int       `json:"rating"`
	Title        *string   `json:"title"`
	Content      string    `json:"content"`
	ImageURLs    []string  `json:"image_urls"`
	IsVerified   bool      `json:"is_verified"`
	HelpfulCount int       `json:"helpful_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
