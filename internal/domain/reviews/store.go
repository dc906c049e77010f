package reviews

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookbuddy/internal/database"
)

var (
	ErrVenueNotFound   = errors.New("venue not found")
	ErrDuplicateReview = errors.New("user has already reviewed this venue")
)

type Store interface {
	Create(ctx context.Context, review *Review) error
	GetByVenue(ctx context.Context, venueID int64) ([]Review, error)
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Create inserts the review and recomputes the venue's aggregate rating
// and review count in the same transaction, so the aggregates never
// drift from the review rows.
func (r *Repository) Create(ctx context.Context, review *Review) error {
	if review.ImageURLs == nil {
		review.ImageURLs = []string{}
	}

	imageURLs, err := json.Marshal(review.ImageURLs)
	if err != nil {
		return fmt.Errorf("could not encode image urls: %w", err)
	}

	return database.WithTx(r.db, ctx, func(tx pgx.Tx) error {
		// The venue row lock serializes concurrent reviews for the
		// same venue, so the recompute below always counts every
		// earlier committed review.
		var locked int
		err := tx.QueryRow(ctx, `SELECT 1 FROM venues WHERE id = $1 FOR UPDATE`, review.VenueID).Scan(&locked)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrVenueNotFound
			}
			return fmt.Errorf("could not lock venue: %w", err)
		}

		insert := `
			INSERT INTO reviews (venue_id, user_id, rating, title, content, image_urls)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, is_verified, helpful_count, created_at, updated_at
		`

		err = tx.QueryRow(ctx, insert,
			review.VenueID,
			review.UserID,
			review.Rating,
			review.Title,
			review.Content,
			imageURLs,
		).Scan(&review.ID, &review.IsVerified, &review.HelpfulCount, &review.CreatedAt, &review.UpdatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return ErrDuplicateReview
			}
			return fmt.Errorf("could not create review: %w", err)
		}

		recompute := `
			UPDATE venues
			SET rating = agg.avg_rating,
				review_count = agg.total,
				updated_at = now()
			FROM (
				SELECT COALESCE(AVG(rating), 0) AS avg_rating, COUNT(*) AS total
				FROM reviews
				WHERE venue_id = $1
			) AS agg
			WHERE venues.id = $1
		`

		if _, err := tx.Exec(ctx, recompute, review.VenueID); err != nil {
			return fmt.Errorf("could not update venue rating: %w", err)
		}

		return nil
	})
}

// GetByVenue returns a venue's reviews, most helpful first, newest
// breaking ties.
func (r *Repository) GetByVenue(ctx context.Context, venueID int64) ([]Review, error) {
	query := `
		SELECT id, venue_id, user_id, rating, title, content, image_urls,
			is_verified, helpful_count, created_at, updated_at
		FROM reviews
		WHERE venue_id = $1
		ORDER BY helpful_count DESC, created_at DESC
	`

	rows, err := r.db.Query(ctx, query, venueID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch reviews: %w", err)
	}
	defer rows.Close()

	results := []Review{}
	for rows.Next() {
		var review Review
		var imageURLs []byte

		err := rows.Scan(
			&review.ID,
			&review.VenueID,
			&review.UserID,
			&review.Rating,
			&review.Title,
			&review.Content,
			&imageURLs,
			&review.IsVerified,
			&review.HelpfulCount,
			&review.CreatedAt,
			&review.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("could not scan review row: %w", err)
		}

		if err := json.Unmarshal(imageURLs, &review.ImageURLs); err != nil {
			return nil, fmt.Errorf("could not decode image urls: %w", err)
		}

		results = append(results, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not iterate review rows: %w", err)
	}

	return results, nil
}
