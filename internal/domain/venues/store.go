package venues

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrVenueNotFound     = errors.New("venue not found")
	ErrDuplicateFavorite = errors.New("venue is already in favorites")
)

type Store interface {
	Create(ctx context.Context, venue *Venue) error
	GetByID(ctx context.Context, venueID int64) (*Venue, error)
	Search(ctx context.Context, filter SearchFilter) ([]Venue, error)
	AddFavorite(ctx context.Context, userID, venueID int64) error
	RemoveFavorite(ctx context.Context, userID, venueID int64) (bool, error)
	GetFavoritesByUser(ctx context.Context, userID int64) ([]Venue, error)
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const venueColumns = `id, name, description, category, address, latitude, longitude,
		phone, email, website_url, price_range_min, price_range_max,
		rating, review_count, is_active, thumbnail_image_url, owner_id,
		created_at, updated_at`

func scanVenue(row pgx.Row, venue *Venue) error {
	return row.Scan(
		&venue.ID,
		&venue.Name,
		&venue.Description,
		&venue.Category,
		&venue.Address,
		&venue.Latitude,
		&venue.Longitude,
		&venue.Phone,
		&venue.Email,
		&venue.WebsiteURL,
		&venue.PriceRangeMin,
		&venue.PriceRangeMax,
		&venue.Rating,
		&venue.ReviewCount,
		&venue.IsActive,
		&venue.ThumbnailImageURL,
		&venue.OwnerID,
		&venue.CreatedAt,
		&venue.UpdatedAt,
	)
}

// Create creates a new venue in the database
func (r *Repository) Create(ctx context.Context, venue *Venue) error {
	const query = `
		INSERT INTO venues (
			name, description, category, address, latitude, longitude,
			phone, email, website_url, price_range_min, price_range_max,
			thumbnail_image_url, owner_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, rating, review_count, is_active, created_at, updated_at
	`

	args := []any{
		venue.Name,
		venue.Description,
		venue.Category,
		venue.Address,
		venue.Latitude,
		venue.Longitude,
		venue.Phone,
		venue.Email,
		venue.WebsiteURL,
		venue.PriceRangeMin,
		venue.PriceRangeMax,
		venue.ThumbnailImageURL,
		venue.OwnerID,
	}

	row := r.db.QueryRow(ctx, query, args...)
	if err := row.Scan(&venue.ID, &venue.Rating, &venue.ReviewCount, &venue.IsActive, &venue.CreatedAt, &venue.UpdatedAt); err != nil {
		return fmt.Errorf("error scanning insert result: %w", err)
	}
	return nil
}

// GetByID fetches a single venue. A missing venue is not an error:
// callers get (nil, nil) and decide how to respond.
func (r *Repository) GetByID(ctx context.Context, venueID int64) (*Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE id = $1`

	var venue Venue
	if err := scanVenue(r.db.QueryRow(ctx, query, venueID), &venue); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not fetch venue: %w", err)
	}

	return &venue, nil
}

// buildSearchQuery turns a SearchFilter into a WHERE clause and ORDER BY
// expression with positional arguments. Split out from Search so the SQL
// assembly can be exercised without a database.
func buildSearchQuery(filter SearchFilter) (string, string, []any) {
	conditions := []string{"is_active = true"}
	args := []any{}
	argCounter := 1

	if filter.Keyword != "" {
		conditions = append(conditions,
			fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", argCounter, argCounter))
		args = append(args, "%"+filter.Keyword+"%")
		argCounter++
	}

	if filter.Category != nil {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argCounter))
		args = append(args, *filter.Category)
		argCounter++
	}

	// Budget overlap: the venue's price interval must intersect the
	// requested one, not be contained in it.
	if filter.MinPrice != nil {
		conditions = append(conditions, fmt.Sprintf("price_range_max >= $%d", argCounter))
		args = append(args, *filter.MinPrice)
		argCounter++
	}

	if filter.MaxPrice != nil {
		conditions = append(conditions, fmt.Sprintf("price_range_min <= $%d", argCounter))
		args = append(args, *filter.MaxPrice)
		argCounter++
	}

	// Approximate bounding box. Venues without coordinates drop out
	// because NULL comparisons are never true.
	if filter.Latitude != nil && filter.Longitude != nil && filter.RadiusKm != nil {
		latRange := *filter.RadiusKm / 111
		lonRange := *filter.RadiusKm / (111 * math.Cos(*filter.Latitude*math.Pi/180))

		conditions = append(conditions, fmt.Sprintf(
			"latitude >= $%d AND latitude <= $%d AND longitude >= $%d AND longitude <= $%d",
			argCounter, argCounter+1, argCounter+2, argCounter+3))
		args = append(args,
			*filter.Latitude-latRange,
			*filter.Latitude+latRange,
			*filter.Longitude-lonRange,
			*filter.Longitude+lonRange,
		)
		argCounter += 4
	}

	var orderBy string
	switch filter.SortBy {
	case SortByPriceLow:
		orderBy = "price_range_min ASC"
	case SortByPriceHigh:
		orderBy = "price_range_max DESC"
	case SortByDistance:
		// TODO: sort by true distance once a geo extension is wired in.
		orderBy = "id ASC"
	default:
		orderBy = "rating DESC"
	}

	return strings.Join(conditions, " AND "), orderBy, args
}

// Search returns active venues matching the filter, ordered by the
// requested sort key.
func (r *Repository) Search(ctx context.Context, filter SearchFilter) ([]Venue, error) {
	where, orderBy, args := buildSearchQuery(filter)

	query := `SELECT ` + venueColumns + ` FROM venues WHERE ` + where + ` ORDER BY ` + orderBy

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("could not search venues: %w", err)
	}
	defer rows.Close()

	results := []Venue{}
	for rows.Next() {
		var venue Venue
		if err := scanVenue(rows, &venue); err != nil {
			return nil, fmt.Errorf("could not scan venue row: %w", err)
		}
		results = append(results, venue)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not iterate venue rows: %w", err)
	}

	return results, nil
}

// AddFavorite marks a venue as a favorite for the user.
func (r *Repository) AddFavorite(ctx context.Context, userID, venueID int64) error {
	query := `
		INSERT INTO favorites (user_id, venue_id)
		VALUES ($1, $2)
	`

	_, err := r.db.Exec(ctx, query, userID, venueID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return ErrDuplicateFavorite
			case "23503":
				return ErrVenueNotFound
			}
		}
		return fmt.Errorf("could not add favorite: %w", err)
	}

	return nil
}

// RemoveFavorite deletes the favorite row. It reports whether a row was
// actually removed.
func (r *Repository) RemoveFavorite(ctx context.Context, userID, venueID int64) (bool, error) {
	query := `
		DELETE FROM favorites
		WHERE user_id = $1 AND venue_id = $2
	`

	tag, err := r.db.Exec(ctx, query, userID, venueID)
	if err != nil {
		return false, fmt.Errorf("could not remove favorite: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// GetFavoritesByUser returns the venues the user has favorited, most
// recently favorited first.
func (r *Repository) GetFavoritesByUser(ctx context.Context, userID int64) ([]Venue, error) {
	query := `
		SELECT v.id, v.name, v.description, v.category, v.address, v.latitude, v.longitude,
			v.phone, v.email, v.website_url, v.price_range_min, v.price_range_max,
			v.rating, v.review_count, v.is_active, v.thumbnail_image_url, v.owner_id,
			v.created_at, v.updated_at
		FROM favorites f
		JOIN venues v ON v.id = f.venue_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch favorites: %w", err)
	}
	defer rows.Close()

	results := []Venue{}
	for rows.Next() {
		var venue Venue
		if err := scanVenue(rows, &venue); err != nil {
			return nil, fmt.Errorf("could not scan venue row: %w", err)
		}
		results = append(results, venue)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not iterate venue rows: %w", err)
	}

	return results, nil
}
