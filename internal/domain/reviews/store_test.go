package reviews

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	addr := os.Getenv("TEST_DATABASE_ADDR")
	if addr == "" {
		t.Skip("TEST_DATABASE_ADDR not set")
	}

	cfg, err := pgxpool.ParseConfig(addr)
	require.NoError(t, err)
	cfg.ConnConfig.RuntimeParams["search_path"] = "reviews_test"

	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func setupReviewTables(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	ctx := context.Background()

	stmts := []string{
		`DROP SCHEMA IF EXISTS reviews_test CASCADE`,
		`CREATE SCHEMA reviews_test`,
		`CREATE TABLE venues (
			id bigserial PRIMARY KEY,
			rating numeric(3,2) NOT NULL DEFAULT 0,
			review_count int NOT NULL DEFAULT 0,
			updated_at timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE reviews (
			id bigserial PRIMARY KEY,
			venue_id bigint NOT NULL,
			user_id bigint NOT NULL,
			rating int NOT NULL,
			title text,
			content text NOT NULL,
			image_urls jsonb NOT NULL DEFAULT '[]',
			is_verified boolean NOT NULL DEFAULT false,
			helpful_count int NOT NULL DEFAULT 0,
			created_at timestamptz NOT NULL DEFAULT now(),
			updated_at timestamptz NOT NULL DEFAULT now(),
			CONSTRAINT reviews_venue_id_user_id_key UNIQUE (venue_id, user_id)
		)`,
	}
	for _, stmt := range stmts {
		_, err := pool.Exec(ctx, stmt)
		require.NoError(t, err)
	}
}

func insertTestVenue(t *testing.T, pool *pgxpool.Pool) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO venues DEFAULT VALUES RETURNING id`).Scan(&id)
	require.NoError(t, err)
	return id
}

func venueAggregates(t *testing.T, pool *pgxpool.Pool, venueID int64) (float64, int) {
	t.Helper()

	var rating float64
	var count int
	err := pool.QueryRow(context.Background(),
		`SELECT rating, review_count FROM venues WHERE id = $1`, venueID).Scan(&rating, &count)
	require.NoError(t, err)
	return rating, count
}

func TestCreateRecomputesAggregates(t *testing.T) {
	pool := newTestPool(t)
	setupReviewTables(t, pool)
	ctx := context.Background()

	venueID := insertTestVenue(t, pool)
	repo := NewRepository(pool)

	require.NoError(t, repo.Create(ctx, &Review{VenueID: venueID, UserID: 1, Rating: 5, Content: "Great"}))
	require.NoError(t, repo.Create(ctx, &Review{VenueID: venueID, UserID: 2, Rating: 3, Content: "Okay"}))

	rating, count := venueAggregates(t, pool, venueID)
	assert.Equal(t, 4.0, rating)
	assert.Equal(t, 2, count)
}

func TestCreateDuplicateReview(t *testing.T) {
	pool := newTestPool(t)
	setupReviewTables(t, pool)
	ctx := context.Background()

	venueID := insertTestVenue(t, pool)
	repo := NewRepository(pool)

	require.NoError(t, repo.Create(ctx, &Review{VenueID: venueID, UserID: 1, Rating: 5, Content: "First"}))
	err := repo.Create(ctx, &Review{VenueID: venueID, UserID: 1, Rating: 2, Content: "Second"})
	assert.ErrorIs(t, err, ErrDuplicateReview)

	_, count := venueAggregates(t, pool, venueID)
	assert.Equal(t, 1, count)
}

func TestCreateVenueMissing(t *testing.T) {
	pool := newTestPool(t)
	setupReviewTables(t, pool)

	repo := NewRepository(pool)
	err := repo.Create(context.Background(), &Review{VenueID: 9999, UserID: 1, Rating: 4, Content: "Ghost"})
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

// Concurrent reviews for the same venue must each land in the
// aggregates; the venue row lock serializes the recomputes.
func TestCreateConcurrentReviewsCountEveryReview(t *testing.T) {
	pool := newTestPool(t)
	setupReviewTables(t, pool)
	ctx := context.Background()

	repo := NewRepository(pool)

	const rounds = 10
	const writers = 4

	for round := 0; round < rounds; round++ {
		venueID := insertTestVenue(t, pool)

		var wg sync.WaitGroup
		errs := make(chan error, writers)
		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func(userID int64) {
				defer wg.Done()
				errs <- repo.Create(ctx, &Review{
					VenueID: venueID,
					UserID:  userID,
					Rating:  4,
					Content: "Concurrent",
				})
			}(int64(i + 1))
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			require.NoError(t, err)
		}

		rating, count := venueAggregates(t, pool, venueID)
		require.Equal(t, writers, count)
		require.Equal(t, 4.0, rating)
	}
}
