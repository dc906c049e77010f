package groups

import (
	"context"
	"os"
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
	cfg.ConnConfig.RuntimeParams["search_path"] = "groups_test"

	pool, err := pgxpool.NewWithConfig(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func setupGroupTables(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	ctx := context.Background()

	stmts := []string{
		`DROP SCHEMA IF EXISTS groups_test CASCADE`,
		`CREATE SCHEMA groups_test`,
		`CREATE TABLE users (
			id bigserial PRIMARY KEY
		)`,
		`CREATE TABLE groups (
			id bigserial PRIMARY KEY,
			name text NOT NULL,
			description text,
			organizer_id bigint NOT NULL,
			event_date timestamptz,
			total_budget numeric(10,2),
			member_count int NOT NULL DEFAULT 0,
			is_active boolean NOT NULL DEFAULT true,
			created_at timestamptz NOT NULL DEFAULT now(),
			updated_at timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE group_members (
			id bigserial PRIMARY KEY,
			group_id bigint NOT NULL,
			user_id bigint NOT NULL,
			role text NOT NULL,
			joined_at timestamptz NOT NULL DEFAULT now(),
			CONSTRAINT group_members_group_id_fkey FOREIGN KEY (group_id) REFERENCES groups (id),
			CONSTRAINT group_members_user_id_fkey FOREIGN KEY (user_id) REFERENCES users (id),
			CONSTRAINT group_members_group_id_user_id_key UNIQUE (group_id, user_id)
		)`,
	}
	for _, stmt := range stmts {
		_, err := pool.Exec(ctx, stmt)
		require.NoError(t, err)
	}
}

func insertTestUser(t *testing.T, pool *pgxpool.Pool) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`INSERT INTO users DEFAULT VALUES RETURNING id`).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestAddMemberUnknownUser(t *testing.T) {
	pool := newTestPool(t)
	setupGroupTables(t, pool)
	ctx := context.Background()

	organizerID := insertTestUser(t, pool)
	repo := NewRepository(pool)

	group := &Group{Name: "Weekend trip", OrganizerID: organizerID}
	require.NoError(t, repo.Create(ctx, group))

	_, err := repo.AddMember(ctx, group.ID, 9999)
	assert.ErrorIs(t, err, ErrUserNotFound)

	var count int
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT member_count FROM groups WHERE id = $1`, group.ID).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestAddMemberBumpsCount(t *testing.T) {
	pool := newTestPool(t)
	setupGroupTables(t, pool)
	ctx := context.Background()

	organizerID := insertTestUser(t, pool)
	friendID := insertTestUser(t, pool)
	repo := NewRepository(pool)

	group := &Group{Name: "Dinner club", OrganizerID: organizerID}
	require.NoError(t, repo.Create(ctx, group))

	member, err := repo.AddMember(ctx, group.ID, friendID)
	require.NoError(t, err)
	assert.Equal(t, RoleMember, member.Role)

	var count int
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT member_count FROM groups WHERE id = $1`, group.ID).Scan(&count))
	assert.Equal(t, 2, count)

	_, err = repo.AddMember(ctx, group.ID, friendID)
	assert.ErrorIs(t, err, ErrAlreadyMember)
}

func TestAddMemberGroupMissing(t *testing.T) {
	pool := newTestPool(t)
	setupGroupTables(t, pool)

	repo := NewRepository(pool)
	_, err := repo.AddMember(context.Background(), 9999, 1)
	assert.ErrorIs(t, err, ErrGroupNotFound)
}
