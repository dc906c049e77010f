package messages

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotMember = errors.New("user is not a member of this group")

type Store interface {
	Create(ctx context.Context, msg *GroupMessage) error
	GetByGroup(ctx context.Context, groupID int64) ([]GroupMessage, error)
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Create posts a message to a group. Only members can post.
func (r *Repository) Create(ctx context.Context, msg *GroupMessage) error {
	var isMember bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM group_members
			WHERE group_id = $1 AND user_id = $2
		)
	`, msg.GroupID, msg.UserID).Scan(&isMember)
	if err != nil {
		return fmt.Errorf("could not check membership: %w", err)
	}
	if !isMember {
		return ErrNotMember
	}

	query := `
		INSERT INTO group_messages (group_id, user_id, message)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err = r.db.QueryRow(ctx, query, msg.GroupID, msg.UserID, msg.Message).Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("could not create message: %w", err)
	}

	return nil
}

// GetByGroup returns a group's messages in chronological order.
func (r *Repository) GetByGroup(ctx context.Context, groupID int64) ([]GroupMessage, error) {
	query := `
		SELECT id, group_id, user_id, message, created_at
		FROM group_messages
		WHERE group_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch messages: %w", err)
	}
	defer rows.Close()

	results := []GroupMessage{}
	for rows.Next() {
		var msg GroupMessage
		if err := rows.Scan(&msg.ID, &msg.GroupID, &msg.UserID, &msg.Message, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("could not scan message row: %w", err)
		}
		results = append(results, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not iterate message rows: %w", err)
	}

	return results, nil
}
