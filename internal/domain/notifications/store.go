package notifications

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store interface {
	Create(ctx context.Context, notification *Notification) error
	GetByUser(ctx context.Context, userID int64) ([]Notification, error)
	MarkRead(ctx context.Context, notificationID, userID int64) (bool, error)
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, notification *Notification) error {
	var data []byte
	if notification.Data != nil {
		encoded, err := json.Marshal(notification.Data)
		if err != nil {
			return fmt.Errorf("could not encode notification data: %w", err)
		}
		data = encoded
	}

	query := `
		INSERT INTO notifications (user_id, type, title, message, data)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, is_read, created_at
	`

	err := r.db.QueryRow(ctx, query,
		notification.UserID,
		notification.Type,
		notification.Title,
		notification.Message,
		data,
	).Scan(&notification.ID, &notification.IsRead, &notification.CreatedAt)
	if err != nil {
		return fmt.Errorf("could not create notification: %w", err)
	}

	return nil
}

// GetByUser returns the user's notifications with unread ones first,
// newest first within each group.
func (r *Repository) GetByUser(ctx context.Context, userID int64) ([]Notification, error) {
	query := `
		SELECT id, user_id, type, title, message, data, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY is_read ASC, created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch notifications: %w", err)
	}
	defer rows.Close()

	results := []Notification{}
	for rows.Next() {
		var notification Notification
		var data []byte

		err := rows.Scan(
			&notification.ID,
			&notification.UserID,
			&notification.Type,
			&notification.Title,
			&notification.Message,
			&data,
			&notification.IsRead,
			&notification.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("could not scan notification row: %w", err)
		}

		if data != nil {
			if err := json.Unmarshal(data, &notification.Data); err != nil {
				return nil, fmt.Errorf("could not decode notification data: %w", err)
			}
		}

		results = append(results, notification)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not iterate notification rows: %w", err)
	}

	return results, nil
}

// MarkRead flags the notification as read if it belongs to the user. It
// reports whether a row was actually updated.
func (r *Repository) MarkRead(ctx context.Context, notificationID, userID int64) (bool, error) {
	query := `
		UPDATE notifications
		SET is_read = true
		WHERE id = $1 AND user_id = $2
	`

	tag, err := r.db.Exec(ctx, query, notificationID, userID)
	if err != nil {
		return false, fmt.Errorf("could not mark notification read: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
