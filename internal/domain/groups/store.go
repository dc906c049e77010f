package groups

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookbuddy/internal/database"
)

var (
	ErrGroupNotFound = errors.New("group not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrAlreadyMember = errors.New("user is already a member of this group")
)

type Store interface {
	Create(ctx context.Context, group *Group) error
	AddMember(ctx context.Context, groupID, userID int64) (*Member, error)
	GetForUser(ctx context.Context, userID int64) ([]Group, error)
	IsMember(ctx context.Context, groupID, userID int64) (bool, error)
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Create inserts the group together with its organizer membership row.
// The organizer counts toward member_count from the start.
func (r *Repository) Create(ctx context.Context, group *Group) error {
	return database.WithTx(r.db, ctx, func(tx pgx.Tx) error {
		insert := `
			INSERT INTO groups (name, description, organizer_id, event_date, total_budget, member_count)
			VALUES ($1, $2, $3, $4, $5, 1)
			RETURNING id, member_count, is_active, created_at, updated_at
		`

		err := tx.QueryRow(ctx, insert,
			group.Name,
			group.Description,
			group.OrganizerID,
			group.EventDate,
			group.TotalBudget,
		).Scan(&group.ID, &group.MemberCount, &group.IsActive, &group.CreatedAt, &group.UpdatedAt)
		if err != nil {
			return fmt.Errorf("could not create group: %w", err)
		}

		memberInsert := `
			INSERT INTO group_members (group_id, user_id, role)
			VALUES ($1, $2, 'organizer')
		`

		if _, err := tx.Exec(ctx, memberInsert, group.ID, group.OrganizerID); err != nil {
			return fmt.Errorf("could not add organizer membership: %w", err)
		}

		return nil
	})
}

// AddMember adds a user to a group and bumps the member count. The
// membership unique constraint is the authority on duplicates, so a
// concurrent double-join cannot inflate the count.
func (r *Repository) AddMember(ctx context.Context, groupID, userID int64) (*Member, error) {
	var member Member

	err := database.WithTx(r.db, ctx, func(tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM groups WHERE id = $1)`, groupID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("could not check group: %w", err)
		}
		if !exists {
			return ErrGroupNotFound
		}

		insert := `
			INSERT INTO group_members (group_id, user_id, role)
			VALUES ($1, $2, 'member')
			RETURNING id, group_id, user_id, role, joined_at
		`

		err = tx.QueryRow(ctx, insert, groupID, userID).Scan(
			&member.ID,
			&member.GroupID,
			&member.UserID,
			&member.Role,
			&member.JoinedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) {
				switch pgErr.Code {
				case "23505":
					return ErrAlreadyMember
				case "23503":
					if pgErr.ConstraintName == "group_members_group_id_fkey" {
						return ErrGroupNotFound
					}
					return ErrUserNotFound
				}
			}
			return fmt.Errorf("could not add group member: %w", err)
		}

		update := `
			UPDATE groups
			SET member_count = member_count + 1,
				updated_at = now()
			WHERE id = $1
		`

		if _, err := tx.Exec(ctx, update, groupID); err != nil {
			return fmt.Errorf("could not update member count: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &member, nil
}

// GetForUser returns the groups where the user is the organizer or a
// member, each group once.
func (r *Repository) GetForUser(ctx context.Context, userID int64) ([]Group, error) {
	query := `
		SELECT DISTINCT g.id, g.name, g.description, g.organizer_id, g.event_date,
			g.total_budget, g.member_count, g.is_active, g.created_at, g.updated_at
		FROM groups g
		LEFT JOIN group_members gm ON gm.group_id = g.id
		WHERE g.organizer_id = $1 OR gm.user_id = $1
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch groups: %w", err)
	}
	defer rows.Close()

	results := []Group{}
	for rows.Next() {
		var group Group
		err := rows.Scan(
			&group.ID,
			&group.Name,
			&group.Description,
			&group.OrganizerID,
			&group.EventDate,
			&group.TotalBudget,
			&group.MemberCount,
			&group.IsActive,
			&group.CreatedAt,
			&group.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("could not scan group row: %w", err)
		}
		results = append(results, group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not iterate group rows: %w", err)
	}

	return results, nil
}

func (r *Repository) IsMember(ctx context.Context, groupID, userID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM group_members
			WHERE group_id = $1 AND user_id = $2
		)
	`

	var isMember bool
	if err := r.db.QueryRow(ctx, query, groupID, userID).Scan(&isMember); err != nil {
		return false, fmt.Errorf("could not check membership: %w", err)
	}

	return isMember, nil
}
