package expenses

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrGroupNotFound = errors.New("group not found")

type Store interface {
	Create(ctx context.Context, expense *Expense) error
	GetByGroup(ctx context.Context, groupID int64) ([]Expense, error)
}

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, expense *Expense) error {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM groups WHERE id = $1)`, expense.GroupID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("could not check group: %w", err)
	}
	if !exists {
		return ErrGroupNotFound
	}

	query := `
		INSERT INTO expenses (group_id, payer_id, description, amount, category, receipt_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err = r.db.QueryRow(ctx, query,
		expense.GroupID,
		expense.PayerID,
		expense.Description,
		expense.Amount,
		expense.Category,
		expense.ReceiptURL,
	).Scan(&expense.ID, &expense.CreatedAt)
	if err != nil {
		return fmt.Errorf("could not create expense: %w", err)
	}

	return nil
}

func (r *Repository) GetByGroup(ctx context.Context, groupID int64) ([]Expense, error) {
	query := `
		SELECT id, group_id, payer_id, description, amount, category, receipt_url, created_at
		FROM expenses
		WHERE group_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch expenses: %w", err)
	}
	defer rows.Close()

	results := []Expense{}
	for rows.Next() {
		var expense Expense
		err := rows.Scan(
			&expense.ID,
			&expense.GroupID,
			&expense.PayerID,
			&expense.Description,
			&expense.Amount,
			&expense.Category,
			&expense.ReceiptURL,
			&expense.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("could not scan expense row: %w", err)
		}
		results = append(results, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not iterate expense rows: %w", err)
	}

	return results, nil
}
