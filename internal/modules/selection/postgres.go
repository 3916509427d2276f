package selection

import (
	"context"
	"database/sql"
	"fmt"
)

type postgresStore struct{ db *sql.DB }

// NewPostgresStore persists the selection as one row per product id.
func NewPostgresStore(db *sql.DB) Store { return &postgresStore{db: db} }

func (s *postgresStore) Selected(ctx context.Context) ([]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT product_id FROM selected_products ORDER BY product_id`)
	if err != nil {
		return nil, fmt.Errorf("load selection: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Save replaces the stored set atomically. Last writer wins: concurrent
// admin sessions overwrite each other, there is no versioning.
func (s *postgresStore) Save(ctx context.Context, ids []int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM selected_products`); err != nil {
		return fmt.Errorf("clear selection: %w", err)
	}
	for _, id := range ids {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO selected_products (product_id) VALUES ($1)`, id); err != nil {
			return fmt.Errorf("insert selection %d: %w", id, err)
		}
	}
	return tx.Commit()
}
