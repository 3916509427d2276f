package cart

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"
)

type postgresStore struct{ db *sql.DB }

// NewPostgresStore persists carts as one JSON document per tenant/cart pair.
func NewPostgresStore(db *sql.DB) Store { return &postgresStore{db: db} }

func (s *postgresStore) Get(ctx context.Context, tenantID, cartID string) ([]LineItem, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT items FROM carts WHERE tenant_id=$1 AND cart_id=$2`,
		tenantID, cartID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	var items []LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		// A corrupt stored document reads as an empty cart.
		log.Printf("cart %s/%s: discarding malformed stored items: %v", tenantID, cartID, err)
		return nil, nil
	}
	return items, nil
}

func (s *postgresStore) Save(ctx context.Context, tenantID, cartID string, items []LineItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO carts (tenant_id, cart_id, items, updated_at)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (tenant_id, cart_id)
		DO UPDATE SET items=EXCLUDED.items, updated_at=EXCLUDED.updated_at`,
		tenantID, cartID, raw, time.Now())
	if err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (s *postgresStore) Clear(ctx context.Context, tenantID, cartID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM carts WHERE tenant_id=$1 AND cart_id=$2`, tenantID, cartID)
	return err
}
