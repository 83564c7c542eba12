package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dewey-byte/angular-project/internal/model"

	"github.com/jackc/pgx/v5"
)

type InventoryRepository struct {
	DB DB
}

func NewInventoryRepository(db DB) *InventoryRepository {
	return &InventoryRepository{DB: db}
}

const insertLogQuery = `
	INSERT INTO inventory_log (product_id, log_date, change_type, quantity_changed, remarks)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING log_id`

// Record appends one audit row. Rows are never updated or deleted afterwards.
func (r *InventoryRepository) Record(ctx context.Context, productID int64, changeType string, qty int, remarks string) (int64, error) {
	var id int64
	if err := r.DB.QueryRow(ctx, insertLogQuery, productID, time.Now(), changeType, qty, remarks).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// RecordTx appends one audit row inside the caller's transaction. Checkout
// does not call this today; it exists so an order-placement stock decrement
// can share the checkout transaction if that behavior is ever enabled.
func (r *InventoryRepository) RecordTx(ctx context.Context, tx pgx.Tx, productID int64, changeType string, qty int, remarks string) (int64, error) {
	var id int64
	if err := tx.QueryRow(ctx, insertLogQuery, productID, time.Now(), changeType, qty, remarks).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *InventoryRepository) List(ctx context.Context) ([]model.InventoryLogEntry, error) {
	query := `
		SELECT log_id, product_id, log_date, change_type, quantity_changed, COALESCE(remarks,'')
		FROM inventory_log
		ORDER BY log_id DESC
	`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.InventoryLogEntry{}
	for rows.Next() {
		var e model.InventoryLogEntry
		if err := rows.Scan(&e.LogID, &e.ProductID, &e.LogDate, &e.ChangeType, &e.QuantityChanged, &e.Remarks); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *InventoryRepository) GetByID(ctx context.Context, logID int64) (*model.InventoryLogEntry, error) {
	var e model.InventoryLogEntry
	query := `
		SELECT log_id, product_id, log_date, change_type, quantity_changed, COALESCE(remarks,'')
		FROM inventory_log
		WHERE log_id=$1
	`
	err := r.DB.QueryRow(ctx, query, logID).
		Scan(&e.LogID, &e.ProductID, &e.LogDate, &e.ChangeType, &e.QuantityChanged, &e.Remarks)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("inventory log %d: %w", logID, ErrNotFound)
		}
		return nil, err
	}
	return &e, nil
}
