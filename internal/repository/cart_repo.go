package repository

import (
	"context"
	"fmt"

	"github.com/Dewey-byte/angular-project/internal/model"

	"github.com/jackc/pgx/v5"
)

type CartRepository struct {
	DB DB
}

func NewCartRepository(db DB) *CartRepository {
	return &CartRepository{DB: db}
}

const cartItemsQuery = `
	SELECT c.cart_id, c.product_id, p.product_name, p.price, c.quantity, COALESCE(p.image_uri, '')
	FROM cart c
	JOIN products p ON p.product_id = c.product_id
	WHERE c.user_id=$1
	ORDER BY c.cart_id`

// GetItems returns the user's cart lines joined with product name/price/image.
func (r *CartRepository) GetItems(ctx context.Context, userID int64) ([]model.CartItem, error) {
	rows, err := r.DB.Query(ctx, cartItemsQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCartItems(rows)
}

// GetItemsForUpdate reads the cart inside tx and locks the rows until commit,
// so a concurrent add/update by the same user cannot touch the snapshot
// between the read and the cart delete.
func (r *CartRepository) GetItemsForUpdate(ctx context.Context, tx pgx.Tx, userID int64) ([]model.CartItem, error) {
	rows, err := tx.Query(ctx, cartItemsQuery+` FOR UPDATE OF c`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCartItems(rows)
}

func scanCartItems(rows pgx.Rows) ([]model.CartItem, error) {
	items := []model.CartItem{}
	for rows.Next() {
		var it model.CartItem
		if err := rows.Scan(&it.CartID, &it.ProductID, &it.Name, &it.Price, &it.Quantity, &it.ImageURI); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Upsert inserts a cart line or, when one already exists for this
// (user_id, product_id), adds the quantity onto it. The single statement keeps
// two concurrent adds from racing into duplicate lines.
func (r *CartRepository) Upsert(ctx context.Context, userID, productID int64, qty int) error {
	query := `
		INSERT INTO cart (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = cart.quantity + EXCLUDED.quantity
	`
	_, err := r.DB.Exec(ctx, query, userID, productID, qty)
	return err
}

// SetQuantity overwrites the quantity on an existing line.
func (r *CartRepository) SetQuantity(ctx context.Context, cartID int64, qty int) error {
	query := `UPDATE cart SET quantity=$1 WHERE cart_id=$2`
	tag, err := r.DB.Exec(ctx, query, qty, cartID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("cart line %d: %w", cartID, ErrNotFound)
	}
	return nil
}

// Remove deletes a single cart line.
func (r *CartRepository) Remove(ctx context.Context, cartID int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM cart WHERE cart_id=$1`, cartID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("cart line %d: %w", cartID, ErrNotFound)
	}
	return nil
}

// Clear deletes all cart lines for a user.
func (r *CartRepository) Clear(ctx context.Context, userID int64) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM cart WHERE user_id=$1`, userID)
	return err
}

// ClearTx deletes the given cart lines inside a transaction. Deleting by
// cart_id rather than user_id means a line for a new product, added after the
// caller's locked read, survives the checkout instead of being dropped
// unseen.
func (r *CartRepository) ClearTx(ctx context.Context, tx pgx.Tx, cartIDs []int64) error {
	_, err := tx.Exec(ctx, `DELETE FROM cart WHERE cart_id = ANY($1)`, cartIDs)
	return err
}
