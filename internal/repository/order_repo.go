package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dewey-byte/angular-project/internal/model"

	"github.com/jackc/pgx/v5"
)

type OrderRepository struct {
	DB DB
}

func NewOrderRepository(db DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// CreateOrderTx inserts one order header and one order_details row per line
// inside the caller's transaction. Either all rows land or, when the caller
// rolls back, none do. Returns the generated order_id.
func (r *OrderRepository) CreateOrderTx(ctx context.Context, tx pgx.Tx, userID int64, lines []model.OrderLine, total float64, paymentMethod string) (int64, error) {
	var orderID int64
	query := `
		INSERT INTO orders (user_id, order_date, total_amount, order_status, payment_method)
		VALUES ($1, $2, $3, 'Pending', $4)
		RETURNING order_id
	`
	if err := tx.QueryRow(ctx, query, userID, time.Now(), total, paymentMethod).Scan(&orderID); err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}

	detail := `
		INSERT INTO order_details (order_id, product_id, quantity, subtotal)
		VALUES ($1, $2, $3, $4)
	`
	for _, l := range lines {
		if _, err := tx.Exec(ctx, detail, orderID, l.ProductID, l.Quantity, l.Subtotal); err != nil {
			return 0, fmt.Errorf("insert order detail (product %d): %w", l.ProductID, err)
		}
	}
	return orderID, nil
}

// ListByUser returns a user's orders, newest first.
func (r *OrderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	query := `
		SELECT order_id, user_id, order_date, total_amount, order_status, payment_method
		FROM orders
		WHERE user_id=$1
		ORDER BY order_id DESC
	`
	rows, err := r.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Order{}
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.OrderID, &o.UserID, &o.OrderDate, &o.TotalAmount, &o.OrderStatus, &o.PaymentMethod); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// GetByID returns the order row for the given order_id.
func (r *OrderRepository) GetByID(ctx context.Context, orderID int64) (*model.Order, error) {
	var o model.Order
	query := `
		SELECT order_id, user_id, order_date, total_amount, order_status, payment_method
		FROM orders
		WHERE order_id=$1
	`
	err := r.DB.QueryRow(ctx, query, orderID).
		Scan(&o.OrderID, &o.UserID, &o.OrderDate, &o.TotalAmount, &o.OrderStatus, &o.PaymentMethod)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("order %d: %w", orderID, ErrNotFound)
		}
		return nil, err
	}
	return &o, nil
}

// GetDetails returns the line items of an order.
func (r *OrderRepository) GetDetails(ctx context.Context, orderID int64) ([]model.OrderDetail, error) {
	query := `
		SELECT order_detail_id, order_id, product_id, quantity, subtotal
		FROM order_details
		WHERE order_id=$1
		ORDER BY order_detail_id
	`
	rows, err := r.DB.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.OrderDetail{}
	for rows.Next() {
		var d model.OrderDetail
		if err := rows.Scan(&d.OrderDetailID, &d.OrderID, &d.ProductID, &d.Quantity, &d.Subtotal); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// UpdateStatus sets order_status; validity of the status is the service's job.
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID int64, status string) error {
	tag, err := r.DB.Exec(ctx, `UPDATE orders SET order_status=$1 WHERE order_id=$2`, status, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %d: %w", orderID, ErrNotFound)
	}
	return nil
}
