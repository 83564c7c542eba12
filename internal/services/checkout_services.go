package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Dewey-byte/angular-project/internal/model"
	"github.com/Dewey-byte/angular-project/internal/repository"
)

// PaymentMethodCOD is the only settlement method the checkout supports:
// payment is collected on delivery, nothing is charged online.
const PaymentMethodCOD = "COD"

type CheckoutService struct {
	Carts  *repository.CartRepository
	Orders *repository.OrderRepository
	Users  *repository.UserRepository
	Log    *slog.Logger
}

func NewCheckoutService(cr *repository.CartRepository, or *repository.OrderRepository, ur *repository.UserRepository, log *slog.Logger) *CheckoutService {
	return &CheckoutService{Carts: cr, Orders: or, Users: ur, Log: log}
}

// SetShipping validates and persists the shipping fields onto the user row.
func (s *CheckoutService) SetShipping(ctx context.Context, userID int64, fullName, address, contactNumber string) error {
	fullName = strings.TrimSpace(fullName)
	address = strings.TrimSpace(address)
	contactNumber = strings.TrimSpace(contactNumber)
	if fullName == "" || address == "" || contactNumber == "" {
		return fmt.Errorf("%w: missing shipping fields", ErrValidation)
	}
	return s.Users.UpdateShipping(ctx, userID, fullName, address, contactNumber)
}

// SetPayment is a stub: whatever the client sends, the method resolves to COD.
func (s *CheckoutService) SetPayment(ctx context.Context, userID int64) string {
	return PaymentMethodCOD
}

// Review builds the read-only quote: cart items, total, shipping snapshot and
// payment method. It never mutates state and is safe to call repeatedly;
// missing shipping info yields empty strings, not an error.
func (s *CheckoutService) Review(ctx context.Context, userID int64) (*model.Quote, error) {
	items, err := s.Carts.GetItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	total := PriceCart(items)

	info, err := s.Users.GetShipping(ctx, userID)
	if err != nil {
		return nil, err
	}
	info.PaymentMethod = PaymentMethodCOD

	return &model.Quote{UserInfo: info, Items: items, TotalAmount: total}, nil
}

// PlaceOrder converts the cart into an order. The cart is re-read (not taken
// from any earlier quote) and locked, the order header and details are
// inserted, and the snapshot's lines are cleared, all inside one transaction.
// Clearing by cart_id leaves any line added concurrently for another product
// in place rather than silently dropping it. On any
// failure the transaction rolls back and the cart is left untouched.
func (s *CheckoutService) PlaceOrder(ctx context.Context, userID int64) (*model.PlacedOrder, error) {
	tx, err := s.Carts.DB.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	items, err := s.Carts.GetItemsForUpdate(ctx, tx, userID)
	if err != nil {
		return nil, fmt.Errorf("read cart: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	lines, total := OrderLines(items)

	// TODO: confirm with the product owner whether placing an order should
	// deplete products.stock_quantity; today inventory_log is written only by
	// catalog create/update/delete (InventoryRepository.RecordTx is the hook).
	orderID, err := s.Orders.CreateOrderTx(ctx, tx, userID, lines, total, PaymentMethodCOD)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	cartIDs := make([]int64, len(items))
	for i, it := range items {
		cartIDs[i] = it.CartID
	}
	if err := s.Carts.ClearTx(ctx, tx, cartIDs); err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	s.Log.Info("order placed",
		"user_id", userID,
		"order_id", orderID,
		"lines", len(lines),
		"total_amount", Round2(total),
	)

	return &model.PlacedOrder{
		OrderID:       orderID,
		TotalAmount:   Round2(total),
		Message:       "Order placed successfully",
		PaymentMethod: PaymentMethodCOD,
	}, nil
}
