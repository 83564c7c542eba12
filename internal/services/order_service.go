package services

import (
	"context"
	"fmt"

	"github.com/Dewey-byte/angular-project/internal/model"
	"github.com/Dewey-byte/angular-project/internal/repository"
)

var validOrderStatuses = map[string]bool{
	"Pending":    true,
	"Processing": true,
	"Shipped":    true,
	"Completed":  true,
	"Cancelled":  true,
}

type OrderService struct {
	Repo *repository.OrderRepository
}

func NewOrderService(r *repository.OrderRepository) *OrderService {
	return &OrderService{Repo: r}
}

func (s *OrderService) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// Get returns an order together with its line items.
func (s *OrderService) Get(ctx context.Context, orderID int64) (*model.Order, []model.OrderDetail, error) {
	o, err := s.Repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	details, err := s.Repo.GetDetails(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	return o, details, nil
}

// UpdateStatus transitions order_status. total_amount and the details are
// never editable this way.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID int64, status string) error {
	if !validOrderStatuses[status] {
		return fmt.Errorf("%w: invalid order status %q", ErrValidation, status)
	}
	return s.Repo.UpdateStatus(ctx, orderID, status)
}
