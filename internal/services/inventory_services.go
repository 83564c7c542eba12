package services

import (
	"context"
	"fmt"

	"github.com/Dewey-byte/angular-project/internal/model"
	"github.com/Dewey-byte/angular-project/internal/repository"
)

type InventoryService struct {
	Repo *repository.InventoryRepository
}

func NewInventoryService(r *repository.InventoryRepository) *InventoryService {
	return &InventoryService{Repo: r}
}

func (s *InventoryService) List(ctx context.Context) ([]model.InventoryLogEntry, error) {
	return s.Repo.List(ctx)
}

func (s *InventoryService) Get(ctx context.Context, logID int64) (*model.InventoryLogEntry, error) {
	return s.Repo.GetByID(ctx, logID)
}

// Record appends a manual audit entry (admin surface). The ledger is
// append-only: there is no update or delete.
func (s *InventoryService) Record(ctx context.Context, productID int64, changeType string, qty int, remarks string) (int64, error) {
	if productID <= 0 {
		return 0, fmt.Errorf("%w: product_id is required", ErrValidation)
	}
	if changeType != model.ChangeAdd && changeType != model.ChangeRemove {
		return 0, fmt.Errorf("%w: change_type must be ADD or REMOVE", ErrValidation)
	}
	if qty <= 0 {
		return 0, fmt.Errorf("%w: quantity_changed must be positive", ErrValidation)
	}
	return s.Repo.Record(ctx, productID, changeType, qty, remarks)
}
