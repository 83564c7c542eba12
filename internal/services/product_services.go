package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Dewey-byte/angular-project/internal/cache"
	"github.com/Dewey-byte/angular-project/internal/model"
	"github.com/Dewey-byte/angular-project/internal/repository"
)

type ProductService struct {
	Repo      *repository.ProductRepository
	Cache     *cache.ProductCache // optional
	Inventory *repository.InventoryRepository
	Log       *slog.Logger
}

func NewProductService(r *repository.ProductRepository, pc *cache.ProductCache, ir *repository.InventoryRepository, log *slog.Logger) *ProductService {
	return &ProductService{Repo: r, Cache: pc, Inventory: ir, Log: log}
}

func (s *ProductService) validate(p *model.Product) error {
	p.ProductName = strings.TrimSpace(p.ProductName)
	if p.ProductName == "" {
		return fmt.Errorf("%w: product name is required", ErrValidation)
	}
	if p.Price < 0 {
		return fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}
	if p.StockQuantity < 0 {
		return fmt.Errorf("%w: stock quantity must be >= 0", ErrValidation)
	}
	return nil
}

// Create inserts a product and logs its initial stock in the ledger.
func (s *ProductService) Create(ctx context.Context, p *model.Product) (int64, error) {
	if err := s.validate(p); err != nil {
		return 0, err
	}
	id, err := s.Repo.Create(ctx, p)
	if err != nil {
		return 0, err
	}
	if p.StockQuantity > 0 {
		if _, lerr := s.Inventory.Record(ctx, id, model.ChangeAdd, p.StockQuantity, "initial stock"); lerr != nil {
			s.Log.Error("inventory log failed for product create", "product_id", id, "err", lerr)
		}
	}
	return id, nil
}

func (s *ProductService) Get(ctx context.Context, id int64) (*model.Product, error) {
	if s.Cache != nil {
		return s.Cache.GetByID(ctx, id)
	}
	return s.Repo.GetByID(ctx, id)
}

func (s *ProductService) List(ctx context.Context, limit, offset int) ([]model.Product, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.Repo.List(ctx, limit, offset)
}

func (s *ProductService) Filters(ctx context.Context) (*model.ProductFilters, error) {
	return s.Repo.Filters(ctx)
}

// Update overwrites the product row and logs any stock delta in the ledger.
func (s *ProductService) Update(ctx context.Context, p *model.Product) error {
	if err := s.validate(p); err != nil {
		return err
	}
	old, err := s.Repo.GetByID(ctx, p.ProductID)
	if err != nil {
		return err
	}
	if err := s.Repo.Update(ctx, p); err != nil {
		return err
	}
	if delta := p.StockQuantity - old.StockQuantity; delta != 0 {
		changeType := model.ChangeAdd
		if delta < 0 {
			changeType = model.ChangeRemove
			delta = -delta
		}
		if _, lerr := s.Inventory.Record(ctx, p.ProductID, changeType, delta, "stock adjusted via catalog update"); lerr != nil {
			s.Log.Error("inventory log failed for product update", "product_id", p.ProductID, "err", lerr)
		}
	}
	if s.Cache != nil {
		s.Cache.Invalidate(ctx, p.ProductID)
	}
	return nil
}

// Delete removes a product and logs the removal of its remaining stock.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	old, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	if old.StockQuantity > 0 {
		if _, lerr := s.Inventory.Record(ctx, id, model.ChangeRemove, old.StockQuantity, "product removed from catalog"); lerr != nil {
			s.Log.Error("inventory log failed for product delete", "product_id", id, "err", lerr)
		}
	}
	if s.Cache != nil {
		s.Cache.Invalidate(ctx, id)
	}
	return nil
}
