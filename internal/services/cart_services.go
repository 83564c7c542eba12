package services

import (
	"context"
	"fmt"

	"github.com/Dewey-byte/angular-project/internal/model"
	"github.com/Dewey-byte/angular-project/internal/repository"
)

type CartService struct {
	Repo     *repository.CartRepository
	Products *repository.ProductRepository
}

func NewCartService(r *repository.CartRepository, pr *repository.ProductRepository) *CartService {
	return &CartService{Repo: r, Products: pr}
}

// Get returns the cart (items with per-line totals + cart total).
func (s *CartService) Get(ctx context.Context, userID int64) (*model.CartResponse, error) {
	items, err := s.Repo.GetItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	total := PriceCart(items)
	return &model.CartResponse{Items: items, CartTotal: total}, nil
}

// Add merges qty onto an existing line for (user, product) or creates one.
func (s *CartService) Add(ctx context.Context, userID, productID int64, qty int) error {
	if qty < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}
	if productID <= 0 {
		return fmt.Errorf("%w: product_id is required", ErrValidation)
	}
	exists, err := s.Products.Exists(ctx, productID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: product %d does not exist", ErrValidation, productID)
	}
	return s.Repo.Upsert(ctx, userID, productID, qty)
}

// Update overwrites the quantity on an existing line. The line is addressed
// by cart_id alone, without checking it belongs to the caller; that matches
// the existing clients and is flagged in DESIGN.md.
func (s *CartService) Update(ctx context.Context, cartID int64, qty int) error {
	if qty < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}
	return s.Repo.SetQuantity(ctx, cartID, qty)
}

// Remove deletes a line.
func (s *CartService) Remove(ctx context.Context, cartID int64) error {
	return s.Repo.Remove(ctx, cartID)
}

// Clear deletes every line for the user. Checkout calls this inside its own
// transaction via the repository; this variant serves direct clearing.
func (s *CartService) Clear(ctx context.Context, userID int64) error {
	return s.Repo.Clear(ctx, userID)
}
