package main

import (
	"errors"
	"net/http"

	"github.com/Dewey-byte/angular-project/internal/middleware"
	"github.com/Dewey-byte/angular-project/internal/repository"
	"github.com/Dewey-byte/angular-project/internal/services"

	"github.com/labstack/echo/v4"
)

type shippingRequest struct {
	FullName      string `json:"full_name" validate:"required"`
	Address       string `json:"address" validate:"required"`
	ContactNumber string `json:"contact_number" validate:"required"`
}

func registerCheckoutRoutes(g *echo.Group, cks *services.CheckoutService) {
	p := g.Group("/checkout")
	p.Use(middleware.JWTMiddleware())

	// STEP 1: save shipping info onto the user profile
	p.POST("/shipping", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		req := new(shippingRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := c.Validate(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing shipping fields"})
		}
		if err := cks.SetShipping(c.Request().Context(), claims.UserID, req.FullName, req.Address, req.ContactNumber); err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing shipping fields"})
			case errors.Is(err, repository.ErrNotFound):
				return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
			default:
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not save shipping info"})
			}
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Shipping info saved"})
	})

	// STEP 2: payment stub, always resolves to COD
	p.POST("/payment", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		cks.SetPayment(c.Request().Context(), claims.UserID)
		return c.JSON(http.StatusOK, map[string]string{"message": "Payment set to COD by default"})
	})

	// STEP 3: read-only review of items, total and shipping snapshot
	p.GET("/review", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		quote, err := cks.Review(c.Request().Context(), claims.UserID)
		if err != nil {
			// GetShipping maps a missing users row to empty strings, so the
			// only client error here is the empty cart.
			if errors.Is(err, services.ErrEmptyCart) {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "Cart is empty"})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not build review"})
		}
		return c.JSON(http.StatusOK, quote)
	})

	// STEP 4: convert the cart into an order atomically
	p.POST("/place_order", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		placed, err := cks.PlaceOrder(c.Request().Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, services.ErrEmptyCart) {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "Cart is empty"})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Checkout failed"})
		}
		return c.JSON(http.StatusOK, placed)
	})
}
