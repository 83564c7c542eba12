package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Dewey-byte/angular-project/internal/middleware"
	"github.com/Dewey-byte/angular-project/internal/repository"
	"github.com/Dewey-byte/angular-project/internal/services"

	"github.com/labstack/echo/v4"
)

type addCartRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"omitempty,gte=1"`
}

type updateCartRequest struct {
	Quantity int `json:"quantity"`
}

func registerCartRoutes(g *echo.Group, cs *services.CartService) {
	p := g.Group("/cart")
	p.Use(middleware.JWTMiddleware())

	// GET cart with per-line and cart totals
	p.GET("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		cart, err := cs.Get(c.Request().Context(), claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not load cart"})
		}
		return c.JSON(http.StatusOK, cart)
	})

	// ADD item (merges onto an existing line for the same product)
	p.POST("/add", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		req := new(addCartRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "invalid request"})
		}
		if err := c.Validate(req); err != nil {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "product_id is required and quantity must be positive"})
		}
		if req.Quantity == 0 {
			req.Quantity = 1
		}
		if err := cs.Add(c.Request().Context(), claims.UserID, req.ProductID, req.Quantity); err != nil {
			if errors.Is(err, services.ErrValidation) {
				return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not add to cart"})
		}
		return c.JSON(http.StatusCreated, map[string]string{"msg": "Added to cart"})
	})

	// UPDATE quantity on a line
	p.PUT("/update/:cart_id", func(c echo.Context) error {
		cartID, err := strconv.ParseInt(c.Param("cart_id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "invalid cart id"})
		}
		req := new(updateCartRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "invalid request"})
		}
		if err := cs.Update(c.Request().Context(), cartID, req.Quantity); err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "Invalid quantity"})
			case errors.Is(err, repository.ErrNotFound):
				return c.JSON(http.StatusNotFound, map[string]string{"error": "Item not found"})
			default:
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not update cart"})
			}
		}
		return c.JSON(http.StatusOK, map[string]string{"msg": "Quantity updated"})
	})

	// REMOVE line
	p.DELETE("/remove/:cart_id", func(c echo.Context) error {
		cartID, err := strconv.ParseInt(c.Param("cart_id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Item not found"})
		}
		if err := cs.Remove(c.Request().Context(), cartID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": "Item not found"})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not remove item"})
		}
		return c.JSON(http.StatusOK, map[string]string{"msg": "Item removed"})
	})
}
