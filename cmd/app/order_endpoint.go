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

type updateOrderStatusRequest struct {
	OrderStatus string `json:"order_status" validate:"required"`
}

func registerOrderRoutes(g *echo.Group, os *services.OrderService) {
	p := g.Group("/orders")
	p.Use(middleware.JWTMiddleware())

	// Own order history
	p.GET("/user", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		orders, err := os.ListByUser(c.Request().Context(), claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not list orders"})
		}
		return c.JSON(http.StatusOK, echo.Map{"status": "success", "orders": orders})
	})

	// One order with its line items; owner or admin only
	p.GET("/:id", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		order, details, err := os.Get(c.Request().Context(), id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": "Order not found"})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not load order"})
		}
		if order.UserID != claims.UserID && claims.Role != "admin" {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
		}
		return c.JSON(http.StatusOK, echo.Map{"order": order, "details": details})
	})

	// Status transitions (admin)
	p.PUT("/:id/status", middleware.AdminOnly(func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		req := new(updateOrderStatusRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := os.UpdateStatus(c.Request().Context(), id, req.OrderStatus); err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid order status"})
			case errors.Is(err, repository.ErrNotFound):
				return c.JSON(http.StatusNotFound, map[string]string{"error": "Order not found"})
			default:
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not update order"})
			}
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Order updated successfully"})
	}))
}
