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

type inventoryLogRequest struct {
	ProductID       int64  `json:"Product_ID" validate:"required,gt=0"`
	ChangeType      string `json:"Change_Type" validate:"required"`
	QuantityChanged int    `json:"Quantity_Changed" validate:"required,gt=0"`
	Remarks         string `json:"Remarks"`
}

// The inventory ledger is admin-only and append-only: reads plus manual
// entries, no update or delete.
func registerInventoryRoutes(g *echo.Group, is *services.InventoryService) {
	p := g.Group("/inventory")
	p.Use(middleware.JWTMiddleware())
	p.Use(middleware.AdminOnly)

	p.GET("", func(c echo.Context) error {
		logs, err := is.List(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not list inventory logs"})
		}
		return c.JSON(http.StatusOK, logs)
	})

	p.GET("/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		entry, err := is.Get(c.Request().Context(), id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": "Inventory log not found"})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not load inventory log"})
		}
		return c.JSON(http.StatusOK, entry)
	})

	p.POST("", func(c echo.Context) error {
		req := new(inventoryLogRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := c.Validate(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Product_ID, Change_Type and Quantity_Changed are required"})
		}
		id, err := is.Record(c.Request().Context(), req.ProductID, req.ChangeType, req.QuantityChanged, req.Remarks)
		if err != nil {
			if errors.Is(err, services.ErrValidation) {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create inventory log"})
		}
		return c.JSON(http.StatusCreated, echo.Map{"message": "Inventory log created", "Log_ID": id})
	})
}
