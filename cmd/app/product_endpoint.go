package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Dewey-byte/angular-project/internal/middleware"
	"github.com/Dewey-byte/angular-project/internal/model"
	"github.com/Dewey-byte/angular-project/internal/repository"
	"github.com/Dewey-byte/angular-project/internal/services"

	"github.com/labstack/echo/v4"
)

type productRequest struct {
	ProductName   string  `json:"Product_Name" validate:"required"`
	Category      string  `json:"Category"`
	Description   string  `json:"Description"`
	AuthorBrand   string  `json:"Author_Brand"`
	Price         float64 `json:"Price" validate:"gte=0"`
	StockQuantity int     `json:"Stock_Quantity" validate:"gte=0"`
	ImageURI      string  `json:"image_uri"`
}

func (r *productRequest) toModel(id int64) *model.Product {
	return &model.Product{
		ProductID:     id,
		ProductName:   r.ProductName,
		Category:      r.Category,
		Description:   r.Description,
		AuthorBrand:   r.AuthorBrand,
		Price:         r.Price,
		StockQuantity: r.StockQuantity,
		ImageURI:      r.ImageURI,
	}
}

func registerProductRoutes(g *echo.Group, ps *services.ProductService) {
	p := g.Group("/products")

	// Public catalog reads
	p.GET("", func(c echo.Context) error {
		limit, _ := strconv.Atoi(c.QueryParam("limit"))
		offset, _ := strconv.Atoi(c.QueryParam("offset"))
		list, err := ps.List(c.Request().Context(), limit, offset)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not list products"})
		}
		return c.JSON(http.StatusOK, list)
	})

	p.GET("/filters", func(c echo.Context) error {
		f, err := ps.Filters(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not load filters"})
		}
		return c.JSON(http.StatusOK, f)
	})

	p.GET("/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		prod, err := ps.Get(c.Request().Context(), id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{"message": "Product not found"})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not load product"})
		}
		return c.JSON(http.StatusOK, prod)
	})

	// Catalog mutations are admin-only and feed the inventory ledger
	admin := p.Group("")
	admin.Use(middleware.JWTMiddleware())
	admin.Use(middleware.AdminOnly)

	admin.POST("", func(c echo.Context) error {
		req := new(productRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := c.Validate(req); err != nil {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "Product_Name is required; Price and Stock_Quantity must be >= 0"})
		}
		id, err := ps.Create(c.Request().Context(), req.toModel(0))
		if err != nil {
			if errors.Is(err, services.ErrValidation) {
				return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create product"})
		}
		return c.JSON(http.StatusCreated, echo.Map{"message": "Product created", "Product_ID": id})
	})

	admin.PUT("/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		req := new(productRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := c.Validate(req); err != nil {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "Product_Name is required; Price and Stock_Quantity must be >= 0"})
		}
		if err := ps.Update(c.Request().Context(), req.toModel(id)); err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
			case errors.Is(err, repository.ErrNotFound):
				return c.JSON(http.StatusNotFound, map[string]string{"message": "Product not found"})
			default:
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not update product"})
			}
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Product updated"})
	})

	admin.DELETE("/:id", func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
		}
		if err := ps.Delete(c.Request().Context(), id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{"message": "Product not found"})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not delete product"})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Product deleted"})
	})
}
