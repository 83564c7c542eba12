package main

import (
	"errors"
	"net/http"

	"github.com/Dewey-byte/angular-project/internal/middleware"
	"github.com/Dewey-byte/angular-project/internal/repository"
	"github.com/Dewey-byte/angular-project/internal/services"

	"github.com/labstack/echo/v4"
)

// profile update payload; nil fields keep the stored value
type updateProfileRequest struct {
	FullName      *string `json:"full_name,omitempty"`
	Address       *string `json:"address,omitempty"`
	ContactNumber *string `json:"contact_number,omitempty"`
}

func registerUserRoutes(g *echo.Group, us *services.UserService) {
	p := g.Group("/profile")
	p.Use(middleware.JWTMiddleware())

	p.GET("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		user, err := us.GetByID(c.Request().Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not load profile"})
		}
		return c.JSON(http.StatusOK, echo.Map{"success": true, "user": user})
	})

	p.PUT("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		req := new(updateProfileRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if req.FullName == nil && req.Address == nil && req.ContactNumber == nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "nothing to update"})
		}
		if err := us.UpdateProfile(c.Request().Context(), claims.UserID, req.FullName, req.Address, req.ContactNumber); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not update profile"})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Profile updated"})
	})
}
