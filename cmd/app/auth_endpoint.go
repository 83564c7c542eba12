package main

import (
	"errors"
	"net/http"

	"github.com/Dewey-byte/angular-project/internal/middleware"
	"github.com/Dewey-byte/angular-project/internal/repository"
	"github.com/Dewey-byte/angular-project/internal/services"

	"github.com/labstack/echo/v4"
)

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func registerAuthRoutes(g *echo.Group, as *services.AuthService) {
	p := g.Group("/auth")

	p.POST("/register", func(c echo.Context) error {
		req := new(registerRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		if err := c.Validate(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "username, valid email and a password of at least 8 characters are required"})
		}

		id, err := as.Register(c.Request().Context(), req.Username, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
			case errors.Is(err, repository.ErrDuplicate):
				return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
			default:
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
			}
		}
		return c.JSON(http.StatusCreated, echo.Map{"success": true, "user_id": id})
	})

	p.POST("/login", func(c echo.Context) error {
		req := new(loginRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		user, err := as.Login(c.Request().Context(), req.Username, req.Password)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "message": "invalid credentials"})
		}

		token, err := middleware.GenerateToken(user.UserID, user.Username, user.Role, 24)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create token"})
		}

		return c.JSON(http.StatusOK, echo.Map{
			"success": true,
			"token":   token,
			"user": echo.Map{
				"user_id":  user.UserID,
				"username": user.Username,
				"email":    user.Email,
				"role":     user.Role,
			},
		})
	})
}
