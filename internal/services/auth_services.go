package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Dewey-byte/angular-project/internal/model"
	"github.com/Dewey-byte/angular-project/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

const MinPasswordLen = 8

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService struct {
	Users *repository.UserRepository
}

func NewAuthService(u *repository.UserRepository) *AuthService {
	return &AuthService{Users: u}
}

// Register creates a user with role "user".
func (s *AuthService) Register(ctx context.Context, username, email, password string) (int64, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return 0, fmt.Errorf("%w: username is required", ErrValidation)
	}
	if email == "" || !emailRegex.MatchString(email) {
		return 0, fmt.Errorf("%w: invalid email format", ErrValidation)
	}
	if len(password) < MinPasswordLen {
		return 0, fmt.Errorf("%w: password must be at least %d characters", ErrValidation, MinPasswordLen)
	}

	taken, err := s.Users.UsernameExists(ctx, username)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, fmt.Errorf("username already taken: %w", repository.ErrDuplicate)
	}
	taken, err = s.Users.EmailExists(ctx, email)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, fmt.Errorf("email already registered: %w", repository.ErrDuplicate)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	return s.Users.Create(ctx, username, email, string(hash), "user")
}

// Login authenticates by username + password and returns the user without the
// password hash. It never reveals whether the username exists.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.User, error) {
	u, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	u.PasswordHash = ""
	return u, nil
}
