package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dewey-byte/angular-project/internal/model"

	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	DB DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{DB: db}
}

// Create inserts a new user and returns the created user_id.
func (r *UserRepository) Create(ctx context.Context, username, email, passwordHash, role string) (int64, error) {
	var id int64
	query := `
		INSERT INTO users (username, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING user_id
	`
	if err := r.DB.QueryRow(ctx, query, username, email, passwordHash, role, time.Now()).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

const userColumns = `user_id, username, email, password_hash, role,
	COALESCE(full_name,''), COALESCE(address,''), COALESCE(contact_number,''), created_at`

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username=$1`
	return r.scanUser(r.DB.QueryRow(ctx, query, username))
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id=$1`
	return r.scanUser(r.DB.QueryRow(ctx, query, id))
}

func (r *UserRepository) scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.UserID, &u.Username, &u.Email, &u.PasswordHash, &u.Role,
		&u.FullName, &u.Address, &u.ContactNumber, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user: %w", ErrNotFound)
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE username=$1)`
	if err := r.DB.QueryRow(ctx, query, username).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email=$1)`
	if err := r.DB.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// UpdateShipping persists the checkout shipping fields onto the user row.
func (r *UserRepository) UpdateShipping(ctx context.Context, userID int64, fullName, address, contactNumber string) error {
	query := `UPDATE users SET full_name=$1, address=$2, contact_number=$3 WHERE user_id=$4`
	tag, err := r.DB.Exec(ctx, query, fullName, address, contactNumber, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}
	return nil
}

// GetShipping returns the user's saved shipping snapshot. A user without a
// row (or with unset fields) yields empty strings, never an error: the review
// step must work before shipping has been entered.
func (r *UserRepository) GetShipping(ctx context.Context, userID int64) (model.ShippingInfo, error) {
	var info model.ShippingInfo
	query := `
		SELECT COALESCE(full_name,''), COALESCE(address,''), COALESCE(contact_number,'')
		FROM users
		WHERE user_id=$1
	`
	err := r.DB.QueryRow(ctx, query, userID).Scan(&info.FullName, &info.Address, &info.ContactNumber)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return model.ShippingInfo{}, err
	}
	return info, nil
}
