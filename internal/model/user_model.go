package model

import "time"

// User represents an entry in the users table. Shipping fields live on the
// user row and are filled in during checkout step 1.
type User struct {
	UserID        int64      `json:"user_id"`
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	PasswordHash  string     `json:"-"`
	Role          string     `json:"role"`
	FullName      string     `json:"full_name"`
	Address       string     `json:"address"`
	ContactNumber string     `json:"contact_number"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
}

// ShippingInfo is the snapshot of a user's saved shipping details returned by
// the checkout review step. Fields default to "" when shipping was never set.
type ShippingInfo struct {
	FullName      string `json:"full_name"`
	Address       string `json:"address"`
	ContactNumber string `json:"contact_number"`
	PaymentMethod string `json:"payment_method"`
}
