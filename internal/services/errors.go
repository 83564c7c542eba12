package services

import "errors"

var (
	ErrValidation = errors.New("invalid input")
	ErrEmptyCart  = errors.New("cart is empty")
)
