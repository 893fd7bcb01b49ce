package services

import "errors"

var (
	// ErrCartIsEmpty is returned by checkout when the customer's cart has no lines.
	ErrCartIsEmpty = errors.New("cart is empty")

	// ErrUnauthorized is returned when credentials do not match or a non-admin
	// account asks for another account's order.
	ErrUnauthorized = errors.New("unauthorized")
)
