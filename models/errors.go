package models

import "errors"

// Domain error taxonomy. Controllers map these onto HTTP statuses;
// everything else is reported as a generic failure.
var (
	ErrNotFound        = errors.New("not found")
	ErrOutOfStock      = errors.New("requested quantity exceeds available stock")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrMissingAddress  = errors.New("delivery address required before placing an order")
	ErrEmptyOrder      = errors.New("order has no items")
	ErrAmountMismatch  = errors.New("order total does not match the server-computed total")
	ErrBadTransition   = errors.New("illegal order status transition")
	ErrEmailTaken      = errors.New("email is already registered")
	ErrBadCredentials  = errors.New("invalid email or password")
	ErrWrongAnswer     = errors.New("security answer does not match")
)
