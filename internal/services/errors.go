package services

import "errors"

// Authentication and authorization failures. The error text is what the
// client sees.
var (
	ErrTokenMissing       = errors.New("No token, authorization denied")
	ErrTokenExpired       = errors.New("Token expired, please login again")
	ErrTokenInvalid       = errors.New("Invalid token")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrWrongPassword      = errors.New("Current password is incorrect")
	ErrEmailTaken         = errors.New("User already exists")
)

// Request failures.
var (
	ErrTotalsMismatch     = errors.New("order totals do not match its items")
	ErrInvalidStatus      = errors.New("Invalid order status")
	ErrInvalidRole        = errors.New("Invalid role")
	ErrInvalidRating      = errors.New("Rating must be between 1 and 5")
	ErrOrderNumberExhaust = errors.New("could not allocate a unique order number")
)
