package repo

import "errors"

var (
	// ErrOrderNotFound is returned when an order id has no row.
	ErrOrderNotFound = errors.New("order not found")

	// ErrUserNotFound is returned when a staff account lookup misses.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when creating a staff account with
	// an email that is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)
