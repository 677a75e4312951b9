package domain

import "errors"

var (
	// ErrUserNotFound means the target user has no roster entry. Distinct
	// from a known user with no interactions, which is a cold-start case.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateBook means the catalog snapshot contains the same book
	// identifier twice, which the engine cannot safely repair.
	ErrDuplicateBook = errors.New("duplicate book id in catalog")

	// ErrInvalidStatus means an interaction carried a status outside
	// read/reading/wishlist.
	ErrInvalidStatus = errors.New("invalid interaction status")
)
