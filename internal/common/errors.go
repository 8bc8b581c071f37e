// Package common holds the error taxonomy shared by the order book's
// sub-packages.
package common

import "errors"

var (
	// ErrInvalidPrice is raised when a price is NaN, or when a TickGrid
	// shift cannot be resolved under the extrapolation rules.
	ErrInvalidPrice = errors.New("invalid price")

	// ErrUnknownUID is raised by Get when a uid was never sent to the
	// book.
	ErrUnknownUID = errors.New("unknown uid")

	// ErrInvalidSide is raised when the is_mine flag disagrees with the
	// sign of uid.
	ErrInvalidSide = errors.New("uid sign does not match is_mine")
)
