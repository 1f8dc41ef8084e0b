// Package service holds the domain managers sitting between the HTTP
// handlers and the record store. Managers validate input, enforce the
// seat-availability rule and surface failures as sentinel error kinds
// that handlers translate into HTTP statuses.
package service

import "errors"

var (
	// ErrInvalidInput marks malformed or missing request fields.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotEnoughSeats is returned when a booking asks for more seats
	// than the event has available.
	ErrNotEnoughSeats = errors.New("not enough seats available")
)
