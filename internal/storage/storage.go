// Package storage defines the record-store contract shared by the durable
// postgres backend and the in-memory fallback.
package storage

import (
	"errors"

	"ticketbooker/internal/models"
)

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrBookingNotFound = errors.New("booking not found")
)

// Storage persists events and bookings. Both backends implement the exact
// same semantics: every call returns the affected record(s) or an error,
// never both. Delete operations return the removed record.
type Storage interface {
	CreateEvent(name, venue, date string, totalSeats, seatsAvailable int) (*models.Event, error)
	GetAllEvents() ([]models.Event, error)
	GetEventByID(id int) (*models.Event, error)
	UpdateEventSeats(id, seatsAvailable int) (*models.Event, error)
	DeleteEvent(id int) (*models.Event, error)

	CreateBooking(userName, userEmail string, eventID, seatsBooked int) (*models.Booking, error)
	GetAllBookings() ([]models.Booking, error)
	GetBookingsByEvent(eventID int) ([]models.Booking, error)
	UpdateBookingSeats(id, seatsBooked int) (*models.Booking, error)
	DeleteBooking(id int) (*models.Booking, error)

	Close() error
}
