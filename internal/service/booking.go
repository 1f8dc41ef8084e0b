package service

import (
	"fmt"
	"log/slog"

	"ticketbooker/internal/lib/logger/sl"
	"ticketbooker/internal/models"
	"ticketbooker/internal/storage"
)

type BookingManager struct {
	log   *slog.Logger
	store storage.Storage
}

func NewBookingManager(log *slog.Logger, store storage.Storage) *BookingManager {
	return &BookingManager{log: log, store: store}
}

// BookEvent checks capacity, creates the booking, then decrements the
// event's available seats. The decrement is deliberately best-effort and
// not atomic with the insert: when it fails the booking is still reported
// created and the seat count goes stale until the next update. Two
// concurrent bookings can both pass the capacity check; nothing here
// serializes the check-then-decrement sequence.
func (m *BookingManager) BookEvent(userName, userEmail string, eventID, seatsBooked int) (*models.Booking, error) {
	if userName == "" {
		return nil, fmt.Errorf("%w: user name is required", ErrInvalidInput)
	}
	if userEmail == "" {
		return nil, fmt.Errorf("%w: user email is required", ErrInvalidInput)
	}
	if eventID <= 0 {
		return nil, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}
	if seatsBooked <= 0 {
		return nil, fmt.Errorf("%w: seats booked must be positive", ErrInvalidInput)
	}

	event, err := m.store.GetEventByID(eventID)
	if err != nil {
		return nil, err
	}

	if seatsBooked > event.SeatsAvailable {
		return nil, fmt.Errorf("%w: requested %d, available %d",
			ErrNotEnoughSeats, seatsBooked, event.SeatsAvailable)
	}

	booking, err := m.store.CreateBooking(userName, userEmail, eventID, seatsBooked)
	if err != nil {
		return nil, fmt.Errorf("book event: %w", err)
	}

	if _, err = m.store.UpdateEventSeats(eventID, event.SeatsAvailable-seatsBooked); err != nil {
		m.log.Warn("failed to decrement available seats, count left stale",
			slog.Int("event_id", eventID),
			slog.Int("booking_id", booking.ID),
			sl.Err(err),
		)
	}

	m.log.Info("booking created",
		slog.Int("booking_id", booking.ID),
		slog.Int("event_id", eventID),
		slog.Int("seats_booked", seatsBooked),
	)

	return booking, nil
}

// ListBookings returns all bookings with no ordering guarantee.
func (m *BookingManager) ListBookings() ([]models.Booking, error) {
	bookings, err := m.store.GetAllBookings()
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return bookings, nil
}

// ListBookingsForEvent does not require the event to exist: bookings of a
// deleted event remain listable.
func (m *BookingManager) ListBookingsForEvent(eventID int) ([]models.Booking, error) {
	bookings, err := m.store.GetBookingsByEvent(eventID)
	if err != nil {
		return nil, fmt.Errorf("list bookings for event: %w", err)
	}

	return bookings, nil
}

// UpdateBookingSeats changes the booking's seat count only. The associated
// event's available count is not re-validated or adjusted.
func (m *BookingManager) UpdateBookingSeats(id, seatsBooked int) (*models.Booking, error) {
	if seatsBooked <= 0 {
		return nil, fmt.Errorf("%w: seats booked must be positive", ErrInvalidInput)
	}

	booking, err := m.store.UpdateBookingSeats(id, seatsBooked)
	if err != nil {
		return nil, err
	}

	m.log.Info("booking updated",
		slog.Int("booking_id", id),
		slog.Int("seats_booked", seatsBooked),
	)

	return booking, nil
}

// DeleteBooking removes the booking without restoring the event's
// available seats.
func (m *BookingManager) DeleteBooking(id int) (*models.Booking, error) {
	booking, err := m.store.DeleteBooking(id)
	if err != nil {
		return nil, err
	}

	m.log.Info("booking deleted", slog.Int("booking_id", id))

	return booking, nil
}
