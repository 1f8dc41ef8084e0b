package models

import "time"

// Booking is a reservation of some number of an event's seats by a named user.
// Deleting an event does not remove its bookings.
type Booking struct {
	ID          int       `json:"id"`
	UserName    string    `json:"user_name"`
	UserEmail   string    `json:"user_email"`
	EventID     int       `json:"event_id"`
	SeatsBooked int       `json:"seats_booked"`
	BookingTime time.Time `json:"booking_time"`
}
