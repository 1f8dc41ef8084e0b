package models

// Event is a bookable occasion with a fixed seat capacity.
// SeatsAvailable stays within [0, TotalSeats] after every successful
// store operation.
type Event struct {
	ID             int    `json:"id"`
	Name           string `json:"event_name"`
	Venue          string `json:"venue"`
	Date           string `json:"date"`
	TotalSeats     int    `json:"total_seats"`
	SeatsAvailable int    `json:"seats_available"`
}
