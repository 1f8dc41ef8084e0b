// Package memstore is the process-local fallback used when postgres is
// unconfigured or unreachable. Records live only for the lifetime of the
// process. Identifiers are assigned from monotonic per-entity counters.
package memstore

import (
	"sort"
	"sync"
	"time"

	"ticketbooker/internal/models"
	"ticketbooker/internal/storage"
)

type Storage struct {
	mu sync.RWMutex

	events   []models.Event
	bookings []models.Booking

	nextEventID   int
	nextBookingID int
}

func New() *Storage {
	return &Storage{
		nextEventID:   1,
		nextBookingID: 1,
	}
}

func (s *Storage) Close() error {
	return nil
}

func (s *Storage) CreateEvent(name, venue, date string, totalSeats, seatsAvailable int) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event := models.Event{
		ID:             s.nextEventID,
		Name:           name,
		Venue:          venue,
		Date:           date,
		TotalSeats:     totalSeats,
		SeatsAvailable: seatsAvailable,
	}

	s.events = append(s.events, event)
	s.nextEventID++

	return &event, nil
}

// GetAllEvents returns events ordered by date, matching the durable backend.
// ISO dates sort correctly as strings.
func (s *Storage) GetAllEvents() ([]models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]models.Event, len(s.events))
	copy(events, s.events)

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date < events[j].Date
	})

	return events, nil
}

func (s *Storage) GetEventByID(id int) (*models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, event := range s.events {
		if event.ID == id {
			return &event, nil
		}
	}

	return nil, storage.ErrEventNotFound
}

func (s *Storage) UpdateEventSeats(id, seatsAvailable int) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID == id {
			s.events[i].SeatsAvailable = seatsAvailable
			event := s.events[i]
			return &event, nil
		}
	}

	return nil, storage.ErrEventNotFound
}

func (s *Storage) DeleteEvent(id int) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID == id {
			removed := s.events[i]
			s.events = append(s.events[:i], s.events[i+1:]...)
			return &removed, nil
		}
	}

	return nil, storage.ErrEventNotFound
}

func (s *Storage) CreateBooking(userName, userEmail string, eventID, seatsBooked int) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking := models.Booking{
		ID:          s.nextBookingID,
		UserName:    userName,
		UserEmail:   userEmail,
		EventID:     eventID,
		SeatsBooked: seatsBooked,
		BookingTime: time.Now().UTC(),
	}

	s.bookings = append(s.bookings, booking)
	s.nextBookingID++

	return &booking, nil
}

// GetAllBookings returns bookings in insertion order.
func (s *Storage) GetAllBookings() ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := make([]models.Booking, len(s.bookings))
	copy(bookings, s.bookings)

	return bookings, nil
}

func (s *Storage) GetBookingsByEvent(eventID int) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var bookings []models.Booking
	for _, booking := range s.bookings {
		if booking.EventID == eventID {
			bookings = append(bookings, booking)
		}
	}

	return bookings, nil
}

func (s *Storage) UpdateBookingSeats(id, seatsBooked int) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings[i].SeatsBooked = seatsBooked
			booking := s.bookings[i]
			return &booking, nil
		}
	}

	return nil, storage.ErrBookingNotFound
}

func (s *Storage) DeleteBooking(id int) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			removed := s.bookings[i]
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return &removed, nil
		}
	}

	return nil, storage.ErrBookingNotFound
}
