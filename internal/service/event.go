package service

import (
	"fmt"
	"log/slog"

	"ticketbooker/internal/models"
	"ticketbooker/internal/storage"
)

// EventManager owns no state beyond its store reference.
type EventManager struct {
	log   *slog.Logger
	store storage.Storage
}

func NewEventManager(log *slog.Logger, store storage.Storage) *EventManager {
	return &EventManager{log: log, store: store}
}

// AddEvent creates an event with all seats available.
func (m *EventManager) AddEvent(name, venue, date string, totalSeats int) (*models.Event, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: event name is required", ErrInvalidInput)
	}
	if venue == "" {
		return nil, fmt.Errorf("%w: venue is required", ErrInvalidInput)
	}
	if date == "" {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if totalSeats <= 0 {
		return nil, fmt.Errorf("%w: total seats must be positive", ErrInvalidInput)
	}

	event, err := m.store.CreateEvent(name, venue, date, totalSeats, totalSeats)
	if err != nil {
		return nil, fmt.Errorf("add event: %w", err)
	}

	m.log.Info("event created",
		slog.Int("event_id", event.ID),
		slog.String("name", event.Name),
		slog.Int("total_seats", event.TotalSeats),
	)

	return event, nil
}

// ListEvents returns all events; an empty list is not an error.
func (m *EventManager) ListEvents() ([]models.Event, error) {
	events, err := m.store.GetAllEvents()
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	return events, nil
}

func (m *EventManager) GetEvent(id int) (*models.Event, error) {
	event, err := m.store.GetEventByID(id)
	if err != nil {
		return nil, err
	}

	return event, nil
}

// DeleteEvent removes the event record. Bookings referencing the event
// are left untouched: the source system never cascaded deletes, and
// listing bookings for a removed event still returns them.
func (m *EventManager) DeleteEvent(id int) (*models.Event, error) {
	event, err := m.store.DeleteEvent(id)
	if err != nil {
		return nil, err
	}

	m.log.Info("event deleted", slog.Int("event_id", id))

	return event, nil
}
