package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ticketbooker/internal/config"
	"ticketbooker/internal/models"
	"ticketbooker/internal/storage"

	_ "github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	s := &Storage{DB: db}

	if err = s.initSchema(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Storage) initSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS events (
			id SERIAL PRIMARY KEY,
			event_name TEXT NOT NULL,
			venue TEXT NOT NULL,
			date TEXT NOT NULL,
			total_seats INT NOT NULL,
			seats_available INT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS bookings (
			id SERIAL PRIMARY KEY,
			user_name TEXT NOT NULL,
			user_email TEXT NOT NULL,
			event_id INT NOT NULL,
			seats_booked INT NOT NULL,
			booking_time TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`

	if _, err := s.DB.Exec(schema); err != nil {
		return fmt.Errorf("failed to init schema: %w", err)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) CreateEvent(name, venue, date string, totalSeats, seatsAvailable int) (*models.Event, error) {
	query := `
		INSERT INTO events (event_name, venue, date, total_seats, seats_available)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	event := models.Event{
		Name:           name,
		Venue:          venue,
		Date:           date,
		TotalSeats:     totalSeats,
		SeatsAvailable: seatsAvailable,
	}

	err := s.DB.QueryRow(query, name, venue, date, totalSeats, seatsAvailable).Scan(&event.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return &event, nil
}

func (s *Storage) GetAllEvents() ([]models.Event, error) {
	query := `
		SELECT id, event_name, venue, date, total_seats, seats_available
		FROM events
		ORDER BY date ASC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var event models.Event
		err = rows.Scan(
			&event.ID,
			&event.Name,
			&event.Venue,
			&event.Date,
			&event.TotalSeats,
			&event.SeatsAvailable,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

func (s *Storage) GetEventByID(id int) (*models.Event, error) {
	query := `
		SELECT id, event_name, venue, date, total_seats, seats_available
		FROM events
		WHERE id = $1`

	var event models.Event
	err := s.DB.QueryRow(query, id).Scan(
		&event.ID,
		&event.Name,
		&event.Venue,
		&event.Date,
		&event.TotalSeats,
		&event.SeatsAvailable,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return &event, nil
}

func (s *Storage) UpdateEventSeats(id, seatsAvailable int) (*models.Event, error) {
	query := `
		UPDATE events
		SET seats_available = $1
		WHERE id = $2
		RETURNING id, event_name, venue, date, total_seats, seats_available`

	var event models.Event
	err := s.DB.QueryRow(query, seatsAvailable, id).Scan(
		&event.ID,
		&event.Name,
		&event.Venue,
		&event.Date,
		&event.TotalSeats,
		&event.SeatsAvailable,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to update event seats: %w", err)
	}

	return &event, nil
}

func (s *Storage) DeleteEvent(id int) (*models.Event, error) {
	query := `
		DELETE FROM events
		WHERE id = $1
		RETURNING id, event_name, venue, date, total_seats, seats_available`

	var event models.Event
	err := s.DB.QueryRow(query, id).Scan(
		&event.ID,
		&event.Name,
		&event.Venue,
		&event.Date,
		&event.TotalSeats,
		&event.SeatsAvailable,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to delete event: %w", err)
	}

	return &event, nil
}

func (s *Storage) CreateBooking(userName, userEmail string, eventID, seatsBooked int) (*models.Booking, error) {
	query := `
		INSERT INTO bookings (user_name, user_email, event_id, seats_booked, booking_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	booking := models.Booking{
		UserName:    userName,
		UserEmail:   userEmail,
		EventID:     eventID,
		SeatsBooked: seatsBooked,
		BookingTime: time.Now().UTC(),
	}

	err := s.DB.QueryRow(query, userName, userEmail, eventID, seatsBooked, booking.BookingTime).Scan(&booking.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return &booking, nil
}

// GetAllBookings imposes no explicit order, unlike GetAllEvents.
func (s *Storage) GetAllBookings() ([]models.Booking, error) {
	query := `
		SELECT id, user_name, user_email, event_id, seats_booked, booking_time
		FROM bookings`

	return s.queryBookings(query)
}

func (s *Storage) GetBookingsByEvent(eventID int) ([]models.Booking, error) {
	query := `
		SELECT id, user_name, user_email, event_id, seats_booked, booking_time
		FROM bookings
		WHERE event_id = $1`

	return s.queryBookings(query, eventID)
}

func (s *Storage) queryBookings(query string, args ...any) ([]models.Booking, error) {
	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var booking models.Booking
		err = rows.Scan(
			&booking.ID,
			&booking.UserName,
			&booking.UserEmail,
			&booking.EventID,
			&booking.SeatsBooked,
			&booking.BookingTime,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

func (s *Storage) UpdateBookingSeats(id, seatsBooked int) (*models.Booking, error) {
	query := `
		UPDATE bookings
		SET seats_booked = $1
		WHERE id = $2
		RETURNING id, user_name, user_email, event_id, seats_booked, booking_time`

	var booking models.Booking
	err := s.DB.QueryRow(query, seatsBooked, id).Scan(
		&booking.ID,
		&booking.UserName,
		&booking.UserEmail,
		&booking.EventID,
		&booking.SeatsBooked,
		&booking.BookingTime,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	return &booking, nil
}

func (s *Storage) DeleteBooking(id int) (*models.Booking, error) {
	query := `
		DELETE FROM bookings
		WHERE id = $1
		RETURNING id, user_name, user_email, event_id, seats_booked, booking_time`

	var booking models.Booking
	err := s.DB.QueryRow(query, id).Scan(
		&booking.ID,
		&booking.UserName,
		&booking.UserEmail,
		&booking.EventID,
		&booking.SeatsBooked,
		&booking.BookingTime,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to delete booking: %w", err)
	}

	return &booking, nil
}
