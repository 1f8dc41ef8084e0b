package createBooking

import (
	"errors"
	"log/slog"
	"net/http"

	"ticketbooker/internal/lib/api/response"
	"ticketbooker/internal/lib/logger/sl"
	"ticketbooker/internal/models"
	"ticketbooker/internal/service"
	"ticketbooker/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type BookingRequest struct {
	UserName    string `json:"user_name" validate:"required"`
	UserEmail   string `json:"user_email" validate:"required,email"`
	EventID     int    `json:"event_id" validate:"required,gt=0"`
	SeatsBooked int    `json:"seats_booked" validate:"required,gt=0"`
}

type BookingResponse struct {
	response.Response
	Booking *models.Booking `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventBooker
type EventBooker interface {
	BookEvent(userName, userEmail string, eventID, seatsBooked int) (*models.Booking, error)
}

func New(log *slog.Logger, bookings EventBooker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log = log.With(slog.String("op", op))

		var req BookingRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		booking, err := bookings.BookEvent(req.UserName, req.UserEmail, req.EventID, req.SeatsBooked)
		if err != nil {
			log.Error("failed to book event", sl.Err(err))

			switch {
			case errors.Is(err, service.ErrInvalidInput):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
			case errors.Is(err, storage.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, service.ErrNotEnoughSeats):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("not enough seats available"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to book event"))
			}
			return
		}

		log.Info("event booked successfully",
			slog.Int("booking_id", booking.ID),
			slog.Int("event_id", req.EventID),
		)

		responseOK(w, r, booking)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, booking *models.Booking) {
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
		Booking:  booking,
	})
}
