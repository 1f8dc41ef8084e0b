package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ticketbooker/internal/config"
	"ticketbooker/internal/http-server/handlers/booking/createBooking"
	"ticketbooker/internal/http-server/handlers/booking/deleteBooking"
	"ticketbooker/internal/http-server/handlers/booking/getAllBookings"
	"ticketbooker/internal/http-server/handlers/booking/getEventBookings"
	"ticketbooker/internal/http-server/handlers/booking/updateBooking"
	"ticketbooker/internal/http-server/handlers/event/createEvent"
	"ticketbooker/internal/http-server/handlers/event/deleteEvent"
	"ticketbooker/internal/http-server/handlers/event/getAllEvents"
	"ticketbooker/internal/http-server/handlers/event/getEvent"
	"ticketbooker/internal/http-server/middleware/mwlogger"
	"ticketbooker/internal/lib/logger/handlers/slogpretty"
	"ticketbooker/internal/lib/logger/sl"
	"ticketbooker/internal/service"
	"ticketbooker/internal/storage"
	"ticketbooker/internal/storage/memstore"
	"ticketbooker/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting ticket booker", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	store := setupStorage(log, cfg)

	eventManager := service.NewEventManager(log, store)
	bookingManager := service.NewBookingManager(log, store)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	fs := http.FileServer(http.Dir("./static/"))
	router.Handle("/static/*", http.StripPrefix("/static/", fs))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusFound)
	})

	router.Get("/events", getAllEvents.New(log, eventManager))
	router.Get("/events/{id}", getEvent.New(log, eventManager))
	router.Post("/events", createEvent.New(log, eventManager))
	router.Delete("/events/{id}", deleteEvent.New(log, eventManager))

	router.Get("/bookings", getAllBookings.New(log, bookingManager))
	router.Get("/bookings/event/{id}", getEventBookings.New(log, bookingManager))
	router.Post("/bookings", createBooking.New(log, bookingManager))
	router.Put("/bookings/{id}", updateBooking.New(log, bookingManager))
	router.Delete("/bookings/{id}", deleteBooking.New(log, bookingManager))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err := store.Close(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("storage closed")
}

// setupStorage picks the durable backend when postgres is configured and
// reachable, otherwise falls back to the in-memory store. Both satisfy the
// same contract, so the managers never know the difference.
func setupStorage(log *slog.Logger, cfg *config.Config) storage.Storage {
	if !cfg.Database.Configured() {
		log.Info("postgres not configured, using in-memory store")
		return memstore.New()
	}

	store, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Warn("failed to init postgres, falling back to in-memory store", sl.Err(err))
		return memstore.New()
	}

	log.Info("connected to postgres",
		slog.String("host", cfg.Database.Host),
		slog.String("dbname", cfg.Database.DBName),
	)

	return store
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
