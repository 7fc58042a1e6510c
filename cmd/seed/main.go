// Command seed resets reservation and payment state and reseeds the trip
// catalog with its canonical fixture trips. Intended for development and
// test databases only.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/hbenmansour/trip_reservation_app/internal/platform/config"
	"github.com/hbenmansour/trip_reservation_app/pkg/database"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(pool)

	tx, err := pool.Begin(ctx)
	if err != nil {
		logger.Error("Failed to begin transaction", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `TRUNCATE TABLE trips, reservations, payments RESTART IDENTITY CASCADE`); err != nil {
		logger.Error("Failed to truncate tables", slog.String("error", err.Error()))
		os.Exit(1)
	}

	seed := `
		INSERT INTO trips (origin, destination, departure_date, departure_time, duration, price, seats_available)
		VALUES
			('Tunis', 'Sousse', CURRENT_DATE + 1, '08:00:00', INTERVAL '2 hours', 15.50, 50),
			('Sfax', 'Gabes', CURRENT_DATE + 2, '10:30:00', INTERVAL '1 hour 30 minutes', 10.00, 50);`
	if _, err := tx.Exec(ctx, seed); err != nil {
		logger.Error("Failed to seed trips", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := tx.Commit(ctx); err != nil {
		logger.Error("Failed to commit seed transaction", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Trip catalog seeded.")
}
