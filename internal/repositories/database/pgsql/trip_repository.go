package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hbenmansour/trip_reservation_app/internal/apperrors"
	"github.com/hbenmansour/trip_reservation_app/internal/core/domain"
	portsrepo "github.com/hbenmansour/trip_reservation_app/internal/core/ports/repositories"
	"github.com/hbenmansour/trip_reservation_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const tripColumns = `trip_id, origin, destination, departure_date, departure_time, duration, price, seats_available`

type PgxTripRepository struct {
	BaseRepository
}

// newPgxTripRepository creates a new repository for trip catalog data.
func newPgxTripRepository(pool *pgxpool.Pool, queryTimeout time.Duration) *PgxTripRepository {
	return &PgxTripRepository{BaseRepository: BaseRepository{Pool: pool, QueryTimeout: queryTimeout}}
}

// Ensure PgxTripRepository implements portsrepo.TripRepositoryFacade
var _ portsrepo.TripRepositoryFacade = (*PgxTripRepository)(nil)

// Helper to convert models.Trip from DB to domain.Trip
func toDomainTrip(m models.Trip) domain.Trip {
	return domain.Trip{
		TripID:         m.TripID,
		Origin:         m.Origin,
		Destination:    m.Destination,
		DepartureDate:  m.DepartureDate.Time,
		DepartureTime:  timeOfDay(m.DepartureTime),
		Duration:       intervalToDuration(m.Duration),
		Price:          m.Price,
		SeatsAvailable: m.SeatsAvailable,
	}
}

// timeOfDay renders a TIME column value as "HH:MM:SS".
func timeOfDay(t pgtype.Time) string {
	sec := t.Microseconds / 1_000_000
	return fmt.Sprintf("%02d:%02d:%02d", sec/3600, (sec%3600)/60, sec%60)
}

// intervalToDuration flattens an INTERVAL column value into a duration,
// treating a month as 30 days (trip durations are hours, not calendar math).
func intervalToDuration(iv pgtype.Interval) time.Duration {
	d := time.Duration(iv.Microseconds) * time.Microsecond
	d += time.Duration(iv.Days) * 24 * time.Hour
	d += time.Duration(iv.Months) * 30 * 24 * time.Hour
	return d
}

func scanTrip(row pgx.Row) (*domain.Trip, error) {
	var m models.Trip
	err := row.Scan(
		&m.TripID,
		&m.Origin,
		&m.Destination,
		&m.DepartureDate,
		&m.DepartureTime,
		&m.Duration,
		&m.Price,
		&m.SeatsAvailable,
	)
	if err != nil {
		return nil, err
	}
	t := toDomainTrip(m)
	return &t, nil
}

// FindTripByID retrieves a trip snapshot by its identifier.
func (r *PgxTripRepository) FindTripByID(ctx context.Context, tripID int64) (*domain.Trip, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	query := `SELECT ` + tripColumns + ` FROM trips WHERE trip_id = $1;`
	trip, err := scanTrip(r.Pool.QueryRow(ctx, query, tripID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: trip %d", apperrors.ErrNotFound, tripID)
		}
		return nil, fmt.Errorf("failed to find trip %d: %w", tripID, err)
	}
	return trip, nil
}

// ListTrips retrieves all trips ordered by departure date, descending.
func (r *PgxTripRepository) ListTrips(ctx context.Context) ([]domain.Trip, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	query := `SELECT ` + tripColumns + ` FROM trips ORDER BY departure_date DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	trips := make([]domain.Trip, 0)
	for rows.Next() {
		var m models.Trip
		if err := rows.Scan(
			&m.TripID,
			&m.Origin,
			&m.Destination,
			&m.DepartureDate,
			&m.DepartureTime,
			&m.Duration,
			&m.Price,
			&m.SeatsAvailable,
		); err != nil {
			return nil, fmt.Errorf("failed to scan trip row: %w", err)
		}
		trips = append(trips, toDomainTrip(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trip rows: %w", err)
	}
	return trips, nil
}

// ClaimSeats atomically converts available capacity into reserved capacity.
func (r *PgxTripRepository) ClaimSeats(ctx context.Context, tripID int64, count int) (*domain.Trip, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	return claimSeats(ctx, r.Pool, tripID, count)
}

// claimSeats runs the conditional decrement against q, which may be the pool
// or a transaction owned by the caller. The capacity check and the decrement
// are one statement: the WHERE predicate is evaluated by Postgres under row
// lock, so two concurrent claims for the last seats can never both succeed.
// A zero-row result is disambiguated with an existence probe on the same q.
func claimSeats(ctx context.Context, q dbtx, tripID int64, count int) (*domain.Trip, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: seat count must be at least 1", apperrors.ErrValidation)
	}

	query := `
		UPDATE trips
		SET seats_available = seats_available - $2
		WHERE trip_id = $1 AND seats_available >= $2
		RETURNING ` + tripColumns + `;`

	trip, err := scanTrip(q.QueryRow(ctx, query, tripID, count))
	if err == nil {
		return trip, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to claim %d seats on trip %d: %w", count, tripID, err)
	}

	// No row matched: either the trip is missing or it lacks capacity.
	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM trips WHERE trip_id = $1);`, tripID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("failed to probe trip %d after claim: %w", tripID, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: trip %d", apperrors.ErrNotFound, tripID)
	}
	return nil, fmt.Errorf("%w: requested %d seats on trip %d", apperrors.ErrInsufficientCapacity, count, tripID)
}
