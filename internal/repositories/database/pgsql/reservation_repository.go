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
	"github.com/shopspring/decimal"
)

type PgxReservationRepository struct {
	BaseRepository
}

// newPgxReservationRepository creates a new repository for reservation data.
func newPgxReservationRepository(pool *pgxpool.Pool, queryTimeout time.Duration) *PgxReservationRepository {
	return &PgxReservationRepository{BaseRepository: BaseRepository{Pool: pool, QueryTimeout: queryTimeout}}
}

// Ensure PgxReservationRepository implements portsrepo.ReservationRepositoryFacade
var _ portsrepo.ReservationRepositoryFacade = (*PgxReservationRepository)(nil)

func toDomainReservation(m models.Reservation) domain.Reservation {
	return domain.Reservation{
		ReservationID: m.ReservationID,
		TripID:        m.TripID,
		SeatCount:     m.SeatCount,
		Status:        domain.ReservationStatus(m.Status),
		CreatedAt:     m.CreatedAt,
	}
}

// CreateReservation claims the seats and inserts the reservation row in one
// transaction. The claim's conditional update and the insert commit or roll
// back together, so a failed insert can never leak claimed capacity.
func (r *PgxReservationRepository) CreateReservation(ctx context.Context, tripID int64, seatCount int, createdAt time.Time) (*domain.Reservation, *domain.Trip, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	// No-op once the transaction has committed.
	defer func() { _ = tx.Rollback(ctx) }()

	trip, err := claimSeats(ctx, tx, tripID, seatCount)
	if err != nil {
		return nil, nil, err
	}

	insert := `
		INSERT INTO reservations (trip_id, seat_count, status, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING reservation_id;`

	var reservationID int64
	if err := tx.QueryRow(ctx, insert, tripID, seatCount, string(domain.ReservationPending), createdAt).Scan(&reservationID); err != nil {
		return nil, nil, fmt.Errorf("failed to insert reservation for trip %d: %w", tripID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, nil, err
	}

	reservation := domain.Reservation{
		ReservationID: reservationID,
		TripID:        tripID,
		SeatCount:     seatCount,
		Status:        domain.ReservationPending,
		CreatedAt:     createdAt,
	}
	return &reservation, trip, nil
}

const reservationJoinColumns = `
	r.reservation_id, r.trip_id, r.seat_count, r.status, r.created_at,
	t.origin, t.destination, t.departure_date, t.price`

func scanReservationWithTrip(scan func(dest ...any) error) (*domain.ReservationWithTrip, error) {
	var m models.Reservation
	var origin, destination string
	var departureDate pgtype.Date
	var price decimal.Decimal

	err := scan(
		&m.ReservationID,
		&m.TripID,
		&m.SeatCount,
		&m.Status,
		&m.CreatedAt,
		&origin,
		&destination,
		&departureDate,
		&price,
	)
	if err != nil {
		return nil, err
	}
	return &domain.ReservationWithTrip{
		Reservation:   toDomainReservation(m),
		Origin:        origin,
		Destination:   destination,
		DepartureDate: departureDate.Time,
		Price:         price,
	}, nil
}

// FindReservationByID retrieves a reservation joined with its trip context.
func (r *PgxReservationRepository) FindReservationByID(ctx context.Context, reservationID int64) (*domain.ReservationWithTrip, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	query := `
		SELECT ` + reservationJoinColumns + `
		FROM reservations r
		JOIN trips t ON r.trip_id = t.trip_id
		WHERE r.reservation_id = $1;`

	row := r.Pool.QueryRow(ctx, query, reservationID)
	res, err := scanReservationWithTrip(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: reservation %d", apperrors.ErrNotFound, reservationID)
		}
		return nil, fmt.Errorf("failed to find reservation %d: %w", reservationID, err)
	}
	return res, nil
}

// ListReservations retrieves all reservations with trip context, newest first.
func (r *PgxReservationRepository) ListReservations(ctx context.Context) ([]domain.ReservationWithTrip, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	query := `
		SELECT ` + reservationJoinColumns + `
		FROM reservations r
		JOIN trips t ON r.trip_id = t.trip_id
		ORDER BY r.reservation_id DESC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer rows.Close()

	reservations := make([]domain.ReservationWithTrip, 0)
	for rows.Next() {
		res, err := scanReservationWithTrip(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reservation row: %w", err)
		}
		reservations = append(reservations, *res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reservation rows: %w", err)
	}
	return reservations, nil
}
