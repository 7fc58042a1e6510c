package repositories

import (
	"context"
	"time"

	"github.com/hbenmansour/trip_reservation_app/internal/core/domain"
)

// ReservationReader defines read operations for reservation data.
type ReservationReader interface {
	// FindReservationByID retrieves a reservation joined with its trip's
	// route, date and price. Returns apperrors.ErrNotFound when absent.
	FindReservationByID(ctx context.Context, reservationID int64) (*domain.ReservationWithTrip, error)

	// ListReservations retrieves all reservations joined with trip context,
	// ordered by reservation id descending (newest first).
	ListReservations(ctx context.Context) ([]domain.ReservationWithTrip, error)
}

// ReservationWriter defines write operations for reservation data.
type ReservationWriter interface {
	// CreateReservation claims seatCount seats on the trip and inserts the
	// reservation row in a single transaction: if the insert fails the
	// claim is rolled back, so capacity is never leaked. On success it
	// returns the persisted reservation and the trip row as updated by the
	// claim. Propagates apperrors.ErrNotFound and
	// apperrors.ErrInsufficientCapacity from the claim unchanged.
	CreateReservation(ctx context.Context, tripID int64, seatCount int, createdAt time.Time) (*domain.Reservation, *domain.Trip, error)
}

// ReservationRepositoryFacade combines all reservation-related repository interfaces.
type ReservationRepositoryFacade interface {
	ReservationReader
	ReservationWriter
}
