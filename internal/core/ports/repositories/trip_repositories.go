package repositories

import (
	"context"

	"github.com/hbenmansour/trip_reservation_app/internal/core/domain"
)

// TripReader defines read operations for the trip catalog.
type TripReader interface {
	// FindTripByID retrieves a trip snapshot by its identifier.
	// Returns apperrors.ErrNotFound when no trip matches.
	FindTripByID(ctx context.Context, tripID int64) (*domain.Trip, error)

	// ListTrips retrieves all trips ordered by departure date, descending.
	ListTrips(ctx context.Context) ([]domain.Trip, error)
}

// SeatClaimer owns the atomic check-and-decrement that converts available
// capacity into reserved capacity. The capacity predicate and the decrement
// execute as one conditional mutation evaluated by the store, so concurrent
// claims against the same trip can never jointly exceed its capacity.
type SeatClaimer interface {
	// ClaimSeats decrements seats_available by count iff at least count
	// seats are free, returning the updated trip row. Returns
	// apperrors.ErrInsufficientCapacity when fewer seats are available and
	// apperrors.ErrNotFound when the trip does not exist. There is no
	// partial claim and no release operation.
	//
	// Reservation creation does not call this standalone form: the
	// reservation repository composes the same claim on its own
	// transaction so claim and insert commit together. This method is the
	// contract for claims that need no accompanying write.
	ClaimSeats(ctx context.Context, tripID int64, count int) (*domain.Trip, error)
}

// TripRepositoryFacade combines all trip-related repository interfaces.
type TripRepositoryFacade interface {
	TripReader
	SeatClaimer
}
