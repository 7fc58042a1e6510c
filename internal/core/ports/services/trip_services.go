package services

import (
	"context"

	"github.com/hbenmansour/trip_reservation_app/internal/core/domain"
)

// TripSvcFacade defines the trip catalog operations exposed to handlers.
type TripSvcFacade interface {
	// GetTrip fetches a trip snapshot by identifier. Returns
	// apperrors.ErrNotFound when the identifier matches no trip.
	GetTrip(ctx context.Context, tripID int64) (*domain.Trip, error)

	// ListTrips returns all trips ordered by departure date, descending.
	ListTrips(ctx context.Context) ([]domain.Trip, error)
}
