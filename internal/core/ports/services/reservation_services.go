package services

import (
	"context"

	"github.com/hbenmansour/trip_reservation_app/internal/core/domain"
	"github.com/hbenmansour/trip_reservation_app/internal/dto"
)

// ReservationSvcFacade defines the reservation manager operations exposed to handlers.
type ReservationSvcFacade interface {
	// CreateReservation validates the request, atomically claims the seats
	// and persists the reservation, returning it enriched with trip
	// context. Returns apperrors.ErrValidation for a non-positive seat
	// count, apperrors.ErrNotFound for an unknown trip and
	// apperrors.ErrInsufficientCapacity when the claim cannot be satisfied.
	CreateReservation(ctx context.Context, req dto.CreateReservationRequest) (*domain.ReservationWithTrip, error)

	// ListReservations returns all reservations joined with trip context,
	// newest first.
	ListReservations(ctx context.Context) ([]domain.ReservationWithTrip, error)
}
