package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/hbenmansour/trip_reservation_app/internal/apperrors"
	"github.com/hbenmansour/trip_reservation_app/internal/core/domain"
	portsrepo "github.com/hbenmansour/trip_reservation_app/internal/core/ports/repositories"
	portssvc "github.com/hbenmansour/trip_reservation_app/internal/core/ports/services"
	"github.com/hbenmansour/trip_reservation_app/internal/middleware"
)

// tripService provides read access to the trip catalog.
type tripService struct {
	tripRepo portsrepo.TripReader
}

// NewTripService creates a new TripService.
func NewTripService(tripRepo portsrepo.TripReader) portssvc.TripSvcFacade {
	return &tripService{tripRepo: tripRepo}
}

// Ensure tripService implements the portssvc.TripSvcFacade interface
var _ portssvc.TripSvcFacade = (*tripService)(nil)

// GetTrip fetches a trip snapshot by identifier.
func (s *tripService) GetTrip(ctx context.Context, tripID int64) (*domain.Trip, error) {
	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to fetch trip",
				slog.Int64("trip_id", tripID), slog.String("error", err.Error()))
		}
		return nil, err
	}
	return trip, nil
}

// ListTrips returns all trips ordered by departure date, descending.
func (s *tripService) ListTrips(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.tripRepo.ListTrips(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list trips", slog.String("error", err.Error()))
		return nil, err
	}
	return trips, nil
}
