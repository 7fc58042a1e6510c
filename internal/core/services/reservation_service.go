package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hbenmansour/trip_reservation_app/internal/apperrors"
	"github.com/hbenmansour/trip_reservation_app/internal/core/domain"
	portsrepo "github.com/hbenmansour/trip_reservation_app/internal/core/ports/repositories"
	portssvc "github.com/hbenmansour/trip_reservation_app/internal/core/ports/services"
	"github.com/hbenmansour/trip_reservation_app/internal/dto"
	"github.com/hbenmansour/trip_reservation_app/internal/middleware"
)

var (
	// ErrSeatCountTooLow rejects zero and negative seat counts before any
	// store access.
	ErrSeatCountTooLow = fmt.Errorf("%w: seat count must be at least 1", apperrors.ErrValidation)

	// ErrMissingFields rejects requests where either mandatory field is absent.
	ErrMissingFields = fmt.Errorf("%w: seats and trajet_id are both mandatory", apperrors.ErrValidation)
)

// reservationService orchestrates reservation creation: validation, the
// atomic seat claim and the reservation insert.
type reservationService struct {
	reservationRepo portsrepo.ReservationRepositoryFacade
	now             func() time.Time
}

// NewReservationService creates a new ReservationService.
func NewReservationService(reservationRepo portsrepo.ReservationRepositoryFacade) portssvc.ReservationSvcFacade {
	return &reservationService{
		reservationRepo: reservationRepo,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// Ensure reservationService implements the portssvc.ReservationSvcFacade interface
var _ portssvc.ReservationSvcFacade = (*reservationService)(nil)

// CreateReservation validates the request and delegates the claim + insert
// to the repository, which runs both in one transaction. Domain errors from
// the claim (not found, insufficient capacity) propagate unchanged.
func (s *reservationService) CreateReservation(ctx context.Context, req dto.CreateReservationRequest) (*domain.ReservationWithTrip, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Seats == nil || req.TripID == nil {
		return nil, ErrMissingFields
	}
	seatCount := *req.Seats
	tripID := *req.TripID
	if seatCount < 1 {
		return nil, ErrSeatCountTooLow
	}

	reservation, trip, err := s.reservationRepo.CreateReservation(ctx, tripID, seatCount, s.now())
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Reservation for unknown trip rejected", slog.Int64("trip_id", tripID))
			return nil, err
		case errors.Is(err, apperrors.ErrInsufficientCapacity):
			logger.Info("Seat claim rejected, not enough capacity",
				slog.Int64("trip_id", tripID), slog.Int("seat_count", seatCount))
			return nil, err
		case errors.Is(err, apperrors.ErrValidation):
			return nil, err
		default:
			logger.Error("Failed to create reservation",
				slog.Int64("trip_id", tripID), slog.Int("seat_count", seatCount),
				slog.String("error", err.Error()))
			return nil, err
		}
	}

	logger.Info("Reservation created",
		slog.Int64("reservation_id", reservation.ReservationID),
		slog.Int64("trip_id", tripID),
		slog.Int("seat_count", seatCount),
		slog.Int("seats_remaining", trip.SeatsAvailable))

	return &domain.ReservationWithTrip{
		Reservation:   *reservation,
		Origin:        trip.Origin,
		Destination:   trip.Destination,
		DepartureDate: trip.DepartureDate,
		Price:         trip.Price,
	}, nil
}

// ListReservations returns all reservations with trip context, newest first.
func (s *reservationService) ListReservations(ctx context.Context) ([]domain.ReservationWithTrip, error) {
	reservations, err := s.reservationRepo.ListReservations(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list reservations", slog.String("error", err.Error()))
		return nil, err
	}
	return reservations, nil
}
