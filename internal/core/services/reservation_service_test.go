package services_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/hbenmansour/trip_reservation_app/internal/apperrors"
	"github.com/hbenmansour/trip_reservation_app/internal/core/domain"
	portsrepo "github.com/hbenmansour/trip_reservation_app/internal/core/ports/repositories"
	portssvc "github.com/hbenmansour/trip_reservation_app/internal/core/ports/services"
	"github.com/hbenmansour/trip_reservation_app/internal/core/services"
	"github.com/hbenmansour/trip_reservation_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReservationRepository ---
type MockReservationRepository struct {
	mock.Mock
}

// Ensure MockReservationRepository implements portsrepo.ReservationRepositoryFacade
var _ portsrepo.ReservationRepositoryFacade = (*MockReservationRepository)(nil)

func (m *MockReservationRepository) CreateReservation(ctx context.Context, tripID int64, seatCount int, createdAt time.Time) (*domain.Reservation, *domain.Trip, error) {
	args := m.Called(ctx, tripID, seatCount, createdAt)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Reservation), args.Get(1).(*domain.Trip), args.Error(2)
}

func (m *MockReservationRepository) FindReservationByID(ctx context.Context, reservationID int64) (*domain.ReservationWithTrip, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReservationWithTrip), args.Error(1)
}

func (m *MockReservationRepository) ListReservations(ctx context.Context) ([]domain.ReservationWithTrip, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReservationWithTrip), args.Error(1)
}

// --- Test suite ---

type ReservationServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReservationRepository
	service  portssvc.ReservationSvcFacade
	ctx      context.Context
}

func (s *ReservationServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockReservationRepository)
	s.service = services.NewReservationService(s.mockRepo)
	s.ctx = context.Background()
}

func TestReservationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReservationServiceTestSuite))
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func (s *ReservationServiceTestSuite) TestCreateReservationSuccess() {
	tripID := int64(7)
	price := decimal.RequireFromString("15.50")
	reservation := &domain.Reservation{
		ReservationID: 42,
		TripID:        tripID,
		SeatCount:     2,
		Status:        domain.ReservationPending,
		CreatedAt:     time.Now().UTC(),
	}
	trip := &domain.Trip{
		TripID:         tripID,
		Origin:         "Tunis",
		Destination:    "Sousse",
		DepartureDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Price:          price,
		SeatsAvailable: 48,
	}

	s.mockRepo.On("CreateReservation", s.ctx, tripID, 2, mock.AnythingOfType("time.Time")).
		Return(reservation, trip, nil).Once()

	got, err := s.service.CreateReservation(s.ctx, dto.CreateReservationRequest{
		Seats:  intPtr(2),
		TripID: int64Ptr(tripID),
	})

	s.Require().NoError(err)
	s.Equal(int64(42), got.ReservationID)
	s.Equal(domain.ReservationPending, got.Status)
	s.Equal("Tunis", got.Origin)
	s.Equal("Sousse", got.Destination)
	s.True(price.Equal(got.Price))
	s.mockRepo.AssertExpectations(s.T())
}

func (s *ReservationServiceTestSuite) TestCreateReservationMissingFields() {
	_, err := s.service.CreateReservation(s.ctx, dto.CreateReservationRequest{})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "CreateReservation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *ReservationServiceTestSuite) TestCreateReservationRejectsZeroSeats() {
	_, err := s.service.CreateReservation(s.ctx, dto.CreateReservationRequest{
		Seats:  intPtr(0),
		TripID: int64Ptr(1),
	})

	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "CreateReservation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *ReservationServiceTestSuite) TestCreateReservationRejectsNegativeSeats() {
	_, err := s.service.CreateReservation(s.ctx, dto.CreateReservationRequest{
		Seats:  intPtr(-3),
		TripID: int64Ptr(1),
	})

	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "CreateReservation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *ReservationServiceTestSuite) TestCreateReservationUnknownTrip() {
	s.mockRepo.On("CreateReservation", s.ctx, int64(999), 1, mock.AnythingOfType("time.Time")).
		Return(nil, nil, fmt.Errorf("%w: trip 999", apperrors.ErrNotFound)).Once()

	_, err := s.service.CreateReservation(s.ctx, dto.CreateReservationRequest{
		Seats:  intPtr(1),
		TripID: int64Ptr(999),
	})

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *ReservationServiceTestSuite) TestCreateReservationInsufficientCapacity() {
	s.mockRepo.On("CreateReservation", s.ctx, int64(7), 10, mock.AnythingOfType("time.Time")).
		Return(nil, nil, fmt.Errorf("%w: requested 10 seats on trip 7", apperrors.ErrInsufficientCapacity)).Once()

	_, err := s.service.CreateReservation(s.ctx, dto.CreateReservationRequest{
		Seats:  intPtr(10),
		TripID: int64Ptr(7),
	})

	s.ErrorIs(err, apperrors.ErrInsufficientCapacity)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *ReservationServiceTestSuite) TestCreateReservationInfrastructureFailure() {
	infra := errors.New("connection refused")
	s.mockRepo.On("CreateReservation", s.ctx, int64(7), 1, mock.AnythingOfType("time.Time")).
		Return(nil, nil, infra).Once()

	_, err := s.service.CreateReservation(s.ctx, dto.CreateReservationRequest{
		Seats:  intPtr(1),
		TripID: int64Ptr(7),
	})

	s.Require().Error(err)
	s.False(errors.Is(err, apperrors.ErrValidation))
	s.False(errors.Is(err, apperrors.ErrNotFound))
	s.False(errors.Is(err, apperrors.ErrInsufficientCapacity))
}

func (s *ReservationServiceTestSuite) TestListReservationsNewestFirst() {
	expected := []domain.ReservationWithTrip{
		{Reservation: domain.Reservation{ReservationID: 3}},
		{Reservation: domain.Reservation{ReservationID: 2}},
		{Reservation: domain.Reservation{ReservationID: 1}},
	}
	s.mockRepo.On("ListReservations", s.ctx).Return(expected, nil).Once()

	got, err := s.service.ListReservations(s.ctx)

	s.Require().NoError(err)
	s.Equal(expected, got)
}

// --- No-oversell property ---

// fakeReservationStore models the repository contract: the seat claim and
// the reservation insert form one atomic unit, and a failed insert restores
// the claimed capacity.
type fakeReservationStore struct {
	mu             sync.Mutex
	seatsAvailable int
	nextID         int64
	reservations   []domain.Reservation
	failInsert     bool
}

var _ portsrepo.ReservationRepositoryFacade = (*fakeReservationStore)(nil)

func (f *fakeReservationStore) CreateReservation(_ context.Context, tripID int64, seatCount int, createdAt time.Time) (*domain.Reservation, *domain.Trip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seatsAvailable < seatCount {
		return nil, nil, fmt.Errorf("%w: requested %d seats on trip %d", apperrors.ErrInsufficientCapacity, seatCount, tripID)
	}
	f.seatsAvailable -= seatCount

	if f.failInsert {
		// Insert failed after the claim: the transaction rolls back and the
		// claimed seats come back.
		f.seatsAvailable += seatCount
		return nil, nil, errors.New("insert failed")
	}

	f.nextID++
	res := domain.Reservation{
		ReservationID: f.nextID,
		TripID:        tripID,
		SeatCount:     seatCount,
		Status:        domain.ReservationPending,
		CreatedAt:     createdAt,
	}
	f.reservations = append(f.reservations, res)
	trip := domain.Trip{TripID: tripID, SeatsAvailable: f.seatsAvailable}
	return &res, &trip, nil
}

func (f *fakeReservationStore) FindReservationByID(context.Context, int64) (*domain.ReservationWithTrip, error) {
	return nil, apperrors.ErrNotFound
}

func (f *fakeReservationStore) ListReservations(context.Context) ([]domain.ReservationWithTrip, error) {
	return nil, nil
}

func TestCreateReservationNeverOversells(t *testing.T) {
	const capacity = 10
	const requests = 40

	store := &fakeReservationStore{seatsAvailable: capacity}
	svc := services.NewReservationService(store)

	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	rejected := 0

	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateReservation(context.Background(), dto.CreateReservationRequest{
				Seats:  intPtr(1),
				TripID: int64Ptr(1),
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				accepted++
			case errors.Is(err, apperrors.ErrInsufficientCapacity):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, capacity, accepted, "exactly the requests that fit must be accepted")
	assert.Equal(t, requests-capacity, rejected)
	assert.Equal(t, 0, store.seatsAvailable)

	claimed := 0
	for _, r := range store.reservations {
		claimed += r.SeatCount
	}
	assert.Equal(t, capacity, claimed, "claimed seats plus availability must equal original capacity")
}

func TestCreateReservationRestoresCapacityWhenInsertFails(t *testing.T) {
	store := &fakeReservationStore{seatsAvailable: 5, failInsert: true}
	svc := services.NewReservationService(store)

	_, err := svc.CreateReservation(context.Background(), dto.CreateReservationRequest{
		Seats:  intPtr(2),
		TripID: int64Ptr(1),
	})

	require.Error(t, err)
	assert.Equal(t, 5, store.seatsAvailable, "failed insert must not leak claimed capacity")
	assert.Empty(t, store.reservations)
}
