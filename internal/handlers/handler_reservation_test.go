package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hbenmansour/trip_reservation_app/internal/apperrors"
	"github.com/hbenmansour/trip_reservation_app/internal/core/domain"
	portssvc "github.com/hbenmansour/trip_reservation_app/internal/core/ports/services"
	"github.com/hbenmansour/trip_reservation_app/internal/dto"
	"github.com/hbenmansour/trip_reservation_app/internal/handlers"
	"github.com/hbenmansour/trip_reservation_app/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TripService ---
type MockTripService struct {
	mock.Mock
}

var _ portssvc.TripSvcFacade = (*MockTripService)(nil)

func (m *MockTripService) GetTrip(ctx context.Context, tripID int64) (*domain.Trip, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripService) ListTrips(ctx context.Context) ([]domain.Trip, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trip), args.Error(1)
}

// --- Mock ReservationService ---
type MockReservationService struct {
	mock.Mock
}

var _ portssvc.ReservationSvcFacade = (*MockReservationService)(nil)

func (m *MockReservationService) CreateReservation(ctx context.Context, req dto.CreateReservationRequest) (*domain.ReservationWithTrip, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReservationWithTrip), args.Error(1)
}

func (m *MockReservationService) ListReservations(ctx context.Context) ([]domain.ReservationWithTrip, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReservationWithTrip), args.Error(1)
}

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

func (m *MockPaymentService) RecordPayment(ctx context.Context, reservationID int64, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	args := m.Called(ctx, reservationID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) GetPaymentSummary(ctx context.Context, reservationID int64) (*domain.PaymentSummary, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentSummary), args.Error(1)
}

// --- Stub Pinger ---
type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error { return s.err }

// --- Test suite ---

type ReservationHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockTrip        *MockTripService
	mockReservation *MockReservationService
	mockPayment     *MockPaymentService
	db              stubPinger
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockTrip = new(MockTripService)
	s.mockReservation = new(MockReservationService)
	s.mockPayment = new(MockPaymentService)
	s.db = stubPinger{}

	container := &portssvc.ServiceContainer{
		Trip:        s.mockTrip,
		Reservation: s.mockReservation,
		Payment:     s.mockPayment,
	}

	s.router = gin.New()
	cfg := &config.Config{IsProduction: true} // no swagger in tests
	handlers.RegisterRoutes(s.router, cfg, container, s.db)
}

func TestReservationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) performJSON(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *ReservationHandlerTestSuite) decode(w *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func reservationFixture() *domain.ReservationWithTrip {
	return &domain.ReservationWithTrip{
		Reservation: domain.Reservation{
			ReservationID: 42,
			TripID:        7,
			SeatCount:     2,
			Status:        domain.ReservationPending,
			CreatedAt:     time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
		},
		Origin:        "Tunis",
		Destination:   "Sousse",
		DepartureDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Price:         decimal.RequireFromString("15.50"),
	}
}

func (s *ReservationHandlerTestSuite) TestCreateReservationCreated() {
	s.mockReservation.On("CreateReservation", mock.Anything, mock.AnythingOfType("dto.CreateReservationRequest")).
		Return(reservationFixture(), nil).Once()

	w := s.performJSON(http.MethodPost, "/reservations", gin.H{"seats": 2, "trajet_id": 7})

	s.Equal(http.StatusCreated, w.Code)
	body := s.decode(w)
	s.Equal(true, body["success"])
	reservation := body["reservation"].(map[string]any)
	s.Equal(float64(42), reservation["id"])
	s.Equal("pending", reservation["statut"])
	s.Equal("Tunis", reservation["depart"])
	s.Equal("2026-09-01", reservation["date_depart"])
}

func (s *ReservationHandlerTestSuite) TestCreateReservationMissingFields() {
	w := s.performJSON(http.MethodPost, "/reservations", gin.H{})

	s.Equal(http.StatusBadRequest, w.Code)
	body := s.decode(w)
	s.Equal(false, body["success"])
	s.mockReservation.AssertNotCalled(s.T(), "CreateReservation", mock.Anything, mock.Anything)
}

func (s *ReservationHandlerTestSuite) TestCreateReservationUnknownTrip() {
	s.mockReservation.On("CreateReservation", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: trip 999", apperrors.ErrNotFound)).Once()

	w := s.performJSON(http.MethodPost, "/reservations", gin.H{"seats": 1, "trajet_id": 999})

	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("Trajet non trouvé", s.decode(w)["error"])
}

func (s *ReservationHandlerTestSuite) TestCreateReservationInsufficientCapacity() {
	s.mockReservation.On("CreateReservation", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: requested 10 seats on trip 7", apperrors.ErrInsufficientCapacity)).Once()

	w := s.performJSON(http.MethodPost, "/reservations", gin.H{"seats": 10, "trajet_id": 7})

	s.Equal(http.StatusConflict, w.Code)
	s.Equal("Nombre de places insuffisant", s.decode(w)["error"])
}

func (s *ReservationHandlerTestSuite) TestCreateReservationInfraFailure() {
	s.mockReservation.On("CreateReservation", mock.Anything, mock.Anything).
		Return(nil, errors.New("connection reset")).Once()

	w := s.performJSON(http.MethodPost, "/reservations", gin.H{"seats": 1, "trajet_id": 7})

	s.Equal(http.StatusInternalServerError, w.Code)
	// Infra detail stays in the logs, not in the response.
	s.NotContains(w.Body.String(), "connection reset")
}

func (s *ReservationHandlerTestSuite) TestListReservations() {
	s.mockReservation.On("ListReservations", mock.Anything).
		Return([]domain.ReservationWithTrip{*reservationFixture()}, nil).Once()

	w := s.performJSON(http.MethodGet, "/reservations", nil)

	s.Equal(http.StatusOK, w.Code)
	body := s.decode(w)
	s.Equal(true, body["success"])
	s.Len(body["data"], 1)
}

func (s *ReservationHandlerTestSuite) TestListTrips() {
	s.mockTrip.On("ListTrips", mock.Anything).Return([]domain.Trip{
		{
			TripID:         1,
			Origin:         "Tunis",
			Destination:    "Sousse",
			DepartureDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			DepartureTime:  "08:00:00",
			Duration:       2 * time.Hour,
			Price:          decimal.RequireFromString("15.50"),
			SeatsAvailable: 50,
		},
	}, nil).Once()

	w := s.performJSON(http.MethodGet, "/trajets", nil)

	s.Equal(http.StatusOK, w.Code)
	body := s.decode(w)
	s.Equal(true, body["success"])
	trips := body["data"].([]any)
	trip := trips[0].(map[string]any)
	s.Equal("Tunis", trip["depart"])
	s.Equal("08:00:00", trip["heure_depart"])
	s.Equal(float64(50), trip["places_disponibles"])
}

func (s *ReservationHandlerTestSuite) TestHealthHealthy() {
	w := s.performJSON(http.MethodGet, "/health", nil)

	s.Equal(http.StatusOK, w.Code)
	s.Equal("healthy", s.decode(w)["status"])
}
