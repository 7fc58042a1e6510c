package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hbenmansour/trip_reservation_app/internal/apperrors"
	"github.com/hbenmansour/trip_reservation_app/internal/core/domain"
	portsrepo "github.com/hbenmansour/trip_reservation_app/internal/core/ports/repositories"
	portssvc "github.com/hbenmansour/trip_reservation_app/internal/core/ports/services"
	"github.com/hbenmansour/trip_reservation_app/internal/dto"
	"github.com/hbenmansour/trip_reservation_app/internal/middleware"
	"github.com/shopspring/decimal"
)

var (
	// ErrAmountNotPositive rejects zero and negative payment amounts.
	ErrAmountNotPositive = fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)

	// ErrMissingPaymentFields rejects requests without an amount or method.
	ErrMissingPaymentFields = fmt.Errorf("%w: montant and mode_paiement are both mandatory", apperrors.ErrValidation)
)

// paymentService records payments and reconciles reservation balances.
// Payments are never checked against the outstanding balance: overpaying is
// allowed and the remaining balance simply goes negative.
type paymentService struct {
	paymentRepo     portsrepo.PaymentRepositoryFacade
	reservationRepo portsrepo.ReservationReader
	now             func() time.Time
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade, reservationRepo portsrepo.ReservationReader) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo:     paymentRepo,
		reservationRepo: reservationRepo,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// Ensure paymentService implements the portssvc.PaymentSvcFacade interface
var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// RecordPayment validates and persists a payment against an existing reservation.
func (s *paymentService) RecordPayment(ctx context.Context, reservationID int64, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Montant == nil || strings.TrimSpace(req.ModePaiement) == "" {
		return nil, ErrMissingPaymentFields
	}
	if req.Montant.LessThanOrEqual(decimal.Zero) {
		return nil, ErrAmountNotPositive
	}

	// The reservation must exist before any payment row is written.
	if _, err := s.reservationRepo.FindReservationByID(ctx, reservationID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to look up reservation for payment",
				slog.Int64("reservation_id", reservationID), slog.String("error", err.Error()))
		}
		return nil, err
	}

	payment := domain.Payment{
		ReservationID: reservationID,
		Amount:        *req.Montant,
		Method:        req.ModePaiement,
		Status:        domain.PaymentCompleted,
		CreatedAt:     s.now(),
	}

	saved, err := s.paymentRepo.SavePayment(ctx, payment)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to save payment",
				slog.Int64("reservation_id", reservationID), slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("Payment recorded",
		slog.Int64("payment_id", saved.PaymentID),
		slog.Int64("reservation_id", reservationID),
		slog.String("method", saved.Method))
	return saved, nil
}

// GetPaymentSummary computes the reconciled balance view for a reservation:
// total due (price x seat count), total paid and the remaining balance.
func (s *paymentService) GetPaymentSummary(ctx context.Context, reservationID int64) (*domain.PaymentSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	reservation, err := s.reservationRepo.FindReservationByID(ctx, reservationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to look up reservation for summary",
				slog.Int64("reservation_id", reservationID), slog.String("error", err.Error()))
		}
		return nil, err
	}

	payments, err := s.paymentRepo.FindPaymentsByReservationID(ctx, reservationID)
	if err != nil {
		logger.Error("Failed to load payments for summary",
			slog.Int64("reservation_id", reservationID), slog.String("error", err.Error()))
		return nil, err
	}

	totalPaid := decimal.Zero
	for _, p := range payments {
		totalPaid = totalPaid.Add(p.Amount)
	}
	totalDue := reservation.TotalDue()

	return &domain.PaymentSummary{
		Reservation:      *reservation,
		Payments:         payments,
		TotalDue:         totalDue,
		TotalPaid:        totalPaid,
		BalanceRemaining: totalDue.Sub(totalPaid),
	}, nil
}
