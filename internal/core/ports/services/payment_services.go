package services

import (
	"context"

	"github.com/hbenmansour/trip_reservation_app/internal/core/domain"
	"github.com/hbenmansour/trip_reservation_app/internal/dto"
)

// PaymentSvcFacade defines the payment ledger operations exposed to handlers.
type PaymentSvcFacade interface {
	// RecordPayment validates and persists a payment against an existing
	// reservation. Returns apperrors.ErrValidation for a non-positive
	// amount or missing method and apperrors.ErrNotFound for an unknown
	// reservation. Overpayment is allowed: amounts are not checked against
	// the outstanding balance.
	RecordPayment(ctx context.Context, reservationID int64, req dto.CreatePaymentRequest) (*domain.Payment, error)

	// GetPaymentSummary returns the reservation, its payment history and
	// the derived totals (total due, total paid, balance remaining).
	GetPaymentSummary(ctx context.Context, reservationID int64) (*domain.PaymentSummary, error)
}
