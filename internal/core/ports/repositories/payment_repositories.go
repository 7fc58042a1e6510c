package repositories

import (
	"context"

	"github.com/hbenmansour/trip_reservation_app/internal/core/domain"
)

// PaymentReader defines read operations for payment data.
type PaymentReader interface {
	// FindPaymentsByReservationID retrieves all payments recorded against a
	// reservation, oldest first. An unknown reservation yields an empty
	// slice here; existence is the reservation repository's concern.
	FindPaymentsByReservationID(ctx context.Context, reservationID int64) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for payment data.
type PaymentWriter interface {
	// SavePayment persists a payment and returns it with its generated id.
	SavePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error)
}

// PaymentRepositoryFacade combines all payment-related repository interfaces.
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
