package pgsql

import (
	"time"

	portsrepo "github.com/hbenmansour/trip_reservation_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the pgx repositories over a shared pool. The
// queryTimeout bounds every individual store call.
func NewRepositoryProvider(dbPool *pgxpool.Pool, queryTimeout time.Duration) portsrepo.RepositoryProvider {
	tripRepo := newPgxTripRepository(dbPool, queryTimeout)
	reservationRepo := newPgxReservationRepository(dbPool, queryTimeout)
	paymentRepo := newPgxPaymentRepository(dbPool, queryTimeout)

	return portsrepo.RepositoryProvider{
		TripRepo:        tripRepo,
		ReservationRepo: reservationRepo,
		PaymentRepo:     paymentRepo,
	}
}
