package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hbenmansour/trip_reservation_app/internal/apperrors"
	"github.com/hbenmansour/trip_reservation_app/internal/core/domain"
	portsrepo "github.com/hbenmansour/trip_reservation_app/internal/core/ports/repositories"
	"github.com/hbenmansour/trip_reservation_app/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for payment data.
func newPgxPaymentRepository(pool *pgxpool.Pool, queryTimeout time.Duration) *PgxPaymentRepository {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool, QueryTimeout: queryTimeout}}
}

// Ensure PgxPaymentRepository implements portsrepo.PaymentRepositoryFacade
var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

func toDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:     m.PaymentID,
		ReservationID: m.ReservationID,
		Amount:        m.Amount,
		Method:        m.Method,
		Status:        domain.PaymentStatus(m.Status),
		CreatedAt:     m.CreatedAt,
	}
}

// SavePayment persists a payment and returns it with the generated id.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	insert := `
		INSERT INTO payments (reservation_id, amount, method, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING payment_id;`

	err := r.Pool.QueryRow(ctx, insert,
		payment.ReservationID,
		payment.Amount,
		payment.Method,
		string(payment.Status),
		payment.CreatedAt,
	).Scan(&payment.PaymentID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // FK violation
			return nil, fmt.Errorf("%w: reservation %d", apperrors.ErrNotFound, payment.ReservationID)
		}
		return nil, fmt.Errorf("failed to save payment for reservation %d: %w", payment.ReservationID, err)
	}
	return &payment, nil
}

// FindPaymentsByReservationID retrieves a reservation's payments, oldest first.
func (r *PgxPaymentRepository) FindPaymentsByReservationID(ctx context.Context, reservationID int64) ([]domain.Payment, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	query := `
		SELECT payment_id, reservation_id, amount, method, status, created_at
		FROM payments
		WHERE reservation_id = $1
		ORDER BY payment_id;`

	rows, err := r.Pool.Query(ctx, query, reservationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for reservation %d: %w", reservationID, err)
	}
	defer rows.Close()

	payments := make([]domain.Payment, 0)
	for rows.Next() {
		var m models.Payment
		if err := rows.Scan(&m.PaymentID, &m.ReservationID, &m.Amount, &m.Method, &m.Status, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, toDomainPayment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payment rows: %w", err)
	}
	return payments, nil
}
