package dto

import (
	"time"

	"github.com/hbenmansour/trip_reservation_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest carries the payment creation input. Amount and method
// are both mandatory; the amount must be strictly positive.
type CreatePaymentRequest struct {
	Montant      *decimal.Decimal `json:"montant" binding:"required"`
	ModePaiement string           `json:"mode_paiement" binding:"required"`
}

// PaymentResponse is the wire representation of a payment.
type PaymentResponse struct {
	ID            int64           `json:"id"`
	ReservationID int64           `json:"reservation_id"`
	Montant       decimal.Decimal `json:"montant"`
	ModePaiement  string          `json:"mode_paiement"`
	Statut        string          `json:"statut"`
	DatePaiement  time.Time       `json:"date_paiement"`
}

// ToPaymentResponse maps a domain payment onto the wire shape.
func ToPaymentResponse(p domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.PaymentID,
		ReservationID: p.ReservationID,
		Montant:       p.Amount,
		ModePaiement:  p.Method,
		Statut:        string(p.Status),
		DatePaiement:  p.CreatedAt,
	}
}

// PaymentSummaryResponse is the reconciled payment view for one reservation.
// The totals are rendered with two decimal places, matching the NUMERIC(10,2)
// columns they derive from. ResteAPayer may be negative when the reservation
// is overpaid.
type PaymentSummaryResponse struct {
	Success      bool                `json:"success"`
	Reservation  ReservationResponse `json:"reservation"`
	Paiements    []PaymentResponse   `json:"paiements"`
	MontantTotal string              `json:"montant_total"`
	TotalPaye    string              `json:"total_paye"`
	ResteAPayer  string              `json:"reste_a_payer"`
}

// ToPaymentSummaryResponse maps a domain payment summary onto the wire shape.
func ToPaymentSummaryResponse(s domain.PaymentSummary) PaymentSummaryResponse {
	paiements := make([]PaymentResponse, 0, len(s.Payments))
	for _, p := range s.Payments {
		paiements = append(paiements, ToPaymentResponse(p))
	}
	return PaymentSummaryResponse{
		Success:      true,
		Reservation:  ToReservationResponse(s.Reservation),
		Paiements:    paiements,
		MontantTotal: s.TotalDue.StringFixed(2),
		TotalPaye:    s.TotalPaid.StringFixed(2),
		ResteAPayer:  s.BalanceRemaining.StringFixed(2),
	}
}
