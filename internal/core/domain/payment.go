package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus indicates the state of a payment. Only completed payments
// exist in this service; there is no pending or failed payment state.
type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "completed"
)

// Payment is a monetary record applied against one reservation's balance.
// Payments are immutable once recorded.
type Payment struct {
	PaymentID     int64           `json:"paymentID"`
	ReservationID int64           `json:"reservationID"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	Status        PaymentStatus   `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// PaymentSummary is the reconciled view of a reservation's payment history.
// BalanceRemaining may be negative when a reservation is overpaid; it is
// reported as-is, never clamped.
type PaymentSummary struct {
	Reservation      ReservationWithTrip `json:"reservation"`
	Payments         []Payment           `json:"payments"`
	TotalDue         decimal.Decimal     `json:"totalDue"`
	TotalPaid        decimal.Decimal     `json:"totalPaid"`
	BalanceRemaining decimal.Decimal     `json:"balanceRemaining"`
}
