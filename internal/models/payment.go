package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the database-layer representation of a payment row.
type Payment struct {
	PaymentID     int64
	ReservationID int64
	Amount        decimal.Decimal
	Method        string
	Status        string
	CreatedAt     time.Time
}
