package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReservationStatus indicates the state of a reservation.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
)

// Reservation is a claim on a number of seats for one trip. Reservations are
// append-only facts: once created they are never mutated or deleted.
type Reservation struct {
	ReservationID int64             `json:"reservationID"`
	TripID        int64             `json:"tripID"`
	SeatCount     int               `json:"seatCount"`
	Status        ReservationStatus `json:"status"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// ReservationWithTrip is a reservation enriched with its trip's route, date
// and price. The enrichment is a read-side join, not a stored denormalization.
type ReservationWithTrip struct {
	Reservation
	Origin        string          `json:"origin"`
	Destination   string          `json:"destination"`
	DepartureDate time.Time       `json:"departureDate"`
	Price         decimal.Decimal `json:"price"`
}

// TotalDue returns the amount owed for the reservation: unit price times
// seat count, captured from the trip the reservation was created against.
func (r ReservationWithTrip) TotalDue() decimal.Decimal {
	return r.Price.Mul(decimal.NewFromInt(int64(r.SeatCount)))
}
