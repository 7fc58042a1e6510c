package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trip represents a scheduled route instance with a fixed per-seat price and
// a live seat counter. SeatsAvailable is owned by the seat inventory: it is
// only ever mutated through the atomic claim, never written directly.
type Trip struct {
	TripID         int64           `json:"tripID"`
	Origin         string          `json:"origin"`
	Destination    string          `json:"destination"`
	DepartureDate  time.Time       `json:"departureDate"`
	DepartureTime  string          `json:"departureTime"` // time of day, "HH:MM:SS"
	Duration       time.Duration   `json:"duration"`
	Price          decimal.Decimal `json:"price"`
	SeatsAvailable int             `json:"seatsAvailable"`
}
