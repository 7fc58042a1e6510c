package models

import "time"

// Reservation is the database-layer representation of a reservation row.
type Reservation struct {
	ReservationID int64
	TripID        int64
	SeatCount     int
	Status        string
	CreatedAt     time.Time
}
