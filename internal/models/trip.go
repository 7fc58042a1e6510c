package models

import (
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// Trip is the database-layer representation of a trip row. Date, time-of-day
// and interval columns scan into pgtype values; conversion to the domain
// shape happens in the repository.
type Trip struct {
	TripID         int64
	Origin         string
	Destination    string
	DepartureDate  pgtype.Date
	DepartureTime  pgtype.Time
	Duration       pgtype.Interval
	Price          decimal.Decimal
	SeatsAvailable int
}
