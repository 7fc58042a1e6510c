package dto

import (
	"time"

	"github.com/hbenmansour/trip_reservation_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateReservationRequest carries the reservation creation input. Both
// fields are mandatory; pointers distinguish "absent" from a zero value so
// that a present-but-invalid seat count reaches the service's own check.
type CreateReservationRequest struct {
	Seats  *int   `json:"seats" binding:"required"`
	TripID *int64 `json:"trajet_id" binding:"required"`
}

// ReservationResponse is the wire representation of a reservation enriched
// with its trip's route, date and price.
type ReservationResponse struct {
	ID              int64           `json:"id"`
	TripID          int64           `json:"trajet_id"`
	NombrePlaces    int             `json:"nombre_places"`
	Statut          string          `json:"statut"`
	DateReservation time.Time       `json:"date_reservation"`
	Depart          string          `json:"depart"`
	Destination     string          `json:"destination"`
	DateDepart      string          `json:"date_depart"`
	Prix            decimal.Decimal `json:"prix"`
}

// ToReservationResponse maps a joined reservation onto the wire shape.
func ToReservationResponse(r domain.ReservationWithTrip) ReservationResponse {
	return ReservationResponse{
		ID:              r.ReservationID,
		TripID:          r.TripID,
		NombrePlaces:    r.SeatCount,
		Statut:          string(r.Status),
		DateReservation: r.CreatedAt,
		Depart:          r.Origin,
		Destination:     r.Destination,
		DateDepart:      r.DepartureDate.Format("2006-01-02"),
		Prix:            r.Price,
	}
}

// ToReservationResponses maps a slice of joined reservations onto the wire shape.
func ToReservationResponses(rs []domain.ReservationWithTrip) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, ToReservationResponse(r))
	}
	return out
}
