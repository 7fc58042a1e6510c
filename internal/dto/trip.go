package dto

import (
	"github.com/hbenmansour/trip_reservation_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TripResponse is the wire representation of a trip. Field names follow the
// service's published contract (the original French API surface).
type TripResponse struct {
	ID                int64           `json:"id"`
	Depart            string          `json:"depart"`
	Destination       string          `json:"destination"`
	DateDepart        string          `json:"date_depart"`
	HeureDepart       string          `json:"heure_depart"`
	DureeVoyage       string          `json:"duree_voyage"`
	Prix              decimal.Decimal `json:"prix"`
	PlacesDisponibles int             `json:"places_disponibles"`
}

// ToTripResponse maps a domain trip onto the wire shape.
func ToTripResponse(t domain.Trip) TripResponse {
	return TripResponse{
		ID:                t.TripID,
		Depart:            t.Origin,
		Destination:       t.Destination,
		DateDepart:        t.DepartureDate.Format("2006-01-02"),
		HeureDepart:       t.DepartureTime,
		DureeVoyage:       t.Duration.String(),
		Prix:              t.Price,
		PlacesDisponibles: t.SeatsAvailable,
	}
}

// ToTripResponses maps a slice of domain trips onto the wire shape.
func ToTripResponses(trips []domain.Trip) []TripResponse {
	out := make([]TripResponse, 0, len(trips))
	for _, t := range trips {
		out = append(out, ToTripResponse(t))
	}
	return out
}
