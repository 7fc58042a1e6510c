package services

import (
	portsrepo "github.com/hbenmansour/trip_reservation_app/internal/core/ports/repositories"
	portssvc "github.com/hbenmansour/trip_reservation_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Trip = NewTripService(repos.TripRepo)
	container.Reservation = NewReservationService(repos.ReservationRepo)

	// Payment service reads reservations for existence and price context.
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.ReservationRepo)

	return container
}
