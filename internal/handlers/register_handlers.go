package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/hbenmansour/trip_reservation_app/cmd/docs"
	portssvc "github.com/hbenmansour/trip_reservation_app/internal/core/ports/services"
	"github.com/hbenmansour/trip_reservation_app/internal/platform/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Pinger reports backing-store liveness for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	db Pinger,
) {
	home := newHomeHandler(db)
	r.GET("/health", home.health)
	r.GET("/", home.index)

	tripHandler := newTripHandler(services.Trip)
	r.GET("/trajets", tripHandler.listTrips)

	reservationHandler := newReservationHandler(services.Reservation)
	r.POST("/reservations", reservationHandler.createReservation)
	r.GET("/reservations", reservationHandler.listReservations)

	paymentHandler := newPaymentHandler(services.Payment)
	r.GET("/reservations/:id/paiements", paymentHandler.getPaymentSummary)
	r.POST("/reservations/:id/paiements", paymentHandler.createPayment)

	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
