package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/hbenmansour/trip_reservation_app/internal/core/ports/services"
	"github.com/hbenmansour/trip_reservation_app/internal/dto"
)

// tripHandler handles HTTP requests related to the trip catalog.
type tripHandler struct {
	tripService portssvc.TripSvcFacade
}

func newTripHandler(tripService portssvc.TripSvcFacade) *tripHandler {
	return &tripHandler{tripService: tripService}
}

// listTrips godoc
// @Summary List trips
// @Description Returns all trips ordered by departure date, descending
// @Tags trips
// @Produce json
// @Success 200 {object} map[string]any "success flag and trip list"
// @Failure 500 {object} map[string]any
// @Router /trajets [get]
func (h *tripHandler) listTrips(c *gin.Context) {
	trips, err := h.tripService.ListTrips(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erreur serveur"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": dto.ToTripResponses(trips)})
}
