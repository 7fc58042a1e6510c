package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/hbenmansour/trip_reservation_app/internal/apperrors"
	portssvc "github.com/hbenmansour/trip_reservation_app/internal/core/ports/services"
	"github.com/hbenmansour/trip_reservation_app/internal/dto"
)

// reservationHandler handles HTTP requests related to reservations.
type reservationHandler struct {
	reservationService portssvc.ReservationSvcFacade
}

func newReservationHandler(reservationService portssvc.ReservationSvcFacade) *reservationHandler {
	return &reservationHandler{reservationService: reservationService}
}

// createReservation godoc
// @Summary Create a reservation
// @Description Atomically claims seats on a trip and persists the reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Param reservation body dto.CreateReservationRequest true "Seats and trip id"
// @Success 201 {object} map[string]any "success flag and created reservation"
// @Failure 400 {object} map[string]any "missing or invalid fields"
// @Failure 404 {object} map[string]any "unknown trip"
// @Failure 409 {object} map[string]any "not enough seats available"
// @Failure 500 {object} map[string]any
// @Router /reservations [post]
func (h *reservationHandler) createReservation(c *gin.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		msg := "Requête invalide"
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			msg = "Les champs seats et trajet_id sont obligatoires"
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
		return
	}

	reservation, err := h.reservationService.CreateReservation(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Le nombre de places doit être au moins 1"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Trajet non trouvé"})
		case errors.Is(err, apperrors.ErrInsufficientCapacity):
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": "Nombre de places insuffisant"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erreur serveur lors de la création de la réservation"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "reservation": dto.ToReservationResponse(*reservation)})
}

// listReservations godoc
// @Summary List reservations
// @Description Returns all reservations joined with trip context, newest first
// @Tags reservations
// @Produce json
// @Success 200 {object} map[string]any "success flag and reservation list"
// @Failure 500 {object} map[string]any
// @Router /reservations [get]
func (h *reservationHandler) listReservations(c *gin.Context) {
	reservations, err := h.reservationService.ListReservations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erreur serveur"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": dto.ToReservationResponses(reservations)})
}
