package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/hbenmansour/trip_reservation_app/internal/apperrors"
	portssvc "github.com/hbenmansour/trip_reservation_app/internal/core/ports/services"
	"github.com/hbenmansour/trip_reservation_app/internal/dto"
)

// paymentHandler handles HTTP requests related to payments.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(paymentService portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: paymentService}
}

// reservationIDParam parses the :id path parameter. A malformed id behaves
// like an unknown reservation, matching the store's view of it.
func reservationIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Réservation non trouvée"})
		return 0, false
	}
	return id, true
}

// getPaymentSummary godoc
// @Summary Payment summary for a reservation
// @Description Returns the reservation, its payments and the derived totals
// @Tags payments
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} dto.PaymentSummaryResponse
// @Failure 404 {object} map[string]any "unknown reservation"
// @Failure 500 {object} map[string]any
// @Router /reservations/{id}/paiements [get]
func (h *paymentHandler) getPaymentSummary(c *gin.Context) {
	reservationID, ok := reservationIDParam(c)
	if !ok {
		return
	}

	summary, err := h.paymentService.GetPaymentSummary(c.Request.Context(), reservationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Réservation non trouvée"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erreur serveur"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentSummaryResponse(*summary))
}

// createPayment godoc
// @Summary Record a payment
// @Description Persists a completed payment against a reservation
// @Tags payments
// @Accept json
// @Produce json
// @Param id path int true "Reservation ID"
// @Param payment body dto.CreatePaymentRequest true "Amount and payment method"
// @Success 201 {object} map[string]any "success flag and created payment"
// @Failure 400 {object} map[string]any "missing or invalid fields"
// @Failure 404 {object} map[string]any "unknown reservation"
// @Failure 500 {object} map[string]any
// @Router /reservations/{id}/paiements [post]
func (h *paymentHandler) createPayment(c *gin.Context) {
	reservationID, ok := reservationIDParam(c)
	if !ok {
		return
	}

	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		msg := "Requête invalide"
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			msg = "Montant et mode de paiement requis"
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": msg})
		return
	}

	payment, err := h.paymentService.RecordPayment(c.Request.Context(), reservationID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Le montant doit être positif"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Réservation non trouvée"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erreur lors du paiement"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "paiement": dto.ToPaymentResponse(*payment)})
}
