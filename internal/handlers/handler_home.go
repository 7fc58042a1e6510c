package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hbenmansour/trip_reservation_app/internal/middleware"
)

// homeHandler serves the service banner and the health check.
type homeHandler struct {
	db Pinger
}

func newHomeHandler(db Pinger) *homeHandler {
	return &homeHandler{db: db}
}

// index godoc
// @Summary Service banner
// @Description Lists the routes this service exposes
// @Tags home
// @Produce json
// @Success 200 {object} map[string]any
// @Router / [get]
func (h *homeHandler) index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Service de réservation opérationnel",
		"routes":  []string{"/reservations", "/trajets", "/reservations/:id/paiements"},
	})
}

// health godoc
// @Summary Health check
// @Description Pings the backing store and reports service health
// @Tags home
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 500 {object} map[string]any
// @Router /health [get]
func (h *homeHandler) health(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Health check failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "unhealthy",
			"error":  "Database connection failed",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "reservation",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
