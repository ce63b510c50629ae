package handlers

import (
	"net/http"

	"roadbuddy/internal/domain/models"
	"roadbuddy/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/trips
func (h *Handler) ListTrips(c *gin.Context) {
	trips := h.tripService(c).List()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"trips":   trips,
		"count":   len(trips),
	})
}

// GET /api/trips/search?q=&from=&to=
func (h *Handler) SearchTrips(c *gin.Context) {
	q := services.TripQuery{
		Text: c.Query("q"),
		From: c.Query("from"),
		To:   c.Query("to"),
	}.Normalize()

	trips := h.tripService(c).Search(q)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"trips":   trips,
		"count":   len(trips),
		"query":   q,
	})
}

// POST /api/trips
func (h *Handler) CreateTrip(c *gin.Context) {
	var in models.TripInput
	if !BindJSONOrError(c, &in, false) {
		return
	}

	trip, err := h.tripService(c).Create(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Trip created successfully",
		"trip":    trip,
	})
}

// GET /api/trips/:id
func (h *Handler) GetTrip(c *gin.Context) {
	trip, err := h.tripService(c).Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "trip": trip})
}
