package handlers

import (
	"net/http"

	"roadbuddy/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// POST /api/trips/:id/book
func (h *Handler) BookTrip(c *gin.Context) {
	var in models.BookingInput
	if !BindJSONOrError(c, &in, true) {
		return
	}

	booking, err := h.bookingService(c).BookTrip(c.Param("id"), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Trip booked successfully",
		"booking": booking,
	})
}

// GET /api/users/:id/bookings
func (h *Handler) GetUserBookings(c *gin.Context) {
	bookings := h.bookingService(c).UserBookings(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"bookings": bookings,
		"count":    len(bookings),
	})
}

// GET /api/bookings/:id
func (h *Handler) GetBooking(c *gin.Context) {
	booking, err := h.bookingService(c).GetBooking(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": booking})
}

// GET /api/bookings/:id/ticket returns the e-ticket PDF inline.
func (h *Handler) GetBookingTicket(c *gin.Context) {
	pdf, filename, err := h.ticketService(c).GenerateTicket(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
