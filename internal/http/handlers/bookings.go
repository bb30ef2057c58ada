package handlers

import (
	"net/http"

	"railbook/internal/services"

	"github.com/gin-gonic/gin"
)

// CreateBooking handles POST /api/booking/create
func (a API) CreateBooking(c *gin.Context) {
	var req services.CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}
	booking, err := a.bookings(c).Create(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "booking created",
		"booking": booking,
	})
}

// CancelBooking handles POST /api/booking/:pnr/cancel
func (a API) CancelBooking(c *gin.Context) {
	booking, err := a.bookings(c).Cancel(c.Param("pnr"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "booking cancelled",
		"booking": booking,
	})
}
