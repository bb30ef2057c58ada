package handlers

import (
	"net/http"

	"railbook/internal/domain/models"
	"railbook/internal/http/middleware"
	"railbook/internal/utils"

	"github.com/gin-gonic/gin"
)

// GetAvailability handles GET /api/admin/availability. It exposes the raw
// seat counters for one train/date/class, waiting list included.
func (a API) GetAvailability(c *gin.Context) {
	key := models.AvailabilityKey{
		TrainNumber: c.Query("train_number"),
		JourneyDate: c.Query("date"),
		ClassCode:   c.Query("class_code"),
	}
	if key.TrainNumber == "" || key.JourneyDate == "" || key.ClassCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "train_number, date and class_code are required"})
		return
	}
	avail, err := a.Store.Availability.Get(key)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, avail)
}

// RefreshAvailability handles POST /api/admin/availability/refresh. It
// re-runs the horizon sweep so new dates get their counters immediately
// instead of waiting for the daily tick.
func (a API) RefreshAvailability(c *gin.Context) {
	if a.Refresh == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "refresh not configured"})
		return
	}
	if err := a.Refresh(); err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "admin", "refresh_availability", "horizon sweep completed")
	c.JSON(http.StatusOK, gin.H{"message": "availability refreshed"})
}
