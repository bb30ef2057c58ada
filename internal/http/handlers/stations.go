package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SearchStations handles GET /api/stations/search?query=...
func (a API) SearchStations(c *gin.Context) {
	stations, err := a.timetable().SearchStations(c.Query("query"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stations": stations})
}
