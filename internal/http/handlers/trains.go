package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SearchTrains handles GET /api/trains/search?source=&destination=&journey_date=&class_code=
func (a API) SearchTrains(c *gin.Context) {
	offers, err := a.timetable().SearchTrains(
		c.Query("source"),
		c.Query("destination"),
		c.Query("journey_date"),
		c.Query("class_code"),
	)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trains": offers, "count": len(offers)})
}

// GetTrain handles GET /api/trains/:number
func (a API) GetTrain(c *gin.Context) {
	train, err := a.timetable().GetTrain(c.Param("number"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, train)
}
