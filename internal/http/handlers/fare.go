package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CalculateFare handles GET /api/fare/calculate?train_number=&source=&destination=&class_code=
func (a API) CalculateFare(c *gin.Context) {
	quote, err := a.timetable().QuoteFare(
		c.Query("train_number"),
		c.Query("source"),
		c.Query("destination"),
		c.Query("class_code"),
	)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}
