package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (a API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}
