package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetPNRStatus handles GET /api/pnr/:pnr
func (a API) GetPNRStatus(c *gin.Context) {
	status, err := a.bookings(c).GetByPNR(c.Param("pnr"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// GetETicket handles GET /api/pnr/:pnr/e-ticket
func (a API) GetETicket(c *gin.Context) {
	pdfBytes, filename, err := a.docs(c).GenerateETicket(c.Param("pnr"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
