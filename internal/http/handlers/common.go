package handlers

import (
	"net/http"

	"railbook/internal/http/middleware"
	"railbook/internal/services"
	"railbook/internal/store"

	"github.com/gin-gonic/gin"
)

// API bundles the shared dependencies behind every route. Services are
// built per request so the request id flows into their log lines.
type API struct {
	Store       store.Store
	Payments    *services.PaymentService
	WaitlistCap int

	// Refresh extends seat availability to the full booking horizon.
	// Wired to the seeder so the admin surface does not import it.
	Refresh func() error
}

func (a API) timetable() services.TimetableService {
	return services.TimetableService{Store: a.Store}
}

func (a API) bookings(c *gin.Context) services.BookingService {
	return services.BookingService{
		Store:       a.Store,
		Payments:    a.Payments,
		WaitlistCap: a.WaitlistCap,
		RequestID:   middleware.GetRequestID(c),
	}
}

func (a API) docs(c *gin.Context) services.DocsService {
	return services.DocsService{
		Store:     a.Store,
		RequestID: middleware.GetRequestID(c),
	}
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return false
	}
	return true
}
