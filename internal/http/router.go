package api

import (
	"log"
	stdhttp "net/http"
	"time"

	"railbook/internal/config"
	h "railbook/internal/http/handlers"
	"railbook/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter mounts the public and admin route groups on a gin engine.
func NewRouter(env config.Env, a h.API) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     env.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/health", a.Health)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/stations/search", a.SearchStations)
		apiGroup.GET("/trains/search", a.SearchTrains)
		apiGroup.GET("/trains/:number", a.GetTrain)
		apiGroup.GET("/fare/calculate", a.CalculateFare)

		apiGroup.POST("/booking/create", a.CreateBooking)
		apiGroup.POST("/booking/:pnr/cancel", a.CancelBooking)
		apiGroup.GET("/pnr/:pnr", a.GetPNRStatus)
		apiGroup.GET("/pnr/:pnr/e-ticket", a.GetETicket)

		admin := apiGroup.Group("/admin", middleware.RequireAdmin(env.JWTSecret))
		{
			admin.GET("/availability", a.GetAvailability)
			admin.POST("/availability/refresh", a.RefreshAvailability)
		}
	}

	return r
}
