// README: HTTP router registration.
package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ldecaneva/NomadDay/internal/booking"
	"github.com/ldecaneva/NomadDay/internal/http/handlers"
	"github.com/ldecaneva/NomadDay/internal/http/middleware"
	"github.com/ldecaneva/NomadDay/internal/trip"
)

type RouterDeps struct {
	Planner  *trip.Planner
	Sessions handlers.SessionStore
	Hotels   *booking.HotelService
}

func NewRouter(deps RouterDeps) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}))

	scheduleHandler := handlers.NewScheduleHandler(deps.Planner, deps.Sessions)
	chatHandler := handlers.NewChatHandler(deps.Planner, deps.Sessions)
	bookingHandler := handlers.NewBookingHandler(deps.Hotels)

	api := r.Group("/api")
	{
		api.POST("/schedule", scheduleHandler.Generate)
		api.POST("/schedule/events", scheduleHandler.Events)
		api.POST("/schedule/export", scheduleHandler.Export)
		api.POST("/schedule/export/ics", scheduleHandler.ExportICS)
		api.POST("/chat", chatHandler.Chat)
		api.POST("/flights", bookingHandler.Flights)
		api.POST("/hotels", bookingHandler.Hotels)
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
