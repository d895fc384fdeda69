package http

import (
	"github.com/gin-gonic/gin"

	"leave-calendar-sync/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Routes that
// write to the store sit behind the internal key; the calendar feed stays
// open for calendar clients that cannot send headers.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/sync", mw.Auth(), h.Sync)
	rg.POST("/messages", mw.Auth(), h.ProcessMessage)
	rg.POST("/parse", h.Parse)
	rg.GET("/records", h.Records)
	rg.GET("/calendar.ics", h.CalendarICS)
}
