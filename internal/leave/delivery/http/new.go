package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"leave-calendar-sync/internal/leave"
	pkgLog "leave-calendar-sync/pkg/log"
)

// Handler is the public interface for the leave HTTP delivery layer.
type Handler interface {
	Sync(c *gin.Context)
	ProcessMessage(c *gin.Context)
	Parse(c *gin.Context)
	Records(c *gin.Context)
	CalendarICS(c *gin.Context)
}

type handler struct {
	l   pkgLog.Logger
	uc  leave.UseCase
	loc *time.Location
	now func() time.Time
}

// New creates a new HTTP handler for the leave domain. loc decides what
// "today" is for the default calendar window.
func New(l pkgLog.Logger, uc leave.UseCase, loc *time.Location) Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &handler{
		l:   l,
		uc:  uc,
		loc: loc,
		now: time.Now,
	}
}
