package slack

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"leave-calendar-sync/internal/leave"
	"leave-calendar-sync/internal/webhook"
	pkgLog "leave-calendar-sync/pkg/log"
)

var errMalformedPayload = errors.New("malformed slack payload")

// Handler is the interface for the Slack Events delivery handler.
type Handler interface {
	HandleEvents(c *gin.Context)
}

type handler struct {
	l         pkgLog.Logger
	uc        leave.UseCase
	security  *webhook.SecurityValidator
	channelID string
	seen      *expirable.LRU[string, struct{}]
}

// New creates a new Slack Events handler. An empty channelID accepts
// messages from every channel the app is in.
func New(l pkgLog.Logger, uc leave.UseCase, security *webhook.SecurityValidator, channelID string) Handler {
	return &handler{
		l:         l,
		uc:        uc,
		security:  security,
		channelID: channelID,
		// Slack redelivers an event when the ack is slow; remember ids for
		// longer than its retry schedule.
		seen: expirable.NewLRU[string, struct{}](1000, nil, time.Hour),
	}
}
