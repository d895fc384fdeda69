package slack

import (
	"context"
	"encoding/json"
	"html"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/slack-go/slack/slackevents"

	pkgLog "leave-calendar-sync/pkg/log"
	pkgResponse "leave-calendar-sync/pkg/response"
)

const rateLimitSource = "slack"

// HandleEvents processes Slack Events API callbacks. Messages are
// acknowledged immediately and reconciled in a background goroutine;
// Slack expects an answer within 3 seconds.
func (h *handler) HandleEvents(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "slack handler: %v", err)
		pkgResponse.Forbidden(c)
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "slack handler: failed to read body: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if err := h.security.ValidateSlackSignature(c.Request.Header, body); err != nil {
		h.l.Warnf(ctx, "slack handler: signature verification failed: %v", err)
		pkgResponse.Unauthorized(c)
		return
	}

	if err := h.security.CheckRateLimit(rateLimitSource); err != nil {
		h.l.Warnf(ctx, "slack handler: %v", err)
		pkgResponse.TooManyRequests(c)
		return
	}

	if !json.Valid(body) {
		h.l.Errorf(ctx, "slack handler: malformed payload")
		pkgResponse.Error(c, errMalformedPayload, nil)
		return
	}

	// The signing secret already authenticated the request, so the legacy
	// verification token is not checked.
	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		h.l.Infof(ctx, "slack handler: unsupported event: %v", err)
		pkgResponse.OK(c, statusIgnored)
		return
	}

	switch event.Type {
	case slackevents.URLVerification:
		challenge, _ := event.Data.(*slackevents.EventsAPIURLVerificationEvent)
		if challenge == nil {
			pkgResponse.Error(c, errMalformedPayload, nil)
			return
		}
		c.JSON(http.StatusOK, gin.H{"challenge": challenge.Challenge})
		return
	case slackevents.CallbackEvent:
	default:
		pkgResponse.OK(c, statusIgnored)
		return
	}

	msg, _ := event.InnerEvent.Data.(*slackevents.MessageEvent)
	if !isUserMessage(msg) || (h.channelID != "" && msg.Channel != h.channelID) {
		pkgResponse.OK(c, statusIgnored)
		return
	}

	if cb, ok := event.Data.(*slackevents.EventsAPICallbackEvent); ok && cb.EventID != "" {
		if _, dup := h.seen.Get(cb.EventID); dup {
			h.l.Infof(ctx, "slack handler: duplicate delivery of %s", cb.EventID)
			pkgResponse.OK(c, statusDuplicate)
			return
		}
		h.seen.Add(cb.EventID, struct{}{})
	}

	// Detach from the request context, which is cancelled after the ack.
	bg := pkgLog.WithRequestID(context.Background(), pkgLog.RequestIDFromContext(ctx))
	go h.processText(bg, html.UnescapeString(msg.Text))

	pkgResponse.OK(c, statusAccepted)
}

func (h *handler) processText(ctx context.Context, text string) {
	report := h.uc.ProcessText(ctx, text)
	for _, e := range report.Errors {
		h.l.Warnf(ctx, "slack handler: run=%s %s failed on %q: %s", report.RunID, e.Op, e.Line, e.Message)
	}
}
