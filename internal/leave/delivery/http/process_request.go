package http

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"leave-calendar-sync/internal/leave"
	"leave-calendar-sync/pkg/datemath"
)

// Default calendar window around today when from/to are omitted.
const (
	defaultPastDays   = 30
	defaultFutureDays = 90
)

// processTextReq binds a {"text": ...} body.
func (h *handler) processTextReq(c *gin.Context) (textReq, error) {
	var req textReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if strings.TrimSpace(req.Text) == "" {
		return req, leave.ErrEmptyText
	}
	return req, nil
}

// processRangeReq resolves the from/to query into a CalendarInput.
func (h *handler) processRangeReq(c *gin.Context) (leave.CalendarInput, error) {
	var req rangeReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return leave.CalendarInput{}, err
	}

	y, m, d := h.now().In(h.loc).Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	in := leave.CalendarInput{
		From: today.AddDate(0, 0, -defaultPastDays),
		To:   today.AddDate(0, 0, defaultFutureDays),
	}

	var err error
	if req.From != "" {
		if in.From, err = time.Parse(datemath.ISOLayout, req.From); err != nil {
			return in, errInvalidQueryDate
		}
	}
	if req.To != "" {
		if in.To, err = time.Parse(datemath.ISOLayout, req.To); err != nil {
			return in, errInvalidQueryDate
		}
	}
	return in, nil
}
