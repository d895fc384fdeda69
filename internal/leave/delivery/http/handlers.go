package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"leave-calendar-sync/pkg/response"
)

// Sync godoc
// @Summary     Run one sync pass
// @Description Reads the recent Slack window and reconciles it with the calendar store.
// @Tags        Leave
// @Produce     json
// @Success     200 {object} syncResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Security    InternalKey
// @Router      /api/v1/leave/sync [POST]
func (h *handler) Sync(c *gin.Context) {
	ctx := c.Request.Context()

	report := h.uc.RunOnce(ctx)
	h.l.Infof(ctx, "http sync: run=%s created=%d archived=%d errors=%d",
		report.RunID, report.Created, report.Archived, len(report.Errors))

	response.OK(c, newSyncResp(report))
}

// ProcessMessage godoc
// @Summary     Reconcile one message
// @Description Parses the posted message body and applies it to the calendar store.
// @Tags        Leave
// @Accept      json
// @Produce     json
// @Param       body body textReq true "Message body"
// @Success     200 {object} syncResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Security    InternalKey
// @Router      /api/v1/leave/messages [POST]
func (h *handler) ProcessMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTextReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, newSyncResp(h.uc.ProcessText(ctx, req.Text)))
}

// Parse godoc
// @Summary     Dry-run parse
// @Description Classifies each line of the text without touching the store.
// @Tags        Leave
// @Accept      json
// @Produce     json
// @Param       body body textReq true "Message body"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/leave/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	req, err := h.processTextReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, parseResp{Lines: h.uc.Preview(req.Text)})
}

// Records godoc
// @Summary     List leave records
// @Description Lists active records between from and to, inclusive. Defaults to 30 days back and 90 days ahead.
// @Tags        Leave
// @Produce     json
// @Param       from query string false "YYYY-MM-DD"
// @Param       to   query string false "YYYY-MM-DD"
// @Success     200 {object} recordsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/leave/records [GET]
func (h *handler) Records(c *gin.Context) {
	ctx := c.Request.Context()

	in, err := h.processRangeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	records, err := h.uc.Calendar(ctx, in)
	if err != nil {
		h.l.Errorf(ctx, "uc.Calendar: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, newRecordsResp(in.From, in.To, records))
}

// CalendarICS godoc
// @Summary     Export leave calendar
// @Description Renders active records between from and to as all-day iCalendar events.
// @Tags        Leave
// @Produce     text/calendar
// @Param       from query string false "YYYY-MM-DD"
// @Param       to   query string false "YYYY-MM-DD"
// @Success     200 {string} string "iCalendar document"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/leave/calendar.ics [GET]
func (h *handler) CalendarICS(c *gin.Context) {
	ctx := c.Request.Context()

	in, err := h.processRangeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	records, err := h.uc.Calendar(ctx, in)
	if err != nil {
		h.l.Errorf(ctx, "uc.Calendar: %v", err)
		h.writeError(c, err)
		return
	}

	filename := fmt.Sprintf("leave-%s.ics", in.From.Format("20060102"))
	response.ICS(c, filename, []byte(renderICS(records, h.now())))
}

func (h *handler) writeError(c *gin.Context, err error) {
	status := mapError(err)
	if status == http.StatusInternalServerError {
		response.InternalError(c, err)
		return
	}
	response.ErrorWithStatus(c, status, err)
}
