package http

import (
	"time"

	"leave-calendar-sync/internal/leave"
	"leave-calendar-sync/internal/model"
	"leave-calendar-sync/pkg/response"
)

// --- Request DTOs ---

type textReq struct {
	Text string `json:"text" binding:"required"`
}

type rangeReq struct {
	From string `form:"from"`
	To   string `form:"to"`
}

// --- Response DTOs ---

type syncResp struct {
	RunID        string              `json:"run_id"`
	StartedAt    response.DateTime   `json:"started_at"`
	FinishedAt   response.DateTime   `json:"finished_at"`
	Messages     int                 `json:"messages"`
	Lines        int                 `json:"lines"`
	Created      int                 `json:"created"`
	Skipped      int                 `json:"skipped"`
	Superseded   int                 `json:"superseded"`
	Archived     int                 `json:"archived"`
	Unrecognized int                 `json:"unrecognized"`
	Errors       []leave.ReportError `json:"errors"`
}

func newSyncResp(r leave.SyncReport) syncResp {
	return syncResp{
		RunID:        r.RunID,
		StartedAt:    response.DateTime(r.StartedAt),
		FinishedAt:   response.DateTime(r.FinishedAt),
		Messages:     r.Messages,
		Lines:        r.Lines,
		Created:      r.Created,
		Skipped:      r.Skipped,
		Superseded:   r.Superseded,
		Archived:     r.Archived,
		Unrecognized: r.Unrecognized,
		Errors:       r.Errors,
	}
}

type parseResp struct {
	Lines []leave.ParsedLine `json:"lines"`
}

type recordResp struct {
	ID     string        `json:"id"`
	Title  string        `json:"title"`
	Person string        `json:"person"`
	Date   response.Date `json:"date"`
	Kind   string        `json:"kind"`
	URL    string        `json:"url,omitempty"`
}

type recordsResp struct {
	From    response.Date `json:"from"`
	To      response.Date `json:"to"`
	Records []recordResp  `json:"records"`
}

func newRecordsResp(from, to time.Time, records []model.Record) recordsResp {
	out := make([]recordResp, len(records))
	for i, r := range records {
		out[i] = recordResp{
			ID:     r.ID,
			Title:  r.Title,
			Person: r.Person,
			Date:   response.Date(r.Date),
			Kind:   string(r.Kind),
			URL:    r.URL,
		}
	}
	return recordsResp{From: response.Date(from), To: response.Date(to), Records: out}
}
