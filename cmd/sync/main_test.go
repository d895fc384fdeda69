package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"leave-calendar-sync/internal/leave"
)

func TestWriteReport(t *testing.T) {
	report := leave.SyncReport{
		RunID:     "run-1",
		StartedAt: time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC),
		Created:   2,
		Errors:    []leave.ReportError{{Op: "write", Date: "2024-07-18", Message: "boom"}},
	}

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		if err := writeReport(&buf, "yaml", report); err != nil {
			t.Fatalf("writeReport: %v", err)
		}
		if !strings.Contains(buf.String(), "run_id: run-1") {
			t.Errorf("yaml output = %q", buf.String())
		}

		var got leave.SyncReport
		if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("yaml decode: %v", err)
		}
		if got.Created != 2 || len(got.Errors) != 1 || got.Errors[0].Date != "2024-07-18" {
			t.Errorf("decoded = %+v", got)
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := writeReport(&buf, "json", report); err != nil {
			t.Fatalf("writeReport: %v", err)
		}

		var got map[string]any
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("json decode: %v", err)
		}
		if got["run_id"] != "run-1" || got["created"] != float64(2) {
			t.Errorf("decoded = %v", got)
		}
	})
}
