package usecase_test

import (
	"context"
	"errors"
	"testing"

	"leave-calendar-sync/internal/leave"
	"leave-calendar-sync/internal/leave/usecase"
	"leave-calendar-sync/internal/model"
)

func TestWrite(t *testing.T) {
	ctx := context.Background()

	t.Run("Range makes one attempt per day", func(t *testing.T) {
		records := &mockRecords{}
		uc := newUseCase(t, records, nil, usecase.Options{})

		res := uc.Write(ctx, model.CreateEntry{Person: "Kim", Kind: model.KindFullDay, Dates: span(18, 20)})
		if res.Err != nil {
			t.Fatalf("unexpected error: %v", res.Err)
		}
		if records.creates != 3 {
			t.Errorf("expected 3 creation attempts, got %d", records.creates)
		}
		if res.Count(leave.OutcomeCreated) != 3 {
			t.Errorf("expected 3 created days, got %+v", res.Days)
		}
		if records.records[0].Title != "[연차] Kim" {
			t.Errorf("unexpected title %q", records.records[0].Title)
		}
	})

	t.Run("Duplicate day is skipped without a write", func(t *testing.T) {
		records := &mockRecords{records: []model.Record{
			{ID: "old", Person: "Kim", Date: day(18), Kind: model.KindFullDay},
		}}
		uc := newUseCase(t, records, nil, usecase.Options{})

		res := uc.Write(ctx, model.CreateEntry{Person: "Kim", Kind: model.KindFullDay, Dates: model.SingleDay(day(18))})
		if len(res.Days) != 1 || res.Days[0].Outcome != leave.OutcomeSkippedDuplicate {
			t.Fatalf("expected skipped duplicate, got %+v", res.Days)
		}
		if records.creates != 0 {
			t.Errorf("expected no write, got %d", records.creates)
		}
	})

	t.Run("Archived record does not count as duplicate", func(t *testing.T) {
		records := &mockRecords{records: []model.Record{
			{ID: "old", Person: "Kim", Date: day(18), Kind: model.KindFullDay, Archived: true},
		}}
		uc := newUseCase(t, records, nil, usecase.Options{})

		res := uc.Write(ctx, model.CreateEntry{Person: "Kim", Kind: model.KindFullDay, Dates: model.SingleDay(day(18))})
		if res.Count(leave.OutcomeCreated) != 1 {
			t.Errorf("expected a new record, got %+v", res.Days)
		}
	})

	t.Run("Store failure stays local to its day", func(t *testing.T) {
		records := &mockRecords{createErr: map[string]error{"2024-07-19": errors.New("boom")}}
		uc := newUseCase(t, records, nil, usecase.Options{})

		res := uc.Write(ctx, model.CreateEntry{Person: "Kim", Kind: model.KindFullDay, Dates: span(18, 20)})
		if records.creates != 3 {
			t.Errorf("expected all 3 days attempted, got %d", records.creates)
		}
		if res.Count(leave.OutcomeCreated) != 2 || res.Count(leave.OutcomeFailed) != 1 {
			t.Errorf("unexpected outcomes: %+v", res.Days)
		}
		if !res.Days[1].Date.Equal(day(19)) || res.Days[1].Err == nil {
			t.Errorf("expected 19th to fail, got %+v", res.Days[1])
		}
	})

	t.Run("Failed duplicate check skips the write", func(t *testing.T) {
		records := &mockRecords{findErr: map[string]error{"2024-07-18": errors.New("timeout")}}
		uc := newUseCase(t, records, nil, usecase.Options{})

		res := uc.Write(ctx, model.CreateEntry{Person: "Kim", Kind: model.KindFullDay, Dates: model.SingleDay(day(18))})
		if res.Days[0].Outcome != leave.OutcomeFailed {
			t.Errorf("expected failed, got %+v", res.Days[0])
		}
		if records.creates != 0 {
			t.Errorf("expected no write, got %d", records.creates)
		}
	})

	t.Run("Rejected entries", func(t *testing.T) {
		records := &mockRecords{}
		uc := newUseCase(t, records, nil, usecase.Options{})

		res := uc.Write(ctx, model.CreateEntry{Person: " ", Kind: model.KindFullDay, Dates: model.SingleDay(day(18))})
		if !errors.Is(res.Err, leave.ErrMissingPerson) {
			t.Errorf("expected ErrMissingPerson, got %v", res.Err)
		}
		res = uc.Write(ctx, model.CreateEntry{Person: "Kim", Kind: model.KindFullDay, Dates: span(20, 18)})
		if !errors.Is(res.Err, leave.ErrInvertedRange) {
			t.Errorf("expected ErrInvertedRange, got %v", res.Err)
		}
		if records.finds != 0 || records.creates != 0 {
			t.Errorf("expected no store calls, got finds=%d creates=%d", records.finds, records.creates)
		}
	})
}

func TestDuplicateKeyPolicy(t *testing.T) {
	existing := model.Record{ID: "lee", Person: "Lee", Date: day(18), Kind: model.KindFullDay}
	kimAfternoon := model.CreateEntry{Person: "Kim", Kind: model.KindAfternoonHalf, Dates: model.SingleDay(day(18))}
	leeMorning := model.CreateEntry{Person: "Lee", Kind: model.KindMorningHalf, Dates: model.SingleDay(day(18))}

	tests := []struct {
		name  string
		key   leave.DuplicateKey
		entry model.CreateEntry
		want  leave.DayOutcome
	}{
		{name: "Date blocks another person", key: leave.DuplicateKeyDate, entry: kimAfternoon, want: leave.OutcomeSkippedDuplicate},
		{name: "Person date allows another person", key: leave.DuplicateKeyPersonDate, entry: kimAfternoon, want: leave.OutcomeCreated},
		{name: "Person date blocks another kind", key: leave.DuplicateKeyPersonDate, entry: leeMorning, want: leave.OutcomeSkippedDuplicate},
		{name: "Default allows another kind", key: "", entry: leeMorning, want: leave.OutcomeCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := &mockRecords{records: []model.Record{existing}}
			uc := newUseCase(t, records, nil, usecase.Options{DuplicateKey: tt.key})

			res := uc.Write(context.Background(), tt.entry)
			if got := res.Days[0].Outcome; got != tt.want {
				t.Errorf("outcome = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestExists(t *testing.T) {
	records := &mockRecords{records: []model.Record{
		{ID: "a", Person: "Kim", Date: day(18), Kind: model.KindFullDay},
	}}
	uc := newUseCase(t, records, nil, usecase.Options{})
	ctx := context.Background()

	tests := []struct {
		name  string
		input leave.ExistsInput
		want  bool
	}{
		{name: "Exact", input: leave.ExistsInput{Date: day(18), Person: "Kim", Kind: model.KindFullDay}, want: true},
		{name: "Date only", input: leave.ExistsInput{Date: day(18)}, want: true},
		{name: "Other kind", input: leave.ExistsInput{Date: day(18), Person: "Kim", Kind: model.KindMorningHalf}, want: false},
		{name: "Other day", input: leave.ExistsInput{Date: day(19), Person: "Kim"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.Exists(ctx, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Exists = %v, want %v", got, tt.want)
			}
		})
	}
}
