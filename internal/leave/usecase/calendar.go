package usecase

import (
	"context"
	"fmt"

	"leave-calendar-sync/internal/leave"
	"leave-calendar-sync/internal/leave/repository"
	"leave-calendar-sync/internal/model"
)

// Calendar lists active records dated within [From, To].
func (uc *implUseCase) Calendar(ctx context.Context, input leave.CalendarInput) ([]model.Record, error) {
	if input.From.After(input.To) {
		return nil, fmt.Errorf("%w: %s~%s", leave.ErrInvertedRange, model.FormatDate(input.From), model.FormatDate(input.To))
	}

	records, err := uc.records.List(ctx, repository.ListOptions{From: input.From, To: input.To})
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return records, nil
}
