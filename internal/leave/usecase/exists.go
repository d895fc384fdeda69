package usecase

import (
	"context"
	"time"

	"leave-calendar-sync/internal/leave"
	"leave-calendar-sync/internal/leave/repository"
	"leave-calendar-sync/internal/model"
)

// Exists reports whether an active record matches input.
func (uc *implUseCase) Exists(ctx context.Context, input leave.ExistsInput) (bool, error) {
	records, err := uc.records.Find(ctx, repository.FindOptions{
		Person: input.Person,
		Date:   input.Date,
		Kind:   input.Kind,
	})
	if err != nil {
		return false, err
	}
	for _, r := range records {
		if !r.Archived {
			return true, nil
		}
	}
	return false, nil
}

// existsInput narrows the duplicate check to the fields the policy keys on.
func (uc *implUseCase) existsInput(entry model.CreateEntry, day time.Time) leave.ExistsInput {
	in := leave.ExistsInput{Date: day}
	switch uc.dupKey {
	case leave.DuplicateKeyDate:
		// date only
	case leave.DuplicateKeyPersonDate:
		in.Person = entry.Person
	default:
		in.Person = entry.Person
		in.Kind = entry.Kind
	}
	return in
}
