// Package schedule answers whether a hall slot collides with already scheduled showtimes.
package schedule

import (
	"github.com/metinatakli/cinex/internal/domain"
)

// Overlaps reports whether two half-open intervals on the same hall share an instant.
// Touching intervals (a.End == b.Start) do not overlap.
func Overlaps(a, b domain.Interval) bool {
	if a.HallID != b.HallID {
		return false
	}

	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// Guard checks candidate intervals against a hall's existing showtimes. It has no side effects.
type Guard struct{}

// Check returns the first scheduled showtime interval that collides with candidate.
// Showtimes that are not scheduled never conflict, and excludeID skips the showtime
// being updated. A candidate whose start is not before its end fails validation.
func (Guard) Check(candidate domain.Interval, existing []domain.Showtime, excludeID int) (*domain.Interval, error) {
	if !candidate.Valid() {
		return nil, domain.NewValidationError("start time must be before end time")
	}

	for i := range existing {
		s := &existing[i]

		if s.Status != domain.ShowtimeScheduled || (excludeID != 0 && s.ID == excludeID) {
			continue
		}

		other := s.Interval()
		if Overlaps(candidate, other) {
			return &other, nil
		}
	}

	return nil, nil
}

// Ensure is Check folded into one error: schedule_conflict when a collision exists.
func (g Guard) Ensure(candidate domain.Interval, existing []domain.Showtime, excludeID int) error {
	conflict, err := g.Check(candidate, existing, excludeID)
	if err != nil {
		return err
	}

	if conflict != nil {
		return domain.NewScheduleConflictError(*conflict)
	}

	return nil
}
