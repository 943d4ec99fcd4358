package service

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/metinatakli/cinex/internal/domain"
	"github.com/metinatakli/cinex/internal/schedule"
	"github.com/shopspring/decimal"
)

type CreateShowtimeInput struct {
	MovieID    int
	HallID     int
	CinemaID   int
	StartTime  time.Time
	EndTime    *time.Time
	Price      decimal.Decimal
	TotalSeats int
}

// Scheduler owns the showtime lifecycle. It is the only component that creates, reshapes
// or retires showtimes, and it never touches committed seat bookings.
type Scheduler struct {
	store   domain.Store
	catalog domain.CatalogRepository
	seats   *SeatInventory
	guard   schedule.Guard
	logger  *slog.Logger
	now     func() time.Time
}

func NewScheduler(
	store domain.Store,
	catalog domain.CatalogRepository,
	seats *SeatInventory,
	logger *slog.Logger,
	now func() time.Time) *Scheduler {

	return &Scheduler{
		store:   store,
		catalog: catalog,
		seats:   seats,
		logger:  logger,
		now:     now,
	}
}

func (s *Scheduler) Create(ctx context.Context, actor domain.Actor, input CreateShowtimeInput) (*domain.Showtime, error) {
	if err := requireAdmin(actor, "schedule showtimes"); err != nil {
		return nil, err
	}

	now := s.now()

	switch {
	case input.Price.IsNegative():
		return nil, domain.NewValidationError("price must not be negative")
	case input.TotalSeats < 1:
		return nil, domain.NewValidationError("total seats must be at least 1")
	case !input.StartTime.After(now):
		return nil, domain.NewValidationError("start time must be in the future")
	}

	movie, err := s.catalog.GetMovie(ctx, input.MovieID)
	if err != nil {
		return nil, err
	}

	hall, err := s.catalog.GetHall(ctx, input.HallID)
	if err != nil {
		return nil, err
	}

	if _, err := s.catalog.GetCinema(ctx, input.CinemaID); err != nil {
		return nil, err
	}

	if hall.CinemaID != input.CinemaID {
		return nil, domain.NewValidationError("hall %d does not belong to cinema %d", hall.ID, input.CinemaID)
	}

	end := input.StartTime.Add(movie.Runtime())
	if input.EndTime != nil {
		end = *input.EndTime
	}

	if !input.StartTime.Before(end) {
		return nil, domain.NewValidationError("start time must be before end time")
	}

	if capacity := hall.Capacity(); input.TotalSeats > capacity {
		return nil, domain.NewCapacityExceededError(input.TotalSeats, capacity)
	}

	showtime := &domain.Showtime{
		MovieID:        movie.ID,
		HallID:         hall.ID,
		CinemaID:       input.CinemaID,
		StartTime:      input.StartTime,
		EndTime:        end,
		Status:         domain.ShowtimeScheduled,
		TotalSeats:     input.TotalSeats,
		SeatsAvailable: input.TotalSeats,
		BookedSeats:    []string{},
		Price:          input.Price,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = runInTx(ctx, s.store, func(tx domain.Tx) error {
		if err := s.checkOverlap(ctx, tx, showtime); err != nil {
			return err
		}

		return tx.Showtimes().Create(ctx, showtime)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("showtime scheduled",
		"showtime_id", showtime.ID,
		"hall_id", showtime.HallID,
		"start", showtime.StartTime,
		"end", showtime.EndTime)

	if s.seats != nil {
		s.seats.initializeQuietly(ctx, showtime, hall)
	}

	return showtime, nil
}

func (s *Scheduler) checkOverlap(ctx context.Context, tx domain.Tx, showtime *domain.Showtime) error {
	existing, err := tx.Showtimes().ListScheduledByHall(ctx, showtime.HallID, showtime.StartTime, showtime.EndTime)
	if err != nil {
		return err
	}

	return s.guard.Ensure(showtime.Interval(), existing, showtime.ID)
}

// Update applies patch to a scheduled showtime. Changing the slot or the hall re-runs the
// overlap check against every other showtime of the target hall.
func (s *Scheduler) Update(ctx context.Context, actor domain.Actor, id int, patch domain.ShowtimePatch) (*domain.Showtime, error) {
	if err := requireAdmin(actor, "update showtimes"); err != nil {
		return nil, err
	}

	var (
		updated     *domain.Showtime
		hallChanged bool
		hall        *domain.Hall
	)

	now := s.now()

	err := runInTx(ctx, s.store, func(tx domain.Tx) error {
		showtime, err := tx.Showtimes().GetForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if showtime.Status.Terminal() {
			return domain.NewImmutableStateError(showtime.Status)
		}

		slotChanged := false

		if patch.MovieID != nil && *patch.MovieID != showtime.MovieID {
			movie, err := s.catalog.GetMovie(ctx, *patch.MovieID)
			if err != nil {
				return err
			}

			showtime.MovieID = movie.ID
			if patch.EndTime == nil {
				start := showtime.StartTime
				if patch.StartTime != nil {
					start = *patch.StartTime
				}
				showtime.EndTime = start.Add(movie.Runtime())
				slotChanged = true
			}
		}

		if patch.StartTime != nil && !patch.StartTime.Equal(showtime.StartTime) {
			if !patch.StartTime.After(now) {
				return domain.NewValidationError("start time must be in the future")
			}

			if patch.EndTime == nil && patch.MovieID == nil {
				// keep the running time when only the start moves
				showtime.EndTime = patch.StartTime.Add(showtime.EndTime.Sub(showtime.StartTime))
			}
			showtime.StartTime = *patch.StartTime
			slotChanged = true
		}

		if patch.EndTime != nil {
			showtime.EndTime = *patch.EndTime
			slotChanged = true
		}

		hall, err = s.catalog.GetHall(ctx, showtime.HallID)
		if err != nil {
			return err
		}

		if patch.HallID != nil && *patch.HallID != showtime.HallID {
			hall, err = s.catalog.GetHall(ctx, *patch.HallID)
			if err != nil {
				return err
			}

			if hall.CinemaID != showtime.CinemaID {
				return domain.NewValidationError("hall %d does not belong to cinema %d", hall.ID, showtime.CinemaID)
			}

			active := hall.ActiveLabels()
			for _, label := range showtime.BookedSeats {
				if !slices.Contains(active, label) {
					return domain.NewValidationError("booked seat %s does not exist in hall %d", label, hall.ID)
				}
			}

			showtime.HallID = hall.ID
			hallChanged = true
			slotChanged = true
		}

		if patch.TotalSeats != nil {
			if *patch.TotalSeats < 1 {
				return domain.NewValidationError("total seats must be at least 1")
			}

			if committed := showtime.CommittedSeats(); *patch.TotalSeats < committed {
				return domain.NewSeatsBelowBookedError(*patch.TotalSeats, committed)
			}

			showtime.TotalSeats = *patch.TotalSeats
			showtime.SeatsAvailable = showtime.TotalSeats - len(showtime.BookedSeats)
		}

		if capacity := hall.Capacity(); showtime.TotalSeats > capacity {
			return domain.NewCapacityExceededError(showtime.TotalSeats, capacity)
		}

		if patch.Price != nil {
			if patch.Price.IsNegative() {
				return domain.NewValidationError("price must not be negative")
			}
			showtime.Price = *patch.Price
		}

		if patch.Status != nil && *patch.Status != showtime.Status {
			if !patch.Status.Terminal() {
				return domain.NewValidationError("status can only move to %s or %s", domain.ShowtimeCancelled, domain.ShowtimeCompleted)
			}
			showtime.Status = *patch.Status
		}

		if slotChanged {
			if !showtime.StartTime.Before(showtime.EndTime) {
				return domain.NewValidationError("start time must be before end time")
			}

			if showtime.Status == domain.ShowtimeScheduled {
				if err := s.checkOverlap(ctx, tx, showtime); err != nil {
					return err
				}
			}
		}

		showtime.UpdatedAt = now

		if err := tx.Showtimes().Update(ctx, showtime); err != nil {
			return err
		}

		updated = showtime

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("showtime updated", "showtime_id", updated.ID, "status", updated.Status)

	if hallChanged && s.seats != nil {
		s.seats.initializeQuietly(ctx, updated, hall)
	}

	return updated, nil
}

// Cancel retires a showtime. Seats held by existing bookings stay committed until those
// bookings are cancelled.
func (s *Scheduler) Cancel(ctx context.Context, actor domain.Actor, id int) (*domain.Showtime, error) {
	if err := requireAdmin(actor, "cancel showtimes"); err != nil {
		return nil, err
	}

	var cancelled *domain.Showtime

	err := runInTx(ctx, s.store, func(tx domain.Tx) error {
		showtime, err := tx.Showtimes().GetForUpdate(ctx, id)
		if err != nil {
			return err
		}

		switch showtime.Status {
		case domain.ShowtimeCancelled:
			return domain.NewAlreadyCancelledError("showtime", id)
		case domain.ShowtimeCompleted:
			return domain.NewImmutableStateError(showtime.Status)
		}

		showtime.Status = domain.ShowtimeCancelled
		showtime.UpdatedAt = s.now()

		if err := tx.Showtimes().Update(ctx, showtime); err != nil {
			return err
		}

		cancelled = showtime

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("showtime cancelled", "showtime_id", id, "booked_seats", len(cancelled.BookedSeats))

	return cancelled, nil
}

func (s *Scheduler) Delete(ctx context.Context, actor domain.Actor, id int) error {
	if err := requireAdmin(actor, "delete showtimes"); err != nil {
		return err
	}

	err := runInTx(ctx, s.store, func(tx domain.Tx) error {
		showtime, err := tx.Showtimes().GetForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if showtime.TotalSeats != showtime.SeatsAvailable {
			return domain.NewHasBookingsError(showtime.CommittedSeats())
		}

		return tx.Showtimes().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("showtime deleted", "showtime_id", id)

	return nil
}

func (s *Scheduler) Get(ctx context.Context, id int) (*domain.Showtime, error) {
	var showtime *domain.Showtime

	err := runInTx(ctx, s.store, func(tx domain.Tx) error {
		var err error
		showtime, err = tx.Showtimes().Get(ctx, id)
		return err
	})

	return showtime, err
}

// HallSchedule lists the scheduled showtimes of a hall intersecting [from, to).
func (s *Scheduler) HallSchedule(ctx context.Context, hallID int, from, to time.Time) ([]domain.Showtime, error) {
	if !from.Before(to) {
		return nil, domain.NewValidationError("from must be before to")
	}

	if _, err := s.catalog.GetHall(ctx, hallID); err != nil {
		return nil, err
	}

	var showtimes []domain.Showtime

	err := runInTx(ctx, s.store, func(tx domain.Tx) error {
		var err error
		showtimes, err = tx.Showtimes().ListScheduledByHall(ctx, hallID, from, to)
		return err
	})

	return showtimes, err
}
