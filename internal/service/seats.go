package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/metinatakli/cinex/internal/domain"
)

// SeatInventory is the real-time seat layer. Holds placed here are provisional: the
// committed Showtime.BookedSeats set stays authoritative and is projected onto the seat
// map after every committed reservation or release.
type SeatInventory struct {
	store       domain.Store
	catalog     domain.CatalogRepository
	seats       domain.SeatMapStore
	broadcaster domain.SeatBroadcaster
	lockTTL     time.Duration
	logger      *slog.Logger
	now         func() time.Time
}

func NewSeatInventory(
	store domain.Store,
	catalog domain.CatalogRepository,
	seats domain.SeatMapStore,
	broadcaster domain.SeatBroadcaster,
	lockTTL time.Duration,
	logger *slog.Logger,
	now func() time.Time) *SeatInventory {

	return &SeatInventory{
		store:       store,
		catalog:     catalog,
		seats:       seats,
		broadcaster: broadcaster,
		lockTTL:     lockTTL,
		logger:      logger,
		now:         now,
	}
}

func (i *SeatInventory) LockTTL() time.Duration {
	return i.lockTTL
}

// Lock places a provisional hold on label for holder. A hold older than the lock TTL is
// treated as released and can be taken over.
func (i *SeatInventory) Lock(ctx context.Context, showtimeID int, label, holder string) (domain.SeatState, error) {
	if holder == "" {
		return domain.SeatState{}, domain.NewValidationError("seat holder is required")
	}

	showtime, err := i.showtime(ctx, showtimeID)
	if err != nil {
		return domain.SeatState{}, err
	}

	if showtime.Status != domain.ShowtimeScheduled {
		return domain.SeatState{}, domain.NewImmutableStateError(showtime.Status)
	}

	if showtime.IsBooked(label) {
		return domain.SeatState{}, domain.NewSeatUnavailableError(label, domain.SeatBooked)
	}

	state, err := i.seats.Lock(ctx, showtimeID, label, holder, i.now(), i.lockTTL)
	if errors.Is(err, domain.ErrNotFound) {
		// seat map not built yet for this showtime
		if _, err := i.initialize(ctx, showtime); err != nil {
			return domain.SeatState{}, err
		}

		state, err = i.seats.Lock(ctx, showtimeID, label, holder, i.now(), i.lockTTL)
	}
	if err != nil {
		return domain.SeatState{}, err
	}

	i.publish(ctx, showtimeID, label, domain.SeatLocked)

	return state, nil
}

// Confirm turns the holder's own, unexpired lock into BOOKED.
func (i *SeatInventory) Confirm(ctx context.Context, showtimeID int, label, holder string) (domain.SeatState, error) {
	if holder == "" {
		return domain.SeatState{}, domain.NewValidationError("seat holder is required")
	}

	state, err := i.seats.Confirm(ctx, showtimeID, label, holder, i.now(), i.lockTTL)
	if err != nil {
		return domain.SeatState{}, err
	}

	i.publish(ctx, showtimeID, label, domain.SeatBooked)

	return state, nil
}

// Unlock drops the holder's lock and makes the seat AVAILABLE again.
func (i *SeatInventory) Unlock(ctx context.Context, showtimeID int, label, holder string) (domain.SeatState, error) {
	if holder == "" {
		return domain.SeatState{}, domain.NewValidationError("seat holder is required")
	}

	state, err := i.seats.Unlock(ctx, showtimeID, label, holder)
	if err != nil {
		return domain.SeatState{}, err
	}

	i.publish(ctx, showtimeID, label, domain.SeatAvailable)

	return state, nil
}

// Initialize builds the seat map of a showtime from its hall layout.
func (i *SeatInventory) Initialize(ctx context.Context, showtimeID int) ([]domain.SeatState, error) {
	showtime, err := i.showtime(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	hall, err := i.catalog.GetHall(ctx, showtime.HallID)
	if err != nil {
		return nil, err
	}

	states, err := i.seats.Merge(ctx, showtimeID, hall.ActiveLabels(), showtime.BookedSeats)
	if err != nil {
		return nil, err
	}

	return i.view(hall, showtime, states), nil
}

// Resync rebuilds the seat map after a layout change. LOCKED and BOOKED entries survive,
// committed seats become BOOKED and only AVAILABLE entries are rewritten.
func (i *SeatInventory) Resync(ctx context.Context, actor domain.Actor, showtimeID int) ([]domain.SeatState, error) {
	if err := requireAdmin(actor, "resync seat maps"); err != nil {
		return nil, err
	}

	states, err := i.Initialize(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	i.logger.Info("seat map resynced", "showtime_id", showtimeID, "seats", len(states))

	return states, nil
}

// SeatMap returns every active seat of the showtime in layout order, combining the
// real-time states with the committed bookings.
func (i *SeatInventory) SeatMap(ctx context.Context, showtimeID int) ([]domain.SeatState, error) {
	showtime, err := i.showtime(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	hall, err := i.catalog.GetHall(ctx, showtime.HallID)
	if err != nil {
		return nil, err
	}

	states, err := i.seats.Get(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	if len(states) == 0 {
		states, err = i.seats.Merge(ctx, showtimeID, hall.ActiveLabels(), showtime.BookedSeats)
		if err != nil {
			return nil, err
		}
	}

	return i.view(hall, showtime, states), nil
}

func (i *SeatInventory) view(hall *domain.Hall, showtime *domain.Showtime, states map[string]domain.SeatState) []domain.SeatState {
	now := i.now()
	labels := hall.ActiveLabels()
	result := make([]domain.SeatState, 0, len(labels))

	for _, label := range labels {
		state, ok := states[label]
		if !ok {
			state = domain.SeatState{Label: label, Status: domain.SeatAvailable}
		}

		if state.Status == domain.SeatLocked && i.expired(state, now) {
			state = domain.SeatState{Label: label, Status: domain.SeatAvailable}
		}

		if showtime.IsBooked(label) {
			state.Status = domain.SeatBooked
			state.LockedAt = time.Time{}
		}

		result = append(result, state)
	}

	return result
}

func (i *SeatInventory) expired(state domain.SeatState, now time.Time) bool {
	return i.lockTTL > 0 && !state.LockedAt.IsZero() && !now.Before(state.LockedAt.Add(i.lockTTL))
}

func (i *SeatInventory) initialize(ctx context.Context, showtime *domain.Showtime) (map[string]domain.SeatState, error) {
	hall, err := i.catalog.GetHall(ctx, showtime.HallID)
	if err != nil {
		return nil, err
	}

	return i.seats.Merge(ctx, showtime.ID, hall.ActiveLabels(), showtime.BookedSeats)
}

// initializeQuietly is used right after scheduling; a failure only delays the build to
// the first lock or seat map read.
func (i *SeatInventory) initializeQuietly(ctx context.Context, showtime *domain.Showtime, hall *domain.Hall) {
	_, err := i.seats.Merge(ctx, showtime.ID, hall.ActiveLabels(), showtime.BookedSeats)
	if err != nil {
		i.logger.Warn("failed to initialize seat map", "showtime_id", showtime.ID, "error", err)
	}
}

// syncCommitted projects a committed reservation (BOOKED) or release (AVAILABLE) onto the
// seat map and broadcasts it.
func (i *SeatInventory) syncCommitted(ctx context.Context, showtimeID int, labels []string, status domain.SeatStatus) {
	if len(labels) == 0 {
		return
	}

	err := i.seats.SetStatus(ctx, showtimeID, labels, status, "")
	if err != nil {
		i.logger.Error("failed to sync seat map with committed seats",
			"showtime_id", showtimeID,
			"status", status,
			"error", err)
		return
	}

	for _, label := range labels {
		i.publish(ctx, showtimeID, label, status)
	}
}

func (i *SeatInventory) publish(ctx context.Context, showtimeID int, label string, status domain.SeatStatus) {
	if i.broadcaster == nil {
		return
	}

	update := domain.SeatUpdate{ShowtimeID: showtimeID, SeatLabel: label, Status: status}

	if err := i.broadcaster.Publish(ctx, update); err != nil {
		i.logger.Warn("failed to broadcast seat update",
			"showtime_id", showtimeID,
			"seat", label,
			"status", status,
			"error", err)
	}
}

func (i *SeatInventory) showtime(ctx context.Context, id int) (*domain.Showtime, error) {
	var showtime *domain.Showtime

	err := runInTx(ctx, i.store, func(tx domain.Tx) error {
		var err error
		showtime, err = tx.Showtimes().Get(ctx, id)
		return err
	})

	return showtime, err
}
