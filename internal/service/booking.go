package service

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/cinex/internal/domain"
)

type ReserveInput struct {
	ShowtimeID int
	Seats      []string
	AdultCount int
	ChildCount int
}

// BookingManager reserves committed seats against a showtime and releases them again.
// It is the only writer of Showtime.BookedSeats and Showtime.SeatsAvailable.
type BookingManager struct {
	store   domain.Store
	catalog domain.CatalogRepository
	seats   *SeatInventory
	logger  *slog.Logger
	now     func() time.Time
}

func NewBookingManager(
	store domain.Store,
	catalog domain.CatalogRepository,
	seats *SeatInventory,
	logger *slog.Logger,
	now func() time.Time) *BookingManager {

	return &BookingManager{
		store:   store,
		catalog: catalog,
		seats:   seats,
		logger:  logger,
		now:     now,
	}
}

func (m *BookingManager) Reserve(ctx context.Context, actor domain.Actor, input ReserveInput) (*domain.Booking, error) {
	ctx, span := tracer.Start(ctx, "BookingManager.Reserve")
	defer span.End()

	var booking *domain.Booking

	err := runInTx(ctx, m.store, func(tx domain.Tx) error {
		var err error
		booking, err = m.reserve(ctx, tx, actor.UserID, input)
		return err
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	m.logger.Info("seats reserved",
		"booking_id", booking.ID,
		"showtime_id", booking.ShowtimeID,
		"seats", booking.Seats)

	m.syncBooked(ctx, booking)

	return booking, nil
}

// reserve runs the reservation steps inside tx. Nothing is written unless every check passes.
// An unknown showtime is reported before anything wrong with the requested seats.
func (m *BookingManager) reserve(ctx context.Context, tx domain.Tx, userID int, input ReserveInput) (*domain.Booking, error) {
	showtime, err := tx.Showtimes().GetForUpdate(ctx, input.ShowtimeID)
	if err != nil {
		return nil, err
	}

	if err := validateReserveInput(input); err != nil {
		return nil, err
	}

	if showtime.CinemaID == 0 {
		return nil, domain.NewMissingCinemaError(showtime.ID)
	}

	if showtime.Status != domain.ShowtimeScheduled {
		return nil, domain.NewImmutableStateError(showtime.Status)
	}

	if tickets := input.AdultCount + input.ChildCount; len(input.Seats) != tickets {
		return nil, domain.NewCountMismatchError(len(input.Seats), tickets)
	}

	for _, label := range input.Seats {
		if showtime.IsBooked(label) {
			return nil, domain.NewSeatConflictError(label)
		}
	}

	if showtime.SeatsAvailable < len(input.Seats) {
		return nil, domain.NewInsufficientSeatsError(len(input.Seats), showtime.SeatsAvailable)
	}

	hall, err := m.catalog.GetHall(ctx, showtime.HallID)
	if err != nil {
		return nil, err
	}

	active := hall.ActiveLabels()
	for _, label := range input.Seats {
		if !slices.Contains(active, label) {
			return nil, domain.NewValidationError("seat %s does not exist in hall %s", label, hall.Name)
		}
	}

	movie, err := m.catalog.GetMovie(ctx, showtime.MovieID)
	if err != nil {
		return nil, err
	}

	now := m.now()

	booking := &domain.Booking{
		ID:         uuid.New(),
		UserID:     userID,
		ShowtimeID: showtime.ID,
		Seats:      slices.Clone(input.Seats),
		AdultCount: input.AdultCount,
		ChildCount: input.ChildCount,
		TotalPrice: domain.TicketPrice(showtime.Price, input.AdultCount, input.ChildCount),
		MovieTitle: movie.Title,
		HallName:   hall.Name,
		StartTime:  showtime.StartTime,
		CreatedAt:  now,
	}

	showtime.Reserve(booking.Seats)
	showtime.UpdatedAt = now

	if err := tx.Showtimes().Update(ctx, showtime); err != nil {
		return nil, err
	}

	if err := tx.Bookings().Create(ctx, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

func validateReserveInput(input ReserveInput) error {
	if input.AdultCount < 0 || input.ChildCount < 0 {
		return domain.NewValidationError("ticket counts must not be negative")
	}

	if len(input.Seats) == 0 {
		return domain.NewValidationError("at least one seat is required")
	}

	seen := make(map[string]bool, len(input.Seats))
	for _, label := range input.Seats {
		if label == "" {
			return domain.NewValidationError("seat label must not be empty")
		}

		if seen[label] {
			return domain.NewValidationError("seat %s is selected more than once", label)
		}
		seen[label] = true
	}

	return nil
}

// Release is the exact inverse of Reserve: the booking's seats go back to the showtime
// and the booking is flagged canceled.
func (m *BookingManager) Release(ctx context.Context, actor domain.Actor, bookingID uuid.UUID) (*domain.Booking, error) {
	var booking *domain.Booking

	err := runInTx(ctx, m.store, func(tx domain.Tx) error {
		var err error

		booking, err = tx.Bookings().GetForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}

		if !actor.CanAccess(booking.UserID) {
			return domain.NewUnauthorizedError("booking %s does not belong to user %d", bookingID, actor.UserID)
		}

		if booking.Canceled {
			return domain.NewAlreadyCancelledError("booking", bookingID)
		}

		return m.release(ctx, tx, booking)
	})
	if err != nil {
		return nil, err
	}

	m.logger.Info("seats released", "booking_id", booking.ID, "showtime_id", booking.ShowtimeID)

	m.syncReleased(ctx, booking)

	return booking, nil
}

// release returns the seats of an active booking to its showtime and flags it canceled.
// booking is updated in place.
func (m *BookingManager) release(ctx context.Context, tx domain.Tx, booking *domain.Booking) error {
	showtime, err := tx.Showtimes().GetForUpdate(ctx, booking.ShowtimeID)
	if err != nil {
		return err
	}

	now := m.now()

	showtime.Release(booking.Seats)
	showtime.UpdatedAt = now

	if err := tx.Showtimes().Update(ctx, showtime); err != nil {
		return err
	}

	if err := tx.Bookings().MarkCanceled(ctx, booking.ID, now); err != nil {
		return err
	}

	booking.Canceled = true
	booking.CanceledAt = &now

	return nil
}

func (m *BookingManager) Get(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Booking, error) {
	var booking *domain.Booking

	err := runInTx(ctx, m.store, func(tx domain.Tx) error {
		var err error
		booking, err = tx.Bookings().Get(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	if !actor.CanAccess(booking.UserID) {
		return nil, domain.NewUnauthorizedError("booking %s does not belong to user %d", id, actor.UserID)
	}

	return booking, nil
}

func (m *BookingManager) syncBooked(ctx context.Context, bookings ...*domain.Booking) {
	if m.seats == nil {
		return
	}

	for _, b := range bookings {
		m.seats.syncCommitted(ctx, b.ShowtimeID, b.Seats, domain.SeatBooked)
	}
}

func (m *BookingManager) syncReleased(ctx context.Context, bookings ...*domain.Booking) {
	if m.seats == nil {
		return
	}

	for _, b := range bookings {
		m.seats.syncCommitted(ctx, b.ShowtimeID, b.Seats, domain.SeatAvailable)
	}
}
