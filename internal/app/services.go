package app

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/cinex/internal/domain"
	"github.com/metinatakli/cinex/internal/service"
)

type ShowtimeService interface {
	Create(ctx context.Context, actor domain.Actor, input service.CreateShowtimeInput) (*domain.Showtime, error)
	Update(ctx context.Context, actor domain.Actor, id int, patch domain.ShowtimePatch) (*domain.Showtime, error)
	Cancel(ctx context.Context, actor domain.Actor, id int) (*domain.Showtime, error)
	Delete(ctx context.Context, actor domain.Actor, id int) error
	Get(ctx context.Context, id int) (*domain.Showtime, error)
	HallSchedule(ctx context.Context, hallID int, from, to time.Time) ([]domain.Showtime, error)
}

type SeatService interface {
	Lock(ctx context.Context, showtimeID int, label, holder string) (domain.SeatState, error)
	Confirm(ctx context.Context, showtimeID int, label, holder string) (domain.SeatState, error)
	Unlock(ctx context.Context, showtimeID int, label, holder string) (domain.SeatState, error)
	Resync(ctx context.Context, actor domain.Actor, showtimeID int) ([]domain.SeatState, error)
	SeatMap(ctx context.Context, showtimeID int) ([]domain.SeatState, error)
	LockTTL() time.Duration
}

type BookingService interface {
	Reserve(ctx context.Context, actor domain.Actor, input service.ReserveInput) (*domain.Booking, error)
	Get(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Booking, error)
}

type OrderService interface {
	Checkout(ctx context.Context, actor domain.Actor, cart domain.Cart) (*domain.OrderSnapshot, error)
	GetOrder(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.OrderSnapshot, error)
}

type CancellationService interface {
	CancelBooking(ctx context.Context, actor domain.Actor, bookingID uuid.UUID) (*service.CancellationResult, error)
	CancelPurchase(ctx context.Context, actor domain.Actor, purchaseID uuid.UUID) (*domain.Purchase, error)
}

// SeatSubscriber streams seat updates of a showtime over the request's connection.
type SeatSubscriber interface {
	Subscribe(w http.ResponseWriter, r *http.Request, showtimeID int) error
}
