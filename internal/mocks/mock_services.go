package mocks

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/cinex/internal/domain"
	"github.com/metinatakli/cinex/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockShowtimeService struct {
	mock.Mock
}

func (m *MockShowtimeService) Create(ctx context.Context, actor domain.Actor, input service.CreateShowtimeInput) (*domain.Showtime, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Showtime), args.Error(1)
}

func (m *MockShowtimeService) Update(ctx context.Context, actor domain.Actor, id int, patch domain.ShowtimePatch) (*domain.Showtime, error) {
	args := m.Called(ctx, actor, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Showtime), args.Error(1)
}

func (m *MockShowtimeService) Cancel(ctx context.Context, actor domain.Actor, id int) (*domain.Showtime, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Showtime), args.Error(1)
}

func (m *MockShowtimeService) Delete(ctx context.Context, actor domain.Actor, id int) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *MockShowtimeService) Get(ctx context.Context, id int) (*domain.Showtime, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Showtime), args.Error(1)
}

func (m *MockShowtimeService) HallSchedule(ctx context.Context, hallID int, from, to time.Time) ([]domain.Showtime, error) {
	args := m.Called(ctx, hallID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Showtime), args.Error(1)
}

type MockSeatService struct {
	mock.Mock
	TTL time.Duration
}

func (m *MockSeatService) Lock(ctx context.Context, showtimeID int, label, holder string) (domain.SeatState, error) {
	args := m.Called(ctx, showtimeID, label, holder)
	return args.Get(0).(domain.SeatState), args.Error(1)
}

func (m *MockSeatService) Confirm(ctx context.Context, showtimeID int, label, holder string) (domain.SeatState, error) {
	args := m.Called(ctx, showtimeID, label, holder)
	return args.Get(0).(domain.SeatState), args.Error(1)
}

func (m *MockSeatService) Unlock(ctx context.Context, showtimeID int, label, holder string) (domain.SeatState, error) {
	args := m.Called(ctx, showtimeID, label, holder)
	return args.Get(0).(domain.SeatState), args.Error(1)
}

func (m *MockSeatService) Resync(ctx context.Context, actor domain.Actor, showtimeID int) ([]domain.SeatState, error) {
	args := m.Called(ctx, actor, showtimeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SeatState), args.Error(1)
}

func (m *MockSeatService) SeatMap(ctx context.Context, showtimeID int) ([]domain.SeatState, error) {
	args := m.Called(ctx, showtimeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SeatState), args.Error(1)
}

func (m *MockSeatService) LockTTL() time.Duration {
	return m.TTL
}

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Reserve(ctx context.Context, actor domain.Actor, input service.ReserveInput) (*domain.Booking, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) Get(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Checkout(ctx context.Context, actor domain.Actor, cart domain.Cart) (*domain.OrderSnapshot, error) {
	args := m.Called(ctx, actor, cart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderSnapshot), args.Error(1)
}

func (m *MockOrderService) GetOrder(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.OrderSnapshot, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderSnapshot), args.Error(1)
}

type MockCancellationService struct {
	mock.Mock
}

func (m *MockCancellationService) CancelBooking(ctx context.Context, actor domain.Actor, bookingID uuid.UUID) (*service.CancellationResult, error) {
	args := m.Called(ctx, actor, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CancellationResult), args.Error(1)
}

func (m *MockCancellationService) CancelPurchase(ctx context.Context, actor domain.Actor, purchaseID uuid.UUID) (*domain.Purchase, error) {
	args := m.Called(ctx, actor, purchaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

type MockSeatSubscriber struct {
	mock.Mock
}

func (m *MockSeatSubscriber) Subscribe(w http.ResponseWriter, r *http.Request, showtimeID int) error {
	args := m.Called(w, r, showtimeID)
	return args.Error(0)
}
