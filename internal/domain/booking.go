package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// childFareRate is the fixed child discount: children pay half the showtime price.
var childFareRate = decimal.NewFromFloat(0.5)

type Booking struct {
	ID         uuid.UUID
	UserID     int
	ShowtimeID int
	Seats      []string
	AdultCount int
	ChildCount int
	TotalPrice decimal.Decimal
	Canceled   bool

	// Snapshot of the screening captured when the booking is created, used by receipts.
	MovieTitle string
	HallName   string
	StartTime  time.Time

	CreatedAt  time.Time
	CanceledAt *time.Time
}

func TicketPrice(price decimal.Decimal, adults, children int) decimal.Decimal {
	adultTotal := price.Mul(decimal.NewFromInt(int64(adults)))
	childTotal := price.Mul(childFareRate).Mul(decimal.NewFromInt(int64(children)))

	return adultTotal.Add(childTotal)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	Get(ctx context.Context, id uuid.UUID) (*Booking, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*Booking, error)
	MarkCanceled(ctx context.Context, id uuid.UUID, at time.Time) error
}
