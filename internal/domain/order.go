package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderActive    OrderStatus = "active"
	OrderCancelled OrderStatus = "cancelled"
)

// Order ties the bookings and the purchase of one checkout together.
type Order struct {
	ID               uuid.UUID
	UserID           int
	BookingIDs       []uuid.UUID
	PurchaseID       *uuid.UUID
	TotalPrice       decimal.Decimal
	Status           OrderStatus
	PaymentMethod    PaymentMethod
	PaymentReference string
	CreatedAt        time.Time
	CanceledAt       *time.Time
}

// OrderSnapshot is the read-side aggregate handed to receipt rendering. It is assembled
// from data captured at creation time, never by re-reading live catalog rows.
type OrderSnapshot struct {
	Order    Order
	Email    string
	Bookings []Booking
	Purchase *Purchase
}

type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	Get(ctx context.Context, id uuid.UUID) (*Order, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*Order, error)
	// FindByBooking returns the order containing bookingID or a not_found error.
	FindByBooking(ctx context.Context, bookingID uuid.UUID) (*Order, error)
	// FindByPurchase returns the order owning purchaseID or a not_found error.
	FindByPurchase(ctx context.Context, purchaseID uuid.UUID) (*Order, error)
	UpdateTotal(ctx context.Context, id uuid.UUID, total decimal.Decimal) error
	MarkCancelled(ctx context.Context, id uuid.UUID, at time.Time) error
}
