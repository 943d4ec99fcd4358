package domain

import "context"

// Tx exposes the repositories bound to one atomic unit. Everything read through a Tx
// observes a consistent snapshot, and everything written commits or rolls back together.
type Tx interface {
	Showtimes() ShowtimeRepository
	Bookings() BookingRepository
	Snacks() SnackRepository
	Purchases() PurchaseRepository
	Orders() OrderRepository
}

// Store runs fn inside a transaction. A nil return commits, any error rolls back.
type Store interface {
	RunInTx(ctx context.Context, fn func(tx Tx) error) error
}
