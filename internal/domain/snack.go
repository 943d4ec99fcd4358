package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// Snack is a concession stock item. Quantity never drops below zero.
type Snack struct {
	ID        int
	Name      string
	Price     decimal.Decimal
	Quantity  int
	Available bool
}

type SnackRepository interface {
	Get(ctx context.Context, id int) (*Snack, error)
	GetForUpdate(ctx context.Context, id int) (*Snack, error)
	// AdjustQuantity adds delta to the on-hand quantity. It fails with insufficient_stock
	// instead of letting the quantity go negative.
	AdjustQuantity(ctx context.Context, id int, delta int) error
}
