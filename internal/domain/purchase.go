package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseItem is a line snapshotted at purchase time.
type PurchaseItem struct {
	SnackID  int             `json:"snackId"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Canceled bool            `json:"canceled"`
}

func (i PurchaseItem) Total() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Purchase struct {
	ID         uuid.UUID
	UserID     int
	Items      []PurchaseItem
	TotalPrice decimal.Decimal
	Canceled   bool
	CreatedAt  time.Time
	CanceledAt *time.Time
}

func NewPurchase(userID int, items []PurchaseItem, now time.Time) *Purchase {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Total())
	}

	return &Purchase{
		ID:         uuid.New(),
		UserID:     userID,
		Items:      items,
		TotalPrice: total,
		CreatedAt:  now,
	}
}

type PurchaseRepository interface {
	Create(ctx context.Context, purchase *Purchase) error
	Get(ctx context.Context, id uuid.UUID) (*Purchase, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*Purchase, error)
	// MarkCanceled flags the purchase and all of its items canceled.
	MarkCanceled(ctx context.Context, id uuid.UUID, at time.Time) error
}
