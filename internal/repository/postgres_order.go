package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/metinatakli/cinex/internal/domain"
	"github.com/shopspring/decimal"
)

type orderRepository struct {
	tx pgx.Tx
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	query := `
		INSERT INTO orders (
			id, user_id, purchase_id, total_price, status,
			payment_method, payment_reference, created_at, canceled_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.tx.Exec(
		ctx,
		query,
		order.ID,
		order.UserID,
		order.PurchaseID,
		order.TotalPrice,
		order.Status,
		order.PaymentMethod,
		order.PaymentReference,
		order.CreatedAt,
		order.CanceledAt,
	)
	if err != nil {
		return translateError(err)
	}

	rows := make([][]any, 0, len(order.BookingIDs))
	for i, bookingID := range order.BookingIDs {
		rows = append(rows, []any{order.ID, bookingID, i})
	}

	_, err = r.tx.CopyFrom(
		ctx,
		pgx.Identifier{"order_bookings"},
		[]string{"order_id", "booking_id", "position"},
		pgx.CopyFromRows(rows),
	)

	return translateError(err)
}

const orderQuery = `
	SELECT
		o.id,
		o.user_id,
		o.purchase_id,
		o.total_price,
		o.status,
		o.payment_method,
		o.payment_reference,
		o.created_at,
		o.canceled_at,
		COALESCE(
			(SELECT array_agg(ob.booking_id ORDER BY ob.position) FROM order_bookings ob WHERE ob.order_id = o.id),
			'{}')
	FROM orders o
`

func (r *orderRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return r.get(ctx, orderQuery+` WHERE o.id = $1`, id)
}

func (r *orderRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return r.get(ctx, orderQuery+` WHERE o.id = $1 FOR UPDATE OF o`, id)
}

func (r *orderRepository) FindByBooking(ctx context.Context, bookingID uuid.UUID) (*domain.Order, error) {
	order, err := r.get(ctx, orderQuery+`
		JOIN order_bookings link ON link.order_id = o.id
		WHERE link.booking_id = $1`, bookingID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewNotFoundError("order for booking", bookingID)
	}

	return order, err
}

func (r *orderRepository) FindByPurchase(ctx context.Context, purchaseID uuid.UUID) (*domain.Order, error) {
	order, err := r.get(ctx, orderQuery+` WHERE o.purchase_id = $1`, purchaseID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewNotFoundError("order for purchase", purchaseID)
	}

	return order, err
}

func (r *orderRepository) get(ctx context.Context, query string, id uuid.UUID) (*domain.Order, error) {
	var order domain.Order

	err := r.tx.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.UserID,
		&order.PurchaseID,
		&order.TotalPrice,
		&order.Status,
		&order.PaymentMethod,
		&order.PaymentReference,
		&order.CreatedAt,
		&order.CanceledAt,
		&order.BookingIDs,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("order", id)
		}

		return nil, err
	}

	return &order, nil
}

func (r *orderRepository) MarkCancelled(ctx context.Context, id uuid.UUID, at time.Time) error {
	tag, err := r.tx.Exec(ctx, `UPDATE orders SET status = 'cancelled', canceled_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("order", id)
	}

	return nil
}

func (r *orderRepository) UpdateTotal(ctx context.Context, id uuid.UUID, total decimal.Decimal) error {
	tag, err := r.tx.Exec(ctx, `UPDATE orders SET total_price = $2 WHERE id = $1`, id, total)
	if err != nil {
		return translateError(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("order", id)
	}

	return nil
}
