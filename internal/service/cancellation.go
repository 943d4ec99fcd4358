package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/cinex/internal/domain"
	"github.com/shopspring/decimal"
)

// CancellationResult describes everything a booking cancellation reversed.
type CancellationResult struct {
	Booking domain.Booking
	// Order is set when the booking belonged to an order, which is then cancelled as a whole.
	Order *domain.OrderSnapshot
}

// Compensator reverses the inventory effects of bookings, purchases and orders.
type Compensator struct {
	store    domain.Store
	bookings *BookingManager
	notify   Notifications
	runner   *Runner
	metrics  *Metrics
	logger   *slog.Logger
	now      func() time.Time
}

func NewCompensator(
	store domain.Store,
	bookings *BookingManager,
	notify Notifications,
	runner *Runner,
	metrics *Metrics,
	logger *slog.Logger,
	now func() time.Time) *Compensator {

	return &Compensator{
		store:    store,
		bookings: bookings,
		notify:   notify,
		runner:   runner,
		metrics:  metrics,
		logger:   logger,
		now:      now,
	}
}

// CancelBooking releases the booking's seats and cascades to the whole order containing
// it: sibling bookings are released, the purchase is restocked and the order is cancelled.
func (c *Compensator) CancelBooking(ctx context.Context, actor domain.Actor, bookingID uuid.UUID) (*CancellationResult, error) {
	ctx, span := tracer.Start(ctx, "Compensator.CancelBooking")
	defer span.End()

	var (
		result   *CancellationResult
		released []*domain.Booking
	)

	err := runInTx(ctx, c.store, func(tx domain.Tx) error {
		released = nil

		booking, err := tx.Bookings().GetForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}

		if !actor.CanAccess(booking.UserID) {
			return domain.NewUnauthorizedError("booking %s does not belong to user %d", bookingID, actor.UserID)
		}

		if booking.Canceled {
			return domain.NewAlreadyCancelledError("booking", bookingID)
		}

		if err := c.bookings.release(ctx, tx, booking); err != nil {
			return err
		}
		released = append(released, booking)

		result = &CancellationResult{Booking: *booking}

		order, err := tx.Orders().FindByBooking(ctx, bookingID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		order, err = tx.Orders().GetForUpdate(ctx, order.ID)
		if err != nil {
			return err
		}

		if order.Status == domain.OrderCancelled {
			return nil
		}

		siblings, err := c.cancelOrder(ctx, tx, order, bookingID)
		if err != nil {
			return err
		}
		released = append(released, siblings...)

		snapshot, err := loadSnapshot(ctx, tx, order)
		if err != nil {
			return err
		}

		result.Order = snapshot

		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	c.logger.Info("booking cancelled", "booking_id", bookingID, "user_id", actor.UserID)

	c.bookings.syncReleased(ctx, released...)

	if result.Order != nil {
		c.logger.Info("order cancelled by cascade",
			"order_id", result.Order.Order.ID,
			"bookings", len(result.Order.Bookings))

		c.metrics.recordOrderCancelled(ctx)
		notifyOrder(c.runner, c.notify, *result.Order, domain.OrderCancelledEvent)
	}

	return result, nil
}

// cancelOrder releases every active sibling of skipBookingID, restocks the purchase and
// flags the order cancelled. It returns the siblings it released.
func (c *Compensator) cancelOrder(
	ctx context.Context,
	tx domain.Tx,
	order *domain.Order,
	skipBookingID uuid.UUID) ([]*domain.Booking, error) {

	var released []*domain.Booking

	for _, id := range order.BookingIDs {
		if id == skipBookingID {
			continue
		}

		sibling, err := tx.Bookings().GetForUpdate(ctx, id)
		if err != nil {
			return nil, err
		}

		if sibling.Canceled {
			continue
		}

		if err := c.bookings.release(ctx, tx, sibling); err != nil {
			return nil, err
		}

		released = append(released, sibling)
	}

	if order.PurchaseID != nil {
		purchase, err := tx.Purchases().GetForUpdate(ctx, *order.PurchaseID)
		if err != nil {
			return nil, err
		}

		if !purchase.Canceled {
			if err := c.restock(ctx, tx, purchase); err != nil {
				return nil, err
			}
		}
	}

	now := c.now()

	if err := tx.Orders().MarkCancelled(ctx, order.ID, now); err != nil {
		return nil, err
	}

	order.Status = domain.OrderCancelled
	order.CanceledAt = &now

	return released, nil
}

// CancelPurchase restocks every line of a purchase and flags it canceled. The owning
// order keeps its bookings but loses the purchase amount from its total; an order left
// with nothing active is cancelled.
func (c *Compensator) CancelPurchase(ctx context.Context, actor domain.Actor, purchaseID uuid.UUID) (*domain.Purchase, error) {
	var (
		purchase  *domain.Purchase
		cancelled *domain.OrderSnapshot
	)

	err := runInTx(ctx, c.store, func(tx domain.Tx) error {
		var err error
		cancelled = nil

		purchase, err = tx.Purchases().GetForUpdate(ctx, purchaseID)
		if err != nil {
			return err
		}

		if !actor.CanAccess(purchase.UserID) {
			return domain.NewUnauthorizedError("purchase %s does not belong to user %d", purchaseID, actor.UserID)
		}

		if purchase.Canceled {
			return domain.NewAlreadyCancelledError("purchase", purchaseID)
		}

		if err := c.restock(ctx, tx, purchase); err != nil {
			return err
		}

		cancelled, err = c.detachPurchase(ctx, tx, purchase)

		return err
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("purchase cancelled", "purchase_id", purchaseID, "user_id", actor.UserID)

	if cancelled != nil {
		c.logger.Info("order cancelled with its purchase", "order_id", cancelled.Order.ID)

		c.metrics.recordOrderCancelled(ctx)
		notifyOrder(c.runner, c.notify, *cancelled, domain.OrderCancelledEvent)
	}

	return purchase, nil
}

// detachPurchase takes a cancelled purchase out of the total of its active order. It
// returns a snapshot when that leaves the order without bookings and it is cancelled.
func (c *Compensator) detachPurchase(ctx context.Context, tx domain.Tx, purchase *domain.Purchase) (*domain.OrderSnapshot, error) {
	order, err := tx.Orders().FindByPurchase(ctx, purchase.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	order, err = tx.Orders().GetForUpdate(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	if order.Status == domain.OrderCancelled {
		return nil, nil
	}

	total := order.TotalPrice.Sub(purchase.TotalPrice)
	if total.IsNegative() {
		total = decimal.Zero
	}

	if err := tx.Orders().UpdateTotal(ctx, order.ID, total); err != nil {
		return nil, err
	}
	order.TotalPrice = total

	if len(order.BookingIDs) > 0 {
		return nil, nil
	}

	now := c.now()

	if err := tx.Orders().MarkCancelled(ctx, order.ID, now); err != nil {
		return nil, err
	}

	order.Status = domain.OrderCancelled
	order.CanceledAt = &now

	return loadSnapshot(ctx, tx, order)
}

// restock returns every non-canceled line to stock and flags the purchase canceled.
// purchase is updated in place.
func (c *Compensator) restock(ctx context.Context, tx domain.Tx, purchase *domain.Purchase) error {
	for _, item := range purchase.Items {
		if item.Canceled {
			continue
		}

		if err := tx.Snacks().AdjustQuantity(ctx, item.SnackID, item.Quantity); err != nil {
			return err
		}
	}

	now := c.now()

	if err := tx.Purchases().MarkCanceled(ctx, purchase.ID, now); err != nil {
		return err
	}

	purchase.Canceled = true
	purchase.CanceledAt = &now
	for i := range purchase.Items {
		purchase.Items[i].Canceled = true
	}

	return nil
}
