package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/cinex/internal/domain"
	"github.com/shopspring/decimal"
)

// Notifications groups the collaborators invoked after a checkout or cancellation
// committed. Any of them may be nil.
type Notifications struct {
	Users    domain.UserRepository
	Receipts domain.ReceiptGenerator
	Email    domain.EmailNotifier
	Events   domain.EventPublisher
}

// Checkout turns a heterogeneous cart into bookings, one purchase and one order inside a
// single transaction. A cart either commits completely or leaves no trace.
type Checkout struct {
	store    domain.Store
	bookings *BookingManager
	payments domain.PaymentVerifier
	notify   Notifications
	runner   *Runner
	metrics  *Metrics
	logger   *slog.Logger
	now      func() time.Time
}

func NewCheckout(
	store domain.Store,
	bookings *BookingManager,
	payments domain.PaymentVerifier,
	notify Notifications,
	runner *Runner,
	metrics *Metrics,
	logger *slog.Logger,
	now func() time.Time) *Checkout {

	return &Checkout{
		store:    store,
		bookings: bookings,
		payments: payments,
		notify:   notify,
		runner:   runner,
		metrics:  metrics,
		logger:   logger,
		now:      now,
	}
}

func (c *Checkout) Checkout(ctx context.Context, actor domain.Actor, cart domain.Cart) (*domain.OrderSnapshot, error) {
	ctx, span := tracer.Start(ctx, "Checkout.Checkout")
	defer span.End()

	snapshot, err := c.checkout(ctx, actor, cart)
	c.metrics.recordCheckout(ctx, err)
	if err != nil {
		span.RecordError(err)
		c.logger.Warn("checkout aborted", "user_id", actor.UserID, "error", err)
		return nil, err
	}

	c.logger.Info("checkout committed",
		"order_id", snapshot.Order.ID,
		"user_id", actor.UserID,
		"bookings", len(snapshot.Bookings),
		"total", snapshot.Order.TotalPrice.StringFixed(2))

	c.bookings.syncBooked(ctx, bookingPointers(snapshot.Bookings)...)
	notifyOrder(c.runner, c.notify, *snapshot, domain.OrderConfirmedEvent)

	return snapshot, nil
}

func (c *Checkout) checkout(ctx context.Context, actor domain.Actor, cart domain.Cart) (*domain.OrderSnapshot, error) {
	if err := validateCart(cart); err != nil {
		return nil, err
	}

	payment, err := c.verifyPayment(ctx, actor, cart)
	if err != nil {
		return nil, err
	}

	var snapshot *domain.OrderSnapshot

	err = runInTx(ctx, c.store, func(tx domain.Tx) error {
		tickets, snacks := cart.Partition()
		now := c.now()

		order := &domain.Order{
			ID:               uuid.New(),
			UserID:           actor.UserID,
			Status:           domain.OrderActive,
			PaymentMethod:    cart.PaymentMethod,
			PaymentReference: cart.PaymentReference,
			TotalPrice:       decimal.Zero,
			CreatedAt:        now,
		}

		snapshot = &domain.OrderSnapshot{}

		for _, item := range tickets {
			booking, err := c.bookings.reserve(ctx, tx, actor.UserID, ReserveInput{
				ShowtimeID: item.ShowtimeID,
				Seats:      item.Seats,
				AdultCount: item.AdultCount,
				ChildCount: item.ChildCount,
			})
			if err != nil {
				return err
			}

			order.BookingIDs = append(order.BookingIDs, booking.ID)
			order.TotalPrice = order.TotalPrice.Add(booking.TotalPrice)
			snapshot.Bookings = append(snapshot.Bookings, *booking)
		}

		if len(snacks) > 0 {
			purchase, err := c.purchaseSnacks(ctx, tx, actor.UserID, snacks, now)
			if err != nil {
				return err
			}

			order.PurchaseID = &purchase.ID
			order.TotalPrice = order.TotalPrice.Add(purchase.TotalPrice)
			snapshot.Purchase = purchase
		}

		if payment != nil && payment.Amount.LessThan(order.TotalPrice) {
			return domain.NewValidationError("payment of %s does not cover the order total of %s",
				payment.Amount.StringFixed(2), order.TotalPrice.StringFixed(2))
		}

		if err := tx.Orders().Create(ctx, order); err != nil {
			return err
		}

		snapshot.Order = *order

		return nil
	})
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

func validateCart(cart domain.Cart) error {
	if len(cart.Items) == 0 {
		return domain.NewValidationError("cart must contain at least one item")
	}

	for i, item := range cart.Items {
		if item.Type != domain.CartItemTicket && item.Type != domain.CartItemSnack {
			return domain.NewValidationError("item %d has unknown type %q", i, item.Type)
		}
	}

	switch cart.PaymentMethod {
	case domain.PaymentCard, domain.PaymentCash:
	default:
		return domain.NewValidationError("unknown payment method %q", cart.PaymentMethod)
	}

	return nil
}

// verifyPayment runs before the transaction so no row lock is held across a network call.
// Cash is only taken at the box office by an administrator.
func (c *Checkout) verifyPayment(ctx context.Context, actor domain.Actor, cart domain.Cart) (*domain.PaymentConfirmation, error) {
	if cart.PaymentMethod == domain.PaymentCash {
		if !actor.IsAdmin() {
			return nil, domain.NewUnauthorizedError("cash payments can only be taken at the box office")
		}
		return nil, nil
	}

	if cart.PaymentReference == "" {
		return nil, domain.NewValidationError("card payments require a payment reference")
	}

	if c.payments == nil {
		return nil, domain.NewTransactionAbortedError(fmt.Errorf("no payment verifier configured"))
	}

	confirmation, err := c.payments.Verify(ctx, cart.PaymentReference)
	if err != nil {
		return nil, domain.AsError(err)
	}

	return confirmation, nil
}

func (c *Checkout) purchaseSnacks(
	ctx context.Context,
	tx domain.Tx,
	userID int,
	items []domain.CartItem,
	now time.Time) (*domain.Purchase, error) {

	lines := make([]domain.PurchaseItem, 0, len(items))

	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, domain.NewInvalidQuantityError(item.Quantity)
		}

		snack, err := tx.Snacks().GetForUpdate(ctx, item.SnackID)
		if err != nil {
			return nil, err
		}

		if !snack.Available {
			return nil, domain.NewValidationError("snack %s is not available", snack.Name)
		}

		if snack.Quantity < item.Quantity {
			return nil, domain.NewInsufficientStockError(snack.Name, item.Quantity, snack.Quantity)
		}

		if err := tx.Snacks().AdjustQuantity(ctx, snack.ID, -item.Quantity); err != nil {
			return nil, err
		}

		lines = append(lines, domain.PurchaseItem{
			SnackID:  snack.ID,
			Name:     snack.Name,
			Price:    snack.Price,
			Quantity: item.Quantity,
		})
	}

	purchase := domain.NewPurchase(userID, lines, now)

	if err := tx.Purchases().Create(ctx, purchase); err != nil {
		return nil, err
	}

	return purchase, nil
}

// GetOrder assembles the order with its bookings and purchase as they were captured at
// checkout time.
func (c *Checkout) GetOrder(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.OrderSnapshot, error) {
	var snapshot *domain.OrderSnapshot

	err := runInTx(ctx, c.store, func(tx domain.Tx) error {
		order, err := tx.Orders().Get(ctx, id)
		if err != nil {
			return err
		}

		if !actor.CanAccess(order.UserID) {
			return domain.NewUnauthorizedError("order %s does not belong to user %d", id, actor.UserID)
		}

		snapshot, err = loadSnapshot(ctx, tx, order)
		return err
	})

	return snapshot, err
}

func loadSnapshot(ctx context.Context, tx domain.Tx, order *domain.Order) (*domain.OrderSnapshot, error) {
	snapshot := &domain.OrderSnapshot{Order: *order}

	for _, bookingID := range order.BookingIDs {
		booking, err := tx.Bookings().Get(ctx, bookingID)
		if err != nil {
			return nil, err
		}

		snapshot.Bookings = append(snapshot.Bookings, *booking)
	}

	if order.PurchaseID != nil {
		purchase, err := tx.Purchases().Get(ctx, *order.PurchaseID)
		if err != nil {
			return nil, err
		}

		snapshot.Purchase = purchase
	}

	return snapshot, nil
}

// notifyOrder publishes the order event and emails the receipt in the background.
func notifyOrder(
	runner *Runner,
	notify Notifications,
	snapshot domain.OrderSnapshot,
	event domain.OrderEventType) {

	if runner == nil {
		return
	}

	if notify.Events != nil {
		runner.Go("publish "+string(event), func(ctx context.Context) error {
			return notify.Events.PublishOrderEvent(ctx, event, snapshot)
		})
	}

	if notify.Receipts == nil || notify.Email == nil || notify.Users == nil {
		return
	}

	runner.Go("email receipt", func(ctx context.Context) error {
		user, err := notify.Users.GetById(ctx, snapshot.Order.UserID)
		if err != nil {
			return fmt.Errorf("look up receipt recipient: %w", err)
		}

		receipt := snapshot
		receipt.Email = user.Email

		content, err := notify.Receipts.Render(receipt)
		if err != nil {
			return fmt.Errorf("render receipt: %w", err)
		}

		subject := fmt.Sprintf("Your CineX order %s", snapshot.Order.ID)
		if event == domain.OrderCancelledEvent {
			subject = fmt.Sprintf("Your CineX order %s was cancelled", snapshot.Order.ID)
		}

		return notify.Email.Send(user.Email, subject, content)
	})
}

func bookingPointers(bookings []domain.Booking) []*domain.Booking {
	result := make([]*domain.Booking, len(bookings))
	for i := range bookings {
		result[i] = &bookings[i]
	}

	return result
}
