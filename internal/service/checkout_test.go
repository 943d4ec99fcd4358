package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/metinatakli/cinex/internal/domain"
	"github.com/shopspring/decimal"
)

func ticketItem(showtimeID int, adults, children int, seats ...string) domain.CartItem {
	return domain.CartItem{
		Type:       domain.CartItemTicket,
		ShowtimeID: showtimeID,
		Seats:      seats,
		AdultCount: adults,
		ChildCount: children,
	}
}

func snackItem(snackID, quantity int) domain.CartItem {
	return domain.CartItem{Type: domain.CartItemSnack, SnackID: snackID, Quantity: quantity}
}

func cardCart(items ...domain.CartItem) domain.Cart {
	return domain.Cart{Items: items, PaymentMethod: domain.PaymentCard, PaymentReference: validPaymentID}
}

func (s *ServiceTestSuite) TestCheckoutTicketsAndSnacks() {
	showtime := s.scheduleShowtime(24, 100, 1000)

	snapshot, err := s.checkout.Checkout(s.ctx, customer, cardCart(
		ticketItem(showtime.ID, 2, 0, "A1", "A2"),
		snackItem(popcornID, 2),
	))
	s.Require().NoError(err)

	order := snapshot.Order
	s.True(decimal.NewFromInt(2600).Equal(order.TotalPrice), "got total %s", order.TotalPrice)
	s.Equal(domain.OrderActive, order.Status)
	s.Equal(customerID, order.UserID)
	s.Len(order.BookingIDs, 1)
	s.Require().NotNil(order.PurchaseID)
	s.Equal(validPaymentID, order.PaymentReference)

	s.Require().Len(snapshot.Bookings, 1)
	s.Equal("The Long Night", snapshot.Bookings[0].MovieTitle)
	s.Require().NotNil(snapshot.Purchase)
	s.Equal([]domain.PurchaseItem{
		{SnackID: popcornID, Name: "Popcorn", Price: decimal.NewFromInt(300), Quantity: 2},
	}, snapshot.Purchase.Items)

	s.Equal(3, s.snackQuantity(popcornID))
	s.Equal(98, s.showtime(showtime.ID).SeatsAvailable)
	s.assertSeatInvariant(showtime.ID)
	s.Equal(domain.SeatBooked, s.seatStatus(showtime.ID, "A2"))

	stored, ok := s.store.Order(order.ID)
	s.Require().True(ok)
	s.Equal(order.BookingIDs, stored.BookingIDs)

	s.runner.Wait()

	sent := s.notifier.Sent()
	s.Require().Len(sent, 1)
	s.Equal(customerEmail, sent[0].address)
	s.Contains(sent[0].subject, order.ID.String())
	s.Contains(sent[0].content, customerEmail)

	s.Equal([]publishedEvent{
		{eventType: domain.OrderConfirmedEvent, orderID: order.ID, status: domain.OrderActive},
	}, s.events.Events())
}

func (s *ServiceTestSuite) TestCheckoutSpanningShowtimes() {
	first := s.scheduleShowtime(24, 100, 1000)
	second := s.scheduleShowtime(48, 100, 800)

	snapshot, err := s.checkout.Checkout(s.ctx, customer, cardCart(
		ticketItem(first.ID, 1, 0, "C1"),
		ticketItem(second.ID, 1, 1, "C1", "C2"),
	))
	s.Require().NoError(err)

	s.True(decimal.NewFromInt(2200).Equal(snapshot.Order.TotalPrice), "got total %s", snapshot.Order.TotalPrice)
	s.Len(snapshot.Order.BookingIDs, 2)
	s.Nil(snapshot.Order.PurchaseID)
	s.Nil(snapshot.Purchase)
}

func (s *ServiceTestSuite) TestCheckoutFailuresLeaveNoTrace() {
	tests := []struct {
		name     string
		setup    func()
		cart     func(showtimeID int) domain.Cart
		actor    domain.Actor
		wantKind domain.ErrorKind
	}{
		{
			name: "should roll back earlier tickets when a later ticket conflicts",
			setup: func() {
				second := s.scheduleShowtime(48, 100, 1000)
				_, err := s.bookings.Reserve(s.ctx, other, ReserveInput{ShowtimeID: second.ID, Seats: []string{"B2"}, AdultCount: 1})
				s.Require().NoError(err)
			},
			cart: func(id int) domain.Cart {
				return cardCart(
					ticketItem(id, 1, 0, "B1"),
					ticketItem(id+1, 2, 0, "B1", "B2"),
				)
			},
			actor:    customer,
			wantKind: domain.KindSeatConflict,
		},
		{
			name: "should roll back tickets when a snack has zero quantity",
			cart: func(id int) domain.Cart {
				return cardCart(ticketItem(id, 1, 0, "B1"), snackItem(popcornID, 0))
			},
			actor:    customer,
			wantKind: domain.KindInvalidQuantity,
		},
		{
			name: "should fail for unknown snack",
			cart: func(id int) domain.Cart {
				return cardCart(ticketItem(id, 1, 0, "B1"), snackItem(99, 1))
			},
			actor:    customer,
			wantKind: domain.KindNotFound,
		},
		{
			name: "should fail when stock is short",
			cart: func(id int) domain.Cart {
				return cardCart(ticketItem(id, 1, 0, "B1"), snackItem(sodaID, 1), snackItem(popcornID, 6))
			},
			actor:    customer,
			wantKind: domain.KindInsufficientStock,
		},
		{
			name: "should fail for unavailable snack",
			cart: func(id int) domain.Cart {
				return cardCart(snackItem(nachosID, 1))
			},
			actor:    customer,
			wantKind: domain.KindValidation,
		},
		{
			name: "should fail for empty cart",
			cart: func(int) domain.Cart {
				return cardCart()
			},
			actor:    customer,
			wantKind: domain.KindValidation,
		},
		{
			name: "should fail for unknown item type",
			cart: func(int) domain.Cart {
				return cardCart(domain.CartItem{Type: "voucher"})
			},
			actor:    customer,
			wantKind: domain.KindValidation,
		},
		{
			name: "should fail for card payment without reference",
			cart: func(id int) domain.Cart {
				cart := cardCart(ticketItem(id, 1, 0, "B1"))
				cart.PaymentReference = ""
				return cart
			},
			actor:    customer,
			wantKind: domain.KindValidation,
		},
		{
			name: "should fail for payment that did not succeed",
			cart: func(id int) domain.Cart {
				cart := cardCart(ticketItem(id, 1, 0, "B1"))
				cart.PaymentReference = "pi_unknown"
				return cart
			},
			actor:    customer,
			wantKind: domain.KindValidation,
		},
		{
			name: "should fail when payment does not cover the total",
			setup: func() {
				s.verifier.confirmations["pi_small"] = domain.PaymentConfirmation{
					Reference: "pi_small",
					Amount:    decimal.NewFromInt(500),
					Currency:  "usd",
				}
			},
			cart: func(id int) domain.Cart {
				cart := cardCart(ticketItem(id, 1, 0, "B1"))
				cart.PaymentReference = "pi_small"
				return cart
			},
			actor:    customer,
			wantKind: domain.KindValidation,
		},
		{
			name: "should reject cash from customers",
			cart: func(id int) domain.Cart {
				return domain.Cart{Items: []domain.CartItem{ticketItem(id, 1, 0, "B1")}, PaymentMethod: domain.PaymentCash}
			},
			actor:    customer,
			wantKind: domain.KindUnauthorized,
		},
		{
			name: "should fail for unknown payment method",
			cart: func(id int) domain.Cart {
				return domain.Cart{Items: []domain.CartItem{ticketItem(id, 1, 0, "B1")}, PaymentMethod: "crypto"}
			},
			actor:    customer,
			wantKind: domain.KindValidation,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			showtime := s.scheduleShowtime(24, 100, 1000)
			if tt.setup != nil {
				tt.setup()
			}

			before := s.showtime(showtime.ID)
			bookingsBefore, purchasesBefore, ordersBefore := s.store.Counts()

			_, err := s.checkout.Checkout(s.ctx, tt.actor, tt.cart(showtime.ID))
			s.requireKind(err, tt.wantKind)

			s.Equal(before, s.showtime(showtime.ID))
			s.Equal(5, s.snackQuantity(popcornID))
			s.Equal(10, s.snackQuantity(sodaID))

			bookingsAfter, purchasesAfter, ordersAfter := s.store.Counts()
			s.Equal(bookingsBefore, bookingsAfter)
			s.Equal(purchasesBefore, purchasesAfter)
			s.Equal(ordersBefore, ordersAfter)

			s.runner.Wait()
			s.Empty(s.notifier.Sent())
			s.Empty(s.events.Events())
		})
	}
}

func (s *ServiceTestSuite) TestCheckoutWithCashAtTheBoxOffice() {
	showtime := s.scheduleShowtime(24, 100, 1000)

	snapshot, err := s.checkout.Checkout(s.ctx, admin, domain.Cart{
		Items:         []domain.CartItem{ticketItem(showtime.ID, 1, 0, "J10"), snackItem(sodaID, 1)},
		PaymentMethod: domain.PaymentCash,
	})
	s.Require().NoError(err)

	s.Equal(domain.PaymentCash, snapshot.Order.PaymentMethod)
	s.True(decimal.NewFromInt(1150).Equal(snapshot.Order.TotalPrice))
	s.Equal(9, s.snackQuantity(sodaID))
}

func (s *ServiceTestSuite) TestCheckoutPaymentProviderFailure() {
	showtime := s.scheduleShowtime(24, 100, 1000)
	s.verifier.err = errors.New("stripe: connection refused")

	_, err := s.checkout.Checkout(s.ctx, customer, cardCart(ticketItem(showtime.ID, 1, 0, "A1")))
	s.requireKind(err, domain.KindTransactionAborted)

	_, _, orders := s.store.Counts()
	s.Zero(orders)
}

func (s *ServiceTestSuite) TestCheckoutAbortsOnInfrastructureFailure() {
	showtime := s.scheduleShowtime(24, 100, 1000)
	s.store.FailOn("orders.Create", errors.New("disk full"))

	_, err := s.checkout.Checkout(s.ctx, customer, cardCart(
		ticketItem(showtime.ID, 1, 0, "A1"),
		snackItem(popcornID, 1),
	))
	s.requireKind(err, domain.KindTransactionAborted)

	s.Empty(s.showtime(showtime.ID).BookedSeats)
	s.Equal(5, s.snackQuantity(popcornID))

	bookings, purchases, orders := s.store.Counts()
	s.Zero(bookings)
	s.Zero(purchases)
	s.Zero(orders)
}

func (s *ServiceTestSuite) TestCheckoutSurvivesEmailFailure() {
	showtime := s.scheduleShowtime(24, 100, 1000)
	s.notifier.err = errors.New("smtp: 421 service not available")

	snapshot, err := s.checkout.Checkout(s.ctx, customer, cardCart(ticketItem(showtime.ID, 1, 0, "A1")))
	s.Require().NoError(err)

	s.runner.Wait()

	stored, ok := s.store.Order(snapshot.Order.ID)
	s.Require().True(ok)
	s.Equal(domain.OrderActive, stored.Status)
	s.Equal([]string{"A1"}, s.showtime(showtime.ID).BookedSeats)
	s.Len(s.events.Events(), 1)
}

func (s *ServiceTestSuite) TestGetOrder() {
	showtime := s.scheduleShowtime(24, 100, 1000)

	created, err := s.checkout.Checkout(s.ctx, customer, cardCart(
		ticketItem(showtime.ID, 1, 0, "A1"),
		snackItem(popcornID, 1),
	))
	s.Require().NoError(err)

	got, err := s.checkout.GetOrder(s.ctx, customer, created.Order.ID)
	s.Require().NoError(err)
	s.Equal(created.Order.ID, got.Order.ID)
	s.Len(got.Bookings, 1)
	s.Require().NotNil(got.Purchase)
	s.Equal(created.Purchase.ID, got.Purchase.ID)

	_, err = s.checkout.GetOrder(s.ctx, admin, created.Order.ID)
	s.NoError(err)

	_, err = s.checkout.GetOrder(s.ctx, other, created.Order.ID)
	s.requireKind(err, domain.KindUnauthorized)

	_, err = s.checkout.GetOrder(s.ctx, customer, uuid.New())
	s.requireKind(err, domain.KindNotFound)
}

func (s *ServiceTestSuite) TestReceiptSubjectNamesTheOrder() {
	showtime := s.scheduleShowtime(24, 100, 1000)

	snapshot, err := s.checkout.Checkout(s.ctx, customer, cardCart(ticketItem(showtime.ID, 1, 0, "A1")))
	s.Require().NoError(err)

	s.runner.Wait()

	sent := s.notifier.Sent()
	s.Require().Len(sent, 1)
	s.True(strings.HasPrefix(sent[0].subject, "Your CineX order "+snapshot.Order.ID.String()))
	s.Empty(snapshot.Email, "the returned snapshot must not be mutated by the receipt job")
}

func (s *ServiceTestSuite) TestCardPaymentIsSingleUse() {
	showtime := s.scheduleShowtime(24, 100, 1000)

	_, err := s.checkout.Checkout(s.ctx, customer, cardCart(ticketItem(showtime.ID, 1, 0, "A1")))
	s.Require().NoError(err)

	before := s.showtime(showtime.ID)
	bookingsBefore, purchasesBefore, ordersBefore := s.store.Counts()

	_, err = s.checkout.Checkout(s.ctx, customer, cardCart(ticketItem(showtime.ID, 1, 0, "A2"), snackItem(popcornID, 1)))
	s.requireKind(err, domain.KindValidation)
	s.EqualError(err, "payment reference has already been used")

	s.Equal(before, s.showtime(showtime.ID))
	s.Equal(5, s.snackQuantity(popcornID))

	bookingsAfter, purchasesAfter, ordersAfter := s.store.Counts()
	s.Equal(bookingsBefore, bookingsAfter)
	s.Equal(purchasesBefore, purchasesAfter)
	s.Equal(ordersBefore, ordersAfter)

	_, err = s.checkout.Checkout(s.ctx, admin, domain.Cart{
		Items:         []domain.CartItem{ticketItem(showtime.ID, 1, 0, "A3")},
		PaymentMethod: domain.PaymentCash,
	})
	s.NoError(err, "cash orders carry no reference")
}
