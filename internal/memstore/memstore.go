// Package memstore is an in-memory domain.Store. Each transaction works on a private copy of
// the data which replaces the shared copy on commit, so aborted transactions leave no trace.
// Transactions are serialized, which gives them the isolation of a serializable database.
package memstore

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/cinex/internal/domain"
	"github.com/shopspring/decimal"
)

type data struct {
	showtimes      map[int]domain.Showtime
	bookings       map[uuid.UUID]domain.Booking
	snacks         map[int]domain.Snack
	purchases      map[uuid.UUID]domain.Purchase
	orders         map[uuid.UUID]domain.Order
	nextShowtimeID int
}

func newData() *data {
	return &data{
		showtimes:      make(map[int]domain.Showtime),
		bookings:       make(map[uuid.UUID]domain.Booking),
		snacks:         make(map[int]domain.Snack),
		purchases:      make(map[uuid.UUID]domain.Purchase),
		orders:         make(map[uuid.UUID]domain.Order),
		nextShowtimeID: 1,
	}
}

func (d *data) clone() *data {
	c := newData()
	c.nextShowtimeID = d.nextShowtimeID

	for k, v := range d.showtimes {
		c.showtimes[k] = copyShowtime(v)
	}
	for k, v := range d.bookings {
		c.bookings[k] = copyBooking(v)
	}
	for k, v := range d.snacks {
		c.snacks[k] = v
	}
	for k, v := range d.purchases {
		c.purchases[k] = copyPurchase(v)
	}
	for k, v := range d.orders {
		c.orders[k] = copyOrder(v)
	}

	return c
}

type Store struct {
	mu       sync.Mutex
	data     *data
	failures map[string]error
}

func New() *Store {
	return &Store{
		data:     newData(),
		failures: make(map[string]error),
	}
}

// FailOn makes every call of the named repository operation (e.g. "orders.Create") return err.
// It simulates infrastructure failures inside a transaction.
func (s *Store) FailOn(operation string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failures[operation] = err
}

func (s *Store) RunInTx(ctx context.Context, fn func(tx domain.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	working := s.data.clone()

	err := fn(&tx{data: working, failures: s.failures})
	if err != nil {
		return err
	}

	s.data = working

	return nil
}

// Seed helpers write committed data directly, outside of any transaction.

func (s *Store) AddShowtime(showtime domain.Showtime) domain.Showtime {
	s.mu.Lock()
	defer s.mu.Unlock()

	if showtime.ID == 0 {
		showtime.ID = s.data.nextShowtimeID
	}
	if showtime.ID >= s.data.nextShowtimeID {
		s.data.nextShowtimeID = showtime.ID + 1
	}

	s.data.showtimes[showtime.ID] = copyShowtime(showtime)

	return showtime
}

func (s *Store) AddSnack(snack domain.Snack) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.snacks[snack.ID] = snack
}

func (s *Store) Showtime(id int) (domain.Showtime, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.data.showtimes[id]

	return copyShowtime(v), ok
}

func (s *Store) Snack(id int) (domain.Snack, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.data.snacks[id]

	return v, ok
}

func (s *Store) Booking(id uuid.UUID) (domain.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.data.bookings[id]

	return copyBooking(v), ok
}

func (s *Store) Purchase(id uuid.UUID) (domain.Purchase, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.data.purchases[id]

	return copyPurchase(v), ok
}

func (s *Store) Order(id uuid.UUID) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.data.orders[id]

	return copyOrder(v), ok
}

func (s *Store) Counts() (bookings, purchases, orders int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.data.bookings), len(s.data.purchases), len(s.data.orders)
}

type tx struct {
	data     *data
	failures map[string]error
}

func (t *tx) fail(operation string) error {
	if err, ok := t.failures[operation]; ok {
		return fmt.Errorf("%s: %w", operation, err)
	}

	return nil
}

func (t *tx) Showtimes() domain.ShowtimeRepository { return showtimeRepo{t} }
func (t *tx) Bookings() domain.BookingRepository   { return bookingRepo{t} }
func (t *tx) Snacks() domain.SnackRepository       { return snackRepo{t} }
func (t *tx) Purchases() domain.PurchaseRepository { return purchaseRepo{t} }
func (t *tx) Orders() domain.OrderRepository       { return orderRepo{t} }

type showtimeRepo struct{ *tx }

func (r showtimeRepo) Create(_ context.Context, showtime *domain.Showtime) error {
	if err := r.fail("showtimes.Create"); err != nil {
		return err
	}

	showtime.ID = r.data.nextShowtimeID
	r.data.nextShowtimeID++
	r.data.showtimes[showtime.ID] = copyShowtime(*showtime)

	return nil
}

func (r showtimeRepo) Get(_ context.Context, id int) (*domain.Showtime, error) {
	if err := r.fail("showtimes.Get"); err != nil {
		return nil, err
	}

	v, ok := r.data.showtimes[id]
	if !ok {
		return nil, domain.NewNotFoundError("showtime", id)
	}

	c := copyShowtime(v)

	return &c, nil
}

func (r showtimeRepo) GetForUpdate(ctx context.Context, id int) (*domain.Showtime, error) {
	return r.Get(ctx, id)
}

func (r showtimeRepo) ListScheduledByHall(_ context.Context, hallID int, from, to time.Time) ([]domain.Showtime, error) {
	if err := r.fail("showtimes.ListScheduledByHall"); err != nil {
		return nil, err
	}

	var result []domain.Showtime
	for _, s := range r.data.showtimes {
		if s.HallID != hallID || s.Status != domain.ShowtimeScheduled {
			continue
		}
		if !s.StartTime.Before(to) || !s.EndTime.After(from) {
			continue
		}
		result = append(result, copyShowtime(s))
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].StartTime.Before(result[j].StartTime)
	})

	return result, nil
}

func (r showtimeRepo) Update(_ context.Context, showtime *domain.Showtime) error {
	if err := r.fail("showtimes.Update"); err != nil {
		return err
	}

	if _, ok := r.data.showtimes[showtime.ID]; !ok {
		return domain.NewNotFoundError("showtime", showtime.ID)
	}

	r.data.showtimes[showtime.ID] = copyShowtime(*showtime)

	return nil
}

func (r showtimeRepo) Delete(_ context.Context, id int) error {
	if err := r.fail("showtimes.Delete"); err != nil {
		return err
	}

	if _, ok := r.data.showtimes[id]; !ok {
		return domain.NewNotFoundError("showtime", id)
	}

	delete(r.data.showtimes, id)

	return nil
}

type bookingRepo struct{ *tx }

func (r bookingRepo) Create(_ context.Context, booking *domain.Booking) error {
	if err := r.fail("bookings.Create"); err != nil {
		return err
	}

	if _, ok := r.data.bookings[booking.ID]; ok {
		return fmt.Errorf("booking %s already exists", booking.ID)
	}

	r.data.bookings[booking.ID] = copyBooking(*booking)

	return nil
}

func (r bookingRepo) Get(_ context.Context, id uuid.UUID) (*domain.Booking, error) {
	if err := r.fail("bookings.Get"); err != nil {
		return nil, err
	}

	v, ok := r.data.bookings[id]
	if !ok {
		return nil, domain.NewNotFoundError("booking", id)
	}

	c := copyBooking(v)

	return &c, nil
}

func (r bookingRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	return r.Get(ctx, id)
}

func (r bookingRepo) MarkCanceled(_ context.Context, id uuid.UUID, at time.Time) error {
	if err := r.fail("bookings.MarkCanceled"); err != nil {
		return err
	}

	v, ok := r.data.bookings[id]
	if !ok {
		return domain.NewNotFoundError("booking", id)
	}

	v.Canceled = true
	v.CanceledAt = &at
	r.data.bookings[id] = v

	return nil
}

type snackRepo struct{ *tx }

func (r snackRepo) Get(_ context.Context, id int) (*domain.Snack, error) {
	if err := r.fail("snacks.Get"); err != nil {
		return nil, err
	}

	v, ok := r.data.snacks[id]
	if !ok {
		return nil, domain.NewNotFoundError("snack", id)
	}

	return &v, nil
}

func (r snackRepo) GetForUpdate(ctx context.Context, id int) (*domain.Snack, error) {
	return r.Get(ctx, id)
}

func (r snackRepo) AdjustQuantity(_ context.Context, id int, delta int) error {
	if err := r.fail("snacks.AdjustQuantity"); err != nil {
		return err
	}

	v, ok := r.data.snacks[id]
	if !ok {
		return domain.NewNotFoundError("snack", id)
	}

	if v.Quantity+delta < 0 {
		return domain.NewInsufficientStockError(v.Name, -delta, v.Quantity)
	}

	v.Quantity += delta
	r.data.snacks[id] = v

	return nil
}

type purchaseRepo struct{ *tx }

func (r purchaseRepo) Create(_ context.Context, purchase *domain.Purchase) error {
	if err := r.fail("purchases.Create"); err != nil {
		return err
	}

	r.data.purchases[purchase.ID] = copyPurchase(*purchase)

	return nil
}

func (r purchaseRepo) Get(_ context.Context, id uuid.UUID) (*domain.Purchase, error) {
	if err := r.fail("purchases.Get"); err != nil {
		return nil, err
	}

	v, ok := r.data.purchases[id]
	if !ok {
		return nil, domain.NewNotFoundError("purchase", id)
	}

	c := copyPurchase(v)

	return &c, nil
}

func (r purchaseRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Purchase, error) {
	return r.Get(ctx, id)
}

func (r purchaseRepo) MarkCanceled(_ context.Context, id uuid.UUID, at time.Time) error {
	if err := r.fail("purchases.MarkCanceled"); err != nil {
		return err
	}

	v, ok := r.data.purchases[id]
	if !ok {
		return domain.NewNotFoundError("purchase", id)
	}

	v = copyPurchase(v)
	v.Canceled = true
	v.CanceledAt = &at
	for i := range v.Items {
		v.Items[i].Canceled = true
	}
	r.data.purchases[id] = v

	return nil
}

type orderRepo struct{ *tx }

func (r orderRepo) Create(_ context.Context, order *domain.Order) error {
	if err := r.fail("orders.Create"); err != nil {
		return err
	}

	if order.PaymentMethod == domain.PaymentCard {
		for _, o := range r.data.orders {
			if o.PaymentMethod == domain.PaymentCard && o.PaymentReference == order.PaymentReference {
				return domain.NewPaymentReusedError()
			}
		}
	}

	r.data.orders[order.ID] = copyOrder(*order)

	return nil
}

func (r orderRepo) Get(_ context.Context, id uuid.UUID) (*domain.Order, error) {
	if err := r.fail("orders.Get"); err != nil {
		return nil, err
	}

	v, ok := r.data.orders[id]
	if !ok {
		return nil, domain.NewNotFoundError("order", id)
	}

	c := copyOrder(v)

	return &c, nil
}

func (r orderRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return r.Get(ctx, id)
}

func (r orderRepo) FindByBooking(_ context.Context, bookingID uuid.UUID) (*domain.Order, error) {
	if err := r.fail("orders.FindByBooking"); err != nil {
		return nil, err
	}

	for _, o := range r.data.orders {
		if slices.Contains(o.BookingIDs, bookingID) {
			c := copyOrder(o)
			return &c, nil
		}
	}

	return nil, domain.NewNotFoundError("order for booking", bookingID)
}

func (r orderRepo) FindByPurchase(_ context.Context, purchaseID uuid.UUID) (*domain.Order, error) {
	if err := r.fail("orders.FindByPurchase"); err != nil {
		return nil, err
	}

	for _, o := range r.data.orders {
		if o.PurchaseID != nil && *o.PurchaseID == purchaseID {
			c := copyOrder(o)
			return &c, nil
		}
	}

	return nil, domain.NewNotFoundError("order for purchase", purchaseID)
}

func (r orderRepo) UpdateTotal(_ context.Context, id uuid.UUID, total decimal.Decimal) error {
	if err := r.fail("orders.UpdateTotal"); err != nil {
		return err
	}

	v, ok := r.data.orders[id]
	if !ok {
		return domain.NewNotFoundError("order", id)
	}

	v.TotalPrice = total
	r.data.orders[id] = v

	return nil
}

func (r orderRepo) MarkCancelled(_ context.Context, id uuid.UUID, at time.Time) error {
	if err := r.fail("orders.MarkCancelled"); err != nil {
		return err
	}

	v, ok := r.data.orders[id]
	if !ok {
		return domain.NewNotFoundError("order", id)
	}

	v.Status = domain.OrderCancelled
	v.CanceledAt = &at
	r.data.orders[id] = v

	return nil
}

func copyShowtime(s domain.Showtime) domain.Showtime {
	s.BookedSeats = slices.Clone(s.BookedSeats)
	return s
}

func copyBooking(b domain.Booking) domain.Booking {
	b.Seats = slices.Clone(b.Seats)
	return b
}

func copyPurchase(p domain.Purchase) domain.Purchase {
	p.Items = slices.Clone(p.Items)
	return p
}

func copyOrder(o domain.Order) domain.Order {
	o.BookingIDs = slices.Clone(o.BookingIDs)
	if o.PurchaseID != nil {
		id := *o.PurchaseID
		o.PurchaseID = &id
	}
	return o
}
