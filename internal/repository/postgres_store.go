package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinex/internal/domain"
)

// hallLockNamespace is the first key of the transaction-scoped advisory lock taken
// before a hall's schedule is read for an overlap check.
const hallLockNamespace = 4801

// PostgresStore implements domain.Store on a pgx pool. Every unit of work runs in one
// READ COMMITTED transaction and rows read for update are locked with SELECT ... FOR UPDATE.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{
		db: db,
	}
}

func (p *PostgresStore) RunInTx(ctx context.Context, fn func(tx domain.Tx) error) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		return fn(&postgresTx{tx: tx})
	})
}

func runInTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	var txOptions pgx.TxOptions

	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return translateError(tx.Commit(ctx))
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}

type postgresTx struct {
	tx pgx.Tx
}

func (t *postgresTx) Showtimes() domain.ShowtimeRepository { return &showtimeRepository{tx: t.tx} }
func (t *postgresTx) Bookings() domain.BookingRepository   { return &bookingRepository{tx: t.tx} }
func (t *postgresTx) Snacks() domain.SnackRepository       { return &snackRepository{tx: t.tx} }
func (t *postgresTx) Purchases() domain.PurchaseRepository { return &purchaseRepository{tx: t.tx} }
func (t *postgresTx) Orders() domain.OrderRepository       { return &orderRepository{tx: t.tx} }

// translateError maps constraint violations raised by the schema onto domain errors.
// Anything else is returned unchanged and aborts the surrounding unit of work.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.ExclusionViolation:
		return &domain.Error{
			Kind:    domain.KindScheduleConflict,
			Message: "the hall is already scheduled for an overlapping slot",
		}
	case pgerrcode.CheckViolation:
		switch pgErr.ConstraintName {
		case "snacks_quantity_check":
			return &domain.Error{Kind: domain.KindInsufficientStock, Message: "not enough stock left"}
		case "showtimes_seats_available_check":
			return &domain.Error{Kind: domain.KindInsufficientSeats, Message: "not enough seats left"}
		}
	case pgerrcode.UniqueViolation:
		switch pgErr.ConstraintName {
		case "order_bookings_booking_id_key":
			return domain.NewValidationError("booking already belongs to an order")
		case "orders_card_payment_reference_key":
			return domain.NewPaymentReusedError()
		}
	}

	return err
}
