package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/metinatakli/cinex/internal/domain"
)

type snackRepository struct {
	tx pgx.Tx
}

func (r *snackRepository) Get(ctx context.Context, id int) (*domain.Snack, error) {
	return r.get(ctx, `SELECT id, name, price, quantity, available FROM snacks WHERE id = $1`, id)
}

func (r *snackRepository) GetForUpdate(ctx context.Context, id int) (*domain.Snack, error) {
	return r.get(ctx, `SELECT id, name, price, quantity, available FROM snacks WHERE id = $1 FOR UPDATE`, id)
}

func (r *snackRepository) get(ctx context.Context, query string, id int) (*domain.Snack, error) {
	var snack domain.Snack

	err := r.tx.QueryRow(ctx, query, id).Scan(
		&snack.ID,
		&snack.Name,
		&snack.Price,
		&snack.Quantity,
		&snack.Available,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("snack", id)
		}

		return nil, err
	}

	return &snack, nil
}

// AdjustQuantity refuses to go below zero in the WHERE clause; the check constraint on
// snacks.quantity backs it up.
func (r *snackRepository) AdjustQuantity(ctx context.Context, id int, delta int) error {
	query := `
		UPDATE snacks
		SET quantity = quantity + $2
		WHERE id = $1 AND quantity + $2 >= 0
		RETURNING quantity
	`

	var quantity int

	err := r.tx.QueryRow(ctx, query, id, delta).Scan(&quantity)
	if err == nil {
		return nil
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		return translateError(err)
	}

	snack, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	return domain.NewInsufficientStockError(snack.Name, -delta, snack.Quantity)
}
