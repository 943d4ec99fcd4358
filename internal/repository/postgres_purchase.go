package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/metinatakli/cinex/internal/domain"
)

type purchaseRepository struct {
	tx pgx.Tx
}

func (r *purchaseRepository) Create(ctx context.Context, purchase *domain.Purchase) error {
	items, err := json.Marshal(purchase.Items)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO purchases (id, user_id, items, total_price, canceled, created_at, canceled_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = r.tx.Exec(
		ctx,
		query,
		purchase.ID,
		purchase.UserID,
		items,
		purchase.TotalPrice,
		purchase.Canceled,
		purchase.CreatedAt,
		purchase.CanceledAt,
	)

	return translateError(err)
}

func (r *purchaseRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Purchase, error) {
	return r.get(ctx, `
		SELECT id, user_id, items, total_price, canceled, created_at, canceled_at
		FROM purchases
		WHERE id = $1`, id)
}

func (r *purchaseRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Purchase, error) {
	return r.get(ctx, `
		SELECT id, user_id, items, total_price, canceled, created_at, canceled_at
		FROM purchases
		WHERE id = $1
		FOR UPDATE`, id)
}

func (r *purchaseRepository) get(ctx context.Context, query string, id uuid.UUID) (*domain.Purchase, error) {
	var (
		purchase  domain.Purchase
		itemsJson json.RawMessage
	)

	err := r.tx.QueryRow(ctx, query, id).Scan(
		&purchase.ID,
		&purchase.UserID,
		&itemsJson,
		&purchase.TotalPrice,
		&purchase.Canceled,
		&purchase.CreatedAt,
		&purchase.CanceledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("purchase", id)
		}

		return nil, err
	}

	if len(itemsJson) > 0 {
		if err := json.Unmarshal(itemsJson, &purchase.Items); err != nil {
			return nil, err
		}
	}

	return &purchase, nil
}

func (r *purchaseRepository) MarkCanceled(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `
		UPDATE purchases
		SET canceled = TRUE,
			canceled_at = $2,
			items = COALESCE(
				(SELECT jsonb_agg(item || '{"canceled": true}'::jsonb) FROM jsonb_array_elements(items) AS item),
				'[]'::jsonb)
		WHERE id = $1
	`

	tag, err := r.tx.Exec(ctx, query, id, at)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("purchase", id)
	}

	return nil
}
