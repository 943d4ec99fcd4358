package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/metinatakli/cinex/internal/domain"
)

type bookingRepository struct {
	tx pgx.Tx
}

const bookingColumns = `
	id, user_id, showtime_id, seats, adult_count, child_count, total_price, canceled,
	movie_title, hall_name, start_time, created_at, canceled_at`

func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.tx.Exec(
		ctx,
		query,
		booking.ID,
		booking.UserID,
		booking.ShowtimeID,
		booking.Seats,
		booking.AdultCount,
		booking.ChildCount,
		booking.TotalPrice,
		booking.Canceled,
		booking.MovieTitle,
		booking.HallName,
		booking.StartTime,
		booking.CreatedAt,
		booking.CanceledAt,
	)

	return translateError(err)
}

func (r *bookingRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	return r.get(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
}

func (r *bookingRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	return r.get(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, id)
}

func (r *bookingRepository) get(ctx context.Context, query string, id uuid.UUID) (*domain.Booking, error) {
	var booking domain.Booking

	err := r.tx.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.ShowtimeID,
		&booking.Seats,
		&booking.AdultCount,
		&booking.ChildCount,
		&booking.TotalPrice,
		&booking.Canceled,
		&booking.MovieTitle,
		&booking.HallName,
		&booking.StartTime,
		&booking.CreatedAt,
		&booking.CanceledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("booking", id)
		}

		return nil, err
	}

	return &booking, nil
}

func (r *bookingRepository) MarkCanceled(ctx context.Context, id uuid.UUID, at time.Time) error {
	tag, err := r.tx.Exec(ctx, `UPDATE bookings SET canceled = TRUE, canceled_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("booking", id)
	}

	return nil
}
