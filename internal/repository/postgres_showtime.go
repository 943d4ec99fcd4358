package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/metinatakli/cinex/internal/domain"
)

type showtimeRepository struct {
	tx pgx.Tx
}

const showtimeColumns = `
	id, movie_id, hall_id, COALESCE(cinema_id, 0), start_time, end_time, status,
	total_seats, seats_available, booked_seats, price, created_at, updated_at`

func scanShowtime(row pgx.Row) (*domain.Showtime, error) {
	var showtime domain.Showtime

	err := row.Scan(
		&showtime.ID,
		&showtime.MovieID,
		&showtime.HallID,
		&showtime.CinemaID,
		&showtime.StartTime,
		&showtime.EndTime,
		&showtime.Status,
		&showtime.TotalSeats,
		&showtime.SeatsAvailable,
		&showtime.BookedSeats,
		&showtime.Price,
		&showtime.CreatedAt,
		&showtime.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &showtime, nil
}

func (r *showtimeRepository) Create(ctx context.Context, showtime *domain.Showtime) error {
	query := `
		INSERT INTO showtimes (
			movie_id, hall_id, cinema_id, start_time, end_time, status,
			total_seats, seats_available, booked_seats, price, created_at, updated_at
		)
		VALUES ($1, $2, NULLIF($3, 0), $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	bookedSeats := showtime.BookedSeats
	if bookedSeats == nil {
		bookedSeats = []string{}
	}

	err := r.tx.QueryRow(
		ctx,
		query,
		showtime.MovieID,
		showtime.HallID,
		showtime.CinemaID,
		showtime.StartTime,
		showtime.EndTime,
		showtime.Status,
		showtime.TotalSeats,
		showtime.SeatsAvailable,
		bookedSeats,
		showtime.Price,
		showtime.CreatedAt,
		showtime.UpdatedAt,
	).Scan(&showtime.ID)

	return translateError(err)
}

func (r *showtimeRepository) Get(ctx context.Context, id int) (*domain.Showtime, error) {
	return r.get(ctx, `SELECT `+showtimeColumns+` FROM showtimes WHERE id = $1`, id)
}

func (r *showtimeRepository) GetForUpdate(ctx context.Context, id int) (*domain.Showtime, error) {
	return r.get(ctx, `SELECT `+showtimeColumns+` FROM showtimes WHERE id = $1 FOR UPDATE`, id)
}

func (r *showtimeRepository) get(ctx context.Context, query string, id int) (*domain.Showtime, error) {
	showtime, err := scanShowtime(r.tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("showtime", id)
		}

		return nil, err
	}

	return showtime, nil
}

// ListScheduledByHall serializes schedulers of the same hall with an advisory lock held
// until the transaction ends, so the overlap check and the following write see the same schedule.
func (r *showtimeRepository) ListScheduledByHall(
	ctx context.Context,
	hallID int,
	from, to time.Time) ([]domain.Showtime, error) {

	_, err := r.tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1, $2)`, hallLockNamespace, hallID)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + showtimeColumns + `
		FROM showtimes
		WHERE hall_id = $1
			AND status = 'scheduled'
			AND start_time < $3
			AND end_time > $2
		ORDER BY start_time
	`

	rows, err := r.tx.Query(ctx, query, hallID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	showtimes := make([]domain.Showtime, 0)

	for rows.Next() {
		showtime, err := scanShowtime(rows)
		if err != nil {
			return nil, err
		}

		showtimes = append(showtimes, *showtime)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return showtimes, nil
}

func (r *showtimeRepository) Update(ctx context.Context, showtime *domain.Showtime) error {
	query := `
		UPDATE showtimes
		SET movie_id = $2,
			hall_id = $3,
			cinema_id = NULLIF($4, 0),
			start_time = $5,
			end_time = $6,
			status = $7,
			total_seats = $8,
			seats_available = $9,
			booked_seats = $10,
			price = $11,
			updated_at = $12
		WHERE id = $1
	`

	bookedSeats := showtime.BookedSeats
	if bookedSeats == nil {
		bookedSeats = []string{}
	}

	tag, err := r.tx.Exec(
		ctx,
		query,
		showtime.ID,
		showtime.MovieID,
		showtime.HallID,
		showtime.CinemaID,
		showtime.StartTime,
		showtime.EndTime,
		showtime.Status,
		showtime.TotalSeats,
		showtime.SeatsAvailable,
		bookedSeats,
		showtime.Price,
		showtime.UpdatedAt,
	)
	if err != nil {
		return translateError(err)
	}

	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("showtime", showtime.ID)
	}

	return nil
}

func (r *showtimeRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.tx.Exec(ctx, `DELETE FROM showtimes WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("showtime", id)
	}

	return nil
}
