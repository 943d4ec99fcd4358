package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinex/internal/domain"
)

// PostgresCatalogRepository reads movies, cinemas and hall layouts. The catalog is
// maintained elsewhere, so reads go straight to the pool outside any unit of work.
type PostgresCatalogRepository struct {
	db *pgxpool.Pool
}

func NewPostgresCatalogRepository(db *pgxpool.Pool) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{
		db: db,
	}
}

func (p *PostgresCatalogRepository) GetMovie(ctx context.Context, id int) (*domain.Movie, error) {
	var movie domain.Movie

	err := p.db.QueryRow(ctx, `SELECT id, title, duration FROM movies WHERE id = $1`, id).
		Scan(&movie.ID, &movie.Title, &movie.Duration)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("movie", id)
		}

		return nil, err
	}

	return &movie, nil
}

func (p *PostgresCatalogRepository) GetCinema(ctx context.Context, id int) (*domain.Cinema, error) {
	var cinema domain.Cinema

	err := p.db.QueryRow(ctx, `SELECT id, name, city FROM cinemas WHERE id = $1`, id).
		Scan(&cinema.ID, &cinema.Name, &cinema.City)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("cinema", id)
		}

		return nil, err
	}

	return &cinema, nil
}

func (p *PostgresCatalogRepository) GetHall(ctx context.Context, id int) (*domain.Hall, error) {
	var hall domain.Hall

	err := p.db.QueryRow(ctx, `SELECT id, cinema_id, name, seat_rows, seat_cols FROM halls WHERE id = $1`, id).
		Scan(&hall.ID, &hall.CinemaID, &hall.Name, &hall.Rows, &hall.Cols)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("hall", id)
		}

		return nil, err
	}

	query := `
		SELECT seat_row, seat_col, label, seat_type, active
		FROM seats
		WHERE hall_id = $1
		ORDER BY seat_row, seat_col
	`

	rows, err := p.db.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hall.Seats = make([]domain.SeatDescriptor, 0, hall.Rows*hall.Cols)

	for rows.Next() {
		var seat domain.SeatDescriptor

		err = rows.Scan(
			&seat.Row,
			&seat.Col,
			&seat.Label,
			&seat.Kind,
			&seat.Active,
		)
		if err != nil {
			return nil, err
		}

		hall.Seats = append(hall.Seats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return &hall, nil
}
