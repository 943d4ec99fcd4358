package memstore

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/metinatakli/cinex/internal/domain"
)

// Catalog is an in-memory domain.CatalogRepository and domain.UserRepository.
type Catalog struct {
	mu      sync.RWMutex
	movies  map[int]domain.Movie
	halls   map[int]domain.Hall
	cinemas map[int]domain.Cinema
	users   map[int]domain.User
}

func NewCatalog() *Catalog {
	return &Catalog{
		movies:  make(map[int]domain.Movie),
		halls:   make(map[int]domain.Hall),
		cinemas: make(map[int]domain.Cinema),
		users:   make(map[int]domain.User),
	}
}

func (c *Catalog) AddMovie(movie domain.Movie) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.movies[movie.ID] = movie
}

func (c *Catalog) AddHall(hall domain.Hall) {
	c.mu.Lock()
	defer c.mu.Unlock()

	hall.Seats = slices.Clone(hall.Seats)
	c.halls[hall.ID] = hall
}

func (c *Catalog) AddCinema(cinema domain.Cinema) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cinemas[cinema.ID] = cinema
}

func (c *Catalog) AddUser(user domain.User) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.users[user.ID] = user
}

func (c *Catalog) GetMovie(_ context.Context, id int) (*domain.Movie, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.movies[id]
	if !ok {
		return nil, domain.NewNotFoundError("movie", id)
	}

	return &v, nil
}

func (c *Catalog) GetHall(_ context.Context, id int) (*domain.Hall, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.halls[id]
	if !ok {
		return nil, domain.NewNotFoundError("hall", id)
	}

	v.Seats = slices.Clone(v.Seats)

	return &v, nil
}

func (c *Catalog) GetCinema(_ context.Context, id int) (*domain.Cinema, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.cinemas[id]
	if !ok {
		return nil, domain.NewNotFoundError("cinema", id)
	}

	return &v, nil
}

func (c *Catalog) GetById(_ context.Context, id int) (*domain.User, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.users[id]
	if !ok {
		return nil, domain.NewNotFoundError("user", id)
	}

	return &v, nil
}

// GridHall builds a hall whose seats are all active and labelled row letter + column number (A1, A2, ...).
func GridHall(id, cinemaID, rows, cols int) domain.Hall {
	hall := domain.Hall{ID: id, CinemaID: cinemaID, Name: fmt.Sprintf("Hall %d", id), Rows: rows, Cols: cols}

	for r := range rows {
		for col := 1; col <= cols; col++ {
			hall.Seats = append(hall.Seats, domain.SeatDescriptor{
				Row:    r + 1,
				Col:    col,
				Label:  SeatLabel(r+1, col),
				Kind:   domain.SeatKindStandard,
				Active: true,
			})
		}
	}

	return hall
}

// SeatLabel formats row 1, col 3 as "A3". Rows past Z continue with AA, AB, ...
func SeatLabel(row, col int) string {
	var prefix []byte
	for n := row; n > 0; n = (n - 1) / 26 {
		prefix = append([]byte{byte('A' + (n-1)%26)}, prefix...)
	}

	return fmt.Sprintf("%s%d", prefix, col)
}
