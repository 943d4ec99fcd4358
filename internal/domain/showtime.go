package domain

import (
	"context"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

type ShowtimeStatus string

const (
	ShowtimeScheduled ShowtimeStatus = "scheduled"
	ShowtimeCancelled ShowtimeStatus = "cancelled"
	ShowtimeCompleted ShowtimeStatus = "completed"
)

func (s ShowtimeStatus) Terminal() bool {
	return s == ShowtimeCancelled || s == ShowtimeCompleted
}

// Interval is a half-open [Start, End) slot on a hall.
type Interval struct {
	ShowtimeID int       `json:"showtimeId,omitempty"`
	HallID     int       `json:"hallId"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
}

func (i Interval) Valid() bool {
	return i.Start.Before(i.End)
}

type Showtime struct {
	ID             int
	MovieID        int
	HallID         int
	CinemaID       int
	StartTime      time.Time
	EndTime        time.Time
	Status         ShowtimeStatus
	TotalSeats     int
	SeatsAvailable int
	BookedSeats    []string
	Price          decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (s *Showtime) Interval() Interval {
	return Interval{ShowtimeID: s.ID, HallID: s.HallID, Start: s.StartTime, End: s.EndTime}
}

// CommittedSeats is the number of seats held by active bookings.
func (s *Showtime) CommittedSeats() int {
	return s.TotalSeats - s.SeatsAvailable
}

func (s *Showtime) IsBooked(label string) bool {
	return slices.Contains(s.BookedSeats, label)
}

// Reserve appends labels to the booked set and keeps SeatsAvailable in step with it.
func (s *Showtime) Reserve(labels []string) {
	s.BookedSeats = append(s.BookedSeats, labels...)
	s.SeatsAvailable -= len(labels)
}

// Release removes labels from the booked set and returns the number actually released.
func (s *Showtime) Release(labels []string) int {
	released := 0
	kept := make([]string, 0, len(s.BookedSeats))

	for _, label := range s.BookedSeats {
		if slices.Contains(labels, label) {
			released++
			continue
		}
		kept = append(kept, label)
	}

	s.BookedSeats = kept
	s.SeatsAvailable += released

	return released
}

type ShowtimePatch struct {
	MovieID    *int
	HallID     *int
	StartTime  *time.Time
	EndTime    *time.Time
	TotalSeats *int
	Price      *decimal.Decimal
	Status     *ShowtimeStatus
}

// ShowtimeRepository is only used inside a Tx. GetForUpdate locks the row until the
// surrounding transaction ends.
type ShowtimeRepository interface {
	Create(ctx context.Context, showtime *Showtime) error
	Get(ctx context.Context, id int) (*Showtime, error)
	GetForUpdate(ctx context.Context, id int) (*Showtime, error)
	ListScheduledByHall(ctx context.Context, hallID int, from, to time.Time) ([]Showtime, error)
	Update(ctx context.Context, showtime *Showtime) error
	Delete(ctx context.Context, id int) error
}
