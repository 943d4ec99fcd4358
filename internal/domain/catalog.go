package domain

import (
	"context"
	"time"
)

type Movie struct {
	ID       int
	Title    string
	Duration int // minutes
}

func (m Movie) Runtime() time.Duration {
	return time.Duration(m.Duration) * time.Minute
}

type Cinema struct {
	ID   int
	Name string
	City string
}

type SeatKind string

const (
	SeatKindStandard   SeatKind = "Standard"
	SeatKindVIP        SeatKind = "VIP"
	SeatKindRecliner   SeatKind = "Recliner"
	SeatKindWheelchair SeatKind = "Wheelchair"
)

type SeatDescriptor struct {
	Row    int      `json:"row"`
	Col    int      `json:"col"`
	Label  string   `json:"label"`
	Kind   SeatKind `json:"kind"`
	Active bool     `json:"active"`
}

type Hall struct {
	ID       int
	CinemaID int
	Name     string
	Rows     int
	Cols     int
	Seats    []SeatDescriptor
}

// Capacity is the number of active seats in the layout.
func (h Hall) Capacity() int {
	total := 0
	for _, s := range h.Seats {
		if s.Active {
			total++
		}
	}

	return total
}

func (h Hall) ActiveLabels() []string {
	labels := make([]string, 0, len(h.Seats))
	for _, s := range h.Seats {
		if s.Active {
			labels = append(labels, s.Label)
		}
	}

	return labels
}

// CatalogRepository is the read-only view of movies, cinemas and halls owned by the catalog admin.
type CatalogRepository interface {
	GetMovie(ctx context.Context, id int) (*Movie, error)
	GetHall(ctx context.Context, id int) (*Hall, error)
	GetCinema(ctx context.Context, id int) (*Cinema, error)
}
