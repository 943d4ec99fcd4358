package domain

import (
	"context"
	"time"
)

type SeatStatus string

const (
	SeatAvailable SeatStatus = "AVAILABLE"
	SeatLocked    SeatStatus = "LOCKED"
	SeatBooked    SeatStatus = "BOOKED"
)

// SeatState is the transient real-time state of one seat of a showtime.
type SeatState struct {
	Label    string     `json:"label"`
	Status   SeatStatus `json:"status"`
	Holder   string     `json:"holder,omitempty"`
	LockedAt time.Time  `json:"lockedAt,omitzero"`
}

// SeatUpdate is the event broadcast on a showtime channel whenever a seat changes state.
type SeatUpdate struct {
	ShowtimeID int        `json:"showtimeId"`
	SeatLabel  string     `json:"seatLabel"`
	Status     SeatStatus `json:"status"`
}

// SeatMapStore persists per-showtime seat states. Every method is atomic per call.
type SeatMapStore interface {
	// Lock moves label from AVAILABLE (or an expired LOCKED) to LOCKED by holder.
	Lock(ctx context.Context, showtimeID int, label, holder string, now time.Time, ttl time.Duration) (SeatState, error)
	// Confirm moves label from LOCKED by holder to BOOKED.
	Confirm(ctx context.Context, showtimeID int, label, holder string, now time.Time, ttl time.Duration) (SeatState, error)
	// Unlock moves label from LOCKED by holder back to AVAILABLE.
	Unlock(ctx context.Context, showtimeID int, label, holder string) (SeatState, error)
	// Merge rebuilds the map from labels: booked labels become BOOKED, LOCKED/BOOKED entries are
	// kept, every other label is AVAILABLE. AVAILABLE entries missing from labels are dropped.
	Merge(ctx context.Context, showtimeID int, labels, booked []string) (map[string]SeatState, error)
	// SetStatus overwrites the state of labels unconditionally.
	SetStatus(ctx context.Context, showtimeID int, labels []string, status SeatStatus, holder string) error
	Get(ctx context.Context, showtimeID int) (map[string]SeatState, error)
}

// SeatBroadcaster publishes seat updates to subscribers of a showtime. Delivery is fire-and-forget.
type SeatBroadcaster interface {
	Publish(ctx context.Context, update SeatUpdate) error
}
