package seatmap

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/metinatakli/cinex/internal/domain"
)

// MemoryStore keeps seat maps in process. It follows the same transitions as RedisStore
// and backs the in-memory development mode.
type MemoryStore struct {
	mu       sync.Mutex
	showtime map[int]map[string]domain.SeatState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{showtime: make(map[int]map[string]domain.SeatState)}
}

func (s *MemoryStore) Lock(
	_ context.Context,
	showtimeID int,
	label, holder string,
	now time.Time,
	ttl time.Duration) (domain.SeatState, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.showtime[showtimeID][label]
	if !ok {
		return domain.SeatState{}, domain.NewNotFoundError("seat", label)
	}

	status := state.Status
	if status == domain.SeatLocked && expired(state, now, ttl) {
		status = domain.SeatAvailable
	}

	if status != domain.SeatAvailable {
		return domain.SeatState{}, domain.NewSeatUnavailableError(label, status)
	}

	state = domain.SeatState{Label: label, Status: domain.SeatLocked, Holder: holder, LockedAt: time.UnixMilli(now.UnixMilli())}
	s.showtime[showtimeID][label] = state

	return state, nil
}

func (s *MemoryStore) Confirm(
	_ context.Context,
	showtimeID int,
	label, holder string,
	now time.Time,
	ttl time.Duration) (domain.SeatState, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.showtime[showtimeID][label]
	if !ok {
		return domain.SeatState{}, domain.NewNotFoundError("seat", label)
	}

	if state.Status != domain.SeatLocked || state.Holder != holder {
		return domain.SeatState{}, domain.NewUnauthorizedError("seat %s is not locked by this holder", label)
	}

	if expired(state, now, ttl) {
		return domain.SeatState{}, domain.NewUnauthorizedError("the lock on seat %s has expired", label)
	}

	state = domain.SeatState{Label: label, Status: domain.SeatBooked, Holder: holder}
	s.showtime[showtimeID][label] = state

	return state, nil
}

func (s *MemoryStore) Unlock(_ context.Context, showtimeID int, label, holder string) (domain.SeatState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.showtime[showtimeID][label]
	if !ok {
		return domain.SeatState{}, domain.NewNotFoundError("seat", label)
	}

	if state.Status != domain.SeatLocked || state.Holder != holder {
		return domain.SeatState{}, domain.NewUnauthorizedError("seat %s is not locked by this holder", label)
	}

	state = domain.SeatState{Label: label, Status: domain.SeatAvailable}
	s.showtime[showtimeID][label] = state

	return state, nil
}

func (s *MemoryStore) Merge(_ context.Context, showtimeID int, labels, booked []string) (map[string]domain.SeatState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.showtime[showtimeID]
	if current == nil {
		current = make(map[string]domain.SeatState, len(labels))
		s.showtime[showtimeID] = current
	}

	wanted := make(map[string]bool, len(labels))
	for _, label := range labels {
		wanted[label] = true
	}

	for label, state := range current {
		if !wanted[label] && state.Status == domain.SeatAvailable {
			delete(current, label)
		}
	}

	for _, label := range labels {
		state, ok := current[label]
		if !ok || state.Status == domain.SeatAvailable {
			current[label] = domain.SeatState{Label: label, Status: domain.SeatAvailable}
		}
	}

	for _, label := range booked {
		current[label] = domain.SeatState{Label: label, Status: domain.SeatBooked}
	}

	return maps.Clone(current), nil
}

func (s *MemoryStore) SetStatus(
	_ context.Context,
	showtimeID int,
	labels []string,
	status domain.SeatStatus,
	holder string) error {

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.showtime[showtimeID]
	if current == nil {
		current = make(map[string]domain.SeatState, len(labels))
		s.showtime[showtimeID] = current
	}

	for _, label := range labels {
		current[label] = domain.SeatState{Label: label, Status: status, Holder: holder}
	}

	return nil
}

func (s *MemoryStore) Get(_ context.Context, showtimeID int) (map[string]domain.SeatState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return maps.Clone(s.showtime[showtimeID]), nil
}

func expired(state domain.SeatState, now time.Time, ttl time.Duration) bool {
	return ttl > 0 && now.UnixMilli()-state.LockedAt.UnixMilli() >= ttl.Milliseconds()
}
