// Package seatmap stores the real-time AVAILABLE/LOCKED/BOOKED state of every seat of a
// showtime. Each state transition is a single atomic step.
package seatmap

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/metinatakli/cinex/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	errSeatNotFound    = "SEAT_NOT_FOUND"
	errSeatUnavailable = "SEAT_UNAVAILABLE"
	errSeatNotHeld     = "SEAT_NOT_HELD"
	errSeatLockExpired = "SEAT_LOCK_EXPIRED"
)

// A showtime's seat map lives in three hashes keyed by seat label: status, holder and
// lock time in unix milliseconds. The {id} hash tag keeps them in one cluster slot.
func statusKey(showtimeID int) string   { return fmt.Sprintf("seatmap:{%d}:status", showtimeID) }
func holderKey(showtimeID int) string   { return fmt.Sprintf("seatmap:{%d}:holder", showtimeID) }
func lockedAtKey(showtimeID int) string { return fmt.Sprintf("seatmap:{%d}:locked_at", showtimeID) }

func keys(showtimeID int) []string {
	return []string{statusKey(showtimeID), holderKey(showtimeID), lockedAtKey(showtimeID)}
}

var lockSeatScript = redis.NewScript(`
	-- KEYS = status, holder, locked_at hashes
	-- ARGV = [label, holder, nowMillis, ttlMillis]
	local status = redis.call("HGET", KEYS[1], ARGV[1])
	if not status then
		return {err = "SEAT_NOT_FOUND"}
	end

	if status == "LOCKED" then
		local lockedAt = tonumber(redis.call("HGET", KEYS[3], ARGV[1]) or "0")
		local ttl = tonumber(ARGV[4])
		if ttl > 0 and tonumber(ARGV[3]) - lockedAt >= ttl then
			status = "AVAILABLE"
		end
	end

	if status ~= "AVAILABLE" then
		return {err = "SEAT_UNAVAILABLE " .. status}
	end

	redis.call("HSET", KEYS[1], ARGV[1], "LOCKED")
	redis.call("HSET", KEYS[2], ARGV[1], ARGV[2])
	redis.call("HSET", KEYS[3], ARGV[1], ARGV[3])

	return "OK"
`)

var confirmSeatScript = redis.NewScript(`
	-- KEYS = status, holder, locked_at hashes
	-- ARGV = [label, holder, nowMillis, ttlMillis]
	local status = redis.call("HGET", KEYS[1], ARGV[1])
	if not status then
		return {err = "SEAT_NOT_FOUND"}
	end

	if status ~= "LOCKED" or redis.call("HGET", KEYS[2], ARGV[1]) ~= ARGV[2] then
		return {err = "SEAT_NOT_HELD"}
	end

	local lockedAt = tonumber(redis.call("HGET", KEYS[3], ARGV[1]) or "0")
	local ttl = tonumber(ARGV[4])
	if ttl > 0 and tonumber(ARGV[3]) - lockedAt >= ttl then
		return {err = "SEAT_LOCK_EXPIRED"}
	end

	redis.call("HSET", KEYS[1], ARGV[1], "BOOKED")
	redis.call("HDEL", KEYS[3], ARGV[1])

	return "OK"
`)

var unlockSeatScript = redis.NewScript(`
	-- KEYS = status, holder, locked_at hashes
	-- ARGV = [label, holder]
	local status = redis.call("HGET", KEYS[1], ARGV[1])
	if not status then
		return {err = "SEAT_NOT_FOUND"}
	end

	if status ~= "LOCKED" or redis.call("HGET", KEYS[2], ARGV[1]) ~= ARGV[2] then
		return {err = "SEAT_NOT_HELD"}
	end

	redis.call("HSET", KEYS[1], ARGV[1], "AVAILABLE")
	redis.call("HDEL", KEYS[2], ARGV[1])
	redis.call("HDEL", KEYS[3], ARGV[1])

	return "OK"
`)

var mergeSeatsScript = redis.NewScript(`
	-- KEYS = status, holder, locked_at hashes
	-- ARGV = [labelCount, labels..., booked...]
	local n = tonumber(ARGV[1])
	local wanted = {}
	local booked = {}

	for i = 2, n + 1 do
		wanted[ARGV[i]] = true
	end
	for i = n + 2, #ARGV do
		booked[ARGV[i]] = true
	end

	local current = redis.call("HGETALL", KEYS[1])
	for i = 1, #current, 2 do
		local label = current[i]
		if not wanted[label] and current[i + 1] == "AVAILABLE" then
			redis.call("HDEL", KEYS[1], label)
			redis.call("HDEL", KEYS[2], label)
			redis.call("HDEL", KEYS[3], label)
		end
	end

	for i = 2, n + 1 do
		local label = ARGV[i]
		if not booked[label] then
			local status = redis.call("HGET", KEYS[1], label)
			if not status or status == "AVAILABLE" then
				redis.call("HSET", KEYS[1], label, "AVAILABLE")
			end
		end
	end

	for label in pairs(booked) do
		redis.call("HSET", KEYS[1], label, "BOOKED")
		redis.call("HDEL", KEYS[2], label)
		redis.call("HDEL", KEYS[3], label)
	end

	return "OK"
`)

type RedisStore struct {
	client redis.UniversalClient
}

func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Lock(
	ctx context.Context,
	showtimeID int,
	label, holder string,
	now time.Time,
	ttl time.Duration) (domain.SeatState, error) {

	err := lockSeatScript.Run(ctx, s.client, keys(showtimeID), label, holder, now.UnixMilli(), ttl.Milliseconds()).Err()
	if err != nil {
		return domain.SeatState{}, translateError(err, label)
	}

	return domain.SeatState{Label: label, Status: domain.SeatLocked, Holder: holder, LockedAt: time.UnixMilli(now.UnixMilli())}, nil
}

func (s *RedisStore) Confirm(
	ctx context.Context,
	showtimeID int,
	label, holder string,
	now time.Time,
	ttl time.Duration) (domain.SeatState, error) {

	err := confirmSeatScript.Run(ctx, s.client, keys(showtimeID), label, holder, now.UnixMilli(), ttl.Milliseconds()).Err()
	if err != nil {
		return domain.SeatState{}, translateError(err, label)
	}

	return domain.SeatState{Label: label, Status: domain.SeatBooked, Holder: holder}, nil
}

func (s *RedisStore) Unlock(ctx context.Context, showtimeID int, label, holder string) (domain.SeatState, error) {
	err := unlockSeatScript.Run(ctx, s.client, keys(showtimeID), label, holder).Err()
	if err != nil {
		return domain.SeatState{}, translateError(err, label)
	}

	return domain.SeatState{Label: label, Status: domain.SeatAvailable}, nil
}

func (s *RedisStore) Merge(ctx context.Context, showtimeID int, labels, booked []string) (map[string]domain.SeatState, error) {
	args := make([]interface{}, 0, 1+len(labels)+len(booked))
	args = append(args, len(labels))
	for _, label := range labels {
		args = append(args, label)
	}
	for _, label := range booked {
		args = append(args, label)
	}

	err := mergeSeatsScript.Run(ctx, s.client, keys(showtimeID), args...).Err()
	if err != nil {
		return nil, fmt.Errorf("failed to merge seat map of showtime %d: %w", showtimeID, err)
	}

	return s.Get(ctx, showtimeID)
}

func (s *RedisStore) SetStatus(
	ctx context.Context,
	showtimeID int,
	labels []string,
	status domain.SeatStatus,
	holder string) error {

	if len(labels) == 0 {
		return nil
	}

	pipe := s.client.TxPipeline()

	for _, label := range labels {
		pipe.HSet(ctx, statusKey(showtimeID), label, string(status))
		pipe.HDel(ctx, lockedAtKey(showtimeID), label)

		if holder == "" {
			pipe.HDel(ctx, holderKey(showtimeID), label)
		} else {
			pipe.HSet(ctx, holderKey(showtimeID), label, holder)
		}
	}

	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set seat status for showtime %d: %w", showtimeID, err)
	}

	return nil
}

func (s *RedisStore) Get(ctx context.Context, showtimeID int) (map[string]domain.SeatState, error) {
	pipe := s.client.Pipeline()

	statusCmd := pipe.HGetAll(ctx, statusKey(showtimeID))
	holderCmd := pipe.HGetAll(ctx, holderKey(showtimeID))
	lockedAtCmd := pipe.HGetAll(ctx, lockedAtKey(showtimeID))

	_, err := pipe.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read seat map of showtime %d: %w", showtimeID, err)
	}

	holders := holderCmd.Val()
	lockedAt := lockedAtCmd.Val()
	states := make(map[string]domain.SeatState, len(statusCmd.Val()))

	for label, status := range statusCmd.Val() {
		state := domain.SeatState{
			Label:  label,
			Status: domain.SeatStatus(status),
			Holder: holders[label],
		}

		if raw, ok := lockedAt[label]; ok {
			millis, err := strconv.ParseInt(raw, 10, 64)
			if err == nil {
				state.LockedAt = time.UnixMilli(millis)
			}
		}

		states[label] = state
	}

	return states, nil
}

func translateError(err error, label string) error {
	switch {
	case redis.HasErrorPrefix(err, errSeatNotFound):
		return domain.NewNotFoundError("seat", label)
	case redis.HasErrorPrefix(err, errSeatUnavailable):
		fields := strings.Fields(err.Error())
		return domain.NewSeatUnavailableError(label, domain.SeatStatus(fields[len(fields)-1]))
	case redis.HasErrorPrefix(err, errSeatNotHeld):
		return domain.NewUnauthorizedError("seat %s is not locked by this holder", label)
	case redis.HasErrorPrefix(err, errSeatLockExpired):
		return domain.NewUnauthorizedError("the lock on seat %s has expired", label)
	default:
		return err
	}
}
