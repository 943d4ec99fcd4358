package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/metinatakli/cinex/internal/domain"
	"github.com/redis/go-redis/v9"
)

const channelPrefix = "seats:showtime:"

func channel(showtimeID int) string {
	return channelPrefix + strconv.Itoa(showtimeID)
}

// RedisBroadcaster publishes seat updates on a per-showtime Redis channel so every API
// instance can forward them to its own websocket clients.
type RedisBroadcaster struct {
	client redis.UniversalClient
}

func NewRedisBroadcaster(client redis.UniversalClient) *RedisBroadcaster {
	return &RedisBroadcaster{client: client}
}

func (b *RedisBroadcaster) Publish(ctx context.Context, update domain.SeatUpdate) error {
	payload, err := json.Marshal(update)
	if err != nil {
		return err
	}

	err = b.client.Publish(ctx, channel(update.ShowtimeID), payload).Err()
	if err != nil {
		return fmt.Errorf("failed to publish seat update: %w", err)
	}

	return nil
}

// Relay subscribes to every showtime channel and hands the updates to hub until ctx is done.
func Relay(ctx context.Context, client redis.UniversalClient, hub *Hub, logger *slog.Logger) error {
	pubsub := client.PSubscribe(ctx, channelPrefix+"*")
	defer pubsub.Close()

	// wait for the subscription to be confirmed
	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to seat updates: %w", err)
	}

	messages := pubsub.Channel()

	for {
		select {
		case <-ctx.Done():
			return nil

		case msg, ok := <-messages:
			if !ok {
				return nil
			}

			var update domain.SeatUpdate
			if err := json.Unmarshal([]byte(msg.Payload), &update); err != nil {
				logger.Warn("discarding malformed seat update", "channel", msg.Channel, "error", err)
				continue
			}

			if update.ShowtimeID == 0 {
				id, err := strconv.Atoi(strings.TrimPrefix(msg.Channel, channelPrefix))
				if err != nil {
					continue
				}
				update.ShowtimeID = id
			}

			if err := hub.Publish(ctx, update); err != nil {
				logger.Warn("failed to forward seat update", "showtime_id", update.ShowtimeID, "error", err)
			}
		}
	}
}
