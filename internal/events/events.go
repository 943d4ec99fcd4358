// Package events publishes order lifecycle events to RabbitMQ.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/cinex/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

// OrderEvent is the JSON body of order.confirmed and order.cancelled messages.
type OrderEvent struct {
	Type       domain.OrderEventType `json:"type"`
	OrderID    uuid.UUID             `json:"orderId"`
	UserID     int                   `json:"userId"`
	Status     domain.OrderStatus    `json:"status"`
	TotalPrice string                `json:"totalPrice"`
	BookingIDs []uuid.UUID           `json:"bookingIds"`
	PurchaseID *uuid.UUID            `json:"purchaseId,omitempty"`
	OccurredAt time.Time             `json:"occurredAt"`
}

func NewOrderEvent(eventType domain.OrderEventType, snapshot domain.OrderSnapshot, now time.Time) OrderEvent {
	bookingIDs := snapshot.Order.BookingIDs
	if bookingIDs == nil {
		bookingIDs = []uuid.UUID{}
	}

	return OrderEvent{
		Type:       eventType,
		OrderID:    snapshot.Order.ID,
		UserID:     snapshot.Order.UserID,
		Status:     snapshot.Order.Status,
		TotalPrice: snapshot.Order.TotalPrice.StringFixed(2),
		BookingIDs: bookingIDs,
		PurchaseID: snapshot.Order.PurchaseID,
		OccurredAt: now.UTC(),
	}
}

// RabbitPublisher sends every event to a durable queue named after the event type
// through the default exchange.
type RabbitPublisher struct {
	conn *amqp.Connection
}

func NewRabbitPublisher(url string) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq: dial failed: %w", err)
	}

	return &RabbitPublisher{conn: conn}, nil
}

func (p *RabbitPublisher) Close() error {
	return p.conn.Close()
}

func (p *RabbitPublisher) PublishOrderEvent(
	ctx context.Context,
	eventType domain.OrderEventType,
	snapshot domain.OrderSnapshot) error {

	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("rabbitmq: channel open failed: %w", err)
	}
	defer func() { _ = ch.Close() }()

	queue := string(eventType)

	if _, err := ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	); err != nil {
		return fmt.Errorf("rabbitmq: queue declare failed: %w", err)
	}

	now := time.Now()

	body, err := json.Marshal(NewOrderEvent(eventType, snapshot, now))
	if err != nil {
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    snapshot.Order.ID.String() + ":" + queue,
		Timestamp:    now.UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", queue, false, false, pub); err != nil {
		return fmt.Errorf("rabbitmq: publish failed: %w", err)
	}

	return nil
}
