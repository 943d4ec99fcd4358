package domain

import "context"

// ReceiptGenerator renders an order snapshot into an opaque artifact.
type ReceiptGenerator interface {
	Render(snapshot OrderSnapshot) ([]byte, error)
}

type EmailNotifier interface {
	Send(address, subject string, content []byte) error
}

type PaymentVerifier interface {
	Verify(ctx context.Context, reference string) (*PaymentConfirmation, error)
}

type OrderEventType string

const (
	OrderConfirmedEvent OrderEventType = "order.confirmed"
	OrderCancelledEvent OrderEventType = "order.cancelled"
)

// EventPublisher emits domain events after commit. Failures are logged by callers.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, eventType OrderEventType, snapshot OrderSnapshot) error
}
