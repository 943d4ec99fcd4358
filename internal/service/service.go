// Package service holds the inventory core: showtime scheduling, real-time seat holds,
// booking reservation, cart checkout and cancellation compensation. Every inventory
// mutation runs inside a single domain.Store transaction.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/metinatakli/cinex/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/metinatakli/cinex/internal/service"

var tracer = otel.Tracer(instrumentationName)

// runInTx runs fn atomically. Domain errors pass through unchanged; anything else that
// aborted the unit is reported as transaction_aborted with the cause kept in the chain.
func runInTx(ctx context.Context, store domain.Store, fn func(tx domain.Tx) error) error {
	err := store.RunInTx(ctx, fn)
	if err == nil {
		return nil
	}

	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		return err
	}

	return domain.NewTransactionAbortedError(err)
}

func requireAdmin(actor domain.Actor, action string) error {
	if !actor.IsAdmin() {
		return domain.NewUnauthorizedError("only administrators can %s", action)
	}

	return nil
}

// Runner executes best-effort work after a transaction committed. Failures and panics
// are logged and never reach the caller.
type Runner struct {
	logger *slog.Logger
	wg     sync.WaitGroup
}

func NewRunner(logger *slog.Logger) *Runner {
	return &Runner{logger: logger}
}

func (r *Runner) Go(name string, fn func(ctx context.Context) error) {
	r.wg.Add(1)

	go func() {
		defer r.wg.Done()

		defer func() {
			if err := recover(); err != nil {
				r.logger.Error("background task panicked", "task", name, "error", fmt.Sprintf("%v", err))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := fn(ctx); err != nil {
			r.logger.Error("background task failed", "task", name, "error", err)
		}
	}()
}

// Wait blocks until every task started with Go has finished.
func (r *Runner) Wait() {
	r.wg.Wait()
}

type Metrics struct {
	checkoutCompleted metric.Int64Counter
	checkoutFailed    metric.Int64Counter
	orderCancelled    metric.Int64Counter
}

func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(instrumentationName)

	completed, err := meter.Int64Counter("cinex.checkout.completed",
		metric.WithDescription("Number of committed checkouts"))
	if err != nil {
		return nil, err
	}

	failed, err := meter.Int64Counter("cinex.checkout.failed",
		metric.WithDescription("Number of aborted checkouts by error kind"))
	if err != nil {
		return nil, err
	}

	cancelled, err := meter.Int64Counter("cinex.order.cancelled",
		metric.WithDescription("Number of orders cancelled by compensation"))
	if err != nil {
		return nil, err
	}

	return &Metrics{
		checkoutCompleted: completed,
		checkoutFailed:    failed,
		orderCancelled:    cancelled,
	}, nil
}

func (m *Metrics) recordCheckout(ctx context.Context, err error) {
	if m == nil {
		return
	}

	if err == nil {
		m.checkoutCompleted.Add(ctx, 1)
		return
	}

	kind := domain.AsError(err).Kind
	m.checkoutFailed.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", string(kind))))
}

func (m *Metrics) recordOrderCancelled(ctx context.Context) {
	if m == nil {
		return
	}

	m.orderCancelled.Add(ctx, 1)
}
