package payment

import (
	"context"
	"sync"

	"github.com/metinatakli/cinex/internal/domain"
	"github.com/shopspring/decimal"
)

// MockVerifier accepts every reference registered with Approve.
type MockVerifier struct {
	mu       sync.RWMutex
	payments map[string]decimal.Decimal
}

func NewMockVerifier() *MockVerifier {
	return &MockVerifier{payments: make(map[string]decimal.Decimal)}
}

func (m *MockVerifier) Approve(reference string, amount decimal.Decimal) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.payments[reference] = amount
}

func (m *MockVerifier) Verify(_ context.Context, reference string) (*domain.PaymentConfirmation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	amount, ok := m.payments[reference]
	if !ok {
		return nil, domain.NewValidationError("payment %s has not succeeded", reference)
	}

	return &domain.PaymentConfirmation{Reference: reference, Amount: amount, Currency: "usd"}, nil
}

// Reset forgets every approved payment.
func (m *MockVerifier) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.payments = make(map[string]decimal.Decimal)
}
