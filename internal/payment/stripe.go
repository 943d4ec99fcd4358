package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/metinatakli/cinex/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

// StripeVerifier confirms that a card checkout references a succeeded payment intent.
type StripeVerifier struct{}

func NewStripeVerifier() *StripeVerifier {
	return &StripeVerifier{}
}

func (s *StripeVerifier) Verify(ctx context.Context, reference string) (*domain.PaymentConfirmation, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	intent, err := paymentintent.Get(reference, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Code == stripe.ErrorCodeResourceMissing {
			return nil, domain.NewValidationError("payment %s does not exist", reference)
		}

		return nil, fmt.Errorf("retrieve payment intent: %w", err)
	}

	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		return nil, domain.NewValidationError("payment %s has not succeeded (status %s)", reference, intent.Status)
	}

	return &domain.PaymentConfirmation{
		Reference: intent.ID,
		Amount:    fromMinorUnits(intent.AmountReceived),
		Currency:  strings.ToLower(string(intent.Currency)),
	}, nil
}

// fromMinorUnits converts Stripe's integer cents into a decimal amount.
func fromMinorUnits(amount int64) decimal.Decimal {
	return decimal.New(amount, -2)
}
