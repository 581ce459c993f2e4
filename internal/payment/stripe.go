// Package payment integrates the Stripe payment processor.
package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"github.com/plantnet/plantnet-server/internal/model"
)

// Internal adapter interface to enable mocking without talking to Stripe.
type intentAPI interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	Get(id string, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

var _ model.PaymentProvider = (*Stripe)(nil)

// Stripe implements PaymentProvider on the Stripe API.
type Stripe struct {
	intents intentAPI
}

// New creates a Stripe provider authenticated with the given secret key.
func New(secretKey string) *Stripe {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Stripe{intents: api.PaymentIntents}
}

// NewWithAPI allows injecting a mockable API (used in tests).
func NewWithAPI(api intentAPI) *Stripe {
	return &Stripe{intents: api}
}

// CreateIntent creates a payment intent for the given minor-unit amount
// with automatic payment method selection.
func (s *Stripe) CreateIntent(ctx context.Context, amount int64, currency string) (model.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}

	pi, err := s.intents.New(params)
	if err != nil {
		return model.PaymentIntent{}, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return intentFromStripe(pi), nil
}

// GetIntent retrieves a previously created payment intent. A missing
// intent maps to ErrNotFound.
func (s *Stripe) GetIntent(ctx context.Context, id string) (model.PaymentIntent, error) {
	pi, err := s.intents.Get(id, &stripe.PaymentIntentParams{Params: stripe.Params{Context: ctx}})
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Code == stripe.ErrorCodeResourceMissing {
			return model.PaymentIntent{}, model.ErrNotFound
		}
		return model.PaymentIntent{}, fmt.Errorf("failed to get payment intent: %w", err)
	}

	return intentFromStripe(pi), nil
}

func intentFromStripe(pi *stripe.PaymentIntent) model.PaymentIntent {
	return model.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
	}
}
