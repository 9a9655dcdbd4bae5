// Package stripegateway creates payment intents with Stripe.
package stripegateway

import (
	"context"
	"errors"
	"strings"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
	"go.uber.org/zap"
)

const paymentMethodCard = "card"

var ErrSecretKeyIsRequired = errs.NewValueIsRequiredError("stripe secret key")

var _ ports.PaymentGateway = (*Gateway)(nil)

// Gateway implements ports.PaymentGateway. It holds its own client instead of
// the package-level stripe.Key so tests can swap the backend.
type Gateway struct {
	intents paymentintent.Client
	logger  *zap.Logger
}

// New uses Stripe's API backend with secretKey.
func New(secretKey string, logger *zap.Logger) (*Gateway, error) {
	return NewWithBackend(secretKey, stripe.GetBackend(stripe.APIBackend), logger)
}

func NewWithBackend(secretKey string, backend stripe.Backend, logger *zap.Logger) (*Gateway, error) {
	if strings.TrimSpace(secretKey) == "" {
		return nil, ErrSecretKeyIsRequired
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Gateway{
		intents: paymentintent.Client{B: backend, Key: secretKey},
		logger:  logger.Named("stripe"),
	}, nil
}

// CreatePaymentIntent creates a card payment intent for amount in currency.
// Every Stripe failure, including declines, is returned as an errs.UpstreamError.
func (g *Gateway) CreatePaymentIntent(
	ctx context.Context,
	amount kernel.Money,
	currency string,
) (ports.PaymentIntent, error) {
	if err := amount.Validate(); err != nil {
		return ports.PaymentIntent{}, err
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount.Cents()),
		Currency:           stripe.String(strings.ToLower(currency)),
		PaymentMethodTypes: stripe.StringSlice([]string{paymentMethodCard}),
	}
	params.Context = ctx

	intent, err := g.intents.New(params)
	if err != nil {
		fields := []zap.Field{zap.Int64("amount", amount.Cents()), zap.String("currency", currency), zap.Error(err)}
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			fields = append(fields,
				zap.Int("http_status", stripeErr.HTTPStatusCode),
				zap.String("request_id", stripeErr.RequestID))
		}
		g.logger.Error("Failed to create payment intent", fields...)
		return ports.PaymentIntent{}, errs.NewUpstreamError("stripe", err)
	}

	g.logger.Debug("Created payment intent", zap.String("payment_intent_id", intent.ID))

	return ports.PaymentIntent{ID: intent.ID, ClientSecret: intent.ClientSecret}, nil
}
