package stripegateway

import (
	"context"
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"
)

var errNotConfigured = errors.New("payment gateway is not configured")

// Disabled stands in for the gateway when no secret key is configured. Every
// call fails with an errs.UpstreamError, so the rest of the API keeps working.
type Disabled struct{}

var _ ports.PaymentGateway = Disabled{}

func (Disabled) CreatePaymentIntent(context.Context, kernel.Money, string) (ports.PaymentIntent, error) {
	return ports.PaymentIntent{}, errs.NewUpstreamError("stripe", errNotConfigured)
}
