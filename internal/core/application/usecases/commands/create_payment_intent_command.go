package commands

import (
	"context"
	"errors"
	"strings"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrCreatePaymentIntentCommandIsNotConstructed = errors.New(
	"CreatePaymentIntentCommand must be created via NewCreatePaymentIntentCommand constructor",
)

// CreatePaymentIntentCommand asks the gateway to prepare a card charge.
type CreatePaymentIntentCommand struct {
	amount kernel.Money

	guard guard.ConstructorGuard
}

func NewCreatePaymentIntentCommand(amountInCents int64) (CreatePaymentIntentCommand, error) {
	if amountInCents <= 0 {
		return CreatePaymentIntentCommand{}, errs.NewValueIsOutOfRangeError("amount in cents", amountInCents, 1, "unbounded")
	}

	amount, err := kernel.MoneyFromCents(amountInCents)
	if err != nil {
		return CreatePaymentIntentCommand{}, err
	}

	return CreatePaymentIntentCommand{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

func (c CreatePaymentIntentCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentIntentCommandIsNotConstructed)
}

func (c CreatePaymentIntentCommand) Amount() kernel.Money { return c.amount }

// CreatePaymentIntentCommandHandler delegates to the payment gateway. Nothing
// is stored; the payment is recorded later by RecordPaymentCommandHandler.
type CreatePaymentIntentCommandHandler struct {
	gateway  ports.PaymentGateway
	currency string
}

func NewCreatePaymentIntentCommandHandler(gateway ports.PaymentGateway, currency string) CreatePaymentIntentCommandHandler {
	currency = strings.ToLower(strings.TrimSpace(currency))
	if currency == "" {
		currency = "usd"
	}
	return CreatePaymentIntentCommandHandler{gateway: gateway, currency: currency}
}

func (h CreatePaymentIntentCommandHandler) Handle(
	ctx context.Context,
	cmd CreatePaymentIntentCommand,
) (ports.PaymentIntent, error) {
	if err := cmd.Validate(); err != nil {
		return ports.PaymentIntent{}, err
	}

	return h.gateway.CreatePaymentIntent(ctx, cmd.Amount(), h.currency)
}
