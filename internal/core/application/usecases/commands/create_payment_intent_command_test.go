package commands_test

import (
	"errors"
	"testing"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreatePaymentIntentCommand_InvalidAmount(t *testing.T) {
	for _, cents := range []int64{0, -100} {
		_, err := commands.NewCreatePaymentIntentCommand(cents)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	}
}

func TestCreatePaymentIntentCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreatePaymentIntentCommand(50000)
	require.NoError(t, err)
	amount, err := kernel.MoneyFromCents(50000)
	require.NoError(t, err)

	gateway := new(MockPaymentGateway)
	gateway.On("CreatePaymentIntent", ctx, amount, "usd").
		Return(ports.PaymentIntent{ID: "pi_123", ClientSecret: "pi_123_secret"}, nil).Once()

	intent, err := commands.NewCreatePaymentIntentCommandHandler(gateway, "").Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret", intent.ClientSecret)
	gateway.AssertExpectations(t)
}

func TestCreatePaymentIntentCommandHandler_Handle_GatewayFails(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreatePaymentIntentCommand(1200)
	require.NoError(t, err)

	gateway := new(MockPaymentGateway)
	gateway.On("CreatePaymentIntent", ctx, cmd.Amount(), "bdt").
		Return(ports.PaymentIntent{}, errs.NewUpstreamError("stripe", errors.New("503"))).Once()

	_, err = commands.NewCreatePaymentIntentCommandHandler(gateway, "bdt").Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrUpstream)
}
