package http

import (
	"net/http"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const paymentRecordedMessage = "Payment recorded and parcel marked as paid"

// CreatePaymentIntent handles POST /create-payment-intent.
func (s *Server) CreatePaymentIntent(ctx echo.Context) error {
	var body servers.CreatePaymentIntentJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}
	if err := ctx.Validate(&body); err != nil {
		return err
	}

	cmd, err := commands.NewCreatePaymentIntentCommand(body.AmountInCents)
	if err != nil {
		return err
	}

	intent, err := s.commands.CreatePaymentIntent.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.PaymentIntent{ClientSecret: intent.ClientSecret})
}

// RecordPayment handles POST /payments. A request replayed with a known
// Idempotency-Key answers 200 with the original payment id.
func (s *Server) RecordPayment(ctx echo.Context, params servers.RecordPaymentParams) error {
	if _, err := s.authenticate(ctx); err != nil {
		return err
	}

	var body servers.RecordPaymentJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}
	if err := ctx.Validate(&body); err != nil {
		return err
	}

	parcelID, err := kernel.UUIDFromGoogle(body.ParcelId)
	if err != nil {
		return err
	}

	key := ""
	if params.IdempotencyKey != nil {
		key = *params.IdempotencyKey
	}

	cmd, err := commands.NewRecordPaymentCommand(
		parcelID,
		string(body.Email),
		decimal.NewFromFloat(body.Amount),
		body.PaymentMethod,
		body.TransactionId,
		key,
	)
	if err != nil {
		return err
	}

	recorded, err := s.commands.RecordPayment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	status := http.StatusCreated
	if recorded.Replayed {
		status = http.StatusOK
	}
	return ctx.JSON(status, servers.RecordedPayment{
		Message:    paymentRecordedMessage,
		InsertedId: recorded.PaymentID.Bytes(),
	})
}

// ListPayments handles GET /payments.
func (s *Server) ListPayments(ctx echo.Context, params servers.ListPaymentsParams) error {
	email := ""
	if params.Email != nil {
		email = *params.Email
	}

	query, err := queries.NewListPaymentsQuery(email)
	if err != nil {
		return err
	}

	views, err := s.queries.ListPayments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.Payment, 0, len(views))
	for _, v := range views {
		response = append(response, servers.Payment{
			Id:            v.ID.Bytes(),
			ParcelId:      v.ParcelID.Bytes(),
			Email:         v.Email,
			Amount:        v.Amount.InexactFloat64(),
			PaymentMethod: v.PaymentMethod,
			TransactionId: v.TransactionID,
			PaidAt:        v.PaidAt,
			PaidAtString:  v.PaidAtString,
		})
	}
	return ctx.JSON(http.StatusOK, response)
}
