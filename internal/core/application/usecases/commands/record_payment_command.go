package commands

import (
	"errors"
	"strings"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/payment"
	"courier/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand carries the gateway's "charge succeeded" signal for one
// parcel. IdempotencyKey is optional.
//
// Example:
//
//	cmd, err := NewRecordPaymentCommand(parcelID, "alice@example.com",
//	    decimal.RequireFromString("500"), "card", "tx123", "")
//	res, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrAlreadyPaidOrNotFound):
//	    // 409
//	case err != nil:
//	    // ...
//	}
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	parcelID       kernel.UUID
	payer          kernel.Email
	details        payment.Details
	idempotencyKey string

	guard guard.ConstructorGuard
}

func NewRecordPaymentCommand(
	parcelID kernel.UUID,
	payer string,
	amount decimal.Decimal,
	method string,
	transactionID string,
	idempotencyKey string,
) (RecordPaymentCommand, error) {
	cmd := RecordPaymentCommand{
		idempotencyKey: strings.TrimSpace(idempotencyKey),
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setPayer(payer),
		cmd.setDetails(amount, method, transactionID),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	return cmd, nil
}

func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

func (c RecordPaymentCommand) ParcelID() kernel.UUID { return c.parcelID }
func (c RecordPaymentCommand) Payer() kernel.Email { return c.payer }
func (c RecordPaymentCommand) Details() payment.Details { return c.details }
func (c RecordPaymentCommand) IdempotencyKey() string { return c.idempotencyKey }

func (c *RecordPaymentCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.parcelID = id
	return nil
}

func (c *RecordPaymentCommand) setPayer(email string) error {
	e, err := kernel.NewEmail(email)
	if err != nil {
		return err
	}
	c.payer = e
	return nil
}

func (c *RecordPaymentCommand) setDetails(amount decimal.Decimal, method, transactionID string) error {
	money, err := kernel.NewPositiveMoney(amount)
	if err != nil {
		return err
	}

	details := payment.Details{
		Amount:        money,
		Method:        strings.TrimSpace(method),
		TransactionID: strings.TrimSpace(transactionID),
	}
	if err = details.Validate(); err != nil {
		return err
	}
	c.details = details
	return nil
}
