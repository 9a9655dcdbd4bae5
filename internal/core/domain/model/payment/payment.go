// Package payment implements the immutable Payment record written once a
// parcel has been flipped to paid.
package payment

import (
	"errors"
	"strings"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
)

var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// DisplayTimeLayout is the human-readable paid-at form kept next to the machine timestamp.
const DisplayTimeLayout = time.RFC3339

// Details is the terminal "charge succeeded" signal received from the gateway.
type Details struct {
	Amount        kernel.Money
	Method        string
	TransactionID string
}

// Validate checks that every field required to record a payment is present.
func (d Details) Validate() error {
	var err error
	if vErr := d.Amount.Validate(); vErr != nil {
		err = errors.Join(err, vErr)
	} else if d.Amount.Decimal().IsZero() {
		err = errors.Join(err, errs.NewValueIsInvalidError("amount"))
	}
	if strings.TrimSpace(d.Method) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("payment method"))
	}
	if strings.TrimSpace(d.TransactionID) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("transaction id"))
	}
	return err
}

// Payment references exactly one parcel. It has no mutators.
type Payment struct {
	kernel.EventRecorder

	id       kernel.UUID
	parcelID kernel.UUID
	payer    kernel.Email
	details  Details
	paidAt   time.Time

	isConstructed bool
}

// NewPayment builds a payment and records a RecordedEvent.
func NewPayment(id, parcelID kernel.UUID, payer kernel.Email, details Details, paidAt time.Time) (*Payment, error) {
	p, err := RestorePayment(id, parcelID, payer, details, paidAt)
	if err != nil {
		return nil, err
	}

	p.Record(RecordedEvent{
		PaymentID:     p.id,
		ParcelID:      p.parcelID,
		Payer:         p.payer.String(),
		Amount:        p.details.Amount.String(),
		Method:        p.details.Method,
		TransactionID: p.details.TransactionID,
		At:            p.paidAt,
	})
	return p, nil
}

func RestorePayment(id, parcelID kernel.UUID, payer kernel.Email, details Details, paidAt time.Time) (*Payment, error) {
	var timeErr error
	if paidAt.IsZero() {
		timeErr = errs.NewValueIsRequiredError("paid at")
	}
	if err := errors.Join(
		id.Validate(),
		parcelID.Validate(),
		payer.Validate(),
		details.Validate(),
		timeErr,
	); err != nil {
		return nil, err
	}

	details.Method = strings.TrimSpace(details.Method)
	details.TransactionID = strings.TrimSpace(details.TransactionID)
	return &Payment{
		id:            id,
		parcelID:      parcelID,
		payer:         payer,
		details:       details,
		paidAt:        paidAt.UTC(),
		isConstructed: true,
	}, nil
}

func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

func (p *Payment) ID() kernel.UUID { return p.id }
func (p *Payment) ParcelID() kernel.UUID { return p.parcelID }
func (p *Payment) Payer() kernel.Email { return p.payer }
func (p *Payment) Amount() kernel.Money { return p.details.Amount }
func (p *Payment) Method() string { return p.details.Method }
func (p *Payment) TransactionID() string { return p.details.TransactionID }
func (p *Payment) PaidAt() time.Time { return p.paidAt }

// PaidAtString is the display form of PaidAt.
func (p *Payment) PaidAtString() string {
	return p.paidAt.Format(DisplayTimeLayout)
}

type RecordedEvent struct {
	PaymentID     kernel.UUID `json:"paymentId"`
	ParcelID      kernel.UUID `json:"parcelId"`
	Payer         string      `json:"payer"`
	Amount        string      `json:"amount"`
	Method        string      `json:"method"`
	TransactionID string      `json:"transactionId"`
	At            time.Time   `json:"occurredAt"`
}

func (e RecordedEvent) EventName() string { return "payment.recorded" }
func (e RecordedEvent) AggregateID() kernel.UUID { return e.ParcelID }
func (e RecordedEvent) OccurredAt() time.Time { return e.At }
