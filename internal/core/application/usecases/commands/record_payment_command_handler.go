package commands

import (
	"context"
	"strings"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/parcel"
	"courier/internal/core/domain/model/payment"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"

	"go.uber.org/zap"
)

// ErrAlreadyPaidOrNotFound is returned when the conditional update matched no
// row. A single conditional write cannot tell a paid parcel from a missing one.
var ErrAlreadyPaidOrNotFound = errs.NewConflictError("parcel", "already paid or not found")

// ErrIdempotencyKeyReused is returned when a key that already recorded a
// payment is presented again for a different parcel.
var ErrIdempotencyKeyReused = errs.NewConflictError("idempotency key", "already used for another parcel")

// RecordedPayment is the outcome of a payment confirmation. Replayed is set
// when the idempotency key had already produced this payment.
type RecordedPayment struct {
	PaymentID kernel.UUID
	Replayed  bool
}

// RecordPaymentCommandHandler is the payment coordinator. It flips the
// parcel's payment status from unpaid to paid with a compare-and-set and, only
// when that write changed a row, inserts the payment record. Both writes share
// one transaction; if the insert or the commit fails the flip is rolled back.
//
// At most one of any number of concurrent calls for the same parcel succeeds.
// The others fail with ErrAlreadyPaidOrNotFound and write nothing.
type RecordPaymentCommandHandler struct {
	uowFactory     PaymentUoWFactory
	idempotency    ports.IdempotencyStore
	idempotencyTTL time.Duration
	clock          kernel.Clock
	logger         *zap.Logger
}

// NewRecordPaymentCommandHandler creates the coordinator. idempotency may be
// nil to disable replay detection.
func NewRecordPaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	idempotency ports.IdempotencyStore,
	idempotencyTTL time.Duration,
	clock kernel.Clock,
	logger *zap.Logger,
) RecordPaymentCommandHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return RecordPaymentCommandHandler{
		uowFactory:     uowFactory,
		idempotency:    idempotency,
		idempotencyTTL: idempotencyTTL,
		clock:          clock,
		logger:         logger.Named("payments"),
	}
}

func (h RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) (RecordedPayment, error) {
	if err := cmd.Validate(); err != nil {
		return RecordedPayment{}, err
	}

	id, ok, err := h.replay(ctx, cmd.IdempotencyKey(), cmd.ParcelID())
	if err != nil {
		return RecordedPayment{}, err
	}
	if ok {
		return RecordedPayment{PaymentID: id, Replayed: true}, nil
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RecordedPayment{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	changed, err := uow.ParcelRepository().CompareAndSetPaymentStatus(ctx, cmd.ParcelID(), parcel.Unpaid, parcel.Paid)
	if err != nil {
		return RecordedPayment{}, err
	}
	if !changed {
		return RecordedPayment{}, ErrAlreadyPaidOrNotFound
	}

	p, err := payment.NewPayment(kernel.NewUUID(), cmd.ParcelID(), cmd.Payer(), cmd.Details(), h.clock.Now())
	if err != nil {
		return RecordedPayment{}, err
	}

	if err = uow.PaymentRepository().Add(ctx, p); err != nil {
		return RecordedPayment{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RecordedPayment{}, err
	}

	h.remember(ctx, cmd.IdempotencyKey(), cmd.ParcelID(), p.ID())
	return RecordedPayment{PaymentID: p.ID()}, nil
}

// replay looks the key up. A stored entry is "<parcel id>:<payment id>" and
// only replays for the same parcel. Store failures and unreadable entries are
// treated as a miss: the compare-and-set still prevents a second payment.
func (h RecordPaymentCommandHandler) replay(ctx context.Context, key string, parcelID kernel.UUID) (kernel.UUID, bool, error) {
	if key == "" || h.idempotency == nil {
		return kernel.UUID{}, false, nil
	}

	value, found, err := h.idempotency.Get(ctx, key)
	if err != nil {
		h.logger.Warn("Idempotency lookup failed", zap.String("key", key), zap.Error(err))
		return kernel.UUID{}, false, nil
	}
	if !found {
		return kernel.UUID{}, false, nil
	}

	storedParcel, storedPayment, ok := strings.Cut(value, ":")
	if !ok {
		return kernel.UUID{}, false, nil
	}
	owner, err := kernel.UUIDFromString(storedParcel)
	if err != nil {
		return kernel.UUID{}, false, nil
	}
	if !owner.IsEqual(parcelID) {
		return kernel.UUID{}, false, ErrIdempotencyKeyReused
	}

	id, err := kernel.UUIDFromString(storedPayment)
	if err != nil {
		return kernel.UUID{}, false, nil
	}
	return id, true, nil
}

func (h RecordPaymentCommandHandler) remember(ctx context.Context, key string, parcelID, paymentID kernel.UUID) {
	if key == "" || h.idempotency == nil {
		return
	}
	if _, err := h.idempotency.SetIfAbsent(ctx, key, parcelID.String()+":"+paymentID.String(), h.idempotencyTTL); err != nil {
		h.logger.Warn("Failed to store idempotency key, retries will not replay",
			zap.String("key", key),
			zap.String("payment_id", paymentID.String()),
			zap.Error(err),
		)
	}
}
