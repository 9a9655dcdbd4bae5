package commands

import (
	"context"
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/tracking"
	"courier/internal/pkg/guard"
)

var ErrAppendTrackingEventCommandIsNotConstructed = errors.New(
	"AppendTrackingEventCommand must be created via NewAppendTrackingEventCommand constructor",
)

// AppendTrackingEventCommand adds one entry to a parcel's shipment history.
// The parcel id is not checked against stored parcels.
type AppendTrackingEventCommand struct {
	parcelID kernel.UUID
	entry    tracking.Entry

	guard guard.ConstructorGuard
}

func NewAppendTrackingEventCommand(parcelID kernel.UUID, entry tracking.Entry) (AppendTrackingEventCommand, error) {
	if err := errors.Join(parcelID.Validate(), entry.Validate()); err != nil {
		return AppendTrackingEventCommand{}, err
	}

	return AppendTrackingEventCommand{
		parcelID: parcelID,
		entry:    entry,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c AppendTrackingEventCommand) Validate() error {
	return c.guard.Validate(ErrAppendTrackingEventCommandIsNotConstructed)
}

func (c AppendTrackingEventCommand) ParcelID() kernel.UUID { return c.parcelID }
func (c AppendTrackingEventCommand) Entry() tracking.Entry { return c.entry }

// AppendedTrackingEvent reports the stored event id. Created is false when the
// idempotency key matched an earlier event, whose id is returned instead.
type AppendedTrackingEvent struct {
	EventID kernel.UUID
	Created bool
}

// AppendTrackingEventCommandHandler stamps each event with the server clock.
// With a monotonic clock, history order equals append order within the process.
type AppendTrackingEventCommandHandler struct {
	uowFactory TrackingUoWFactory
	clock      kernel.Clock
}

func NewAppendTrackingEventCommandHandler(uowFactory TrackingUoWFactory, clock kernel.Clock) AppendTrackingEventCommandHandler {
	return AppendTrackingEventCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h AppendTrackingEventCommandHandler) Handle(
	ctx context.Context,
	cmd AppendTrackingEventCommand,
) (AppendedTrackingEvent, error) {
	if err := cmd.Validate(); err != nil {
		return AppendedTrackingEvent{}, err
	}

	event, err := tracking.NewEvent(kernel.NewUUID(), cmd.ParcelID(), cmd.Entry(), h.clock.Now())
	if err != nil {
		return AppendedTrackingEvent{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return AppendedTrackingEvent{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	id, created, err := uow.TrackingRepository().Append(ctx, event)
	if err != nil {
		return AppendedTrackingEvent{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AppendedTrackingEvent{}, err
	}

	return AppendedTrackingEvent{EventID: id, Created: created}, nil
}
