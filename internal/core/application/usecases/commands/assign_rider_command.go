package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/tracking"
	"courier/internal/core/domain/services"
	"courier/internal/pkg/guard"
)

var ErrAssignRiderCommandIsNotConstructed = errors.New(
	"AssignRiderCommand must be created via NewAssignRiderCommand constructor",
)

// AssignRiderCommand associates an active rider with a paid parcel.
// AssignedBy is recorded on the tracking event and may be empty.
type AssignRiderCommand struct {
	parcelID   kernel.UUID
	riderID    kernel.UUID
	assignedBy string

	guard guard.ConstructorGuard
}

func NewAssignRiderCommand(parcelID, riderID kernel.UUID, assignedBy string) (AssignRiderCommand, error) {
	if err := errors.Join(parcelID.Validate(), riderID.Validate()); err != nil {
		return AssignRiderCommand{}, err
	}

	return AssignRiderCommand{
		parcelID:   parcelID,
		riderID:    riderID,
		assignedBy: strings.TrimSpace(assignedBy),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AssignRiderCommand) Validate() error {
	return c.guard.Validate(ErrAssignRiderCommandIsNotConstructed)
}

func (c AssignRiderCommand) ParcelID() kernel.UUID { return c.parcelID }
func (c AssignRiderCommand) RiderID() kernel.UUID { return c.riderID }
func (c AssignRiderCommand) AssignedBy() string { return c.assignedBy }

// AssignRiderCommandHandler checks the assignment with the ParcelDispatcher,
// stores the parcel and appends a rider_assigned tracking event, all in one
// transaction.
//
// Example:
//
//	cmd, _ := NewAssignRiderCommand(parcelID, riderID, "ops@example.com")
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, parcel.ErrParcelIsNotPaid):
//	case errors.Is(err, services.ErrRiderIsNotAvailable):
//	case errors.Is(err, services.ErrDistrictMismatch):
//	}
type AssignRiderCommandHandler struct {
	uowFactory DispatchUoWFactory
	dispatcher services.ParcelDispatcher
	clock      kernel.Clock
}

func NewAssignRiderCommandHandler(uowFactory DispatchUoWFactory, clock kernel.Clock) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewParcelDispatcher(),
		clock:      clock,
	}
}

func (h AssignRiderCommandHandler) Handle(ctx context.Context, cmd AssignRiderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()

	p, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	r, err := uow.RiderRepository().Get(ctx, cmd.RiderID())
	if err != nil {
		return err
	}

	now := h.clock.Now()
	if err = h.dispatcher.Dispatch(p, r, now); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, p); err != nil {
		return err
	}

	event, err := tracking.NewEvent(kernel.NewUUID(), p.ID(), tracking.Entry{
		TrackingCode: p.TrackingCode(),
		Status:       tracking.StatusRiderAssigned,
		Message:      fmt.Sprintf("assigned to rider %s", r.Profile().Name),
		UpdatedBy:    cmd.AssignedBy(),
	}, now)
	if err != nil {
		return err
	}

	if _, _, err = uow.TrackingRepository().Append(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
