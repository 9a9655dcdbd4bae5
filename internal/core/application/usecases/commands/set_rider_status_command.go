package commands

import (
	"context"
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/rider"
	"courier/internal/core/ports"
	"courier/internal/pkg/guard"
)

var ErrSetRiderStatusCommandIsNotConstructed = errors.New(
	"SetRiderStatusCommand must be created via NewSetRiderStatusCommand constructor",
)

// SetRiderStatusCommand moves a rider along the approval state machine.
// An unknown status label is rejected here, before any lookup.
type SetRiderStatusCommand struct {
	riderID kernel.UUID
	status  rider.Status

	guard guard.ConstructorGuard
}

func NewSetRiderStatusCommand(riderID kernel.UUID, status string) (SetRiderStatusCommand, error) {
	parsed, statusErr := rider.ParseStatus(status)
	if err := errors.Join(riderID.Validate(), statusErr); err != nil {
		return SetRiderStatusCommand{}, err
	}

	return SetRiderStatusCommand{
		riderID: riderID,
		status:  parsed,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SetRiderStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetRiderStatusCommandIsNotConstructed)
}

func (c SetRiderStatusCommand) RiderID() kernel.UUID { return c.riderID }
func (c SetRiderStatusCommand) Status() rider.Status { return c.status }

// SetRiderStatusCommandHandler applies a transition and writes it with a
// conditional update on the previous status, so that two operators racing on
// the same rider cannot both succeed. The caller's role follows the rider's
// status: activation grants the rider role, suspension revokes it.
type SetRiderStatusCommandHandler struct {
	uowFactory RiderUoWFactory
	clock      kernel.Clock
}

func NewSetRiderStatusCommandHandler(uowFactory RiderUoWFactory, clock kernel.Clock) SetRiderStatusCommandHandler {
	return SetRiderStatusCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle returns errs.ErrObjectNotFound for an unknown rider,
// rider.ErrInvalidTransition for an unreachable status and errs.ErrConflict
// when the stored status changed underneath.
func (h SetRiderStatusCommandHandler) Handle(ctx context.Context, cmd SetRiderStatusCommand) error {
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

	riderRepo := uow.RiderRepository()

	r, err := riderRepo.Get(ctx, cmd.RiderID())
	if err != nil {
		return err
	}

	previous, err := r.ChangeStatus(cmd.Status(), h.clock.Now())
	if err != nil {
		return err
	}

	if err = riderRepo.UpdateStatus(ctx, r, previous); err != nil {
		return err
	}

	if role, ok := roleFor(r.Status()); ok {
		if err = uow.UserRepository().SetRole(ctx, r.Profile().Email, role); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func roleFor(status rider.Status) (string, bool) {
	switch status {
	case rider.Active:
		return ports.RoleRider, true
	case rider.Suspended:
		return ports.RoleUser, true
	default:
		return "", false
	}
}
