package commands

import (
	"context"
	"errors"
	"strings"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/rider"
	"courier/internal/pkg/guard"
)

var ErrRegisterRiderCommandIsNotConstructed = errors.New(
	"RegisterRiderCommand must be created via NewRegisterRiderCommand constructor",
)

// RegisterRiderCommand creates a rider awaiting approval.
type RegisterRiderCommand struct { //nolint:recvcheck //using for validation
	riderID  kernel.UUID
	profile  rider.Profile
	district kernel.District

	guard guard.ConstructorGuard
}

func NewRegisterRiderCommand(riderID kernel.UUID, name, email, phone, district string) (RegisterRiderCommand, error) {
	cmd := RegisterRiderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setRiderID(riderID),
		cmd.setProfile(name, email, phone),
		cmd.setDistrict(district),
	); err != nil {
		return RegisterRiderCommand{}, err
	}

	return cmd, nil
}

func (c RegisterRiderCommand) Validate() error {
	return c.guard.Validate(ErrRegisterRiderCommandIsNotConstructed)
}

func (c RegisterRiderCommand) RiderID() kernel.UUID { return c.riderID }
func (c RegisterRiderCommand) Profile() rider.Profile { return c.profile }
func (c RegisterRiderCommand) District() kernel.District { return c.district }

func (c *RegisterRiderCommand) setRiderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.riderID = id
	return nil
}

func (c *RegisterRiderCommand) setProfile(name, email, phone string) error {
	addr, err := kernel.NewEmail(email)
	if err != nil {
		return err
	}
	c.profile = rider.Profile{
		Name:  strings.TrimSpace(name),
		Email: addr,
		Phone: strings.TrimSpace(phone),
	}
	return nil
}

func (c *RegisterRiderCommand) setDistrict(district string) error {
	d, err := kernel.NewDistrict(district)
	if err != nil {
		return err
	}
	c.district = d
	return nil
}

type RegisterRiderCommandHandler struct {
	uowFactory RiderUoWFactory
	clock      kernel.Clock
}

func NewRegisterRiderCommandHandler(uowFactory RiderUoWFactory, clock kernel.Clock) RegisterRiderCommandHandler {
	return RegisterRiderCommandHandler{uowFactory: uowFactory, clock: clock}
}

// Handle stores the rider in pending status.
func (h RegisterRiderCommandHandler) Handle(ctx context.Context, cmd RegisterRiderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	r, err := rider.NewRider(cmd.RiderID(), cmd.Profile(), cmd.District(), h.clock.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RiderRepository().Add(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
