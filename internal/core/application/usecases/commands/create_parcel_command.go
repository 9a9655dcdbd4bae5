package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/parcel"
	"courier/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// CreateParcelCommand registers a new unpaid parcel.
//
// Example:
//
//	cmd, err := NewCreateParcelCommand(kernel.NewUUID(), "alice@example.com", "Dhaka",
//	    decimal.RequireFromString("500"),
//	    parcel.Contents{Title: "Books", ReceiverName: "Bob", ReceiverAddress: "Road 1"})
//	if err != nil {
//	    return fmt.Errorf("invalid parcel data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	createdBy kernel.Email
	district  kernel.District
	cost      kernel.Money
	contents  parcel.Contents

	guard guard.ConstructorGuard
}

func NewCreateParcelCommand(
	parcelID kernel.UUID,
	createdBy string,
	district string,
	cost decimal.Decimal,
	contents parcel.Contents,
) (CreateParcelCommand, error) {
	cmd := CreateParcelCommand{
		contents: contents,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setCreatedBy(createdBy),
		cmd.setDistrict(district),
		cmd.setCost(cost),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return cmd, nil
}

func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

func (c CreateParcelCommand) ParcelID() kernel.UUID { return c.parcelID }
func (c CreateParcelCommand) CreatedBy() kernel.Email { return c.createdBy }
func (c CreateParcelCommand) District() kernel.District { return c.district }
func (c CreateParcelCommand) Cost() kernel.Money { return c.cost }
func (c CreateParcelCommand) Contents() parcel.Contents { return c.contents }

func (c *CreateParcelCommand) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.parcelID = id
	return nil
}

func (c *CreateParcelCommand) setCreatedBy(email string) error {
	e, err := kernel.NewEmail(email)
	if err != nil {
		return err
	}
	c.createdBy = e
	return nil
}

func (c *CreateParcelCommand) setDistrict(district string) error {
	d, err := kernel.NewDistrict(district)
	if err != nil {
		return err
	}
	c.district = d
	return nil
}

func (c *CreateParcelCommand) setCost(cost decimal.Decimal) error {
	m, err := kernel.NewMoney(cost)
	if err != nil {
		return err
	}
	c.cost = m
	return nil
}
