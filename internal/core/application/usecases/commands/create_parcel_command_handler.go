package commands

import (
	"context"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/parcel"
)

// CreatedParcel is the outcome of parcel intake.
type CreatedParcel struct {
	ID           kernel.UUID
	TrackingCode string
}

// CreateParcelCommandHandler stores a new unpaid parcel. The intake time
// comes from the injected clock, and the tracking code is derived from it.
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	clock      kernel.Clock
}

func NewCreateParcelCommandHandler(uowFactory ParcelUoWFactory, clock kernel.Clock) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) (CreatedParcel, error) {
	if err := cmd.Validate(); err != nil {
		return CreatedParcel{}, err
	}

	p, err := parcel.NewParcel(
		cmd.ParcelID(),
		cmd.CreatedBy(),
		cmd.District(),
		cmd.Cost(),
		cmd.Contents(),
		h.clock.Now(),
	)
	if err != nil {
		return CreatedParcel{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreatedParcel{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ParcelRepository().Add(ctx, p); err != nil {
		return CreatedParcel{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreatedParcel{}, err
	}

	return CreatedParcel{ID: p.ID(), TrackingCode: p.TrackingCode()}, nil
}
