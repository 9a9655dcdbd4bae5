// Package commands contains business operations that modify system state.
// Every handler validates its command, opens a unit of work, performs its
// repository calls inside the transaction and commits. Handlers return
// explicit errors and never retry.
package commands

import (
	"context"

	"courier/internal/core/ports"
)

// Unit of Work views. Each handler asks only for the repositories it touches;
// ports.UnitOfWork satisfies all of them.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	TrackingRepoFactory interface {
		TrackingRepository() ports.TrackingRepository
	}

	RiderRepoFactory interface {
		RiderRepository() ports.RiderRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// ParcelUoW is used by parcel intake and removal.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
	}

	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// PaymentUoW spans the parcel flag and the payment ledger so that both
	// writes of the payment coordinator commit or roll back together.
	PaymentUoW interface {
		TxManager
		ParcelRepoFactory
		PaymentRepoFactory
	}

	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	TrackingUoW interface {
		TxManager
		TrackingRepoFactory
	}

	TrackingUoWFactory interface {
		Create() TrackingUoW
	}

	// RiderUoW covers rider status changes and the role kept in step with them.
	RiderUoW interface {
		TxManager
		RiderRepoFactory
		UserRepoFactory
	}

	RiderUoWFactory interface {
		Create() RiderUoW
	}

	// DispatchUoW is used when a rider is attached to a parcel: the parcel is
	// updated and a tracking event is appended in one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   p, _ := uow.ParcelRepository().Get(ctx, parcelID)
	//   r, _ := uow.RiderRepository().Get(ctx, riderID)
	//   // ... dispatch, update, append
	//
	//   err = uow.Commit(ctx)
	DispatchUoW interface {
		TxManager
		ParcelRepoFactory
		RiderRepoFactory
		TrackingRepoFactory
	}

	DispatchUoWFactory interface {
		Create() DispatchUoW
	}
)
