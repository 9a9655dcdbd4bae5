// Package ports defines the contracts between the courier domain and its
// adapters: repositories, the unit of work, and external collaborators such as
// the payment gateway, the identity verifier and the event bus.
package ports

import (
	"context"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/parcel"
)

// ParcelFilter narrows List. A nil CreatedBy lists every parcel.
type ParcelFilter struct {
	CreatedBy *kernel.Email
}

// ParcelRepository is the durable keyed store of parcels.
type ParcelRepository interface {
	// Add persists a new parcel.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists rider assignment. Payment status is never written here.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get returns errs.ErrObjectNotFound when no parcel has the id.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// List returns matching parcels, newest first.
	List(ctx context.Context, filter ParcelFilter) ([]*parcel.Parcel, error)

	// Delete physically removes a parcel and reports how many rows went away (0 or 1).
	Delete(ctx context.Context, id kernel.UUID) (int64, error)

	// CompareAndSetPaymentStatus sets the payment status to next only if it is
	// currently expected, as a single conditional write. It reports whether a
	// row changed; false covers both "already moved" and "no such parcel".
	CompareAndSetPaymentStatus(ctx context.Context, id kernel.UUID, expected, next parcel.PaymentStatus) (bool, error)

	// ListPaidWithoutPayment returns paid parcels created before olderThan that
	// have no payment record.
	ListPaidWithoutPayment(ctx context.Context, olderThan time.Time) ([]*parcel.Parcel, error)
}
