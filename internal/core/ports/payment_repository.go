package ports

import (
	"context"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/payment"
)

// PaymentRepository is the ledger of completed payments. Records are insert-only.
type PaymentRepository interface {
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Get returns errs.ErrObjectNotFound when no payment has the id.
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// ListByParcel returns payments for one parcel, oldest first.
	ListByParcel(ctx context.Context, parcelID kernel.UUID) ([]*payment.Payment, error)
}
