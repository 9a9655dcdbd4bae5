package services

import (
	"errors"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/parcel"
	"courier/internal/core/domain/model/rider"
	"courier/internal/pkg/errs"
)

var (
	// ErrRiderIsNotAvailable is returned when the chosen rider is not active.
	ErrRiderIsNotAvailable = errs.NewConflictError("rider", "not active")

	// ErrDistrictMismatch is returned when the rider does not serve the parcel's district.
	ErrDistrictMismatch = errs.NewConflictError("rider", "serves another district")
)

// ParcelDispatcher attaches an active rider to a paid parcel.
//
// Business rules:
//   - the parcel must be paid
//   - the rider must be active
//   - the rider's district must equal the parcel's district exactly
//
// Example usage:
//
//	dispatcher := services.NewParcelDispatcher()
//	if err := dispatcher.Dispatch(p, r, clock.Now()); err != nil {
//	    return err
//	}
//	// persist p
type ParcelDispatcher struct{}

func NewParcelDispatcher() ParcelDispatcher {
	return ParcelDispatcher{}
}

// Dispatch assigns r to p after checking both aggregates. On error p is unchanged.
func (d ParcelDispatcher) Dispatch(p *parcel.Parcel, r *rider.Rider, at time.Time) error {
	if err := errors.Join(p.Validate(), r.Validate()); err != nil {
		return err
	}
	if !p.IsPaid() {
		return parcel.ErrParcelIsNotPaid
	}
	if !r.Status().IsAssignable() {
		return ErrRiderIsNotAvailable
	}
	if !r.IsAvailableIn(p.District()) {
		return ErrDistrictMismatch
	}

	return p.AssignRider(r.ID(), at)
}

// FilterAvailable keeps the riders that are active in exactly district,
// preserving input order.
func (d ParcelDispatcher) FilterAvailable(district kernel.District, riders []*rider.Rider) []*rider.Rider {
	out := make([]*rider.Rider, 0, len(riders))
	for _, r := range riders {
		if r.Validate() == nil && r.IsAvailableIn(district) {
			out = append(out, r)
		}
	}
	return out
}
