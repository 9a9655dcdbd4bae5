package queries

import (
	"context"
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/rider"
	"courier/internal/core/domain/services"
	"courier/internal/core/ports"
	"courier/internal/pkg/guard"
)

var (
	ErrListRidersQueryIsNotConstructed = errors.New(
		"ListRidersQuery must be created via NewListRidersQuery constructor",
	)
	ErrListAvailableRidersQueryIsNotConstructed = errors.New(
		"ListAvailableRidersQuery must be created via NewListAvailableRidersQuery constructor",
	)
)

// ListRidersQuery lists riders in one status, oldest registration first.
type ListRidersQuery struct {
	status rider.Status

	guard guard.ConstructorGuard
}

func NewListRidersQuery(status rider.Status) (ListRidersQuery, error) {
	if err := status.Validate(); err != nil {
		return ListRidersQuery{}, err
	}
	return ListRidersQuery{status: status, guard: guard.NewConstructorGuard()}, nil
}

func (q ListRidersQuery) Validate() error {
	return q.guard.Validate(ErrListRidersQueryIsNotConstructed)
}

func (q ListRidersQuery) Status() rider.Status { return q.status }

type ListRidersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewListRidersQueryHandler(uowFactory ports.UnitOfWorkFactory) ListRidersQueryHandler {
	return ListRidersQueryHandler{uowFactory: uowFactory}
}

func (h ListRidersQueryHandler) Handle(ctx context.Context, query ListRidersQuery) ([]RiderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	riders, err := h.uowFactory.Create().RiderRepository().ListByStatus(ctx, query.Status())
	if err != nil {
		return nil, err
	}

	return newRiderViews(riders), nil
}

// ListAvailableRidersQuery lists the riders that may take parcels in a
// district: active, and registered for exactly that district.
type ListAvailableRidersQuery struct {
	district kernel.District

	guard guard.ConstructorGuard
}

func NewListAvailableRidersQuery(district string) (ListAvailableRidersQuery, error) {
	d, err := kernel.NewDistrict(district)
	if err != nil {
		return ListAvailableRidersQuery{}, err
	}
	return ListAvailableRidersQuery{district: d, guard: guard.NewConstructorGuard()}, nil
}

func (q ListAvailableRidersQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableRidersQueryIsNotConstructed)
}

func (q ListAvailableRidersQuery) District() kernel.District { return q.district }

type ListAvailableRidersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	dispatcher services.ParcelDispatcher
}

func NewListAvailableRidersQueryHandler(uowFactory ports.UnitOfWorkFactory) ListAvailableRidersQueryHandler {
	return ListAvailableRidersQueryHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewParcelDispatcher(),
	}
}

// Handle narrows the stored candidates through the dispatcher, so a row that
// does not satisfy the assignment rules is never offered.
func (h ListAvailableRidersQueryHandler) Handle(
	ctx context.Context,
	query ListAvailableRidersQuery,
) ([]RiderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	candidates, err := h.uowFactory.Create().RiderRepository().ListAvailable(ctx, query.District())
	if err != nil {
		return nil, err
	}

	return newRiderViews(h.dispatcher.FilterAvailable(query.District(), candidates)), nil
}
