package queries

import (
	"context"
	"errors"
	"time"

	"courier/internal/core/ports"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrListUnsettledParcelsQueryIsNotConstructed = errors.New(
	"ListUnsettledParcelsQuery must be created via NewListUnsettledParcelsQuery constructor",
)

// ListUnsettledParcelsQuery finds parcels flagged paid before olderThan that
// have no payment record. Such parcels can only come from writes made outside
// the payment coordinator, which flips the flag and inserts the record in one
// transaction.
type ListUnsettledParcelsQuery struct {
	olderThan time.Time

	guard guard.ConstructorGuard
}

func NewListUnsettledParcelsQuery(olderThan time.Time) (ListUnsettledParcelsQuery, error) {
	if olderThan.IsZero() {
		return ListUnsettledParcelsQuery{}, errs.NewValueIsRequiredError("older than")
	}
	return ListUnsettledParcelsQuery{olderThan: olderThan, guard: guard.NewConstructorGuard()}, nil
}

func (q ListUnsettledParcelsQuery) Validate() error {
	return q.guard.Validate(ErrListUnsettledParcelsQueryIsNotConstructed)
}

func (q ListUnsettledParcelsQuery) OlderThan() time.Time { return q.olderThan }

type ListUnsettledParcelsQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewListUnsettledParcelsQueryHandler(uowFactory ports.UnitOfWorkFactory) ListUnsettledParcelsQueryHandler {
	return ListUnsettledParcelsQueryHandler{uowFactory: uowFactory}
}

func (h ListUnsettledParcelsQueryHandler) Handle(
	ctx context.Context,
	query ListUnsettledParcelsQuery,
) ([]ParcelView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels, err := h.uowFactory.Create().ParcelRepository().ListPaidWithoutPayment(ctx, query.OlderThan())
	if err != nil {
		return nil, err
	}

	return newParcelViews(parcels), nil
}
