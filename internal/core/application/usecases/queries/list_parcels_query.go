package queries

import (
	"context"
	"errors"
	"strings"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/ports"
	"courier/internal/pkg/guard"
)

var ErrListParcelsQueryIsNotConstructed = errors.New(
	"ListParcelsQuery must be created via NewListParcelsQuery constructor",
)

// ListParcelsQuery lists parcels newest first, optionally only those created
// by one email address. An empty email lists every parcel.
type ListParcelsQuery struct {
	createdBy *kernel.Email

	guard guard.ConstructorGuard
}

func NewListParcelsQuery(createdBy string) (ListParcelsQuery, error) {
	query := ListParcelsQuery{guard: guard.NewConstructorGuard()}

	if createdBy = strings.TrimSpace(createdBy); createdBy != "" {
		email, err := kernel.NewEmail(createdBy)
		if err != nil {
			return ListParcelsQuery{}, err
		}
		query.createdBy = &email
	}

	return query, nil
}

func (q ListParcelsQuery) Validate() error {
	return q.guard.Validate(ErrListParcelsQueryIsNotConstructed)
}

func (q ListParcelsQuery) CreatedBy() *kernel.Email { return q.createdBy }

type ListParcelsQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewListParcelsQueryHandler(uowFactory ports.UnitOfWorkFactory) ListParcelsQueryHandler {
	return ListParcelsQueryHandler{uowFactory: uowFactory}
}

func (h ListParcelsQueryHandler) Handle(ctx context.Context, query ListParcelsQuery) ([]ParcelView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels, err := h.uowFactory.Create().ParcelRepository().List(ctx, ports.ParcelFilter{
		CreatedBy: query.CreatedBy(),
	})
	if err != nil {
		return nil, err
	}

	return newParcelViews(parcels), nil
}
