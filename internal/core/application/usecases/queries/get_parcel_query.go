package queries

import (
	"context"
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/ports"
	"courier/internal/pkg/guard"
)

var ErrGetParcelQueryIsNotConstructed = errors.New(
	"GetParcelQuery must be created via NewGetParcelQuery constructor",
)

type GetParcelQuery struct {
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetParcelQuery(parcelID kernel.UUID) (GetParcelQuery, error) {
	if err := parcelID.Validate(); err != nil {
		return GetParcelQuery{}, err
	}
	return GetParcelQuery{parcelID: parcelID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}

func (q GetParcelQuery) ParcelID() kernel.UUID { return q.parcelID }

// GetParcelQueryHandler fetches a single parcel. Reads outside a transaction
// go straight to the pool.
//
// Example:
//
//	query, _ := NewGetParcelQuery(id)
//	view, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // 404
//	}
type GetParcelQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetParcelQueryHandler(uowFactory ports.UnitOfWorkFactory) GetParcelQueryHandler {
	return GetParcelQueryHandler{uowFactory: uowFactory}
}

func (h GetParcelQueryHandler) Handle(ctx context.Context, query GetParcelQuery) (ParcelView, error) {
	if err := query.Validate(); err != nil {
		return ParcelView{}, err
	}

	p, err := h.uowFactory.Create().ParcelRepository().Get(ctx, query.ParcelID())
	if err != nil {
		return ParcelView{}, err
	}

	return newParcelView(p), nil
}
