package queries

import (
	"context"
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/ports"
	"courier/internal/pkg/guard"
)

var ErrGetTrackingHistoryQueryIsNotConstructed = errors.New(
	"GetTrackingHistoryQuery must be created via NewGetTrackingHistoryQuery constructor",
)

// GetTrackingHistoryQuery reads the shipment history of one parcel. A parcel
// without events, known or not, has an empty history.
type GetTrackingHistoryQuery struct {
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetTrackingHistoryQuery(parcelID kernel.UUID) (GetTrackingHistoryQuery, error) {
	if err := parcelID.Validate(); err != nil {
		return GetTrackingHistoryQuery{}, err
	}
	return GetTrackingHistoryQuery{parcelID: parcelID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTrackingHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingHistoryQueryIsNotConstructed)
}

func (q GetTrackingHistoryQuery) ParcelID() kernel.UUID { return q.parcelID }

type GetTrackingHistoryQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetTrackingHistoryQueryHandler(uowFactory ports.UnitOfWorkFactory) GetTrackingHistoryQueryHandler {
	return GetTrackingHistoryQueryHandler{uowFactory: uowFactory}
}

// Handle drains the repository's history sequence in (recorded at, sequence)
// order and stops at the first read error.
func (h GetTrackingHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetTrackingHistoryQuery,
) ([]TrackingEventView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	history := make([]TrackingEventView, 0)
	for event, err := range h.uowFactory.Create().TrackingRepository().History(ctx, query.ParcelID()) {
		if err != nil {
			return nil, err
		}
		history = append(history, newTrackingEventView(event))
	}

	return history, nil
}
