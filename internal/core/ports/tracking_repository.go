package ports

import (
	"context"
	"iter"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/tracking"
)

// TrackingRepository is the append-only event log.
type TrackingRepository interface {
	// Append stores the event. When the event carries an idempotency key that
	// was already used, nothing is written and the id of the original event is
	// returned with created == false.
	Append(ctx context.Context, event *tracking.Event) (id kernel.UUID, created bool, err error)

	// History streams the events of one parcel ordered by recorded-at then
	// sequence. The sequence is lazy and may be ranged over more than once;
	// each range re-reads the store.
	History(ctx context.Context, parcelID kernel.UUID) iter.Seq2[*tracking.Event, error]
}
