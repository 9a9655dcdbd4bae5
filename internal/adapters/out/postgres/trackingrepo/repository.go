package trackingrepo

import (
	"context"
	"iter"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/tracking"
	"courier/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTrackingRepository implements ports.TrackingRepository using GORM.
type GormTrackingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormTrackingRepository(db *gorm.DB, tracker aggregateTracker) *GormTrackingRepository {
	return &GormTrackingRepository{db: db, tracker: tracker}
}

// Append inserts the event. A row whose idempotency key is already stored for
// the same parcel is skipped by the unique index, and the original event id is
// returned. The same key on another parcel is a separate event.
func (r *GormTrackingRepository) Append(ctx context.Context, event *tracking.Event) (kernel.UUID, bool, error) {
	if err := event.Validate(); err != nil {
		return kernel.UUID{}, false, err
	}

	dto := fromDomain(event)
	db := r.db.WithContext(ctx)
	if dto.IdempotencyKey != nil {
		db = db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "parcel_id"}, {Name: "idempotency_key"}},
			DoNothing: true,
		})
	}

	result := db.Create(&dto)
	if result.Error != nil {
		return kernel.UUID{}, false, errs.NewPersistenceError("append tracking event", result.Error)
	}

	if result.RowsAffected == 0 {
		id, err := r.findByIdempotencyKey(ctx, dto.ParcelID, *dto.IdempotencyKey)
		return id, false, err
	}

	r.tracker.TrackAggregate(event.ID(), event)
	return event.ID(), true, nil
}

// History returns a restartable sequence; every range issues a fresh query
// and scans rows one at a time. Iteration stops at the first error.
func (r *GormTrackingRepository) History(ctx context.Context, parcelID kernel.UUID) iter.Seq2[*tracking.Event, error] {
	return func(yield func(*tracking.Event, error) bool) {
		if err := parcelID.Validate(); err != nil {
			yield(nil, err)
			return
		}

		rows, err := r.db.WithContext(ctx).
			Model(&TrackingEventDTO{}).
			Where("parcel_id = ?", parcelID.Bytes()).
			Order("recorded_at ASC").
			Order("seq ASC").
			Rows()
		if err != nil {
			yield(nil, errs.NewPersistenceError("read tracking history", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var dto TrackingEventDTO
			if err = r.db.ScanRows(rows, &dto); err != nil {
				yield(nil, errs.NewPersistenceError("scan tracking event", err))
				return
			}

			event, mapErr := dto.ToDomain()
			if !yield(event, mapErr) || mapErr != nil {
				return
			}
		}

		if err = rows.Err(); err != nil {
			yield(nil, errs.NewPersistenceError("read tracking history", err))
		}
	}
}

func (r *GormTrackingRepository) findByIdempotencyKey(ctx context.Context, parcelID uuid.UUID, key string) (kernel.UUID, error) {
	var dto TrackingEventDTO
	if err := r.db.WithContext(ctx).
		Select("id").
		Where("parcel_id = ? AND idempotency_key = ?", parcelID, key).
		First(&dto).Error; err != nil {
		return kernel.UUID{}, errs.NewPersistenceError("find tracking event by idempotency key", err)
	}
	return kernel.UUIDFromGoogle(dto.ID)
}
