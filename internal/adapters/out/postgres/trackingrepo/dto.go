// Package trackingrepo persists the append-only tracking log and streams a
// parcel's history straight from the result set.
package trackingrepo

import (
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// TrackingEventDTO is the tracking_events table row. Seq is assigned by the
// database and breaks ties between equal timestamps. Idempotency keys are
// unique per parcel.
type TrackingEventDTO struct {
	Seq            int64     `gorm:"primaryKey;autoIncrement;index:idx_tracking_history,priority:3"`
	ID             uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	TrackingCode   string    `gorm:"type:varchar(64);index;not null"`
	ParcelID       uuid.UUID `gorm:"type:uuid;not null;index:idx_tracking_history,priority:1;uniqueIndex:idx_tracking_idempotency,priority:1"`
	Status         string    `gorm:"type:varchar(64);not null"`
	Message        string    `gorm:"not null"`
	UpdatedBy      string    `gorm:"not null;default:''"`
	IdempotencyKey *string   `gorm:"type:varchar(128);uniqueIndex:idx_tracking_idempotency,priority:2"`
	RecordedAt     time.Time `gorm:"not null;index:idx_tracking_history,priority:2"`
}

func (TrackingEventDTO) TableName() string {
	return "tracking_events"
}

func fromDomain(e *tracking.Event) TrackingEventDTO {
	dto := TrackingEventDTO{
		ID:           e.ID().Bytes(),
		TrackingCode: e.TrackingCode(),
		ParcelID:     e.ParcelID().Bytes(),
		Status:       e.Status(),
		Message:      e.Message(),
		UpdatedBy:    e.UpdatedBy(),
		RecordedAt:   e.RecordedAt(),
	}
	if key := e.IdempotencyKey(); key != "" {
		dto.IdempotencyKey = &key
	}
	return dto
}

func (dto TrackingEventDTO) ToDomain() (*tracking.Event, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	parcelID, err := kernel.UUIDFromGoogle(dto.ParcelID)
	if err != nil {
		return nil, err
	}

	entry := tracking.Entry{
		TrackingCode: dto.TrackingCode,
		Status:       dto.Status,
		Message:      dto.Message,
		UpdatedBy:    dto.UpdatedBy,
	}
	if dto.IdempotencyKey != nil {
		entry.IdempotencyKey = *dto.IdempotencyKey
	}
	return tracking.RestoreEvent(id, parcelID, entry, dto.RecordedAt, dto.Seq)
}
