package riderrepo

import (
	"context"
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/rider"
	"courier/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRiderRepository implements ports.RiderRepository using GORM.
type GormRiderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormRiderRepository(db *gorm.DB, tracker aggregateTracker) *GormRiderRepository {
	return &GormRiderRepository{db: db, tracker: tracker}
}

func (r *GormRiderRepository) Add(ctx context.Context, aggregate *rider.Rider) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("add rider", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormRiderRepository) Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RiderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rider", id.String())
		}
		return nil, errs.NewPersistenceError("get rider", err)
	}

	return dto.ToDomain()
}

// UpdateStatus writes the rider's status guarded by the expected previous
// value. When no row matches it distinguishes a missing rider from a
// concurrent change.
func (r *GormRiderRepository) UpdateStatus(ctx context.Context, aggregate *rider.Rider, expected rider.Status) error {
	if err := errors.Join(aggregate.Validate(), expected.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&RiderDTO{}).
		Where("id = ? AND status = ?", aggregate.ID().Bytes(), expected.String()).
		Update("status", aggregate.Status().String())
	if result.Error != nil {
		return errs.NewPersistenceError("update rider status", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&RiderDTO{}).Where("id = ?", aggregate.ID().Bytes()).Count(&count).Error; err != nil {
			return errs.NewPersistenceError("update rider status", err)
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("rider", aggregate.ID().String())
		}
		return errs.NewConflictErrorWithCause("rider", aggregate.ID().String(),
			errors.New("status changed concurrently"))
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormRiderRepository) ListByStatus(ctx context.Context, status rider.Status) ([]*rider.Rider, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	return r.find(ctx, "list riders by status", r.db.WithContext(ctx).Where("status = ?", status.String()))
}

func (r *GormRiderRepository) ListAvailable(ctx context.Context, district kernel.District) ([]*rider.Rider, error) {
	if err := district.Validate(); err != nil {
		return nil, err
	}
	return r.find(ctx, "list available riders", r.db.WithContext(ctx).
		Where("status = ? AND district = ?", rider.Active.String(), district.String()))
}

func (r *GormRiderRepository) find(_ context.Context, op string, query *gorm.DB) ([]*rider.Rider, error) {
	var dtos []RiderDTO
	if err := query.Order("created_at").Order("id").Find(&dtos).Error; err != nil {
		return nil, errs.NewPersistenceError(op, err)
	}

	riders := make([]*rider.Rider, 0, len(dtos))
	for _, dto := range dtos {
		rd, err := dto.ToDomain()
		if err != nil {
			return nil, err
		}
		riders = append(riders, rd)
	}
	return riders, nil
}
