package parcelrepo

import (
	"context"
	"errors"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/parcel"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormParcelRepository implements ports.ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new parcel row.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("add parcel", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the rider assignment of an existing parcel. The payment
// status column is deliberately left out so that it can only change through
// CompareAndSetPaymentStatus.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("id = ?", dto.ID).
		Select("rider_id").
		Updates(&dto)
	if result.Error != nil {
		return errs.NewPersistenceError("update parcel", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("parcel", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a parcel by ID.
func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", id.String())
		}
		return nil, errs.NewPersistenceError("get parcel", err)
	}

	return dto.ToDomain()
}

// List returns parcels newest first, optionally restricted to one creator.
func (r *GormParcelRepository) List(ctx context.Context, filter ports.ParcelFilter) ([]*parcel.Parcel, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC").Order("id")
	if filter.CreatedBy != nil {
		query = query.Where("created_by = ?", filter.CreatedBy.String())
	}

	var dtos []ParcelDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, errs.NewPersistenceError("list parcels", err)
	}

	return toDomainList(dtos)
}

// Delete removes a parcel row. Payments and tracking events referencing it are kept.
func (r *GormParcelRepository) Delete(ctx context.Context, id kernel.UUID) (int64, error) {
	if err := id.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id.Bytes()).Delete(&ParcelDTO{})
	if result.Error != nil {
		return 0, errs.NewPersistenceError("delete parcel", result.Error)
	}
	return result.RowsAffected, nil
}

// CompareAndSetPaymentStatus issues
//
//	UPDATE parcels SET payment_status = next WHERE id = ? AND payment_status = expected
//
// and reports whether exactly one row changed. It never reads first.
func (r *GormParcelRepository) CompareAndSetPaymentStatus(
	ctx context.Context,
	id kernel.UUID,
	expected, next parcel.PaymentStatus,
) (bool, error) {
	if err := errors.Join(id.Validate(), expected.ValidateTransition(next)); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("id = ? AND payment_status = ?", id.Bytes(), expected.String()).
		Update("payment_status", next.String())
	if result.Error != nil {
		return false, errs.NewPersistenceError("set parcel payment status", result.Error)
	}

	return result.RowsAffected == 1, nil
}

// ListPaidWithoutPayment finds paid parcels created before olderThan with no
// row in payments.
func (r *GormParcelRepository) ListPaidWithoutPayment(ctx context.Context, olderThan time.Time) ([]*parcel.Parcel, error) {
	var dtos []ParcelDTO
	err := r.db.WithContext(ctx).
		Where("payment_status = ?", parcel.Paid.String()).
		Where("created_at < ?", olderThan).
		Where("NOT EXISTS (SELECT 1 FROM payments WHERE payments.parcel_id = parcels.id)").
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewPersistenceError("list paid parcels without payment", err)
	}

	return toDomainList(dtos)
}

func toDomainList(dtos []ParcelDTO) ([]*parcel.Parcel, error) {
	parcels := make([]*parcel.Parcel, 0, len(dtos))
	for _, dto := range dtos {
		p, err := dto.ToDomain()
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, p)
	}
	return parcels, nil
}
