// Package riderrepo persists riders and applies status changes as conditional
// updates on the previous status.
package riderrepo

import (
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/rider"

	"github.com/google/uuid"
)

type RiderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	Email     string    `gorm:"type:varchar(320);index;not null"`
	Phone     string    `gorm:"type:varchar(32);not null"`
	District  string    `gorm:"type:varchar(64);not null;index:idx_riders_availability,priority:2"`
	Status    string    `gorm:"type:varchar(16);not null;index:idx_riders_availability,priority:1"`
	CreatedAt time.Time `gorm:"not null"`
}

func (RiderDTO) TableName() string {
	return "riders"
}

func fromDomain(r *rider.Rider) RiderDTO {
	profile := r.Profile()
	return RiderDTO{
		ID:        r.ID().Bytes(),
		Name:      profile.Name,
		Email:     profile.Email.String(),
		Phone:     profile.Phone,
		District:  r.District().String(),
		Status:    r.Status().String(),
		CreatedAt: r.CreatedAt(),
	}
}

func (dto RiderDTO) ToDomain() (*rider.Rider, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	email, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}
	district, err := kernel.NewDistrict(dto.District)
	if err != nil {
		return nil, err
	}
	status, err := rider.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return rider.RestoreRider(id, rider.Profile{Name: dto.Name, Email: email, Phone: dto.Phone}, district, status, dto.CreatedAt)
}
