// Package parcelrepo persists the Parcel aggregate with GORM and implements
// the conditional payment-status update used by the payment coordinator.
package parcelrepo

import (
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ParcelDTO is the parcels table row.
type ParcelDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TrackingCode    string          `gorm:"type:varchar(32);uniqueIndex;not null"`
	CreatedBy       string          `gorm:"type:varchar(320);index;not null"`
	Title           string          `gorm:"type:varchar(200);not null"`
	ReceiverName    string          `gorm:"not null"`
	ReceiverAddress string          `gorm:"not null"`
	District        string          `gorm:"type:varchar(64);index;not null"`
	Cost            decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaymentStatus   string          `gorm:"type:varchar(16);index;not null"`
	RiderID         *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt       time.Time       `gorm:"index;not null"`
}

func (ParcelDTO) TableName() string {
	return "parcels"
}

func fromDomain(p *parcel.Parcel) ParcelDTO {
	contents := p.Contents()
	dto := ParcelDTO{
		ID:              p.ID().Bytes(),
		TrackingCode:    p.TrackingCode(),
		CreatedBy:       p.CreatedBy().String(),
		Title:           contents.Title,
		ReceiverName:    contents.ReceiverName,
		ReceiverAddress: contents.ReceiverAddress,
		District:        p.District().String(),
		Cost:            p.Cost().Decimal(),
		PaymentStatus:   p.PaymentStatus().String(),
		CreatedAt:       p.CreatedAt(),
	}
	if rider := p.Rider(); rider != nil {
		id := rider.Bytes()
		dto.RiderID = &id
	}
	return dto
}

// ToDomain rebuilds the aggregate from a row.
func (dto ParcelDTO) ToDomain() (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	email, err := kernel.NewEmail(dto.CreatedBy)
	if err != nil {
		return nil, err
	}
	district, err := kernel.NewDistrict(dto.District)
	if err != nil {
		return nil, err
	}
	cost, err := kernel.NewMoney(dto.Cost)
	if err != nil {
		return nil, err
	}
	status, err := parcel.ParsePaymentStatus(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	var riderID *kernel.UUID
	if dto.RiderID != nil {
		rid, ridErr := kernel.UUIDFromGoogle(*dto.RiderID)
		if ridErr != nil {
			return nil, ridErr
		}
		riderID = &rid
	}

	return parcel.RestoreParcel(
		id,
		dto.TrackingCode,
		email,
		district,
		cost,
		parcel.Contents{
			Title:           dto.Title,
			ReceiverName:    dto.ReceiverName,
			ReceiverAddress: dto.ReceiverAddress,
		},
		status,
		riderID,
		dto.CreatedAt,
	)
}
