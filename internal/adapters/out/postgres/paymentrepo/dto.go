// Package paymentrepo persists the insert-only payment ledger.
package paymentrepo

import (
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDTO is the payments table row. parcel_id is indexed but not unique:
// at most one payment per parcel is guaranteed by the conditional update on
// parcels, not by this table.
type PaymentDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ParcelID      uuid.UUID       `gorm:"type:uuid;index;not null"`
	Email         string          `gorm:"type:varchar(320);index;not null"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaymentMethod string          `gorm:"type:varchar(32);not null"`
	TransactionID string          `gorm:"type:varchar(255);not null"`
	PaidAt        time.Time       `gorm:"index;not null"`
	PaidAtString  string          `gorm:"type:varchar(64);not null"`
}

func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(p *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:            p.ID().Bytes(),
		ParcelID:      p.ParcelID().Bytes(),
		Email:         p.Payer().String(),
		Amount:        p.Amount().Decimal(),
		PaymentMethod: p.Method(),
		TransactionID: p.TransactionID(),
		PaidAt:        p.PaidAt(),
		PaidAtString:  p.PaidAtString(),
	}
}

func (dto PaymentDTO) ToDomain() (*payment.Payment, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	parcelID, err := kernel.UUIDFromGoogle(dto.ParcelID)
	if err != nil {
		return nil, err
	}
	payer, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}
	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(id, parcelID, payer, payment.Details{
		Amount:        amount,
		Method:        dto.PaymentMethod,
		TransactionID: dto.TransactionID,
	}, dto.PaidAt)
}
