// Package queries contains read operations for retrieving system state.
// Queries return read models shaped for the HTTP adapter and the jobs; they
// never open a transaction.
package queries

import (
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/parcel"
	"courier/internal/core/domain/model/rider"
	"courier/internal/core/domain/model/tracking"

	"github.com/shopspring/decimal"
)

// ParcelView is the read model of a parcel.
type ParcelView struct {
	ID              kernel.UUID
	TrackingCode    string
	CreatedBy       string
	Title           string
	ReceiverName    string
	ReceiverAddress string
	District        string
	Cost            decimal.Decimal
	PaymentStatus   string
	RiderID         *kernel.UUID
	CreatedAt       time.Time
}

func newParcelView(p *parcel.Parcel) ParcelView {
	contents := p.Contents()
	return ParcelView{
		ID:              p.ID(),
		TrackingCode:    p.TrackingCode(),
		CreatedBy:       p.CreatedBy().String(),
		Title:           contents.Title,
		ReceiverName:    contents.ReceiverName,
		ReceiverAddress: contents.ReceiverAddress,
		District:        p.District().String(),
		Cost:            p.Cost().Decimal(),
		PaymentStatus:   p.PaymentStatus().String(),
		RiderID:         p.Rider(),
		CreatedAt:       p.CreatedAt(),
	}
}

func newParcelViews(parcels []*parcel.Parcel) []ParcelView {
	views := make([]ParcelView, 0, len(parcels))
	for _, p := range parcels {
		views = append(views, newParcelView(p))
	}
	return views
}

// PaymentView is the read model of a payment record.
type PaymentView struct {
	ID            kernel.UUID
	ParcelID      kernel.UUID
	Email         string
	Amount        decimal.Decimal
	PaymentMethod string
	TransactionID string
	PaidAt        time.Time
	PaidAtString  string
}

// TrackingEventView is one entry of a parcel's shipment history.
type TrackingEventView struct {
	ID           kernel.UUID
	TrackingCode string
	ParcelID     kernel.UUID
	Status       string
	Message      string
	UpdatedBy    string
	RecordedAt   time.Time
}

func newTrackingEventView(e *tracking.Event) TrackingEventView {
	return TrackingEventView{
		ID:           e.ID(),
		TrackingCode: e.TrackingCode(),
		ParcelID:     e.ParcelID(),
		Status:       e.Status(),
		Message:      e.Message(),
		UpdatedBy:    e.UpdatedBy(),
		RecordedAt:   e.RecordedAt(),
	}
}

// RiderView is the read model of a rider.
type RiderView struct {
	ID        kernel.UUID
	Name      string
	Email     string
	Phone     string
	District  string
	Status    string
	CreatedAt time.Time
}

func newRiderViews(riders []*rider.Rider) []RiderView {
	views := make([]RiderView, 0, len(riders))
	for _, r := range riders {
		profile := r.Profile()
		views = append(views, RiderView{
			ID:        r.ID(),
			Name:      profile.Name,
			Email:     profile.Email.String(),
			Phone:     profile.Phone,
			District:  r.District().String(),
			Status:    r.Status().String(),
			CreatedAt: r.CreatedAt(),
		})
	}
	return views
}
