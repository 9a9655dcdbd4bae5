package parcel

import (
	"time"

	"courier/internal/core/domain/model/kernel"
)

type CreatedEvent struct {
	ParcelID     kernel.UUID `json:"parcelId"`
	TrackingCode string      `json:"trackingCode"`
	CreatedBy    string      `json:"createdBy"`
	District     string      `json:"district"`
	Cost         string      `json:"cost"`
	At           time.Time   `json:"occurredAt"`
}

func (e CreatedEvent) EventName() string { return "parcel.created" }
func (e CreatedEvent) AggregateID() kernel.UUID { return e.ParcelID }
func (e CreatedEvent) OccurredAt() time.Time { return e.At }

type RiderAssignedEvent struct {
	ParcelID kernel.UUID `json:"parcelId"`
	RiderID  kernel.UUID `json:"riderId"`
	At       time.Time   `json:"occurredAt"`
}

func (e RiderAssignedEvent) EventName() string { return "parcel.rider_assigned" }
func (e RiderAssignedEvent) AggregateID() kernel.UUID { return e.ParcelID }
func (e RiderAssignedEvent) OccurredAt() time.Time { return e.At }
