// Package tracking implements the append-only shipment event history.
//
// Events are never mutated. Their order is defined by the server-assigned
// recorded-at timestamp, with the storage sequence number as tie-breaker.
package tracking

import (
	"errors"
	"strings"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
)

var ErrEventIsNotConstructed = errors.New("tracking Event must be created via NewEvent constructor")

const (
	maxStatusLength         = 64
	maxIdempotencyKeyLength = 128
)

// Status labels emitted by the service itself. Callers of append may use any
// non-empty label.
const (
	StatusRiderAssigned = "rider_assigned"
)

// Entry carries the caller-supplied fields of a tracking event.
type Entry struct {
	TrackingCode string
	Status       string
	Message      string
	// UpdatedBy is the acting identity; empty when unknown.
	UpdatedBy string
	// IdempotencyKey deduplicates client retries when set.
	IdempotencyKey string
}

func (e Entry) validate() error {
	var err error
	if e.TrackingCode == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("tracking code"))
	}
	if e.Status == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("status"))
	} else if len(e.Status) > maxStatusLength {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("status length", len(e.Status), 1, maxStatusLength))
	}
	if e.Message == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("message"))
	}
	if len(e.IdempotencyKey) > maxIdempotencyKeyLength {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError(
			"idempotency key length", len(e.IdempotencyKey), 0, maxIdempotencyKeyLength))
	}
	return err
}

// Validate checks the required fields after trimming whitespace.
func (e Entry) Validate() error {
	return e.normalized().validate()
}

func (e Entry) normalized() Entry {
	e.TrackingCode = strings.TrimSpace(e.TrackingCode)
	e.Status = strings.TrimSpace(e.Status)
	e.Message = strings.TrimSpace(e.Message)
	e.UpdatedBy = strings.TrimSpace(e.UpdatedBy)
	e.IdempotencyKey = strings.TrimSpace(e.IdempotencyKey)
	return e
}

type Event struct {
	kernel.EventRecorder

	id         kernel.UUID
	parcelID   kernel.UUID
	entry      Entry
	recordedAt time.Time
	seq        int64

	isConstructed bool
}

// NewEvent builds an event stamped with recordedAt, which must come from the
// server clock. The parcel reference is not checked for existence.
func NewEvent(id, parcelID kernel.UUID, entry Entry, recordedAt time.Time) (*Event, error) {
	e, err := RestoreEvent(id, parcelID, entry, recordedAt, 0)
	if err != nil {
		return nil, err
	}
	e.Record(AppendedEvent{
		EventID:      e.id,
		ParcelID:     e.parcelID,
		TrackingCode: e.entry.TrackingCode,
		Status:       e.entry.Status,
		At:           e.recordedAt,
	})
	return e, nil
}

// RestoreEvent rebuilds a stored event including its storage sequence number.
func RestoreEvent(id, parcelID kernel.UUID, entry Entry, recordedAt time.Time, seq int64) (*Event, error) {
	entry = entry.normalized()

	var timeErr error
	if recordedAt.IsZero() {
		timeErr = errs.NewValueIsRequiredError("recorded at")
	}
	if err := errors.Join(id.Validate(), parcelID.Validate(), entry.validate(), timeErr); err != nil {
		return nil, err
	}

	return &Event{
		id:            id,
		parcelID:      parcelID,
		entry:         entry,
		recordedAt:    recordedAt.UTC(),
		seq:           seq,
		isConstructed: true,
	}, nil
}

func (e *Event) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

func (e *Event) ID() kernel.UUID { return e.id }
func (e *Event) ParcelID() kernel.UUID { return e.parcelID }
func (e *Event) TrackingCode() string { return e.entry.TrackingCode }
func (e *Event) Status() string { return e.entry.Status }
func (e *Event) Message() string { return e.entry.Message }
func (e *Event) UpdatedBy() string { return e.entry.UpdatedBy }
func (e *Event) IdempotencyKey() string { return e.entry.IdempotencyKey }
func (e *Event) RecordedAt() time.Time { return e.recordedAt }

// Seq is the storage-assigned sequence number; 0 until persisted.
func (e *Event) Seq() int64 { return e.seq }

// Before orders events by recorded-at, then sequence.
func (e *Event) Before(other *Event) bool {
	if !e.recordedAt.Equal(other.recordedAt) {
		return e.recordedAt.Before(other.recordedAt)
	}
	return e.seq < other.seq
}

type AppendedEvent struct {
	EventID      kernel.UUID `json:"eventId"`
	ParcelID     kernel.UUID `json:"parcelId"`
	TrackingCode string      `json:"trackingCode"`
	Status       string      `json:"status"`
	At           time.Time   `json:"occurredAt"`
}

func (e AppendedEvent) EventName() string { return "tracking.appended" }
func (e AppendedEvent) AggregateID() kernel.UUID { return e.ParcelID }
func (e AppendedEvent) OccurredAt() time.Time { return e.At }
