package parcel

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel was not created
	// through NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

	// ErrParcelIsNotPaid is returned when a rider is assigned to an unpaid parcel.
	ErrParcelIsNotPaid = errs.NewConflictError("parcel", "is not paid")
)

const (
	maxTitleLength   = 200
	trackingCodeHead = "PCL"
)

// Contents holds the descriptive fields entered at intake.
type Contents struct {
	Title           string
	ReceiverName    string
	ReceiverAddress string
}

// Parcel is the aggregate root for a shipment from intake to delivery.
//
// Invariants:
//   - payment status moves Unpaid -> Paid exactly once and never reverses
//   - a rider may only be assigned once the parcel is Paid
//   - the tracking code is derived at intake and never changes
type Parcel struct {
	kernel.EventRecorder

	id            kernel.UUID
	trackingCode  string
	createdBy     kernel.Email
	contents      Contents
	district      kernel.District
	cost          kernel.Money
	paymentStatus PaymentStatus
	riderID       *kernel.UUID
	createdAt     time.Time

	isConstructed bool
}

// NewParcel registers a new unpaid parcel and records a CreatedEvent.
//
// Example:
//
//	email, _ := kernel.NewEmail("sender@example.com")
//	district, _ := kernel.NewDistrict("Dhaka")
//	cost, _ := kernel.MoneyFromCents(50000)
//	p, err := parcel.NewParcel(kernel.NewUUID(), email, district, cost,
//	    parcel.Contents{Title: "Books", ReceiverName: "Bob", ReceiverAddress: "Road 1"},
//	    clock.Now())
func NewParcel(
	id kernel.UUID,
	createdBy kernel.Email,
	district kernel.District,
	cost kernel.Money,
	contents Contents,
	createdAt time.Time,
) (*Parcel, error) {
	p := &Parcel{
		paymentStatus: Unpaid,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setCreatedBy(createdBy),
		p.setDistrict(district),
		p.setCost(cost),
		p.setContents(contents),
		p.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}
	p.trackingCode = NewTrackingCode(id, createdAt)

	p.Record(CreatedEvent{
		ParcelID:     p.id,
		TrackingCode: p.trackingCode,
		CreatedBy:    p.createdBy.String(),
		District:     p.district.String(),
		Cost:         p.cost.String(),
		At:           p.createdAt,
	})
	return p, nil
}

// RestoreParcel rebuilds a parcel from storage without recording events.
func RestoreParcel(
	id kernel.UUID,
	trackingCode string,
	createdBy kernel.Email,
	district kernel.District,
	cost kernel.Money,
	contents Contents,
	paymentStatus PaymentStatus,
	riderID *kernel.UUID,
	createdAt time.Time,
) (*Parcel, error) {
	p := &Parcel{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setCreatedBy(createdBy),
		p.setDistrict(district),
		p.setCost(cost),
		p.setContents(contents),
		p.setCreatedAt(createdAt),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}
	if strings.TrimSpace(trackingCode) == "" {
		return nil, errs.NewValueIsRequiredError("tracking code")
	}
	if riderID != nil {
		if err := riderID.Validate(); err != nil {
			return nil, err
		}
		rid := *riderID
		p.riderID = &rid
	}
	p.trackingCode = trackingCode
	p.paymentStatus = paymentStatus

	return p, nil
}

// NewTrackingCode derives the external code PCL-YYYYMMDD-XXXXXX from the
// parcel identifier and its intake date.
func NewTrackingCode(id kernel.UUID, createdAt time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:6])
	return fmt.Sprintf("%s-%s-%s", trackingCodeHead, createdAt.UTC().Format("20060102"), suffix)
}

func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *Parcel) ID() kernel.UUID { return p.id }
func (p *Parcel) TrackingCode() string { return p.trackingCode }
func (p *Parcel) CreatedBy() kernel.Email { return p.createdBy }
func (p *Parcel) Contents() Contents { return p.contents }
func (p *Parcel) District() kernel.District { return p.district }
func (p *Parcel) Cost() kernel.Money { return p.cost }
func (p *Parcel) PaymentStatus() PaymentStatus { return p.paymentStatus }
func (p *Parcel) CreatedAt() time.Time { return p.createdAt }
func (p *Parcel) IsPaid() bool { return p.paymentStatus == Paid }

// Rider returns the assigned rider, or nil.
func (p *Parcel) Rider() *kernel.UUID {
	if p.riderID == nil {
		return nil
	}
	id := *p.riderID
	return &id
}

// AssignRider attaches a rider to a paid parcel. Reassignment replaces the
// previous rider. District and rider eligibility are checked by the dispatcher.
func (p *Parcel) AssignRider(riderID kernel.UUID, at time.Time) error {
	if err := riderID.Validate(); err != nil {
		return err
	}
	if p.paymentStatus != Paid {
		return ErrParcelIsNotPaid
	}

	p.riderID = &riderID
	p.Record(RiderAssignedEvent{ParcelID: p.id, RiderID: riderID, At: at})
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setCreatedBy(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	p.createdBy = email
	return nil
}

func (p *Parcel) setDistrict(district kernel.District) error {
	if err := district.Validate(); err != nil {
		return err
	}
	p.district = district
	return nil
}

func (p *Parcel) setCost(cost kernel.Money) error {
	if err := cost.Validate(); err != nil {
		return err
	}
	p.cost = cost
	return nil
}

func (p *Parcel) setContents(c Contents) error {
	c.Title = strings.TrimSpace(c.Title)
	c.ReceiverName = strings.TrimSpace(c.ReceiverName)
	c.ReceiverAddress = strings.TrimSpace(c.ReceiverAddress)

	var err error
	if c.Title == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("title"))
	} else if len(c.Title) > maxTitleLength {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("title length", len(c.Title), 1, maxTitleLength))
	}
	if c.ReceiverName == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("receiver name"))
	}
	if c.ReceiverAddress == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("receiver address"))
	}
	if err != nil {
		return err
	}
	p.contents = c
	return nil
}

func (p *Parcel) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	p.createdAt = createdAt.UTC()
	return nil
}
