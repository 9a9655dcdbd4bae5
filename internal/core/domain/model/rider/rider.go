package rider

import (
	"errors"
	"strings"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
)

var ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider constructor")

// Profile holds the contact details submitted at registration.
type Profile struct {
	Name  string
	Email kernel.Email
	Phone string
}

func (p Profile) validate() error {
	var err error
	if strings.TrimSpace(p.Name) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("name"))
	}
	if vErr := p.Email.Validate(); vErr != nil {
		err = errors.Join(err, vErr)
	}
	if strings.TrimSpace(p.Phone) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("phone"))
	}
	return err
}

// Rider is a delivery agent. Status changes go through ChangeStatus only.
type Rider struct {
	kernel.EventRecorder

	id        kernel.UUID
	profile   Profile
	district  kernel.District
	status    Status
	createdAt time.Time

	isConstructed bool
}

// NewRider registers a rider in Pending status.
func NewRider(id kernel.UUID, profile Profile, district kernel.District, createdAt time.Time) (*Rider, error) {
	r, err := RestoreRider(id, profile, district, Pending, createdAt)
	if err != nil {
		return nil, err
	}
	r.Record(RegisteredEvent{
		RiderID:  r.id,
		Email:    r.profile.Email.String(),
		District: r.district.String(),
		At:       r.createdAt,
	})
	return r, nil
}

func RestoreRider(
	id kernel.UUID,
	profile Profile,
	district kernel.District,
	status Status,
	createdAt time.Time,
) (*Rider, error) {
	var timeErr error
	if createdAt.IsZero() {
		timeErr = errs.NewValueIsRequiredError("created at")
	}
	if err := errors.Join(
		id.Validate(),
		profile.validate(),
		district.Validate(),
		status.Validate(),
		timeErr,
	); err != nil {
		return nil, err
	}

	profile.Name = strings.TrimSpace(profile.Name)
	profile.Phone = strings.TrimSpace(profile.Phone)
	return &Rider{
		id:            id,
		profile:       profile,
		district:      district,
		status:        status,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}, nil
}

func (r *Rider) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRiderIsNotConstructed
	}
	return nil
}

func (r *Rider) IsEqual(other *Rider) bool {
	return other != nil && r.id.IsEqual(other.id)
}

func (r *Rider) ID() kernel.UUID { return r.id }
func (r *Rider) Profile() Profile { return r.profile }
func (r *Rider) District() kernel.District { return r.district }
func (r *Rider) Status() Status { return r.status }
func (r *Rider) CreatedAt() time.Time { return r.createdAt }

// IsAvailableIn reports whether the rider is active and serves exactly district.
func (r *Rider) IsAvailableIn(district kernel.District) bool {
	return r.status.IsAssignable() && r.district.IsEqual(district)
}

// ChangeStatus moves the rider along the state machine and returns the
// previous status, which the store uses as the expected value of its
// conditional update.
func (r *Rider) ChangeStatus(next Status, at time.Time) (Status, error) {
	previous := r.status
	newStatus, err := previous.TransitionTo(next)
	if err != nil {
		return previous, err
	}

	r.status = newStatus
	r.Record(StatusChangedEvent{RiderID: r.id, From: previous.String(), To: newStatus.String(), At: at})
	return previous, nil
}

type RegisteredEvent struct {
	RiderID  kernel.UUID `json:"riderId"`
	Email    string      `json:"email"`
	District string      `json:"district"`
	At       time.Time   `json:"occurredAt"`
}

func (e RegisteredEvent) EventName() string { return "rider.registered" }
func (e RegisteredEvent) AggregateID() kernel.UUID { return e.RiderID }
func (e RegisteredEvent) OccurredAt() time.Time { return e.At }

type StatusChangedEvent struct {
	RiderID kernel.UUID `json:"riderId"`
	From    string      `json:"from"`
	To      string      `json:"to"`
	At      time.Time   `json:"occurredAt"`
}

func (e StatusChangedEvent) EventName() string { return "rider.status_changed" }
func (e StatusChangedEvent) AggregateID() kernel.UUID { return e.RiderID }
func (e StatusChangedEvent) OccurredAt() time.Time { return e.At }
