package rider

import (
	"errors"
	"fmt"

	"courier/internal/pkg/errs"
)

// ErrInvalidTransition is returned when a status change is not reachable
// from the rider's current status.
var ErrInvalidTransition = errors.New("invalid rider status transition")

// InvalidTransitionError carries the attempted edge. It matches both
// ErrInvalidTransition and errs.ErrConflict.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() []error {
	return []error{ErrInvalidTransition, errs.ErrConflict}
}

// Status is the assignment-eligibility state of a rider.
//
// State transitions:
//
//	Pending ──┬──> Active ──> Suspended
//	          │
//	          └──> Rejected
//
// Rejected and Suspended are terminal. Only Active riders can be assigned.
type Status int

const (
	Unknown Status = iota
	Pending
	Active
	Rejected
	Suspended
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Active:    "active",
		Rejected:  "rejected",
		Suspended: "suspended",
	}
}

func getTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal and unknown states have no outgoing edges
	return map[Status][]Status{
		Pending: {Active, Rejected},
		Active:  {Suspended},
	}
}

// ParseStatus maps an API or storage label to a Status. Unknown labels are a
// validation error, not an invalid transition.
func ParseStatus(s string) (Status, error) {
	for status, label := range getStatusStrings() {
		if status != Unknown && label == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"rider status is invalid",
		fmt.Errorf("%q is not a valid rider status", s),
	)
}

func (s Status) Validate() error {
	if s <= Unknown || s > Suspended {
		return errs.NewValueIsInvalidErrorWithCause(
			"rider status is invalid",
			fmt.Errorf("%d is not a valid rider status", s),
		)
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsAssignable reports whether riders in this status may take parcels.
func (s Status) IsAssignable() bool {
	return s == Active
}

// TransitionTo validates next against the state machine and returns it.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	for _, allowed := range getTransitions()[s] {
		if allowed == next {
			return next, nil
		}
	}
	return Unknown, &InvalidTransitionError{From: s, To: next}
}
