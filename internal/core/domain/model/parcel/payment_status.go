package parcel

import (
	"fmt"

	"courier/internal/pkg/errs"
)

// PaymentStatus is the settlement state of a parcel.
//
// State transitions:
//
//	Unpaid ──> Paid
//
// Paid is final; a parcel is never moved back to Unpaid.
type PaymentStatus int

const (
	// UnknownPaymentStatus catches uninitialised values.
	UnknownPaymentStatus PaymentStatus = iota
	Unpaid
	Paid
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		UnknownPaymentStatus: "unknown",
		Unpaid:               "unpaid",
		Paid:                 "paid",
	}
}

// ParsePaymentStatus maps the stored label back to a PaymentStatus.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	for status, label := range getPaymentStatusStrings() {
		if status != UnknownPaymentStatus && label == s {
			return status, nil
		}
	}
	return UnknownPaymentStatus, errs.NewValueIsInvalidErrorWithCause(
		"payment status is invalid",
		fmt.Errorf("%q is not a valid payment status", s),
	)
}

func (s PaymentStatus) Validate() error {
	if s != Unpaid && s != Paid {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", s),
		)
	}
	return nil
}

func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ValidateTransition reports whether next may replace s. Only Unpaid -> Paid
// is allowed; this is what the conditional update in the store relies on.
func (s PaymentStatus) ValidateTransition(next PaymentStatus) error {
	if s == Unpaid && next == Paid {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"payment status is invalid",
		fmt.Errorf("%s -> %s is not a valid payment transition", s, next),
	)
}
