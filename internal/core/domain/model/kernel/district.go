package kernel

import (
	"fmt"
	"strings"

	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

// MaxDistrictLength bounds district names to what the riders table column holds.
const MaxDistrictLength = 64

var ErrDistrictIsNotConstructed = errs.NewValueIsRequiredError("district must be created via NewDistrict")

// District is the service area used to match riders with parcels.
// Matching is an exact comparison of the trimmed name; no normalisation of
// case or spelling is attempted.
type District struct {
	name  string
	guard guard.ConstructorGuard
}

func NewDistrict(name string) (District, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return District{}, errs.NewValueIsRequiredError("district")
	}
	if len(trimmed) > MaxDistrictLength {
		return District{}, errs.NewValueIsInvalidErrorWithCause(
			"district",
			fmt.Errorf("length %d exceeds %d", len(trimmed), MaxDistrictLength),
		)
	}

	return District{name: trimmed, guard: guard.NewConstructorGuard()}, nil
}

func (d District) Validate() error {
	return d.guard.Validate(ErrDistrictIsNotConstructed)
}

func (d District) String() string {
	return d.name
}

// IsEqual reports an exact match between two constructed districts.
func (d District) IsEqual(other District) bool {
	return d.Validate() == nil && other.Validate() == nil && d.name == other.name
}
