package kernel

import (
	"strings"

	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"

	"github.com/go-playground/validator/v10"
)

var (
	ErrEmailIsNotConstructed = errs.NewValueIsRequiredError("email must be created via NewEmail")

	emailValidator = validator.New(validator.WithRequiredStructEnabled())
)

// Email identifies parcel creators, payers and riders. Addresses are stored
// lower-cased so that list filters compare case-insensitively.
type Email struct {
	address string
	guard   guard.ConstructorGuard
}

func NewEmail(address string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(address))
	if normalized == "" {
		return Email{}, errs.NewValueIsRequiredError("email")
	}
	if err := emailValidator.Var(normalized, "email"); err != nil {
		return Email{}, errs.NewValueIsInvalidErrorWithCause("email", err)
	}

	return Email{address: normalized, guard: guard.NewConstructorGuard()}, nil
}

func (e Email) Validate() error {
	return e.guard.Validate(ErrEmailIsNotConstructed)
}

func (e Email) String() string {
	return e.address
}

func (e Email) IsEqual(other Email) bool {
	return e.address == other.address
}
