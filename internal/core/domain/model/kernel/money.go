package kernel

import (
	"errors"
	"fmt"

	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney or MoneyFromCents")

// Money is a non-negative amount with two decimal places of precision.
type Money struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney rounds amount to cents and rejects negative values.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount.Round(2), guard: guard.NewConstructorGuard()}, nil
}

// NewPositiveMoney is NewMoney that additionally rejects zero.
func NewPositiveMoney(amount decimal.Decimal) (Money, error) {
	m, err := NewMoney(amount)
	if err != nil {
		return Money{}, err
	}
	if m.amount.IsZero() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", errors.New("must be greater than 0"))
	}
	return m, nil
}

func MoneyFromCents(cents int64) (Money, error) {
	return NewMoney(decimal.New(cents, -2))
}

func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Cents returns the amount in minor units as payment gateways expect it.
func (m Money) Cents() int64 {
	return m.amount.Shift(2).IntPart()
}

func (m Money) String() string {
	return m.amount.StringFixed(2)
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}
