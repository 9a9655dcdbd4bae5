package guard_test

import (
	"errors"
	"sync"
	"testing"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("parcel must be created via NewParcel")

	tests := []struct {
		name  string
		guard guard.ConstructorGuard
		given error
		want  error
	}{
		{"constructed with custom error", guard.NewConstructorGuard(), errNotConstructed, nil},
		{"constructed with nil error", guard.NewConstructorGuard(), nil, nil},
		{"zero value returns custom error", guard.ConstructorGuard{}, errNotConstructed, errNotConstructed},
		{"zero value falls back to default", guard.ConstructorGuard{}, nil, guard.ErrDefaultConstructorGuard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.guard.Validate(tt.given)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			assert.Equal(t, tt.want, err)
		})
	}
}

func TestConstructorGuard_DefaultErrorMessage(t *testing.T) {
	assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
}

// The kernel value objects embed a guard; a zero value must fail Validate with
// the object's own error, and that error must map to a required-value failure.
func TestConstructorGuard_KernelValueObjects(t *testing.T) {
	email, err := kernel.NewEmail("alice@example.com")
	require.NoError(t, err)
	district, err := kernel.NewDistrict("Dhaka")
	require.NoError(t, err)
	money, err := kernel.NewMoney(decimal.RequireFromString("150.50"))
	require.NoError(t, err)

	tests := []struct {
		name        string
		constructed func() error
		zero        func() error
		want        error
	}{
		{"email", email.Validate, kernel.Email{}.Validate, kernel.ErrEmailIsNotConstructed},
		{"district", district.Validate, kernel.District{}.Validate, kernel.ErrDistrictIsNotConstructed},
		{"money", money.Validate, kernel.Money{}.Validate, kernel.ErrMoneyIsNotConstructed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.constructed())

			err := tt.zero()
			require.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		})
	}
}

func TestConstructorGuard_CopiesStayConstructed(t *testing.T) {
	district, err := kernel.NewDistrict("  Chattogram ")
	require.NoError(t, err)

	copied := district
	require.NoError(t, copied.Validate())
	assert.True(t, copied.IsEqual(district))
	assert.Equal(t, "Chattogram", copied.String())
}

func TestConstructorGuard_Concurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	errNotConstructed := errors.New("rider must be created via NewRider")

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 500 {
				assert.NoError(t, g.Validate(errNotConstructed))
			}
		}()
	}
	wg.Wait()
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	for range b.N {
		_ = g.Validate(err)
	}
}
