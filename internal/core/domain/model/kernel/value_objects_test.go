package kernel_test

import (
	"strings"
	"testing"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDistrict(t *testing.T) {
	t.Run("should trim surrounding whitespace", func(t *testing.T) {
		d, err := kernel.NewDistrict("  Dhaka ")

		require.NoError(t, err)
		assert.Equal(t, "Dhaka", d.String())
		require.NoError(t, d.Validate())
	})

	t.Run("should reject empty names", func(t *testing.T) {
		_, err := kernel.NewDistrict("   ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject overly long names", func(t *testing.T) {
		_, err := kernel.NewDistrict(strings.Repeat("x", kernel.MaxDistrictLength+1))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should compare exactly", func(t *testing.T) {
		a, _ := kernel.NewDistrict("Dhaka")
		b, _ := kernel.NewDistrict("Dhaka")
		c, _ := kernel.NewDistrict("dhaka")

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
		assert.False(t, a.IsEqual(kernel.District{}))
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var d kernel.District
		assert.Equal(t, kernel.ErrDistrictIsNotConstructed, d.Validate())
	})
}

func TestNewEmail(t *testing.T) {
	t.Run("should normalise case", func(t *testing.T) {
		e, err := kernel.NewEmail(" Alice@Example.COM ")

		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", e.String())
	})

	t.Run("should reject malformed addresses", func(t *testing.T) {
		_, err := kernel.NewEmail("not-an-email")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject empty addresses", func(t *testing.T) {
		_, err := kernel.NewEmail("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestMoney(t *testing.T) {
	t.Run("should round to cents", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.RequireFromString("10.129"))

		require.NoError(t, err)
		assert.Equal(t, "10.13", m.String())
		assert.Equal(t, int64(1013), m.Cents())
	})

	t.Run("should build from cents", func(t *testing.T) {
		m, err := kernel.MoneyFromCents(50000)

		require.NoError(t, err)
		assert.Equal(t, "500.00", m.String())
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("positive money rejects zero", func(t *testing.T) {
		_, err := kernel.NewPositiveMoney(decimal.Zero)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var m kernel.Money
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, m.Validate())
	})
}
