package parcel_test

import (
	"testing"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/parcel"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var intakeTime = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func validInputs(t *testing.T) (kernel.Email, kernel.District, kernel.Money, parcel.Contents) {
	t.Helper()
	email, err := kernel.NewEmail("sender@example.com")
	require.NoError(t, err)
	district, err := kernel.NewDistrict("Dhaka")
	require.NoError(t, err)
	cost, err := kernel.MoneyFromCents(50000)
	require.NoError(t, err)
	return email, district, cost, parcel.Contents{
		Title:           "Books",
		ReceiverName:    "Bob",
		ReceiverAddress: "House 4, Road 2",
	}
}

func TestNewParcel(t *testing.T) {
	email, district, cost, contents := validInputs(t)

	t.Run("should create unpaid parcel with derived tracking code", func(t *testing.T) {
		id, _ := kernel.UUIDFromString("0f1e2d3c-4b5a-6978-8796-a5b4c3d2e1f0")

		p, err := parcel.NewParcel(id, email, district, cost, contents, intakeTime)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, parcel.Unpaid, p.PaymentStatus())
		assert.False(t, p.IsPaid())
		assert.Nil(t, p.Rider())
		assert.Equal(t, "PCL-20250314-0F1E2D", p.TrackingCode())
		assert.Equal(t, "500.00", p.Cost().String())
	})

	t.Run("should record a created event", func(t *testing.T) {
		p, err := parcel.NewParcel(kernel.NewUUID(), email, district, cost, contents, intakeTime)
		require.NoError(t, err)

		events := p.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "parcel.created", events[0].EventName())
		assert.True(t, events[0].AggregateID().IsEqual(p.ID()))
	})

	t.Run("should join all validation errors", func(t *testing.T) {
		p, err := parcel.NewParcel(kernel.UUID{}, kernel.Email{}, district, cost, parcel.Contents{}, time.Time{})

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "email must be created")
		assert.Contains(t, err.Error(), "title")
		assert.Contains(t, err.Error(), "receiver name")
		assert.Contains(t, err.Error(), "created at")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestParcel_AssignRider(t *testing.T) {
	email, district, cost, contents := validInputs(t)
	riderID := kernel.NewUUID()

	t.Run("should refuse unpaid parcels", func(t *testing.T) {
		p, _ := parcel.NewParcel(kernel.NewUUID(), email, district, cost, contents, intakeTime)

		err := p.AssignRider(riderID, intakeTime)

		require.ErrorIs(t, err, parcel.ErrParcelIsNotPaid)
		assert.Nil(t, p.Rider())
	})

	t.Run("should assign paid parcels and record an event", func(t *testing.T) {
		p, err := parcel.RestoreParcel(kernel.NewUUID(), "PCL-20250314-ABCDEF", email, district, cost,
			contents, parcel.Paid, nil, intakeTime)
		require.NoError(t, err)

		require.NoError(t, p.AssignRider(riderID, intakeTime))

		require.NotNil(t, p.Rider())
		assert.True(t, p.Rider().IsEqual(riderID))
		events := p.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, "parcel.rider_assigned", events[0].EventName())
	})

	t.Run("should reject a zero rider id", func(t *testing.T) {
		p, _ := parcel.RestoreParcel(kernel.NewUUID(), "PCL-20250314-ABCDEF", email, district, cost,
			contents, parcel.Paid, nil, intakeTime)

		require.ErrorIs(t, p.AssignRider(kernel.UUID{}, intakeTime), kernel.ErrUUIDIsNotConstructed)
	})
}

func TestRestoreParcel(t *testing.T) {
	email, district, cost, contents := validInputs(t)

	t.Run("should not record events", func(t *testing.T) {
		p, err := parcel.RestoreParcel(kernel.NewUUID(), "PCL-20250314-ABCDEF", email, district, cost,
			contents, parcel.Unpaid, nil, intakeTime)

		require.NoError(t, err)
		assert.Empty(t, p.DomainEvents())
	})

	t.Run("should reject unknown payment status", func(t *testing.T) {
		_, err := parcel.RestoreParcel(kernel.NewUUID(), "PCL-20250314-ABCDEF", email, district, cost,
			contents, parcel.UnknownPaymentStatus, nil, intakeTime)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should copy the rider reference", func(t *testing.T) {
		riderID := kernel.NewUUID()
		p, err := parcel.RestoreParcel(kernel.NewUUID(), "PCL-20250314-ABCDEF", email, district, cost,
			contents, parcel.Paid, &riderID, intakeTime)
		require.NoError(t, err)

		riderID = kernel.NewUUID()
		assert.False(t, p.Rider().IsEqual(riderID))
	})
}

func TestParcel_Validate(t *testing.T) {
	var p *parcel.Parcel
	require.ErrorIs(t, p.Validate(), parcel.ErrParcelIsNotConstructed)
	require.ErrorIs(t, (&parcel.Parcel{}).Validate(), parcel.ErrParcelIsNotConstructed)
}
