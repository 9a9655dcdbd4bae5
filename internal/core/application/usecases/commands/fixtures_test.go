package commands_test

import (
	"testing"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/parcel"
	"courier/internal/core/domain/model/rider"

	"github.com/stretchr/testify/require"
)

func mustEmail(t *testing.T, s string) kernel.Email {
	t.Helper()
	e, err := kernel.NewEmail(s)
	require.NoError(t, err)
	return e
}

func mustDistrict(t *testing.T, s string) kernel.District {
	t.Helper()
	d, err := kernel.NewDistrict(s)
	require.NoError(t, err)
	return d
}

func restoreParcel(t *testing.T, district string, status parcel.PaymentStatus) *parcel.Parcel {
	t.Helper()
	cost, err := kernel.MoneyFromCents(50000)
	require.NoError(t, err)
	id := kernel.NewUUID()

	p, err := parcel.RestoreParcel(
		id,
		parcel.NewTrackingCode(id, testNow),
		mustEmail(t, "alice@example.com"),
		mustDistrict(t, district),
		cost,
		parcel.Contents{Title: "Books", ReceiverName: "Bob", ReceiverAddress: "Road 1"},
		status,
		nil,
		testNow,
	)
	require.NoError(t, err)
	return p
}

func restoreRider(t *testing.T, district string, status rider.Status) *rider.Rider {
	t.Helper()
	r, err := rider.RestoreRider(
		kernel.NewUUID(),
		rider.Profile{Name: "Rahim", Email: mustEmail(t, "rahim@example.com"), Phone: "+8801700000000"},
		mustDistrict(t, district),
		status,
		testNow,
	)
	require.NoError(t, err)
	return r
}
