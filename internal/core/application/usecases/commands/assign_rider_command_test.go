package commands_test

import (
	"errors"
	"testing"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/parcel"
	"courier/internal/core/domain/model/rider"
	"courier/internal/core/domain/model/tracking"
	"courier/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAssignRiderCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewAssignRiderCommand(kernel.UUID{}, kernel.NewUUID(), "")
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = commands.NewAssignRiderCommand(kernel.NewUUID(), kernel.UUID{}, "")
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestAssignRiderCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	p := restoreParcel(t, "Dhaka", parcel.Paid)
	r := restoreRider(t, "Dhaka", rider.Active)
	cmd, err := commands.NewAssignRiderCommand(p.ID(), r.ID(), "ops@example.com")
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	riderRepo := new(MockRiderRepository)
	trackingRepo := new(MockTrackingRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", ctx, p.ID()).Return(p, nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("Get", ctx, r.ID()).Return(r, nil).Once(),
		parcelRepo.On("Update", ctx, p).Return(nil).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		trackingRepo.On("Append", ctx, mock.MatchedBy(func(e *tracking.Event) bool {
			return e.ParcelID().IsEqual(p.ID()) &&
				e.Status() == tracking.StatusRiderAssigned &&
				e.Message() == "assigned to rider Rahim" &&
				e.UpdatedBy() == "ops@example.com" &&
				e.RecordedAt().Equal(testNow)
		})).Return(kernel.NewUUID(), true, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	require.NoError(t, commands.NewAssignRiderCommandHandler(factory, newClock()).Handle(ctx, cmd))
	require.NotNil(t, p.Rider())
	assert.True(t, p.Rider().IsEqual(r.ID()))
	parcelRepo.AssertExpectations(t)
	riderRepo.AssertExpectations(t)
	trackingRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignRiderCommandHandler_Handle_Rejected(t *testing.T) {
	tests := []struct {
		name          string
		paymentStatus parcel.PaymentStatus
		riderStatus   rider.Status
		riderDistrict string
		want          error
	}{
		{"unpaid parcel", parcel.Unpaid, rider.Active, "Dhaka", parcel.ErrParcelIsNotPaid},
		{"pending rider", parcel.Paid, rider.Pending, "Dhaka", services.ErrRiderIsNotAvailable},
		{"suspended rider", parcel.Paid, rider.Suspended, "Dhaka", services.ErrRiderIsNotAvailable},
		{"other district", parcel.Paid, rider.Active, "Dhaka North", services.ErrDistrictMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			p := restoreParcel(t, "Dhaka", tt.paymentStatus)
			r := restoreRider(t, tt.riderDistrict, tt.riderStatus)
			cmd, err := commands.NewAssignRiderCommand(p.ID(), r.ID(), "")
			require.NoError(t, err)

			parcelRepo := new(MockParcelRepository)
			riderRepo := new(MockRiderRepository)
			uow := new(MockUoW)
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("ParcelRepository").Return(parcelRepo).Once()
			uow.On("RiderRepository").Return(riderRepo).Once()
			uow.On("Rollback", ctx).Return(nil).Once()
			parcelRepo.On("Get", ctx, p.ID()).Return(p, nil).Once()
			riderRepo.On("Get", ctx, r.ID()).Return(r, nil).Once()
			factory := new(MockDispatchUoWFactory)
			factory.On("Create").Return(uow).Once()

			err = commands.NewAssignRiderCommandHandler(factory, newClock()).Handle(ctx, cmd)
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, p.Rider())
			parcelRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			uow.AssertNotCalled(t, "Commit", ctx)
		})
	}
}

func TestAssignRiderCommandHandler_Handle_UpdateFails(t *testing.T) {
	ctx := t.Context()
	p := restoreParcel(t, "Dhaka", parcel.Paid)
	r := restoreRider(t, "Dhaka", rider.Active)
	cmd, err := commands.NewAssignRiderCommand(p.ID(), r.ID(), "")
	require.NoError(t, err)
	dbErr := errors.New("connection reset")

	parcelRepo := new(MockParcelRepository)
	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(parcelRepo).Once()
	uow.On("RiderRepository").Return(riderRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	parcelRepo.On("Get", ctx, p.ID()).Return(p, nil).Once()
	parcelRepo.On("Update", ctx, p).Return(dbErr).Once()
	riderRepo.On("Get", ctx, r.ID()).Return(r, nil).Once()
	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewAssignRiderCommandHandler(factory, newClock()).Handle(ctx, cmd)
	require.ErrorIs(t, err, dbErr)
	uow.AssertNotCalled(t, "TrackingRepository")
	uow.AssertNotCalled(t, "Commit", ctx)
}
