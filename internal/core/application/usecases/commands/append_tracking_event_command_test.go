package commands_test

import (
	"testing"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/tracking"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAppendTrackingEventCommand_InvalidInput(t *testing.T) {
	valid := tracking.Entry{TrackingCode: "PCL-20240501-ABCDEF", Status: "picked_up", Message: "picked up"}

	_, err := commands.NewAppendTrackingEventCommand(kernel.UUID{}, valid)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	missing := valid
	missing.Status = "  "
	_, err = commands.NewAppendTrackingEventCommand(kernel.NewUUID(), missing)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	missing = valid
	missing.Message = ""
	_, err = commands.NewAppendTrackingEventCommand(kernel.NewUUID(), missing)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewAppendTrackingEventCommand(kernel.NewUUID(), valid)
	assert.NoError(t, err)
}

func TestAppendTrackingEventCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	parcelID := kernel.NewUUID()
	cmd, err := commands.NewAppendTrackingEventCommand(parcelID, tracking.Entry{
		TrackingCode: "PCL-20240501-ABCDEF",
		Status:       "picked_up",
		Message:      "picked up from sender",
	})
	require.NoError(t, err)

	repo := new(MockTrackingRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TrackingRepository").Return(repo).Once(),
		repo.On("Append", ctx, mock.MatchedBy(func(e *tracking.Event) bool {
			return e.ParcelID().IsEqual(parcelID) && e.RecordedAt().Equal(testNow) && e.UpdatedBy() == ""
		})).Return(kernel.NewUUID(), true, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockTrackingUoWFactory)
	factory.On("Create").Return(uow).Once()

	res, err := commands.NewAppendTrackingEventCommandHandler(factory, newClock()).Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, res.Created)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAppendTrackingEventCommandHandler_Handle_DuplicateKey(t *testing.T) {
	ctx := t.Context()
	original := kernel.NewUUID()
	cmd, err := commands.NewAppendTrackingEventCommand(kernel.NewUUID(), tracking.Entry{
		TrackingCode:   "PCL-20240501-ABCDEF",
		Status:         "picked_up",
		Message:        "picked up",
		IdempotencyKey: "retry-1",
	})
	require.NoError(t, err)

	repo := new(MockTrackingRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TrackingRepository").Return(repo).Once()
	repo.On("Append", ctx, mock.Anything).Return(original, false, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockTrackingUoWFactory)
	factory.On("Create").Return(uow).Once()

	res, err := commands.NewAppendTrackingEventCommandHandler(factory, newClock()).Handle(ctx, cmd)
	require.NoError(t, err)
	assert.False(t, res.Created)
	assert.Equal(t, original, res.EventID)
}
