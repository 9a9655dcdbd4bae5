package jobs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var testNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type listerMock struct{ mock.Mock }

func (m *listerMock) Handle(ctx context.Context, query queries.ListUnsettledParcelsQuery) ([]queries.ParcelView, error) {
	args := m.Called(ctx, query)
	views, _ := args.Get(0).([]queries.ParcelView)
	return views, args.Error(1)
}

type recorderStub struct {
	unsettled []int
	failures  int
}

func (r *recorderStub) SetUnsettledParcels(n int) { r.unsettled = append(r.unsettled, n) }
func (r *recorderStub) ReconciliationFailed()     { r.failures++ }

func newJob(lister jobs.UnsettledParcelsLister, recorder *recorderStub, schedule string) (*jobs.PaymentReconciliationJob, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	job := jobs.NewPaymentReconciliationJob(lister, recorder, fixedClock{now: testNow}, schedule, 10*time.Minute, zap.New(core))
	return job, logs
}

func TestPaymentReconciliationJob_RunOnce(t *testing.T) {
	lister := &listerMock{}
	recorder := &recorderStub{}
	job, logs := newJob(lister, recorder, "@every 1h")

	stale := queries.ParcelView{ID: kernel.NewUUID(), TrackingCode: "PCL-20250314-ABC123", CreatedBy: "alice@example.com"}
	lister.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListUnsettledParcelsQuery) bool {
		return q.OlderThan().Equal(testNow.Add(-10 * time.Minute))
	})).Return([]queries.ParcelView{stale}, nil).Once()

	n, err := job.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []int{1}, recorder.unsettled)
	assert.Zero(t, recorder.failures)

	warned := logs.FilterMessage("Paid parcel has no payment record").All()
	require.Len(t, warned, 1)
	assert.Equal(t, "PCL-20250314-ABC123", warned[0].ContextMap()["tracking_code"])
	assert.Equal(t, "payment_reconciliation_job", warned[0].ContextMap()["component"])
	lister.AssertExpectations(t)
}

func TestPaymentReconciliationJob_RunOnce_NothingUnsettled(t *testing.T) {
	lister := &listerMock{}
	recorder := &recorderStub{}
	job, logs := newJob(lister, recorder, "@every 1h")

	lister.On("Handle", mock.Anything, mock.Anything).Return([]queries.ParcelView{}, nil).Once()

	n, err := job.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, []int{0}, recorder.unsettled)
	assert.Zero(t, logs.FilterMessage("Paid parcel has no payment record").Len())
}

func TestPaymentReconciliationJob_RunOnce_Failure(t *testing.T) {
	lister := &listerMock{}
	recorder := &recorderStub{}
	job, logs := newJob(lister, recorder, "@every 1h")

	boom := errors.New("connection refused")
	lister.On("Handle", mock.Anything, mock.Anything).Return(nil, boom).Once()

	_, err := job.RunOnce(context.Background())

	require.ErrorIs(t, err, boom)
	assert.Empty(t, recorder.unsettled, "gauge keeps its last value")
	assert.Equal(t, 1, recorder.failures)
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestPaymentReconciliationJob_Start(t *testing.T) {
	t.Run("invalid schedule", func(t *testing.T) {
		job, _ := newJob(&listerMock{}, &recorderStub{}, "every now and then")
		require.Error(t, job.Start())
	})

	t.Run("start and stop", func(t *testing.T) {
		job, logs := newJob(&listerMock{}, &recorderStub{}, "@every 1h")
		manager := jobs.NewJobManager(job)

		require.NoError(t, manager.StartAll())
		manager.StopAll()

		assert.Equal(t, 1, logs.FilterMessage("Payment reconciliation job started").Len())
		assert.Equal(t, 1, logs.FilterMessage("Payment reconciliation job stopped").Len())
	})
}
