package jobs

import (
	"context"
	"time"

	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const defaultRunTimeout = time.Minute

// UnsettledParcelsLister is satisfied by queries.ListUnsettledParcelsQueryHandler.
type UnsettledParcelsLister interface {
	Handle(ctx context.Context, query queries.ListUnsettledParcelsQuery) ([]queries.ParcelView, error)
}

// ReconciliationRecorder is satisfied by *metrics.Metrics.
type ReconciliationRecorder interface {
	SetUnsettledParcels(n int)
	ReconciliationFailed()
}

// PaymentReconciliationJob looks for parcels that are paid but have no
// payment record. It only reports them; nothing is repaired.
type PaymentReconciliationJob struct {
	lister      UnsettledParcelsLister
	recorder    ReconciliationRecorder
	clock       kernel.Clock
	schedule    string
	gracePeriod time.Duration
	cron        *cron.Cron
	logger      *zap.Logger
}

// NewPaymentReconciliationJob creates the job. Only parcels created more than
// gracePeriod ago are reported.
func NewPaymentReconciliationJob(
	lister UnsettledParcelsLister,
	recorder ReconciliationRecorder,
	clock kernel.Clock,
	schedule string,
	gracePeriod time.Duration,
	logger *zap.Logger,
) *PaymentReconciliationJob {
	logger = logger.With(zap.String("component", "payment_reconciliation_job"))
	cl := newCronLogger(logger)

	return &PaymentReconciliationJob{
		lister:      lister,
		recorder:    recorder,
		clock:       clock,
		schedule:    schedule,
		gracePeriod: gracePeriod,
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		logger: logger,
	}
}

// Start schedules the job. It fails when the schedule cannot be parsed.
func (j *PaymentReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
		defer cancel()

		_, _ = j.RunOnce(ctx)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Payment reconciliation job started", zap.String("schedule", j.schedule))
	return nil
}

// Stop unschedules the job and waits for a running sweep to finish.
func (j *PaymentReconciliationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Payment reconciliation job stopped")
}

// RunOnce performs one sweep and returns the number of unsettled parcels.
func (j *PaymentReconciliationJob) RunOnce(ctx context.Context) (int, error) {
	query, err := queries.NewListUnsettledParcelsQuery(j.clock.Now().Add(-j.gracePeriod))
	if err != nil {
		return 0, err
	}

	parcels, err := j.lister.Handle(ctx, query)
	if err != nil {
		j.recorder.ReconciliationFailed()
		j.logger.Error("Payment reconciliation failed", zap.Error(err))
		return 0, err
	}

	for _, p := range parcels {
		j.logger.Warn("Paid parcel has no payment record",
			zap.Stringer("parcel_id", p.ID),
			zap.String("tracking_code", p.TrackingCode),
			zap.String("created_by", p.CreatedBy),
			zap.Time("created_at", p.CreatedAt),
		)
	}
	j.recorder.SetUnsettledParcels(len(parcels))

	return len(parcels), nil
}
