package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	postgres_adapter "courier/internal/adapters/out/postgres"
	"courier/internal/adapters/out/postgres/testdb"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/parcel"
	"courier/internal/core/domain/model/payment"
	"courier/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

// UnitOfWorkIntegrationTestSuite exercises transactions against PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	pg      *testdb.Container
	factory ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	pg, err := testdb.StartPostgres(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(pg.DB, nil, zap.NewNop())
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackDiscardsAllRepositories() {
	ctx := context.Background()
	p := newTestParcel(suite.T())
	pay := suite.newPayment(p)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ParcelRepository().Add(ctx, p))
	suite.Require().NoError(uow.PaymentRepository().Add(ctx, pay))
	suite.Require().NoError(uow.Rollback(ctx))

	fresh := suite.factory.Create()
	_, err := fresh.ParcelRepository().Get(ctx, p.ID())
	suite.Error(err)
	_, err = fresh.PaymentRepository().Get(ctx, pay.ID())
	suite.Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestIsolationBetweenInstances() {
	ctx := context.Background()
	p1 := newTestParcel(suite.T())
	p2 := newTestParcel(suite.T())

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.ParcelRepository().Add(ctx, p1))
	suite.Require().NoError(uow2.ParcelRepository().Add(ctx, p2))

	_, err := uow1.ParcelRepository().Get(ctx, p2.ID())
	suite.Error(err, "uncommitted rows are invisible to other units of work")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	fresh := suite.factory.Create()
	_, err = fresh.ParcelRepository().Get(ctx, p1.ID())
	suite.NoError(err)
	_, err = fresh.ParcelRepository().Get(ctx, p2.ID())
	suite.Error(err)
}

// TestConcurrentPaymentRecording runs the payment coordinator's transaction
// from many goroutines. Only one may flip the status and insert a payment.
func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentPaymentRecording() {
	ctx := context.Background()
	p := newTestParcel(suite.T())
	suite.Require().NoError(suite.factory.Create().ParcelRepository().Add(ctx, p))

	const callers = 10
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		wins  int
		start = make(chan struct{})
	)
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start

			uow := suite.factory.Create()
			if err := uow.Begin(ctx); err != nil {
				suite.Fail(err.Error())
				return
			}
			defer func() { _ = uow.Rollback(ctx) }()

			changed, err := uow.ParcelRepository().CompareAndSetPaymentStatus(ctx, p.ID(), parcel.Unpaid, parcel.Paid)
			if err != nil || !changed {
				return
			}
			if err = uow.PaymentRepository().Add(ctx, suite.newPayment(p)); err != nil {
				return
			}
			if err = uow.Commit(ctx); err != nil {
				return
			}

			mu.Lock()
			wins++
			mu.Unlock()
		}()
	}
	close(start)
	wg.Wait()

	suite.Equal(1, wins)

	fresh := suite.factory.Create()
	payments, err := fresh.PaymentRepository().ListByParcel(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Len(payments, 1)

	got, err := fresh.ParcelRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.Paid, got.PaymentStatus())
}

func (suite *UnitOfWorkIntegrationTestSuite) newPayment(p *parcel.Parcel) *payment.Payment {
	pay, err := payment.NewPayment(kernel.NewUUID(), p.ID(), p.CreatedBy(), payment.Details{
		Amount:        p.Cost(),
		Method:        "card",
		TransactionID: "pi_" + p.ID().String()[:8],
	}, time.Now().UTC())
	suite.Require().NoError(err)
	return pay
}

func TestUnitOfWorkIntegration(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
