package parcelrepo_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"courier/internal/adapters/out/postgres/parcelrepo"
	"courier/internal/adapters/out/postgres/testdb"
	"courier/internal/core/domain/model/parcel"
	"courier/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// ParcelRepositoryIntegrationTestSuite runs the repository against a real
// PostgreSQL so row locking behaves as in production.
type ParcelRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *testdb.Container
	repository *parcelrepo.GormParcelRepository
	tracker    *MockAggregateTracker
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := testdb.StartPostgres(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = parcelrepo.NewGormParcelRepository(suite.pg.DB, suite.tracker)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Terminate(context.Background()))
	}
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAddGetList() {
	ctx := context.Background()
	p := newParcel(suite.T(), "alice@example.com", time.Now().UTC().Truncate(time.Microsecond))

	suite.Require().NoError(suite.repository.Add(ctx, p))
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", p.ID(), p)

	got, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(p.TrackingCode(), got.TrackingCode())
	suite.True(got.Cost().IsEqual(p.Cost()))
	suite.True(got.CreatedAt().Equal(p.CreatedAt()))

	sender := p.CreatedBy()
	list, err := suite.repository.List(ctx, ports.ParcelFilter{CreatedBy: &sender})
	suite.Require().NoError(err)
	suite.Len(list, 1)
}

// TestCompareAndSetPaymentStatus_Concurrent races many writers for the same
// parcel; exactly one may win.
func (suite *ParcelRepositoryIntegrationTestSuite) TestCompareAndSetPaymentStatus_Concurrent() {
	ctx := context.Background()
	p := newParcel(suite.T(), "alice@example.com", time.Now().UTC())
	suite.Require().NoError(suite.repository.Add(ctx, p))

	const writers = 16
	var (
		wg     sync.WaitGroup
		wins   atomic.Int32
		start  = make(chan struct{})
		errsCh = make(chan error, writers)
	)
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			changed, err := suite.repository.CompareAndSetPaymentStatus(ctx, p.ID(), parcel.Unpaid, parcel.Paid)
			if err != nil {
				errsCh <- err
				return
			}
			if changed {
				wins.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()
	close(errsCh)

	for err := range errsCh {
		suite.NoError(err)
	}
	suite.EqualValues(1, wins.Load())

	got, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.Paid, got.PaymentStatus())
}

func TestParcelRepositoryIntegration(t *testing.T) {
	suite.Run(t, new(ParcelRepositoryIntegrationTestSuite))
}
