package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	postgres_adapter "courier/internal/adapters/out/postgres"
	"courier/internal/adapters/out/postgres/testdb"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	return m.Called().Error(0)
}

func eventNames(events []kernel.DomainEvent) []string {
	names := make([]string, 0, len(events))
	for _, e := range events {
		names = append(names, e.EventName())
	}
	return names
}

func TestGormUnitOfWork_PublishesAfterCommit(t *testing.T) {
	ctx := context.Background()
	publisher := new(MockEventPublisher)
	var published []kernel.DomainEvent
	publisher.On("Publish", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { published = args.Get(1).([]kernel.DomainEvent) }).
		Return(nil).Once()

	factory := postgres_adapter.NewGormUnitOfWorkFactory(testdb.NewSQLite(t), publisher, zap.NewNop())
	uow := factory.Create()
	p := newTestParcel(t)

	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.ParcelRepository().Add(ctx, p))
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)

	require.NoError(t, uow.Commit(ctx))
	publisher.AssertExpectations(t)
	assert.Equal(t, []string{"parcel.created"}, eventNames(published))
	assert.Empty(t, p.DomainEvents(), "published events are cleared from the aggregate")
}

func TestGormUnitOfWork_RollbackDropsEvents(t *testing.T) {
	ctx := context.Background()
	publisher := new(MockEventPublisher)

	factory := postgres_adapter.NewGormUnitOfWorkFactory(testdb.NewSQLite(t), publisher, zap.NewNop())
	uow := factory.Create()

	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.ParcelRepository().Add(ctx, newTestParcel(t)))
	require.NoError(t, uow.Rollback(ctx))

	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestGormUnitOfWork_PublishFailureDoesNotFailCommit(t *testing.T) {
	ctx := context.Background()
	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	db := testdb.NewSQLite(t)
	factory := postgres_adapter.NewGormUnitOfWorkFactory(db, publisher, zap.NewNop())
	uow := factory.Create()
	p := newTestParcel(t)

	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.ParcelRepository().Add(ctx, p))
	require.NoError(t, uow.Commit(ctx))

	_, err := factory.Create().ParcelRepository().Get(ctx, p.ID())
	assert.NoError(t, err, "the write is durable even though publishing failed")
	publisher.AssertExpectations(t)
}

func TestGormUnitOfWork_WithoutTransactionPublishesImmediately(t *testing.T) {
	ctx := context.Background()
	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

	factory := postgres_adapter.NewGormUnitOfWorkFactory(testdb.NewSQLite(t), publisher, nil)
	require.NoError(t, factory.Create().ParcelRepository().Add(ctx, newTestParcel(t)))

	publisher.AssertExpectations(t)
}

func TestGormUnitOfWork_TransactionErrors(t *testing.T) {
	ctx := context.Background()
	uow := postgres_adapter.NewGormUnitOfWorkFactory(testdb.NewSQLite(t), nil, nil).Create()

	assert.Error(t, uow.Commit(ctx))
	assert.Error(t, uow.Rollback(ctx))

	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Begin(ctx), "nested begin is a no-op")
	require.NoError(t, uow.Commit(ctx))
}

func newTestParcel(t *testing.T) *parcel.Parcel {
	t.Helper()
	email, err := kernel.NewEmail("alice@example.com")
	require.NoError(t, err)
	district, err := kernel.NewDistrict("Dhaka")
	require.NoError(t, err)
	cost, err := kernel.MoneyFromCents(50000)
	require.NoError(t, err)

	p, err := parcel.NewParcel(kernel.NewUUID(), email, district, cost, parcel.Contents{
		Title:           "Books",
		ReceiverName:    "Bob",
		ReceiverAddress: "Road 1",
	}, time.Now().UTC())
	require.NoError(t, err)
	return p
}
