package commands_test

import (
	"context"
	"iter"
	"time"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/parcel"
	"courier/internal/core/domain/model/payment"
	"courier/internal/core/domain/model/rider"
	"courier/internal/core/domain/model/tracking"
	"courier/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*parcel.Parcel)
	return p, args.Error(1)
}

func (m *MockParcelRepository) List(ctx context.Context, filter ports.ParcelFilter) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).([]*parcel.Parcel)
	return list, args.Error(1)
}

func (m *MockParcelRepository) Delete(ctx context.Context, id kernel.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockParcelRepository) CompareAndSetPaymentStatus(
	ctx context.Context, id kernel.UUID, expected, next parcel.PaymentStatus,
) (bool, error) {
	args := m.Called(ctx, id, expected, next)
	return args.Bool(0), args.Error(1)
}

func (m *MockParcelRepository) ListPaidWithoutPayment(ctx context.Context, olderThan time.Time) ([]*parcel.Parcel, error) {
	args := m.Called(ctx, olderThan)
	list, _ := args.Get(0).([]*parcel.Parcel)
	return list, args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPaymentRepository) Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*payment.Payment)
	return p, args.Error(1)
}

func (m *MockPaymentRepository) ListByParcel(ctx context.Context, parcelID kernel.UUID) ([]*payment.Payment, error) {
	args := m.Called(ctx, parcelID)
	list, _ := args.Get(0).([]*payment.Payment)
	return list, args.Error(1)
}

type MockTrackingRepository struct{ mock.Mock }

func (m *MockTrackingRepository) Append(ctx context.Context, e *tracking.Event) (kernel.UUID, bool, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(kernel.UUID), args.Bool(1), args.Error(2)
}

func (m *MockTrackingRepository) History(ctx context.Context, parcelID kernel.UUID) iter.Seq2[*tracking.Event, error] {
	return m.Called(ctx, parcelID).Get(0).(iter.Seq2[*tracking.Event, error])
}

type MockRiderRepository struct{ mock.Mock }

func (m *MockRiderRepository) Add(ctx context.Context, r *rider.Rider) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRiderRepository) Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*rider.Rider)
	return r, args.Error(1)
}

func (m *MockRiderRepository) UpdateStatus(ctx context.Context, r *rider.Rider, expected rider.Status) error {
	return m.Called(ctx, r, expected).Error(0)
}

func (m *MockRiderRepository) ListByStatus(ctx context.Context, status rider.Status) ([]*rider.Rider, error) {
	args := m.Called(ctx, status)
	list, _ := args.Get(0).([]*rider.Rider)
	return list, args.Error(1)
}

func (m *MockRiderRepository) ListAvailable(ctx context.Context, district kernel.District) ([]*rider.Rider, error) {
	args := m.Called(ctx, district)
	list, _ := args.Get(0).([]*rider.Rider)
	return list, args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) GetRole(ctx context.Context, email kernel.Email) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) SetRole(ctx context.Context, email kernel.Email, role string) error {
	return m.Called(ctx, email, role).Error(0)
}

// MockUoW satisfies every unit of work view used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) ParcelRepository() ports.ParcelRepository {
	return m.Called().Get(0).(ports.ParcelRepository)
}

func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	return m.Called().Get(0).(ports.PaymentRepository)
}

func (m *MockUoW) TrackingRepository() ports.TrackingRepository {
	return m.Called().Get(0).(ports.TrackingRepository)
}

func (m *MockUoW) RiderRepository() ports.RiderRepository {
	return m.Called().Get(0).(ports.RiderRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

type MockParcelUoWFactory struct{ mock.Mock }

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	return m.Called().Get(0).(commands.ParcelUoW)
}

type MockPaymentUoWFactory struct{ mock.Mock }

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW {
	return m.Called().Get(0).(commands.PaymentUoW)
}

type MockTrackingUoWFactory struct{ mock.Mock }

func (m *MockTrackingUoWFactory) Create() commands.TrackingUoW {
	return m.Called().Get(0).(commands.TrackingUoW)
}

type MockRiderUoWFactory struct{ mock.Mock }

func (m *MockRiderUoWFactory) Create() commands.RiderUoW {
	return m.Called().Get(0).(commands.RiderUoW)
}

type MockDispatchUoWFactory struct{ mock.Mock }

func (m *MockDispatchUoWFactory) Create() commands.DispatchUoW {
	return m.Called().Get(0).(commands.DispatchUoW)
}

type MockIdempotencyStore struct{ mock.Mock }

func (m *MockIdempotencyStore) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockIdempotencyStore) SetIfAbsent(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, ttl)
	return args.Bool(0), args.Error(1)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) CreatePaymentIntent(
	ctx context.Context, amount kernel.Money, currency string,
) (ports.PaymentIntent, error) {
	args := m.Called(ctx, amount, currency)
	return args.Get(0).(ports.PaymentIntent), args.Error(1)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var testNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func newClock() fixedClock { return fixedClock{now: testNow} }
