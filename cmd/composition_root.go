package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	httpin "courier/internal/adapters/in/http"
	"courier/internal/adapters/out/eventbus"
	"courier/internal/adapters/out/idempotency"
	"courier/internal/adapters/out/jwtauth"
	"courier/internal/adapters/out/postgres"
	"courier/internal/adapters/out/stripegateway"
	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/ports"
	"courier/internal/jobs"
	"courier/internal/pkg/metrics"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const idempotencySweepInterval = time.Minute

// CompositionRoot owns the database handle and the outbound adapters and
// builds every handler from them.
type CompositionRoot struct {
	cfg         Config
	gormDB      *gorm.DB
	logger      *zap.Logger
	clock       kernel.Clock
	metrics     *metrics.Metrics
	uowFactory  *postgres.GormUnitOfWorkFactory
	publisher   ports.EventPublisher
	idempotency ports.IdempotencyStore
	gateway     ports.PaymentGateway
	authGate    ports.AuthGate

	closers []io.Closer
}

// Option replaces an adapter the root would otherwise build from Config.
type Option func(*CompositionRoot)

func WithClock(clock kernel.Clock) Option {
	return func(c *CompositionRoot) { c.clock = clock }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *CompositionRoot) { c.metrics = m }
}

func WithEventPublisher(p ports.EventPublisher) Option {
	return func(c *CompositionRoot) { c.publisher = p }
}

func WithIdempotencyStore(s ports.IdempotencyStore) Option {
	return func(c *CompositionRoot) { c.idempotency = s }
}

func WithPaymentGateway(g ports.PaymentGateway) Option {
	return func(c *CompositionRoot) { c.gateway = g }
}

func WithAuthGate(a ports.AuthGate) Option {
	return func(c *CompositionRoot) { c.authGate = a }
}

// NewCompositionRoot wires the adapters. Redis and Kafka are used when their
// addresses are configured; otherwise an in-memory idempotency store and a
// logging publisher take their place. The root takes ownership of gormDB.
func NewCompositionRoot(
	ctx context.Context,
	cfg Config,
	gormDB *gorm.DB,
	logger *zap.Logger,
	opts ...Option,
) (*CompositionRoot, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &CompositionRoot{cfg: cfg, gormDB: gormDB, logger: logger}
	for _, opt := range opts {
		opt(c)
	}

	if c.clock == nil {
		c.clock = kernel.NewMonotonicClock()
	}
	if c.metrics == nil {
		c.metrics = metrics.New()
	}
	if c.publisher == nil {
		c.publisher = c.newEventPublisher()
		c.closers = append(c.closers, c.publisher)
	}
	if c.idempotency == nil {
		store, err := c.newIdempotencyStore(ctx)
		if err != nil {
			return nil, errors.Join(err, c.Close())
		}
		c.idempotency = store
	}
	if c.gateway == nil {
		c.gateway = c.newPaymentGateway()
	}
	if c.authGate == nil {
		verifier, err := jwtauth.New(cfg.JWTSecret, cfg.JWTIssuer, c.clock)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("JWT_SECRET: %w", err), c.Close())
		}
		c.authGate = verifier
	}

	c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, c.publisher, logger)

	return c, nil
}

func (c *CompositionRoot) newEventPublisher() ports.EventPublisher {
	if c.cfg.KafkaHost == "" {
		c.logger.Warn("KAFKA_HOST is not set, domain events are only logged")
		return eventbus.NewLogPublisher(c.logger)
	}
	return eventbus.NewKafkaPublisher(c.cfg.KafkaHost, c.cfg.KafkaEventsTopic, c.logger)
}

func (c *CompositionRoot) newIdempotencyStore(ctx context.Context) (ports.IdempotencyStore, error) {
	if c.cfg.RedisAddr == "" {
		c.logger.Warn("REDIS_ADDR is not set, idempotency keys are kept in memory")
		store := idempotency.NewMemoryStore(c.clock, idempotencySweepInterval)
		c.closers = append(c.closers, store)
		return store, nil
	}

	store, err := idempotency.NewRedisStore(ctx, idempotency.RedisConfig{
		Addr:     c.cfg.RedisAddr,
		Password: c.cfg.RedisPassword,
	})
	if err != nil {
		return nil, err
	}
	c.closers = append(c.closers, store)
	return store, nil
}

func (c *CompositionRoot) newPaymentGateway() ports.PaymentGateway {
	gateway, err := stripegateway.New(c.cfg.StripeSecretKey, c.logger)
	if err != nil {
		c.logger.Warn("STRIPE_SECRET_KEY is not set, payment intents are disabled")
		return stripegateway.Disabled{}
	}
	return gateway
}

// Close releases the adapters and the database, in reverse order of creation.
func (c *CompositionRoot) Close() error {
	var errList []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil {
			errList = append(errList, err)
		}
	}
	c.closers = nil

	if c.gormDB != nil {
		if err := postgres.Close(c.gormDB); err != nil {
			errList = append(errList, err)
		}
		c.gormDB = nil
	}
	return errors.Join(errList...)
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

// Commands

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	return commands.NewCreateParcelCommandHandler(c.parcelUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateDeleteParcelCommandHandler() commands.DeleteParcelCommandHandler {
	return commands.NewDeleteParcelCommandHandler(c.parcelUoWFactory())
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordPaymentCommandHandler(f, c.idempotency, c.cfg.IdempotencyTTL, c.clock, c.logger)
}

func (c *CompositionRoot) CreateCreatePaymentIntentCommandHandler() commands.CreatePaymentIntentCommandHandler {
	return commands.NewCreatePaymentIntentCommandHandler(c.gateway, c.cfg.PaymentCurrency)
}

func (c *CompositionRoot) CreateAppendTrackingEventCommandHandler() commands.AppendTrackingEventCommandHandler {
	var f commands.TrackingUoWFactory = FuncTrackingUoWFactory(func() commands.TrackingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAppendTrackingEventCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateRegisterRiderCommandHandler() commands.RegisterRiderCommandHandler {
	return commands.NewRegisterRiderCommandHandler(c.riderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateSetRiderStatusCommandHandler() commands.SetRiderStatusCommandHandler {
	return commands.NewSetRiderStatusCommandHandler(c.riderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAssignRiderCommandHandler() commands.AssignRiderCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignRiderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) parcelUoWFactory() commands.ParcelUoWFactory {
	return FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) riderUoWFactory() commands.RiderUoWFactory {
	return FuncRiderUoWFactory(func() commands.RiderUoW {
		return c.uowFactory.Create()
	})
}

// Queries

func (c *CompositionRoot) CreateGetParcelQueryHandler() queries.GetParcelQueryHandler {
	return queries.NewGetParcelQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateListParcelsQueryHandler() queries.ListParcelsQueryHandler {
	return queries.NewListParcelsQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateListPaymentsQueryHandler() queries.ListPaymentsQueryHandler {
	return queries.NewListPaymentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTrackingHistoryQueryHandler() queries.GetTrackingHistoryQueryHandler {
	return queries.NewGetTrackingHistoryQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateListRidersQueryHandler() queries.ListRidersQueryHandler {
	return queries.NewListRidersQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateListAvailableRidersQueryHandler() queries.ListAvailableRidersQueryHandler {
	return queries.NewListAvailableRidersQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetUserRoleQueryHandler() queries.GetUserRoleQueryHandler {
	return queries.NewGetUserRoleQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateListUnsettledParcelsQueryHandler() queries.ListUnsettledParcelsQueryHandler {
	return queries.NewListUnsettledParcelsQueryHandler(c.uowFactory)
}

// Inbound adapters

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		httpin.Commands{
			CreateParcel:        c.CreateCreateParcelCommandHandler(),
			DeleteParcel:        c.CreateDeleteParcelCommandHandler(),
			AssignRider:         c.CreateAssignRiderCommandHandler(),
			CreatePaymentIntent: c.CreateCreatePaymentIntentCommandHandler(),
			RecordPayment:       c.CreateRecordPaymentCommandHandler(),
			AppendTrackingEvent: c.CreateAppendTrackingEventCommandHandler(),
			RegisterRider:       c.CreateRegisterRiderCommandHandler(),
			SetRiderStatus:      c.CreateSetRiderStatusCommandHandler(),
		},
		httpin.Queries{
			GetParcel:           c.CreateGetParcelQueryHandler(),
			ListParcels:         c.CreateListParcelsQueryHandler(),
			ListPayments:        c.CreateListPaymentsQueryHandler(),
			GetTrackingHistory:  c.CreateGetTrackingHistoryQueryHandler(),
			ListRiders:          c.CreateListRidersQueryHandler(),
			ListAvailableRiders: c.CreateListAvailableRidersQueryHandler(),
			GetUserRole:         c.CreateGetUserRoleQueryHandler(),
		},
		c.authGate,
	)
}

// CreateRouter builds the echo instance. doc may be nil to leave out the
// OpenAPI and Swagger routes.
func (c *CompositionRoot) CreateRouter(doc *openapi3.T) *echo.Echo {
	return httpin.NewRouter(c.CreateServer(), httpin.RouterConfig{
		Logger:       c.logger,
		Metrics:      c.metrics,
		OpenAPI:      doc,
		AllowOrigins: c.cfg.CORSAllowOrigins,
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewPaymentReconciliationJob(
			c.CreateListUnsettledParcelsQueryHandler(),
			c.metrics,
			c.clock,
			c.cfg.ReconcileSchedule,
			c.cfg.ReconcileGracePeriod,
			c.logger,
		),
	)
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncTrackingUoWFactory func() commands.TrackingUoW

func (f FuncTrackingUoWFactory) Create() commands.TrackingUoW {
	return f()
}

type FuncRiderUoWFactory func() commands.RiderUoW

func (f FuncRiderUoWFactory) Create() commands.RiderUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}
