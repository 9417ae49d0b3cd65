package postgres_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	pgadapter "foodorder/internal/adapters/out/postgres"
	"foodorder/internal/adapters/out/postgres/pgtest"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"

	"github.com/stretchr/testify/suite"
)

// recordingPublisher keeps every batch it is handed.
type recordingPublisher struct {
	mu      sync.Mutex
	batches [][]order.ChangedEvent
	err     error
}

func (p *recordingPublisher) PublishOrderChanged(_ context.Context, events []order.ChangedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.batches = append(p.batches, events)
	return p.err
}

func (p *recordingPublisher) reasons() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []string
	for _, batch := range p.batches {
		for _, e := range batch {
			out = append(out, e.Reason)
		}
	}
	return out
}

// UnitOfWorkIntegrationTestSuite exercises transactions, aggregate tracking and
// post-commit event publishing against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	pg        *pgtest.Database
	publisher *recordingPublisher
	logs      *bytes.Buffer
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())

	suite.publisher = &recordingPublisher{}
	suite.logs = &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(suite.logs, nil))
	suite.factory = pgadapter.NewGormUnitOfWorkFactory(suite.pg.DB, suite.publisher, logger, nil)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesSeparateInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.VendorRepository())
	suite.NotNil(uow1.MenuItemRepository())
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.PaymentRepository())
	suite.NotNil(uow1.AgentRepository())
	suite.NotNil(uow1.ReviewRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().Error(uow.Commit(ctx), "commit without begin")
	suite.Require().Error(uow.Rollback(ctx), "rollback without begin")

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "a second begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
	suite.Require().Error(uow.Rollback(ctx), "deferred rollback after close reports no transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PublishesOrderEvents() {
	ctx := context.Background()
	placed := pgtest.NewOrder(suite.T(), kernel.NewUUID(), kernel.NewUUID())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, placed))
	suite.Require().NoError(placed.MarkPaid())
	suite.Require().NoError(uow.OrderRepository().Update(ctx, placed))

	suite.Empty(suite.publisher.reasons(), "nothing is published before commit")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal([]string{order.ReasonPlaced, order.ReasonPaymentCompleted}, suite.publisher.reasons())
	suite.Empty(placed.DomainEvents(), "published events are cleared from the aggregate")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsWritesAndEvents() {
	ctx := context.Background()
	placed := pgtest.NewOrder(suite.T(), kernel.NewUUID(), kernel.NewUUID())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, placed))

	_, err := uow.OrderRepository().Get(ctx, placed.ID())
	suite.Require().NoError(err, "the transaction sees its own write")

	suite.Require().NoError(uow.Rollback(ctx))

	_, err = suite.factory.Create().OrderRepository().Get(ctx, placed.ID())
	suite.Require().Error(err)
	suite.Empty(suite.publisher.reasons())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestIsolationBetweenInstances() {
	ctx := context.Background()
	first := pgtest.NewOrder(suite.T(), kernel.NewUUID(), kernel.NewUUID())
	second := pgtest.NewOrder(suite.T(), kernel.NewUUID(), kernel.NewUUID())

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.OrderRepository().Add(ctx, first))
	suite.Require().NoError(uow2.OrderRepository().Add(ctx, second))

	_, err := uow1.OrderRepository().Get(ctx, second.ID())
	suite.Require().Error(err, "uow1 must not see uncommitted writes of uow2")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	fresh := suite.factory.Create()
	_, err = fresh.OrderRepository().Get(ctx, first.ID())
	suite.Require().NoError(err)
	_, err = fresh.OrderRepository().Get(ctx, second.ID())
	suite.Require().Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestPublishFailure_KeepsCommit() {
	ctx := context.Background()
	suite.publisher.err = errors.New("broker down")
	placed := pgtest.NewOrder(suite.T(), kernel.NewUUID(), kernel.NewUUID())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, placed))
	suite.Require().NoError(uow.Commit(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, placed.ID())
	suite.Require().NoError(err)
	suite.Contains(suite.logs.String(), "Failed to publish order events")
	suite.Contains(suite.logs.String(), "broker down")
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
