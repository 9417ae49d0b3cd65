package paymentrepo_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/adapters/out/postgres/paymentrepo"
	"foodorder/internal/adapters/out/postgres/pgtest"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/payment"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type PaymentRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg       *pgtest.Database
	payments *paymentrepo.GormPaymentRepository
	orders   *orderrepo.GormOrderRepository
	tracker  *MockAggregateTracker
}

func (suite *PaymentRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *PaymentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.payments = paymentrepo.NewGormPaymentRepository(suite.pg.DB, suite.tracker)
	suite.orders = orderrepo.NewGormOrderRepository(suite.pg.DB, suite.tracker)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Terminate(context.Background()))
	}
}

func (suite *PaymentRepositoryIntegrationTestSuite) savedOrder(createdAt time.Time) *order.Order {
	o := pgtest.RestoreOrder(suite.T(), kernel.NewUUID(), kernel.NewUUID(), order.Ordered, createdAt)
	suite.Require().NoError(suite.orders.Add(context.Background(), o))
	return o
}

func (suite *PaymentRepositoryIntegrationTestSuite) initiate(o *order.Order) *payment.Payment {
	attempt, err := payment.Initiate(o.ID(), o.Total(), payment.Razorpay, payment.UPI, o.Total())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.payments.Add(context.Background(), attempt))
	return attempt
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestAdd_GetByTransactionRef() {
	ctx := context.Background()
	attempt := suite.initiate(suite.savedOrder(time.Now().UTC()))
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", attempt.ID(), attempt)

	got, err := suite.payments.GetByTransactionRef(ctx, attempt.TransactionRef())
	suite.Require().NoError(err)
	suite.True(got.ID().IsEqual(attempt.ID()))
	suite.Equal(payment.Razorpay, got.Gateway())
	suite.Equal(payment.UPI, got.Method())
	suite.Equal(payment.Initiated, got.Status())
	suite.Equal(int64(250), got.Amount().Amount())
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestGetByTransactionRef_Unknown() {
	ref, err := payment.TransactionRefFromString("Stripe_1_unknown00")
	suite.Require().NoError(err)

	_, err = suite.payments.GetByTransactionRef(context.Background(), ref)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestUpdate_StoresReasons() {
	ctx := context.Background()
	attempt := suite.initiate(suite.savedOrder(time.Now().UTC()))

	attempt.MarkFailed("  card declined ")
	suite.Require().NoError(suite.payments.Update(ctx, attempt))

	got, err := suite.payments.GetByTransactionRef(ctx, attempt.TransactionRef())
	suite.Require().NoError(err)
	suite.Equal(payment.Failed, got.Status())
	suite.Equal("card declined", got.FailureReason())
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestGetLatestFailed() {
	ctx := context.Background()
	o := suite.savedOrder(time.Now().UTC())

	_, err := suite.payments.GetLatestFailed(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	first := suite.initiate(o)
	first.MarkFailed("timeout")
	suite.Require().NoError(suite.payments.Update(ctx, first))

	time.Sleep(5 * time.Millisecond)
	second, err := payment.Retry(first)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.payments.Add(ctx, second))
	second.MarkFailed("declined")
	suite.Require().NoError(suite.payments.Update(ctx, second))

	latest, err := suite.payments.GetLatestFailed(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(latest.ID().IsEqual(second.ID()))
	suite.Equal("declined", latest.FailureReason())
}

func (suite *PaymentRepositoryIntegrationTestSuite) TestDeleteForOrdersCreatedBefore() {
	ctx := context.Background()
	now := time.Now().UTC()

	old := suite.initiate(suite.savedOrder(now.Add(-40 * 24 * time.Hour)))
	fresh := suite.initiate(suite.savedOrder(now))

	removed, err := suite.payments.DeleteForOrdersCreatedBefore(ctx, now.Add(-30*24*time.Hour))
	suite.Require().NoError(err)
	suite.Equal(int64(1), removed)

	_, err = suite.payments.GetByTransactionRef(ctx, old.TransactionRef())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = suite.payments.GetByTransactionRef(ctx, fresh.TransactionRef())
	suite.Require().NoError(err)
}

func TestPaymentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentRepositoryIntegrationTestSuite))
}
