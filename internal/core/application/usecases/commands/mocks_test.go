package commands_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/agent"
	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/payment"
	"foodorder/internal/core/domain/model/review"
	"foodorder/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockVendorRepository struct{ mock.Mock }

func (m *MockVendorRepository) Add(ctx context.Context, v *catalog.Vendor) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVendorRepository) Update(ctx context.Context, v *catalog.Vendor) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVendorRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Vendor), args.Error(1)
}

type MockMenuItemRepository struct{ mock.Mock }

func (m *MockMenuItemRepository) Add(ctx context.Context, item *catalog.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockMenuItemRepository) Update(ctx context.Context, item *catalog.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockMenuItemRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) GetMany(
	ctx context.Context,
	ids []kernel.UUID,
) (map[kernel.UUID]*catalog.MenuItem, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]*catalog.MenuItem), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) HasDeliveredFromVendor(ctx context.Context, customerID, vendorID kernel.UUID) (bool, error) {
	args := m.Called(ctx, customerID, vendorID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPaymentRepository) GetByTransactionRef(
	ctx context.Context,
	ref payment.TransactionRef,
) (*payment.Payment, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetLatestFailed(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) DeleteForOrdersCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockAgentRepository struct{ mock.Mock }

func (m *MockAgentRepository) Add(ctx context.Context, a *agent.DeliveryAgent) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAgentRepository) Update(ctx context.Context, a *agent.DeliveryAgent) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAgentRepository) Get(ctx context.Context, id kernel.UUID) (*agent.DeliveryAgent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agent.DeliveryAgent), args.Error(1)
}

func (m *MockAgentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAgentRepository) GetByAssignedOrder(ctx context.Context, orderID kernel.UUID) (*agent.DeliveryAgent, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agent.DeliveryAgent), args.Error(1)
}

type MockReviewRepository struct{ mock.Mock }

func (m *MockReviewRepository) Add(ctx context.Context, r *review.Review) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockReviewRepository) Update(ctx context.Context, r *review.Review) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockReviewRepository) Get(ctx context.Context, id kernel.UUID) (*review.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Review), args.Error(1)
}

func (m *MockReviewRepository) Exists(
	ctx context.Context,
	customerID, vendorID kernel.UUID,
	menuItemID *kernel.UUID,
) (bool, error) {
	args := m.Called(ctx, customerID, vendorID, menuItemID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepository) ListRatings(ctx context.Context, vendorID kernel.UUID) ([]review.Rating, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]review.Rating), args.Error(1)
}

// MockUoW satisfies every unit of work interface of the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) VendorRepository() ports.VendorRepository {
	return m.Called().Get(0).(ports.VendorRepository)
}

func (m *MockUoW) MenuItemRepository() ports.MenuItemRepository {
	return m.Called().Get(0).(ports.MenuItemRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	return m.Called().Get(0).(ports.PaymentRepository)
}

func (m *MockUoW) AgentRepository() ports.AgentRepository {
	return m.Called().Get(0).(ports.AgentRepository)
}

func (m *MockUoW) ReviewRepository() ports.ReviewRepository {
	return m.Called().Get(0).(ports.ReviewRepository)
}

// MockUoWFactory hands out the unit of work as whichever interface T the
// handler under test expects.
type MockUoWFactory[T any] struct{ mock.Mock }

func (m *MockUoWFactory[T]) Create() T {
	return m.Called().Get(0).(T)
}

type MockRatingRecomputer struct{ mock.Mock }

func (m *MockRatingRecomputer) Handle(ctx context.Context, cmd commands.RecomputeVendorRatingCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

// repos groups the repository mocks a MockUoW returns.
type repos struct {
	vendors  *MockVendorRepository
	items    *MockMenuItemRepository
	orders   *MockOrderRepository
	payments *MockPaymentRepository
	agents   *MockAgentRepository
	reviews  *MockReviewRepository
}

// newUoW wires repository getters that may be called any number of times.
// Transaction calls are left to each test.
func newUoW() (*MockUoW, repos) {
	r := repos{
		vendors:  new(MockVendorRepository),
		items:    new(MockMenuItemRepository),
		orders:   new(MockOrderRepository),
		payments: new(MockPaymentRepository),
		agents:   new(MockAgentRepository),
		reviews:  new(MockReviewRepository),
	}

	uow := new(MockUoW)
	uow.On("VendorRepository").Return(r.vendors).Maybe()
	uow.On("MenuItemRepository").Return(r.items).Maybe()
	uow.On("OrderRepository").Return(r.orders).Maybe()
	uow.On("PaymentRepository").Return(r.payments).Maybe()
	uow.On("AgentRepository").Return(r.agents).Maybe()
	uow.On("ReviewRepository").Return(r.reviews).Maybe()
	return uow, r
}

func (r repos) assert(t *testing.T) {
	t.Helper()
	r.vendors.AssertExpectations(t)
	r.items.AssertExpectations(t)
	r.orders.AssertExpectations(t)
	r.payments.AssertExpectations(t)
	r.agents.AssertExpectations(t)
	r.reviews.AssertExpectations(t)
}

func factoryFor[T any](uow T) *MockUoWFactory[T] {
	f := new(MockUoWFactory[T])
	f.On("Create").Return(uow).Once()
	return f
}

func newActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return a
}

func actorWithID(t *testing.T, id kernel.UUID, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(id, role)
	require.NoError(t, err)
	return a
}

func money(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func newVendor(t *testing.T, ownerID kernel.UUID) *catalog.Vendor {
	t.Helper()
	v, err := catalog.NewVendor(ownerID, "Dosa Corner", "South Indian breakfast", nil)
	require.NoError(t, err)
	return v
}

func newMenuItem(t *testing.T, vendorID kernel.UUID, name string, price int64) *catalog.MenuItem {
	t.Helper()
	mi, err := catalog.NewMenuItem(vendorID, name, "", money(t, price))
	require.NoError(t, err)
	return mi
}

func newAddress(t *testing.T) kernel.Address {
	t.Helper()
	a, err := kernel.NewAddress("home", "12 MG Road", "", "Bengaluru", "560001")
	require.NoError(t, err)
	return a
}

// newOrder places an order of one line item worth total.
func newOrder(t *testing.T, customerID, vendorID kernel.UUID, total int64) *order.Order {
	t.Helper()
	li, err := order.NewLineItem(kernel.NewUUID(), "Masala Dosa", money(t, total), 1, "")
	require.NoError(t, err)
	o, err := order.NewOrder(customerID, vendorID, []order.LineItem{li}, newAddress(t))
	require.NoError(t, err)
	o.ClearDomainEvents()
	return o
}

func newAgent(t *testing.T, userID kernel.UUID) *agent.DeliveryAgent {
	t.Helper()
	a, err := agent.NewDeliveryAgent(userID, "Ravi", "+91 98450 00000", nil)
	require.NoError(t, err)
	return a
}

func rating(t *testing.T, v int) review.Rating {
	t.Helper()
	r, err := review.NewRating(v)
	require.NoError(t, err)
	return r
}
