package catalogrepo_test

import (
	"context"
	"testing"

	"foodorder/internal/adapters/out/postgres/catalogrepo"
	"foodorder/internal/adapters/out/postgres/pgtest"
	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
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

type CatalogRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg      *pgtest.Database
	vendors *catalogrepo.GormVendorRepository
	items   *catalogrepo.GormMenuItemRepository
	tracker *MockAggregateTracker
}

func (suite *CatalogRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *CatalogRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.vendors = catalogrepo.NewGormVendorRepository(suite.pg.DB, suite.tracker)
	suite.items = catalogrepo.NewGormMenuItemRepository(suite.pg.DB, suite.tracker)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Terminate(context.Background()))
	}
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestVendor_AddGetUpdate() {
	ctx := context.Background()
	location, err := kernel.NewPoint(77.59, 12.97)
	suite.Require().NoError(err)

	v, err := catalog.NewVendor(kernel.NewUUID(), "Dosa Corner", "South Indian", &location)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.vendors.Add(ctx, v))
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", v.ID(), v)

	got, err := suite.vendors.Get(ctx, v.ID())
	suite.Require().NoError(err)
	suite.Equal("Dosa Corner", got.Name())
	suite.True(got.IsOwnedBy(v.OwnerID()))
	suite.Require().NotNil(got.Location())
	suite.True(got.Location().IsEqual(location))
	suite.Zero(got.AverageRating())
	suite.Zero(got.TotalReviews())

	suite.Require().NoError(got.ApplyRating(4.5, 2))
	suite.Require().NoError(suite.vendors.Update(ctx, got))

	rated, err := suite.vendors.Get(ctx, v.ID())
	suite.Require().NoError(err)
	suite.InDelta(4.5, rated.AverageRating(), 1e-9)
	suite.Equal(2, rated.TotalReviews())
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestVendor_WithoutLocation() {
	ctx := context.Background()
	v := pgtest.NewVendor(suite.T(), kernel.NewUUID())
	suite.Require().NoError(suite.vendors.Add(ctx, v))

	got, err := suite.vendors.Get(ctx, v.ID())
	suite.Require().NoError(err)
	suite.Nil(got.Location())
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestVendor_NotFound() {
	ctx := context.Background()

	_, err := suite.vendors.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	err = suite.vendors.Update(ctx, pgtest.NewVendor(suite.T(), kernel.NewUUID()))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestMenuItem_AvailabilityAndGetMany() {
	ctx := context.Background()
	v := pgtest.NewVendor(suite.T(), kernel.NewUUID())
	suite.Require().NoError(suite.vendors.Add(ctx, v))

	dosa := pgtest.NewMenuItem(suite.T(), v.ID(), "Masala Dosa", 100)
	coffee := pgtest.NewMenuItem(suite.T(), v.ID(), "Filter Coffee", 50)
	suite.Require().NoError(suite.items.Add(ctx, dosa))
	suite.Require().NoError(suite.items.Add(ctx, coffee))

	coffee.SetAvailability(false)
	suite.Require().NoError(suite.items.Update(ctx, coffee))

	missing := kernel.NewUUID()
	found, err := suite.items.GetMany(ctx, []kernel.UUID{dosa.ID(), coffee.ID(), missing})
	suite.Require().NoError(err)
	suite.Len(found, 2)

	suite.Require().Contains(found, dosa.ID())
	suite.Equal(int64(100), found[dosa.ID()].Price().Amount())
	suite.True(found[dosa.ID()].IsAvailable())

	suite.Require().Contains(found, coffee.ID())
	suite.False(found[coffee.ID()].IsAvailable())
	suite.NotContains(found, missing)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestMenuItem_GetManyEmpty() {
	found, err := suite.items.GetMany(context.Background(), nil)

	suite.Require().NoError(err)
	suite.Empty(found)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestMenuItem_RequiresVendor() {
	orphan := pgtest.NewMenuItem(suite.T(), kernel.NewUUID(), "Idli", 40)

	suite.Require().Error(suite.items.Add(context.Background(), orphan))
}

func TestCatalogRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogRepositoryIntegrationTestSuite))
}
