package suborderrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"foodcourt/internal/adapters/out/postgres/suborderrepo"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// NullTracker ignores tracking, for tests that do not assert on it.
type NullTracker struct{}

func (NullTracker) TrackAggregate(kernel.UUID, any) {}

type SubOrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *suborderrepo.GormSubOrderRepository
}

func (suite *SubOrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&suborderrepo.SubOrderDTO{}, &suborderrepo.LineItemDTO{}))
}

func (suite *SubOrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE sub_orders, line_items").Error)
	suite.repository = suborderrepo.NewGormSubOrderRepository(suite.db, NullTracker{})
}

func (suite *SubOrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *SubOrderRepositoryIntegrationTestSuite) newSubOrder() (*order.SubOrder, kernel.UUID) {
	ownerID := kernel.NewUUID()

	dosa, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), "Masala Dosa", 60, 1)
	suite.Require().NoError(err)
	coffee, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), "Filter Coffee", 20, 2)
	suite.Require().NoError(err)

	subOrder, err := order.NewSubOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), ownerID,
		100, 5, 40, []order.LineItem{dosa, coffee}, "no onions")
	suite.Require().NoError(err)

	return subOrder, ownerID
}

func (suite *SubOrderRepositoryIntegrationTestSuite) preparingSubOrder() *order.SubOrder {
	ctx := context.Background()
	subOrder, ownerID := suite.newSubOrder()
	suite.Require().NoError(suite.repository.Add(ctx, subOrder))

	owner, err := order.NewActor(order.RoleShopOwner, ownerID)
	suite.Require().NoError(err)
	suite.Require().NoError(subOrder.ChangeStatus(owner, order.SubOrderPreparing))
	suite.Require().NoError(suite.repository.Update(ctx, subOrder))

	return subOrder
}

func (suite *SubOrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	subOrder, _ := suite.newSubOrder()

	suite.Require().NoError(suite.repository.Add(ctx, subOrder))

	loaded, err := suite.repository.Get(ctx, subOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(kernel.Money(100), loaded.Subtotal())
	suite.Equal(kernel.Money(5), loaded.Tax())
	suite.Equal(kernel.Money(40), loaded.DeliveryFee())
	suite.Equal(kernel.Money(145), loaded.Total())
	suite.Equal(order.SubOrderPending, loaded.Status())
	suite.Nil(loaded.Courier())
	suite.Equal("no onions", loaded.Note())

	items := loaded.Items()
	suite.Require().Len(items, 2)
	suite.Equal("Masala Dosa", items[0].ItemName())
	suite.Equal("Filter Coffee", items[1].ItemName())
	suite.Equal(kernel.Money(40), items[1].Total())
}

func (suite *SubOrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *SubOrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatus() {
	ctx := context.Background()
	subOrder := suite.preparingSubOrder()

	loaded, err := suite.repository.Get(ctx, subOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.SubOrderPreparing, loaded.Status())
}

func (suite *SubOrderRepositoryIntegrationTestSuite) TestAdd_TracksAggregate() {
	ctx := context.Background()
	subOrder, _ := suite.newSubOrder()

	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", subOrder.ID(), subOrder).Once()

	repo := suborderrepo.NewGormSubOrderRepository(suite.db, tracker)
	suite.Require().NoError(repo.Add(ctx, subOrder))
	tracker.AssertExpectations(suite.T())
}

func (suite *SubOrderRepositoryIntegrationTestSuite) TestClaim_Succeeds() {
	ctx := context.Background()
	subOrder := suite.preparingSubOrder()
	courierID := kernel.NewUUID()

	claimed, err := suite.repository.Claim(ctx, subOrder.ID(), courierID)
	suite.Require().NoError(err)

	suite.Equal(order.SubOrderAccepted, claimed.Status())
	suite.Require().NotNil(claimed.Courier())
	suite.True(claimed.Courier().IsEqual(courierID))
}

func (suite *SubOrderRepositoryIntegrationTestSuite) TestClaim_PendingIsConflict() {
	ctx := context.Background()
	subOrder, _ := suite.newSubOrder()
	suite.Require().NoError(suite.repository.Add(ctx, subOrder))

	_, err := suite.repository.Claim(ctx, subOrder.ID(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *SubOrderRepositoryIntegrationTestSuite) TestClaim_MissingIsNotFound() {
	_, err := suite.repository.Claim(context.Background(), kernel.NewUUID(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *SubOrderRepositoryIntegrationTestSuite) TestClaim_ConcurrentOnlyOneWins() {
	ctx := context.Background()
	subOrder := suite.preparingSubOrder()

	courierA := kernel.NewUUID()
	courierB := kernel.NewUUID()

	var wg sync.WaitGroup
	results := make([]error, 2)
	winners := make([]*order.SubOrder, 2)

	for i, courierID := range []kernel.UUID{courierA, courierB} {
		wg.Add(1)
		go func(slot int, id kernel.UUID) {
			defer wg.Done()
			winners[slot], results[slot] = suite.repository.Claim(ctx, subOrder.ID(), id)
		}(i, courierID)
	}
	wg.Wait()

	var wins, conflicts int
	for i, err := range results {
		if err == nil {
			wins++
			suite.Require().NotNil(winners[i])
			suite.Equal(order.SubOrderAccepted, winners[i].Status())
		} else {
			conflicts++
			suite.Require().ErrorIs(err, errs.ErrConflict)
		}
	}

	suite.Equal(1, wins)
	suite.Equal(1, conflicts)

	loaded, err := suite.repository.Get(ctx, subOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(loaded.Courier())
	suite.True(loaded.Courier().IsEqual(courierA) || loaded.Courier().IsEqual(courierB))
}

func (suite *SubOrderRepositoryIntegrationTestSuite) TestGetAllUnassigned() {
	ctx := context.Background()

	offered := suite.preparingSubOrder()

	pending, _ := suite.newSubOrder()
	suite.Require().NoError(suite.repository.Add(ctx, pending))

	claimed := suite.preparingSubOrder()
	_, err := suite.repository.Claim(ctx, claimed.ID(), kernel.NewUUID())
	suite.Require().NoError(err)

	unassigned, err := suite.repository.GetAllUnassigned(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(unassigned, 1)
	suite.True(unassigned[0].ID().IsEqual(offered.ID()))
}

func TestSubOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SubOrderRepositoryIntegrationTestSuite))
}
