package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.OrderID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies persistence of the order
// aggregate against a real PostgreSQL instance, including the jsonb
// round trip of line items and supplements.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) mustPrice(amount float64) kernel.Price {
	price, err := kernel.NewPriceFromFloat(amount)
	suite.Require().NoError(err)
	return price
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	extraMeat, err := order.NewSupplement("Suppl. viande", suite.mustPrice(2))
	suite.Require().NoError(err)

	item, err := order.NewLineItem(
		"pad-thai-poulet", "pad-thai", "Pad Thai", suite.mustPrice(10), 3,
		[]order.Supplement{extraMeat}, "sans cacahuetes",
	)
	suite.Require().NoError(err)

	customer, err := order.NewCustomer("Alice Martin", "+33612345678", "alice@example.com")
	suite.Require().NoError(err)

	fulfillment, err := order.NewDeliveryFulfillment("12 rue des Lilas, Paris", "code 4312")
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewOrderID(time.Now()),
		[]order.LineItem{item},
		customer,
		fulfillment,
		time.Now().UTC().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NotConstructedOrder_ReturnsError() {
	ctx := context.Background()

	err := suite.repository.Add(ctx, &order.Order{})
	suite.Require().Error(err)
	suite.assertOrderCount(0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTripsFullAggregate() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(restored.ID().IsEqual(testOrder.ID()))
	suite.Equal(order.Pending, restored.Status())
	// (10 + 2) * 3
	suite.True(restored.Total().IsEqual(suite.mustPrice(36)))
	suite.Equal("Alice Martin", restored.Customer().Name())
	suite.Equal("+33612345678", restored.Customer().Phone())
	suite.Equal(kernel.Delivery, restored.Fulfillment().OrderType())
	suite.Equal("12 rue des Lilas, Paris", restored.Fulfillment().DeliveryAddress())

	suite.Require().Len(restored.Items(), 1)
	item := restored.Items()[0]
	suite.Equal("pad-thai-poulet", item.UniqueID())
	suite.Equal("Pad Thai", item.Name())
	suite.Equal(3, item.Quantity())
	suite.Equal("sans cacahuetes", item.Notes())
	suite.Require().Len(item.Supplements(), 1)
	suite.Equal("Suppl. viande", item.Supplements()[0].Name())
	suite.True(item.Supplements()[0].Price().IsEqual(suite.mustPrice(2)))
	suite.True(restored.CreatedAt().Equal(testOrder.CreatedAt()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_UnknownID_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewOrderID(time.Now()))
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusChange_Persisted() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Advance(time.Now().UTC().Truncate(time.Microsecond)))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, restored.Status())
	suite.True(restored.UpdatedAt().Equal(testOrder.UpdatedAt()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_UnknownOrder_ReturnsNotFound() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	err := suite.repository.Update(ctx, testOrder)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_ReturnsNewestFirst() {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Microsecond).Add(-time.Hour)

	ids := make([]kernel.OrderID, 3)
	for i := range 3 {
		testOrder := suite.createOrderAt(base.Add(time.Duration(i) * time.Minute))
		ids[i] = testOrder.ID()
		suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
		suite.Require().NoError(suite.repository.Add(ctx, testOrder))
	}

	all, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)

	for i, aggregate := range all {
		suite.True(aggregate.ID().IsEqual(ids[2-i]),
			"position %d should hold order created at offset %d", i, 2-i)
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_EmptyDatabase_ReturnsEmptySlice() {
	all, err := suite.repository.GetAll(context.Background())
	suite.Require().NoError(err)
	suite.NotNil(all)
	suite.Empty(all)
}

func (suite *OrderRepositoryIntegrationTestSuite) createOrderAt(createdAt time.Time) *order.Order {
	item, err := order.NewLineItem(
		"riz-saute", "riz-saute", "Riz saute", suite.mustPrice(9), 1, nil, "",
	)
	suite.Require().NoError(err)

	customer, err := order.NewCustomer("Bob Leroy", "+33698765432", "")
	suite.Require().NoError(err)

	fulfillment, err := order.NewTakeawayFulfillment("19:30")
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewOrderID(createdAt),
		[]order.LineItem{item},
		customer,
		fulfillment,
		createdAt,
	)
	suite.Require().NoError(err)
	return aggregate
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
