package queries_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// GetOrderQueryHandlerTestSuite verifies the single order read model
// against a real PostgreSQL instance.
type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrderQueryHandlerTestSuite) SetupSuite() {
	suite.container, suite.db = startOrdersDatabase(&suite.Suite)
	suite.handler = queries.NewGetOrderQueryHandler(suite.db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(suite.db, mockAggregateTracker{})
}

func (suite *GetOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ExistingOrder_ReturnsRow() {
	createdAt := time.Now().UTC().Truncate(time.Microsecond)
	seeded := seedOrder(&suite.Suite, suite.orderRepo, order.Confirmed, createdAt)

	query, err := queries.NewGetOrderQuery(seeded.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(seeded.ID().String(), result.ID)
	suite.Equal("confirmed", result.Status)
	suite.Equal("36.00", result.Total)
	suite.Equal("Alice Martin", result.CustomerName)
	suite.Require().Len(result.Items, 1)
	suite.Equal("Pad Thai", result.Items[0].Name)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_UnknownOrder_ReturnsNotFound() {
	query, err := queries.NewGetOrderQuery(kernel.NewOrderID(time.Now()))
	suite.Require().NoError(err)

	_, handleErr := suite.handler.Handle(context.Background(), query)

	suite.Require().Error(handleErr)
	suite.ErrorIs(handleErr, errs.ErrObjectNotFound)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetOrderQuery{})

	suite.Require().Error(err)
	suite.ErrorIs(err, queries.ErrGetOrderQueryIsNotConstructed)
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}
