package postgres_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/deliveryrepo"
	"fulfillment/internal/adapters/out/postgres/discountrepo"
	"fulfillment/internal/adapters/out/postgres/eventrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/paymentrepo"
	"fulfillment/internal/adapters/out/postgres/productrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics of the GORM
// unit of work against a real PostgreSQL instance.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&productrepo.ProductDTO{},
		&paymentrepo.PaymentDTO{},
		&deliveryrepo.DeliveryDTO{},
		&discountrepo.DiscountDTO{},
		&eventrepo.EventDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, products, payments, deliveries, discounts, order_status_events",
	).Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	testProduct := suite.createTestProduct(10)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.ProductRepository().Add(ctx, testProduct))
	event := order.NewStatusChangedEvent(
		testOrder.ID(), order.Created, order.AwaitingPayment, order.SourceOrder, time.Now().UTC(),
	)
	suite.Require().NoError(uow.EventRepository().Append(ctx, event))

	suite.Require().NoError(uow.Commit(ctx))

	restored, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(restored.ID().IsEqual(testOrder.ID()))

	events, err := suite.factory.Create().EventRepository().GetUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(events, 1)
	suite.True(events[0].OrderID.IsEqual(testOrder.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllChanges() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()

	err := uow.Commit(context.Background())

	suite.ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()

	err := uow.Rollback(context.Background())

	suite.ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_IsIdempotent() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestLockedRow_SurfacesContentionError() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	seed := suite.factory.Create()
	suite.Require().NoError(seed.Begin(ctx))
	suite.Require().NoError(seed.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(seed.Commit(ctx))

	holder := suite.factory.Create()
	suite.Require().NoError(holder.Begin(ctx))
	defer holder.Rollback(ctx)
	_, err := holder.OrderRepository().GetForUpdate(ctx, testOrder.ID())
	suite.Require().NoError(err)

	waiter := suite.factory.Create()
	suite.Require().NoError(waiter.Begin(ctx))
	defer waiter.Rollback(ctx)

	_, err = waiter.OrderRepository().GetForUpdate(ctx, testOrder.ID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrContention)
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder() *order.Order {
	price, err := kernel.NewMoney(10000)
	suite.Require().NoError(err)
	item, err := order.NewLineItem(kernel.NewUUID(), 2, price)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), []order.LineItem{item}, time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestProduct(stock int) *product.Product {
	price, err := kernel.NewMoney(10000)
	suite.Require().NoError(err)
	testProduct, err := product.NewProduct(kernel.NewUUID(), "Standing Desk", price, stock)
	suite.Require().NoError(err)
	return testProduct
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
