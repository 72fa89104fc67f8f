package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"sokoni/internal/adapters/out/postgres/orderrepo"
	"sokoni/internal/core/domain/model/kernel"
	"sokoni/internal/core/domain/model/order"
	"sokoni/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite exercises order persistence against a
// real PostgreSQL instance, including the compare-and-swap status write.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()

	original := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(retrieved.ID().IsEqual(original.ID()))
	suite.True(retrieved.CustomerID().IsEqual(original.CustomerID()))
	suite.True(retrieved.ShopID().IsEqual(original.ShopID()))
	suite.Equal(order.Pending, retrieved.Status())
	suite.Equal(order.PaymentUnpaid, retrieved.PaymentStatus())
	suite.Equal(int64(23000), retrieved.TotalAmount().Amount())
	suite.Require().Len(retrieved.Items(), 2)
	suite.Equal("Rice 5kg", retrieved.Items()[0].ProductName())
	suite.Equal(2, retrieved.Items()[0].Quantity())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatusFrom_MatchingPrior_Persists() {
	ctx := context.Background()

	o := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	prior := o.Status()
	suite.Require().NoError(o.ChangeStatus(order.Confirmed, kernel.RoleSeller))
	suite.Require().NoError(suite.repository.UpdateStatusFrom(ctx, o, prior))

	retrieved, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, retrieved.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatusFrom_StalePrior_ReturnsConflict() {
	ctx := context.Background()

	o := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	// Another writer moves the order on first.
	first, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(first.ChangeStatus(order.Confirmed, kernel.RoleSeller))
	suite.Require().NoError(suite.repository.UpdateStatusFrom(ctx, first, order.Pending))

	// The stale writer still believes the order is pending.
	suite.Require().NoError(o.Cancel("changed my mind", kernel.RoleCustomer))
	err = suite.repository.UpdateStatusFrom(ctx, o, order.Pending)

	var conflictErr *errs.ConflictError
	suite.Require().ErrorAs(err, &conflictErr)
	suite.Contains(err.Error(), "confirmed")

	retrieved, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, retrieved.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatusFrom_NonExistentOrder_ReturnsNotFound() {
	o := suite.createTestOrder()

	err := suite.repository.UpdateStatusFrom(context.Background(), o, order.Pending)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatusFrom_CancelPersistsReason() {
	ctx := context.Background()

	o := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	prior := o.Status()
	suite.Require().NoError(o.Cancel("out of stock at the shop", kernel.RoleSeller))
	suite.Require().NoError(suite.repository.UpdateStatusFrom(ctx, o, prior))

	retrieved, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, retrieved.Status())
	suite.Equal("out of stock at the shop", retrieved.Notes())
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	rice, err := order.NewItem(kernel.NewUUID(), "Rice 5kg", 2, kernel.MustMoney(8000))
	suite.Require().NoError(err)
	oil, err := order.NewItem(kernel.NewUUID(), "Cooking oil 1L", 1, kernel.MustMoney(4000))
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{rice, oil},
		kernel.MustMoney(2000), kernel.MustMoney(1000),
		"Mikocheni B, Dar es Salaam", "+255700000001", "", "mobile_money",
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return o
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
