package postgres_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	postgres_adapter "pos/internal/adapters/out/postgres"
	"pos/internal/adapters/out/postgres/orderrepo"
	"pos/internal/adapters/out/postgres/ticketseq"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&orderrepo.PaymentDTO{},
		&ticketseq.TicketCounterDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE orders, line_items, payments, ticket_counters").Error,
	)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder(
	tenantID kernel.UUID, kitchenTicket, customerTicket string,
) *order.Order {
	item, err := order.NewLineItem(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Burger",
		1,
		decimal.RequireFromString("10.00"),
		"",
	)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		tenantID,
		order.Takeout,
		kitchenTicket,
		customerTicket,
		nil,
		"",
		"",
		[]*order.LineItem{item},
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitPersistsOrder() {
	ctx := context.Background()
	tenantID := kernel.NewUUID()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	kitchen, err := uow.TicketSequencer().Next(ctx, tenantID, order.KitchenSeries)
	suite.Require().NoError(err)
	customer, err := uow.TicketSequencer().Next(ctx, tenantID, order.CustomerSeries)
	suite.Require().NoError(err)
	suite.Equal("C0001", kitchen)
	suite.Equal("T0001", customer)

	aggregate := suite.newOrder(tenantID, kitchen, customer)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	readUow := suite.factory.Create()
	restored, err := readUow.OrderRepository().Get(ctx, tenantID, aggregate.ID())
	suite.Require().NoError(err)
	suite.True(restored.IsEqual(aggregate))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackDiscardsOrderAndTicket() {
	ctx := context.Background()
	tenantID := kernel.NewUUID()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	kitchen, err := uow.TicketSequencer().Next(ctx, tenantID, order.KitchenSeries)
	suite.Require().NoError(err)
	suite.Equal("C0001", kitchen)

	aggregate := suite.newOrder(tenantID, kitchen, "T0001")
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Rollback(ctx))

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Zero(count)

	// The rolled back number is reissued, not burned
	nextUow := suite.factory.Create()
	suite.Require().NoError(nextUow.Begin(ctx))
	reissued, err := nextUow.TicketSequencer().Next(ctx, tenantID, order.KitchenSeries)
	suite.Require().NoError(err)
	suite.Equal("C0001", reissued)
	suite.Require().NoError(nextUow.Commit(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin() {
	uow := suite.factory.Create()
	suite.Require().Error(uow.Commit(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentTicketIssuance() {
	ctx := context.Background()
	tenantID := kernel.NewUUID()
	const workers = 100

	codes := make(chan string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			uow := suite.factory.Create()
			if err := uow.Begin(ctx); err != nil {
				suite.T().Error(err)
				return
			}

			code, err := uow.TicketSequencer().Next(ctx, tenantID, order.KitchenSeries)
			if err != nil {
				_ = uow.Rollback(ctx)
				suite.T().Error(err)
				return
			}

			if err := uow.Commit(ctx); err != nil {
				suite.T().Error(err)
				return
			}

			codes <- code
		}()
	}
	wg.Wait()
	close(codes)

	seen := make(map[string]bool, workers)
	for code := range codes {
		suite.False(seen[code], "duplicate ticket code %s", code)
		seen[code] = true
	}
	suite.Len(seen, workers)

	for i := 1; i <= workers; i++ {
		suite.True(seen[fmt.Sprintf("C%04d", i)])
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSequencerSeriesAreIndependent() {
	ctx := context.Background()
	tenantID := kernel.NewUUID()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	first, err := uow.TicketSequencer().Next(ctx, tenantID, order.KitchenSeries)
	suite.Require().NoError(err)
	second, err := uow.TicketSequencer().Next(ctx, tenantID, order.KitchenSeries)
	suite.Require().NoError(err)
	customer, err := uow.TicketSequencer().Next(ctx, tenantID, order.CustomerSeries)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal("C0001", first)
	suite.Equal("C0002", second)
	suite.Equal("T0001", customer)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
