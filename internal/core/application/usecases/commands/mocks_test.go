package commands_test

import (
	"context"
	"time"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, tenantID, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, tenantID, id kernel.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockOrderRepository) TicketCodeExists(
	ctx context.Context, tenantID kernel.UUID, series order.TicketSeries, code string,
) (bool, error) {
	args := m.Called(ctx, tenantID, series, code)
	return args.Bool(0), args.Error(1)
}

type MockTicketSequencer struct{ mock.Mock }

func (m *MockTicketSequencer) Next(
	ctx context.Context, tenantID kernel.UUID, series order.TicketSeries,
) (string, error) {
	args := m.Called(ctx, tenantID, series)
	return args.String(0), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCreateOrderUoW struct{ MockOrderUoW }

func (m *MockCreateOrderUoW) TicketSequencer() ports.TicketSequencer {
	args := m.Called()
	return args.Get(0).(ports.TicketSequencer)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}

type MockTenantGateway struct{ mock.Mock }

func (m *MockTenantGateway) GetTenant(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCatalogGateway struct{ mock.Mock }

func (m *MockCatalogGateway) GetProduct(
	ctx context.Context, tenantID, id kernel.UUID,
) (*ports.Product, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.Product), args.Error(1)
}

type MockCustomerGateway struct{ mock.Mock }

func (m *MockCustomerGateway) GetCustomer(
	ctx context.Context, tenantID, id kernel.UUID,
) (*ports.Customer, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.Customer), args.Error(1)
}

func testProduct(id kernel.UUID, name string, price string) *ports.Product {
	return &ports.Product{ID: id, Name: name, UnitPrice: decimal.RequireFromString(price)}
}

// restoreTestOrder builds a persisted-looking order in the given status
// for handler tests that load before mutating.
func restoreTestOrder(tenantID kernel.UUID, status order.Status) *order.Order {
	item, err := order.RestoreLineItem(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Burger",
		2,
		decimal.RequireFromString("10.00"),
		decimal.RequireFromString("20.00"),
		"",
	)
	if err != nil {
		panic(err)
	}

	now := time.Now().UTC()
	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(),
		tenantID,
		order.DineIn,
		status,
		"",
		"C0001",
		"T0001",
		nil,
		"walk-in",
		[]*order.LineItem{item},
		nil,
		now,
		now,
	)
	if err != nil {
		panic(err)
	}

	return aggregate
}
