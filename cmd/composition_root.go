package cmd

import (
	"pos/internal/adapters/out/postgres"
	"pos/internal/adapters/out/postgres/catalogrepo"
	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(
		f,
		c.CreateTenantGateway(),
		c.CreateCatalogGateway(),
		c.CreateCustomerGateway(),
	)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(
		c.createOrderUoWFactory(),
		c.CreateCatalogGateway(),
		c.CreateCustomerGateway(),
	)
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() commands.RecordPaymentCommandHandler {
	return commands.NewRecordPaymentCommandHandler(c.createOrderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.createOrderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.createOrderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateKitchenQueueQueryHandler() queries.KitchenQueueQueryHandler {
	return queries.NewKitchenQueueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCountOrdersQueryHandler() queries.CountOrdersQueryHandler {
	return queries.NewCountOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateStaleOrdersQueryHandler() queries.StaleOrdersQueryHandler {
	return queries.NewStaleOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTenantGateway() *catalogrepo.GormTenantGateway {
	return catalogrepo.NewGormTenantGateway(c.gormDB)
}

func (c *CompositionRoot) CreateCatalogGateway() *catalogrepo.GormCatalogGateway {
	return catalogrepo.NewGormCatalogGateway(c.gormDB)
}

func (c *CompositionRoot) CreateCustomerGateway() *catalogrepo.GormCustomerGateway {
	return catalogrepo.NewGormCustomerGateway(c.gormDB)
}

func (c *CompositionRoot) createOrderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}
