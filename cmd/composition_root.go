package cmd

import (
	"log/slog"

	"foodcourt/internal/adapters/in/ws"
	"foodcourt/internal/adapters/out/postgres"
	"foodcourt/internal/adapters/out/postgres/directoryrepo"
	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	directory  ports.Directory
	registry   *ws.Registry
	notifier   ports.Notifier
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	registry := ws.NewRegistry()

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		directory:  directoryrepo.NewGormDirectory(gormDB),
		registry:   registry,
		notifier:   ws.NewDispatcher(registry, logger),
	}
}

// PresenceRegistry exposes the registry for the websocket subscribe route.
func (c *CompositionRoot) PresenceRegistry() *ws.Registry {
	return c.registry
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlaceOrderUoWFactory = FuncPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.directory, c.notifier, c.config.EnforcesStock())
}

func (c *CompositionRoot) CreateUpdateSubOrderStatusCommandHandler() commands.UpdateSubOrderStatusCommandHandler {
	return commands.NewUpdateSubOrderStatusCommandHandler(c.subOrderUoWFactory(), c.directory, c.notifier)
}

func (c *CompositionRoot) CreateClaimSubOrderCommandHandler() commands.ClaimSubOrderCommandHandler {
	return commands.NewClaimSubOrderCommandHandler(c.subOrderUoWFactory(), c.directory, c.notifier)
}

func (c *CompositionRoot) CreateReOfferSubOrdersCommandHandler() commands.ReOfferSubOrdersCommandHandler {
	return commands.NewReOfferSubOrdersCommandHandler(c.subOrderUoWFactory(), c.directory, c.notifier)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShopOrdersQueryHandler() queries.GetShopOrdersQueryHandler {
	return queries.NewGetShopOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierOrdersQueryHandler() queries.GetCourierOrdersQueryHandler {
	return queries.NewGetCourierOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) subOrderUoWFactory() commands.SubOrderUoWFactory {
	return FuncSubOrderUoWFactory(func() commands.SubOrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f FuncPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f()
}

type FuncSubOrderUoWFactory func() commands.SubOrderUoW

func (f FuncSubOrderUoWFactory) Create() commands.SubOrderUoW {
	return f()
}
