package cmd

import (
	"log/slog"

	httpin "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/jobs"
	"fooddelivery/internal/seed"
)

type CompositionRoot struct {
	cfg        Config
	lifecycle  *services.OrderLifecycle
	uowFactory commands.UoWFactory
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, storage ports.UnitOfWorkFactory, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		cfg:       cfg,
		lifecycle: services.NewOrderLifecycle(services.WithAdmin(cfg.AdminUsername)),
		uowFactory: FuncUoWFactory(func() commands.UoW {
			return storage.Create()
		}),
		logger: logger,
	}
}

func (c *CompositionRoot) CreateLoadDataCommandHandler() commands.LoadDataCommandHandler {
	return commands.NewLoadDataCommandHandler(c.lifecycle, c.uowFactory, seed.Embedded())
}

func (c *CompositionRoot) CreateSaveDataCommandHandler() commands.SaveDataCommandHandler {
	return commands.NewSaveDataCommandHandler(c.lifecycle, c.uowFactory)
}

func (c *CompositionRoot) CreateCommands() httpin.Commands {
	return httpin.Commands{
		SignUp:            commands.NewSignUpCommandHandler(c.lifecycle),
		AddMenuItem:       commands.NewAddMenuItemCommandHandler(c.lifecycle),
		AddPromoCode:      commands.NewAddPromoCodeCommandHandler(c.lifecycle),
		AddToCart:         commands.NewAddToCartCommandHandler(c.lifecycle),
		RemoveFromCart:    commands.NewRemoveFromCartCommandHandler(c.lifecycle),
		Checkout:          commands.NewCheckoutCommandHandler(c.lifecycle),
		ProcessNextOrder:  commands.NewProcessNextOrderCommandHandler(c.lifecycle),
		DispatchNextOrder: commands.NewDispatchNextOrderCommandHandler(c.lifecycle),
		UpdateOrderStatus: commands.NewUpdateOrderStatusCommandHandler(c.lifecycle),
		SaveData:          c.CreateSaveDataCommandHandler(),
	}
}

func (c *CompositionRoot) CreateQueries() httpin.Queries {
	return httpin.Queries{
		Authenticate:  queries.NewAuthenticateQueryHandler(c.lifecycle),
		Account:       queries.NewGetAccountQueryHandler(c.lifecycle),
		Accounts:      queries.NewGetAccountsQueryHandler(c.lifecycle),
		Menu:          queries.NewGetMenuQueryHandler(c.lifecycle),
		PromoCodes:    queries.NewGetPromoCodesQueryHandler(c.lifecycle),
		Cart:          queries.NewGetCartQueryHandler(c.lifecycle),
		TrackOrder:    queries.NewTrackOrderQueryHandler(c.lifecycle),
		OrderHistory:  queries.NewGetOrderHistoryQueryHandler(c.lifecycle),
		PendingOrders: queries.NewGetPendingOrdersQueryHandler(c.lifecycle),
		DeliveryQueue: queries.NewGetDeliveryQueueQueryHandler(c.lifecycle),
	}
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(c.CreateCommands(), c.CreateQueries(), c.logger)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	return jobs.NewJobManager(
		c.CreateSaveDataCommandHandler(),
		queries.NewGetPendingOrdersQueryHandler(c.lifecycle),
		queries.NewGetDeliveryQueueQueryHandler(c.lifecycle),
		jobs.Schedules{Flush: c.cfg.FlushSchedule, Report: c.cfg.ReportSchedule},
		c.logger,
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
