package cmd

import (
	httpadapter "taxi/internal/adapters/in/http"
	"taxi/internal/adapters/out/postgres"
	"taxi/internal/core/application/usecases/commands"
	"taxi/internal/core/application/usecases/queries"
	"taxi/internal/jobs"
	"taxi/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *zap.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *zap.Logger) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) driverUoWFactory() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) clientUoWFactory() commands.ClientUoWFactory {
	return FuncClientUoWFactory(func() commands.ClientUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	return commands.NewCreateDriverCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateDeleteDriverCommandHandler() commands.DeleteDriverCommandHandler {
	return commands.NewDeleteDriverCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateCreateClientCommandHandler() commands.CreateClientCommandHandler {
	return commands.NewCreateClientCommandHandler(c.clientUoWFactory())
}

func (c *CompositionRoot) CreateDeleteClientCommandHandler() commands.DeleteClientCommandHandler {
	return commands.NewDeleteClientCommandHandler(c.clientUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetDriverQueryHandler() queries.GetDriverQueryHandler {
	return queries.NewGetDriverQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetClientQueryHandler() queries.GetClientQueryHandler {
	return queries.NewGetClientQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateDatabaseHealthJob(db jobs.Pinger) *jobs.DatabaseHealthJob {
	return jobs.NewDatabaseHealthJob(db, c.cfg.HealthCheckSchedule, c.logger)
}

func (c *CompositionRoot) CreateJobManager(databaseHealthJob *jobs.DatabaseHealthJob) *jobs.JobManager {
	return jobs.NewJobManager(databaseHealthJob)
}

// CreateHTTPServer wires every use case into an echo instance. health backs
// GET /health.
func (c *CompositionRoot) CreateHTTPServer(health httpadapter.HealthReporter) (*echo.Echo, error) {
	doc, err := httpadapter.LoadOpenAPI()
	if err != nil {
		return nil, err
	}

	handlers := httpadapter.Handlers{
		CreateDriver: c.CreateCreateDriverCommandHandler(),
		DeleteDriver: c.CreateDeleteDriverCommandHandler(),
		GetDriver:    c.CreateGetDriverQueryHandler(),

		CreateClient: c.CreateCreateClientCommandHandler(),
		DeleteClient: c.CreateDeleteClientCommandHandler(),
		GetClient:    c.CreateGetClientQueryHandler(),

		CreateOrder: c.CreateCreateOrderCommandHandler(),
		UpdateOrder: c.CreateUpdateOrderCommandHandler(),
		GetOrder:    c.CreateGetOrderQueryHandler(),

		Health: health,
	}

	server := httpadapter.NewServer(handlers, doc, c.logger.With(logger.String("component", "http")))
	return httpadapter.NewEcho(server, c.cfg.LogLevel)
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncClientUoWFactory func() commands.ClientUoW

func (f FuncClientUoWFactory) Create() commands.ClientUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
