package driverrepo_test

import (
	"context"
	"testing"
	"time"

	"taxi/internal/adapters/out/postgres/driverrepo"
	"taxi/internal/adapters/out/postgres/migrations"
	"taxi/internal/core/domain/model/driver"
	"taxi/internal/core/domain/model/kernel"
	"taxi/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type DriverRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *driverrepo.GormDriverRepository
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupSuite() {
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
	suite.Require().NoError(migrations.Up(connStr))

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *DriverRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE drivers RESTART IDENTITY CASCADE").Error)
	suite.repository = driverrepo.NewGormDriverRepository(suite.db)
}

func (suite *DriverRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTrips() {
	ctx := context.Background()
	d, err := driver.NewDriver("Ivan", "Lada Vesta")
	suite.Require().NoError(err)

	stored, err := suite.repository.Add(ctx, d)
	suite.Require().NoError(err)
	suite.Equal(kernel.ID(1), stored.ID())

	retrieved, err := suite.repository.Get(ctx, stored.ID())
	suite.Require().NoError(err)
	suite.Equal("Ivan", retrieved.Name())
	suite.Equal("Lada Vesta", retrieved.Car())
}

func (suite *DriverRepositoryIntegrationTestSuite) TestAdd_AssignsSequentialIDs() {
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		d, _ := driver.NewDriver("Ivan", "Lada")
		stored, err := suite.repository.Add(ctx, d)
		suite.Require().NoError(err)
		suite.Equal(kernel.ID(i), stored.ID())
	}
}

func (suite *DriverRepositoryIntegrationTestSuite) TestGet_Missing_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), 42)

	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
	suite.Equal("driver", notFound.ParamName)
}

func (suite *DriverRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	d, _ := driver.NewDriver("Ivan", "Lada Vesta")
	stored, err := suite.repository.Add(ctx, d)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Delete(ctx, stored.ID()))

	_, err = suite.repository.Get(ctx, stored.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	err = suite.repository.Delete(ctx, stored.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "second delete should report a miss")
}

func TestDriverRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DriverRepositoryIntegrationTestSuite))
}
