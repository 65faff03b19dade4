package postgres_test

import (
	"context"
	"testing"
	"time"

	"shiprates/internal/adapters/out/postgres"
	"shiprates/internal/adapters/out/postgres/batchrepo"
	"shiprates/internal/core/domain/model/batch"
	"shiprates/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics of the GORM
// unit of work against a real PostgreSQL container.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
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
		&batchrepo.JobDTO{},
		&batchrepo.ResultDTO{},
	))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE batch_results, batch_jobs").Error)
	suite.factory = postgres.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsJob() {
	ctx := context.Background()
	job := suite.createTestJob()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.BatchLogRepository().Add(ctx, job))
	suite.Require().NoError(uow.Commit(ctx))

	suite.assertJobCount(1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsJob() {
	ctx := context.Background()
	job := suite.createTestJob()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.BatchLogRepository().Add(ctx, job))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertJobCount(0)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_AfterCommit_IsInvalidTransaction() {
	ctx := context.Background()
	job := suite.createTestJob()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.BatchLogRepository().Add(ctx, job))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
	suite.assertJobCount(1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_Twice_DoesNotNestTransactions() {
	ctx := context.Background()
	job := suite.createTestJob()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.BatchLogRepository().Add(ctx, job))
	suite.Require().NoError(uow.Commit(ctx))

	suite.assertJobCount(1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestIsolation_SeparateInstancesDoNotShareTransactions() {
	ctx := context.Background()

	first := suite.factory.Create()
	second := suite.factory.Create()

	suite.Require().NoError(first.Begin(ctx))
	suite.Require().NoError(second.Begin(ctx))

	suite.Require().NoError(first.BatchLogRepository().Add(ctx, suite.createTestJob()))
	suite.Require().NoError(second.BatchLogRepository().Add(ctx, suite.createTestJob()))

	suite.Require().NoError(first.Commit(ctx))
	suite.Require().NoError(second.Rollback(ctx))

	suite.assertJobCount(1)
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestJob() *batch.Job {
	results := []batch.Result{
		{Reference: "s-1", Succeeded: true, QuoteCount: 2, BestStandard: kernel.Money(72)},
	}

	job, err := batch.NewJob(kernel.NewUUID(), time.Now().UTC(), results)
	suite.Require().NoError(err)
	return job
}

func (suite *UnitOfWorkIntegrationTestSuite) assertJobCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&batchrepo.JobDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
