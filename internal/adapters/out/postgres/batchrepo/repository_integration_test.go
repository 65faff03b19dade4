package batchrepo_test

import (
	"context"
	"testing"
	"time"

	"shiprates/internal/adapters/out/postgres/batchrepo"
	"shiprates/internal/core/domain/model/batch"
	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// BatchLogRepositoryIntegrationTestSuite verifies batch job persistence
// against a real PostgreSQL container.
type BatchLogRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *batchrepo.GormBatchLogRepository
}

func (suite *BatchLogRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&batchrepo.JobDTO{},
		&batchrepo.ResultDTO{},
	))
}

func (suite *BatchLogRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE batch_results, batch_jobs").Error)
	suite.repository = batchrepo.NewGormBatchLogRepository(suite.db)
}

func (suite *BatchLogRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *BatchLogRepositoryIntegrationTestSuite) TestAdd_ValidJob_Success() {
	ctx := context.Background()
	job := suite.createTestJob()

	err := suite.repository.Add(ctx, job)
	suite.Require().NoError(err)

	var jobCount, resultCount int64
	suite.Require().NoError(suite.db.Model(&batchrepo.JobDTO{}).Count(&jobCount).Error)
	suite.Require().NoError(suite.db.Model(&batchrepo.ResultDTO{}).Count(&resultCount).Error)
	suite.Equal(int64(1), jobCount)
	suite.Equal(int64(len(job.Results())), resultCount)
}

func (suite *BatchLogRepositoryIntegrationTestSuite) TestGet_ExistingJob_ReturnsResultsInOrder() {
	ctx := context.Background()
	original := suite.createTestJob()

	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(original.ID().IsEqual(retrieved.ID()))
	suite.Require().Len(retrieved.Results(), len(original.Results()))
	for i, originalResult := range original.Results() {
		retrievedResult := retrieved.Results()[i]
		suite.Equal(originalResult.Reference, retrievedResult.Reference)
		suite.Equal(originalResult.Succeeded, retrievedResult.Succeeded)
		suite.Equal(originalResult.QuoteCount, retrievedResult.QuoteCount)
		suite.Equal(originalResult.BestStandard, retrievedResult.BestStandard)
		suite.Equal(originalResult.FailureReason, retrievedResult.FailureReason)
	}

	summary := retrieved.Summarize()
	suite.Equal(3, summary.Total)
	suite.Equal(2, summary.Succeeded)
	suite.Equal(1, summary.Failed)
	suite.Equal(kernel.Money(150), summary.TotalEstimatedCost)
}

func (suite *BatchLogRepositoryIntegrationTestSuite) TestGet_NonExistentJob_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *BatchLogRepositoryIntegrationTestSuite) TestGet_InvalidID_ReturnsValidationError() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.UUID{})

	suite.Require().Error(err)
}

func (suite *BatchLogRepositoryIntegrationTestSuite) createTestJob() *batch.Job {
	results := []batch.Result{
		{Reference: "s-1", Succeeded: true, QuoteCount: 3, BestStandard: kernel.Money(60)},
		{Reference: "s-2", Succeeded: false, FailureReason: "pickup: city: value is required"},
		{Reference: "s-3", Succeeded: true, QuoteCount: 2, BestStandard: kernel.Money(90)},
	}

	job, err := batch.NewJob(kernel.NewUUID(), time.Now().UTC().Truncate(time.Microsecond), results)
	suite.Require().NoError(err)
	return job
}

func TestBatchLogRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(BatchLogRepositoryIntegrationTestSuite))
}
