package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shiprates/cmd"
	"shiprates/internal/adapters/out/memory"
	"shiprates/internal/adapters/out/postgres/batchrepo"
	"shiprates/internal/adapters/out/postgres/courierrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	goredis "github.com/redis/go-redis/v9"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	var redisClient *goredis.Client
	if configs.RedisAddr != "" {
		redisClient = goredis.NewClient(&goredis.Options{Addr: configs.RedisAddr})
	}

	root, err := cmd.NewCompositionRoot(configs, gormDB, redisClient, logger)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	ctx := context.Background()
	seedCatalog(ctx, root, logger)

	// Prime the snapshot so the first request does not race the cron job.
	if err := root.CatalogRefreshJob().Refresh(ctx); err != nil {
		log.Fatalf("Failed to load the courier catalog: %v", err)
	}
	if err := root.JobManager().StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer root.JobManager().StopAll()

	startWebServer(root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:               envOrDefault("HTTP_PORT", "8080"),
		DBHost:                 envOrDefault("DB_HOST", "localhost"),
		DBPort:                 envOrDefault("DB_PORT", "5432"),
		DBUser:                 envOrDefault("DB_USER", "postgres"),
		DBPassword:             envOrDefault("DB_PASSWORD", "postgres"),
		DBName:                 envOrDefault("DB_NAME", "shiprates"),
		DBSslMode:              envOrDefault("DB_SSLMODE", "disable"),
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		CatalogRefreshSchedule: envOrDefault("CATALOG_REFRESH_SCHEDULE", "0 */10 * * * *"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&courierrepo.PartnerDTO{},
		&courierrepo.CoverageAreaDTO{},
		&courierrepo.ServiceRateDTO{},
		&courierrepo.FeatureDTO{},
		&courierrepo.ContractRateDTO{},
		&batchrepo.JobDTO{},
		&batchrepo.ResultDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate the database: %v", err)
	}
}

// seedCatalog loads the bundled courier catalog into an empty database so a
// fresh install can quote immediately.
func seedCatalog(ctx context.Context, root *cmd.CompositionRoot, logger *slog.Logger) {
	repo := root.CourierRepository()

	existing, err := repo.GetAll(ctx)
	if err != nil {
		log.Fatalf("Failed to read the courier catalog: %v", err)
	}
	if len(existing) > 0 {
		return
	}

	partners, err := memory.DefaultPartners()
	if err != nil {
		log.Fatalf("Failed to build the seed catalog: %v", err)
	}
	for _, partner := range partners {
		if err := repo.Add(ctx, partner); err != nil {
			log.Fatalf("Failed to seed courier %s: %v", partner.ID(), err)
		}
	}
	if err := repo.ReplaceContractRates(ctx, memory.DefaultRateRows()); err != nil {
		log.Fatalf("Failed to seed contract rates: %v", err)
	}

	logger.InfoContext(ctx, "Seeded courier catalog",
		"partners", len(partners), "contract_rates", len(memory.DefaultRateRows()))
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	root.CreateServer().RegisterRoutes(e, root.Registry())

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil {
			e.Logger.Info("Shutting down the server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}
