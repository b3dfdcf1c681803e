package main

import (
	"context"
	"database/sql"
	"log"
	"net"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/suraksha-labs/occupancy-engine/pkg/config"
	"github.com/suraksha-labs/occupancy-engine/pkg/corpus"
	"github.com/suraksha-labs/occupancy-engine/pkg/database"
	"github.com/suraksha-labs/occupancy-engine/pkg/handlers"
	"github.com/suraksha-labs/occupancy-engine/pkg/llm"
	"github.com/suraksha-labs/occupancy-engine/pkg/middleware"
	"github.com/suraksha-labs/occupancy-engine/pkg/models"
	"github.com/suraksha-labs/occupancy-engine/pkg/repositories"
	"github.com/suraksha-labs/occupancy-engine/pkg/retry"
	"github.com/suraksha-labs/occupancy-engine/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Configuration loaded",
		zap.String("environment", cfg.Env),
		zap.String("version", cfg.Version),
		zap.String("database", cfg.Database.Database),
		zap.String("ai_provider", cfg.AI.Provider),
		zap.String("ai_model", cfg.AI.Model))

	ctx := context.Background()

	db := connectDatabase(ctx, cfg, logger)
	defer db.Close()

	migrateDatabase(cfg, logger)

	// Repositories
	occupancyCodeRepo := repositories.NewOccupancyCodeRepository(db)
	analysisRepo := repositories.NewAnalysisRepository(db)
	feedbackRepo := repositories.NewFeedbackRepository(db)

	// Core services
	master := services.NewOccupancyMasterService(occupancyCodeRepo, logger)
	if err := master.Seed(ctx); err != nil {
		// Degenerate but non-fatal: classification runs with an empty
		// master list until a reload succeeds.
		logger.Error("Failed to seed occupancy master list", zap.Error(err))
	}

	retrieval := services.NewRetrievalService(loadCorpus(cfg, logger), logger)
	flexibility := services.NewFlexibilityService()

	classifyClient, ackClient := buildLLMClients(ctx, cfg, logger)

	classification := services.NewClassificationService(
		master, retrieval, flexibility, analysisRepo, feedbackRepo, classifyClient, logger)
	feedback := services.NewFeedbackService(feedbackRepo, analysisRepo, ackClient, logger)
	stats := services.NewStatsService(analysisRepo, feedbackRepo, logger)

	// HTTP surface
	mux := http.NewServeMux()
	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewAnalysisHandler(classification, logger).RegisterRoutes(mux)
	handlers.NewFeedbackHandler(feedback, master, logger).RegisterRoutes(mux)
	handlers.NewOccupancyHandler(master, logger).RegisterRoutes(mux)
	handlers.NewStatsHandler(stats, logger).RegisterRoutes(mux)

	handler := middleware.RequestLogger(logger)(mux)

	addr := net.JoinHostPort(cfg.BindAddr, cfg.Port)
	logger.Info("Starting occupancy-engine", zap.String("addr", addr), zap.String("version", cfg.Version))
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "local" || env == "dev" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func connectDatabase(ctx context.Context, cfg *config.Config, logger *zap.Logger) *database.DB {
	var db *database.DB
	err := retry.Do(ctx, retry.DefaultConfig(), func() error {
		var connErr error
		db, connErr = database.NewConnection(ctx, &database.Config{
			URL:            cfg.Database.ConnectionString(),
			MaxConnections: cfg.Database.MaxConnections,
		})
		if connErr != nil {
			logger.Warn("Database connection failed, retrying", zap.Error(connErr))
		}
		return connErr
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	return db
}

// migrateDatabase runs schema migrations over a short-lived database/sql
// connection; the pgx pool is kept for request traffic.
func migrateDatabase(cfg *config.Config, logger *zap.Logger) {
	sqlDB, err := sql.Open("pgx", cfg.Database.ConnectionString())
	if err != nil {
		logger.Fatal("Failed to open migration connection", zap.Error(err))
	}
	defer func() { _ = sqlDB.Close() }()

	if err := database.RunMigrations(sqlDB, cfg.Database.MigrationsPath, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}
}

func loadCorpus(cfg *config.Config, logger *zap.Logger) []models.TrainingExample {
	examples, err := corpus.Load(cfg.Corpus.TrainingDataPath, logger)
	if err != nil {
		// Same failure semantics as the master list: log and run with an
		// empty corpus.
		logger.Error("Failed to load training corpus", zap.Error(err))
		return nil
	}
	return examples
}

func buildLLMClients(ctx context.Context, cfg *config.Config, logger *zap.Logger) (llm.LLMClient, llm.LLMClient) {
	timeout := time.Duration(cfg.AI.RequestTimeoutSeconds) * time.Second

	classifyClient, err := llm.NewClientForProvider(ctx, &llm.FactoryConfig{
		Provider: cfg.AI.Provider,
		Endpoint: cfg.AI.BaseURL,
		Model:    cfg.AI.Model,
		APIKey:   cfg.AI.APIKey,
		Timeout:  timeout,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to create classification client", zap.Error(err))
	}

	ackClient, err := llm.NewClientForProvider(ctx, &llm.FactoryConfig{
		Provider: cfg.AI.Provider,
		Endpoint: cfg.AI.BaseURL,
		Model:    cfg.AI.EffectiveAckModel(),
		APIKey:   cfg.AI.APIKey,
		Timeout:  timeout,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to create acknowledgment client", zap.Error(err))
	}

	return classifyClient, ackClient
}
