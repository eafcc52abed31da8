// Code generated manually. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package wire

import (
	"context"
	"fmt"

	"github.com/sevigo/pr-sentinel/internal/analyzer"
	"github.com/sevigo/pr-sentinel/internal/app"
	"github.com/sevigo/pr-sentinel/internal/config"
	"github.com/sevigo/pr-sentinel/internal/db"
	"github.com/sevigo/pr-sentinel/internal/jobs"
	"github.com/sevigo/pr-sentinel/internal/llm"
	"github.com/sevigo/pr-sentinel/internal/queue"
	"github.com/sevigo/pr-sentinel/internal/server"
	"github.com/sevigo/pr-sentinel/internal/storage"
)

// InitializeApp creates and wires all application dependencies.
func InitializeApp(ctx context.Context) (*app.App, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	loggerConfig := provideLoggerConfig(cfg)
	logWriter := provideLogWriter(cfg)
	slogLogger := provideSlogLogger(loggerConfig, logWriter)

	dbConfig := provideDBConfig(cfg)
	dbConn, dbCleanup, err := db.NewDatabase(dbConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	store := storage.NewStore(provideSqlxDB(dbConn))

	clients := provideClientProvider(cfg, slogLogger)

	promptMgr, err := llm.NewPromptManager()
	if err != nil {
		dbCleanup()
		return nil, nil, fmt.Errorf("failed to initialize prompt manager: %w", err)
	}

	reviewer, err := provideReviewer(ctx, cfg, promptMgr, slogLogger)
	if err != nil {
		dbCleanup()
		return nil, nil, fmt.Errorf("failed to initialize reviewer: %w", err)
	}

	parserRegistry, err := provideParserRegistry(slogLogger)
	if err != nil {
		dbCleanup()
		return nil, nil, fmt.Errorf("failed to register language parsers: %w", err)
	}

	publisher := analyzer.NewPublisher(store, promptMgr, slogLogger)
	orchestrator := provideOrchestrator(cfg, clients, reviewer, publisher, store, parserRegistry, slogLogger)
	reviewJob := jobs.NewReviewJob(store, orchestrator, slogLogger)

	jobQueue := queue.New(ctx, store, reviewJob, provideQueueConfig(cfg), slogLogger)
	httpServer := server.NewServer(ctx, cfg, store, provideJobQueue(jobQueue), slogLogger)

	application := app.NewApp(ctx, cfg, httpServer, jobQueue, store, clients, slogLogger)

	cleanup := func() {
		dbCleanup()
	}
	return application, cleanup, nil
}
