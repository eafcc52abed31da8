//go:build wireinject
// +build wireinject

package wire

import (
	"context"

	"github.com/google/wire"

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

func InitializeApp(ctx context.Context) (*app.App, func(), error) {
	wire.Build(
		app.NewApp,
		server.NewServer,
		config.LoadConfig,
		db.NewDatabase,
		storage.NewStore,
		queue.New,
		jobs.NewReviewJob,
		analyzer.NewPublisher,
		llm.NewPromptManager,
		provideOrchestrator,
		provideReviewer,
		provideParserRegistry,
		provideClientProvider,
		provideJobQueue,
		provideQueueConfig,
		provideDBConfig,
		provideSqlxDB,
		provideLoggerConfig,
		provideLogWriter,
		provideSlogLogger,
	)
	return &app.App{}, nil, nil
}
