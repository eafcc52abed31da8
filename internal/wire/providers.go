package wire

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sevigo/goframe/llms"
	"github.com/sevigo/goframe/llms/gemini"
	"github.com/sevigo/goframe/llms/ollama"
	"github.com/sevigo/goframe/parsers"

	"github.com/sevigo/pr-sentinel/internal/analyzer"
	"github.com/sevigo/pr-sentinel/internal/config"
	"github.com/sevigo/pr-sentinel/internal/core"
	"github.com/sevigo/pr-sentinel/internal/db"
	"github.com/sevigo/pr-sentinel/internal/github"
	"github.com/sevigo/pr-sentinel/internal/llm"
	"github.com/sevigo/pr-sentinel/internal/logger"
	"github.com/sevigo/pr-sentinel/internal/queue"
	"github.com/sevigo/pr-sentinel/internal/storage"
)

func provideLoggerConfig(cfg *config.Config) logger.Config {
	return cfg.Logging
}

func provideLogWriter(cfg *config.Config) io.Writer {
	switch cfg.Logging.Output {
	case "stderr":
		return os.Stderr
	case "file":
		f, _ := os.OpenFile("pr-sentinel.log", os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
		return f
	default:
		return os.Stdout
	}
}

func provideSlogLogger(loggerConfig logger.Config, writer io.Writer) *slog.Logger {
	return logger.NewLogger(loggerConfig, writer)
}

func provideDBConfig(cfg *config.Config) *config.DBConfig {
	return &cfg.Database
}

func provideSqlxDB(dbConn *db.DB) *sqlx.DB {
	return dbConn.DB
}

func provideQueueConfig(cfg *config.Config) config.QueueConfig {
	return cfg.Queue
}

func provideClientProvider(cfg *config.Config, log *slog.Logger) *github.ClientProvider {
	factory := github.NewInstallationClientFactory(cfg, log)
	return github.NewClientProvider(factory, cfg.GitHub.ClientCacheTTL, log)
}

func provideParserRegistry(log *slog.Logger) (parsers.ParserRegistry, error) {
	return parsers.RegisterLanguagePlugins(log)
}

// provideReviewer builds the two review engines: the configured standard
// model and, when a Gemini key is present, a large-context model for files
// above the size threshold.
func provideReviewer(ctx context.Context, cfg *config.Config, prompts *llm.PromptManager, log *slog.Logger) (llm.Reviewer, error) {
	standard, err := createLLM(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create generator LLM: %w", err)
	}

	var largeContext llms.Model
	if cfg.AI.GeminiAPIKey != "" {
		largeContext, err = gemini.New(ctx,
			gemini.WithModel(cfg.AI.LargeContextModel),
			gemini.WithAPIKey(cfg.AI.GeminiAPIKey),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create large-context LLM: %w", err)
		}
	}

	return llm.NewReviewer(prompts, standard, largeContext, cfg.AI.LargeFileThreshold, cfg.AI.CallTimeout, log), nil
}

func provideOrchestrator(
	cfg *config.Config,
	clients *github.ClientProvider,
	reviewer llm.Reviewer,
	publisher *analyzer.Publisher,
	store storage.Store,
	registry parsers.ParserRegistry,
	log *slog.Logger,
) *analyzer.Orchestrator {
	return analyzer.NewOrchestrator(clients, reviewer, publisher, store, registry, cfg.Queue.FileParallel, log)
}

func provideJobQueue(q *queue.Queue) core.JobQueue {
	return q
}

// createLLM creates the standard review engine based on the configured provider.
func createLLM(ctx context.Context, cfg *config.Config, log *slog.Logger) (llms.Model, error) {
	switch cfg.AI.LLMProvider {
	case "gemini":
		log.Info("using Gemini LLM provider", "model", cfg.AI.GeneratorModel)
		return gemini.New(ctx,
			gemini.WithModel(cfg.AI.GeneratorModel),
			gemini.WithAPIKey(cfg.AI.GeminiAPIKey),
		)

	case "ollama":
		log.Info("using Ollama LLM provider", "model", cfg.AI.GeneratorModel)
		return ollama.New(
			ollama.WithServerURL(cfg.AI.OllamaHost),
			ollama.WithHTTPClient(newOllamaHTTPClient()),
			ollama.WithModel(cfg.AI.GeneratorModel),
			ollama.WithLogger(log),
		)

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.AI.LLMProvider)
	}
}

// newOllamaHTTPClient creates an HTTP client with longer timeouts for Ollama
// requests, which can take a while to process.
func newOllamaHTTPClient() *http.Client {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxConnsPerHost:     10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		DisableKeepAlives:   false,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   5 * time.Minute,
	}
}
