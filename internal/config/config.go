// Package config loads and validates the application configuration.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/sevigo/pr-sentinel/internal/logger"
)

// Config holds the application's configuration values.
type Config struct {
	Server   ServerConfig
	Logging  logger.Config
	Database DBConfig
	GitHub   GitHubConfig
	AI       AIConfig
	Queue    QueueConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host            string
	Port            int
	Username        string
	Password        string
	Database        string
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// GitHubConfig holds GitHub App credentials and webhook settings.
type GitHubConfig struct {
	AppID          int64
	WebhookSecret  string
	PrivateKeyPath string
	ClientCacheTTL time.Duration
}

// AIConfig holds settings for the two review engines. Files whose content is
// at least LargeFileThreshold bytes are routed to the large-context engine.
type AIConfig struct {
	LLMProvider        string
	OllamaHost         string
	GeminiAPIKey       string
	GeneratorModel     string
	LargeContextModel  string
	LargeFileThreshold int
	CallTimeout        time.Duration
}

// QueueConfig holds job delivery settings.
type QueueConfig struct {
	MaxWorkers   int
	MaxAttempts  int
	BackoffBase  time.Duration
	JobTimeout   time.Duration
	FileParallel int
}

// LoadConfig reads configuration from environment variables and a .env file,
// sets sensible defaults, and validates required fields. It uses the Viper
// library to handle configuration loading and precedence.
func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")
	viper.SetDefault("LOG_OUTPUT", "stdout")

	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "pr_sentinel")
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	viper.SetDefault("DB_CONN_MAX_IDLE_TIME", "5m")

	viper.SetDefault("GITHUB_PRIVATE_KEY_PATH", "keys/pr-sentinel-app.private-key.pem")
	viper.SetDefault("GITHUB_CLIENT_CACHE_TTL", "45m")

	viper.SetDefault("LLM_PROVIDER", "ollama")
	viper.SetDefault("OLLAMA_HOST", "http://localhost:11434")
	viper.SetDefault("GENERATOR_MODEL_NAME", "gemma3:latest")
	viper.SetDefault("LARGE_CONTEXT_MODEL_NAME", "gemini-2.5-flash")
	viper.SetDefault("LARGE_FILE_THRESHOLD", 10000)
	viper.SetDefault("AI_CALL_TIMEOUT", "3m")

	viper.SetDefault("MAX_WORKERS", 5)
	viper.SetDefault("JOB_MAX_ATTEMPTS", 3)
	viper.SetDefault("JOB_BACKOFF_BASE", "1s")
	viper.SetDefault("JOB_TIMEOUT", "10m")
	viper.SetDefault("FILE_PARALLELISM", 4)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if viper.GetInt64("GITHUB_APP_ID") == 0 {
		return nil, fmt.Errorf("GITHUB_APP_ID must be set")
	}
	if viper.GetString("GITHUB_WEBHOOK_SECRET") == "" {
		return nil, fmt.Errorf("GITHUB_WEBHOOK_SECRET must be set")
	}
	if viper.GetString("LLM_PROVIDER") == "gemini" && viper.GetString("GEMINI_API_KEY") == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY must be set for the gemini provider")
	}

	return &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Logging: logger.Config{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
			Output: viper.GetString("LOG_OUTPUT"),
		},
		Database: DBConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			Username:        viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Database:        viper.GetString("DB_NAME"),
			ConnMaxLifetime: viper.GetDuration("DB_CONN_MAX_LIFETIME"),
			ConnMaxIdleTime: viper.GetDuration("DB_CONN_MAX_IDLE_TIME"),
		},
		GitHub: GitHubConfig{
			AppID:          viper.GetInt64("GITHUB_APP_ID"),
			WebhookSecret:  viper.GetString("GITHUB_WEBHOOK_SECRET"),
			PrivateKeyPath: viper.GetString("GITHUB_PRIVATE_KEY_PATH"),
			ClientCacheTTL: viper.GetDuration("GITHUB_CLIENT_CACHE_TTL"),
		},
		AI: AIConfig{
			LLMProvider:        viper.GetString("LLM_PROVIDER"),
			OllamaHost:         viper.GetString("OLLAMA_HOST"),
			GeminiAPIKey:       viper.GetString("GEMINI_API_KEY"),
			GeneratorModel:     viper.GetString("GENERATOR_MODEL_NAME"),
			LargeContextModel:  viper.GetString("LARGE_CONTEXT_MODEL_NAME"),
			LargeFileThreshold: viper.GetInt("LARGE_FILE_THRESHOLD"),
			CallTimeout:        viper.GetDuration("AI_CALL_TIMEOUT"),
		},
		Queue: QueueConfig{
			MaxWorkers:   viper.GetInt("MAX_WORKERS"),
			MaxAttempts:  viper.GetInt("JOB_MAX_ATTEMPTS"),
			BackoffBase:  viper.GetDuration("JOB_BACKOFF_BASE"),
			JobTimeout:   viper.GetDuration("JOB_TIMEOUT"),
			FileParallel: viper.GetInt("FILE_PARALLELISM"),
		},
	}, nil
}
