package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for occupancy-engine.
// Configuration can come from YAML file (config.yaml) or environment variables.
// Environment variables always override YAML values for fields that support both.
// Secrets (API keys, database password) must only come from environment variables.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"PORT" env-default:"5000"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// Database configuration (PostgreSQL)
	Database DatabaseConfig `yaml:"database"`

	// AI model configuration for the classification and acknowledgment calls
	AI AIConfig `yaml:"ai"`

	// Corpus holds the historical training corpus settings
	Corpus CorpusConfig `yaml:"corpus"`
}

// DatabaseConfig holds PostgreSQL database configuration.
type DatabaseConfig struct {
	Host           string `yaml:"host" env:"PGHOST" env-default:"localhost"`
	Port           int    `yaml:"port" env:"PGPORT" env-default:"5432"`
	User           string `yaml:"user" env:"PGUSER" env-default:"occupancy"`
	Password       string `yaml:"-" env:"PGPASSWORD"` // Secret - not in YAML
	Database       string `yaml:"database" env:"PGDATABASE" env-default:"occupancy_engine"`
	MaxConnections int32  `yaml:"max_connections" env:"PGMAX_CONNECTIONS" env-default:"25"`
	SSLMode        string `yaml:"ssl_mode" env:"PGSSLMODE" env-default:"disable"`
	MigrationsPath string `yaml:"migrations_path" env:"PGMIGRATIONS_PATH" env-default:"migrations"`
}

// AIConfig holds LLM transport configuration.
// Provider selects the transport: "openai" (any OpenAI-compatible endpoint),
// "anthropic", or "gemini".
type AIConfig struct {
	Provider string `yaml:"provider" env:"AI_PROVIDER" env-default:"gemini"`
	BaseURL  string `yaml:"base_url" env:"AI_BASE_URL" env-default:""`
	APIKey   string `yaml:"-" env:"AI_API_KEY"` // Secret - not in YAML

	// Model used for classification calls (structured JSON output).
	Model string `yaml:"model" env:"AI_MODEL" env-default:"gemini-2.5-pro"`

	// AckModel is the smaller model used for correction acknowledgments.
	// Falls back to Model when empty.
	AckModel string `yaml:"ack_model" env:"AI_ACK_MODEL" env-default:"gemini-2.5-flash"`

	// RequestTimeoutSeconds bounds a single LLM call at the transport layer.
	RequestTimeoutSeconds int `yaml:"request_timeout_seconds" env:"AI_REQUEST_TIMEOUT_SECONDS" env-default:"60"`
}

// CorpusConfig holds the training corpus source settings.
type CorpusConfig struct {
	// TrainingDataPath points at the CSV of historical
	// (business description, correct occupancy) pairs.
	TrainingDataPath string `yaml:"training_data_path" env:"CORPUS_TRAINING_DATA_PATH" env-default:"data/training_examples.csv"`
}

// Load reads configuration from config.yaml with environment variable overrides.
// When config.yaml does not exist, configuration comes from environment
// variables alone. The version parameter is injected at build time.
func Load(version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if _, err := os.Stat("config.yaml"); err == nil {
		if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
			return nil, fmt.Errorf("failed to read config.yaml: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.AI.Provider {
	case "openai", "anthropic", "gemini":
	default:
		return fmt.Errorf("unsupported AI provider %q", c.AI.Provider)
	}
	if c.AI.Model == "" {
		return fmt.Errorf("ai model is required")
	}
	return nil
}

// EffectiveAckModel returns the acknowledgment model, falling back to the primary model.
func (c *AIConfig) EffectiveAckModel() string {
	if c.AckModel != "" {
		return c.AckModel
	}
	return c.Model
}

// ConnectionString returns a PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}
