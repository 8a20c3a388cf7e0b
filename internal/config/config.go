package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// envPrefix namespaces the environment variables, e.g. MDAPI_PATHS_FITRS_DIR.
const envPrefix = "MDAPI"

// Config represents the complete application configuration
type Config struct {
	Paths     PathsConfig     `yaml:"paths" envconfig:"PATHS"`
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Liquidity LiquidityConfig `yaml:"liquidity" envconfig:"LIQUIDITY"`
	Database  DatabaseConfig  `yaml:"database" envconfig:"DATABASE"`
}

// PathsConfig contains the source and output directories. The two source
// directories are populated externally and refreshed periodically; the
// pipeline only reads them.
type PathsConfig struct {
	// FirdsDir holds the instrument reference extracts. Optional; the batch
	// pipeline reads only the transparency extracts.
	FirdsDir string `yaml:"firds_dir" envconfig:"FIRDS_DIR"`
	// FitrsDir holds the transparency and liquidity extracts.
	FitrsDir  string `yaml:"fitrs_dir" envconfig:"FITRS_DIR" validate:"required"`
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR" validate:"required"`
	LogsDir   string `yaml:"logs_dir" envconfig:"LOGS_DIR"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// LiquidityConfig carries the equity liquidity inference thresholds.
type LiquidityConfig struct {
	MinVolume float64 `yaml:"min_volume" envconfig:"MIN_VOLUME" validate:"gt=0"`
	MinCount  int64   `yaml:"min_count" envconfig:"MIN_COUNT" validate:"gt=0"`
}

// DatabaseConfig contains the optional Postgres settings. With Enabled false
// the pipeline runs against the in-memory store.
type DatabaseConfig struct {
	Enabled      bool          `yaml:"enabled" envconfig:"ENABLED"`
	DSN          string        `yaml:"dsn" envconfig:"DSN"`
	MaxOpenConns int           `yaml:"max_open_conns" envconfig:"MAX_OPEN_CONNS"`
	MaxIdleConns int           `yaml:"max_idle_conns" envconfig:"MAX_IDLE_CONNS"`
	QueryTimeout time.Duration `yaml:"query_timeout" envconfig:"QUERY_TIMEOUT"`
}

// DefaultConfig returns the built-in defaults. The liquidity values mirror
// the liquid-market criteria for shares: one million in turnover or 250
// transactions.
func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			FirdsDir:  "data/firds",
			FitrsDir:  "data/fitrs",
			OutputDir: "output",
			LogsDir:   "logs",
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/app.log",
		},
		Liquidity: LiquidityConfig{
			MinVolume: 1_000_000,
			MinCount:  250,
		},
		Database: DatabaseConfig{
			Enabled:      false,
			MaxOpenConns: 10,
			MaxIdleConns: 5,
			QueryTimeout: 30 * time.Second,
		},
	}
}

// Load loads configuration from an optional YAML file and the environment.
// Environment variables win over file values, which win over the defaults.
func Load(configFile string) (*Config, error) {
	cfg := DefaultConfig()

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			if err := loadFromFile(configFile, &cfg); err != nil {
				return nil, fmt.Errorf("failed to load config from file: %w", err)
			}
		}
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile overlays configuration from a YAML file
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks the configuration against the struct validation rules.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if c.Database.Enabled && c.Database.DSN == "" {
		return fmt.Errorf("database enabled but DSN is empty")
	}
	return nil
}
