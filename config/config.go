package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Task intent engine
	Model    ModelConfig
	Training TrainingConfig

	// Task assistant
	Gemini GeminiConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

// ModelConfig locates the artifact loaded once at startup.
type ModelConfig struct {
	ArtifactPath string
	CacheSize    int // 0 disables the classification cache
}

// TrainingConfig drives the offline trainer.
type TrainingConfig struct {
	DataPath    string
	Source      string // csv or sqlite
	Table       string
	TextColumn  string
	LabelColumn string
	OutputPath  string
	TestSize    float64
	Seed        uint64
	MinDF       int
	MaxIter     int
}

type GeminiConfig struct {
	APIKey        string
	Model         string
	APIURL        string
	Timeout       time.Duration
	RetryAttempts int
	RetryDelay    time.Duration
}

const (
	SourceCSV    = "csv"
	SourceSQLite = "sqlite"
)

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Model
	cfg.Model.ArtifactPath = viper.GetString("model.artifact_path")
	cfg.Model.CacheSize = viper.GetInt("model.cache_size")
	if artifact := viper.GetString("nextact_model_path"); artifact != "" {
		cfg.Model.ArtifactPath = artifact
	}

	// Training
	cfg.Training.DataPath = viper.GetString("training.data_path")
	cfg.Training.Source = strings.ToLower(viper.GetString("training.source"))
	cfg.Training.Table = viper.GetString("training.table")
	cfg.Training.TextColumn = viper.GetString("training.text_column")
	cfg.Training.LabelColumn = viper.GetString("training.label_column")
	cfg.Training.OutputPath = viper.GetString("training.output_path")
	cfg.Training.TestSize = viper.GetFloat64("training.test_size")
	cfg.Training.Seed = viper.GetUint64("training.seed")
	cfg.Training.MinDF = viper.GetInt("training.min_df")
	cfg.Training.MaxIter = viper.GetInt("training.max_iter")
	if cfg.Training.OutputPath == "" {
		cfg.Training.OutputPath = cfg.Model.ArtifactPath
	}

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.APIURL = viper.GetString("gemini.api_url")
	cfg.Gemini.Timeout = viper.GetDuration("gemini.timeout")
	cfg.Gemini.RetryAttempts = viper.GetInt("gemini.retry_attempts")
	cfg.Gemini.RetryDelay = viper.GetDuration("gemini.retry_delay")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges that would otherwise fail deep inside the server or trainer.
func (c *Config) Validate() error {
	var errs []error
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		errs = append(errs, fmt.Errorf("http_server.port %d out of range", c.HTTPServer.Port))
	}
	if c.Training.TestSize <= 0 || c.Training.TestSize >= 1 {
		errs = append(errs, fmt.Errorf("training.test_size %v must be in (0, 1)", c.Training.TestSize))
	}
	if c.Training.MinDF < 1 {
		errs = append(errs, fmt.Errorf("training.min_df %d must be at least 1", c.Training.MinDF))
	}
	if c.Training.MaxIter < 1 {
		errs = append(errs, fmt.Errorf("training.max_iter %d must be at least 1", c.Training.MaxIter))
	}
	if c.Training.Source != SourceCSV && c.Training.Source != SourceSQLite {
		errs = append(errs, fmt.Errorf("training.source %q must be %s or %s", c.Training.Source, SourceCSV, SourceSQLite))
	}
	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMin <= 0 {
		errs = append(errs, fmt.Errorf("rate_limit.requests_per_min must be positive when rate limiting is enabled"))
	}
	return errors.Join(errs...)
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 120)

	viper.SetDefault("model.artifact_path", "model/nextact_model.json.gz")
	viper.SetDefault("model.cache_size", 1024)

	viper.SetDefault("training.data_path", "model/nextact_todo_dataset.csv")
	viper.SetDefault("training.source", SourceCSV)
	viper.SetDefault("training.table", "examples")
	viper.SetDefault("training.text_column", "text")
	viper.SetDefault("training.label_column", "labels")
	viper.SetDefault("training.test_size", 0.2)
	viper.SetDefault("training.seed", 42)
	viper.SetDefault("training.min_df", 2)
	viper.SetDefault("training.max_iter", 2000)

	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("gemini.timeout", "30s")
	viper.SetDefault("gemini.retry_attempts", 3)
	viper.SetDefault("gemini.retry_delay", "500ms")
}
