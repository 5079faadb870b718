package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envPrefix scopes environment overrides, e.g. MOTORSEED_API_BASE_URL.
const envPrefix = "MOTORSEED"

// Config is the whole configuration of both binaries.
type Config struct {
	API      APIConfig      `mapstructure:"api"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Seed     SeedConfig     `mapstructure:"seed"`
	Baseline BaselineConfig `mapstructure:"baseline"`
	Log      LogConfig      `mapstructure:"log"`
	Report   ReportConfig   `mapstructure:"report"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Mock     MockConfig     `mapstructure:"mock"`
}

// APIConfig addresses the remote motor-diagnostics service.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"` // 0 keeps the HTTP client default
}

// AuthConfig holds the demo login.
type AuthConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// SeedConfig points at an optional YAML catalog replacing the built-in demo data.
type SeedConfig struct {
	File string `mapstructure:"file"`
}

// BaselineConfig bounds the wait for asynchronous baseline learning.
type BaselineConfig struct {
	PollInterval time.Duration `mapstructure:"poll_interval"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// ReportConfig enables the run report export (.xlsx or .pdf).
type ReportConfig struct {
	Path string `mapstructure:"path"`
}

// MetricsConfig enables the Prometheus textfile export.
type MetricsConfig struct {
	Textfile string `mapstructure:"textfile"`
}

// MockConfig configures the local stand-in of the motor API.
type MockConfig struct {
	Port       string        `mapstructure:"port"`
	DBPath     string        `mapstructure:"db_path"`
	SigningKey string        `mapstructure:"signing_key"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
	LearnDelay time.Duration `mapstructure:"learn_delay"`
	Username   string        `mapstructure:"username"`
	Password   string        `mapstructure:"password"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "http://localhost:5000/api")
	v.SetDefault("api.timeout", 0)

	v.SetDefault("auth.username", "admin")
	v.SetDefault("auth.password", "admin123")

	v.SetDefault("seed.file", "")

	v.SetDefault("baseline.poll_interval", time.Second)
	v.SetDefault("baseline.timeout", 30*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("report.path", "")
	v.SetDefault("metrics.textfile", "")

	v.SetDefault("mock.port", "5000")
	v.SetDefault("mock.db_path", "mockapi.db")
	v.SetDefault("mock.signing_key", "motor-mock-signing-key")
	v.SetDefault("mock.token_ttl", time.Hour)
	v.SetDefault("mock.learn_delay", 2*time.Second)
	v.SetDefault("mock.username", "admin")
	v.SetDefault("mock.password", "admin123")
}

// Load reads .env (if present), configs/config.yml (if present) and
// MOTORSEED_* environment variables, on top of the defaults.
func Load(paths ...string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yml")
	if len(paths) == 0 {
		paths = []string{"configs"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the binaries cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return errors.New("config: api.base_url is required")
	}
	if c.Auth.Username == "" {
		return errors.New("config: auth.username is required")
	}
	if c.Baseline.PollInterval <= 0 {
		return errors.New("config: baseline.poll_interval must be positive")
	}
	if c.Baseline.Timeout < c.Baseline.PollInterval {
		return errors.New("config: baseline.timeout must be >= baseline.poll_interval")
	}
	return nil
}
