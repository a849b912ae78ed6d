package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string `mapstructure:"port"`
	BackendURL  string `mapstructure:"backend_url"`
	DatabaseURL string `mapstructure:"database_url"`
	RedisAddr   string `mapstructure:"redis_addr"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	JWTSecret          string        `mapstructure:"jwt_secret"`
	TokenTTL           time.Duration `mapstructure:"token_ttl"`
	EditorUsername     string        `mapstructure:"editor_username"`
	EditorPassword     string        `mapstructure:"editor_password"`
	EditorPasswordHash string        `mapstructure:"editor_password_hash"`

	PriceMarkup         float64       `mapstructure:"price_markup"`
	FetchTimeout        time.Duration `mapstructure:"fetch_timeout"`
	CacheTTL            time.Duration `mapstructure:"cache_ttl"`
	SupplierConcurrency int           `mapstructure:"supplier_concurrency"`

	RateLimit float64 `mapstructure:"rate_limit"`
	RateBurst int     `mapstructure:"rate_burst"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", ":8080")
	v.SetDefault("backend_url", "http://localhost:8080/api")
	v.SetDefault("database_url", "")
	v.SetDefault("redis_addr", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("jwt_secret", "super-secret-key")
	v.SetDefault("token_ttl", "15m")
	v.SetDefault("editor_username", "editor")
	v.SetDefault("editor_password", "secret")
	v.SetDefault("editor_password_hash", "")
	v.SetDefault("price_markup", 1.5)
	v.SetDefault("fetch_timeout", "5s")
	v.SetDefault("cache_ttl", "10m")
	v.SetDefault("supplier_concurrency", 4)
	v.SetDefault("rate_limit", 5)
	v.SetDefault("rate_burst", 10)
}

// Load reads configuration from defaults, an optional config file and
// APM_-prefixed environment variables, in increasing priority. An empty
// path looks for config.yaml in the working directory.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("APM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("database_url", "APM_DATABASE_URL", "DATABASE_URL")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.BackendURL == "" {
		return errors.New("backend_url is required")
	}
	if c.PriceMarkup <= 0 {
		return fmt.Errorf("price_markup must be greater than zero, got %v", c.PriceMarkup)
	}
	if c.SupplierConcurrency <= 0 {
		return fmt.Errorf("supplier_concurrency must be greater than zero, got %d", c.SupplierConcurrency)
	}
	return nil
}
