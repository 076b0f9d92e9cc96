package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"trackfit-companion/internal/model"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// TrackFit specifics
	Storage StorageConfig
	Backend BackendConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port           int
	Mode           string
	AllowedOrigins []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
	MaxClients     int
}

// StorageConfig selects where the checklist and session are persisted.
type StorageConfig struct {
	Driver     model.StorageDriver
	SQLitePath string
	CacheSize  int           // 0 disables the read cache
	CacheTTL   time.Duration // 0 keeps entries until evicted by size
}

type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/trackfit/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/trackfit/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.AllowedOrigins = splitList(v.GetString("http_server.allowed_origins"))
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.MaxClients = v.GetInt("rate_limit.max_clients")

	// Storage
	cfg.Storage.Driver = model.StorageDriver(strings.ToLower(v.GetString("storage.driver")))
	cfg.Storage.SQLitePath = v.GetString("storage.sqlite_path")
	if p := v.GetString("trackfit_sqlite_path"); p != "" {
		cfg.Storage.SQLitePath = p
	}
	cfg.Storage.CacheSize = v.GetInt("storage.cache_size")
	cfg.Storage.CacheTTL = v.GetDuration("storage.cache_ttl")

	// Backend
	cfg.Backend.BaseURL = v.GetString("backend.base_url")
	if u := v.GetString("trackfit_backend_url"); u != "" {
		cfg.Backend.BaseURL = u
	}
	cfg.Backend.Timeout = v.GetDuration("backend.timeout")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", string(model.EnvironmentDevelopment))
	v.SetDefault("http_server.port", 8090)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.allowed_origins", "*")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 120)
	v.SetDefault("rate_limit.max_clients", 1000)

	v.SetDefault("storage.driver", string(model.StorageSQLite))
	v.SetDefault("storage.sqlite_path", "data/trackfit.db")
	v.SetDefault("storage.cache_size", 256)
	v.SetDefault("storage.cache_ttl", "5m")

	v.SetDefault("backend.base_url", "http://localhost:8080/api")
	v.SetDefault("backend.timeout", "10s")
}

func (cfg *Config) validate() error {
	switch cfg.Storage.Driver {
	case model.StorageMemory:
	case model.StorageSQLite:
		if cfg.Storage.SQLitePath == "" {
			return fmt.Errorf("storage.sqlite_path is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unknown storage.driver %q", cfg.Storage.Driver)
	}
	if cfg.Backend.BaseURL == "" {
		return fmt.Errorf("backend.base_url is required")
	}
	if cfg.Storage.CacheSize < 0 {
		return fmt.Errorf("storage.cache_size must not be negative")
	}
	return nil
}

// splitList splits a comma separated value, since env vars cannot carry arrays.
func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
