package config

import (
	"fmt"
	"os"
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

	// Application sections
	Storage   StorageConfig
	Session   SessionConfig
	Auth      AuthConfig
	Dashboard DashboardConfig
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

// StorageConfig locates the key-value store and the slot holding the list.
type StorageConfig struct {
	Dir  string
	Slot string
}

type SessionConfig struct {
	TTL         time.Duration
	MaxSessions int
	CookieName  string
	Secure      bool
}

type AuthConfig struct {
	RateLimitPerMin int
}

type DashboardConfig struct {
	DefaultDailyCount int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/taskflow/
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile is Load with an explicit config file. An empty path falls back to
// the search paths.
func LoadFile(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/taskflow/")
	}

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

	// Storage
	cfg.Storage.Dir = os.ExpandEnv(viper.GetString("storage.dir"))
	cfg.Storage.Slot = viper.GetString("storage.slot")

	// Sessions
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.MaxSessions = viper.GetInt("session.max_sessions")
	cfg.Session.CookieName = viper.GetString("session.cookie_name")
	cfg.Session.Secure = viper.GetBool("session.secure")

	cfg.Auth.RateLimitPerMin = viper.GetInt("auth.rate_limit_per_min")
	cfg.Dashboard.DefaultDailyCount = viper.GetInt("dashboard.default_daily_count")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("storage.dir", "data")
	viper.SetDefault("storage.slot", "tasks")
	viper.SetDefault("session.ttl", "24h")
	viper.SetDefault("session.max_sessions", 1000)
	viper.SetDefault("session.cookie_name", "taskflow_session")
	viper.SetDefault("session.secure", false)
	viper.SetDefault("auth.rate_limit_per_min", 30)
	viper.SetDefault("dashboard.default_daily_count", 5)
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive, got %d", cfg.HTTPServer.Port)
	}
	if cfg.Storage.Dir == "" {
		return fmt.Errorf("storage.dir is required")
	}
	if cfg.Storage.Slot == "" {
		return fmt.Errorf("storage.slot is required")
	}
	if n := cfg.Dashboard.DefaultDailyCount; n < 1 || n > 10 {
		return fmt.Errorf("dashboard.default_daily_count must be between 1 and 10, got %d", n)
	}
	if cfg.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be positive")
	}
	return nil
}
