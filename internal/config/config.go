// Package config provides configuration loading and validation.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Drawer    DrawerConfig    `mapstructure:"drawer"`
	Data      DataConfig      `mapstructure:"data"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	LogLevel    string `mapstructure:"log_level"`
	LogFile     string `mapstructure:"log_file"` // TUI mode only; empty discards logs
}

// DrawerConfig holds metric details drawer settings.
type DrawerConfig struct {
	LoadingDelay         time.Duration `mapstructure:"loading_delay"`
	Width                int           `mapstructure:"width"` // columns
	DefaultTimeframe     string        `mapstructure:"default_timeframe"`
	ResetTimeframeOnOpen bool          `mapstructure:"reset_timeframe_on_open"`
}

// DataConfig points at the tracked project fixtures.
type DataConfig struct {
	ProjectsFile string `mapstructure:"projects_file"`
}

// TelemetryConfig holds observability configuration.
type TelemetryConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	ServiceName    string `mapstructure:"service_name"`
	TraceProvider  string `mapstructure:"trace_provider"` // zipkin, console, honeycomb, newrelic
	OTLPEndpoint   string `mapstructure:"otlp_endpoint"`
	PrometheusPort int    `mapstructure:"prometheus_port"`
	HealthPort     int    `mapstructure:"health_port"` // 0 disables the health server
}

// Load loads configuration from file and environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("TRK")
	v.AutomaticEnv()

	bindEnvVars(v)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, use env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func bindEnvVars(v *viper.Viper) {
	// App
	v.BindEnv("app.name", "TRK_APP_NAME", "SERVICE_NAME")
	v.BindEnv("app.environment", "TRK_ENVIRONMENT", "ENVIRONMENT")
	v.BindEnv("app.log_level", "TRK_LOG_LEVEL", "LOG_LEVEL")
	v.BindEnv("app.log_file", "TRK_LOG_FILE")

	// Drawer
	v.BindEnv("drawer.loading_delay", "TRK_DRAWER_LOADING_DELAY")
	v.BindEnv("drawer.width", "TRK_DRAWER_WIDTH")
	v.BindEnv("drawer.default_timeframe", "TRK_DRAWER_TIMEFRAME")
	v.BindEnv("drawer.reset_timeframe_on_open", "TRK_DRAWER_RESET_TIMEFRAME")

	// Data
	v.BindEnv("data.projects_file", "TRK_PROJECTS_FILE")

	// Telemetry
	v.BindEnv("telemetry.enabled", "TRK_OTEL_ENABLED", "OTEL_ENABLED")
	v.BindEnv("telemetry.service_name", "TRK_OTEL_SERVICE_NAME", "OTEL_SERVICE_NAME")
	v.BindEnv("telemetry.trace_provider", "TRK_OTEL_TRACE_PROVIDER")
	v.BindEnv("telemetry.otlp_endpoint", "TRK_OTEL_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT")
	v.BindEnv("telemetry.prometheus_port", "TRK_PROMETHEUS_PORT")
	v.BindEnv("telemetry.health_port", "TRK_HEALTH_PORT")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "project-tracker")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("drawer.loading_delay", "500ms")
	v.SetDefault("drawer.width", 44)
	v.SetDefault("drawer.default_timeframe", "7d")
	v.SetDefault("drawer.reset_timeframe_on_open", false)

	v.SetDefault("data.projects_file", "projects.json")

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.service_name", "project-tracker")
	v.SetDefault("telemetry.trace_provider", "zipkin")
	v.SetDefault("telemetry.prometheus_port", 9090)
	v.SetDefault("telemetry.health_port", 8081)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Drawer.LoadingDelay < 0 {
		return fmt.Errorf("drawer.loading_delay cannot be negative")
	}
	if c.Drawer.Width < 20 {
		return fmt.Errorf("drawer.width must be at least 20 columns, got %d", c.Drawer.Width)
	}
	if c.Data.ProjectsFile == "" {
		return fmt.Errorf("data.projects_file is required")
	}
	if c.Telemetry.Enabled && c.Telemetry.PrometheusPort <= 0 {
		return fmt.Errorf("telemetry.prometheus_port must be positive")
	}
	if c.Telemetry.HealthPort < 0 {
		return fmt.Errorf("telemetry.health_port cannot be negative")
	}
	return nil
}
