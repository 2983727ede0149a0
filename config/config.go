package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/servdubai/quote-service/internal/installments"
	"github.com/servdubai/quote-service/internal/notify"
	"github.com/servdubai/quote-service/internal/pricing"
)

// Config holds the application configuration
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	RateLimit    RateLimitConfig    `mapstructure:"rate_limit"`
	Logging      LoggingConfig      `mapstructure:"logging"`
	Telemetry    TelemetryConfig    `mapstructure:"telemetry"`
	Pricing      pricing.Config     `mapstructure:"pricing"`
	Installments InstallmentsConfig `mapstructure:"installments"`
	WhatsApp     notify.Numbers     `mapstructure:"whatsapp"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	Host         string        `mapstructure:"host"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	BurstSize         int     `mapstructure:"burst_size"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Format  string `mapstructure:"format"`
	NoColor bool   `mapstructure:"no_color"`
}

// TelemetryConfig holds OpenTelemetry export configuration
type TelemetryConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"`
}

// InstallmentsConfig holds the payment-splitting policy per service line
type InstallmentsConfig struct {
	Construction installments.Config `mapstructure:"construction"`
	Resident     installments.Config `mapstructure:"resident"`
}

var globalConfig *Config

// Load loads the configuration from file, .env, and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Read config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// Load .env file
	if err := loadEnvFile(); err != nil {
		// .env is optional, log but don't fail
		log.Warn().Err(err).Msg("Warning: .env file not loaded")
	}

	// Enable environment variable override
	v.AutomaticEnv()
	v.SetEnvPrefix("QUOTE_SERVICE")

	// Bind env keys for nested config
	bindEnvVars(v)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, use defaults and env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Pricing.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pricing config: %w", err)
	}
	if err := cfg.Installments.Construction.Validate(); err != nil {
		return nil, fmt.Errorf("invalid construction installments config: %w", err)
	}
	if err := cfg.Installments.Resident.Validate(); err != nil {
		return nil, fmt.Errorf("invalid resident installments config: %w", err)
	}

	globalConfig = &cfg
	return &cfg, nil
}

// loadEnvFile loads a .env file by parsing KEY=VALUE lines and setting them
// as environment variables
func loadEnvFile() error {
	envPaths := []string{".", "./config"}

	for _, path := range envPaths {
		envFile := fmt.Sprintf("%s/.env", path)
		if _, err := os.Stat(envFile); err == nil {
			if err := loadDotEnvFile(envFile); err == nil {
				return nil
			}
		}
	}
	return fmt.Errorf("no .env file found")
}

// loadDotEnvFile reads a .env file and sets environment variables
func loadDotEnvFile(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse KEY=VALUE
		parts := strings.SplitN(line, "=", 2)
		if len(parts) == 2 {
			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])
			// Remove quotes if present
			value = strings.Trim(value, "\"'")
			os.Setenv(key, value)
		}
	}
	return scanner.Err()
}

// bindEnvVars binds environment variables to config keys
func bindEnvVars(v *viper.Viper) {
	// Server
	v.BindEnv("server.port", "PORT")
	v.BindEnv("server.host", "HOST")

	// Logging
	v.BindEnv("logging.level", "LOG_LEVEL")

	// Telemetry
	v.BindEnv("telemetry.enabled", "OTEL_ENABLED")
	v.BindEnv("telemetry.endpoint", "OTEL_EXPORTER_OTLP_ENDPOINT")

	// WhatsApp numbers
	v.BindEnv("whatsapp.business", "WHATSAPP_BUSINESS_NUMBER")
	v.BindEnv("whatsapp.team", "WHATSAPP_TEAM_NUMBER")
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)

	// Rate limit defaults
	v.SetDefault("rate_limit.requests_per_second", 10.0)
	v.SetDefault("rate_limit.burst_size", 20)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.no_color", false)

	// Telemetry defaults
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.endpoint", "localhost:4317")

	// Pricing policy defaults
	p := pricing.DefaultConfig()
	v.SetDefault("pricing.bulk_min_units", p.BulkMinUnits)
	v.SetDefault("pricing.bulk_rate", p.BulkRate)
	v.SetDefault("pricing.developer_min_units", p.DeveloperMinUnits)
	v.SetDefault("pricing.developer_rate", p.DeveloperRate)
	v.SetDefault("pricing.contract_rate", p.ContractRate)
	v.SetDefault("pricing.referral_rate", p.ReferralRate)
	v.SetDefault("pricing.urgent_surcharge", p.UrgentSurcharge)
	v.SetDefault("pricing.weekend_surcharge", p.WeekendSurcharge)
	v.SetDefault("pricing.after_hours_surcharge", p.AfterHoursSurcharge)

	// Installment policy defaults
	ci := installments.ConstructionDefaults()
	v.SetDefault("installments.construction.threshold", ci.Threshold)
	v.SetDefault("installments.construction.advance_rate", ci.AdvanceRate)
	v.SetDefault("installments.construction.milestone_threshold", ci.MilestoneThreshold)
	v.SetDefault("installments.construction.milestones_enabled", ci.MilestonesEnabled)

	ri := installments.ResidentDefaults()
	v.SetDefault("installments.resident.threshold", ri.Threshold)
	v.SetDefault("installments.resident.advance_rate", ri.AdvanceRate)
	v.SetDefault("installments.resident.milestone_threshold", ri.MilestoneThreshold)
	v.SetDefault("installments.resident.milestones_enabled", ri.MilestonesEnabled)

	// WhatsApp defaults
	n := notify.DefaultNumbers()
	v.SetDefault("whatsapp.business", n.Business)
	v.SetDefault("whatsapp.team", n.Team)
}

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}
