package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix("MC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			}
		}
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.allowedOrigins", []string{"*"})

	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")

	v.SetDefault("credits.initialFree", 10)
	v.SetDefault("credits.initialPaid", 100)
	v.SetDefault("credits.monthlyFree", 10)
	v.SetDefault("credits.monthlyPaid", 100)
	v.SetDefault("credits.paidKeywords", []string{"premium", "paid", "pro"})
	v.SetDefault("credits.purchaseMin", 1)
	v.SetDefault("credits.purchaseMax", 10000)
	v.SetDefault("credits.historyPageSize", 50)

	v.SetDefault("platform.timeout", 15) // seconds

	v.SetDefault("session.memberTtl", 24)     // hours
	v.SetDefault("session.adminTtl", 8)       // hours
	v.SetDefault("session.sweepInterval", 10) // minutes
}

// getEnvironment determines the environment from the MC_ENV variable
func getEnvironment() string {
	env := os.Getenv("MC_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures sensitive environment variables override
// configuration file values
func processEnvOverrides(v *viper.Viper) {
	overrides := map[string]string{
		"MC_DB_HOST":            "database.host",
		"MC_DB_PORT":            "database.port",
		"MC_DB_USERNAME":        "database.username",
		"MC_DB_PASSWORD":        "database.password",
		"MC_DB_NAME":            "database.database",
		"MC_DB_SSL_MODE":        "database.sslMode",
		"MC_PLATFORM_API_TOKEN": "platform.apiToken",
		"MC_PLATFORM_BASE_URL":  "platform.baseUrl",
		"MC_SESSION_JWT_SECRET": "session.jwtSecret",
		"MC_SESSION_ADMIN_KEY":  "session.adminKey",
	}
	for envKey, configKey := range overrides {
		if value := os.Getenv(envKey); value != "" {
			v.Set(configKey, value)
		}
	}
}

// processDurations converts raw numeric config values into durations with
// their documented units
func processDurations(config *Config) {
	config.Server.ReadTimeout = toUnit(config.Server.ReadTimeout, time.Second)
	config.Server.WriteTimeout = toUnit(config.Server.WriteTimeout, time.Second)
	config.Server.IdleTimeout = toUnit(config.Server.IdleTimeout, time.Second)
	config.Server.ReadHeaderTimeout = toUnit(config.Server.ReadHeaderTimeout, time.Second)
	config.Server.ShutdownTimeout = toUnit(config.Server.ShutdownTimeout, time.Second)

	config.Database.ConnMaxLifetime = toUnit(config.Database.ConnMaxLifetime, time.Minute)
	config.Database.ConnMaxIdleTime = toUnit(config.Database.ConnMaxIdleTime, time.Minute)

	config.Platform.Timeout = toUnit(config.Platform.Timeout, time.Second)

	config.Session.MemberTTL = toUnit(config.Session.MemberTTL, time.Hour)
	config.Session.AdminTTL = toUnit(config.Session.AdminTTL, time.Hour)
	config.Session.SweepInterval = toUnit(config.Session.SweepInterval, time.Minute)
}

// toUnit interprets a bare config number as a count of the given unit.
// Values at or above the unit already carry an explicit duration suffix
// from the config file and pass through unchanged.
func toUnit(d time.Duration, unit time.Duration) time.Duration {
	if d > 0 && d < unit {
		return time.Duration(int64(d) * int64(unit))
	}
	return d
}
