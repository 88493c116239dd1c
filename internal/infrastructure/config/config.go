package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Credits     CreditsConfig  `mapstructure:"credits"`
	Platform    PlatformConfig `mapstructure:"platform"`
	Session     SessionConfig  `mapstructure:"session"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// CreditsConfig contains the credit amounts and classification settings
type CreditsConfig struct {
	InitialFree     int64    `mapstructure:"initialFree"`
	InitialPaid     int64    `mapstructure:"initialPaid"`
	MonthlyFree     int64    `mapstructure:"monthlyFree"`
	MonthlyPaid     int64    `mapstructure:"monthlyPaid"`
	PaidKeywords    []string `mapstructure:"paidKeywords"`
	PurchaseMin     int64    `mapstructure:"purchaseMin"`
	PurchaseMax     int64    `mapstructure:"purchaseMax"`
	HistoryPageSize int      `mapstructure:"historyPageSize"`
}

// PlatformConfig contains the community platform API settings
type PlatformConfig struct {
	BaseURL  string        `mapstructure:"baseUrl"`
	APIToken string        `mapstructure:"apiToken"`
	Timeout  time.Duration `mapstructure:"timeout"` // seconds
}

// SessionConfig contains member session and admin token settings
type SessionConfig struct {
	JWTSecret     string        `mapstructure:"jwtSecret"`
	MemberTTL     time.Duration `mapstructure:"memberTtl"` // hours
	AdminTTL      time.Duration `mapstructure:"adminTtl"`  // hours
	AdminKey      string        `mapstructure:"adminKey"`
	SweepInterval time.Duration `mapstructure:"sweepInterval"` // minutes
}
