package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Log      LogConfig      `mapstructure:"log"`
	Fees     FeesConfig     `mapstructure:"fees"`
	Ledger   LedgerConfig   `mapstructure:"ledger"`
	Events   EventsConfig   `mapstructure:"events"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // debug, release, test
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// JWTConfig verifies bearer tokens minted by the identity service.
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// FeesConfig controls fee-rule selection and the eligibility gate.
type FeesConfig struct {
	// DefaultRegion is used for every pricing request until wallets carry a region.
	DefaultRegion    string        `mapstructure:"default_region"`
	CacheTTL         time.Duration `mapstructure:"cache_ttl"`
	BalanceTolerance string        `mapstructure:"balance_tolerance"`
}

// Tolerance parses BalanceTolerance, falling back to 0.01 on bad input.
func (f FeesConfig) Tolerance() decimal.Decimal {
	d, err := decimal.NewFromString(f.BalanceTolerance)
	if err != nil || d.IsNegative() {
		return decimal.NewFromFloat(0.01)
	}
	return d
}

// LedgerConfig holds reference generation settings.
type LedgerConfig struct {
	TransactionPrefix string `mapstructure:"transaction_prefix"`
	RevenuePrefix     string `mapstructure:"revenue_prefix"`
	ReferenceAttempts int    `mapstructure:"reference_attempts"`
}

// EventsConfig controls post-commit event publishing over Redis pub/sub.
type EventsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Channel string `mapstructure:"channel"`
}

var defaults = map[string]any{
	"server.host":             "0.0.0.0",
	"server.port":             8080,
	"server.mode":             "debug",
	"server.shutdown_timeout": "10s",

	"database.host":              "localhost",
	"database.port":              5432,
	"database.user":              "postgres",
	"database.password":          "postgres",
	"database.dbname":            "wallet_ledger",
	"database.sslmode":           "disable",
	"database.max_conns":         20,
	"database.min_conns":         5,
	"database.conn_max_lifetime": "30m",

	"redis.host":     "localhost",
	"redis.port":     6379,
	"redis.password": "",
	"redis.db":       0,

	"jwt.secret": "",
	"jwt.issuer": "wallet-identity",

	"log.level":  "info",
	"log.pretty": false,

	"fees.default_region":    "GLOBAL",
	"fees.cache_ttl":         "5m",
	"fees.balance_tolerance": "0.01",

	"ledger.transaction_prefix": "TXN",
	"ledger.revenue_prefix":     "REV",
	"ledger.reference_attempts": 5,

	"events.enabled": true,
	"events.channel": "ledger_events",
}

// Load builds the configuration from defaults, an optional YAML file and
// WLG_-prefixed environment variables, in increasing precedence. A .env file
// in the working directory is applied to the environment first.
// Nested keys map with underscores: ledger.revenue_prefix <- WLG_LEDGER_REVENUE_PREFIX.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env file: %w", err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if path == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	} else {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("WLG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// A missing file is fine when running purely off the environment.
	var notFound viper.ConfigFileNotFoundError
	if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Ledger.ReferenceAttempts < 1:
		return fmt.Errorf("ledger.reference_attempts must be at least 1, got %d", c.Ledger.ReferenceAttempts)
	case c.Ledger.TransactionPrefix == "" || c.Ledger.RevenuePrefix == "":
		return errors.New("ledger reference prefixes must not be empty")
	case c.Fees.CacheTTL < 0:
		return fmt.Errorf("fees.cache_ttl must not be negative, got %s", c.Fees.CacheTTL)
	case c.Events.Enabled && c.Events.Channel == "":
		return errors.New("events.channel is required when events are enabled")
	}
	return nil
}
