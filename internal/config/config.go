package config

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	AppPort string `env:"APP_PORT, default=8080"`

	// DBDriver selects the gorm dialect: "mysql" or "postgres".
	DBDriver      string `env:"DB_DRIVER, default=mysql"`
	DBAutoMigrate bool   `env:"DB_AUTO_MIGRATE, default=true"`

	MySQLHost string `env:"MYSQL_HOST, default=mysql"`
	MySQLPort string `env:"MYSQL_PORT, default=3306"`
	MySQLDB   string `env:"MYSQL_DB, default=toolrental"`
	MySQLUser string `env:"MYSQL_USER, default=toolrental"`
	MySQLPass string `env:"MYSQL_PASS, default=toolrental"`

	PostgresDSN string `env:"POSTGRES_DSN"`

	RedisAddr string `env:"REDIS_ADDR, default=redis:6379"`
	RedisDB   int    `env:"REDIS_DB, default=0"`

	JWTSecret string `env:"JWT_SECRET"`

	LogLevel  string `env:"LOG_LEVEL, default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	IdempTTLSecs int `env:"IDEMPOTENCY_TTL_SECONDS, default=300"`
}

// Load reads the process environment.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads configuration through l; tests pass envconfig.MapLookuper.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var c Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &c, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	switch c.DBDriver {
	case "mysql":
		if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
			return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
		}
		// ensure port is valid
		if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
			return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return errors.New("missing POSTGRES_DSN")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if len(c.JWTSecret) < 16 {
		return errors.New("JWT_SECRET must be at least 16 bytes")
	}
	if c.IdempTTLSecs <= 0 {
		return errors.New("IDEMPOTENCY_TTL_SECONDS must be positive")
	}
	return nil
}

func (c *Config) IdempotencyTTL() time.Duration {
	return time.Duration(c.IdempTTLSecs) * time.Second
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime and loc=UTC keep DATE columns at UTC midnight
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=UTC&charset=utf8mb4",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}

// DSN returns the connection string for the selected driver.
func (c *Config) DSN() string {
	if c.DBDriver == "postgres" {
		return c.PostgresDSN
	}
	return c.MySQLDSN()
}
