package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	pkgdb "github.com/Skotchmaster/salon_pos/pkg/db"
)

type Config struct {
	ServiceName string `envconfig:"SERVICE_NAME" default:"pos"`
	ServerPort  int    `envconfig:"SERVER_PORT"  default:"3001"`
	LogLevel    string `envconfig:"LOG_LEVEL"    default:"info"`

	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
	DBDriver    string `envconfig:"DB_DRIVER"    default:"pgx"`

	JWTSecret string        `envconfig:"JWT_SECRET" required:"true"`
	TokenTTL  time.Duration `envconfig:"TOKEN_TTL"  default:"8h"`

	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`

	KafkaBrokers []string `envconfig:"KAFKA_BROKERS"`

	ESURL      string `envconfig:"ES_URL"`
	ESUser     string `envconfig:"ES_USER"`
	ESPassword string `envconfig:"ES_PASSWORD"`
	ESIndex    string `envconfig:"ES_INDEX" default:"products"`

	AdminUsername string `envconfig:"ADMIN_USERNAME" default:"admin"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"admin123"`

	ReportTZ string `envconfig:"REPORT_TZ" default:"UTC"`
}

// Load reads an optional .env file and then the process environment.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load .env: %w", err)
		}
		slog.Info("no .env file found, using process environment")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}

	cfg.DBDriver = pkgdb.NormalizeDriver(cfg.DBDriver)
	switch cfg.DBDriver {
	case pkgdb.DriverPgx, pkgdb.DriverPq, pkgdb.DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be positive, got %s", cfg.TokenTTL)
	}

	return &cfg, nil
}

func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.ReportTZ)
	if err != nil {
		return nil, fmt.Errorf("REPORT_TZ %q: %w", c.ReportTZ, err)
	}
	return loc, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.ServerPort)
}
