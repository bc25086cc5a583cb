package configs

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is the typed view of the process environment.
type Config struct {
	DBDriver    string `env:"DB_DRIVER" envDefault:"postgres"`
	DatabaseURL string `env:"DATABASE_URL"`
	DBUser      string `env:"DB_USER"`
	DBPassword  string `env:"DB_PASSWORD"`
	DBHost      string `env:"DB_HOST" envDefault:"localhost"`
	DBPort      string `env:"DB_PORT" envDefault:"5432"`
	DBName      string `env:"DB_NAME" envDefault:"academy"`
	DBSSLMode   string `env:"DB_SSLMODE" envDefault:"disable"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"academy.db"`
	DBLogLevel  string `env:"DB_LOG_LEVEL" envDefault:"warn"`
	AutoMigrate bool   `env:"AUTO_MIGRATE" envDefault:"true"`

	Port           string        `env:"PORT" envDefault:"3000"`
	JWTSecret      string        `env:"JWT_SECRET"`
	CORSOrigins    string        `env:"CORS_ORIGINS" envDefault:"*"`
	RateLimit      int           `env:"RATE_LIMIT_PER_MINUTE" envDefault:"100"`
	LogTimeZone    string        `env:"LOG_TIMEZONE" envDefault:"Local"`
	RedisAddr      string        `env:"REDIS_ADDR"`
	RedisPassword  string        `env:"REDIS_PASSWORD"`
	ReportCacheTTL time.Duration `env:"REPORT_CACHE_TTL" envDefault:"10m"`
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system ENV")
	} else {
		log.Println("✅ .env file loaded")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// Load parses Config from the environment. Call LoadEnv first to pick up .env.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))
	switch cfg.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	return cfg, nil
}

// DSN returns the connection string for the configured driver.
// DATABASE_URL wins over the individual DB_* parts.
func (c Config) DSN() string {
	if c.DBDriver == DriverSQLite {
		path := c.SQLitePath
		if path == ":memory:" {
			path = "file::memory:"
		}
		return path + "?_pragma=foreign_keys(1)"
	}
	if strings.TrimSpace(c.DatabaseURL) != "" {
		return c.DatabaseURL
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   c.DBHost + ":" + c.DBPort,
		Path:   "/" + c.DBName,
	}
	if c.DBUser != "" {
		u.User = url.UserPassword(c.DBUser, c.DBPassword)
	}
	q := url.Values{}
	q.Set("sslmode", c.DBSSLMode)
	q.Set("application_name", "academy")
	u.RawQuery = q.Encode()
	return u.String()
}
