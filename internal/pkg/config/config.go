package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	Cache   CacheConfig
	Migrate MigrateConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/London"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/London"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// CacheConfig controls the advisory snapshot cache. An empty RedisAddr disables it.
type CacheConfig struct {
	RedisAddr     string        `envconfig:"CACHE_REDIS_ADDR" default:""`
	RedisPassword string        `envconfig:"CACHE_REDIS_PASSWORD" default:""`
	RedisDB       int           `envconfig:"CACHE_REDIS_DB" default:"0"`
	TTL           time.Duration `envconfig:"CACHE_TTL" default:"30s"`
	KeyPrefix     string        `envconfig:"CACHE_KEY_PREFIX" default:"gigbook"`
}

func (c CacheConfig) Enabled() bool {
	return c.RedisAddr != ""
}

type MigrateConfig struct {
	DevURL     string `envconfig:"ATLAS_DEV_URL" default:"docker://postgres/17/dev"`
	SchemaFile string `envconfig:"ATLAS_SCHEMA_FILE" default:"migrations/001_initial_schema.sql"`
	AtlasBin   string `envconfig:"ATLAS_BIN" default:"atlas"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

// LoadMigration reads only the database and migration settings, so the
// migrate binary runs without the server variables.
func LoadMigration() (DBConfig, MigrateConfig, error) {
	var db DBConfig
	if err := envconfig.Process("", &db); err != nil {
		return DBConfig{}, MigrateConfig{}, fmt.Errorf("failed to process db env config: %w", err)
	}
	var m MigrateConfig
	if err := envconfig.Process("", &m); err != nil {
		return DBConfig{}, MigrateConfig{}, fmt.Errorf("failed to process migrate env config: %w", err)
	}
	return db, m, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Europe/London",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/London",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Cache: CacheConfig{
			TTL:       time.Second,
			KeyPrefix: "gigbook-test",
		},
	}
}
