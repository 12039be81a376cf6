package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets, etc.)
// - default: Values common across all environments (timezone, timeouts, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	Redis      RedisConfig
	CORS       CORSConfig
	Log        LogConfig
	JWT        JWTConfig
	Session    SessionConfig
	Submission SubmissionConfig
	Catalog    CatalogConfig
	RateLimit  RateLimitConfig
	Share      ShareConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"booking"`
	Password string `envconfig:"DB_PASSWORD" default:""`
	DBName   string `envconfig:"DB_NAME" default:"booking"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
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
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

// Backend selects the store implementation: "memory" or "redis"
type SessionConfig struct {
	Backend string        `envconfig:"SESSION_BACKEND" default:"memory"`
	TTL     time.Duration `envconfig:"SESSION_TTL" default:"30m"`
}

// Backend selects the submitter: "simulated" or "postgres"
type SubmissionConfig struct {
	Backend string        `envconfig:"SUBMISSION_BACKEND" default:"simulated"`
	Latency time.Duration `envconfig:"SUBMISSION_LATENCY" default:"1500ms"`
	Timeout time.Duration `envconfig:"SUBMISSION_TIMEOUT" default:"10s"`
}

// SeedPath overrides the embedded seed when set
type CatalogConfig struct {
	SeedPath string `envconfig:"CATALOG_SEED_PATH" default:""`
}

type RateLimitConfig struct {
	ConfirmPerMinute int `envconfig:"RATE_LIMIT_CONFIRM_PER_MINUTE" default:"10"`
	ConfirmBurst     int `envconfig:"RATE_LIMIT_CONFIRM_BURST" default:"3"`
}

type ShareConfig struct {
	BaseURL   string        `envconfig:"SHARE_BASE_URL" default:"http://localhost:3000"`
	InviteTTL time.Duration `envconfig:"SHARE_INVITE_TTL" default:"168h"`
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
			TimeZone: "UTC",
			MaxConns: 4,
		},
		Redis: RedisConfig{
			Addr: "localhost:16379",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
		Session: SessionConfig{
			Backend: "memory",
			TTL:     30 * time.Minute,
		},
		Submission: SubmissionConfig{
			Backend: "simulated",
			Latency: 10 * time.Millisecond,
			Timeout: time.Second,
		},
		RateLimit: RateLimitConfig{
			ConfirmPerMinute: 60,
			ConfirmBurst:     10,
		},
		Share: ShareConfig{
			BaseURL:   "http://localhost:3000",
			InviteTTL: time.Hour,
		},
	}
}
