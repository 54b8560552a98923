package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string         `json:"env"`
	Http     HttpConfig     `json:"http"`
	Postgres PostgresConfig `json:"postgres"`
	Redis    RedisConfig    `json:"redis"`
	Gateway  GatewayConfig  `json:"gateway"`
	Matcher  MatcherConfig  `json:"matcher"`
	Dispatch DispatchConfig `json:"dispatch"`
	Sweeper  SweeperConfig  `json:"sweeper"`
	APIKey   string         `json:"api_key,omitempty"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr        string        `json:"addr"`
	Password    string        `json:"password,omitempty"`
	DB          int           `json:"db"`
	PingTimeout time.Duration `json:"ping_timeout"`
}

// GatewayConfig addresses the SMS/voice provider. An empty BaseURL or
// APIKey switches the client into stub mode.
type GatewayConfig struct {
	BaseURL     string        `json:"base_url"`
	APIKey      string        `json:"api_key,omitempty"`
	FromNumber  string        `json:"from_number"`
	CountryCode string        `json:"country_code"`
	Timeout     time.Duration `json:"timeout"`
}

type MatcherConfig struct {
	SearchRadiusM  float64       `json:"search_radius_m"`
	MaxVolunteers  int           `json:"max_volunteers"`
	RosterCacheTTL time.Duration `json:"roster_cache_ttl"`
}

type DispatchConfig struct {
	// Crude ETA basis: responder ground speed in meters per minute.
	ETASpeedMetersPerMin float64 `json:"eta_speed_m_per_min"`
	TrackingBaseURL      string  `json:"tracking_base_url"`
}

type SweeperConfig struct {
	Interval  time.Duration `json:"interval"`
	ExpireAge time.Duration `json:"expire_age"`
	Retention time.Duration `json:"retention"`
}

func Load() (*Config, error) {
	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "pg-local"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "safeher_db"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:        getEnv("REDIS_ADDR", "redis-local:6379"),
			Password:    getEnv("REDIS_PASSWORD", ""),
			DB:          getEnvInt("REDIS_DB", 0),
			PingTimeout: getEnvDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		},
		Gateway: GatewayConfig{
			BaseURL:     getEnv("GATEWAY_BASE_URL", ""),
			APIKey:      getEnv("GATEWAY_API_KEY", ""),
			FromNumber:  getEnv("GATEWAY_FROM_NUMBER", ""),
			CountryCode: getEnv("GATEWAY_COUNTRY_CODE", "91"),
			Timeout:     getEnvDuration("GATEWAY_TIMEOUT", 5*time.Second),
		},
		Matcher: MatcherConfig{
			SearchRadiusM:  getEnvFloat("MATCHER_SEARCH_RADIUS_M", 5000),
			MaxVolunteers:  getEnvInt("MATCHER_MAX_VOLUNTEERS", 10),
			RosterCacheTTL: getEnvDuration("MATCHER_ROSTER_CACHE_TTL", 30*time.Second),
		},
		Dispatch: DispatchConfig{
			ETASpeedMetersPerMin: getEnvFloat("DISPATCH_ETA_SPEED_M_PER_MIN", 500),
			TrackingBaseURL:      getEnv("DISPATCH_TRACKING_BASE_URL", "https://app.safeher.in/track"),
		},
		Sweeper: SweeperConfig{
			Interval:  getEnvDuration("SWEEPER_INTERVAL", 6*time.Hour),
			ExpireAge: getEnvDuration("SWEEPER_EXPIRE_AGE", 24*time.Hour),
			Retention: getEnvDuration("SWEEPER_RETENTION", 7*24*time.Hour),
		},
		APIKey: getEnv("API_KEY", "super-secret-key"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.Bool("gateway_configured", cfg.Gateway.Configured()))

	return cfg, nil
}

func (g GatewayConfig) Configured() bool {
	return g.BaseURL != "" && g.APIKey != ""
}

func (c *Config) Validate() error {
	if c.Http.Port == "" || c.Http.Port[0] != ':' {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}
	if c.Postgres.Host == "" {
		return errors.New("POSTGRES_HOST required")
	}
	if c.Matcher.SearchRadiusM <= 0 {
		return errors.New("MATCHER_SEARCH_RADIUS_M must be positive")
	}
	if c.Matcher.MaxVolunteers < 1 {
		return errors.New("MATCHER_MAX_VOLUNTEERS must be at least 1")
	}
	if c.Dispatch.ETASpeedMetersPerMin <= 0 {
		return errors.New("DISPATCH_ETA_SPEED_M_PER_MIN must be positive")
	}
	if c.Sweeper.ExpireAge >= c.Sweeper.Retention {
		return errors.New("SWEEPER_EXPIRE_AGE must be shorter than SWEEPER_RETENTION")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
