package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Admin     AdminConfig     `yaml:"admin"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Redis     RedisConfig     `yaml:"redis"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"3001"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"1048576"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// AdminConfig holds the shared admin credential. Password may be plaintext
// or a bcrypt hash produced by `helpdesk hash-password`.
type AdminConfig struct {
	Username string `yaml:"username" env:"ADMIN_USER" env-default:"admin"`
	Password string `yaml:"password" env:"ADMIN_PASS" env-required:"true"`
}

// RateLimitConfig holds fixed-window admission limits per client origin.
type RateLimitConfig struct {
	Enabled      bool          `yaml:"enabled"       env:"RATE_LIMIT_ENABLED"       env-default:"true"`
	LoginMax     int           `yaml:"login_max"     env:"RATE_LIMIT_LOGIN_MAX"     env-default:"10"`
	LoginWindow  time.Duration `yaml:"login_window"  env:"RATE_LIMIT_LOGIN_WINDOW"  env-default:"10m"`
	TicketMax    int           `yaml:"ticket_max"    env:"RATE_LIMIT_TICKET_MAX"    env-default:"10"`
	TicketWindow time.Duration `yaml:"ticket_window" env:"RATE_LIMIT_TICKET_WINDOW" env-default:"1m"`
}

// RedisConfig holds the optional Redis connection used to share rate-limit
// windows between replicas. Empty Addr keeps counters in memory.
type RedisConfig struct {
	Addr      string `yaml:"addr"       env:"REDIS_ADDR"`
	Password  string `yaml:"password"   env:"REDIS_PASSWORD"`
	DB        int    `yaml:"db"         env:"REDIS_DB"         env-default:"0"`
	KeyPrefix string `yaml:"key_prefix" env:"REDIS_KEY_PREFIX" env-default:"helpdesk:ratelimit:"`
}

// Enabled reports whether a Redis address is configured.
func (c RedisConfig) Enabled() bool {
	return strings.TrimSpace(c.Addr) != ""
}

// KafkaConfig holds the optional ticket event stream settings.
// Empty Brokers disables publishing.
type KafkaConfig struct {
	Brokers string `yaml:"brokers" env:"KAFKA_BROKERS"`
	Topic   string `yaml:"topic"   env:"KAFKA_TOPIC"   env-default:"helpdesk.ticket-events"`
}

// BrokerList splits the comma-separated broker list, dropping blanks.
func (c KafkaConfig) BrokerList() []string {
	var out []string
	for _, b := range strings.Split(c.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
