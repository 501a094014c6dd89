// Package config loads and validates app config from env and an optional .env file using Viper.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	// GRPCAddr is the address the gRPC server listens on (e.g. :50055).
	GRPCAddr string `mapstructure:"GRPC_ADDR"`
	// DatabaseURL is the Postgres DSN.
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	// JWTPrivateKey is the PEM-encoded private key (RSA or ECDSA) or path to file.
	JWTPrivateKey string `mapstructure:"JWT_PRIVATE_KEY"`
	// JWTPublicKey is the PEM-encoded public key or path to file.
	JWTPublicKey string `mapstructure:"JWT_PUBLIC_KEY"`
	// JWTIssuer is the iss claim set on login tokens and validated on verify.
	JWTIssuer string `mapstructure:"JWT_ISSUER"`
	// LoginTokenTTL is the desktop-client login token lifetime (e.g. "5m", max 5m).
	LoginTokenTTL string `mapstructure:"LOGIN_TOKEN_TTL"`
	// SessionReaperInterval is how often expired login sessions are swept (e.g. "1m").
	SessionReaperInterval string `mapstructure:"SESSION_REAPER_INTERVAL"`

	// SMTP relay for email MFA codes. Mail sending is skipped when SMTPServer is empty.
	SMTPServer string `mapstructure:"SMTP_SERVER"`
	SMTPPort   int    `mapstructure:"SMTP_PORT"`
	SMTPUser   string `mapstructure:"SMTP_USER"`
	SMTPPass   string `mapstructure:"SMTP_PASSWORD"`
	// SMTPSender is the From address for outbound mail (e.g. noreply@example.com).
	SMTPSender string `mapstructure:"SMTP_SENDER"`

	// Activity log streaming (optional). When Kafka brokers are set, activity
	// events are forwarded to the Kafka topic in addition to the database.
	ActivityKafkaBrokers string `mapstructure:"KAFKA_BROKERS"`
	ActivityKafkaTopic   string `mapstructure:"ACTIVITY_KAFKA_TOPIC"`

	// OTLPEndpoint enables OpenTelemetry export when set (e.g. http://localhost:4317).
	OTLPEndpoint string `mapstructure:"OTLP_ENDPOINT"`
	// OTLPInsecure forces plaintext OTLP export regardless of endpoint scheme.
	OTLPInsecure bool `mapstructure:"OTLP_INSECURE"`
}

// maxLoginTokenTTL bounds the login token lifetime; the token deadline is the
// only temporal limit on an in-flight login attempt.
const maxLoginTokenTTL = 5 * time.Minute

// Load reads .env (if present), then builds and validates Config from the environment via Viper.
// Missing .env is ignored (e.g. in CI). Env vars override .env. Returns an error if required fields are invalid.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore ErrConfigFileNotFound

	v.AutomaticEnv()

	// Every key needs a default so AutomaticEnv feeds Unmarshal.
	v.SetDefault("GRPC_ADDR", ":50055")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("JWT_PRIVATE_KEY", "")
	v.SetDefault("JWT_PUBLIC_KEY", "")
	v.SetDefault("JWT_ISSUER", "defguard-core")
	v.SetDefault("LOGIN_TOKEN_TTL", "5m")
	v.SetDefault("SESSION_REAPER_INTERVAL", "1m")
	v.SetDefault("SMTP_SERVER", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USER", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("SMTP_SENDER", "")
	v.SetDefault("ACTIVITY_KAFKA_TOPIC", "defguard-activity")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("OTLP_ENDPOINT", "")
	v.SetDefault("OTLP_INSECURE", false)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.GRPCAddr == "" {
		return nil, errors.New("config: GRPC_ADDR must be set")
	}
	if d, err := time.ParseDuration(cfg.LoginTokenTTL); err == nil && d > maxLoginTokenTTL {
		return nil, errors.New("config: LOGIN_TOKEN_TTL must not exceed 5m")
	}
	if cfg.SMTPPort < 0 || cfg.SMTPPort > 65535 {
		return nil, errors.New("config: SMTP_PORT must be a valid port")
	}

	return &cfg, nil
}

// TokenTTL parses LoginTokenTTL as a time.Duration. Returns 5m if unset or invalid.
func (c *Config) TokenTTL() time.Duration {
	d, err := time.ParseDuration(c.LoginTokenTTL)
	if err != nil || d <= 0 || d > maxLoginTokenTTL {
		return maxLoginTokenTTL
	}
	return d
}

// ReaperInterval parses SessionReaperInterval as a time.Duration. Returns 1m if unset or invalid.
func (c *Config) ReaperInterval() time.Duration {
	d, err := time.ParseDuration(c.SessionReaperInterval)
	if err != nil || d <= 0 {
		return time.Minute
	}
	return d
}

// ActivityKafkaBrokersList returns Kafka broker addresses from the comma-separated config.
// Used to decide if activity streaming is enabled (non-empty list) and to create the producer.
func (c *Config) ActivityKafkaBrokersList() []string {
	if c == nil || c.ActivityKafkaBrokers == "" {
		return nil
	}
	parts := strings.Split(c.ActivityKafkaBrokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
