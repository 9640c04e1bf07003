package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores service settings.
type Config struct {
	Port      int
	DB        DB
	Log       Log
	Auth      Auth
	RateLimit RateLimit
	Kafka     Kafka
	Redis     Redis
	Transfer  Transfer
	Publisher Publisher
	Pprof     PprofConfig
}

// DB stores PostgreSQL connection settings.
type DB struct {
	Host    string
	Port    string
	User    string
	Pass    string
	Name    string
	SSLMode string
}

// DSN builds a postgres connection string.
func (d DB) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Pass),
		Host:   d.Host + ":" + d.Port,
		Path:   "/" + d.Name,
	}
	q := u.Query()
	if d.SSLMode != "" {
		q.Set("sslmode", d.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// Log stores logger settings. An empty File logs to stdout.
type Log struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Auth stores bearer token verification settings.
type Auth struct {
	JWTSecret string
	Issuer    string
	// DevMode allows the well-known local secret; never enable it in a deployment.
	DevMode bool
}

// RateLimit stores per-client limiter settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Kafka stores broker settings; no brokers disables messaging.
type Kafka struct {
	Brokers       []string
	GroupID       string
	PackagesTopic string
	EventsTopic   string
}

// Enabled reports whether brokers are configured.
func (k Kafka) Enabled() bool { return len(k.Brokers) > 0 }

// Redis stores the attempt guard backend; empty Addr disables it.
type Redis struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// Transfer stores handoff protocol settings.
type Transfer struct {
	CodeLength          int
	MaxFailedAttempts   int
	AttemptWindow       time.Duration
	Expiry              time.Duration // 0 keeps open transfers forever
	ExpirySweepInterval time.Duration
	OperationTimeout    time.Duration
}

// Publisher stores event publisher retry settings.
type Publisher struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	// Timeout bounds how long a request waits for its events after commit.
	Timeout time.Duration
}

// PprofConfig stores pprof server settings.
type PprofConfig struct {
	Enabled bool
	Addr    string
	User    string
	Pass    string
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("warning: .env not loaded: %v", err)
	}

	var p envParser
	cfg := &Config{
		Port:      p.int("PORT", defaultPort),
		DB:        loadDB(&p),
		Log:       loadLog(&p),
		Auth:      loadAuth(&p),
		RateLimit: loadRateLimit(&p),
		Kafka:     loadKafka(&p),
		Redis:     loadRedis(&p),
		Transfer:  loadTransfer(&p),
		Publisher: loadPublisher(&p),
		Pprof:     loadPprof(&p),
	}
	if err := p.err(); err != nil {
		return nil, err
	}

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadDB(p *envParser) DB {
	d := defaultDB
	d.Host = p.string("POSTGRES_HOST", d.Host)
	d.Port = p.string("POSTGRES_PORT", d.Port)
	d.User = p.string("POSTGRES_USER", d.User)
	d.Pass = p.string("POSTGRES_PASSWORD", d.Pass)
	d.Name = p.string("POSTGRES_DB", d.Name)
	d.SSLMode = p.string("POSTGRES_SSLMODE", d.SSLMode)
	return d
}

func loadLog(p *envParser) Log {
	l := defaultLog
	l.Level = p.string("LOG_LEVEL", l.Level)
	l.File = p.string("LOG_FILE", l.File)
	l.MaxSizeMB = p.int("LOG_MAX_SIZE_MB", l.MaxSizeMB)
	l.MaxBackups = p.int("LOG_MAX_BACKUPS", l.MaxBackups)
	l.MaxAgeDays = p.int("LOG_MAX_AGE_DAYS", l.MaxAgeDays)
	return l
}

func loadAuth(p *envParser) Auth {
	a := defaultAuth
	a.JWTSecret = p.string("JWT_SECRET", a.JWTSecret)
	a.Issuer = p.string("JWT_ISSUER", a.Issuer)
	a.DevMode = p.bool("AUTH_DEV_MODE", a.DevMode)
	if a.DevMode && strings.TrimSpace(a.JWTSecret) == "" {
		a.JWTSecret = devJWTSecret
	}
	return a
}

func loadRateLimit(p *envParser) RateLimit {
	r := defaultRateLimit
	r.Enabled = p.bool("RATE_LIMIT_ENABLED", r.Enabled)
	r.Rate = p.float("RATE_LIMIT_RATE", r.Rate)
	r.Burst = p.int("RATE_LIMIT_BURST", r.Burst)
	r.TTL = p.duration("RATE_LIMIT_TTL", r.TTL)
	r.MaxBuckets = p.int("RATE_LIMIT_MAX_BUCKETS", r.MaxBuckets)
	return r
}

func loadKafka(p *envParser) Kafka {
	k := defaultKafka
	k.Brokers = p.list("KAFKA_BROKERS")
	k.GroupID = p.string("KAFKA_GROUP_ID", k.GroupID)
	k.PackagesTopic = p.string("KAFKA_PACKAGES_TOPIC", k.PackagesTopic)
	k.EventsTopic = p.string("KAFKA_EVENTS_TOPIC", k.EventsTopic)
	return k
}

func loadRedis(p *envParser) Redis {
	r := defaultRedis
	r.Addr = p.string("REDIS_ADDR", r.Addr)
	r.Password = p.string("REDIS_PASSWORD", r.Password)
	r.DB = p.int("REDIS_DB", r.DB)
	r.Prefix = p.string("REDIS_PREFIX", r.Prefix)
	return r
}

func loadTransfer(p *envParser) Transfer {
	t := defaultTransfer
	t.CodeLength = p.int("TRANSFER_CODE_LENGTH", t.CodeLength)
	t.MaxFailedAttempts = p.int("TRANSFER_MAX_FAILED_ATTEMPTS", t.MaxFailedAttempts)
	t.AttemptWindow = p.duration("TRANSFER_ATTEMPT_WINDOW", t.AttemptWindow)
	t.Expiry = p.duration("TRANSFER_EXPIRY", t.Expiry)
	t.ExpirySweepInterval = p.duration("TRANSFER_EXPIRY_SWEEP_INTERVAL", t.ExpirySweepInterval)
	t.OperationTimeout = p.duration("OPERATION_TIMEOUT", t.OperationTimeout)
	return t
}

func loadPublisher(p *envParser) Publisher {
	pub := defaultPublisher
	pub.MaxAttempts = p.int("PUBLISHER_MAX_ATTEMPTS", pub.MaxAttempts)
	pub.BaseDelay = p.duration("PUBLISHER_BASE_DELAY", pub.BaseDelay)
	pub.MaxDelay = p.duration("PUBLISHER_MAX_DELAY", pub.MaxDelay)
	pub.Timeout = p.duration("PUBLISH_TIMEOUT", pub.Timeout)
	return pub
}

func loadPprof(p *envParser) PprofConfig {
	pp := defaultPprof
	pp.Enabled = p.bool("PPROF_ENABLED", pp.Enabled)
	pp.Addr = p.string("PPROF_ADDR", pp.Addr)
	pp.User = p.string("PPROF_USER", pp.User)
	pp.Pass = p.string("PPROF_PASS", pp.Pass)
	return pp
}

func (c *Config) validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port: %d", c.Port))
	}
	if port, err := strconv.Atoi(c.DB.Port); err != nil || port <= 0 || port > 65535 {
		errs = append(errs, fmt.Errorf("invalid POSTGRES_PORT: %q", c.DB.Port))
	}
	switch {
	case strings.TrimSpace(c.Auth.JWTSecret) == "":
		errs = append(errs, errors.New("JWT_SECRET must be set (AUTH_DEV_MODE=true uses a local secret)"))
	case c.Auth.JWTSecret == devJWTSecret && !c.Auth.DevMode:
		errs = append(errs, errors.New("JWT_SECRET uses the development secret outside AUTH_DEV_MODE"))
	}
	if c.Transfer.CodeLength < 4 || c.Transfer.CodeLength > 32 {
		errs = append(errs, fmt.Errorf("TRANSFER_CODE_LENGTH must be in [4,32], got %d", c.Transfer.CodeLength))
	}
	if c.Transfer.Expiry < 0 {
		errs = append(errs, errors.New("TRANSFER_EXPIRY must not be negative"))
	}
	if c.Transfer.Expiry > 0 && c.Transfer.ExpirySweepInterval <= 0 {
		errs = append(errs, errors.New("TRANSFER_EXPIRY_SWEEP_INTERVAL must be positive when expiry is enabled"))
	}
	if c.Publisher.MaxAttempts < 1 {
		errs = append(errs, errors.New("PUBLISHER_MAX_ATTEMPTS must be at least 1"))
	}
	if c.Publisher.Timeout <= 0 {
		errs = append(errs, errors.New("PUBLISH_TIMEOUT must be positive"))
	}
	return errors.Join(errs...)
}

// envParser reads typed environment values and collects parse errors.
type envParser struct {
	errs []error
}

func (p *envParser) err() error { return errors.Join(p.errs...) }

func (p *envParser) string(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func (p *envParser) int(key string, def int) int {
	raw := p.string(key, "")
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("invalid %s: %w", key, err))
		return def
	}
	return v
}

func (p *envParser) float(key string, def float64) float64 {
	raw := p.string(key, "")
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("invalid %s: %w", key, err))
		return def
	}
	return v
}

func (p *envParser) bool(key string, def bool) bool {
	raw := p.string(key, "")
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("invalid %s: %w", key, err))
		return def
	}
	return v
}

func (p *envParser) duration(key string, def time.Duration) time.Duration {
	raw := p.string(key, "")
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("invalid %s: %w", key, err))
		return def
	}
	return v
}

func (p *envParser) list(key string) []string {
	raw := p.string(key, "")
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}
