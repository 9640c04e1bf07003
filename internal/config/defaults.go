package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host:    "127.0.0.1",
	Port:    "5432",
	User:    "myuser",
	Pass:    "mypassword",
	Name:    "ecodeli",
	SSLMode: "disable",
}

var defaultLog = Log{
	Level:      "info",
	MaxSizeMB:  100,
	MaxBackups: 7,
	MaxAgeDays: 30,
}

// devJWTSecret is only accepted with AUTH_DEV_MODE=true.
const devJWTSecret = "change-me"

var defaultAuth = Auth{}

var defaultRateLimit = RateLimit{
	Enabled:    false,
	Rate:       10,
	Burst:      20,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

var defaultKafka = Kafka{
	GroupID:       "service-delivery-worker",
	PackagesTopic: "packages",
	EventsTopic:   "delivery-events",
}

var defaultRedis = Redis{
	Prefix: "ecodeli",
}

var defaultTransfer = Transfer{
	CodeLength:          6,
	MaxFailedAttempts:   5,
	AttemptWindow:       15 * time.Minute,
	Expiry:              0,
	ExpirySweepInterval: time.Minute,
	OperationTimeout:    3 * time.Second,
}

var defaultPublisher = Publisher{
	MaxAttempts: 3,
	BaseDelay:   100 * time.Millisecond,
	MaxDelay:    time.Second,
	Timeout:     2 * time.Second,
}

var defaultPprof = PprofConfig{
	Enabled: false,
	Addr:    "127.0.0.1:6060",
}

// DefaultPort returns the default port.
func DefaultPort() int { return defaultPort }

// DefaultDB returns the default database settings.
func DefaultDB() DB { return defaultDB }

// DefaultTransfer returns the default transfer settings.
func DefaultTransfer() Transfer { return defaultTransfer }

// DefaultPublisher returns the default event publisher retry settings.
func DefaultPublisher() Publisher { return defaultPublisher }
