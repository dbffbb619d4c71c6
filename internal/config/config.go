package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/caarlos0/env"
)

type config struct {
	Production           bool          `env:"PRODUCTION" envDefault:"false"`
	Port                 string        `env:"PORT" envDefault:"80"`
	PostgresUrl          string        `env:"POSTGRES_URL,required"`
	RedisUrl             string        `env:"REDIS_URL" envDefault:"redis:6379"`
	JwtTTL               time.Duration `env:"TOKEN_TTL" envDefault:"20m"`
	Secret               string        `env:"SECRET,required"`
	SessionTTl           time.Duration `env:"SESSION_TTL" envDefault:"168h"`
	SessionCleanupPeriod time.Duration `env:"SESSION_CLEANUP_PERIOD" envDefault:"60s"`
	SessionTokenLength   int           `env:"SESSION_TOKEN_LENGTH" envDefault:"32"`
	ClientSecretPath     string        `env:"CLIENT_SECRET_PATH" envDefault:"secrets/client_secret.json"`
	RedirectURL          string        `env:"REDIRECT_URL" envDefault:""`
	ClientType           string        `env:"CLIENT_TYPE" envDefault:"web"`
	ReminderPollPeriod   time.Duration `env:"REMINDER_POLL_PERIOD" envDefault:"60s"`
	ReminderLookahead    time.Duration `env:"REMINDER_LOOKAHEAD" envDefault:"5m"`
}

var (
	conf config
	once sync.Once
)

// load parses the environment on first use. Packages may link config
// without triggering the required-variable check; only calling a getter
// does.
func load() *config {
	once.Do(func() {
		if err := env.Parse(&conf); err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})

	return &conf
}

func Production() bool {
	return load().Production
}

func Port() string {
	return load().Port
}

func PostgresURL() string {
	return load().PostgresUrl
}

func RedisURL() string {
	return load().RedisUrl
}

func JwtTTL() time.Duration {
	return load().JwtTTL
}

func Secret() string {
	return load().Secret
}

func SessionTTl() time.Duration {
	return load().SessionTTl
}

func SessionCleanupPeriod() time.Duration {
	return load().SessionCleanupPeriod
}

func SessionTokenLength() int {
	return load().SessionTokenLength
}

func ClientSecretPath() string {
	return load().ClientSecretPath
}

func RedirectURL() string {
	return load().RedirectURL
}

func ClientType() string {
	return load().ClientType
}

func ReminderPollPeriod() time.Duration {
	return load().ReminderPollPeriod
}

func ReminderLookahead() time.Duration {
	return load().ReminderLookahead
}
