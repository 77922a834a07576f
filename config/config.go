package config

import (
	"time"

	"github.com/caarlos0/env/v9"
)

type Server struct {
	Core
	App         App
	GoogleCloud GoogleCloud
}

type PollOnce struct {
	Core
}

type Migrate struct {
	Log Log
	PG  PG
}

// Core holds everything needed to run a poll cycle, shared by the server and the one-shot poll command.
type Core struct {
	Log      Log
	Upstream Upstream
	Poll     Poll
	Delivery Delivery
	Storage  Storage
	PG       PG
	Redis    Redis
}

type Log struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
	File  string `env:"LOG_FILE"`
}

type App struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	HashedAPIKeys   []string      `env:"HASHED_API_KEYS" envSeparator:","`
	SecretKey       string        `env:"SECRET_KEY,required"`
	Timeout         time.Duration `env:"TIMEOUT" envDefault:"10s"`
	TriggersTimeout time.Duration `env:"TRIGGERS_TIMEOUT" envDefault:"5m"`
}

type UpstreamKind string

const (
	UpstreamHTML UpstreamKind = "html"
	UpstreamAPI  UpstreamKind = "api"
)

type Upstream struct {
	Kind        UpstreamKind  `env:"UPSTREAM_KIND" envDefault:"html"`
	BaseURL     string        `env:"UPSTREAM_BASE_URL" envDefault:"https://www.hltv.org"`
	Path        string        `env:"UPSTREAM_PATH" envDefault:"/matches"`
	APIToken    string        `env:"UPSTREAM_API_TOKEN"`
	LinkBaseURL string        `env:"UPSTREAM_LINK_BASE_URL"` // Match page prefix for api records; empty leaves them without a link.
	UserAgent   string        `env:"UPSTREAM_USER_AGENT" envDefault:"Mozilla/5.0 (compatible; esports-notifier/1.0)"`
	Timeout     time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"15s"`
}

type Poll struct {
	Schedule        string        `env:"POLL_SCHEDULE" envDefault:"@every 5m"`
	Timezone        string        `env:"POLL_TIMEZONE" envDefault:"UTC"`
	OnStart         bool          `env:"POLL_ON_START" envDefault:"true"`
	TeamConcurrency int           `env:"POLL_TEAM_CONCURRENCY" envDefault:"1"`
	LockTimeout     time.Duration `env:"POLL_LOCK_TIMEOUT" envDefault:"2m"`
}

type Delivery struct {
	Timeout     time.Duration `env:"DELIVERY_TIMEOUT" envDefault:"10s"`
	Concurrency int           `env:"DELIVERY_CONCURRENCY" envDefault:"4"`
	MaxAttempts uint          `env:"DELIVERY_MAX_ATTEMPTS" envDefault:"1"`
	RetryDelay  time.Duration `env:"DELIVERY_RETRY_DELAY" envDefault:"2s"`
}

type StorageKind string

const (
	StorageFile     StorageKind = "file"
	StoragePostgres StorageKind = "postgres"
	StorageMemory   StorageKind = "memory"
)

type Storage struct {
	Kind     StorageKind `env:"STORAGE_KIND" envDefault:"file"`
	FilePath string      `env:"STATE_FILE_PATH" envDefault:"data/state.json"`
}

type PG struct {
	Host     string `env:"PG_HOST" envDefault:"localhost"`
	User     string `env:"PG_USER" envDefault:"postgres"`
	Password string `env:"PG_PASSWORD"`
	Port     string `env:"PG_PORT" envDefault:"5432"`
	Database string `env:"PG_DATABASE" envDefault:"postgres"`
}

// Redis is optional. An empty address keeps poll cycles serialized in-process only.
type Redis struct {
	Addr       string        `env:"REDIS_ADDR"`
	Password   string        `env:"REDIS_PASSWORD"`
	DB         int           `env:"REDIS_DB" envDefault:"0"`
	LockTTL    time.Duration `env:"REDIS_LOCK_TTL" envDefault:"10m"`
	RetryDelay time.Duration `env:"REDIS_LOCK_RETRY_DELAY" envDefault:"500ms"`
}

type GoogleCloud struct {
	TriggerAudience       string `env:"GOOGLE_CLOUD_TRIGGER_AUDIENCE,required"` // Audience expected in the OIDC token Cloud Scheduler attaches to trigger calls.
	TriggerServiceAccount string `env:"GOOGLE_CLOUD_TRIGGER_SERVICE_ACCOUNT"`
}

type Parsable interface {
	Server | PollOnce | Migrate
}

func Parse[T Parsable]() T {
	var cfg T
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return cfg
}
