package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	env "github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	HTTPPort         int    `env:"HTTP_PORT"          envDefault:"8080"`
	LogLevel         string `env:"LOG_LEVEL"          envDefault:"info"`
	StorageDriver    string `env:"STORAGE_DRIVER"     envDefault:"memory"`
	PostgresDSN      string `env:"POSTGRES_DSN"`
	PostgresMaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`

	JWT       JWTConfig
	Session   SessionConfig
	Directory DirectoryConfig
	Kafka     Kafka
	Mailer    MailerConfig
	S3        S3Config
	Jobs      JobsConfig

	// TLS
	ServerCert string `env:"TLS_SERVER_CERT"`
	ServerKey  string `env:"TLS_SERVER_KEY"`
}

type JWTConfig struct {
	Secret            string        `env:"JWT_SECRET"              envDefault:"change-me"`
	AccessTokenExpiry time.Duration `env:"JWT_ACCESS_TOKEN_EXPIRY" envDefault:"8h"`
}

type SessionConfig struct {
	LoginTimeout time.Duration `env:"LOGIN_TIMEOUT"       envDefault:"5s"`
	StageTTL     time.Duration `env:"STAGE_TTL"           envDefault:"10m"`
	BcryptCost   int           `env:"BCRYPT_COST"         envDefault:"10"`
	AwayAfter    time.Duration `env:"PRESENCE_AWAY_AFTER" envDefault:"5m"`
}

// DirectoryConfig points at an external credential store. Fixtures are used when URL is empty.
type DirectoryConfig struct {
	URL           string        `env:"DIRECTORY_URL"`
	Timeout       time.Duration `env:"DIRECTORY_TIMEOUT"        envDefault:"5s"`
	RetryAttempts int           `env:"DIRECTORY_RETRY_ATTEMPTS" envDefault:"3"`
}

type Kafka struct {
	Enabled           bool     `env:"KAFKA_ENABLED"            envDefault:"false"`
	Brokers           []string `env:"KAFKA_BROKERS"            envDefault:"kafka:9092" envSeparator:","`
	ConsumerID        string   `env:"KAFKA_CONSUMER_ID"        envDefault:"intranet"`
	NotificationTopic string   `env:"KAFKA_NOTIFICATION_TOPIC" envDefault:"send-notifications"`
}

type MailerConfig struct {
	Enabled  bool   `env:"MAILER_ENABLED"   envDefault:"false"`
	From     string `env:"MAILER_FROM"`
	FromName string `env:"MAILER_FROM_NAME" envDefault:"Intranet"`
	Host     string `env:"MAILER_HOST"`
	Port     int    `env:"MAILER_PORT"      envDefault:"587"`
	Login    string `env:"MAILER_LOGIN"`
	Password string `env:"MAILER_PASSWORD"`

	QueueSize   int           `env:"MAILER_QUEUE_SIZE"   envDefault:"100"`
	SendTimeout time.Duration `env:"MAILER_SEND_TIMEOUT" envDefault:"30s"`
}

type S3Config struct {
	Bucket        string        `env:"S3_BUCKET"`
	Region        string        `env:"S3_REGION"         envDefault:"us-east-1"`
	Endpoint      string        `env:"S3_ENDPOINT"`
	PresignExpiry time.Duration `env:"S3_PRESIGN_EXPIRY" envDefault:"5m"`
}

type JobsConfig struct {
	SessionCleanupInterval time.Duration `env:"JOB_SESSION_CLEANUP_INTERVAL" envDefault:"10m"`
	StageCleanupInterval   time.Duration `env:"JOB_STAGE_CLEANUP_INTERVAL"   envDefault:"1m"`
}

func New(envPath string) (Config, error) {
	var c Config

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	err = env.Parse(&c)
	if err != nil {
		return Config{}, err
	}

	err = c.validate()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}

func (c Config) validate() error {
	switch c.StorageDriver {
	case StorageMemory:
	case StoragePostgres:
		if c.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN is required for postgres storage")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER: %s", c.StorageDriver)
	}

	if c.Mailer.Enabled && c.Mailer.Host == "" {
		return errors.New("MAILER_HOST is required when mailer is enabled")
	}

	if c.Mailer.Enabled && c.Mailer.QueueSize <= 0 {
		return errors.New("MAILER_QUEUE_SIZE must be positive")
	}

	requiredFiles := []struct {
		name string
		val  string
	}{
		{"TLS_SERVER_CERT", c.ServerCert},
		{"TLS_SERVER_KEY", c.ServerKey},
	}

	for _, path := range requiredFiles {
		if path.val == "" {
			continue
		}

		if _, err := os.Stat(path.val); os.IsNotExist(err) {
			return fmt.Errorf("missing TLS file for %s: %s", path.name, path.val)
		}
	}

	return nil
}

// TLSEnabled reports whether both the certificate and the key are configured.
func (c Config) TLSEnabled() bool {
	return c.ServerCert != "" && c.ServerKey != ""
}
