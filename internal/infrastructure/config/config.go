package config

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv         string        `envconfig:"APP_ENV" default:"development"`
	AppAddr        string        `envconfig:"APP_ADDR" default:":8081"`
	AppReadTimeout time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	// A server write timeout severs the open snapshot streams, so it is off
	// unless set explicitly.
	AppWriteTimeout time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"0"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`

	AWSRegion          string `envconfig:"AWS_REGION" default:"us-east-1"`
	AWSAccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	AWSSecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	DynamoDBEndpoint   string `envconfig:"DYNAMODB_ENDPOINT"`
	TablePrefix        string `envconfig:"TABLE_PREFIX" default:"clicknova_"`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	JWTSecret string        `envconfig:"JWT_SECRET" required:"true"`
	JWTIssuer string        `envconfig:"JWT_ISSUER" default:"clicknova-admin"`
	JWTTTL    time.Duration `envconfig:"JWT_TTL" default:"24h"`

	AdminEmail    string `envconfig:"ADMIN_EMAIL"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`
	AdminName     string `envconfig:"ADMIN_NAME" default:"Administrator"`

	GCSBucket          string `envconfig:"GCS_BUCKET"`
	GCSCredentialsJSON string `envconfig:"GCS_CREDENTIALS_JSON"`

	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`

	StreamPollInterval time.Duration `envconfig:"STREAM_POLL_INTERVAL" default:"3s"`
	StreamFetchTimeout time.Duration `envconfig:"STREAM_FETCH_TIMEOUT" default:"10s"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
