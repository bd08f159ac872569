package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all process configuration, parsed from environment
// variables once at startup. Nothing reads the environment after this.
type Config struct {
	Env        string `env:"ENV" envDefault:"DEVELOPMENT"`
	Port       string `env:"PORT" envDefault:"8000"`
	CORSOrigin string `env:"CORS_ORIGIN" envDefault:"http://localhost"`

	SSL      bool   `env:"SSL" envDefault:"false"`
	CertFile string `env:"SSL_CERT_FILE" envDefault:"./cert/myCA.cer"`
	KeyFile  string `env:"SSL_KEY_FILE" envDefault:"./cert/myCA.key"`

	Mongo   Mongo   `envPrefix:"MONGO_"`
	Redis   Redis   `envPrefix:"REDIS_"`
	Storage Storage `envPrefix:"MINIO_"`
	Token   Token   `envPrefix:""`
}

// Mongo contains document store connection parameters.
type Mongo struct {
	URI string `env:"URI" envDefault:"mongodb://localhost:27017"`
	DB  string `env:"DB" envDefault:"wetube"`
}

// Redis contains key-value store connection parameters.
type Redis struct {
	Addr string `env:"HOST" envDefault:"localhost:6379"`
	Pass string `env:"PASS" envDefault:""`
	DB   int    `env:"DB" envDefault:"0"`
}

// Storage contains media object storage parameters.
type Storage struct {
	Endpoint  string `env:"ENDPOINT" envDefault:"localhost:9000"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	Bucket    string `env:"BUCKET" envDefault:"wetube-media"`
	UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
}

// Token contains the two secrets and lifetimes for the access/refresh
// token pair. Passed into the auth service at construction.
type Token struct {
	AccessSecret  string        `env:"ACCESS_TOKEN_SECRET,notEmpty"`
	RefreshSecret string        `env:"REFRESH_TOKEN_SECRET,notEmpty"`
	AccessTTL     time.Duration `env:"ACCESS_TOKEN_EXPIRY" envDefault:"24h"`
	RefreshTTL    time.Duration `env:"REFRESH_TOKEN_EXPIRY" envDefault:"240h"`
}

// Load reads the .env file if one exists, then parses the process
// environment into a Config.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("failed to load the env file: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Production reports whether the process runs with production settings.
func (c *Config) Production() bool {
	return c.Env == "PRODUCTION"
}
