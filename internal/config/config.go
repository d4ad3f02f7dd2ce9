package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env         string            `yaml:"env" env:"APP_ENV" env-default:"development"`
	ListenAddr  string            `yaml:"listen_addr" env:"LISTEN_ADDR" env-default:":8000"`
	DatabaseURL string            `yaml:"database_url" env:"DATABASE_URL"`
	LogLevel    string            `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	CORSOrigins []string          `yaml:"cors_origins" env:"CORS_ORIGINS" env-separator:"," env-default:"http://127.0.0.1:5173"`
	Auth        AuthConfig        `yaml:"auth"`
	Uploads     UploadsConfig     `yaml:"uploads"`
	OrphanSweep OrphanSweepConfig `yaml:"orphan_sweep"`
}

type AuthConfig struct {
	Key                string `yaml:"key" env:"AUTH_KEY"`
	TokenExpireMinutes int    `yaml:"token_expire_minutes" env:"ACCESS_TOKEN_EXPIRE_MINUTES" env-default:"30"`
}

func (a AuthConfig) TokenTTL() time.Duration {
	return time.Duration(a.TokenExpireMinutes) * time.Minute
}

type UploadsConfig struct {
	Dir           string        `yaml:"dir" env:"UPLOAD_DIR" env-default:"data/images"`
	PublicBaseURL string        `yaml:"public_base_url" env:"PUBLIC_BASE_URL" env-default:"http://127.0.0.1:8000"`
	URLTTL        time.Duration `yaml:"url_ttl" env:"UPLOAD_URL_TTL" env-default:"15m"`
	// SigningKey signs upload URLs. It must differ from the token key.
	SigningKey    string        `yaml:"signing_key" env:"UPLOAD_SIGNING_KEY"`
}

type OrphanSweepConfig struct {
	// Schedule is a cron spec; empty disables the sweeper.
	Schedule string        `yaml:"schedule" env:"ORPHAN_SWEEP_SCHEDULE" env-default:"@hourly"`
	Grace    time.Duration `yaml:"grace" env:"ORPHAN_SWEEP_GRACE" env-default:"24h"`
}

// Load reads .env (if present), then TIKKEUL_CONFIG (if set) and the
// environment. Missing required values are reported in the error while the
// rest of the config is still returned, so callers can decide.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	var err error
	if path := os.Getenv("TIKKEUL_CONFIG"); path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var missing []error
	if cfg.DatabaseURL == "" {
		missing = append(missing, errors.New("DATABASE_URL not set"))
	}
	if cfg.Auth.Key == "" {
		missing = append(missing, errors.New("AUTH_KEY not set"))
	}
	switch {
	case cfg.Uploads.SigningKey == "":
		missing = append(missing, errors.New("UPLOAD_SIGNING_KEY not set"))
	case cfg.Uploads.SigningKey == cfg.Auth.Key:
		missing = append(missing, errors.New("UPLOAD_SIGNING_KEY must differ from AUTH_KEY"))
	}
	return cfg, errors.Join(missing...)
}
