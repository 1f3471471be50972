package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "TASKS"

// Defaults applied before the config file and environment are read.
const (
	defaultPort          = "8080"
	defaultDBPath        = "app.db"
	defaultLogLevel      = "info"
	defaultTokenTTL      = 30 * 24 * time.Hour
	defaultActivationTTL = 24 * time.Hour
)

var errNoSigningKey = errors.New("auth.signing_key must be set")

// Config is the typed view of configs/config.yml plus TASKS_* overrides.
type Config struct {
	Port       string
	DBPath     string
	LogLevel   string
	AdminEmail string
	Auth       AuthConfig
}

type AuthConfig struct {
	SigningKey    string
	TokenTTL      time.Duration
	ActivationTTL time.Duration
}

// New returns a viper instance with defaults and env binding installed.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("port", defaultPort)
	v.SetDefault("db.path", defaultDBPath)
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("auth.token_ttl", defaultTokenTTL)
	v.SetDefault("auth.activation_ttl", defaultActivationTTL)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads config.yml from dir (missing file is fine) and decodes it.
func Load(dir string) (Config, error) {
	v := New()
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	return FromViper(v)
}

// FromViper decodes an already populated viper instance.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Port:       v.GetString("port"),
		DBPath:     v.GetString("db.path"),
		LogLevel:   v.GetString("log.level"),
		AdminEmail: strings.TrimSpace(v.GetString("app.admin_email")),
		Auth: AuthConfig{
			SigningKey:    v.GetString("auth.signing_key"),
			TokenTTL:      v.GetDuration("auth.token_ttl"),
			ActivationTTL: v.GetDuration("auth.activation_ttl"),
		},
	}
	if cfg.Auth.SigningKey == "" {
		return Config{}, errNoSigningKey
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = defaultTokenTTL
	}
	if cfg.Auth.ActivationTTL <= 0 {
		cfg.Auth.ActivationTTL = defaultActivationTTL
	}
	return cfg, nil
}
