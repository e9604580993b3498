package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is read once at startup and passed by reference to each component.
// Nothing outside this package touches viper.
type Config struct {
	Port       string // HTTP listen port, "8080" or ":8080"
	DBPath     string // sqlite file path
	MLBaseURL  string // base URL of the external ML service
	SigningKey string // HMAC key for session tokens
	LogLevel   string // debug | info | warn | error
}

const envPrefix = "STOCKCAST"

// Load reads configs/config.yml (optional) and STOCKCAST_* environment
// overrides (e.g. STOCKCAST_ML_URL, STOCKCAST_SIGNING_KEY) into a Config.
func Load() (*Config, error) {
	v := viper.New()
	v.AddConfigPath("configs")
	v.SetConfigName("config")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("db.path", "stockcast.db")
	v.SetDefault("log.level", "info")

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine when env vars carry the config.
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Port:       v.GetString("port"),
		DBPath:     v.GetString("db.path"),
		MLBaseURL:  v.GetString("ml.url"),
		SigningKey: v.GetString("signing.key"),
		LogLevel:   v.GetString("log.level"),
	}
	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	if c.MLBaseURL == "" {
		return errors.New("ml.url is required (STOCKCAST_ML_URL)")
	}
	if c.SigningKey == "" {
		return errors.New("signing.key is required (STOCKCAST_SIGNING_KEY)")
	}
	return nil
}
