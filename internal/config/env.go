package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Env struct {
	AppPort          string
	AppEnv           string
	DBDriver         string
	DatabaseURL      string
	RedisAddress     string
	RedisPassword    string
	RedisDB          int
	HistoryCacheTTL  time.Duration
	HistoryLimit     int
	CORSAllowOrigins string
	RateLimit        float64
	RateBurst        int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "3000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("REDIS_ADDRESS", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("HISTORY_CACHE_TTL", "5m")
	v.SetDefault("HISTORY_LIMIT", 100)
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT", 50)
	v.SetDefault("RATE_BURST", 100)
}

// LoadEnv reads the optional dotenv files, then the process environment.
// Variables already set in the environment win over file values.
func LoadEnv(files ...string) (*Env, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !isNotExist(err) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	env := &Env{
		AppPort:          v.GetString("APP_PORT"),
		AppEnv:           v.GetString("APP_ENV"),
		DBDriver:         strings.ToLower(v.GetString("DB_DRIVER")),
		DatabaseURL:      v.GetString("DATABASE_URL"),
		RedisAddress:     v.GetString("REDIS_ADDRESS"),
		RedisPassword:    v.GetString("REDIS_PASSWORD"),
		RedisDB:          v.GetInt("REDIS_DB"),
		HistoryCacheTTL:  v.GetDuration("HISTORY_CACHE_TTL"),
		HistoryLimit:     v.GetInt("HISTORY_LIMIT"),
		CORSAllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		RateLimit:        v.GetFloat64("RATE_LIMIT"),
		RateBurst:        v.GetInt("RATE_BURST"),
	}

	if err := env.validate(); err != nil {
		return nil, err
	}

	return env, nil
}

func (e *Env) validate() error {
	switch e.DBDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", e.DBDriver)
	}

	if e.HistoryLimit <= 0 {
		return fmt.Errorf("HISTORY_LIMIT must be positive, got %d", e.HistoryLimit)
	}

	return nil
}

func (e *Env) CacheEnabled() bool {
	return e.RedisAddress != ""
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
