package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Record store sources
const (
	StoreSourceSample   = "sample"
	StoreSourceFile     = "file"
	StoreSourcePostgres = "postgres"
)

type Config struct {
	App   AppConfig
	Store StoreConfig
	DB    DBConfig
	Redis RedisConfig
}

type AppConfig struct {
	Port     string
	Env      string
	LogLevel string
}

type StoreConfig struct {
	Source string
	File   string
	Seed   bool
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

// LoadConfig reads .env when present, then the environment, falling back to defaults
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_LOG_LEVEL", "info")
	v.SetDefault("STORE_SOURCE", StoreSourceSample)
	v.SetDefault("STORE_FILE", "doctors.yaml")
	v.SetDefault("STORE_SEED", false)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_TTL", "5m")

	// A missing .env is fine, the environment and defaults still apply
	_ = v.ReadInConfig()

	ttl, err := time.ParseDuration(v.GetString("REDIS_TTL"))
	if err != nil {
		ttl = 5 * time.Minute
	}

	config := &Config{
		App: AppConfig{
			Port:     v.GetString("APP_PORT"),
			Env:      v.GetString("APP_ENV"),
			LogLevel: v.GetString("APP_LOG_LEVEL"),
		},
		Store: StoreConfig{
			Source: v.GetString("STORE_SOURCE"),
			File:   v.GetString("STORE_FILE"),
			Seed:   v.GetBool("STORE_SEED"),
		},
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			TTL:      ttl,
		},
	}

	switch config.Store.Source {
	case StoreSourceSample, StoreSourceFile, StoreSourcePostgres:
	default:
		return nil, fmt.Errorf("unknown STORE_SOURCE %q", config.Store.Source)
	}

	return config, nil
}

func (c *Config) IsDev() bool {
	return c.App.Env == "development"
}
