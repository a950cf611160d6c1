package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	SnapshotBackendFile  = "file"
	SnapshotBackendRedis = "redis"
)

type Config struct {
	Server   ServerConfig
	Redis    RedisConfig
	Snapshot SnapshotConfig
	Log      LogConfig
	Autosave AutosaveConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// SnapshotConfig - где хранится снапшот агентства
type SnapshotConfig struct {
	Backend  string
	Path     string
	RedisKey string
}

type LogConfig struct {
	Level string
}

type AutosaveConfig struct {
	Enabled  bool
	Interval time.Duration
}

// Load - конфигурация из .env в рабочей директории и переменных окружения
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom - как Load, но с явным путём к файлу. Отсутствие файла не ошибка.
func LoadFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Snapshot: SnapshotConfig{
			Backend:  strings.ToLower(strings.TrimSpace(v.GetString("SNAPSHOT_BACKEND"))),
			Path:     v.GetString("SNAPSHOT_PATH"),
			RedisKey: v.GetString("SNAPSHOT_REDIS_KEY"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Autosave: AutosaveConfig{
			Enabled:  v.GetBool("AUTOSAVE_ENABLED"),
			Interval: time.Duration(v.GetInt("AUTOSAVE_INTERVAL")) * time.Second,
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SNAPSHOT_BACKEND", SnapshotBackendFile)
	v.SetDefault("SNAPSHOT_PATH", "data/agency.json")
	v.SetDefault("SNAPSHOT_REDIS_KEY", "travel-agency:snapshot")
	v.SetDefault("AUTOSAVE_ENABLED", false)
	v.SetDefault("AUTOSAVE_INTERVAL", 60)
}

func (c *Config) validate() error {
	switch c.Snapshot.Backend {
	case SnapshotBackendFile, SnapshotBackendRedis:
	default:
		return fmt.Errorf("unknown snapshot backend %q", c.Snapshot.Backend)
	}
	if c.Autosave.Enabled && c.Autosave.Interval <= 0 {
		return fmt.Errorf("autosave interval must be positive")
	}
	return nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return c.Redis.Addr()
}

func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}
