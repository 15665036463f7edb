package config

import (
	"errors"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

const envFile = "./configs/.env"

var (
	once     sync.Once
	instance *Config
)

var defaults = map[string]string{
	"API_ADDRESS":          ":8080",
	"LOG_LEVEL":            "info",
	"CORS_ALLOWED_ORIGINS": "*",
	"SHUTDOWN_TIMEOUT":     "5s",
}

type Config struct {
}

// New loads ./configs/.env once. The file is optional; variables already
// set in the environment win over it.
func New() *Config {
	once.Do(func() {
		err := godotenv.Load(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Fatal("loading envs error: ", err)
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return defaults[key]
}

func (c *Config) GetList(key string) []string {
	var list []string
	for _, item := range strings.Split(c.GetString(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}

func (c *Config) GetDuration(key string) time.Duration {
	d, err := time.ParseDuration(c.GetString(key))
	if err != nil {
		d, _ = time.ParseDuration(defaults[key])
	}
	return d
}

// GetLogLevel maps LOG_LEVEL onto slog levels, defaulting to info.
func (c *Config) GetLogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.GetString("LOG_LEVEL"))); err != nil {
		return slog.LevelInfo
	}
	return level
}
