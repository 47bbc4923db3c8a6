package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const envPrefix = "SELFLAB_"

// Config defines application configuration.
type Config struct {
	Server    ServerConfig `yaml:"server"`
	Store     StoreConfig  `yaml:"store"`
	ID        IDConfig     `yaml:"id"`
	Log       LogConfig    `yaml:"log"`
	Transport string       `yaml:"transport" validate:"oneof=stdio http"`
	Timezone  string       `yaml:"timezone" validate:"required"`
}

type ServerConfig struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"gte=1,lte=65535"`
}

// StoreConfig selects the persistence backend. Path is a directory for the
// file backend and a database file for sqlite.
type StoreConfig struct {
	Backend string      `yaml:"backend" validate:"oneof=memory file sqlite redis"`
	Path    string      `yaml:"path" validate:"required_if=Backend file,required_if=Backend sqlite"`
	Redis   RedisConfig `yaml:"redis"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db" validate:"gte=0"`
	Prefix   string `yaml:"prefix"`
}

type IDConfig struct {
	Scheme string `yaml:"scheme" validate:"oneof=uuid ulid"`
}

type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn warning error"`
	Path  string `yaml:"path"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8080,
		},
		Store: StoreConfig{
			Backend: "sqlite",
			Path:    "selflab.db",
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "selflab:",
			},
		},
		ID:        IDConfig{Scheme: "uuid"},
		Log:       LogConfig{Level: "info"},
		Transport: "stdio",
		Timezone:  "Local",
	}
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Default()

	if path := getenv("CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints and that the timezone resolves.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Store.Backend == "redis" && c.Store.Redis.Addr == "" {
		return fmt.Errorf("invalid config: store.redis.addr is required for the redis backend")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Location resolves Timezone. "Local" maps to the host zone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Addr returns the HTTP listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func applyEnv(cfg *Config) error {
	if host := getenv("SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := getenv("SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("invalid %sSERVER_PORT: %w", envPrefix, err)
		}
		cfg.Server.Port = port
	}
	if transport := getenv("TRANSPORT"); transport != "" {
		cfg.Transport = transport
	}
	if backend := getenv("STORE_BACKEND"); backend != "" {
		cfg.Store.Backend = backend
	}
	if path := getenv("STORE_PATH"); path != "" {
		cfg.Store.Path = path
	}
	if addr := getenv("REDIS_ADDR"); addr != "" {
		cfg.Store.Redis.Addr = addr
	}
	if prefix := getenv("REDIS_PREFIX"); prefix != "" {
		cfg.Store.Redis.Prefix = prefix
	}
	if scheme := getenv("ID_SCHEME"); scheme != "" {
		cfg.ID.Scheme = scheme
	}
	if level := getenv("LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if path := getenv("LOG_PATH"); path != "" {
		cfg.Log.Path = path
	}
	if tz := getenv("TIMEZONE"); tz != "" {
		cfg.Timezone = tz
	}
	return nil
}

func getenv(name string) string {
	return os.Getenv(envPrefix + name)
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
