package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gyeh/clinicmap/internal/geo"
	"github.com/gyeh/clinicmap/internal/model"
)

// Counter backends.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// DefaultCounterKey is the key of the page-view total.
const DefaultCounterKey = "views:total"

// Config holds all runtime configuration for a clinicmap run.
type Config struct {
	DatasetPath string
	LogFormat   string // "text" or "json"
	LogLevel    string
	Strict      bool
	MaxRadiusKm float64
	Filter      string // all, has or none
	Bounds      geo.Bounds
	Env         string // reported by GET /api/views
	Counter     Counter
}

// Counter selects and configures the view-counter store.
type Counter struct {
	Backend       string
	DSN           string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	Key           string
}

// Defaults returns the configuration used when neither flags nor a file
// override a value.
func Defaults() Config {
	return Config{
		LogFormat:   "text",
		LogLevel:    "info",
		MaxRadiusKm: 30,
		Filter:      string(model.FilterAll),
		Bounds:      geo.TaiwanBounds,
		Env:         "development",
		Counter: Counter{
			Backend: BackendMemory,
			Key:     DefaultCounterKey,
		},
	}
}

// yamlConfig is the on-disk YAML structure. Pointer fields distinguish an
// absent key from a zero value so only keys present in the file override.
type yamlConfig struct {
	LogFormat   *string      `yaml:"log_format"`
	LogLevel    *string      `yaml:"log_level"`
	MaxRadiusKm *float64     `yaml:"max_radius_km"`
	Strict      *bool        `yaml:"strict"`
	Filter      *string      `yaml:"filter"`
	Env         *string      `yaml:"env"`
	Bounds      *geo.Bounds  `yaml:"bounds"`
	Counter     *yamlCounter `yaml:"counter"`
}

type yamlCounter struct {
	Backend       *string `yaml:"backend"`
	DSN           *string `yaml:"dsn"`
	RedisAddr     *string `yaml:"redis_addr"`
	RedisPassword *string `yaml:"redis_password"`
	RedisDB       *int    `yaml:"redis_db"`
	Key           *string `yaml:"key"`
}

// LoadFromFile reads a YAML config file and merges the keys it sets into
// Config.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	setIf(&c.LogFormat, yc.LogFormat)
	setIf(&c.LogLevel, yc.LogLevel)
	setIf(&c.MaxRadiusKm, yc.MaxRadiusKm)
	setIf(&c.Strict, yc.Strict)
	setIf(&c.Filter, yc.Filter)
	setIf(&c.Env, yc.Env)
	setIf(&c.Bounds, yc.Bounds)
	if cc := yc.Counter; cc != nil {
		setIf(&c.Counter.Backend, cc.Backend)
		setIf(&c.Counter.DSN, cc.DSN)
		setIf(&c.Counter.RedisAddr, cc.RedisAddr)
		setIf(&c.Counter.RedisPassword, cc.RedisPassword)
		setIf(&c.Counter.RedisDB, cc.RedisDB)
		setIf(&c.Counter.Key, cc.Key)
	}
	return nil
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// Validate checks the settings every dataset command needs.
func (c *Config) Validate() error {
	if c.DatasetPath == "" {
		return fmt.Errorf("--file is required")
	}
	if _, err := os.Stat(c.DatasetPath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}
	if !(c.MaxRadiusKm > 0) {
		return fmt.Errorf("max radius must be positive, got %v", c.MaxRadiusKm)
	}
	if _, err := model.ParseFilter(c.Filter); err != nil {
		return err
	}
	if c.Bounds != (geo.Bounds{}) {
		b := c.Bounds
		if b.MinLat >= b.MaxLat || b.MinLng >= b.MaxLng {
			return fmt.Errorf("bounds are not ordered: lat [%v, %v], lng [%v, %v]",
				b.MinLat, b.MaxLat, b.MinLng, b.MaxLng)
		}
	}
	return nil
}

// ValidateCounter checks the counter backend name and key. Connection
// settings are checked when the store is opened.
func (c *Config) ValidateCounter() error {
	switch strings.ToLower(c.Counter.Backend) {
	case BackendMemory, BackendPostgres, BackendRedis:
	default:
		return fmt.Errorf("unknown counter backend %q (want memory, postgres or redis)", c.Counter.Backend)
	}
	if strings.TrimSpace(c.Counter.Key) == "" {
		return fmt.Errorf("counter key must not be empty")
	}
	return nil
}
