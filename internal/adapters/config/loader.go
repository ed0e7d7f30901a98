// Package config provides the configuration loader for routeflow.
package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"go.trai.ch/routeflow/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the config file looked up when none is specified.
const DefaultFilename = "routeflow.yaml"

// Defaults matching the loader and preloader behavior when the config file
// is absent or a field is unset.
const (
	DefaultLoaderDelay   = 200 * time.Millisecond
	DefaultLoaderTimeout = 3000 * time.Millisecond
	DefaultRetryTimes    = 3
	DefaultRetryDelay    = 1000 * time.Millisecond
	DefaultIdleDelay     = 50 * time.Millisecond
	DefaultCacheEntries  = 20
	DefaultStoragePath   = ".routeflow/state.json"
)

// Config is the runtime configuration consumed by the engines and adapters.
type Config struct {
	Storage struct {
		Path string
	}
	Cache struct {
		MaxEntries int
	}
	Loader struct {
		Delay      time.Duration
		Timeout    time.Duration
		RetryTimes int
		RetryDelay time.Duration
	}
	Preload struct {
		IdleDelay   time.Duration
		Relations   map[string][]string
		KnownRoutes []string
	}
	Provider struct {
		URL        string
		RoutesFile string
	}

	BaseRoutes   []domain.Route
	StaticRoutes []domain.Route
	Modules      map[string]ModuleSpec
}

// ModuleSpec describes one manifest entry the module loader can resolve.
type ModuleSpec struct {
	Title string
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.Storage.Path = DefaultStoragePath
	cfg.Cache.MaxEntries = DefaultCacheEntries
	cfg.Loader.Delay = DefaultLoaderDelay
	cfg.Loader.Timeout = DefaultLoaderTimeout
	cfg.Loader.RetryTimes = DefaultRetryTimes
	cfg.Loader.RetryDelay = DefaultRetryDelay
	cfg.Preload.IdleDelay = DefaultIdleDelay
	cfg.Preload.Relations = map[string][]string{}
	cfg.Modules = map[string]ModuleSpec{}
	return cfg
}

// Load reads a configuration file from the given path. A missing file yields
// the defaults; a malformed file is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var schema fileSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	return fromSchema(schema), nil
}

func fromSchema(schema fileSchema) *Config {
	cfg := Default()

	if schema.Storage.Path != "" {
		cfg.Storage.Path = schema.Storage.Path
	}
	if schema.Cache.MaxEntries > 0 {
		cfg.Cache.MaxEntries = schema.Cache.MaxEntries
	}
	if schema.Loader.DelayMs > 0 {
		cfg.Loader.Delay = time.Duration(schema.Loader.DelayMs) * time.Millisecond
	}
	if schema.Loader.TimeoutMs > 0 {
		cfg.Loader.Timeout = time.Duration(schema.Loader.TimeoutMs) * time.Millisecond
	}
	if schema.Loader.RetryTimes > 0 {
		cfg.Loader.RetryTimes = schema.Loader.RetryTimes
	}
	if schema.Loader.RetryDelayMs > 0 {
		cfg.Loader.RetryDelay = time.Duration(schema.Loader.RetryDelayMs) * time.Millisecond
	}
	if schema.Preload.IdleDelayMs > 0 {
		cfg.Preload.IdleDelay = time.Duration(schema.Preload.IdleDelayMs) * time.Millisecond
	}
	if schema.Preload.Relations != nil {
		cfg.Preload.Relations = schema.Preload.Relations
	}
	cfg.Preload.KnownRoutes = schema.Preload.KnownRoutes
	cfg.Provider.URL = schema.Provider.URL
	cfg.Provider.RoutesFile = schema.Provider.RoutesFile

	cfg.BaseRoutes = routesToDomain(schema.BaseRoutes)
	cfg.StaticRoutes = routesToDomain(schema.StaticRoutes)

	for path, m := range schema.Modules {
		cfg.Modules[path] = ModuleSpec{Title: m.Title}
	}

	return cfg
}

// LoadRoutesFile reads a standalone route descriptor list, the payload shape
// the file-backed provider serves.
func LoadRoutesFile(path string) ([]domain.Route, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read routes file")
	}

	var dtos []routeDTO
	if err := yaml.Unmarshal(data, &dtos); err != nil {
		return nil, zerr.Wrap(err, "failed to parse routes file")
	}

	return routesToDomain(dtos), nil
}
