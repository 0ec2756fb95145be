// Package config loads the navgrid configuration file.
//
// The file is TOML:
//
//	distance  = "sampled"   # "endpoint" (default) or "sampled"
//	samples   = 6           # sample count for the sampled strategy
//	log_level = "debug"     # debug, info, warn or error
//
//	[server]
//	addr    = ":8080"
//	timeout = "30s"
//
// A missing file is not an error: every key has a default.
package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/navgrid/pkg/errors"
	"github.com/matzehuels/navgrid/pkg/geom"
)

const (
	appName  = "navgrid"
	fileName = "navgrid.toml"
)

// Config is the decoded configuration file.
type Config struct {
	Distance string `toml:"distance"`
	Samples  int    `toml:"samples"`
	LogLevel string `toml:"log_level"`
	Server   Server `toml:"server"`
}

// Server configures the HTTP inspection API.
type Server struct {
	Addr    string `toml:"addr"`
	Timeout string `toml:"timeout"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Distance: geom.DistanceEndpoint,
		Samples:  geom.DefaultSamples,
		LogLevel: "info",
		Server: Server{
			Addr:    ":8080",
			Timeout: "30s",
		},
	}
}

// Path returns the default configuration file location using the XDG
// standard (~/.config/navgrid/navgrid.toml).
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the configuration file at path on top of the defaults. An
// empty path selects [Path]; a missing default file yields the defaults,
// while a missing explicit file is an error. Load returns the path that was
// read, or "" when none was.
func Load(path string) (Config, string, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return cfg, "", nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			if explicit {
				return cfg, "", errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
			}
			return Default(), "", nil
		}
		return cfg, "", errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return cfg, path, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return cfg, path, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", path)
	}
	return cfg, path, nil
}

// Validate checks every key's value.
func (c Config) Validate() error {
	if _, err := c.DistanceFunc(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := c.Server.RequestTimeout(); err != nil {
		return err
	}
	if c.Server.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "server.addr cannot be empty")
	}
	return nil
}

// DistanceFunc returns the configured candidate distance strategy.
func (c Config) DistanceFunc() (geom.DistanceFunc, error) {
	if c.Distance == geom.DistanceSampled && c.Samples < 2 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "samples must be at least 2, got %d", c.Samples)
	}
	fn, err := geom.DistanceByName(c.Distance, c.Samples)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "distance")
	}
	return fn, nil
}

// Level returns the configured log level.
func (c Config) Level() (log.Level, error) {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel, errors.Wrap(errors.ErrCodeInvalidConfig, err, "log_level")
	}
	return lvl, nil
}

// RequestTimeout returns the per-request timeout. Zero disables it.
func (s Server) RequestTimeout() (time.Duration, error) {
	if s.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s.Timeout)
	if err != nil || d < 0 {
		return 0, errors.New(errors.ErrCodeInvalidConfig, "server.timeout %q is not a valid duration", s.Timeout)
	}
	return d, nil
}
