// Package config loads and validates quiver settings
package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/ayoisaiah/quiver/internal/session"
	"github.com/ayoisaiah/quiver/stats"
)

type (
	// Config holds all configuration settings
	Config struct {
		Defaults DefaultsConfig
		System   SystemConfig
		Scoring  ScoringConfig
		Compare  CompareConfig
		Server   ServerConfig
		Display  DisplayConfig
	}

	// ScoringConfig holds settings for the live scorecard
	ScoringConfig struct {
		Cmd           string
		AutosaveDelay time.Duration
		Notify        bool
	}

	// CompareConfig selects the subpopulation used to compare training
	// against competition
	CompareConfig struct {
		Target   session.TargetType
		Distance int
	}

	// DefaultsConfig holds the metadata prefilled for new sessions
	DefaultsConfig struct {
		Kind        session.Kind
		Environment session.Environment
		Target      session.TargetType
		Distance    int
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme bool
	}

	// ServerConfig holds the settings of the HTTP API
	ServerConfig struct {
		Port uint
	}

	// SystemConfig holds system-related settings
	SystemConfig struct {
		ConfigPath string
		DBPath     string
		LogPath    string
		Debug      bool
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.1.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config and applies options in order. The result is
// validated once every option has run.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// WithSystem records where quiver keeps its files.
func WithSystem(sys SystemConfig) Option {
	return func(c *Config) error {
		c.System = sys
		return nil
	}
}

// CompareOptions returns the subpopulation used by the comparison report.
func (c *Config) CompareOptions() stats.CompareOptions {
	return stats.CompareOptions{
		TargetType: c.Compare.Target,
		Distance:   c.Compare.Distance,
	}
}

// DefaultMeta returns the metadata new sessions start from.
func (c *Config) DefaultMeta() session.Meta {
	return session.Meta{
		Kind:        c.Defaults.Kind,
		Environment: c.Defaults.Environment,
		TargetType:  c.Defaults.Target,
		Distance:    c.Defaults.Distance,
	}
}

// Addr returns the listen address of the HTTP API.
func (c *Config) Addr() string {
	return ":" + strconv.FormatUint(uint64(c.Server.Port), 10)
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"autosave=%s notify=%t compare=%s@%dm port=%d",
		c.Scoring.AutosaveDelay,
		c.Scoring.Notify,
		c.Compare.Target,
		c.Compare.Distance,
		c.Server.Port,
	)
}
