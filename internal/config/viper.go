package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/quiver/internal/osutil"
	"github.com/ayoisaiah/quiver/internal/session"
	"github.com/ayoisaiah/quiver/scoring"
	"github.com/ayoisaiah/quiver/stats"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyAutosaveDelay      = "scoring.autosave_delay"
	keyNotify             = "scoring.notify"
	keyScoringCmd         = "scoring.cmd"
	keyCompareDistance    = "compare.distance"
	keyCompareTarget      = "compare.target"
	keyDefaultKind        = "defaults.kind"
	keyDefaultEnvironment = "defaults.environment"
	keyDefaultTarget      = "defaults.target"
	keyDefaultDistance    = "defaults.distance"
	keyDarkTheme          = "display.dark_theme"
	keyServerPort         = "server.port"
)

const defaultPort = 1111

// WithViperConfig returns an Option that loads configuration from Viper.
// A config file holding the defaults is written when none exists yet.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := os.MkdirAll(filepath.Dir(configPath), osutil.DirPermission); err != nil {
			return errWriteConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults.
func setupViper(v *viper.Viper) {
	v.SetDefault(keyAutosaveDelay, scoring.DefaultAutosaveDelay.String())
	v.SetDefault(keyNotify, true)
	v.SetDefault(keyScoringCmd, "")
	v.SetDefault(keyCompareDistance, stats.DefaultCompareDistance)
	v.SetDefault(keyCompareTarget, string(stats.DefaultCompareTarget))
	v.SetDefault(keyDefaultKind, string(session.Training))
	v.SetDefault(keyDefaultEnvironment, string(session.Indoor))
	v.SetDefault(keyDefaultTarget, string(session.Face40cm))
	v.SetDefault(keyDefaultDistance, stats.DefaultCompareDistance)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyServerPort, defaultPort)
}

// loadViperConfig loads configuration from Viper into the Config struct.
// Enumerations are canonicalised here and rejected later by Validate when
// they cannot be recognised.
func loadViperConfig(v *viper.Viper, c *Config) error {
	delay, err := parseDuration(v.GetString(keyAutosaveDelay))
	if err != nil {
		return fmt.Errorf("%s: %w", keyAutosaveDelay, err)
	}

	c.Scoring = ScoringConfig{
		AutosaveDelay: delay,
		Notify:        v.GetBool(keyNotify),
		Cmd:           v.GetString(keyScoringCmd),
	}

	c.Compare = CompareConfig{
		Target:   canonicalTarget(v.GetString(keyCompareTarget)),
		Distance: v.GetInt(keyCompareDistance),
	}

	c.Defaults = DefaultsConfig{
		Kind:        canonicalKind(v.GetString(keyDefaultKind)),
		Environment: canonicalEnvironment(v.GetString(keyDefaultEnvironment)),
		Target:      canonicalTarget(v.GetString(keyDefaultTarget)),
		Distance:    v.GetInt(keyDefaultDistance),
	}

	c.Display.DarkTheme = v.GetBool(keyDarkTheme)
	c.Server.Port = v.GetUint(keyServerPort)

	return nil
}

// parseDuration accepts duration strings. A bare number is read as
// milliseconds.
func parseDuration(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	ms, err := time.ParseDuration(s + "ms")
	if err != nil {
		return 0, fmt.Errorf("invalid duration format: %s", s)
	}

	return ms, nil
}

func canonicalKind(s string) session.Kind {
	if k, ok := session.ParseKind(s); ok {
		return k
	}

	return session.Kind(s)
}

func canonicalEnvironment(s string) session.Environment {
	if e, ok := session.ParseEnvironment(s); ok {
		return e
	}

	return session.Environment(s)
}

func canonicalTarget(s string) session.TargetType {
	if t, ok := session.ParseTargetType(s); ok {
		return t
	}

	return session.TargetType(s)
}
