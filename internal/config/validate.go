package config

import (
	"time"

	"github.com/ayoisaiah/quiver/internal/session"
)

var (
	minAutosaveDelay = 50 * time.Millisecond
	maxAutosaveDelay = time.Minute

	maxDistance = 150
	maxPort     = 65535
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateScoring(); err != nil {
		return err
	}

	if err := validateDistance("compare", c.Compare.Distance, false); err != nil {
		return err
	}

	if _, ok := session.ParseTargetType(string(c.Compare.Target)); !ok {
		return errUnknownTarget.Fmt(c.Compare.Target)
	}

	if err := c.validateDefaults(); err != nil {
		return err
	}

	if c.Server.Port == 0 || c.Server.Port > uint(maxPort) {
		return errInvalidPort.Fmt(c.Server.Port)
	}

	return nil
}

func (c *Config) validateScoring() error {
	d := c.Scoring.AutosaveDelay
	if d < minAutosaveDelay || d > maxAutosaveDelay {
		return errInvalidAutosaveDelay.Fmt(minAutosaveDelay, maxAutosaveDelay, d)
	}

	return nil
}

// validateDefaults accepts empty defaults, which leave the field unset on
// new sessions.
func (c *Config) validateDefaults() error {
	d := c.Defaults

	if d.Kind != "" {
		if _, ok := session.ParseKind(string(d.Kind)); !ok {
			return errUnknownKind.Fmt(d.Kind)
		}
	}

	if d.Environment != "" {
		if _, ok := session.ParseEnvironment(string(d.Environment)); !ok {
			return errUnknownEnvironment.Fmt(d.Environment)
		}
	}

	if d.Target != "" {
		if _, ok := session.ParseTargetType(string(d.Target)); !ok {
			return errUnknownTarget.Fmt(d.Target)
		}
	}

	return validateDistance("default", d.Distance, true)
}

func validateDistance(label string, d int, allowZero bool) error {
	if allowZero && d == 0 {
		return nil
	}

	if d < 1 || d > maxDistance {
		return errInvalidDistance.Fmt(label, maxDistance, d)
	}

	return nil
}
