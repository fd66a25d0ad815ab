package config

import (
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/quiver/internal/session"
	"github.com/ayoisaiah/quiver/internal/timeutil"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	AutosaveDelay   string
	Cmd             string
	CompareTarget   string
	CompareDistance int
	Port            uint
	DisableNotify   bool
	Debug           bool
}

// MetaOptions represents the command-line flags that describe a session.
type MetaOptions struct {
	Name        string
	Date        string
	Kind        string
	Environment string
	Target      string
	Distance    int
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
// Flags that are not set leave the configured value untouched.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			AutosaveDelay:   ctx.String("autosave-delay"),
			Cmd:             ctx.String("cmd"),
			CompareTarget:   ctx.String("compare-target"),
			CompareDistance: ctx.Int("compare-distance"),
			Port:            ctx.Uint("port"),
			DisableNotify:   ctx.Bool("disable-notification"),
			Debug:           ctx.Bool("debug"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.AutosaveDelay != "" {
		d, err := parseDuration(opts.AutosaveDelay)
		if err != nil {
			return err
		}

		c.Scoring.AutosaveDelay = d
	}

	if opts.Cmd != "" {
		c.Scoring.Cmd = opts.Cmd
	}

	if opts.DisableNotify {
		c.Scoring.Notify = false
	}

	if opts.CompareTarget != "" {
		c.Compare.Target = canonicalTarget(opts.CompareTarget)
	}

	if opts.CompareDistance != 0 {
		c.Compare.Distance = opts.CompareDistance
	}

	if opts.Port != 0 {
		c.Server.Port = opts.Port
	}

	if opts.Debug {
		c.System.Debug = true
	}

	return nil
}

// SessionMeta builds the metadata of a session from command-line flags,
// falling back to defaults for anything left unset.
func SessionMeta(ctx *cli.Context, defaults session.Meta) (session.Meta, error) {
	return applyMetaOptions(defaults, MetaOptions{
		Name:        ctx.String("name"),
		Date:        ctx.String("date"),
		Kind:        ctx.String("kind"),
		Environment: ctx.String("env"),
		Target:      ctx.String("target"),
		Distance:    ctx.Int("distance"),
	}, time.Now())
}

func applyMetaOptions(
	meta session.Meta,
	opts MetaOptions,
	now time.Time,
) (session.Meta, error) {
	if name := strings.TrimSpace(opts.Name); name != "" {
		meta.Name = name
	}

	if opts.Date != "" {
		d, err := timeutil.FromStr(opts.Date, now)
		if err != nil {
			return meta, errInvalidDate.Fmt(opts.Date).Wrap(err)
		}

		meta.Date = d
	}

	if opts.Kind != "" {
		k, ok := session.ParseKind(opts.Kind)
		if !ok {
			return meta, errUnknownKind.Fmt(opts.Kind)
		}

		meta.Kind = k
	}

	if opts.Environment != "" {
		e, ok := session.ParseEnvironment(opts.Environment)
		if !ok {
			return meta, errUnknownEnvironment.Fmt(opts.Environment)
		}

		meta.Environment = e
	}

	if opts.Target != "" {
		t, ok := session.ParseTargetType(opts.Target)
		if !ok {
			return meta, errUnknownTarget.Fmt(opts.Target)
		}

		meta.TargetType = t
	}

	if opts.Distance != 0 {
		if err := validateDistance("session", opts.Distance, false); err != nil {
			return meta, err
		}

		meta.Distance = opts.Distance
	}

	return meta, nil
}
