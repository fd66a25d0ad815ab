package config

import (
	"slices"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/quiver/internal/session"
	"github.com/ayoisaiah/quiver/internal/timeutil"
	"github.com/ayoisaiah/quiver/store"
)

// FilterConfig represents a configuration to filter sessions in the
// database by their date and descriptive attributes.
type FilterConfig struct {
	StartTime   time.Time
	EndTime     time.Time
	Kind        session.Kind
	Environment session.Environment
	TargetType  session.TargetType
	Distance    int
}

// FilterOptions holds the raw filter flags.
type FilterOptions struct {
	Period      string
	From        string
	To          string
	Kind        string
	Environment string
	Target      string
	Distance    int
}

// Query converts the filter into a database query.
func (f *FilterConfig) Query() *store.Query {
	return &store.Query{
		From:        f.StartTime,
		To:          f.EndTime,
		Kind:        f.Kind,
		Environment: f.Environment,
		TargetType:  f.TargetType,
		Distance:    f.Distance,
	}
}

// NewFilter validates opts and returns the matching filter. A period takes
// precedence over explicit dates. Without either every session matches.
func NewFilter(opts FilterOptions, now time.Time) (*FilterConfig, error) {
	f := &FilterConfig{}

	if err := f.setAttributes(opts); err != nil {
		return nil, err
	}

	period := timeutil.Period(strings.TrimSpace(opts.Period))

	if period != "" {
		if !slices.Contains(timeutil.PeriodCollection, period) {
			return nil, errInvalidPeriod.Fmt(period)
		}

		f.StartTime, f.EndTime = timeutil.PeriodRange(period, now)

		return f, nil
	}

	if opts.From != "" {
		t, err := timeutil.FromStr(opts.From, now)
		if err != nil {
			return nil, errInvalidDate.Fmt(opts.From).Wrap(err)
		}

		f.StartTime = timeutil.RoundToStart(t)
	}

	if opts.To != "" {
		t, err := timeutil.FromStr(opts.To, now)
		if err != nil {
			return nil, errInvalidDate.Fmt(opts.To).Wrap(err)
		}

		f.EndTime = timeutil.RoundToEnd(t)
	}

	if !f.StartTime.IsZero() && !f.EndTime.IsZero() &&
		f.EndTime.Before(f.StartTime) {
		return nil, errInvalidDateRange
	}

	return f, nil
}

func (f *FilterConfig) setAttributes(opts FilterOptions) error {
	if opts.Kind != "" {
		k, ok := session.ParseKind(opts.Kind)
		if !ok {
			return errUnknownKind.Fmt(opts.Kind)
		}

		f.Kind = k
	}

	if opts.Environment != "" {
		e, ok := session.ParseEnvironment(opts.Environment)
		if !ok {
			return errUnknownEnvironment.Fmt(opts.Environment)
		}

		f.Environment = e
	}

	if opts.Target != "" {
		t, ok := session.ParseTargetType(opts.Target)
		if !ok {
			return errUnknownTarget.Fmt(opts.Target)
		}

		f.TargetType = t
	}

	if opts.Distance < 0 {
		return errInvalidDistance.Fmt("filter", maxDistance, opts.Distance)
	}

	f.Distance = opts.Distance

	return nil
}

// Filter initializes and returns a configuration to filter sessions from
// command-line arguments.
func Filter(ctx *cli.Context) (*FilterConfig, error) {
	return NewFilter(FilterOptions{
		Period:      ctx.String("period"),
		From:        ctx.String("from"),
		To:          ctx.String("to"),
		Kind:        ctx.String("kind"),
		Environment: ctx.String("env"),
		Target:      ctx.String("target"),
		Distance:    ctx.Int("distance"),
	}, time.Now())
}
