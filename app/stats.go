package app

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/quiver/internal/config"
	"github.com/ayoisaiah/quiver/interpret"
	"github.com/ayoisaiah/quiver/report"
	"github.com/ayoisaiah/quiver/server"
)

// parseUnit converts the value of the --unit flag.
func parseUnit(s string) (interpret.Unit, error) {
	switch s {
	case "", "normalized":
		return interpret.Normalized, nil
	case "mm":
		return interpret.Millimeters, nil
	default:
		return interpret.Normalized, errInvalidUnit.Fmt(s)
	}
}

// buildReport computes the report for the sessions matching the filter
// flags.
func buildReport(ctx *cli.Context) (*report.Report, error) {
	unit, err := parseUnit(ctx.String("unit"))
	if err != nil {
		return nil, err
	}

	cfg, db, err := setup(ctx)
	if err != nil {
		return nil, err
	}

	defer db.Close()

	filter, err := config.Filter(ctx)
	if err != nil {
		return nil, err
	}

	sessions, err := db.Find(filter.Query())
	if err != nil {
		return nil, err
	}

	slog.Debug(
		"building report",
		slog.Int("sessions", len(sessions)),
		slog.Time("start", filter.StartTime),
		slog.Time("end", filter.EndTime),
	)

	return report.New(sessions, report.Opts{
		StartTime: filter.StartTime,
		EndTime:   filter.EndTime,
		Compare:   cfg.CompareOptions(),
		Unit:      unit,
	}), nil
}

func printJSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	fmt.Fprintln(config.Stdout, string(b))

	return nil
}

// statsAction handles the stats command which prints the statistics and
// interpretation of the filtered sessions.
func statsAction(ctx *cli.Context) error {
	rep, err := buildReport(ctx)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return printJSON(rep)
	}

	rep.Show(config.Stdout)

	return nil
}

// compareAction handles the compare command which contrasts competition and
// training sessions shot under the configured conditions.
func compareAction(ctx *cli.Context) error {
	rep, err := buildReport(ctx)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return printJSON(rep.Comparison)
	}

	rep.ShowComparison(config.Stdout)

	return nil
}

// serveAction handles the serve command which exposes the sessions and
// statistics over HTTP until interrupted.
func serveAction(ctx *cli.Context) error {
	cfg, db, err := setup(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	sigCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := cfg.Addr()

	pterm.Info.Printfln("serving statistics on http://localhost%s", addr)

	if ctx.Bool("open") {
		go func() {
			url := "http://localhost" + addr + "/api/statistics"
			if err := server.OpenBrowser(url); err != nil {
				slog.Error("unable to open browser", slog.Any("error", err))
			}
		}()
	}

	return server.New(db, cfg.CompareOptions()).ListenAndServe(sigCtx, addr)
}
