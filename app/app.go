// Package app wires the quiver command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/quiver/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the quiver app instance.
func Get() *cli.App {
	quiverApp := &cli.App{
		Name: "quiver",
		Usage: `
		Quiver is an archery scorebook for the command-line. Record sessions of 
		20 volleys of 3 arrows, then review scores, grouping and the gap 
		between training and competition.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:    "new",
				Aliases: []string{"n"},
				Usage:   "Start a new session and open the scorecard",
				Flags:   withFlags(metaFlags, scoreFlags, []cli.Flag{noScoreFlag, inputFlag}),
				Action:  newAction,
			},
			{
				Name:      "score",
				Usage:     "Continue scoring a session (defaults to the most recent one)",
				ArgsUsage: "[SESSION ID]",
				Flags:     withFlags(scoreFlags, []cli.Flag{inputFlag, volleyFlag}),
				Action:    scoreAction,
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List saved sessions",
				Flags:   withFlags(filterFlags, []cli.Flag{sortFlag, jsonFlag}),
				Action:  listAction,
			},
			{
				Name:      "show",
				Usage:     "Print the scorecard of a session",
				ArgsUsage: "<SESSION ID>",
				Flags:     []cli.Flag{jsonFlag},
				Action:    showAction,
			},
			{
				Name:      "edit",
				Usage:     "Edit the details of a session",
				ArgsUsage: "<SESSION ID>",
				Flags:     metaFlags,
				Action:    editAction,
			},
			{
				Name:      "delete",
				Usage:     "Delete sessions by id or by filter",
				ArgsUsage: "[SESSION ID...]",
				Flags:     withFlags(filterFlags, []cli.Flag{yesFlag}),
				Action:    deleteAction,
			},
			{
				Name:  "stats",
				Usage: "Print scoring statistics, grouping analysis and advice",
				Flags: withFlags(filterFlags, []cli.Flag{
					unitFlag,
					compareTargetFlag,
					compareDistanceFlag,
					jsonFlag,
				}),
				Action: statsAction,
			},
			{
				Name:  "compare",
				Usage: "Compare competition and training averages",
				Flags: withFlags(filterFlags, []cli.Flag{
					compareTargetFlag,
					compareDistanceFlag,
					jsonFlag,
				}),
				Action: compareAction,
			},
			{
				Name:   "serve",
				Usage:  "Serve sessions and statistics over HTTP",
				Flags:  []cli.Flag{portFlag, compareTargetFlag, compareDistanceFlag, openFlag},
				Action: serveAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			noColorFlag,
			debugFlag,
		},
		Before: beforeAction,
		After:  afterAction,
	}

	return quiverApp
}
