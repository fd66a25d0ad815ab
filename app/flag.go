package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Write debug entries to the log file",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Skip the confirmation prompt",
	}

	// session metadata
	nameFlag = &cli.StringFlag{
		Name:    "name",
		Aliases: []string{"n"},
		Usage:   "Session name. Defaults to the date and kind",
	}

	dateFlag = &cli.StringFlag{
		Name:  "date",
		Usage: "Session date (e.g. '2025-03-08', 'yesterday 18:00')",
	}

	kindFlag = &cli.StringFlag{
		Name:    "kind",
		Aliases: []string{"k"},
		Usage:   "Session kind: Training or Competition",
	}

	envFlag = &cli.StringFlag{
		Name:    "env",
		Aliases: []string{"e"},
		Usage:   "Environment: Indoor or Outdoor",
	}

	targetFlag = &cli.StringFlag{
		Name:    "target",
		Aliases: []string{"t"},
		Usage:   "Target face: Trispot, 40cm, 60cm or 120cm",
	}

	distanceFlag = &cli.IntFlag{
		Name:  "distance",
		Usage: "Shooting distance in metres",
	}

	// filters
	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "Time period: today, yesterday, 7days, 14days, 30days, 90days, 180days, 365days or all-time",
	}

	fromFlag = &cli.StringFlag{
		Name:  "from",
		Usage: "Only include sessions on or after this date",
	}

	toFlag = &cli.StringFlag{
		Name:  "to",
		Usage: "Only include sessions on or before this date",
	}

	// scoring
	inputFlag = &cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage:   "Score without the scorecard: space separated entries such as '10 9 X M 8@0.52,0.47'",
	}

	volleyFlag = &cli.IntFlag{
		Name:  "volley",
		Usage: "Start scoring at this volley (1-20)",
	}

	noScoreFlag = &cli.BoolFlag{
		Name:  "no-score",
		Usage: "Create the session without opening the scorecard",
	}

	autosaveDelayFlag = &cli.StringFlag{
		Name:  "autosave-delay",
		Usage: "Quiet period before changes are saved (e.g. 500ms)",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears when a session is complete",
	}

	cmdFlag = &cli.StringFlag{
		Name:  "cmd",
		Usage: "Execute an arbitrary command when a session is complete",
	}

	// statistics
	unitFlag = &cli.StringFlag{
		Name:  "unit",
		Usage: "Unit used to judge the group centre: normalized or mm",
		Value: "normalized",
	}

	compareTargetFlag = &cli.StringFlag{
		Name:  "compare-target",
		Usage: "Target face used for the training/competition comparison",
	}

	compareDistanceFlag = &cli.IntFlag{
		Name:  "compare-distance",
		Usage: "Distance used for the training/competition comparison",
	}

	sortFlag = &cli.StringFlag{
		Name:  "sort",
		Usage: "Sort sessions by date, name or total",
		Value: "date",
	}

	// server
	portFlag = &cli.UintFlag{
		Name:  "port",
		Usage: "Specify the port for the API server",
	}

	openFlag = &cli.BoolFlag{
		Name:  "open",
		Usage: "Open the statistics endpoint in the browser",
	}
)

var (
	metaFlags   = []cli.Flag{nameFlag, dateFlag, kindFlag, envFlag, targetFlag, distanceFlag}
	filterFlags = []cli.Flag{periodFlag, fromFlag, toFlag, kindFlag, envFlag, targetFlag, distanceFlag}
	scoreFlags  = []cli.Flag{autosaveDelayFlag, disableNotificationFlag, cmdFlag}
)

func withFlags(groups ...[]cli.Flag) []cli.Flag {
	var flags []cli.Flag

	for _, g := range groups {
		flags = append(flags, g...)
	}

	return flags
}
