package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/quiver/internal/config"
	"github.com/ayoisaiah/quiver/internal/logging"
	"github.com/ayoisaiah/quiver/internal/pathutil"
	"github.com/ayoisaiah/quiver/internal/static"
	"github.com/ayoisaiah/quiver/internal/ui"
	"github.com/ayoisaiah/quiver/store"
)

const (
	envNoColor       = "NO_COLOR"
	envQuiverNoColor = "QUIVER_NO_COLOR"
)

var logCloser io.Closer

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// loadConfig reads the config file and applies the command-line overrides.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg, err := config.New(
		config.WithSystem(config.SystemConfig{
			ConfigPath: pathutil.ConfigFilePath(),
			DBPath:     pathutil.DBFilePath(),
			LogPath:    pathutil.LogFilePath(),
		}),
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	slog.Debug("configuration loaded", slog.String("config", cfg.String()))

	return cfg, nil
}

// setup loads the configuration and opens the session database.
func setup(ctx *cli.Context) (*config.Config, *store.Client, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, nil, err
	}

	db, err := store.NewClient(cfg.System.DBPath)
	if err != nil {
		return nil, nil, err
	}

	return cfg, db, nil
}

// editConfigAction handles the edit-config command which opens the quiver
// config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	// writes the default config file if it does not exist yet
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	cmd := exec.Command(editor, cfg.System.ConfigPath)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if QUIVER_NO_COLOR is set
	if _, exists := os.LookupEnv(envQuiverNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	if err := pathutil.Initialize(); err != nil {
		return err
	}

	closer, err := logging.Setup(logging.Options{
		Path:  pathutil.LogFilePath(),
		Debug: ctx.Bool("debug"),
	})
	if err != nil {
		return fmt.Errorf("setting up the log file: %w", err)
	}

	logCloser = closer

	if err := static.Install(pathutil.Dir()); err != nil {
		slog.Warn("unable to install static files", slog.Any("error", err))
	}

	slog.InfoContext(ctx.Context, "starting quiver", slog.Any("args", ctx.Args().Slice()))

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting quiver")

	if logCloser != nil {
		return logCloser.Close()
	}

	return nil
}
