package config

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/ayoisaiah/quiver/internal/session"
)

const asciiLogo = `
 ██████╗ ██╗   ██╗██╗██╗   ██╗███████╗██████╗
██╔═══██╗██║   ██║██║██║   ██║██╔════╝██╔══██╗
██║   ██║██║   ██║██║██║   ██║█████╗  ██████╔╝
██║▄▄ ██║██║   ██║██║╚██╗ ██╔╝██╔══╝  ██╔══██╗
╚██████╔╝╚██████╔╝██║ ╚████╔╝ ███████╗██║  ██║
 ╚══▀▀═╝  ╚═════╝ ╚═╝  ╚═══╝  ╚══════╝╚═╝  ╚═╝`

// PromptMeta asks for the details of a new session. Every field starts
// from meta so pressing ENTER accepts the configured defaults.
func PromptMeta(meta session.Meta) (session.Meta, error) {
	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Describe the session you are about to shoot.
Press ENTER to accept the defaults from your config file.
Leave the name empty to have one generated from the date and kind.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Session name").
				Placeholder(session.DefaultName(meta.Date, meta.Kind)).
				Value(&meta.Name),
			huh.NewSelect[session.Kind]().
				Title("Kind").
				Options(kindOptions(meta.Kind)...).
				Value(&meta.Kind),
			huh.NewSelect[session.Environment]().
				Title("Environment").
				Options(environmentOptions(meta.Environment)...).
				Value(&meta.Environment),
		),
		huh.NewGroup(
			huh.NewSelect[session.TargetType]().
				Title("Target face").
				Options(targetOptions(meta.TargetType)...).
				Value(&meta.TargetType),
			huh.NewSelect[int]().
				Title("Distance").
				Options(distanceOptions(meta.Distance)...).
				Value(&meta.Distance),
		),
	)

	if err := form.Run(); err != nil {
		return meta, fmt.Errorf("form interaction failed: %w", err)
	}

	return meta, nil
}

func kindOptions(selected session.Kind) []huh.Option[session.Kind] {
	opts := make([]huh.Option[session.Kind], 0, len(session.Kinds))

	for _, k := range session.Kinds {
		opts = append(opts, huh.NewOption(string(k), k).Selected(k == selected))
	}

	return opts
}

func environmentOptions(
	selected session.Environment,
) []huh.Option[session.Environment] {
	opts := make([]huh.Option[session.Environment], 0, len(session.Environments))

	for _, e := range session.Environments {
		opts = append(opts, huh.NewOption(string(e), e).Selected(e == selected))
	}

	return opts
}

func targetOptions(
	selected session.TargetType,
) []huh.Option[session.TargetType] {
	opts := make([]huh.Option[session.TargetType], 0, len(session.TargetTypes))

	for _, t := range session.TargetTypes {
		opts = append(opts, huh.NewOption(string(t), t).Selected(t == selected))
	}

	return opts
}

func distanceOptions(selected int) []huh.Option[int] {
	opts := make([]huh.Option[int], 0, len(session.Distances))

	for _, d := range session.Distances {
		label := strconv.Itoa(d) + "m"
		opts = append(opts, huh.NewOption(label, d).Selected(d == selected))
	}

	return opts
}
