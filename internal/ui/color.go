// Package ui holds the terminal styling shared by quiver commands
package ui

import (
	"strconv"

	"github.com/pterm/pterm"
)

// DarkTheme selects the lighter palette that reads well on dark terminals.
var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

func Magenta(a any) string {
	if DarkTheme {
		return pterm.LightMagenta(a)
	}

	return pterm.Magenta(a)
}

func Blue(a any) string {
	if DarkTheme {
		return pterm.LightBlue(a)
	}

	return pterm.Blue(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// Arrow renders a single arrow score in the colour of the ring it landed
// in. Inner tens are shown as X and misses as M.
func Arrow(score int, isX bool) string {
	switch {
	case isX:
		return Yellow("X")
	case score == 0:
		return pterm.Gray("M")
	case score >= 9:
		return Yellow(score)
	case score >= 7:
		return Red(score)
	case score >= 5:
		return Blue(score)
	default:
		return Highlight(strconv.Itoa(score))
	}
}
