package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pterm/pterm"
)

func TestArrow(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	cases := []struct {
		score int
		isX   bool
		want  string
	}{
		{10, true, "X"},
		{10, false, "10"},
		{0, false, "M"},
		{7, false, "7"},
		{3, false, "3"},
	}

	for _, tc := range cases {
		if got := Arrow(tc.score, tc.isX); got != tc.want {
			t.Errorf("Arrow(%d, %t) = %q, want %q", tc.score, tc.isX, got, tc.want)
		}
	}
}

func TestPrintTable(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	var buf bytes.Buffer

	PrintTable([][]string{{"#", "Name"}, {"1", "Club night"}}, &buf)

	out := buf.String()
	if !strings.Contains(out, "Club night") || !strings.Contains(out, "Name") {
		t.Errorf("table is missing content:\n%s", out)
	}
}
