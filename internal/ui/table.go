package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// RenderTable renders data as a boxed table whose first row is the header.
func RenderTable(data [][]string) (string, error) {
	table := pterm.DefaultTable
	table.Boxed = true

	return table.WithHasHeader().WithData(data).Srender()
}

func PrintTable(data [][]string, writer io.Writer) {
	str, err := RenderTable(data)
	if err != nil {
		pterm.Error.Printfln("Failed to output session table: %s", err.Error())
		return
	}

	fmt.Fprintln(writer, str)
}
