package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/term"
)

// render writes rows as a table on a terminal, or as space-separated lines otherwise.
func render(w io.Writer, plain bool, header []string, rows [][]string) {
	if plain || !isTerminal(w) {
		renderLines(w, rows)
		return
	}
	renderTable(w, header, rows)
}

func renderLines(w io.Writer, rows [][]string) {
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, " "))
	}
}

func renderTable(w io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.AppendBulk(rows)
	table.Render()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// list formats values the way fmt prints a slice.
func list(values []string) string {
	return "[" + strings.Join(values, " ") + "]"
}
