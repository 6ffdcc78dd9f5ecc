package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"duomux/internal/pipeline"
)

// printSummary renders the batch result: a table on a terminal, plain
// lines when the output is piped.
func printSummary(w io.Writer, outcomes []pipeline.Outcome) {
	if len(outcomes) == 0 {
		return
	}

	rows := make([][]string, 0, len(outcomes))
	for _, o := range outcomes {
		status := "ok"
		detail := o.OutputPath
		if !o.Succeeded() {
			status = "failed"
			detail = o.Err.Error()
		}
		rows = append(rows, []string{o.Pair.Key, status, o.Elapsed.Round(time.Millisecond).String(), detail})
	}

	printTable(w, []string{"Pair", "Status", "Elapsed", "Result"}, rows)

	stats := pipeline.Summarize(outcomes)
	fmt.Fprintf(w, "%d pairs: %d succeeded, %d failed\n", stats.Total, stats.Succeeded, stats.Failed)
}

func printTable(w io.Writer, headers []string, rows [][]string) {
	if !stdoutIsTerminal(w) {
		for _, row := range rows {
			fmt.Fprintln(w, strings.Join(row, "\t"))
		}
		return
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(row))
		for i, cell := range row {
			r[i] = cell
		}
		tw.AppendRow(r)
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
	})

	fmt.Fprintln(w, tw.Render())
}

func stdoutIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
