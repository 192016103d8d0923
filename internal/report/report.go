// Package report renders the portfolio summary and record listing for the
// terminal.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ganot/portico/internal/domain/portfolio"
)

const notesColumnWidth = 40

// Write prints the summary metrics, the phase pipeline, and a table of the
// filtered records.
func Write(w io.Writer, sum portfolio.Summary, records []portfolio.Record, loadedAt time.Time) {
	if sum.Unavailable {
		warn := color.New(color.FgYellow, color.Bold)
		warn.Fprintln(w, "warning: no data available, check the tracker database connection")
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Projects:  %d\n", sum.TotalProjects)
	fmt.Fprintf(w, "High Priority:   %d\n", sum.HighPriority)
	fmt.Fprintf(w, "Active Projects: %d\n", sum.Active)
	fmt.Fprintf(w, "Categories:      %d\n", sum.Categories)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Pipeline:")
	for _, pc := range sum.Phases {
		fmt.Fprintf(w, "  %-12s %3d  (%.1f%%)\n", pc.Phase, pc.Count, pc.Percent)
	}
	fmt.Fprintln(w)

	writeRecordTable(w, records)

	if !loadedAt.IsZero() {
		fmt.Fprintf(w, "\nSnapshot loaded %s.\n", humanize.Time(loadedAt))
	}
}

func writeRecordTable(w io.Writer, records []portfolio.Record) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Project", "Category", "Priority", "Phase", "Impact", "Risk", "Resources", "Notes"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Notes", WidthMax: notesColumnWidth},
	})

	for _, rec := range records {
		t.AppendRow(table.Row{
			rec.ProjectName,
			rec.Category,
			rec.PriorityLevel,
			rec.Phase,
			rec.BusinessImpact,
			rec.RiskLevel,
			rec.ResourceTypeLabel,
			rec.Notes,
		})
	}

	t.Render()
}
