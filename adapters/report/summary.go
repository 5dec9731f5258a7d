package report

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"colprofile/domain/profile"
)

// RenderSummary writes a console table with one line per profiled file and
// a footer with the totals
func RenderSummary(w io.Writer, results []profile.FileResult, elapsed time.Duration) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"File", "Size", "Rows", "Columns", "Time", "Status"})

	var totalSize, totalRows int64
	var totalColumns, failed int
	for _, r := range results {
		rows, columns, status := "-", "-", "ok"
		if r.Failed() {
			failed++
			status = "error"
		} else if r.Analysis != nil {
			rows = humanize.Comma(r.Analysis.RowCount)
			columns = humanize.Comma(int64(r.Analysis.Len()))
			totalRows += r.Analysis.RowCount
			totalColumns += r.Analysis.Len()
		}
		totalSize += r.Size

		tbl.AppendRow(table.Row{
			r.Name,
			humanize.Bytes(uint64(max(r.Size, 0))),
			rows,
			columns,
			r.Duration.Round(time.Millisecond).String(),
			status,
		})
	}

	tbl.AppendFooter(table.Row{
		fmt.Sprintf("%d files", len(results)),
		humanize.Bytes(uint64(max(totalSize, 0))),
		humanize.Comma(totalRows),
		humanize.Comma(int64(totalColumns)),
		elapsed.Round(time.Millisecond).String(),
		fmt.Sprintf("%d failed", failed),
	})

	tbl.Render()
}
