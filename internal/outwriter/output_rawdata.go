package outwriter

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/jmgilman/pdsnd-github/internal/contract"
	"github.com/jmgilman/pdsnd-github/schema"
)

// WriteRawPage renders rows [start, end) of the table for the raw-data pager,
// header included. Cells truncate to a per-column budget derived from the
// terminal width so wide exports stay on one screen line per row.
func WriteRawPage(w io.Writer, table *schema.TripTable, start, end int, cfg *contract.Config) error {
	columns := table.Columns()
	maxCell := getMaxCellWidth(cfg, len(columns))

	// 1. Define Headers
	out := tablewriter.NewWriter(w)
	headers := make([]string, len(columns))
	for i, name := range columns {
		headers[i] = contract.TruncateCell(name, maxCell)
	}
	out.Header(headers)

	// 2. Configure Alignment
	out.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	// 3. Populate Rows
	var data [][]string
	for i := start; i < end; i++ {
		row := table.Row(i)
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = contract.TruncateCell(cell, maxCell)
		}
		data = append(data, cells)
	}

	// 4. Render the table
	if err := out.Bulk(data); err != nil {
		return err
	}
	return out.Render()
}
