// Package output renders results and failures to the interactive session.
package output

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/dbmagic/dbmagic/core"
	"github.com/dbmagic/dbmagic/core/format"
)

// PreviewRows is the number of rows shown of an unsuppressed result.
const PreviewRows = 10

// Display is the sink for user-visible output.
type Display struct {
	w     io.Writer
	table core.Formatter
	red   *color.Color
}

func NewDisplay(w io.Writer) *Display {
	return &Display{
		w:     w,
		table: format.NewTable(),
		red:   color.New(color.FgRed, color.Bold),
	}
}

// Error renders a failure. Failures are reported exactly once and never
// propagate past the display.
func (d *Display) Error(err error) {
	d.red.Fprintf(d.w, "Error: %s\n", err)
}

func (d *Display) Infof(format string, args ...any) {
	fmt.Fprintf(d.w, format+"\n", args...)
}

// Completed prints the elapsed wall-clock time and the row count.
func (d *Display) Completed(elapsed time.Duration, rows int) {
	d.Infof("Query completed in %.2fs (%d rows)", elapsed.Seconds(), rows)
}

// Preview renders the first PreviewRows rows of the result as a table.
func (d *Display) Preview(result *core.Result) {
	out, err := result.Format(d.table, 0, PreviewRows)
	if err != nil {
		d.Error(err)
		return
	}

	fmt.Fprintln(d.w, string(out))

	if result.Len() > PreviewRows {
		d.Infof("... showing %d of %d rows", PreviewRows, result.Len())
	}
}
