package output

import (
	"fmt"
	"io"

	"github.com/dshills/standup/internal/summarize"
)

// TextWriter prints the summary text itself, nothing else, so the output
// can be pasted straight into a standup thread.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, report *summarize.Report) error {
	_, err := fmt.Fprintln(w, report.Summary)
	return err
}
