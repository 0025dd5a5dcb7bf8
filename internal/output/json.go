package output

import (
	"encoding/json"
	"io"

	"github.com/dshills/standup/internal/summarize"
)

// JSONWriter outputs the full report as indented JSON.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, report *summarize.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
