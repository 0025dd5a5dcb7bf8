package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/dshills/standup/internal/summarize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleReport = &summarize.Report{
	Author:  "Jane Dev",
	Since:   "2026-03-10 18:00:00",
	Until:   "2026-03-11 09:30:00",
	Model:   "gpt-4o-mini",
	Commits: []string{"- a1b2c3d fix: hydration mismatch"},
	Summary: "• Fixed X\n• Added Y",
}

func TestTextWriter_SummaryOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&TextWriter{}).Write(&buf, sampleReport))

	assert.Equal(t, "• Fixed X\n• Added Y\n", buf.String())
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&JSONWriter{}).Write(&buf, sampleReport))

	var got summarize.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, *sampleReport, got)
}

func TestGetWriter(t *testing.T) {
	for _, format := range []string{"text", "json"} {
		w, err := GetWriter(format)
		require.NoError(t, err, format)
		assert.NotNil(t, w)
	}

	_, err := GetWriter("sarif")
	assert.Error(t, err)
}
