// Package render writes solve results as text or JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Entry is one solved (or failed) input file.
type Entry struct {
	File   string  `json:"file"`
	Sum    int64   `json:"sum"`
	Path   []int   `json:"path,omitempty"`
	Values []int64 `json:"values,omitempty"`
	Error  string  `json:"error,omitempty"`
}

// Failed reports whether the entry carries an error.
func (e Entry) Failed() bool {
	return e.Error != ""
}

// Renderer writes entries in a fixed format.
type Renderer struct {
	out    io.Writer
	format string
}

// New returns a Renderer; format is "text" or "json".
func New(out io.Writer, format string) *Renderer {
	return &Renderer{out: out, format: format}
}

// Render writes all entries.
//
// Text output for a single successful entry without a path is the bare sum,
// so the CLI composes with shell pipelines. Anything richer becomes a table.
func (r *Renderer) Render(entries []Entry) error {
	switch r.format {
	case "json":
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		if len(entries) == 1 {
			return enc.Encode(entries[0])
		}
		return enc.Encode(entries)
	case "text", "":
		if len(entries) == 1 && !entries[0].Failed() && entries[0].Path == nil {
			_, err := fmt.Fprintln(r.out, entries[0].Sum)
			return err
		}
		r.table(entries)
		return nil
	default:
		return fmt.Errorf("render: unknown format %q", r.format)
	}
}

func (r *Renderer) table(entries []Entry) {
	tw := table.NewWriter()
	tw.SetOutputMirror(r.out)
	tw.SetStyle(table.StyleLight)

	withPath := false
	for _, e := range entries {
		if e.Path != nil {
			withPath = true
			break
		}
	}

	header := table.Row{"File", "Sum"}
	if withPath {
		header = append(header, "Path")
	}
	header = append(header, "Error")
	tw.AppendHeader(header)

	for _, e := range entries {
		sum := ""
		if !e.Failed() {
			sum = strconv.FormatInt(e.Sum, 10)
		}
		row := table.Row{e.File, sum}
		if withPath {
			row = append(row, FormatPath(e.Values))
		}
		row = append(row, e.Error)
		tw.AppendRow(row)
	}
	tw.Render()
}

// FormatPath joins path values with arrows: "5 → 9 → 6 → 7".
func FormatPath(values []int64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, " → ")
}
