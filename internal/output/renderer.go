// Package output renders similarity scores for the command line.
package output

import "io"

// Result is one scored pair.
type Result struct {
	A     string  `json:"a"`
	B     string  `json:"b"`
	Score float64 `json:"score"`
	// Best marks the winning candidate of a best-match search.
	Best bool `json:"best,omitempty"`
}

// Renderer defines the interface for output renderers
type Renderer interface {
	// Render writes the results to the writer
	Render(w io.Writer, results []Result) error
}

// Format represents an output format
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// NewRenderer creates a renderer for the given format
func NewRenderer(format Format, colorEnabled bool) Renderer {
	switch format {
	case FormatJSON:
		return &JSONRenderer{}
	default:
		return &TextRenderer{ColorEnabled: colorEnabled}
	}
}
