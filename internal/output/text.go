package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Score bands used for coloring.
const (
	HighScore = 0.8
	MidScore  = 0.5
)

// TextRenderer renders output in human-readable text format
type TextRenderer struct {
	ColorEnabled bool
}

// Render writes one line per result: "a" vs "b": 0.8750
func (r *TextRenderer) Render(w io.Writer, results []Result) error {
	for _, res := range results {
		line := fmt.Sprintf("%q vs %q: %s", res.A, res.B, r.colorScore(res.Score))
		if res.Best {
			line += "  " + r.paint(color.New(color.Bold), "<- best")
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// colorScore formats a score and colors it by band.
func (r *TextRenderer) colorScore(score float64) string {
	var c *color.Color
	switch {
	case score >= HighScore:
		c = color.New(color.FgGreen)
	case score >= MidScore:
		c = color.New(color.FgYellow)
	default:
		c = color.New(color.FgRed)
	}
	return r.paint(c, fmt.Sprintf("%.4f", score))
}

// paint applies c unless color is disabled for this renderer.
func (r *TextRenderer) paint(c *color.Color, s string) string {
	if r.ColorEnabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}
