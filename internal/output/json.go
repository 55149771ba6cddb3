package output

import (
	"encoding/json"
	"io"
)

// JSONRenderer renders output in JSON format
type JSONRenderer struct{}

// jsonOutput is the structure for JSON output
type jsonOutput struct {
	Version string   `json:"version"`
	Results []Result `json:"results"`
}

// Render writes the results in JSON format
func (r *JSONRenderer) Render(w io.Writer, results []Result) error {
	if results == nil {
		results = []Result{}
	}
	output := jsonOutput{
		Version: "1.0",
		Results: results,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
