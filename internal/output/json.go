package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONWriter outputs the report as JSON.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, report *Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}
