package output

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLWriter outputs the report as YAML.
type YAMLWriter struct{}

func (y *YAMLWriter) Write(w io.Writer, report *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}
