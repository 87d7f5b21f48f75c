package output

import (
	"fmt"
	"io"
	"os"

	"github.com/vilaca/gloom/internal/domain"
)

// Report is a loaded profile together with its readme.
type Report struct {
	Profile domain.Profile `json:"profile" yaml:"profile"`
	ReadMe  string         `json:"readme,omitempty" yaml:"readme,omitempty"`
}

// Writer writes a report in a specific format.
type Writer interface {
	Write(w io.Writer, report *Report) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "text":
		return &TextWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	case "yaml":
		return &YAMLWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// createFile opens the --out destination; replaced in tests.
var createFile = func(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

// WriteReport writes the report to the specified output (file path or stdout).
func WriteReport(report *Report, format, outPath string) (err error) {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}

	if outPath == "" {
		return writer.Write(os.Stdout, report)
	}

	f, err := createFile(outPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", cerr)
		}
	}()

	return writer.Write(f, report)
}
