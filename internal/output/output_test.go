package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vilaca/gloom/internal/domain"
)

func strPtr(s string) *string { return &s }

func testReport() *Report {
	return &Report{
		Profile: domain.Profile{
			Login:   "octocat",
			Name:    strPtr("The Octocat"),
			Bio:     strPtr("I like cats"),
			Company: strPtr("GitHub"),
			Stats: domain.ProfileStats{
				Repositories:        8,
				Organizations:       2,
				StarredRepositories: 42,
				Followers:           9000,
				Following:           9,
			},
		},
		ReadMe: "# Hi there\n",
	}
}

func TestGetWriter(t *testing.T) {
	for _, format := range []string{"text", "json", "yaml"} {
		if _, err := GetWriter(format); err != nil {
			t.Errorf("GetWriter(%q) error: %v", format, err)
		}
	}
	if _, err := GetWriter("xml"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONWriter{}).Write(&buf, testReport()); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var parsed Report
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if parsed.Profile.Login != "octocat" {
		t.Errorf("Login = %q, want %q", parsed.Profile.Login, "octocat")
	}
	if parsed.Profile.Stats.StarredRepositories != 42 {
		t.Errorf("StarredRepositories = %d, want 42", parsed.Profile.Stats.StarredRepositories)
	}
}

func TestYAMLWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&YAMLWriter{}).Write(&buf, testReport()); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var parsed Report
	if err := yaml.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("Output is not valid YAML: %v", err)
	}
	if parsed.Profile.Name == nil || *parsed.Profile.Name != "The Octocat" {
		t.Errorf("Name = %v, want The Octocat", parsed.Profile.Name)
	}
	if parsed.ReadMe != "# Hi there\n" {
		t.Errorf("ReadMe = %q", parsed.ReadMe)
	}
	if strings.Contains(buf.String(), "twitterUsername") {
		t.Error("expected absent optional fields to be omitted")
	}
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TextWriter{}).Write(&buf, testReport()); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"The Octocat (octocat)", "I like cats", "GitHub", "9000 followers", "Starred", "42", "# Hi there"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestTextWriter_NoName(t *testing.T) {
	report := &Report{Profile: domain.Profile{Login: "octocat"}}
	var buf bytes.Buffer
	if err := (&TextWriter{}).Write(&buf, report); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "octocat\n") {
		t.Errorf("expected login on first line, got %q", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func TestTextWriter_Error(t *testing.T) {
	if err := (&TextWriter{}).Write(failingWriter{}, testReport()); err == nil {
		t.Error("expected write error")
	}
}

func TestWriteReport_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	if err := WriteReport(testReport(), "json", path); err != nil {
		t.Fatalf("WriteReport error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), `"login": "octocat"`) {
		t.Errorf("unexpected file contents: %s", data)
	}
}

// closeFailingFile accepts writes but fails to flush on Close.
type closeFailingFile struct {
	bytes.Buffer
	closed bool
}

func (f *closeFailingFile) Close() error {
	f.closed = true
	return errors.New("flush failed")
}

// TestWriteReport_CloseError tests that a failed close is reported when the write succeeded.
func TestWriteReport_CloseError(t *testing.T) {
	// Arrange
	file := &closeFailingFile{}
	orig := createFile
	createFile = func(string) (io.WriteCloser, error) { return file, nil }
	t.Cleanup(func() { createFile = orig })

	// Act
	err := WriteReport(testReport(), "json", "profile.json")

	// Assert
	if err == nil || !strings.Contains(err.Error(), "flush failed") {
		t.Fatalf("expected close error to be returned, got %v", err)
	}
	if !file.closed {
		t.Error("expected file to be closed")
	}
	if !strings.Contains(file.String(), `"login": "octocat"`) {
		t.Errorf("expected report to be written before close, got %s", file.String())
	}
}
