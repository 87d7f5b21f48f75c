package output

import (
	"fmt"
	"io"
	"strings"
)

// TextWriter outputs a human-readable profile summary.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, report *Report) error {
	ew := &errWriter{w: w}
	p := report.Profile

	if p.Name != nil && *p.Name != "" {
		ew.printf("%s (%s)\n", *p.Name, p.Login)
	} else {
		ew.printf("%s\n", p.Login)
	}
	if p.Bio != nil && *p.Bio != "" {
		ew.printf("%s\n", *p.Bio)
	}
	for _, link := range p.ContactLinks() {
		if link.URL != "" {
			ew.printf("  %-8s %s <%s>\n", link.Kind, link.Label, link.URL)
			continue
		}
		ew.printf("  %-8s %s\n", link.Kind, link.Label)
	}
	ew.printf("%d followers · %d following\n", p.Stats.Followers, p.Stats.Following)
	ew.println(strings.Repeat("─", 40))
	ew.printf("%-16s %6d\n", "Repositories", p.Stats.Repositories)
	ew.printf("%-16s %6d\n", "Organizations", p.Stats.Organizations)
	ew.printf("%-16s %6d\n", "Starred", p.Stats.StarredRepositories)

	if report.ReadMe != "" {
		ew.println(strings.Repeat("─", 40))
		ew.println(strings.TrimRight(report.ReadMe, "\n"))
	}

	return ew.err
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
