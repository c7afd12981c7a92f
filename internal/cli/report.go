package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/barun-bash/forge/internal/errors"
)

// Diagnostics prints one line per diagnostic, colored by severity, with
// suggestions indented underneath.
func Diagnostics(w io.Writer, ds []*errors.Diagnostic) {
	for _, d := range ds {
		switch d.Severity {
		case errors.SeverityError:
			fmt.Fprintln(w, Error(d.Format()))
		case errors.SeverityWarning:
			fmt.Fprintln(w, Warn(d.Format()))
		default:
			fmt.Fprintln(w, Muted("· "+d.Format()))
		}
		if d.Suggestion != "" {
			fmt.Fprintln(w, Muted("  "+d.Suggestion))
		}
	}
}

// Dependencies prints an npm dependency list under a heading. Nothing is
// printed for an empty map.
func Dependencies(w io.Writer, title string, deps map[string]string) {
	if len(deps) == 0 {
		return
	}
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintln(w, Heading(title))
	for _, name := range names {
		fmt.Fprintf(w, "  %s %s\n", name, Muted(deps[name]))
	}
}
