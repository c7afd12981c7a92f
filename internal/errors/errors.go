// Package errors defines the diagnostics an export produces: fatal errors
// that abort a request and warnings that accompany a successful result.
package errors

import (
	"fmt"
	"strings"
)

// Severity indicates how serious a diagnostic is.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityHint
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "hint"
	}
}

// MarshalText lets severities serialize as words in JSON and YAML output.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Diagnostic codes. E-codes are fatal to the request, W-codes are not.
const (
	CodeInvalidConfig          = "E101"
	CodeInvalidTree            = "E102"
	CodeUnsupportedCombination = "E201"
	CodeCancelled              = "E401"
	CodeInternal               = "E900"

	CodeUnknownKind        = "W301"
	CodeMissingAlt         = "W302"
	CodeUnknownPlaceholder = "W303"
	CodeDroppedToken       = "W304"
	CodeDroppedBinding     = "W305"
)

// Diagnostic is a single message about an export request.
type Diagnostic struct {
	Code       string   `json:"code" yaml:"code"`
	Severity   Severity `json:"severity" yaml:"severity"`
	Message    string   `json:"message" yaml:"message"`
	NodeID     string   `json:"node_id,omitempty" yaml:"node_id,omitempty"`
	Suggestion string   `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// Error makes fatal diagnostics usable as Go errors.
func (d *Diagnostic) Error() string { return d.Format() }

// Format returns a single-line representation without ANSI colours; the
// caller wraps it with cli colours.
func (d *Diagnostic) Format() string {
	var b strings.Builder
	if d.NodeID != "" {
		fmt.Fprintf(&b, "%s — ", d.NodeID)
	}
	b.WriteString(d.Message)
	if d.Code != "" {
		fmt.Fprintf(&b, " [%s]", d.Code)
	}
	return b.String()
}

// Fatal reports whether the diagnostic aborts the request.
func (d *Diagnostic) Fatal() bool { return d.Severity == SeverityError }

// ── Constructors ──

// InvalidConfig reports a malformed export configuration.
func InvalidConfig(message, suggestion string) *Diagnostic {
	return &Diagnostic{Code: CodeInvalidConfig, Severity: SeverityError, Message: message, Suggestion: suggestion}
}

// InvalidTree reports a malformed component tree.
func InvalidTree(nodeID, message string) *Diagnostic {
	return &Diagnostic{Code: CodeInvalidTree, Severity: SeverityError, NodeID: nodeID, Message: message}
}

// UnsupportedCombination reports a valid config whose target/styling pair
// has no implementation.
func UnsupportedCombination(target, styling string) *Diagnostic {
	return &Diagnostic{
		Code:     CodeUnsupportedCombination,
		Severity: SeverityError,
		Message:  fmt.Sprintf("styling system %q is not available for target %q", styling, target),
	}
}

// UnknownKind reports a node kind the active emitter does not recognise.
func UnknownKind(nodeID, kind, suggestion string) *Diagnostic {
	return &Diagnostic{
		Code:       CodeUnknownKind,
		Severity:   SeverityWarning,
		NodeID:     nodeID,
		Message:    fmt.Sprintf("unknown node kind %q rendered as a generic element", kind),
		Suggestion: suggestion,
	}
}

// Cancelled reports cooperative cancellation between nodes.
func Cancelled(cause error) *Diagnostic {
	msg := "export cancelled"
	if cause != nil {
		msg = "export cancelled: " + cause.Error()
	}
	return &Diagnostic{Code: CodeCancelled, Severity: SeverityError, Message: msg}
}

// Internal wraps an unexpected failure inside the pipeline.
func Internal(v any) *Diagnostic {
	return &Diagnostic{Code: CodeInternal, Severity: SeverityError, Message: fmt.Sprintf("internal error: %v", v)}
}

// Warning builds an arbitrary non-fatal diagnostic.
func Warning(code, nodeID, message string) *Diagnostic {
	return &Diagnostic{Code: code, Severity: SeverityWarning, NodeID: nodeID, Message: message}
}

// ── Collection ──

// Collection accumulates diagnostics for one export request.
type Collection struct {
	items []*Diagnostic
}

// New returns an empty collection.
func New() *Collection { return &Collection{} }

// Add appends diagnostics, skipping nils.
func (c *Collection) Add(ds ...*Diagnostic) {
	for _, d := range ds {
		if d != nil {
			c.items = append(c.items, d)
		}
	}
}

// HasErrors returns true if the collection contains any fatal entries.
func (c *Collection) HasErrors() bool {
	for _, d := range c.items {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Errors returns only the fatal entries.
func (c *Collection) Errors() []*Diagnostic { return c.filter(SeverityError) }

// Warnings returns only the warning entries.
func (c *Collection) Warnings() []*Diagnostic { return c.filter(SeverityWarning) }

func (c *Collection) filter(s Severity) []*Diagnostic {
	var out []*Diagnostic
	for _, d := range c.items {
		if d.Severity == s {
			out = append(out, d)
		}
	}
	return out
}

// All returns a copy of every diagnostic in insertion order.
func (c *Collection) All() []*Diagnostic {
	return append([]*Diagnostic(nil), c.items...)
}

// Len returns the number of diagnostics.
func (c *Collection) Len() int { return len(c.items) }

// Format renders diagnostics as a multiline report.
func Format(ds []*Diagnostic) string {
	var b strings.Builder
	for i, d := range ds {
		if i > 0 {
			b.WriteString("\n")
		}
		switch d.Severity {
		case SeverityError:
			fmt.Fprintf(&b, "✗ %s", d.Format())
		case SeverityWarning:
			fmt.Fprintf(&b, "⚠ %s", d.Format())
		default:
			fmt.Fprintf(&b, "· %s", d.Format())
		}
		if d.Suggestion != "" {
			fmt.Fprintf(&b, "\n  suggestion: %s", d.Suggestion)
		}
	}
	return b.String()
}
