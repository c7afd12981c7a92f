package ir

import (
	"fmt"
	"regexp"
	"strings"
)

// Issue is a single structural problem found in a tree.
type Issue struct {
	NodeID  string
	Message string
}

// ValidationError reports every structural problem in a tree at once.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 1 {
		return "invalid tree: " + e.Issues[0].String()
	}
	parts := make([]string, len(e.Issues))
	for i, is := range e.Issues {
		parts[i] = is.String()
	}
	return fmt.Sprintf("invalid tree: %d issues: %s", len(e.Issues), strings.Join(parts, "; "))
}

func (i Issue) String() string {
	if i.NodeID == "" {
		return i.Message
	}
	return fmt.Sprintf("node %q: %s", i.NodeID, i.Message)
}

// reservedHandlers can't be used as handler names because emitted modules
// either reserve them as JS keywords or declare them themselves.
var reservedHandlers = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true,
	"do": true, "else": true, "export": true, "extends": true, "false": true,
	"finally": true, "for": true, "function": true, "if": true, "import": true,
	"in": true, "instanceof": true, "new": true, "null": true, "return": true,
	"super": true, "switch": true, "this": true, "throw": true, "true": true,
	"try": true, "typeof": true, "var": true, "void": true, "while": true,
	"with": true, "yield": true, "let": true, "static": true, "await": true,
	"styles": true, "css": true, "props": true,
}

// Validate checks a snapshot for duplicate ids, cycles, excessive depth,
// unsupported prop values, unknown breakpoints and malformed bindings.
// It returns nil or a *ValidationError.
func Validate(t *Tree) error {
	if t == nil || t.root == nil {
		return &ValidationError{Issues: []Issue{{Message: "tree has no root node"}}}
	}

	issues := append([]Issue(nil), t.defects...)
	seen := make(map[string]bool, len(t.order))

	for _, n := range t.order {
		if strings.TrimSpace(n.ID) == "" {
			issues = append(issues, Issue{Message: fmt.Sprintf("%s node has an empty id", kindLabel(n.Kind))})
		} else if seen[n.ID] {
			issues = append(issues, Issue{NodeID: n.ID, Message: "duplicate id"})
		}
		seen[n.ID] = true

		for _, name := range sortedPropNames(n.Props) {
			switch n.Props[name].(type) {
			case nil, string, bool, int, int64, float32, float64:
			default:
				issues = append(issues, Issue{NodeID: n.ID, Message: fmt.Sprintf("prop %q must be a string, number or boolean", name)})
			}
		}

		for _, bp := range sortedBreakpoints(n.Styles) {
			if !bp.Valid() {
				issues = append(issues, Issue{NodeID: n.ID, Message: fmt.Sprintf("unknown breakpoint %q", bp)})
			}
			issues = append(issues, validateStyles(n.ID, bp, n.Styles[bp])...)
		}

		for _, name := range n.Accessibility.Keys() {
			if !IsAccessibilityAttr(name) {
				issues = append(issues, Issue{NodeID: n.ID, Message: fmt.Sprintf("accessibility attribute %q is not allowed", name)})
			}
		}

		issues = append(issues, validateBindings(n)...)
	}

	if len(issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: issues}
}

func validateBindings(n *Node) []Issue {
	var issues []Issue
	tmpl, known := LookupTemplate(n.Kind)

	for _, name := range n.Bindings.Present() {
		handler := n.Bindings.HandlerFor(name)
		if !IsIdentifier(handler) {
			issues = append(issues, Issue{NodeID: n.ID, Message: fmt.Sprintf("binding %s: handler %q is not a valid identifier", name, handler)})
		} else if reservedHandlers[handler] {
			issues = append(issues, Issue{NodeID: n.ID, Message: fmt.Sprintf("binding %s: handler %q is reserved", name, handler)})
		}
		// Unknown kinds have no template to check against; the emitter
		// degrades them and reports a warning instead.
		if known && !tmpl.AcceptsBinding(name) {
			issues = append(issues, Issue{NodeID: n.ID, Message: fmt.Sprintf("binding %s is not accepted by %s nodes", name, n.Kind)})
		}
	}

	if n.Kind == KindButton {
		actions := 0
		for _, name := range []BindingName{OnClick, OnEdit, OnDelete} {
			if n.Bindings.Get(name) != nil {
				actions++
			}
		}
		if actions > 1 {
			issues = append(issues, Issue{NodeID: n.ID, Message: "a button carries at most one of onClick, onEdit, onDelete"})
		}
	}
	return issues
}

// IsIdentifier reports whether s is a valid JavaScript identifier made of
// ASCII letters, digits, '_' and '$'.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

var (
	accessibilityAttr = regexp.MustCompile(`^(role|alt|title|tabindex|lang|aria-[a-z]+)$`)
	cssProperty       = regexp.MustCompile(`^-{0,2}[a-zA-Z][a-zA-Z0-9-]*$`)
)

// IsAccessibilityAttr reports whether name may be set from accessibility
// metadata: role, alt, title, tabindex, lang or an aria-* attribute.
func IsAccessibilityAttr(name string) bool {
	return accessibilityAttr.MatchString(name)
}

// validateStyles rejects declarations that would break out of a CSS rule.
// Bare tokens (empty value) only ever become class names and are not checked.
func validateStyles(id string, bp Breakpoint, m StyleMap) []Issue {
	var issues []Issue
	for _, prop := range sortedStyleProps(m) {
		v := m[prop]
		if v == "" {
			continue
		}
		if !cssProperty.MatchString(prop) {
			issues = append(issues, Issue{NodeID: id, Message: fmt.Sprintf("%s style: %q is not a CSS property name", bp, prop)})
		}
		if strings.ContainsAny(v, "{};\n\r") {
			issues = append(issues, Issue{NodeID: id, Message: fmt.Sprintf("%s style %s: value %q contains '{', '}', ';' or a line break", bp, prop, v)})
		}
	}
	return issues
}

func sortedStyleProps(m StyleMap) []string {
	seen := make(map[string]bool, len(m))
	for k := range m {
		seen[k] = true
	}
	return sortedKeys(seen)
}

func sortedBreakpoints(styles map[Breakpoint]StyleMap) []Breakpoint {
	seen := make(map[string]bool, len(styles))
	for bp := range styles {
		seen[string(bp)] = true
	}
	var out []Breakpoint
	for _, k := range sortedKeys(seen) {
		out = append(out, Breakpoint(k))
	}
	return out
}

func kindLabel(k Kind) string {
	if k == "" {
		return "untyped"
	}
	return string(k)
}

func sortedPropNames(props map[string]any) []string {
	seen := make(map[string]bool, len(props))
	for k := range props {
		seen[k] = true
	}
	return sortedKeys(seen)
}
