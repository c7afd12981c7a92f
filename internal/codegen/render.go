package codegen

import (
	"strings"

	"github.com/barun-bash/forge/internal/ir"
)

// Guarded describes a fragment whose rendering depends on a handler.
type Guarded struct {
	Handler  string
	Tag      string
	Fragment string
	Root     bool
}

// Syntax is the per-target half of rendering: how attributes, events,
// text and conditionals are spelled. Render supplies the structure.
type Syntax interface {
	Class(c Class) string
	Attr(a Attr) string
	Event(e Event) string
	Text(s string) string
	Guard(g Guarded) string
}

// Render assembles an element from its parts using a target syntax.
func Render(el *Element, children []string, s Syntax) string {
	var parts []string
	if !el.Class.Empty() {
		parts = append(parts, s.Class(el.Class))
	}
	for _, a := range el.Attrs {
		parts = append(parts, s.Attr(a))
	}
	for _, ev := range el.Events {
		parts = append(parts, s.Event(ev))
	}
	if el.Guard != nil {
		parts = append(parts, s.Event(Event{Binding: ir.OnClick, Handler: el.Guard.Handler}))
	}

	open := "<" + el.Tag
	if len(parts) > 0 {
		open += " " + strings.Join(parts, " ")
	}

	var out string
	switch el.Template.Content {
	case ir.ContentVoid:
		out = open + " />"
	case ir.ContentText:
		text := ""
		if el.Text != "" {
			text = s.Text(el.Text)
		}
		out = open + ">" + text + "</" + el.Tag + ">"
	default:
		inner := append([]string(nil), children...)
		for _, a := range el.Actions {
			inner = append(inner, renderAction(a, s))
		}
		if len(inner) == 0 {
			out = open + "></" + el.Tag + ">"
		} else {
			out = open + ">\n" + Indent(strings.Join(inner, "\n"), 1) + "\n</" + el.Tag + ">"
		}
	}

	if el.Guard != nil {
		out = s.Guard(Guarded{Handler: el.Guard.Handler, Tag: el.Tag, Fragment: out, Root: el.Root})
	}
	return out
}

func renderAction(a Action, s Syntax) string {
	parts := []string{s.Attr(Attr{Name: "type", Value: "button"})}
	for _, attr := range a.Attrs {
		parts = append(parts, s.Attr(attr))
	}
	parts = append(parts, s.Event(Event{Binding: ir.OnClick, Handler: a.Handler}))
	btn := "<button " + strings.Join(parts, " ") + ">" + s.Text(a.Label) + "</button>"
	return s.Guard(Guarded{Handler: a.Handler, Tag: "button", Fragment: btn})
}

// WithDirective inserts a directive attribute right after the opening tag
// name of fragment.
func WithDirective(g Guarded, directive string) string {
	prefix := "<" + g.Tag
	if !strings.HasPrefix(g.Fragment, prefix) {
		return g.Fragment
	}
	return prefix + " " + directive + g.Fragment[len(prefix):]
}

// Indent prefixes every non-empty line with two spaces per level.
func Indent(s string, level int) string {
	pad := strings.Repeat("  ", level)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = pad + l
		}
	}
	return strings.Join(lines, "\n")
}
