// Package ir defines the framework-neutral component tree that the export
// pipeline consumes. Given only a Tree, any emitter can produce source for
// its target surface.
package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Node is one element of the UI tree assembled on the canvas.
type Node struct {
	ID            string                  `json:"id" yaml:"id"`
	Kind          Kind                    `json:"kind" yaml:"kind"`
	Props         map[string]any          `json:"props,omitempty" yaml:"props,omitempty"`
	Children      []*Node                 `json:"children,omitempty" yaml:"children,omitempty"`
	Styles        map[Breakpoint]StyleMap `json:"styles,omitempty" yaml:"styles,omitempty"`
	Accessibility *Accessibility          `json:"accessibility,omitempty" yaml:"accessibility,omitempty"`
	Bindings      Bindings                `json:"bindings,omitempty" yaml:"bindings,omitempty"`
}

// Text returns a prop rendered as display text. Numbers and booleans are
// formatted the way a browser would print them.
func (n *Node) Text(name string) (string, bool) {
	v, ok := n.Props[name]
	if !ok || v == nil {
		return "", false
	}
	switch val := v.(type) {
	case string:
		return val, true
	case bool:
		return strconv.FormatBool(val), true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), true
	default:
		return fmt.Sprint(val), true
	}
}

// Int returns a numeric prop, or def when it is absent or not a number.
func (n *Node) Int(name string, def int) int {
	switch v := n.Props[name].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i
		}
	}
	return def
}

// ── Styles ──

// Breakpoint is a responsive tier. Tiers cascade from the smallest up.
type Breakpoint string

const (
	Mobile  Breakpoint = "mobile"
	Tablet  Breakpoint = "tablet"
	Desktop Breakpoint = "desktop"
)

// Breakpoints lists every tier, smallest first.
var Breakpoints = []Breakpoint{Mobile, Tablet, Desktop}

// Valid reports whether b is one of the three known tiers.
func (b Breakpoint) Valid() bool {
	switch b {
	case Mobile, Tablet, Desktop:
		return true
	}
	return false
}

// StyleMap maps a CSS property to its value. An empty value marks the key
// as a bare utility token (e.g. "flex", "shadow-md").
type StyleMap map[string]string

// Clone returns a copy of m. A nil map clones to an empty, non-nil map.
func (m StyleMap) Clone() StyleMap {
	out := make(StyleMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// ── Accessibility ──

// Accessibility holds ARIA/role metadata for a node.
//
// Attributes are emitted verbatim. Labels are templates whose {placeholders}
// name props of the same node, e.g. "Photo of {name}".
type Accessibility struct {
	Attributes map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Labels     map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// Keys returns every attribute name the node declares, sorted and unique.
func (a *Accessibility) Keys() []string {
	if a == nil {
		return nil
	}
	seen := make(map[string]bool)
	for k := range a.Attributes {
		seen[k] = true
	}
	for k := range a.Labels {
		seen[k] = true
	}
	return sortedKeys(seen)
}

// ── Bindings ──

// BindingName is one of the closed set of event hooks a node can carry.
type BindingName string

const (
	OnClick  BindingName = "onClick"
	OnEdit   BindingName = "onEdit"
	OnDelete BindingName = "onDelete"
	OnSubmit BindingName = "onSubmit"
	OnChange BindingName = "onChange"
)

// BindingNames lists every binding in canonical emission order.
var BindingNames = []BindingName{OnClick, OnEdit, OnDelete, OnSubmit, OnChange}

// IsAffordance reports whether the binding renders its own interactive
// element (an action button) rather than an event attribute.
func (b BindingName) IsAffordance() bool {
	return b == OnEdit || b == OnDelete
}

// DefaultLabel is the affordance caption used when a binding has no label.
func (b BindingName) DefaultLabel() string {
	switch b {
	case OnEdit:
		return "Edit"
	case OnDelete:
		return "Delete"
	case OnSubmit:
		return "Submit"
	}
	return ""
}

// Binding is a present event hook. Handler is the component prop that
// receives the callback; it defaults to the binding name.
type Binding struct {
	Handler string `json:"handler,omitempty" yaml:"handler,omitempty"`
	Label   string `json:"label,omitempty" yaml:"label,omitempty"`
}

// Bindings has one optional slot per binding name. A nil slot means the
// binding is absent and its affordance must not be emitted at all.
type Bindings struct {
	Click  *Binding `json:"onClick,omitempty" yaml:"onClick,omitempty"`
	Edit   *Binding `json:"onEdit,omitempty" yaml:"onEdit,omitempty"`
	Delete *Binding `json:"onDelete,omitempty" yaml:"onDelete,omitempty"`
	Submit *Binding `json:"onSubmit,omitempty" yaml:"onSubmit,omitempty"`
	Change *Binding `json:"onChange,omitempty" yaml:"onChange,omitempty"`
}

// Get returns the slot for name, or nil when absent.
func (b Bindings) Get(name BindingName) *Binding {
	switch name {
	case OnClick:
		return b.Click
	case OnEdit:
		return b.Edit
	case OnDelete:
		return b.Delete
	case OnSubmit:
		return b.Submit
	case OnChange:
		return b.Change
	}
	return nil
}

// Present returns the names of all present bindings in canonical order.
func (b Bindings) Present() []BindingName {
	var out []BindingName
	for _, name := range BindingNames {
		if b.Get(name) != nil {
			out = append(out, name)
		}
	}
	return out
}

// HandlerFor returns the component prop name wired to a present binding.
func (b Bindings) HandlerFor(name BindingName) string {
	slot := b.Get(name)
	if slot == nil {
		return ""
	}
	if slot.Handler != "" {
		return slot.Handler
	}
	return string(name)
}

// LabelFor returns the affordance caption for a present binding.
func (b Bindings) LabelFor(name BindingName) string {
	slot := b.Get(name)
	if slot != nil && slot.Label != "" {
		return slot.Label
	}
	return name.DefaultLabel()
}

func (b Bindings) clone() Bindings {
	cp := func(s *Binding) *Binding {
		if s == nil {
			return nil
		}
		c := *s
		return &c
	}
	return Bindings{
		Click:  cp(b.Click),
		Edit:   cp(b.Edit),
		Delete: cp(b.Delete),
		Submit: cp(b.Submit),
		Change: cp(b.Change),
	}
}

// ── Output ──

// File is one generated source file.
type File struct {
	Path    string `json:"path" yaml:"path"`
	Content string `json:"content" yaml:"content"`
}

// FileFragment is a chunk of content destined for a file. Fragments with
// the same path are concatenated in the order they were produced.
type FileFragment struct {
	Path    string
	Content string
}
