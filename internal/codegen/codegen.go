// Package codegen defines the contract between the export pipeline and the
// per-target emitters, plus the syntax-neutral element model they render.
package codegen

import (
	"errors"

	"github.com/barun-bash/forge/internal/config"
	"github.com/barun-bash/forge/internal/ir"
)

// ErrUnknownKind is returned by Emitter.Element for node kinds the emitter
// has no template for. The pipeline falls back to Passthrough.
var ErrUnknownKind = errors.New("unknown node kind")

// Emitter turns elements into source text for one target surface.
type Emitter interface {
	Target() config.Target
	// Layout names the files of a component.
	Layout(name string, typed bool, s config.Styling) Layout
	// Element renders one node given its already-rendered children.
	Element(el *Element, children []string) (string, error)
	// Passthrough renders a node of unknown kind as a generic element.
	Passthrough(el *Element, children []string) string
	// Module wraps the root fragment into the exported component.
	Module(c *Component) ir.File
	// TestFile renders a smoke test mounting the component.
	TestFile(c *Component) ir.File
}

// Layout holds the output paths of one component.
type Layout struct {
	Component  string
	StyleSheet string // empty when the styling system has no stylesheet
	Test       string
}

// Class is how an element's resolved styles are referenced.
// At most one field is set.
type Class struct {
	Static string // literal class list
	Module string // key in an imported stylesheet module
	Expr   string // identifier of a runtime-generated class name
}

// Empty reports whether the element carries no styling reference.
func (c Class) Empty() bool { return c.Static == "" && c.Module == "" && c.Expr == "" }

// Attr is a literal attribute. A11y marks attributes added by the
// accessibility pass.
type Attr struct {
	Name  string
	Value string
	A11y  bool
}

// Event is a present non-affordance binding rendered as an event attribute.
type Event struct {
	Binding ir.BindingName
	Handler string
}

// Action is a conditional affordance button.
type Action struct {
	Binding ir.BindingName
	Handler string
	Label   string
	Attrs   []Attr
}

// Element is a node lowered to a syntax-neutral shape.
type Element struct {
	Node     *ir.Node
	Template ir.Template
	Known    bool
	Tag      string
	Root     bool
	Class    Class
	Attrs    []Attr
	Events   []Event
	// Actions are affordance buttons appended after the children.
	Actions []Action
	// Guard is set when the element is itself an affordance: its whole
	// rendering is conditional on the handler and its click calls it.
	Guard *Action
	Text  string
	// Ignored lists present bindings the template does not accept.
	Ignored []ir.BindingName
}

// Handlers lists the handler props the element references, in order.
func (el *Element) Handlers() []string {
	var out []string
	for _, ev := range el.Events {
		out = append(out, ev.Handler)
	}
	if el.Guard != nil {
		out = append(out, el.Guard.Handler)
	}
	for _, a := range el.Actions {
		out = append(out, a.Handler)
	}
	return out
}

// SetAttr adds an attribute, replacing an existing one with the same name.
func (el *Element) SetAttr(a Attr) {
	el.Attrs = setAttr(el.Attrs, a)
}

func setAttr(attrs []Attr, a Attr) []Attr {
	for i := range attrs {
		if attrs[i].Name == a.Name {
			attrs[i] = a
			return attrs
		}
	}
	return append(attrs, a)
}

// SetAttr adds or replaces an attribute on an action button.
func (a *Action) SetAttr(attr Attr) {
	a.Attrs = setAttr(a.Attrs, attr)
}

// Component is everything an emitter needs to assemble the exported unit.
type Component struct {
	Name     string
	Layout   Layout
	Root     *Element
	Body     string
	Handlers []string
	Typed    bool
	Styling  config.Styling
	// Inline holds script-level blocks such as runtime class definitions.
	Inline []string
	// HasStyleSheet is true when Layout.StyleSheet receives content.
	HasStyleSheet bool
}

// RootGuard returns the handler the root's rendering depends on, if any.
func (c *Component) RootGuard() string {
	if c.Root != nil && c.Root.Guard != nil {
		return c.Root.Guard.Handler
	}
	return ""
}

// ModuleClasses reports whether the body references an imported
// stylesheet module.
func (c *Component) ModuleClasses() bool {
	return c.HasStyleSheet && (c.Styling == config.CSSModules || c.Styling == config.SCSS)
}

// ── Lowering ──

// unknownTemplate is used for kinds without a template.
var unknownTemplate = ir.Template{
	Tag:     "div",
	Content: ir.ContentChildren,
	Accepts: []ir.BindingName{ir.OnClick, ir.OnEdit, ir.OnDelete},
}

// Lower builds the syntax-neutral element for a node. Styling and
// accessibility attributes are added afterwards by the pipeline.
func Lower(n *ir.Node) *Element {
	tpl, known := ir.TemplateFor(n)
	if !known {
		tpl = unknownTemplate
		tpl.Kind = n.Kind
	}
	el := &Element{Node: n, Template: tpl, Known: known, Tag: tpl.Tag}
	el.Attrs = propAttrs(n)
	if tpl.Content == ir.ContentText {
		el.Text, _ = n.Text(tpl.TextProp)
	}

	guard, guarded := ir.IsGuarded(n)
	for _, name := range n.Bindings.Present() {
		if !tpl.AcceptsBinding(name) {
			el.Ignored = append(el.Ignored, name)
			continue
		}
		handler := n.Bindings.HandlerFor(name)
		switch {
		case guarded && name == guard:
			el.Guard = &Action{Binding: name, Handler: handler, Label: n.Bindings.LabelFor(name)}
			if el.Text == "" {
				el.Text = el.Guard.Label
			}
		case name.IsAffordance():
			el.Actions = append(el.Actions, Action{
				Binding: name,
				Handler: handler,
				Label:   n.Bindings.LabelFor(name),
			})
		default:
			el.Events = append(el.Events, Event{Binding: name, Handler: handler})
		}
	}
	return el
}

// propAttrs maps kind-specific props to literal attributes.
func propAttrs(n *ir.Node) []Attr {
	var attrs []Attr
	add := func(name, prop, def string) {
		v, ok := n.Text(prop)
		if !ok {
			v = def
		}
		if v != "" {
			attrs = append(attrs, Attr{Name: name, Value: v})
		}
	}
	switch n.Kind {
	case ir.KindImage, ir.KindAvatar:
		add("src", "src", "")
	case ir.KindLink:
		add("href", "href", "#")
	case ir.KindInput:
		add("type", "type", "text")
		add("name", "name", "")
		add("placeholder", "placeholder", "")
	case ir.KindButton:
		add("type", "type", "button")
	case ir.KindIcon:
		add("data-icon", "name", "")
	}
	return attrs
}

// PassthroughElement returns a copy of el rendered as a generic div that
// records the original kind.
func PassthroughElement(el *Element) *Element {
	p := *el
	p.Tag = "div"
	p.Template.Content = ir.ContentChildren
	p.Attrs = append([]Attr{{Name: "data-kind", Value: string(el.Node.Kind)}}, el.Attrs...)
	return &p
}
