package ir

import "strconv"

// Kind identifies the semantic role of a node.
type Kind string

const (
	KindContainer Kind = "container"
	KindSection   Kind = "section"
	KindHero      Kind = "hero"
	KindHeading   Kind = "heading"
	KindText      Kind = "text"
	KindButton    Kind = "button"
	KindImage     Kind = "image"
	KindLink      Kind = "link"
	KindInput     Kind = "input"
	KindForm      Kind = "form"
	KindList      Kind = "list"
	KindCard      Kind = "card"
	KindNavbar    Kind = "navbar"
	KindFooter    Kind = "footer"
	KindIcon      Kind = "icon"
	KindBadge     Kind = "badge"
	KindAvatar    Kind = "avatar"
)

// Content describes what goes between a kind's opening and closing tags.
type Content int

const (
	ContentChildren Content = iota // child nodes, then affordances
	ContentText                    // the node's text prop
	ContentVoid                    // self-closing, no content
)

// Template is the syntax-neutral shape every emitter follows for a kind.
type Template struct {
	Kind     Kind
	Tag      string
	Content  Content
	Accepts  []BindingName
	TextProp string // prop holding display text for ContentText kinds
}

// AcceptsBinding reports whether the template allows the binding.
func (t Template) AcceptsBinding(name BindingName) bool {
	for _, a := range t.Accepts {
		if a == name {
			return true
		}
	}
	return false
}

var containerBindings = []BindingName{OnClick, OnEdit, OnDelete}

var templates = map[Kind]Template{
	KindContainer: {Tag: "div", Content: ContentChildren, Accepts: containerBindings},
	KindSection:   {Tag: "section", Content: ContentChildren, Accepts: []BindingName{OnEdit, OnDelete}},
	KindHero:      {Tag: "section", Content: ContentChildren, Accepts: containerBindings},
	KindCard:      {Tag: "article", Content: ContentChildren, Accepts: containerBindings},
	KindList:      {Tag: "ul", Content: ContentChildren, Accepts: []BindingName{OnEdit, OnDelete}},
	KindForm:      {Tag: "form", Content: ContentChildren, Accepts: []BindingName{OnSubmit, OnEdit, OnDelete}},
	KindNavbar:    {Tag: "nav", Content: ContentChildren, Accepts: []BindingName{OnEdit, OnDelete}},
	KindFooter:    {Tag: "footer", Content: ContentChildren, Accepts: []BindingName{OnEdit, OnDelete}},
	KindHeading:   {Tag: "h2", Content: ContentText, TextProp: "text"},
	KindText:      {Tag: "p", Content: ContentText, TextProp: "text"},
	KindButton:    {Tag: "button", Content: ContentText, TextProp: "text", Accepts: containerBindings},
	KindLink:      {Tag: "a", Content: ContentText, TextProp: "text", Accepts: []BindingName{OnClick}},
	KindBadge:     {Tag: "span", Content: ContentText, TextProp: "text"},
	KindIcon:      {Tag: "span", Content: ContentVoid},
	KindImage:     {Tag: "img", Content: ContentVoid, Accepts: []BindingName{OnClick}},
	KindAvatar:    {Tag: "img", Content: ContentVoid, Accepts: []BindingName{OnClick}},
	KindInput:     {Tag: "input", Content: ContentVoid, Accepts: []BindingName{OnChange}},
}

// KnownKinds returns every recognised kind in a stable order.
func KnownKinds() []Kind {
	return []Kind{
		KindContainer, KindSection, KindHero, KindHeading, KindText,
		KindButton, KindImage, KindLink, KindInput, KindForm, KindList,
		KindCard, KindNavbar, KindFooter, KindIcon, KindBadge, KindAvatar,
	}
}

// LookupTemplate returns the template for kind. ok is false for kinds the
// model does not recognise.
func LookupTemplate(kind Kind) (Template, bool) {
	t, ok := templates[kind]
	if !ok {
		return Template{}, false
	}
	t.Kind = kind
	return t, true
}

// TemplateFor resolves the template for a concrete node, applying
// prop-dependent variations such as the heading level.
func TemplateFor(n *Node) (Template, bool) {
	t, ok := LookupTemplate(n.Kind)
	if !ok {
		return t, false
	}
	if n.Kind == KindHeading {
		level := n.Int("level", 2)
		if level < 1 || level > 6 {
			level = 2
		}
		t.Tag = "h" + strconv.Itoa(level)
	}
	return t, true
}

// IsGuarded reports whether the node itself is an action affordance, i.e.
// a button whose whole rendering depends on an onEdit/onDelete binding.
func IsGuarded(n *Node) (BindingName, bool) {
	if n.Kind != KindButton {
		return "", false
	}
	for _, name := range []BindingName{OnEdit, OnDelete} {
		if n.Bindings.Get(name) != nil {
			return name, true
		}
	}
	return "", false
}
