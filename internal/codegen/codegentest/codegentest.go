// Package codegentest builds components for emitter tests without the
// full export pipeline: no styling adapter and no accessibility pass.
package codegentest

import (
	"github.com/barun-bash/forge/internal/codegen"
	"github.com/barun-bash/forge/internal/config"
	"github.com/barun-bash/forge/internal/ir"
)

// Options tweak how Build lowers the tree.
type Options struct {
	Typed   bool
	Styling config.Styling
	// Classes assigns a class reference per node id.
	Classes map[string]codegen.Class
	// Attrs adds attributes per node id after lowering.
	Attrs  map[string][]codegen.Attr
	Inline []string
}

// Build renders root with e and returns the assembled component.
func Build(e codegen.Emitter, root *ir.Node, opts Options) *codegen.Component {
	if opts.Styling == "" {
		opts.Styling = config.Tailwind
	}
	name := codegen.ComponentName(root.ID)
	c := &codegen.Component{
		Name:    name,
		Layout:  e.Layout(name, opts.Typed, opts.Styling),
		Typed:   opts.Typed,
		Styling: opts.Styling,
		Inline:  opts.Inline,
	}
	for _, cl := range opts.Classes {
		if cl.Module != "" {
			c.HasStyleSheet = true
		}
	}

	var handlers []string
	var visit func(n *ir.Node, root bool) string
	visit = func(n *ir.Node, root bool) string {
		el := codegen.Lower(n)
		el.Root = root
		el.Class = opts.Classes[n.ID]
		for _, a := range opts.Attrs[n.ID] {
			el.SetAttr(a)
		}
		if root {
			c.Root = el
		}
		handlers = append(handlers, el.Handlers()...)

		var children []string
		for _, ch := range n.Children {
			children = append(children, visit(ch, false))
		}
		out, err := e.Element(el, children)
		if err != nil {
			out = e.Passthrough(el, children)
		}
		return out
	}
	c.Body = visit(root, true)
	c.Handlers = codegen.Unique(handlers)
	return c
}

// ProfileCard is a card with an avatar, a heading, a bio and both
// conditional affordances.
func ProfileCard() *ir.Node {
	return &ir.Node{
		ID:   "profile-card",
		Kind: ir.KindCard,
		Children: []*ir.Node{
			{ID: "avatar", Kind: ir.KindAvatar, Props: map[string]any{"src": "/ada.png", "name": "Ada"}},
			{ID: "name", Kind: ir.KindHeading, Props: map[string]any{"text": "Ada Lovelace", "level": 3}},
			{ID: "bio", Kind: ir.KindText, Props: map[string]any{"text": "First programmer"}},
		},
		Bindings: ir.Bindings{
			Edit:   &ir.Binding{},
			Delete: &ir.Binding{},
		},
	}
}
