// Package react emits React function components written in JSX.
package react

import (
	"fmt"
	"strings"

	"github.com/barun-bash/forge/internal/codegen"
	"github.com/barun-bash/forge/internal/codegen/themes"
	"github.com/barun-bash/forge/internal/config"
	"github.com/barun-bash/forge/internal/ir"
)

// Emitter produces one React component per export.
type Emitter struct{}

func (Emitter) Target() config.Target { return config.React }

// Layout names Name.tsx (or .jsx), the CSS module, and the vitest file.
func (Emitter) Layout(name string, typed bool, s config.Styling) codegen.Layout {
	ext := "jsx"
	if typed {
		ext = "tsx"
	}
	l := codegen.Layout{
		Component: name + "." + ext,
		Test:      name + ".test." + ext,
	}
	switch s {
	case config.CSSModules:
		l.StyleSheet = name + ".module.css"
	case config.SCSS:
		l.StyleSheet = name + ".module.scss"
	}
	return l
}

func (e Emitter) Element(el *codegen.Element, children []string) (string, error) {
	if !el.Known {
		return "", codegen.ErrUnknownKind
	}
	return codegen.Render(el, children, jsx{}), nil
}

func (Emitter) Passthrough(el *codegen.Element, children []string) string {
	return codegen.Render(codegen.PassthroughElement(el), children, jsx{})
}

// Module assembles the component source.
func (Emitter) Module(c *codegen.Component) ir.File {
	var b strings.Builder

	var imports []string
	if c.ModuleClasses() {
		imports = append(imports, fmt.Sprintf("import styles from './%s';", c.Layout.StyleSheet))
	}
	if len(c.Inline) > 0 {
		imports = append(imports, themes.Imports(c.Styling, config.React)...)
	}
	if len(imports) > 0 {
		b.WriteString(strings.Join(imports, "\n") + "\n\n")
	}
	for _, block := range c.Inline {
		b.WriteString(block + "\n\n")
	}

	params := ""
	if len(c.Handlers) > 0 {
		params = "{ " + strings.Join(c.Handlers, ", ") + " }"
		if c.Typed {
			fmt.Fprintf(&b, "export interface %sProps {\n", c.Name)
			for _, h := range c.Handlers {
				fmt.Fprintf(&b, "  %s?: () => void;\n", h)
			}
			b.WriteString("}\n\n")
			params += ": " + c.Name + "Props"
		}
	}

	fmt.Fprintf(&b, "export default function %s(%s) {\n", c.Name, params)
	if g := c.RootGuard(); g != "" {
		fmt.Fprintf(&b, "  if (!%s) return null;\n\n", g)
	}
	b.WriteString("  return (\n")
	b.WriteString(codegen.Indent(c.Body, 2) + "\n")
	b.WriteString("  );\n")
	b.WriteString("}\n")

	return ir.File{Path: c.Layout.Component, Content: b.String()}
}

// TestFile renders a vitest + Testing Library smoke test.
func (Emitter) TestFile(c *codegen.Component) ir.File {
	var b strings.Builder
	tag := strings.ToUpper(c.Root.Tag)
	props := ""
	for _, h := range c.Handlers {
		props += " " + h + "={() => {}}"
	}

	b.WriteString("import { render } from '@testing-library/react';\n")
	b.WriteString("import { describe, expect, it } from 'vitest';\n")
	fmt.Fprintf(&b, "import %s from './%s';\n\n", c.Name, c.Name)
	fmt.Fprintf(&b, "describe('%s', () => {\n", c.Name)
	fmt.Fprintf(&b, "  it('renders a <%s> root', () => {\n", c.Root.Tag)
	fmt.Fprintf(&b, "    const { container } = render(<%s%s />);\n", c.Name, props)
	fmt.Fprintf(&b, "    expect(container.firstElementChild?.tagName).toBe('%s');\n", tag)
	b.WriteString("  });\n")
	b.WriteString("});\n")

	return ir.File{Path: c.Layout.Test, Content: b.String()}
}

// jsx spells elements in JSX.
type jsx struct{}

// attrNames maps HTML attribute names to their JSX spelling.
var attrNames = map[string]string{
	"class":     "className",
	"for":       "htmlFor",
	"tabindex":  "tabIndex",
	"readonly":  "readOnly",
	"maxlength": "maxLength",
	"minlength": "minLength",
	"autofocus": "autoFocus",
}

func (jsx) Class(c codegen.Class) string {
	switch {
	case c.Module != "":
		return "className={styles." + c.Module + "}"
	case c.Expr != "":
		return "className={" + c.Expr + "}"
	}
	return attr("className", c.Static)
}

func (jsx) Attr(a codegen.Attr) string {
	name := a.Name
	if n, ok := attrNames[name]; ok {
		name = n
	}
	return attr(name, a.Value)
}

func attr(name, value string) string {
	if codegen.Safe(value) {
		return name + `="` + value + `"`
	}
	return name + "={" + codegen.JSString(value) + "}"
}

func (jsx) Event(e codegen.Event) string {
	switch e.Binding {
	case ir.OnSubmit:
		return "onSubmit={(event) => { event.preventDefault(); " + e.Handler + "?.(); }}"
	case ir.OnChange:
		return "onChange={" + e.Handler + "}"
	}
	return "onClick={" + e.Handler + "}"
}

func (jsx) Text(s string) string {
	if codegen.Safe(s) {
		return s
	}
	return "{" + codegen.JSString(s) + "}"
}

// Guard wraps a fragment in a logical-and expression. The root cannot be
// wrapped; Module returns null early instead.
func (jsx) Guard(g codegen.Guarded) string {
	if g.Root {
		return g.Fragment
	}
	return "{" + g.Handler + " && (\n" + codegen.Indent(g.Fragment, 1) + "\n)}"
}
