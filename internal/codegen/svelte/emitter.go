// Package svelte emits Svelte components.
package svelte

import (
	"fmt"
	"strings"

	"github.com/barun-bash/forge/internal/codegen"
	"github.com/barun-bash/forge/internal/codegen/themes"
	"github.com/barun-bash/forge/internal/config"
	"github.com/barun-bash/forge/internal/ir"
)

// Emitter produces one Svelte component per export.
type Emitter struct{}

func (Emitter) Target() config.Target { return config.Svelte }

// Layout names Name.svelte, the CSS module, and the vitest file.
func (Emitter) Layout(name string, typed bool, s config.Styling) codegen.Layout {
	ext := "js"
	if typed {
		ext = "ts"
	}
	l := codegen.Layout{
		Component: name + ".svelte",
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

func (Emitter) Element(el *codegen.Element, children []string) (string, error) {
	if !el.Known {
		return "", codegen.ErrUnknownKind
	}
	return codegen.Render(el, children, markup{}), nil
}

func (Emitter) Passthrough(el *codegen.Element, children []string) string {
	return codegen.Render(codegen.PassthroughElement(el), children, markup{})
}

// Module assembles the instance script and markup.
func (Emitter) Module(c *codegen.Component) ir.File {
	var sections []string

	var imports []string
	if c.ModuleClasses() {
		imports = append(imports, fmt.Sprintf("import styles from './%s';", c.Layout.StyleSheet))
	}
	if len(c.Inline) > 0 {
		imports = append(imports, themes.Imports(c.Styling, config.Svelte)...)
	}
	if len(imports) > 0 {
		sections = append(sections, strings.Join(imports, "\n"))
	}

	if len(c.Handlers) > 0 {
		var props []string
		for _, h := range c.Handlers {
			if c.Typed {
				props = append(props, fmt.Sprintf("export let %s: (() => void) | undefined = undefined;", h))
			} else {
				props = append(props, fmt.Sprintf("export let %s = undefined;", h))
			}
		}
		sections = append(sections, strings.Join(props, "\n"))
	}
	sections = append(sections, c.Inline...)

	var b strings.Builder
	if len(sections) > 0 {
		if c.Typed {
			b.WriteString("<script lang=\"ts\">\n")
		} else {
			b.WriteString("<script>\n")
		}
		b.WriteString(codegen.Indent(strings.Join(sections, "\n\n"), 1) + "\n")
		b.WriteString("</script>\n\n")
	}
	b.WriteString(c.Body + "\n")

	return ir.File{Path: c.Layout.Component, Content: b.String()}
}

// TestFile renders a vitest + Testing Library smoke test.
func (Emitter) TestFile(c *codegen.Component) ir.File {
	var b strings.Builder

	args := c.Name
	if len(c.Handlers) > 0 {
		var props []string
		for _, h := range c.Handlers {
			props = append(props, h+": () => {}")
		}
		args += ", { props: { " + strings.Join(props, ", ") + " } }"
	}

	b.WriteString("import { render } from '@testing-library/svelte';\n")
	b.WriteString("import { describe, expect, it } from 'vitest';\n")
	fmt.Fprintf(&b, "import %s from './%s';\n\n", c.Name, c.Layout.Component)
	fmt.Fprintf(&b, "describe('%s', () => {\n", c.Name)
	fmt.Fprintf(&b, "  it('renders a <%s> root', () => {\n", c.Root.Tag)
	fmt.Fprintf(&b, "    const { container } = render(%s);\n", args)
	fmt.Fprintf(&b, "    expect(container.firstElementChild?.tagName).toBe('%s');\n", strings.ToUpper(c.Root.Tag))
	b.WriteString("  });\n")
	b.WriteString("});\n")

	return ir.File{Path: c.Layout.Test, Content: b.String()}
}

// markup spells elements in Svelte template syntax.
type markup struct{}

func (markup) Class(c codegen.Class) string {
	switch {
	case c.Module != "":
		return "class={styles." + c.Module + "}"
	case c.Expr != "":
		return "class={" + c.Expr + "}"
	}
	return attr("class", c.Static)
}

func (markup) Attr(a codegen.Attr) string { return attr(a.Name, a.Value) }

func attr(name, value string) string {
	if codegen.Safe(value) {
		return name + `="` + value + `"`
	}
	return name + "={" + codegen.JSString(value) + "}"
}

func (markup) Event(e codegen.Event) string {
	switch e.Binding {
	case ir.OnSubmit:
		return "on:submit|preventDefault={() => " + e.Handler + "?.()}"
	case ir.OnChange:
		return "on:change={" + e.Handler + "}"
	}
	return "on:click={" + e.Handler + "}"
}

func (markup) Text(s string) string {
	if codegen.Safe(s) {
		return s
	}
	return "{" + codegen.JSString(s) + "}"
}

func (markup) Guard(g codegen.Guarded) string {
	return "{#if " + g.Handler + "}\n" + codegen.Indent(g.Fragment, 1) + "\n{/if}"
}
