// Package vue emits Vue 3 single-file components using <script setup>.
package vue

import (
	"fmt"
	"strings"

	"github.com/barun-bash/forge/internal/codegen"
	"github.com/barun-bash/forge/internal/codegen/themes"
	"github.com/barun-bash/forge/internal/config"
	"github.com/barun-bash/forge/internal/ir"
)

// Emitter produces one single-file component per export.
type Emitter struct{}

func (Emitter) Target() config.Target { return config.Vue }

// Layout names Name.vue, the CSS module, and the vitest spec.
func (Emitter) Layout(name string, typed bool, s config.Styling) codegen.Layout {
	ext := "js"
	if typed {
		ext = "ts"
	}
	l := codegen.Layout{
		Component: name + ".vue",
		Test:      name + ".spec." + ext,
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
	return codegen.Render(el, children, sfc{}), nil
}

func (Emitter) Passthrough(el *codegen.Element, children []string) string {
	return codegen.Render(codegen.PassthroughElement(el), children, sfc{})
}

// Module assembles the script and template blocks.
func (Emitter) Module(c *codegen.Component) ir.File {
	var b strings.Builder

	if c.Typed {
		b.WriteString("<script setup lang=\"ts\">\n")
	} else {
		b.WriteString("<script setup>\n")
	}

	var imports []string
	if c.ModuleClasses() {
		imports = append(imports, fmt.Sprintf("import styles from './%s';", c.Layout.StyleSheet))
	}
	if len(c.Inline) > 0 {
		imports = append(imports, themes.Imports(c.Styling, config.Vue)...)
	}
	if len(imports) > 0 {
		b.WriteString(strings.Join(imports, "\n") + "\n\n")
	}

	fmt.Fprintf(&b, "defineOptions({ name: '%s' });\n", c.Name)

	if len(c.Handlers) > 0 {
		b.WriteString("\n")
		if c.Typed {
			fmt.Fprintf(&b, "interface %sProps {\n", c.Name)
			for _, h := range c.Handlers {
				fmt.Fprintf(&b, "  %s?: () => void;\n", h)
			}
			b.WriteString("}\n\n")
			fmt.Fprintf(&b, "defineProps<%sProps>();\n", c.Name)
		} else {
			b.WriteString("defineProps({\n")
			for _, h := range c.Handlers {
				fmt.Fprintf(&b, "  %s: Function,\n", h)
			}
			b.WriteString("});\n")
		}
	}

	for _, block := range c.Inline {
		b.WriteString("\n" + block + "\n")
	}
	b.WriteString("</script>\n\n")

	b.WriteString("<template>\n")
	b.WriteString(codegen.Indent(c.Body, 1) + "\n")
	b.WriteString("</template>\n")

	return ir.File{Path: c.Layout.Component, Content: b.String()}
}

// TestFile renders a vitest + Vue Test Utils smoke test.
func (Emitter) TestFile(c *codegen.Component) ir.File {
	var b strings.Builder

	mount := c.Name
	if len(c.Handlers) > 0 {
		var props []string
		for _, h := range c.Handlers {
			props = append(props, h+": () => {}")
		}
		mount += ", { props: { " + strings.Join(props, ", ") + " } }"
	}

	b.WriteString("import { mount } from '@vue/test-utils';\n")
	b.WriteString("import { describe, expect, it } from 'vitest';\n")
	fmt.Fprintf(&b, "import %s from './%s';\n\n", c.Name, c.Layout.Component)
	fmt.Fprintf(&b, "describe('%s', () => {\n", c.Name)
	fmt.Fprintf(&b, "  it('renders a <%s> root', () => {\n", c.Root.Tag)
	fmt.Fprintf(&b, "    const wrapper = mount(%s);\n", mount)
	fmt.Fprintf(&b, "    expect(wrapper.element.tagName).toBe('%s');\n", strings.ToUpper(c.Root.Tag))
	b.WriteString("  });\n")
	b.WriteString("});\n")

	return ir.File{Path: c.Layout.Test, Content: b.String()}
}

// sfc spells elements in Vue template syntax.
type sfc struct{}

func (sfc) Class(c codegen.Class) string {
	switch {
	case c.Module != "":
		return `:class="styles.` + c.Module + `"`
	case c.Expr != "":
		return `:class="` + c.Expr + `"`
	}
	return attr("class", c.Static)
}

func (sfc) Attr(a codegen.Attr) string { return attr(a.Name, a.Value) }

func attr(name, value string) string {
	if codegen.Safe(value) {
		return name + `="` + value + `"`
	}
	return ":" + name + `="` + codegen.JSString(value) + `"`
}

func (sfc) Event(e codegen.Event) string {
	switch e.Binding {
	case ir.OnSubmit:
		return `@submit.prevent="` + e.Handler + `?.()"`
	case ir.OnChange:
		return `@change="` + e.Handler + `?.()"`
	}
	return `@click="` + e.Handler + `?.()"`
}

func (sfc) Text(s string) string {
	if codegen.Safe(s) {
		return s
	}
	return "{{ " + codegen.JSString(s) + " }}"
}

func (sfc) Guard(g codegen.Guarded) string {
	return codegen.WithDirective(g, `v-if="`+g.Handler+`"`)
}
