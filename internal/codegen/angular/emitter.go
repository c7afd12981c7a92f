// Package angular emits standalone Angular components with inline
// templates.
package angular

import (
	"fmt"
	"strings"

	"github.com/barun-bash/forge/internal/codegen"
	"github.com/barun-bash/forge/internal/codegen/themes"
	"github.com/barun-bash/forge/internal/config"
	"github.com/barun-bash/forge/internal/ir"
)

// Emitter produces one standalone component class per export.
type Emitter struct{}

func (Emitter) Target() config.Target { return config.Angular }

// Layout names name.component.ts, its stylesheet, and the TestBed spec.
// Angular output is always TypeScript.
func (Emitter) Layout(name string, _ bool, s config.Styling) codegen.Layout {
	base := codegen.KebabName(name) + ".component"
	l := codegen.Layout{
		Component: base + ".ts",
		Test:      base + ".spec.ts",
	}
	switch s {
	case config.CSSModules:
		l.StyleSheet = base + ".css"
	case config.SCSS:
		l.StyleSheet = base + ".scss"
	}
	return l
}

func (Emitter) Element(el *codegen.Element, children []string) (string, error) {
	if !el.Known {
		return "", codegen.ErrUnknownKind
	}
	return codegen.Render(hostless(el), children, template{}), nil
}

func (Emitter) Passthrough(el *codegen.Element, children []string) string {
	return codegen.Render(hostless(codegen.PassthroughElement(el)), children, template{})
}

// hostAttr reports whether an accessibility attribute of the root element
// belongs in the component's host metadata.
func hostAttr(a codegen.Attr) bool {
	return a.A11y && (a.Name == "role" || a.Name == "tabindex" || strings.HasPrefix(a.Name, "aria-"))
}

// hostless strips host attributes from the root element.
func hostless(el *codegen.Element) *codegen.Element {
	if !el.Root {
		return el
	}
	cp := *el
	cp.Attrs = nil
	for _, a := range el.Attrs {
		if !hostAttr(a) {
			cp.Attrs = append(cp.Attrs, a)
		}
	}
	return &cp
}

// ClassName is the exported component class.
func ClassName(name string) string { return name + "Component" }

// Module assembles the decorated component class.
func (Emitter) Module(c *codegen.Component) ir.File {
	var b strings.Builder

	if len(c.Handlers) > 0 {
		b.WriteString("import { Component, Input } from '@angular/core';\n")
	} else {
		b.WriteString("import { Component } from '@angular/core';\n")
	}
	b.WriteString("import { CommonModule } from '@angular/common';\n")
	if len(c.Inline) > 0 {
		for _, imp := range themes.Imports(c.Styling, config.Angular) {
			b.WriteString(imp + "\n")
		}
	}
	b.WriteString("\n")
	for _, block := range c.Inline {
		b.WriteString(block + "\n\n")
	}

	b.WriteString("@Component({\n")
	fmt.Fprintf(&b, "  selector: 'app-%s',\n", codegen.KebabName(c.Name))
	b.WriteString("  standalone: true,\n")
	b.WriteString("  imports: [CommonModule],\n")
	if host := hostMetadata(c.Root); host != "" {
		fmt.Fprintf(&b, "  host: { %s },\n", host)
	}
	if c.HasStyleSheet {
		fmt.Fprintf(&b, "  styleUrls: ['./%s'],\n", c.Layout.StyleSheet)
	}
	b.WriteString("  template: `\n")
	b.WriteString(codegen.Indent(codegen.TemplateLiteral(c.Body), 2) + "\n")
	b.WriteString("  `,\n")
	b.WriteString("})\n")

	fmt.Fprintf(&b, "export class %s {\n", ClassName(c.Name))
	for _, h := range c.Handlers {
		if c.Typed {
			fmt.Fprintf(&b, "  @Input() %s?: () => void;\n", h)
		} else {
			fmt.Fprintf(&b, "  @Input() %s?: any;\n", h)
		}
	}
	for _, ident := range runtimeClasses(c.Inline) {
		fmt.Fprintf(&b, "  protected readonly %s = %s;\n", ident, ident)
	}
	b.WriteString("}\n")

	return ir.File{Path: c.Layout.Component, Content: b.String()}
}

// hostMetadata renders the root's host attributes as object entries.
func hostMetadata(root *codegen.Element) string {
	if root == nil {
		return ""
	}
	var entries []string
	for _, a := range root.Attrs {
		if !hostAttr(a) {
			continue
		}
		key := a.Name
		if strings.Contains(key, "-") {
			key = codegen.JSString(key)
		}
		entries = append(entries, key+": "+codegen.JSString(a.Value))
	}
	return strings.Join(entries, ", ")
}

// runtimeClasses lists the identifiers declared by inline css blocks so
// the template can reach them through the component instance.
func runtimeClasses(inline []string) []string {
	var out []string
	for _, block := range inline {
		rest, ok := strings.CutPrefix(block, "const ")
		if !ok {
			continue
		}
		if ident, _, ok := strings.Cut(rest, " "); ok {
			out = append(out, ident)
		}
	}
	return out
}

// TestFile renders a TestBed smoke test.
func (Emitter) TestFile(c *codegen.Component) ir.File {
	var b strings.Builder
	class := ClassName(c.Name)
	module := strings.TrimSuffix(c.Layout.Component, ".ts")

	b.WriteString("import { ComponentFixture, TestBed } from '@angular/core/testing';\n")
	fmt.Fprintf(&b, "import { %s } from './%s';\n\n", class, module)
	fmt.Fprintf(&b, "describe('%s', () => {\n", class)
	fmt.Fprintf(&b, "  let fixture: ComponentFixture<%s>;\n\n", class)
	b.WriteString("  beforeEach(async () => {\n")
	b.WriteString("    await TestBed.configureTestingModule({\n")
	fmt.Fprintf(&b, "      imports: [%s],\n", class)
	b.WriteString("    }).compileComponents();\n\n")
	fmt.Fprintf(&b, "    fixture = TestBed.createComponent(%s);\n", class)
	for _, h := range c.Handlers {
		fmt.Fprintf(&b, "    fixture.componentInstance.%s = () => {};\n", h)
	}
	b.WriteString("    fixture.detectChanges();\n")
	b.WriteString("  });\n\n")
	fmt.Fprintf(&b, "  it('renders a <%s> root', () => {\n", c.Root.Tag)
	b.WriteString("    const host: HTMLElement = fixture.nativeElement;\n")
	fmt.Fprintf(&b, "    expect(host.firstElementChild?.tagName).toBe('%s');\n", strings.ToUpper(c.Root.Tag))
	b.WriteString("  });\n")
	b.WriteString("});\n")

	return ir.File{Path: c.Layout.Test, Content: b.String()}
}

// template spells elements in Angular template syntax.
type template struct{}

func (template) Class(c codegen.Class) string {
	switch {
	case c.Module != "":
		return `class="` + c.Module + `"`
	case c.Expr != "":
		return `[class]="` + c.Expr + `"`
	}
	if codegen.Safe(c.Static) {
		return `class="` + c.Static + `"`
	}
	return `[class]="` + codegen.JSString(c.Static) + `"`
}

func (template) Attr(a codegen.Attr) string {
	if codegen.Safe(a.Value) {
		return a.Name + `="` + a.Value + `"`
	}
	return "[attr." + a.Name + `]="` + codegen.JSString(a.Value) + `"`
}

func (template) Event(e codegen.Event) string {
	switch e.Binding {
	case ir.OnSubmit:
		return `(submit)="$event.preventDefault(); ` + e.Handler + `?.()"`
	case ir.OnChange:
		return `(change)="` + e.Handler + `?.()"`
	}
	return `(click)="` + e.Handler + `?.()"`
}

func (template) Text(s string) string {
	if codegen.Safe(s) {
		return s
	}
	return "{{ " + codegen.JSString(s) + " }}"
}

func (template) Guard(g codegen.Guarded) string {
	return codegen.WithDirective(g, `*ngIf="`+g.Handler+`"`)
}
