// Package a11y adds accessibility attributes to lowered elements.
package a11y

import (
	"fmt"
	"sort"
	"strings"

	"github.com/barun-bash/forge/internal/codegen"
	"github.com/barun-bash/forge/internal/errors"
	"github.com/barun-bash/forge/internal/ir"
)

// Injector is the accessibility pass. A disabled injector leaves elements
// untouched so no ARIA or role attribute reaches the output.
type Injector struct {
	Enabled bool
}

// Inject returns attrs extended with the node's accessibility metadata.
// Attributes come first in name order, then resolved labels in name order.
// A label replaces an attribute of the same name.
func (in Injector) Inject(attrs []codegen.Attr, n *ir.Node) ([]codegen.Attr, []*errors.Diagnostic) {
	if !in.Enabled || n == nil {
		return attrs, nil
	}
	out := append([]codegen.Attr(nil), attrs...)
	var diags []*errors.Diagnostic

	acc := n.Accessibility
	if acc != nil {
		for _, k := range sortedKeys(acc.Attributes) {
			out = set(out, codegen.Attr{Name: k, Value: acc.Attributes[k], A11y: true})
		}
		for _, k := range sortedKeys(acc.Labels) {
			value, missing := Resolve(acc.Labels[k], n)
			for _, p := range missing {
				diags = append(diags, errors.Warning(errors.CodeUnknownPlaceholder, n.ID,
					fmt.Sprintf("label %s references unknown prop %q", k, p)))
			}
			out = set(out, codegen.Attr{Name: k, Value: value, A11y: true})
		}
	}

	switch n.Kind {
	case ir.KindImage, ir.KindAvatar:
		if !has(out, "alt") {
			diags = append(diags, errors.Warning(errors.CodeMissingAlt, n.ID, "image has no alt text; emitting alt=\"\""))
			out = set(out, codegen.Attr{Name: "alt", Value: "", A11y: true})
		}
	case ir.KindIcon:
		if !has(out, "aria-label") && !has(out, "aria-hidden") && !has(out, "role") {
			out = set(out, codegen.Attr{Name: "aria-hidden", Value: "true", A11y: true})
		}
	}
	return out, diags
}

// Apply runs Inject on el and labels its affordance buttons after the
// node's own aria-label, e.g. "Edit Profile".
func (in Injector) Apply(el *codegen.Element) []*errors.Diagnostic {
	if !in.Enabled {
		return nil
	}
	attrs, diags := in.Inject(el.Attrs, el.Node)
	el.Attrs = attrs

	label := ""
	for _, a := range attrs {
		if a.Name == "aria-label" {
			label = a.Value
		}
	}
	if label == "" {
		return diags
	}
	for i := range el.Actions {
		act := &el.Actions[i]
		act.SetAttr(codegen.Attr{Name: "aria-label", Value: act.Label + " " + label, A11y: true})
	}
	return diags
}

// Resolve substitutes {prop} placeholders with the node's literal prop
// values. Unknown props are left in place and reported.
func Resolve(template string, n *ir.Node) (string, []string) {
	var b strings.Builder
	var missing []string
	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			break
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			break
		}
		name := rest[open+1 : open+end]
		b.WriteString(rest[:open])
		if v, ok := n.Text(strings.TrimSpace(name)); ok {
			b.WriteString(v)
		} else {
			missing = append(missing, name)
			b.WriteString(rest[open : open+end+1])
		}
		rest = rest[open+end+1:]
	}
	b.WriteString(rest)
	return b.String(), missing
}

func set(attrs []codegen.Attr, a codegen.Attr) []codegen.Attr {
	for i := range attrs {
		if attrs[i].Name == a.Name {
			attrs[i] = a
			return attrs
		}
	}
	return append(attrs, a)
}

func has(attrs []codegen.Attr, name string) bool {
	for _, a := range attrs {
		if a.Name == name {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
