package styling

import (
	"sort"
	"strings"

	"github.com/barun-bash/forge/internal/ir"
)

// Layer is the set of declarations that start applying at a breakpoint.
// Layers are mobile-first: the first layer is the unconditional base and
// each later layer only carries what changes from the layer below.
type Layer struct {
	Breakpoint ir.Breakpoint
	Styles     ir.StyleMap
	// Removed lists bare tokens of smaller layers that stop applying here.
	Removed []string
}

// unset resets a property a larger breakpoint no longer declares.
const unset = "unset"

// Layers computes the mobile-first layers of a node. With responsive off
// there is at most one base layer holding the node's desktop styles.
// Empty layers are omitted.
func Layers(n *ir.Node, responsive bool) []Layer {
	if !responsive {
		base := ir.ResolveStyle(n, ir.Desktop, false)
		if len(base) == 0 {
			return nil
		}
		return []Layer{{Breakpoint: ir.Mobile, Styles: base}}
	}

	var out []Layer
	prev := ir.StyleMap{}
	for _, bp := range ir.Breakpoints {
		cur := ir.ResolveStyle(n, bp, true)
		d, removed := diff(prev, cur)
		if len(d) > 0 || len(removed) > 0 {
			out = append(out, Layer{Breakpoint: bp, Styles: d, Removed: removed})
		}
		prev = cur
	}
	return out
}

// diff returns the declarations needed to go from prev to next. Removed
// properties become "unset". Removed bare tokens cannot be reset by a
// declaration and are returned separately, sorted.
func diff(prev, next ir.StyleMap) (ir.StyleMap, []string) {
	out := ir.StyleMap{}
	for k, v := range next {
		if old, ok := prev[k]; !ok || old != v {
			out[k] = v
		}
	}
	var removed []string
	for k, v := range prev {
		if _, ok := next[k]; ok {
			continue
		}
		if v == "" {
			removed = append(removed, strings.Fields(k)...)
		} else {
			out[k] = unset
		}
	}
	sort.Strings(removed)
	return out, removed
}

// Key is a canonical encoding of layers, equal for equal styling.
func Key(layers []Layer) string {
	var b strings.Builder
	for _, l := range layers {
		b.WriteString(string(l.Breakpoint))
		b.WriteByte('{')
		for _, k := range sortedProps(l.Styles) {
			b.WriteString(k)
			b.WriteByte(':')
			b.WriteString(l.Styles[k])
			b.WriteByte(';')
		}
		b.WriteByte('}')
	}
	return b.String()
}

// split separates declarations from bare utility tokens, both sorted.
func split(m ir.StyleMap) (decls []string, tokens []string) {
	for _, k := range sortedProps(m) {
		if m[k] == "" {
			tokens = append(tokens, strings.Fields(k)...)
		} else {
			decls = append(decls, k)
		}
	}
	return decls, tokens
}

func sortedProps(m ir.StyleMap) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
