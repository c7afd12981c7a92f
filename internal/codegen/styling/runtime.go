package styling

import (
	"strings"

	"github.com/barun-bash/forge/internal/codegen"
	"github.com/barun-bash/forge/internal/codegen/themes"
	"github.com/barun-bash/forge/internal/config"
)

// Runtime expresses styles as Emotion css blocks defined in the component
// module.
type Runtime struct {
	names *allocator
}

// NewRuntime returns an Emotion adapter.
func NewRuntime() *Runtime { return &Runtime{names: newAllocator()} }

func (*Runtime) Styling() config.Styling { return config.Emotion }

// Resolve allocates one css block per distinct styling; nodes with equal
// styling share the identifier.
func (r *Runtime) Resolve(nodeID string, layers []Layer) Resolution {
	var res Resolution
	var clean []Layer
	for _, l := range layers {
		decls, tokens := split(l.Styles)
		res.Dropped = append(res.Dropped, tokens...)
		if len(decls) > 0 {
			clean = append(clean, l)
		}
	}
	if len(clean) == 0 {
		return res
	}

	name, fresh := r.names.name(nodeID, Key(clean))
	ident := name + "Class"
	res.Class = codegen.Class{Expr: ident}
	if fresh {
		res.Inline = []string{cssBlock(ident, clean)}
	}
	return res
}

func cssBlock(ident string, layers []Layer) string {
	var b strings.Builder
	b.WriteString("const " + ident + " = css`\n")
	for i, l := range layers {
		decls, _ := split(l.Styles)
		query := themes.MediaQuery(l.Breakpoint)
		if query == "" {
			writeDecls(&b, l.Styles, decls, 1, codegen.TemplateLiteral)
			continue
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("  @media " + query + " {\n")
		writeDecls(&b, l.Styles, decls, 2, codegen.TemplateLiteral)
		b.WriteString("  }\n")
	}
	b.WriteString("`;")
	return b.String()
}

func writeDecls(b *strings.Builder, styles map[string]string, decls []string, level int, escape func(string) string) {
	pad := strings.Repeat("  ", level)
	for _, prop := range decls {
		b.WriteString(pad + escape(prop) + ": " + escape(styles[prop]) + ";\n")
	}
}
