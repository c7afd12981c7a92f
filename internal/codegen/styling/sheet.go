package styling

import (
	"strings"

	"github.com/barun-bash/forge/internal/codegen"
	"github.com/barun-bash/forge/internal/codegen/themes"
	"github.com/barun-bash/forge/internal/config"
	"github.com/barun-bash/forge/internal/ir"
)

// Sheet expresses styles as class rules in a scoped stylesheet, either
// plain CSS Modules or SCSS.
type Sheet struct {
	path   string
	scss   bool
	names  *allocator
	header bool
}

// NewSheet returns a stylesheet adapter writing rules to path.
func NewSheet(path string, scss bool) *Sheet {
	return &Sheet{path: path, scss: scss, names: newAllocator()}
}

func (s *Sheet) Styling() config.Styling {
	if s.scss {
		return config.SCSS
	}
	return config.CSSModules
}

// Resolve allocates one class per distinct styling and emits its rules
// the first time the styling is seen.
func (s *Sheet) Resolve(nodeID string, layers []Layer) Resolution {
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

	name, fresh := s.names.name(nodeID, Key(clean))
	res.Class = codegen.Class{Module: name}
	if !fresh {
		return res
	}

	var rule string
	if s.scss {
		rule = scssRule(name, clean)
		if !s.header {
			rule = themes.SCSSHeader() + "\n" + rule
			s.header = true
		}
	} else {
		rule = cssRule(name, clean)
	}
	res.Extra = []ir.FileFragment{{Path: s.path, Content: rule}}
	return res
}

func identity(s string) string { return s }

func cssRule(name string, layers []Layer) string {
	var blocks []string
	for _, l := range layers {
		decls, _ := split(l.Styles)
		var b strings.Builder
		query := themes.MediaQuery(l.Breakpoint)
		if query == "" {
			b.WriteString("." + name + " {\n")
			writeDecls(&b, l.Styles, decls, 1, identity)
			b.WriteString("}\n")
		} else {
			b.WriteString("@media " + query + " {\n")
			b.WriteString("  ." + name + " {\n")
			writeDecls(&b, l.Styles, decls, 2, identity)
			b.WriteString("  }\n}\n")
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n")
}

func scssRule(name string, layers []Layer) string {
	var b strings.Builder
	b.WriteString("." + name + " {\n")
	for i, l := range layers {
		decls, _ := split(l.Styles)
		v := themes.SCSSVariable(l.Breakpoint)
		if v == "" {
			writeDecls(&b, l.Styles, decls, 1, identity)
			continue
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("  @media (min-width: " + v + ") {\n")
		writeDecls(&b, l.Styles, decls, 2, identity)
		b.WriteString("  }\n")
	}
	b.WriteString("}\n")
	return b.String()
}
