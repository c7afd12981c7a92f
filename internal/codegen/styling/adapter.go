// Package styling turns a node's per-breakpoint style maps into the form a
// styling system expects: utility classes, runtime css blocks, or rules in
// a scoped stylesheet.
package styling

import (
	"fmt"
	"hash/fnv"

	"github.com/barun-bash/forge/internal/codegen"
	"github.com/barun-bash/forge/internal/config"
	"github.com/barun-bash/forge/internal/ir"
)

// Resolution is what an adapter produces for one node.
type Resolution struct {
	Class codegen.Class
	// Inline holds script blocks to add to the component module.
	Inline []string
	// Extra holds fragments for companion files such as the stylesheet.
	Extra []ir.FileFragment
	// Dropped lists bare utility tokens the styling system cannot express.
	Dropped []string
}

// Adapter resolves styles for one export request. Adapters are stateful:
// they deduplicate identical styling across the nodes of a tree, so a new
// one is needed per request.
type Adapter interface {
	Styling() config.Styling
	Resolve(nodeID string, layers []Layer) Resolution
}

// New returns a fresh adapter for s. sheet is the stylesheet path used by
// stylesheet-based systems.
func New(s config.Styling, sheet string) (Adapter, bool) {
	switch s {
	case config.Tailwind:
		return &Utility{}, true
	case config.Emotion:
		return NewRuntime(), true
	case config.CSSModules:
		return NewSheet(sheet, false), true
	case config.SCSS:
		return NewSheet(sheet, true), true
	}
	return nil, false
}

// allocator hands out class names. Identical styling reuses a name; a
// name clash between different styling gets a hash suffix.
type allocator struct {
	byKey map[string]string
	owner map[string]string
}

func newAllocator() *allocator {
	return &allocator{byKey: map[string]string{}, owner: map[string]string{}}
}

// name returns the class name for key and whether it is newly allocated.
func (a *allocator) name(nodeID, key string) (string, bool) {
	if n, ok := a.byKey[key]; ok {
		return n, false
	}
	name := codegen.CamelName(nodeID)
	if other, taken := a.owner[name]; taken && other != key {
		name = fmt.Sprintf("%s_%s", name, shortHash(key))
	}
	a.byKey[key] = name
	a.owner[name] = key
	return name, true
}

func shortHash(s string) string {
	h := fnv.New32a()
	h.Write([]byte(s))
	return fmt.Sprintf("%06x", h.Sum32()&0xffffff)
}
