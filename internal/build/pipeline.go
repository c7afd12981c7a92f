// Package build runs the export pipeline: it walks a component tree once,
// resolves styling and accessibility per node, and asks the configured
// emitter for the component module, its stylesheet and its test.
package build

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/barun-bash/forge/internal/a11y"
	"github.com/barun-bash/forge/internal/codegen"
	"github.com/barun-bash/forge/internal/codegen/angular"
	"github.com/barun-bash/forge/internal/codegen/react"
	"github.com/barun-bash/forge/internal/codegen/styling"
	"github.com/barun-bash/forge/internal/codegen/svelte"
	"github.com/barun-bash/forge/internal/codegen/themes"
	"github.com/barun-bash/forge/internal/codegen/vue"
	"github.com/barun-bash/forge/internal/config"
	"github.com/barun-bash/forge/internal/errors"
	"github.com/barun-bash/forge/internal/ir"
)

// Result is the outcome of one export request. Files is empty whenever
// Success is false. A Result is never modified after it is returned.
type Result struct {
	Success     bool                 `json:"success" yaml:"success"`
	Files       []ir.File            `json:"files" yaml:"files"`
	Diagnostics []*errors.Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// Warnings returns the non-fatal diagnostics.
func (r *Result) Warnings() []*errors.Diagnostic {
	var out []*errors.Diagnostic
	for _, d := range r.Diagnostics {
		if !d.Fatal() {
			out = append(out, d)
		}
	}
	return out
}

// Option configures an export.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger sets the logger the pipeline reports progress to.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// emitters is the fixed target lookup.
var emitters = map[config.Target]codegen.Emitter{
	config.React:   react.Emitter{},
	config.Vue:     vue.Emitter{},
	config.Svelte:  svelte.Emitter{},
	config.Angular: angular.Emitter{},
}

// EmitterFor returns the emitter registered for t.
func EmitterFor(t config.Target) (codegen.Emitter, bool) {
	e, ok := emitters[t]
	return e, ok
}

// Export renders tree under cfg. It never panics and never returns nil:
// every failure is reported as a fatal diagnostic in the result.
func Export(ctx context.Context, tree *ir.Tree, cfg config.Export, opts ...Option) (res *Result) {
	o := newOptions(opts)
	log := o.logger.With(zap.String("target", string(cfg.Target)), zap.String("styling", string(cfg.Styling)))
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			log.Error("export panicked", zap.Any("panic", r))
			res = fail(errors.Internal(r))
		}
	}()

	if diags := cfg.Validate(); len(diags) > 0 {
		return fail(diags...)
	}
	if err := ir.Validate(tree); err != nil {
		return fail(treeDiagnostics(err)...)
	}

	e, ok := emitters[cfg.Target]
	if !ok || !themes.HasFrameworkSupport(cfg.Styling, cfg.Target) {
		return fail(errors.UnsupportedCombination(string(cfg.Target), string(cfg.Styling)))
	}
	root := tree.Root()
	name := codegen.ComponentName(root.ID)
	layout := e.Layout(name, cfg.Typed, cfg.Styling)
	adapter, ok := styling.New(cfg.Styling, layout.StyleSheet)
	if !ok {
		return fail(errors.UnsupportedCombination(string(cfg.Target), string(cfg.Styling)))
	}

	w := &walker{
		ctx:      ctx,
		cfg:      cfg,
		emitter:  e,
		adapter:  adapter,
		injector: a11y.Injector{Enabled: cfg.Accessible},
		diags:    errors.New(),
		extra:    map[string][]string{},
	}
	body, err := w.visit(root, true)
	if err != nil {
		log.Debug("export cancelled", zap.Error(err))
		return fail(errors.Cancelled(err))
	}

	c := &codegen.Component{
		Name:     name,
		Layout:   layout,
		Root:     w.root,
		Body:     body,
		Handlers: codegen.Unique(w.handlers),
		Typed:    cfg.Typed,
		Styling:  cfg.Styling,
		Inline:   w.inline,
	}
	_, c.HasStyleSheet = w.extra[layout.StyleSheet]

	files := []ir.File{e.Module(c)}
	for _, path := range w.extraOrder {
		files = append(files, ir.File{Path: path, Content: strings.Join(w.extra[path], "\n")})
	}
	if cfg.Tested {
		files = append(files, e.TestFile(c))
	}

	log.Debug("export finished",
		zap.String("component", name),
		zap.Int("nodes", tree.Len()),
		zap.Int("files", len(files)),
		zap.Int("warnings", w.diags.Len()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return &Result{Success: true, Files: files, Diagnostics: w.diags.All()}
}

// walker carries per-request state through the traversal.
type walker struct {
	ctx      context.Context
	cfg      config.Export
	emitter  codegen.Emitter
	adapter  styling.Adapter
	injector a11y.Injector
	diags    *errors.Collection

	root       *codegen.Element
	handlers   []string
	inline     []string
	extra      map[string][]string
	extraOrder []string
}

// visit renders n and its subtree in pre-order. The context is checked
// before each node.
func (w *walker) visit(n *ir.Node, isRoot bool) (string, error) {
	if err := w.ctx.Err(); err != nil {
		return "", err
	}

	el := codegen.Lower(n)
	el.Root = isRoot
	if isRoot {
		w.root = el
	}

	res := w.adapter.Resolve(n.ID, styling.Layers(n, w.cfg.Responsive))
	el.Class = res.Class
	w.inline = append(w.inline, res.Inline...)
	for _, f := range res.Extra {
		if _, seen := w.extra[f.Path]; !seen {
			w.extraOrder = append(w.extraOrder, f.Path)
		}
		w.extra[f.Path] = append(w.extra[f.Path], f.Content)
	}
	for _, tok := range res.Dropped {
		w.diags.Add(errors.Warning(errors.CodeDroppedToken, n.ID,
			"utility token "+quote(tok)+" has no "+string(w.cfg.Styling)+" equivalent and was dropped"))
	}

	w.diags.Add(w.injector.Apply(el)...)
	w.handlers = append(w.handlers, el.Handlers()...)

	children := make([]string, 0, len(n.Children))
	for _, child := range n.Children {
		out, err := w.visit(child, false)
		if err != nil {
			return "", err
		}
		children = append(children, out)
	}

	out, err := w.emitter.Element(el, children)
	if err == nil {
		return out, nil
	}
	w.diags.Add(errors.UnknownKind(n.ID, string(n.Kind), errors.DidYouMean(string(n.Kind), kindNames())))
	for _, b := range el.Ignored {
		w.diags.Add(errors.Warning(errors.CodeDroppedBinding, n.ID,
			"binding "+string(b)+" is not supported on a generic element and was dropped"))
	}
	return w.emitter.Passthrough(el, children), nil
}

func fail(diags ...*errors.Diagnostic) *Result {
	return &Result{Success: false, Diagnostics: diags}
}

// treeDiagnostics converts a validation error into one E102 per issue.
func treeDiagnostics(err error) []*errors.Diagnostic {
	ve, ok := err.(*ir.ValidationError)
	if !ok {
		return []*errors.Diagnostic{errors.InvalidTree("", err.Error())}
	}
	out := make([]*errors.Diagnostic, len(ve.Issues))
	for i, is := range ve.Issues {
		out[i] = errors.InvalidTree(is.NodeID, is.Message)
	}
	return out
}

func kindNames() []string {
	kinds := ir.KnownKinds()
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = string(k)
	}
	return out
}

func quote(s string) string { return "\"" + s + "\"" }
