package build

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/barun-bash/forge/internal/config"
	"github.com/barun-bash/forge/internal/errors"
	"github.com/barun-bash/forge/internal/ir"
)

// ── Fixtures ──

func profileCard() *ir.Node {
	return &ir.Node{
		ID:    "profile-card",
		Kind:  ir.KindCard,
		Props: map[string]any{"name": "Ada"},
		Styles: map[ir.Breakpoint]ir.StyleMap{
			ir.Mobile:  {"padding": "16px", "display": "flex"},
			ir.Tablet:  {"padding": "24px", "display": "flex"},
			ir.Desktop: {"padding": "32px", "display": "grid"},
		},
		Accessibility: &ir.Accessibility{
			Attributes: map[string]string{"role": "region"},
			Labels:     map[string]string{"aria-label": "Profile of {name}"},
		},
		Children: []*ir.Node{
			{
				ID: "photo", Kind: ir.KindImage,
				Props:         map[string]any{"src": "/ada.png", "name": "Ada"},
				Accessibility: &ir.Accessibility{Labels: map[string]string{"alt": "Photo of {name}"}},
				Styles:        map[ir.Breakpoint]ir.StyleMap{ir.Mobile: {"width": "48px"}},
			},
			{ID: "title", Kind: ir.KindHeading, Props: map[string]any{"text": "Profile"}},
		},
	}
}

func every() []config.Export {
	var out []config.Export
	for _, t := range config.Targets() {
		for _, s := range config.Stylings() {
			out = append(out, config.Export{Target: t, Styling: s, Typed: true, Accessible: true, Responsive: true, Tested: true})
		}
	}
	return out
}

func export(t *testing.T, root *ir.Node, cfg config.Export) *Result {
	t.Helper()
	res := Export(context.Background(), ir.Snapshot(root), cfg)
	require.NotNil(t, res)
	require.Truef(t, res.Success, "%s failed: %s", cfg, errors.Format(res.Diagnostics))
	require.NotEmpty(t, res.Files)
	return res
}

// ── Properties ──

func TestDeterminism(t *testing.T) {
	for _, cfg := range every() {
		t.Run(cfg.String(), func(t *testing.T) {
			a := export(t, profileCard(), cfg)
			b := export(t, profileCard(), cfg)
			assert.Equal(t, a.Files, b.Files)
		})
	}
}

func TestBindingConditionality(t *testing.T) {
	withEdit := profileCard()
	withEdit.Bindings = ir.Bindings{Edit: &ir.Binding{}}

	withBoth := profileCard()
	withBoth.Bindings = ir.Bindings{Edit: &ir.Binding{}, Delete: &ir.Binding{Label: "Remove"}}

	for _, cfg := range every() {
		t.Run(cfg.String(), func(t *testing.T) {
			content := export(t, withEdit, cfg).Files[0].Content
			assert.Contains(t, content, "onEdit")
			assert.NotContains(t, content, "onDelete")
			assert.NotContains(t, content, ">Delete<")

			content = export(t, withBoth, cfg).Files[0].Content
			assert.Contains(t, content, "onDelete")
			assert.Contains(t, content, ">Remove</button>")
		})
	}
}

func TestAccessibilityToggle(t *testing.T) {
	for _, cfg := range every() {
		t.Run(cfg.String(), func(t *testing.T) {
			on := export(t, profileCard(), cfg).Files[0].Content
			for _, key := range []string{"role", "aria-label", "alt"} {
				assert.Contains(t, on, key)
			}
			assert.Contains(t, on, "Photo of Ada")
			assert.Contains(t, on, "Profile of Ada")

			cfg.Accessible = false
			off := export(t, profileCard(), cfg).Files[0].Content
			assert.NotContains(t, off, "aria-")
			assert.NotContains(t, off, "role")
			assert.NotContains(t, off, "host:")
		})
	}
}

func TestResponsiveToggle(t *testing.T) {
	other := profileCard()
	other.Styles[ir.Mobile] = ir.StyleMap{"margin": "4px", "bold": ""}
	delete(other.Styles, ir.Tablet)
	other.Children[0].Styles = nil

	for _, cfg := range every() {
		cfg.Responsive = false
		t.Run(cfg.String(), func(t *testing.T) {
			a := export(t, profileCard(), cfg)
			b := export(t, other, cfg)
			assert.Equal(t, a.Files, b.Files)
			for _, f := range a.Files {
				assert.NotContains(t, f.Content, "@media")
				assert.NotContains(t, f.Content, "md:")
			}
		})
	}
}

var moduleClass = regexp.MustCompile(`styles\.(\w+)`)

func TestScopedClassStability(t *testing.T) {
	root := &ir.Node{
		ID: "list", Kind: ir.KindList,
		Children: []*ir.Node{
			{ID: "first", Kind: ir.KindText, Props: map[string]any{"text": "a"}, Styles: map[ir.Breakpoint]ir.StyleMap{ir.Mobile: {"color": "red"}}},
			{ID: "second", Kind: ir.KindText, Props: map[string]any{"text": "b"}, Styles: map[ir.Breakpoint]ir.StyleMap{ir.Mobile: {"color": "red"}}},
			{ID: "third", Kind: ir.KindText, Props: map[string]any{"text": "c"}, Styles: map[ir.Breakpoint]ir.StyleMap{ir.Mobile: {"color": "blue"}}},
		},
	}
	cfg := config.Export{Target: config.React, Styling: config.CSSModules, Typed: true, Responsive: true}

	classes := func() []string {
		var out []string
		for _, m := range moduleClass.FindAllStringSubmatch(export(t, root, cfg).Files[0].Content, -1) {
			out = append(out, m[1])
		}
		return out
	}
	first := classes()
	assert.Equal(t, []string{"first", "first", "third"}, first)
	for range 3 {
		assert.Equal(t, first, classes())
	}
}

func TestUnknownKindDegrades(t *testing.T) {
	root := profileCard()
	root.Children = append(root.Children, &ir.Node{ID: "promo", Kind: "crad"})

	for _, cfg := range every() {
		t.Run(cfg.String(), func(t *testing.T) {
			res := export(t, root, cfg)
			warnings := res.Warnings()
			require.Len(t, warnings, 1)
			assert.Equal(t, errors.CodeUnknownKind, warnings[0].Code)
			assert.Equal(t, "promo", warnings[0].NodeID)
			assert.Equal(t, `did you mean "card"?`, warnings[0].Suggestion)

			content := res.Files[0].Content
			assert.Contains(t, content, `data-kind="crad"`)
			assert.Contains(t, content, "Profile")
		})
	}
}

func TestUnknownKindReportsDroppedBindings(t *testing.T) {
	root := &ir.Node{ID: "page", Kind: ir.KindContainer, Children: []*ir.Node{{
		ID: "signup", Kind: "wizard",
		Bindings: ir.Bindings{
			Edit:   &ir.Binding{},
			Submit: &ir.Binding{Handler: "save"},
			Change: &ir.Binding{Handler: "update"},
		},
	}}}
	for _, cfg := range every() {
		t.Run(cfg.String(), func(t *testing.T) {
			res := export(t, root, cfg)
			var codes, messages []string
			for _, w := range res.Warnings() {
				codes = append(codes, w.Code)
				messages = append(messages, w.Message)
			}
			assert.Equal(t, []string{errors.CodeUnknownKind, errors.CodeDroppedBinding, errors.CodeDroppedBinding}, codes)
			assert.Contains(t, messages[1], "onSubmit")
			assert.Contains(t, messages[2], "onChange")
			assert.Contains(t, res.Files[0].Content, "onEdit")
			assert.NotContains(t, res.Files[0].Content, "save")
		})
	}
}

func TestProfileScenario(t *testing.T) {
	root := &ir.Node{
		ID:   "profile",
		Kind: ir.KindContainer,
		Children: []*ir.Node{
			{ID: "heading", Kind: ir.KindHeading, Props: map[string]any{"text": "Profile"}},
			{
				ID: "photo", Kind: ir.KindImage,
				Props:         map[string]any{"src": "/me.png", "name": "Grace"},
				Accessibility: &ir.Accessibility{Labels: map[string]string{"alt": "Photo of {name}"}},
			},
			{ID: "edit-name", Kind: ir.KindButton, Props: map[string]any{"text": "Edit name"}, Bindings: ir.Bindings{Edit: &ir.Binding{Handler: "onEditName"}}},
			{ID: "edit-photo", Kind: ir.KindButton, Props: map[string]any{"text": "Edit photo"}, Bindings: ir.Bindings{Edit: &ir.Binding{Handler: "onEditPhoto"}}},
		},
	}
	cfg := config.Export{Target: config.React, Styling: config.Tailwind, Typed: true, Accessible: true, Responsive: true}

	res := export(t, root, cfg)
	require.Len(t, res.Files, 1)
	content := res.Files[0].Content
	assert.Equal(t, "Profile.tsx", res.Files[0].Path)
	assert.Contains(t, content, "<h2>Profile</h2>")
	assert.Contains(t, content, `alt="Photo of Grace"`)
	assert.Contains(t, content, "{onEditName && (")
	assert.Contains(t, content, "{onEditPhoto && (")
	assert.NotContains(t, content, "Delete")
	assert.Empty(t, res.Diagnostics)
}

// ── Files ──

func TestFileOrder(t *testing.T) {
	cfg := config.Export{Target: config.Vue, Styling: config.SCSS, Typed: true, Responsive: true, Tested: true}
	res := export(t, profileCard(), cfg)
	var paths []string
	for _, f := range res.Files {
		paths = append(paths, f.Path)
	}
	assert.Equal(t, []string{"ProfileCard.vue", "ProfileCard.module.scss", "ProfileCard.spec.ts"}, paths)
	assert.True(t, strings.HasPrefix(res.Files[1].Content, "$bp-tablet: 768px;\n"))
}

func TestNoStyleSheetWithoutStyles(t *testing.T) {
	root := &ir.Node{ID: "plain", Kind: ir.KindText, Props: map[string]any{"text": "x"}}
	res := export(t, root, config.Export{Target: config.Svelte, Styling: config.CSSModules})
	require.Len(t, res.Files, 1)
	assert.Equal(t, "Plain.svelte", res.Files[0].Path)
	assert.NotContains(t, res.Files[0].Content, "styles")
}

func TestDroppedTokensWarn(t *testing.T) {
	root := &ir.Node{ID: "box", Kind: ir.KindContainer, Styles: map[ir.Breakpoint]ir.StyleMap{ir.Mobile: {"shadow-md": "", "padding": "4px"}}}
	res := export(t, root, config.Export{Target: config.React, Styling: config.Emotion, Responsive: true})
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, errors.CodeDroppedToken, res.Diagnostics[0].Code)
	assert.Contains(t, res.Diagnostics[0].Message, `"shadow-md"`)

	res = export(t, root, config.Export{Target: config.React, Styling: config.Tailwind, Responsive: true})
	assert.Empty(t, res.Diagnostics)
	assert.Contains(t, res.Files[0].Content, "shadow-md")
}

// ── Failures ──

func TestInvalidConfig(t *testing.T) {
	res := Export(context.Background(), ir.Snapshot(profileCard()), config.Export{Target: "raect", Styling: config.Tailwind})
	assert.False(t, res.Success)
	assert.Empty(t, res.Files)
	require.NotEmpty(t, res.Diagnostics)
	assert.Equal(t, errors.CodeInvalidConfig, res.Diagnostics[0].Code)
}

func TestInvalidTree(t *testing.T) {
	root := profileCard()
	root.Children = append(root.Children, &ir.Node{ID: "title", Kind: ir.KindText})
	root.Bindings = ir.Bindings{Click: &ir.Binding{Handler: "not valid"}}

	res := Export(context.Background(), ir.Snapshot(root), config.Default())
	assert.False(t, res.Success)
	assert.Empty(t, res.Files)
	require.Len(t, res.Diagnostics, 2)
	for _, d := range res.Diagnostics {
		assert.Equal(t, errors.CodeInvalidTree, d.Code)
	}

	res = Export(context.Background(), nil, config.Default())
	assert.False(t, res.Success)
}

func TestMarkupBreakingInputRejected(t *testing.T) {
	attr := &ir.Node{ID: "card", Kind: ir.KindCard, Accessibility: &ir.Accessibility{
		Attributes: map[string]string{`aria-label="x" onmouseover`: "alert(1)"},
	}}
	rule := &ir.Node{ID: "card", Kind: ir.KindCard, Styles: map[ir.Breakpoint]ir.StyleMap{
		ir.Desktop: {"font-family": "x} .evil { color: red"},
	}}
	for _, root := range []*ir.Node{attr, rule} {
		for _, cfg := range every() {
			res := Export(context.Background(), ir.Snapshot(root), cfg)
			assert.False(t, res.Success, cfg.String())
			assert.Empty(t, res.Files, cfg.String())
			require.NotEmpty(t, res.Diagnostics, cfg.String())
			assert.Equal(t, errors.CodeInvalidTree, res.Diagnostics[0].Code, cfg.String())
		}
	}
}

func TestCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := Export(ctx, ir.Snapshot(profileCard()), config.Default())
	assert.False(t, res.Success)
	assert.Empty(t, res.Files)
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, errors.CodeCancelled, res.Diagnostics[0].Code)
}

func TestEveryPairIsWired(t *testing.T) {
	for _, target := range config.Targets() {
		e, ok := EmitterFor(target)
		require.Truef(t, ok, "no emitter for %s", target)
		assert.Equal(t, target, e.Target())
	}
}

// ── Options ──

func TestWithLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	export := Export(context.Background(), ir.Snapshot(profileCard()), config.Default(), WithLogger(zap.New(core)))
	require.True(t, export.Success)

	entries := logs.FilterMessage("export finished").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "ProfileCard", fields["component"])
	assert.Equal(t, "react", fields["target"])
	assert.EqualValues(t, 3, fields["nodes"])
}

func TestExportAllKeepsOrder(t *testing.T) {
	tree := ir.Snapshot(profileCard())
	reqs := Matrix(tree, config.Export{Typed: true, Responsive: true})
	require.Len(t, reqs, 16)
	reqs = append(reqs, Request{Tree: tree, Config: config.Export{Target: "qwik", Styling: config.Tailwind}})

	results := ExportAll(context.Background(), reqs)
	require.Len(t, results, len(reqs))
	for i, req := range reqs[:16] {
		e, _ := EmitterFor(req.Config.Target)
		want := e.Layout("ProfileCard", true, req.Config.Styling).Component
		assert.True(t, results[i].Success, fmt.Sprint(req.Config))
		assert.Equal(t, want, results[i].Files[0].Path)
	}
	assert.False(t, results[16].Success)
}

func TestCache(t *testing.T) {
	cache, err := NewCache(4)
	require.NoError(t, err)

	cfg := config.Default()
	a := cache.Export(context.Background(), ir.Snapshot(profileCard()), cfg)
	b := cache.Export(context.Background(), ir.Snapshot(profileCard()), cfg)
	assert.Same(t, a, b)
	assert.Equal(t, 1, cache.Len())

	cfg.Styling = config.SCSS
	c := cache.Export(context.Background(), ir.Snapshot(profileCard()), cfg)
	assert.NotSame(t, a, c)
	assert.Equal(t, 2, cache.Len())

	bad := config.Export{Target: "nope"}
	cache.Export(context.Background(), ir.Snapshot(profileCard()), bad)
	assert.Equal(t, 2, cache.Len(), "failures are not cached")
}

func TestKey(t *testing.T) {
	tree := ir.Snapshot(profileCard())
	k1, err := Key(tree, config.Default())
	require.NoError(t, err)
	k2, _ := Key(ir.Snapshot(profileCard()), config.Default())
	assert.Equal(t, k1, k2)

	cfg := config.Default()
	cfg.Tested = !cfg.Tested
	k3, _ := Key(tree, cfg)
	assert.NotEqual(t, k1, k3)

	_, err = Key(nil, cfg)
	assert.Error(t, err)
}
