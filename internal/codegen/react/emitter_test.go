package react

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/barun-bash/forge/internal/codegen"
	"github.com/barun-bash/forge/internal/codegen/codegentest"
	"github.com/barun-bash/forge/internal/config"
	"github.com/barun-bash/forge/internal/ir"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

// ── Layout ──

func TestLayout(t *testing.T) {
	l := Emitter{}.Layout("ProfileCard", true, config.SCSS)
	if l.Component != "ProfileCard.tsx" || l.StyleSheet != "ProfileCard.module.scss" || l.Test != "ProfileCard.test.tsx" {
		t.Errorf("typed scss layout: got %+v", l)
	}
	l = Emitter{}.Layout("ProfileCard", false, config.Tailwind)
	if l.Component != "ProfileCard.jsx" || l.StyleSheet != "" || l.Test != "ProfileCard.test.jsx" {
		t.Errorf("untyped tailwind layout: got %+v", l)
	}
}

// ── Elements ──

func TestUnknownKindIsRejected(t *testing.T) {
	el := codegen.Lower(&ir.Node{ID: "x", Kind: "carousel"})
	if _, err := (Emitter{}).Element(el, nil); !errors.Is(err, codegen.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	if got := (Emitter{}).Passthrough(el, nil); got != `<div data-kind="carousel"></div>` {
		t.Errorf("passthrough: got %q", got)
	}
}

func TestAttributeSpelling(t *testing.T) {
	tests := []struct {
		attr codegen.Attr
		want string
	}{
		{codegen.Attr{Name: "tabindex", Value: "0"}, `tabIndex="0"`},
		{codegen.Attr{Name: "aria-label", Value: "Profile"}, `aria-label="Profile"`},
		{codegen.Attr{Name: "alt", Value: `Ada "the first"`}, `alt={'Ada \u0022the first\u0022'}`},
	}
	for _, tt := range tests {
		if got := (jsx{}).Attr(tt.attr); got != tt.want {
			t.Errorf("Attr(%+v): got %s, want %s", tt.attr, got, tt.want)
		}
	}
}

func TestClassSpelling(t *testing.T) {
	if got := (jsx{}).Class(codegen.Class{Module: "card"}); got != "className={styles.card}" {
		t.Errorf("module: got %s", got)
	}
	if got := (jsx{}).Class(codegen.Class{Expr: "cardClass"}); got != "className={cardClass}" {
		t.Errorf("expr: got %s", got)
	}
	if got := (jsx{}).Class(codegen.Class{Static: "p-4 md:p-6"}); got != `className="p-4 md:p-6"` {
		t.Errorf("static: got %s", got)
	}
}

func TestTextInterpolation(t *testing.T) {
	n := &ir.Node{ID: "t", Kind: ir.KindText, Props: map[string]any{"text": "{user.name} <b>"}}
	got, err := Emitter{}.Element(codegen.Lower(n), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != `<p>{'\u007buser.name\u007d \u003cb\u003e'}</p>` {
		t.Errorf("got %s", got)
	}
}

func TestEventsOnlyWhenPresent(t *testing.T) {
	form := &ir.Node{ID: "f", Kind: ir.KindForm, Bindings: ir.Bindings{Submit: &ir.Binding{Handler: "save"}}}
	got, _ := Emitter{}.Element(codegen.Lower(form), nil)
	if !strings.Contains(got, "onSubmit={(event) => { event.preventDefault(); save?.(); }}") {
		t.Errorf("submit handler missing: %s", got)
	}

	plain := &ir.Node{ID: "f", Kind: ir.KindForm}
	got, _ = Emitter{}.Element(codegen.Lower(plain), nil)
	if strings.Contains(got, "onSubmit") || strings.Contains(got, "onClick") {
		t.Errorf("absent bindings must emit nothing: %s", got)
	}
}

// ── Module ──

func TestProfileCardModule(t *testing.T) {
	c := codegentest.Build(Emitter{}, codegentest.ProfileCard(), codegentest.Options{Typed: true})
	file := Emitter{}.Module(c)

	if file.Path != "ProfileCard.tsx" {
		t.Errorf("path: got %s", file.Path)
	}
	for _, want := range []string{
		"export interface ProfileCardProps {",
		"  onEdit?: () => void;",
		"export default function ProfileCard({ onEdit, onDelete }: ProfileCardProps) {",
		`<h3>Ada Lovelace</h3>`,
		"{onEdit && (",
		`<button type="button" onClick={onEdit}>Edit</button>`,
		"{onDelete && (",
	} {
		if !strings.Contains(file.Content, want) {
			t.Errorf("expected %q in module:\n%s", want, file.Content)
		}
	}
	snaps.MatchSnapshot(t, file.Content)
}

func TestUntypedModule(t *testing.T) {
	c := codegentest.Build(Emitter{}, codegentest.ProfileCard(), codegentest.Options{})
	file := Emitter{}.Module(c)
	if strings.Contains(file.Content, "interface") || strings.Contains(file.Content, "?: ") {
		t.Errorf("untyped output must not carry type annotations:\n%s", file.Content)
	}
	if !strings.Contains(file.Content, "export default function ProfileCard({ onEdit, onDelete }) {") {
		t.Errorf("unexpected signature:\n%s", file.Content)
	}
}

func TestNoHandlersNoParams(t *testing.T) {
	root := &ir.Node{ID: "hero", Kind: ir.KindHero}
	file := Emitter{}.Module(codegentest.Build(Emitter{}, root, codegentest.Options{Typed: true}))
	if !strings.Contains(file.Content, "export default function Hero() {") {
		t.Errorf("got:\n%s", file.Content)
	}
	if strings.Contains(file.Content, "Props") {
		t.Errorf("no props interface without handlers:\n%s", file.Content)
	}
}

func TestGuardedRoot(t *testing.T) {
	root := &ir.Node{ID: "delete-btn", Kind: ir.KindButton, Bindings: ir.Bindings{Delete: &ir.Binding{Handler: "remove"}}}
	c := codegentest.Build(Emitter{}, root, codegentest.Options{Typed: true})
	file := Emitter{}.Module(c)
	if !strings.Contains(file.Content, "  if (!remove) return null;\n") {
		t.Errorf("root guard missing:\n%s", file.Content)
	}
	if strings.Contains(file.Content, "remove && (") {
		t.Errorf("root must not be wrapped in an expression:\n%s", file.Content)
	}
	test := Emitter{}.TestFile(c)
	if !strings.Contains(test.Content, "render(<DeleteBtn remove={() => {}} />)") {
		t.Errorf("test must pass the guarding handler:\n%s", test.Content)
	}
}

func TestModuleStyleImports(t *testing.T) {
	root := &ir.Node{ID: "card", Kind: ir.KindCard}
	c := codegentest.Build(Emitter{}, root, codegentest.Options{
		Typed:   true,
		Styling: config.CSSModules,
		Classes: map[string]codegen.Class{"card": {Module: "card"}},
	})
	file := Emitter{}.Module(c)
	if !strings.HasPrefix(file.Content, "import styles from './Card.module.css';\n") {
		t.Errorf("missing module import:\n%s", file.Content)
	}
	if !strings.Contains(file.Content, "<article className={styles.card}></article>") {
		t.Errorf("missing module class:\n%s", file.Content)
	}

	c = codegentest.Build(Emitter{}, root, codegentest.Options{
		Styling: config.Emotion,
		Classes: map[string]codegen.Class{"card": {Expr: "cardClass"}},
		Inline:  []string{"const cardClass = css`\n  padding: 8px;\n`;"},
	})
	file = Emitter{}.Module(c)
	if !strings.HasPrefix(file.Content, "import { css } from '@emotion/css';\n\nconst cardClass = css`") {
		t.Errorf("missing emotion prelude:\n%s", file.Content)
	}
}

func TestTestFile(t *testing.T) {
	c := codegentest.Build(Emitter{}, codegentest.ProfileCard(), codegentest.Options{Typed: true})
	file := Emitter{}.TestFile(c)
	if file.Path != "ProfileCard.test.tsx" {
		t.Errorf("path: got %s", file.Path)
	}
	for _, want := range []string{
		"import ProfileCard from './ProfileCard';",
		"expect(container.firstElementChild?.tagName).toBe('ARTICLE');",
	} {
		if !strings.Contains(file.Content, want) {
			t.Errorf("expected %q in test:\n%s", want, file.Content)
		}
	}
	snaps.MatchSnapshot(t, file.Content)
}
