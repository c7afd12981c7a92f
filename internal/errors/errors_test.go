package errors

import (
	"context"
	"strings"
	"testing"
)

// ── Collection ──

func TestCollectionFilter(t *testing.T) {
	c := New()
	c.Add(InvalidConfig("unknown target \"raect\"", `did you mean "react"?`))
	c.Add(UnknownKind("slider", "carousel", ""))
	c.Add(nil)
	c.Add(Warning(CodeMissingAlt, "photo", "image has no alt text"))

	if c.Len() != 3 {
		t.Fatalf("expected 3 diagnostics, got %d", c.Len())
	}
	if len(c.Errors()) != 1 {
		t.Errorf("expected 1 error, got %d", len(c.Errors()))
	}
	if len(c.Warnings()) != 2 {
		t.Errorf("expected 2 warnings, got %d", len(c.Warnings()))
	}
	if !c.HasErrors() {
		t.Error("expected HasErrors to be true")
	}
}

func TestCollectionAllIsCopy(t *testing.T) {
	c := New()
	c.Add(Warning(CodeUnknownKind, "a", "x"))
	all := c.All()
	all[0] = nil
	if c.All()[0] == nil {
		t.Error("All must return a copy")
	}
}

func TestHasErrorsWarningsOnly(t *testing.T) {
	c := New()
	if c.HasErrors() {
		t.Fatal("expected no errors initially")
	}
	c.Add(Warning(CodeDroppedToken, "a", "dropped"))
	if c.HasErrors() {
		t.Fatal("warnings are not fatal")
	}
}

// ── Diagnostics ──

func TestDiagnosticFormat(t *testing.T) {
	d := UnknownKind("slider", "carousel", "")
	got := d.Format()
	for _, want := range []string{"slider", `"carousel"`, "[W301]"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in %q", want, got)
		}
	}
	if d.Fatal() {
		t.Error("unknown kind is not fatal")
	}
}

func TestConstructorsSeverity(t *testing.T) {
	tests := []struct {
		d     *Diagnostic
		code  string
		fatal bool
	}{
		{InvalidConfig("bad", ""), CodeInvalidConfig, true},
		{InvalidTree("a", "duplicate id"), CodeInvalidTree, true},
		{UnsupportedCombination("react", "less"), CodeUnsupportedCombination, true},
		{Cancelled(context.Canceled), CodeCancelled, true},
		{Internal("boom"), CodeInternal, true},
		{UnknownKind("a", "b", ""), CodeUnknownKind, false},
	}
	for _, tt := range tests {
		if tt.d.Code != tt.code {
			t.Errorf("code: got %s, want %s", tt.d.Code, tt.code)
		}
		if tt.d.Fatal() != tt.fatal {
			t.Errorf("%s: fatal got %v, want %v", tt.code, tt.d.Fatal(), tt.fatal)
		}
	}
}

func TestCancelledMessage(t *testing.T) {
	if got := Cancelled(context.DeadlineExceeded).Message; !strings.Contains(got, "deadline exceeded") {
		t.Errorf("expected cause in message, got %q", got)
	}
	if got := Cancelled(nil).Message; got != "export cancelled" {
		t.Errorf("got %q", got)
	}
}

func TestFormatReport(t *testing.T) {
	out := Format([]*Diagnostic{
		InvalidConfig(`unknown styling "tailwnd"`, `did you mean "tailwind"?`),
		Warning(CodeMissingAlt, "photo", "image has no alt text"),
	})
	for _, want := range []string{"✗", "⚠", "suggestion:", "[E101]", "[W302]"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in report:\n%s", want, out)
		}
	}
}

func TestSeverityMarshalText(t *testing.T) {
	b, _ := SeverityWarning.MarshalText()
	if string(b) != "warning" {
		t.Errorf("got %q", b)
	}
}

// ── Similarity ──

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"react", "react", 0},
		{"raect", "react", 1},
		{"vue", "view", 2},
		{"scss", "sass", 1},
	}
	for _, tt := range tests {
		if got := editDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("editDistance(%q, %q): got %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSimilarity(t *testing.T) {
	if Similarity("React", "react") != 1 {
		t.Error("similarity is case-insensitive")
	}
	if Similarity("", "") != 1 {
		t.Error("two empty strings are identical")
	}
	if s := Similarity("angular", "svelte"); s > 0.5 {
		t.Errorf("unrelated names should score low, got %f", s)
	}
}

func TestClosestAndDidYouMean(t *testing.T) {
	candidates := []string{"react", "vue", "svelte", "angular"}
	if got := Closest("sveltte", candidates, 0.5); got != "svelte" {
		t.Errorf("Closest: got %q", got)
	}
	if got := Closest("zzz", candidates, 0.5); got != "" {
		t.Errorf("Closest: expected no match, got %q", got)
	}
	if got := DidYouMean("angluar", candidates); got != `did you mean "angular"?` {
		t.Errorf("DidYouMean: got %q", got)
	}
	if got := DidYouMean("x", nil); got != "" {
		t.Errorf("DidYouMean with no candidates: got %q", got)
	}
}
