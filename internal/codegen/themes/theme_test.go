package themes

import (
	"strings"
	"testing"

	"github.com/barun-bash/forge/internal/config"
	"github.com/barun-bash/forge/internal/ir"
)

// ── Registry ──

func TestRegistryCoversEveryPair(t *testing.T) {
	for _, s := range config.Stylings() {
		if Registry(s) == nil {
			t.Fatalf("Registry(%q) returned nil", s)
		}
		for _, target := range config.Targets() {
			if !HasFrameworkSupport(s, target) {
				t.Errorf("%s has no %s support", s, target)
			}
		}
	}
	if Registry("less") != nil {
		t.Error("unknown styling should return nil")
	}
}

func TestImports(t *testing.T) {
	got := Imports(config.Emotion, config.Vue)
	if len(got) != 1 || !strings.Contains(got[0], "@emotion/css") {
		t.Errorf("emotion imports: got %v", got)
	}
	if got := Imports(config.Tailwind, config.React); len(got) != 0 {
		t.Errorf("tailwind needs no imports, got %v", got)
	}
}

// ── Dependencies ──

func TestDependencies(t *testing.T) {
	tests := []struct {
		styling config.Styling
		target  config.Target
		wantDep string
		wantDev string
	}{
		{config.Tailwind, config.React, "", "tailwindcss"},
		{config.Emotion, config.Svelte, "@emotion/css", ""},
		{config.SCSS, config.Vue, "", "sass"},
		{config.CSSModules, config.Angular, "", ""},
	}
	for _, tt := range tests {
		deps, devDeps := Dependencies(tt.styling, tt.target)
		if tt.wantDep != "" {
			if _, ok := deps[tt.wantDep]; !ok {
				t.Errorf("Dependencies(%q, %q): missing dep %q", tt.styling, tt.target, tt.wantDep)
			}
		}
		if tt.wantDev != "" {
			if _, ok := devDeps[tt.wantDev]; !ok {
				t.Errorf("Dependencies(%q, %q): missing devDep %q", tt.styling, tt.target, tt.wantDev)
			}
		}
	}
}

func TestDependenciesUnknown(t *testing.T) {
	deps, devDeps := Dependencies("less", config.React)
	if deps == nil || devDeps == nil || len(deps)+len(devDeps) != 0 {
		t.Errorf("unknown styling: got %v %v", deps, devDeps)
	}
}

func TestDependenciesAreCopies(t *testing.T) {
	_, dev := Dependencies(config.Tailwind, config.React)
	dev["tailwindcss"] = "mutated"
	_, again := Dependencies(config.Tailwind, config.Vue)
	if again["tailwindcss"] == "mutated" {
		t.Error("Dependencies must not expose the registry maps")
	}
}

func TestTestingDependencies(t *testing.T) {
	want := map[config.Target]string{
		config.React:   "@testing-library/react",
		config.Vue:     "@vue/test-utils",
		config.Svelte:  "@testing-library/svelte",
		config.Angular: "jasmine-core",
	}
	for target, pkg := range want {
		if _, ok := TestingDependencies(target)[pkg]; !ok {
			t.Errorf("TestingDependencies(%s): missing %q", target, pkg)
		}
	}
}

// ── Tokens ──

func TestBreakpoints(t *testing.T) {
	if MediaQuery(ir.Mobile) != "" {
		t.Error("mobile is the base layer")
	}
	if got := MediaQuery(ir.Tablet); got != "(min-width: 768px)" {
		t.Errorf("tablet query: got %q", got)
	}
	if got := UtilityPrefix(ir.Desktop); got != "lg" {
		t.Errorf("desktop prefix: got %q", got)
	}
	if got := SCSSVariable(ir.Tablet); got != "$bp-tablet" {
		t.Errorf("tablet variable: got %q", got)
	}
	header := SCSSHeader()
	for _, want := range []string{"$bp-tablet: 768px;", "$bp-desktop: 1024px;"} {
		if !strings.Contains(header, want) {
			t.Errorf("expected %q in header:\n%s", want, header)
		}
	}
}

func TestSpacingStep(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"16px", "4", true},
		{"0", "0", true},
		{" 8px ", "2", true},
		{"1px", "px", true},
		{"17px", "", false},
		{"1rem", "", false},
		{"-4px", "", false},
	}
	for _, tt := range tests {
		got, ok := SpacingStep(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("SpacingStep(%q): got (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRadiusAndWeight(t *testing.T) {
	if s, ok := RadiusStep("50%"); !ok || s != "-full" {
		t.Errorf("50%%: got %q %v", s, ok)
	}
	if s, ok := RadiusStep("4px"); !ok || s != "" {
		t.Errorf("4px: got %q %v", s, ok)
	}
	if _, ok := RadiusStep("5px"); ok {
		t.Error("5px is off the scale")
	}
	if w, ok := FontWeight("600"); !ok || w != "semibold" {
		t.Errorf("600: got %q %v", w, ok)
	}
}
