// Package config defines the export configuration: which target surface and
// styling system to emit, and which optional passes to run.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/barun-bash/forge/internal/errors"
)

// Target is a UI framework surface the exporter can emit.
type Target string

const (
	React   Target = "react"   // JSX function components
	Vue     Target = "vue"     // single-file template + script components
	Svelte  Target = "svelte"  // compiled reactive components
	Angular Target = "angular" // decorator-annotated class components
)

// Styling is a system for expressing visual styles in generated output.
type Styling string

const (
	Tailwind   Styling = "tailwind"    // utility classes inline
	Emotion    Styling = "emotion"     // CSS-in-JS runtime
	CSSModules Styling = "css-modules" // locally scoped stylesheet classes
	SCSS       Styling = "scss"        // preprocessed stylesheet
)

// Targets returns every supported target in a stable order.
func Targets() []Target { return []Target{React, Vue, Svelte, Angular} }

// Stylings returns every supported styling system in a stable order.
func Stylings() []Styling { return []Styling{Tailwind, Emotion, CSSModules, SCSS} }

// Valid reports whether t is a supported target.
func (t Target) Valid() bool {
	for _, v := range Targets() {
		if t == v {
			return true
		}
	}
	return false
}

// Valid reports whether s is a supported styling system.
func (s Styling) Valid() bool {
	for _, v := range Stylings() {
		if s == v {
			return true
		}
	}
	return false
}

// Description returns a short human-readable name.
func (t Target) Description() string {
	switch t {
	case React:
		return "React function components (JSX)"
	case Vue:
		return "Vue 3 single-file components"
	case Svelte:
		return "Svelte components"
	case Angular:
		return "Angular standalone components"
	}
	return string(t)
}

// Description returns a short human-readable name.
func (s Styling) Description() string {
	switch s {
	case Tailwind:
		return "Tailwind CSS utility classes"
	case Emotion:
		return "Emotion css`` blocks"
	case CSSModules:
		return "CSS Modules"
	case SCSS:
		return "SCSS stylesheet"
	}
	return string(s)
}

// NormalizeTarget maps user-facing names to target ids. Unknown names are
// returned lowercased so validation can suggest a correction.
func NormalizeTarget(name string) Target {
	lower := strings.ToLower(strings.TrimSpace(name))
	aliases := map[string]Target{
		"react": React, "jsx": React, "tsx": React, "jsx-style": React, "react.js": React,
		"vue": Vue, "vue3": Vue, "vue 3": Vue, "vue.js": Vue, "sfc": Vue, "template+script": Vue,
		"svelte": Svelte, "sveltekit": Svelte, "compiled-reactive": Svelte,
		"angular": Angular, "ng": Angular, "decorator-class": Angular,
	}
	if t, ok := aliases[lower]; ok {
		return t
	}
	return Target(lower)
}

// NormalizeStyling maps user-facing names to styling ids.
func NormalizeStyling(name string) Styling {
	lower := strings.ToLower(strings.TrimSpace(name))
	lower = strings.TrimSuffix(lower, " css")
	aliases := map[string]Styling{
		"tailwind": Tailwind, "tailwindcss": Tailwind, "utility": Tailwind, "utility-class": Tailwind,
		"emotion": Emotion, "css-in-js": Emotion, "cssinjs": Emotion, "styled": Emotion,
		"css-modules": CSSModules, "css modules": CSSModules, "cssmodules": CSSModules, "modules": CSSModules, "scoped": CSSModules,
		"scss": SCSS, "sass": SCSS, "preprocessed": SCSS,
	}
	if s, ok := aliases[lower]; ok {
		return s
	}
	return Styling(lower)
}

// Export is the immutable configuration of one export request. It is
// passed by value; nothing in the pipeline mutates it.
type Export struct {
	Target     Target  `json:"target" yaml:"target"`
	Styling    Styling `json:"styling" yaml:"styling"`
	Typed      bool    `json:"typed" yaml:"typed"`
	Accessible bool    `json:"accessible" yaml:"accessible"`
	Responsive bool    `json:"responsive" yaml:"responsive"`
	Tested     bool    `json:"tested" yaml:"tested"`
}

// Default returns the configuration used when nothing else is specified.
func Default() Export {
	return Export{
		Target:     React,
		Styling:    Tailwind,
		Typed:      true,
		Accessible: true,
		Responsive: true,
	}
}

// String renders the config compactly, e.g. "react+tailwind [typed,a11y]".
func (e Export) String() string {
	var flags []string
	if e.Typed {
		flags = append(flags, "typed")
	}
	if e.Accessible {
		flags = append(flags, "a11y")
	}
	if e.Responsive {
		flags = append(flags, "responsive")
	}
	if e.Tested {
		flags = append(flags, "tested")
	}
	return fmt.Sprintf("%s+%s [%s]", e.Target, e.Styling, strings.Join(flags, ","))
}

// Validate checks closed-set membership of the target and styling system.
// It returns one diagnostic per problem, with a suggestion when a known
// value is close.
func (e Export) Validate() []*errors.Diagnostic {
	var out []*errors.Diagnostic
	if !e.Target.Valid() {
		out = append(out, errors.InvalidConfig(
			fmt.Sprintf("unknown target surface %q", e.Target),
			errors.DidYouMean(string(e.Target), targetNames()),
		))
	}
	if !e.Styling.Valid() {
		out = append(out, errors.InvalidConfig(
			fmt.Sprintf("unknown styling system %q", e.Styling),
			errors.DidYouMean(string(e.Styling), stylingNames()),
		))
	}
	return out
}

func targetNames() []string {
	var out []string
	for _, t := range Targets() {
		out = append(out, string(t))
	}
	return out
}

func stylingNames() []string {
	var out []string
	for _, s := range Stylings() {
		out = append(out, string(s))
	}
	return out
}

// ── Project defaults ──

// configFileName is the defaults file path relative to the project root.
const configFileName = ".forge/export.yaml"

// legacyConfigFileName is read when the YAML file is absent.
const legacyConfigFileName = ".forge/export.json"

// Load reads export defaults from .forge/export.yaml (or .forge/export.json)
// in projectDir, starting from Default(). A missing file is not an error.
// Environment variables override file values.
func Load(projectDir string) (Export, error) {
	return loadWith(projectDir, os.LookupEnv)
}

func loadWith(projectDir string, lookup func(string) (string, bool)) (Export, error) {
	cfg := Default()

	path := filepath.Join(projectDir, configFileName)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Export{}, fmt.Errorf("parsing %s: %w", configFileName, err)
		}
	case os.IsNotExist(err):
		data, err = os.ReadFile(filepath.Join(projectDir, legacyConfigFileName))
		if err == nil {
			if err := json.Unmarshal(data, &cfg); err != nil {
				return Export{}, fmt.Errorf("parsing %s: %w", legacyConfigFileName, err)
			}
		} else if !os.IsNotExist(err) {
			return Export{}, fmt.Errorf("reading config: %w", err)
		}
	default:
		return Export{}, fmt.Errorf("reading config: %w", err)
	}

	cfg = cfg.normalized()
	return ApplyEnv(cfg, lookup)
}

// Save writes cfg to .forge/export.yaml, creating the directory if needed.
func Save(projectDir string, cfg Export) error {
	dir := filepath.Join(projectDir, ".forge")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating .forge directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(projectDir, configFileName), data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", configFileName, err)
	}
	return nil
}

// ApplyEnv overrides cfg from FORGE_* variables looked up through lookup
// (os.LookupEnv in production).
func ApplyEnv(cfg Export, lookup func(string) (string, bool)) (Export, error) {
	if v, ok := lookup("FORGE_TARGET"); ok && v != "" {
		cfg.Target = NormalizeTarget(v)
	}
	if v, ok := lookup("FORGE_STYLING"); ok && v != "" {
		cfg.Styling = NormalizeStyling(v)
	}
	flags := []struct {
		env string
		dst *bool
	}{
		{"FORGE_TYPED", &cfg.Typed},
		{"FORGE_ACCESSIBLE", &cfg.Accessible},
		{"FORGE_RESPONSIVE", &cfg.Responsive},
		{"FORGE_TESTED", &cfg.Tested},
	}
	for _, f := range flags {
		v, ok := lookup(f.env)
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Export{}, fmt.Errorf("%s: %w", f.env, err)
		}
		*f.dst = b
	}
	return cfg, nil
}

func (e Export) normalized() Export {
	e.Target = NormalizeTarget(string(e.Target))
	e.Styling = NormalizeStyling(string(e.Styling))
	return e
}
