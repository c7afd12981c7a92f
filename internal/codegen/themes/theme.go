// Package themes holds the design-token tables shared by the styling
// adapters and the npm packages each styling system needs per target.
package themes

import (
	"github.com/barun-bash/forge/internal/config"
)

// StylingSystem holds metadata for a styling system.
type StylingSystem struct {
	ID         config.Styling
	Name       string
	Frameworks map[config.Target]FrameworkSupport
}

// FrameworkSupport holds framework-specific package info.
type FrameworkSupport struct {
	Packages    map[string]string // npm package → version
	DevPackages map[string]string // dev dependencies
	Imports     []string          // import lines for generated code
}

var tailwindDev = map[string]string{"tailwindcss": "^3.4.0", "autoprefixer": "^10.4.0", "postcss": "^8.4.0"}

var sassDev = map[string]string{"sass": "^1.80.0"}

// registry holds every supported styling system.
var registry = map[config.Styling]*StylingSystem{
	config.Tailwind: {
		ID:   config.Tailwind,
		Name: "Tailwind CSS",
		Frameworks: map[config.Target]FrameworkSupport{
			config.React:   {DevPackages: tailwindDev},
			config.Vue:     {DevPackages: tailwindDev},
			config.Svelte:  {DevPackages: tailwindDev},
			config.Angular: {DevPackages: tailwindDev},
		},
	},
	config.Emotion: {
		ID:   config.Emotion,
		Name: "Emotion",
		Frameworks: map[config.Target]FrameworkSupport{
			config.React:   {Packages: map[string]string{"@emotion/css": "^11.13.0"}, Imports: []string{"import { css } from '@emotion/css';"}},
			config.Vue:     {Packages: map[string]string{"@emotion/css": "^11.13.0"}, Imports: []string{"import { css } from '@emotion/css';"}},
			config.Svelte:  {Packages: map[string]string{"@emotion/css": "^11.13.0"}, Imports: []string{"import { css } from '@emotion/css';"}},
			config.Angular: {Packages: map[string]string{"@emotion/css": "^11.13.0"}, Imports: []string{"import { css } from '@emotion/css';"}},
		},
	},
	config.CSSModules: {
		ID:   config.CSSModules,
		Name: "CSS Modules",
		Frameworks: map[config.Target]FrameworkSupport{
			config.React:   {},
			config.Vue:     {},
			config.Svelte:  {},
			config.Angular: {},
		},
	},
	config.SCSS: {
		ID:   config.SCSS,
		Name: "SCSS",
		Frameworks: map[config.Target]FrameworkSupport{
			config.React:  {DevPackages: sassDev},
			config.Vue:    {DevPackages: sassDev},
			config.Svelte: {DevPackages: sassDev},
			// The Angular CLI bundles sass.
			config.Angular: {},
		},
	},
}

// Registry returns the styling system by ID, or nil if unknown.
func Registry(id config.Styling) *StylingSystem {
	return registry[id]
}

// HasFrameworkSupport returns true if the styling system supports the target.
func HasFrameworkSupport(s config.Styling, t config.Target) bool {
	sys := Registry(s)
	if sys == nil {
		return false
	}
	_, ok := sys.Frameworks[t]
	return ok
}

// Imports returns the import lines generated modules need for a styling
// system on a target.
func Imports(s config.Styling, t config.Target) []string {
	sys := Registry(s)
	if sys == nil {
		return nil
	}
	return sys.Frameworks[t].Imports
}
