package themes

import (
	"maps"

	"github.com/barun-bash/forge/internal/config"
)

// Dependencies returns (deps, devDeps) for a styling system + target.
// Unknown pairs return empty maps.
func Dependencies(s config.Styling, t config.Target) (map[string]string, map[string]string) {
	deps := make(map[string]string)
	devDeps := make(map[string]string)

	sys := Registry(s)
	if sys == nil {
		return deps, devDeps
	}
	fs, ok := sys.Frameworks[t]
	if !ok {
		return deps, devDeps
	}
	maps.Copy(deps, fs.Packages)
	maps.Copy(devDeps, fs.DevPackages)
	return deps, devDeps
}

// TestingDependencies returns the dev dependencies generated test files need.
func TestingDependencies(t config.Target) map[string]string {
	switch t {
	case config.React:
		return map[string]string{"vitest": "^2.1.0", "jsdom": "^25.0.0", "@testing-library/react": "^16.0.0"}
	case config.Vue:
		return map[string]string{"vitest": "^2.1.0", "jsdom": "^25.0.0", "@vue/test-utils": "^2.4.0"}
	case config.Svelte:
		return map[string]string{"vitest": "^2.1.0", "jsdom": "^25.0.0", "@testing-library/svelte": "^5.2.0"}
	case config.Angular:
		// TestBed ships with @angular/core.
		return map[string]string{"jasmine-core": "^5.4.0", "karma": "^6.4.0"}
	}
	return map[string]string{}
}
