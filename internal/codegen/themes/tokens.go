package themes

import (
	"strconv"
	"strings"

	"github.com/barun-bash/forge/internal/ir"
)

// breakpointWidths are the min-width thresholds of the mobile-first layers.
var breakpointWidths = map[ir.Breakpoint]int{
	ir.Mobile:  0,
	ir.Tablet:  768,
	ir.Desktop: 1024,
}

// MinWidth returns the min-width in px at which a breakpoint applies.
func MinWidth(bp ir.Breakpoint) int { return breakpointWidths[bp] }

// MediaQuery returns the media condition for a breakpoint, or "" for the
// base layer.
func MediaQuery(bp ir.Breakpoint) string {
	w := MinWidth(bp)
	if w == 0 {
		return ""
	}
	return "(min-width: " + strconv.Itoa(w) + "px)"
}

// UtilityPrefix returns the Tailwind variant for a breakpoint ("" for base).
func UtilityPrefix(bp ir.Breakpoint) string {
	switch bp {
	case ir.Tablet:
		return "md"
	case ir.Desktop:
		return "lg"
	}
	return ""
}

// SCSSVariable returns the SCSS variable naming a breakpoint width.
func SCSSVariable(bp ir.Breakpoint) string {
	if MinWidth(bp) == 0 {
		return ""
	}
	return "$bp-" + string(bp)
}

// SCSSHeader declares every breakpoint variable.
func SCSSHeader() string {
	var b strings.Builder
	for _, bp := range ir.Breakpoints {
		if v := SCSSVariable(bp); v != "" {
			b.WriteString(v + ": " + strconv.Itoa(MinWidth(bp)) + "px;\n")
		}
	}
	return b.String()
}

// spacingSteps is the Tailwind spacing scale, keyed by px.
var spacingSteps = map[int]string{
	0: "0", 1: "px", 2: "0.5", 4: "1", 6: "1.5", 8: "2", 10: "2.5", 12: "3",
	14: "3.5", 16: "4", 20: "5", 24: "6", 28: "7", 32: "8", 36: "9", 40: "10",
	44: "11", 48: "12", 56: "14", 64: "16", 80: "20", 96: "24", 112: "28",
	128: "32", 160: "40", 192: "48", 224: "56", 256: "64",
}

// SpacingStep maps a CSS length to a Tailwind spacing step. Only px values
// on the scale (and bare 0) match.
func SpacingStep(value string) (string, bool) {
	px, ok := pixels(value)
	if !ok {
		return "", false
	}
	step, ok := spacingSteps[px]
	return step, ok
}

// radiusSteps maps border-radius px values to Tailwind suffixes.
var radiusSteps = map[int]string{
	0: "-none", 2: "-sm", 4: "", 6: "-md", 8: "-lg", 12: "-xl", 16: "-2xl", 24: "-3xl", 9999: "-full",
}

// RadiusStep maps a border-radius to a Tailwind "rounded" suffix.
func RadiusStep(value string) (string, bool) {
	if strings.TrimSpace(value) == "50%" {
		return "-full", true
	}
	px, ok := pixels(value)
	if !ok {
		return "", false
	}
	step, ok := radiusSteps[px]
	return step, ok
}

// fontWeights maps CSS font-weight values to Tailwind suffixes.
var fontWeights = map[string]string{
	"100": "thin", "200": "extralight", "300": "light",
	"400": "normal", "normal": "normal", "500": "medium", "600": "semibold",
	"700": "bold", "bold": "bold", "800": "extrabold", "900": "black",
}

// FontWeight maps a CSS font-weight to a Tailwind suffix.
func FontWeight(value string) (string, bool) {
	w, ok := fontWeights[strings.TrimSpace(value)]
	return w, ok
}

func pixels(value string) (int, bool) {
	v := strings.TrimSpace(value)
	if v == "0" {
		return 0, true
	}
	if !strings.HasSuffix(v, "px") {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSuffix(v, "px"))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
