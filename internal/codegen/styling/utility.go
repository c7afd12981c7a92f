package styling

import (
	"strings"

	"github.com/barun-bash/forge/internal/codegen"
	"github.com/barun-bash/forge/internal/codegen/themes"
	"github.com/barun-bash/forge/internal/config"
)

// Utility expresses styles as Tailwind utility classes.
type Utility struct{}

func (*Utility) Styling() config.Styling { return config.Tailwind }

// Resolve emits one class per declaration, prefixed with the breakpoint
// variant for non-base layers. Bare tokens pass through unchanged; a token
// a larger layer removes is capped with the matching max-* variant.
func (*Utility) Resolve(_ string, layers []Layer) Resolution {
	var classes []string
	// open maps a bare token to the index of its class in classes.
	open := map[string]int{}
	for _, l := range layers {
		prefix := themes.UtilityPrefix(l.Breakpoint)
		for _, tok := range l.Removed {
			if i, ok := open[tok]; ok {
				classes[i] = capClass(classes[i], tok, prefix)
				delete(open, tok)
			}
		}
		decls, tokens := split(l.Styles)
		for _, prop := range decls {
			classes = append(classes, variant(prefix, utilityClass(prop, l.Styles[prop])))
		}
		for _, tok := range tokens {
			open[tok] = len(classes)
			classes = append(classes, variant(prefix, tok))
		}
	}
	if len(classes) == 0 {
		return Resolution{}
	}
	return Resolution{Class: codegen.Class{Static: strings.Join(classes, " ")}}
}

func variant(prefix, class string) string {
	if prefix == "" {
		return class
	}
	return prefix + ":" + class
}

// capClass limits a token class to breakpoints below until.
func capClass(class, token, until string) string {
	return strings.TrimSuffix(class, token) + "max-" + until + ":" + token
}

// keywordClasses maps property → value → class.
var keywordClasses = map[string]map[string]string{
	"display": {
		"flex": "flex", "inline-flex": "inline-flex", "block": "block", "inline-block": "inline-block",
		"inline": "inline", "grid": "grid", "none": "hidden",
	},
	"flex-direction": {
		"row": "flex-row", "column": "flex-col", "row-reverse": "flex-row-reverse", "column-reverse": "flex-col-reverse",
	},
	"flex-wrap":   {"wrap": "flex-wrap", "nowrap": "flex-nowrap"},
	"align-items": {"center": "items-center", "flex-start": "items-start", "flex-end": "items-end", "stretch": "items-stretch", "baseline": "items-baseline"},
	"justify-content": {
		"center": "justify-center", "flex-start": "justify-start", "flex-end": "justify-end",
		"space-between": "justify-between", "space-around": "justify-around", "space-evenly": "justify-evenly",
	},
	"text-align": {"left": "text-left", "center": "text-center", "right": "text-right", "justify": "text-justify"},
	"position":   {"relative": "relative", "absolute": "absolute", "fixed": "fixed", "sticky": "sticky", "static": "static"},
	"overflow":   {"hidden": "overflow-hidden", "auto": "overflow-auto", "scroll": "overflow-scroll", "visible": "overflow-visible"},
	"width":      {"100%": "w-full", "auto": "w-auto", "100vw": "w-screen", "fit-content": "w-fit"},
	"height":     {"100%": "h-full", "auto": "h-auto", "100vh": "h-screen", "fit-content": "h-fit"},
}

// spacingPrefixes maps length properties onto the spacing scale.
var spacingPrefixes = map[string]string{
	"padding": "p", "padding-top": "pt", "padding-right": "pr", "padding-bottom": "pb", "padding-left": "pl",
	"margin": "m", "margin-top": "mt", "margin-right": "mr", "margin-bottom": "mb", "margin-left": "ml",
	"gap": "gap", "row-gap": "gap-y", "column-gap": "gap-x",
	"width": "w", "height": "h",
}

func utilityClass(prop, value string) string {
	value = strings.TrimSpace(value)
	if byValue, ok := keywordClasses[prop]; ok {
		if c, ok := byValue[value]; ok {
			return c
		}
	}
	if prefix, ok := spacingPrefixes[prop]; ok {
		if step, ok := themes.SpacingStep(value); ok {
			return prefix + "-" + step
		}
		if value == "auto" && strings.HasPrefix(prop, "margin") {
			return prefix + "-auto"
		}
	}
	switch prop {
	case "border-radius":
		if s, ok := themes.RadiusStep(value); ok {
			return "rounded" + s
		}
	case "font-weight":
		if w, ok := themes.FontWeight(value); ok {
			return "font-" + w
		}
	}
	return arbitrary(prop, value)
}

// arbitrary builds a Tailwind arbitrary property class. Underscores stand
// for spaces, so literal underscores are escaped first.
func arbitrary(prop, value string) string {
	value = strings.ReplaceAll(value, "_", `\_`)
	value = strings.Join(strings.Fields(value), "_")
	return "[" + prop + ":" + value + "]"
}
