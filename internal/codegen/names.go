package codegen

import (
	"fmt"
	"strings"
	"unicode"
)

// words splits an id on every non-alphanumeric rune.
func words(id string) []string {
	return strings.FieldsFunc(id, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func upperFirst(s string) string {
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func lowerFirst(s string) string {
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// ComponentName derives the exported component name from the root id:
// "profile-card" → "ProfileCard". Names that would start with a digit get
// a "Component" prefix.
func ComponentName(rootID string) string {
	var b strings.Builder
	for _, w := range words(rootID) {
		b.WriteString(upperFirst(w))
	}
	name := b.String()
	if name == "" {
		return "Component"
	}
	if unicode.IsDigit([]rune(name)[0]) {
		return "Component" + name
	}
	return name
}

// CamelName derives a lowerCamel identifier from a node id, usable as a
// CSS class and a JavaScript identifier.
func CamelName(id string) string {
	ws := words(id)
	if len(ws) == 0 {
		return "node"
	}
	var b strings.Builder
	for i, w := range ws {
		if i == 0 {
			b.WriteString(lowerFirst(w))
		} else {
			b.WriteString(upperFirst(w))
		}
	}
	name := b.String()
	if unicode.IsDigit([]rune(name)[0]) {
		return "node" + name
	}
	return name
}

// KebabName converts a PascalCase name to kebab-case: "ProfileCard" →
// "profile-card".
func KebabName(s string) string {
	var result []rune
	for i, r := range s {
		if unicode.IsUpper(r) && i > 0 {
			result = append(result, '-')
		}
		result = append(result, unicode.ToLower(r))
	}
	return string(result)
}

// unsafe are characters with meaning to at least one target's template
// syntax. Values containing any of them go through expression
// interpolation instead of literal text.
const unsafe = "{}<>&\"`@\\"

// Safe reports whether s can be written literally as template text or as
// a double-quoted attribute value on every target.
func Safe(s string) bool {
	for _, r := range s {
		if r < 0x20 || r == 0x2028 || r == 0x2029 || strings.ContainsRune(unsafe, r) {
			return false
		}
	}
	return true
}

// JSString renders s as a single-quoted JavaScript string literal that is
// also safe inside HTML attributes and template interpolations.
func JSString(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\'':
			b.WriteString(`\'`)
		case r == '\n':
			b.WriteString(`\n`)
		case r < 0x20 || r == 0x2028 || r == 0x2029 || strings.ContainsRune("\"<>&{}`@", r):
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// TemplateLiteral escapes s for embedding in a JavaScript template literal.
func TemplateLiteral(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "`", "\\`")
	return strings.ReplaceAll(s, "${", "\\${")
}

// Unique returns ss without repeats, keeping first appearances.
func Unique(ss []string) []string {
	seen := make(map[string]bool, len(ss))
	var out []string
	for _, s := range ss {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
