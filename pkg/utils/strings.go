package utils

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlnum   = regexp.MustCompile(`[^A-Za-z0-9]+`)
	camelSplit = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// RemoveAccents removes accents from a string, converting accented characters to their base forms
func RemoveAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

// SplitWords splits a string into words, handling camelCase, PascalCase, snake_case, and kebab-case
func SplitWords(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	s = RemoveAccents(s)

	// Insert separators before capital letters, then split on the rest
	s = camelSplit.ReplaceAllString(s, "$1 $2")
	parts := nonAlnum.Split(s, -1)

	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// ToPascalCase converts a string to PascalCase
func ToPascalCase(s string) string {
	parts := SplitWords(s)
	if len(parts) == 0 {
		return ""
	}

	b := strings.Builder{}
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		if len(p) > 1 {
			b.WriteString(strings.ToLower(p[1:]))
		}
	}
	return b.String()
}

// ToCamelCase converts a string to camelCase
func ToCamelCase(s string) string {
	p := ToPascalCase(s)
	if p == "" {
		return ""
	}
	return strings.ToLower(p[:1]) + p[1:]
}

// ToSnakeCase converts a string to snake_case
func ToSnakeCase(s string) string {
	parts := SplitWords(s)
	if len(parts) == 0 {
		return ""
	}

	for i := range parts {
		parts[i] = strings.ToLower(parts[i])
	}
	return strings.Join(parts, "_")
}

// Capitalize upper-cases the first byte of s, leaving the rest untouched.
// Unlike ToPascalCase it preserves interior casing, which matters for
// GraphQL typename literals.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Uncapitalize lower-cases the first byte of s, leaving the rest untouched.
func Uncapitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// ErrEmptyPath is returned when a name is requested from an empty path.
var ErrEmptyPath = errors.New("object path is empty")

// ObjNameFromPath derives a deterministic identifier from a leaf-first path.
// The path is reversed to root-first order and joined with underscores; an
// optional prefix is prepended. When the result is already taken a numeric
// suffix is appended until it is unique. The caller owns the used set and
// records the returned name in it.
func ObjNameFromPath(prefix string, used map[string]bool, path []string) (string, error) {
	if len(path) == 0 {
		return "", ErrEmptyPath
	}
	parts := make([]string, 0, len(path)+1)
	if prefix != "" {
		parts = append(parts, prefix)
	}
	for i := len(path) - 1; i >= 0; i-- {
		parts = append(parts, path[i])
	}
	base := strings.Join(parts, "_")
	name := base
	for n := 1; used[name]; n++ {
		name = base + "_" + itoa(n)
	}
	return name, nil
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var b [8]byte
	i := len(b)
	for n > 0 {
		i--
		b[i] = byte('0' + n%10)
		n /= 10
	}
	return string(b[i:])
}
