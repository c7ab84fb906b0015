// Package xlatname translates bootstrap-subset identifiers into the
// snake_case spelling the C translator emits, per SPEC_FULL.md's identifier
// translation component.
package xlatname

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// lower folds runes to lowercase using the same cases.Caser machinery the
// rest of the ecosystem reaches for instead of strings.ToLower, so locale-
// sensitive folding stays consistent if this ever needs to move beyond
// plain ASCII identifiers.
var lower = cases.Lower(language.Und)

// asciiOnly drops any rune outside of 7-bit ASCII, since the bootstrap
// subset's source-encoding rules (SPEC_FULL.md §1) only ever admit 7-bit ASCII
// identifiers; this exists to make translation total over malformed input
// rather than have it panic or silently corrupt a multi-byte identifier.
var asciiOnly = runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII }))

// ToSnakeCase converts a Modula-2 identifier such as "NewProc" or "isReady"
// into the translator's "new_proc"/"is_ready" spelling. Consecutive
// uppercase runs (as in an acronym like "HTTPServer") are treated as one
// boundary, not split rune-by-rune.
func ToSnakeCase(ident string) string {
	clean, _, err := transform.String(asciiOnly, ident)
	if err != nil {
		clean = ident
	}

	var b strings.Builder
	runesIn := []rune(clean)
	for i, r := range runesIn {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && (unicode.IsLower(runesIn[i-1]) || unicode.IsDigit(runesIn[i-1]))
			nextLower := i+1 < len(runesIn) && unicode.IsLower(runesIn[i+1])
			if i > 0 && (prevLower || (nextLower && unicode.IsUpper(runesIn[i-1]))) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(r)
	}

	return lower.String(b.String())
}

// reservedCollisions lists snake_case outputs that collide with a C
// reserved word; translated code must not emit these verbatim.
var reservedCollisions = map[string]struct{}{
	"int": {}, "char": {}, "void": {}, "struct": {}, "union": {},
	"return": {}, "static": {}, "const": {}, "for": {}, "while": {},
	"if": {}, "else": {}, "switch": {}, "case": {}, "default": {},
	"break": {}, "continue": {}, "goto": {}, "do": {}, "sizeof": {},
	"typedef": {}, "enum": {}, "extern": {}, "register": {}, "volatile": {},
}

// Translate converts ident to its snake_case C name, appending an
// underscore if the result collides with a C reserved word.
func Translate(ident string) string {
	out := ToSnakeCase(ident)
	if _, collides := reservedCollisions[out]; collides {
		out += "_"
	}
	return out
}
