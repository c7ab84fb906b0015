// Package pathname implements the per-host pathname/filename grammar listed
// in SPEC_FULL.md §1: a pathname splits into a directory path and a filename;
// a filename splits into a basename and a recognized suffix.
package pathname

import (
	"path/filepath"
	"strings"

	"github.com/dekarrin/m2comp/internal/diag"
)

// Suffix identifies a recognized Modula-2 source suffix.
type Suffix int

const (
	SuffixNone Suffix = iota
	SuffixDef         // .def or .DEF
	SuffixMod         // .mod or .MOD
)

func (s Suffix) String() string {
	switch s {
	case SuffixDef:
		return ".def"
	case SuffixMod:
		return ".mod"
	default:
		return ""
	}
}

// CharClassPolicy is the compile-time-configurable set of punctuation
// characters a host platform allows inside a pathname component, beyond
// letters, digits, and underscore.
type CharClassPolicy struct {
	AllowPeriod bool
	AllowSpace  bool
	AllowMinus  bool
	AllowTilde  bool
}

// PosixPolicy is the character-class policy for POSIX-family hosts: every
// optional punctuation class is permitted, matching the permissive
// filename grammar those filesystems actually enforce.
var PosixPolicy = CharClassPolicy{AllowPeriod: true, AllowSpace: true, AllowMinus: true, AllowTilde: true}

// Pathname is a parsed, validated pathname.
type Pathname struct {
	Dir      string
	Basename string
	Suffix   Suffix
	Raw      string
}

// Filename reconstructs the basename+suffix component.
func (p Pathname) Filename() string {
	return p.Basename + p.Suffix.String()
}

// String reconstructs the full pathname.
func (p Pathname) String() string {
	if p.Dir == "" {
		return p.Filename()
	}
	return filepath.Join(p.Dir, p.Filename())
}

var suffixes = map[string]Suffix{
	".def": SuffixDef,
	".DEF": SuffixDef,
	".mod": SuffixMod,
	".MOD": SuffixMod,
}

// Parse validates raw against policy and splits it into directory path,
// basename, and suffix. Any character outside letters, digits, underscore,
// and the classes policy enables is reported as a CLI diagnostic.
func Parse(raw string, policy CharClassPolicy) (Pathname, []diag.Diagnostic) {
	var diags []diag.Diagnostic

	if raw == "" || strings.HasSuffix(raw, "/") || strings.HasSuffix(raw, string(filepath.Separator)) {
		diags = append(diags, diag.CLIErrorf("pathname %q has no filename component", raw))
		return Pathname{Raw: raw}, diags
	}

	clean := filepath.Clean(raw)
	dir, file := filepath.Split(clean)
	dir = strings.TrimSuffix(dir, string(filepath.Separator))

	ext := filepath.Ext(file)
	suffix := suffixes[ext]
	base := strings.TrimSuffix(file, ext)
	if suffix == SuffixNone {
		base = file
	}

	if base == "" {
		diags = append(diags, diag.CLIErrorf("pathname %q has no filename component", raw))
	}

	for _, r := range dir + base {
		if !runeAllowed(r, policy) {
			diags = append(diags, diag.CLIErrorf("pathname %q contains disallowed character %q", raw, r))
			break
		}
	}

	return Pathname{Dir: dir, Basename: base, Suffix: suffix, Raw: raw}, diags
}

func runeAllowed(r rune, policy CharClassPolicy) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '_', r == filepath.Separator, r == '/':
		return true
	case r == '.':
		return policy.AllowPeriod
	case r == ' ':
		return policy.AllowSpace
	case r == '-':
		return policy.AllowMinus
	case r == '~':
		return policy.AllowTilde
	default:
		return false
	}
}
