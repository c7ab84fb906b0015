// Package options parses the compiler driver's command line into a Settings
// value, enforcing the option-group rules from SPEC_FULL.md §2.2: a mandatory
// source file unless the request is info-only, at-most-once-per-option, and
// the comment-stripping flags' dependency on --xlat.
package options

import (
	"bytes"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dekarrin/m2comp/internal/diag"
	"github.com/spf13/pflag"
)

// Settings is the fully parsed, validated command line.
type Settings struct {
	SourceFile string

	Help    bool
	Version bool
	License bool

	SyntaxOnly bool
	ASTOnly    bool
	GraphOnly  bool
	XlatOnly   bool
	ObjOnly    bool

	AST   bool
	Graph bool
	Xlat  bool
	Obj   bool

	PreserveComments bool
	StripComments    bool

	DollarIdentifiers  bool
	LowlineIdentifiers bool

	Verbose          bool
	LexerDebug       bool
	ParserDebug      bool
	ShowSettings     bool
	ErrantSemicolons bool
}

// InfoOnly reports whether the request needs no source file: help, version,
// or license alone.
func (s Settings) InfoOnly() bool {
	return s.Help || s.Version || s.License
}

// Dump renders Settings as TOML, for --show-settings.
func (s Settings) Dump() (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// seenFlags counts how many times each long flag name was given on the
// command line. pflag.FlagSet.Set only appends to its "changed" bookkeeping
// the first time a flag is set (see pflag's Set: `if !flag.Changed {
// ... } else { flag.Value.Set(value) }`), so a flag given twice is only
// ever Visit-able once — fs.Visit cannot see the duplicate. The spec's
// "duplicate is an error" rule is therefore enforced by scanning the raw
// argument list directly instead.
type seenFlags map[string]int

func countOccurrences(args []string, fs *pflag.FlagSet) seenFlags {
	seen := make(seenFlags)
	for _, a := range args {
		if a == "--" {
			break
		}
		switch {
		case strings.HasPrefix(a, "--"):
			name := strings.TrimPrefix(a, "--")
			if eq := strings.IndexByte(name, '='); eq >= 0 {
				name = name[:eq]
			}
			seen[name]++
		case strings.HasPrefix(a, "-") && a != "-":
			for _, r := range a[1:] {
				if f := fs.ShorthandLookup(string(r)); f != nil {
					seen[f.Name]++
				}
			}
		}
	}
	return seen
}

// ParseArgs parses args (excluding the program name) into a Settings,
// reporting every CLI-kind diagnostic it finds. A non-empty diagnostic slice
// means the returned Settings must not be used to start a compilation.
func ParseArgs(args []string) (Settings, []diag.Diagnostic) {
	var sink diag.Sink
	s := Settings{}

	fs := pflag.NewFlagSet("m2c", pflag.ContinueOnError)
	fs.SetOutput(bytes.NewBuffer(nil))

	fs.BoolVarP(&s.Help, "help", "h", false, "show usage and exit")
	fs.BoolVarP(&s.Version, "version", "V", false, "show version and exit")
	fs.BoolVar(&s.License, "license", false, "show license and exit")

	fs.BoolVar(&s.SyntaxOnly, "syntax-only", false, "check syntax only, produce no output")
	fs.BoolVar(&s.ASTOnly, "ast-only", false, "produce only an AST dump")
	fs.BoolVar(&s.GraphOnly, "graph-only", false, "produce only a dependency graph")
	fs.BoolVar(&s.XlatOnly, "xlat-only", false, "produce only translated C source")
	fs.BoolVar(&s.ObjOnly, "obj-only", false, "produce only a compiled object")

	fs.BoolVar(&s.AST, "ast", false, "include an AST dump among the products")
	fs.BoolVar(&s.AST, "no-ast", false, "exclude an AST dump from the products")
	fs.BoolVar(&s.Graph, "graph", false, "include a dependency graph among the products")
	fs.BoolVar(&s.Graph, "no-graph", false, "exclude a dependency graph from the products")
	fs.BoolVar(&s.Xlat, "xlat", false, "include translated C source among the products")
	fs.BoolVar(&s.Xlat, "no-xlat", false, "exclude translated C source from the products")
	fs.BoolVar(&s.Obj, "obj", false, "include a compiled object among the products")
	fs.BoolVar(&s.Obj, "no-obj", false, "exclude a compiled object from the products")

	fs.BoolVar(&s.PreserveComments, "preserve-comments", false, "carry comments into translated C source")
	fs.BoolVar(&s.StripComments, "strip-comments", false, "drop comments from translated C source")

	fs.BoolVar(&s.DollarIdentifiers, "dollar-identifiers", false, "allow $ in identifiers")
	fs.BoolVar(&s.DollarIdentifiers, "no-dollar-identifiers", false, "disallow $ in identifiers")
	fs.BoolVar(&s.LowlineIdentifiers, "lowline-identifiers", false, "allow embedded _ in identifiers")
	fs.BoolVar(&s.LowlineIdentifiers, "no-lowline-identifiers", false, "disallow embedded _ in identifiers")

	fs.BoolVar(&s.Verbose, "verbose", false, "enable verbose tracing")
	fs.BoolVar(&s.LexerDebug, "lexer-debug", false, "trace lexer token production")
	fs.BoolVar(&s.ParserDebug, "parser-debug", false, "trace parser production entry/exit")
	fs.BoolVar(&s.ShowSettings, "show-settings", false, "dump resolved settings and exit")
	fs.BoolVar(&s.ErrantSemicolons, "errant-semicolons", false, "warn on statement-terminating semicolons")

	noFlags := []string{"no-ast", "no-graph", "no-xlat", "no-obj", "no-dollar-identifiers", "no-lowline-identifiers"}

	if err := fs.Parse(args); err != nil {
		sink.Report(diag.CLIErrorf("%s", err))
		return s, sink.Diagnostics()
	}

	seen := countOccurrences(args, fs)
	for name, n := range seen {
		if n > 1 {
			sink.Report(diag.CLIErrorf("option %q given more than once", name))
		}
	}
	for _, negated := range noFlags {
		positive := negated[len("no-"):]
		if seen[negated] > 0 && seen[positive] > 0 {
			sink.Report(diag.CLIErrorf("options %q and %q are mutually exclusive", positive, negated))
		}
		if seen[negated] > 0 {
			switch positive {
			case "ast":
				s.AST = false
			case "graph":
				s.Graph = false
			case "xlat":
				s.Xlat = false
			case "obj":
				s.Obj = false
			case "dollar-identifiers":
				s.DollarIdentifiers = false
			case "lowline-identifiers":
				s.LowlineIdentifiers = false
			}
		}
	}

	if (s.PreserveComments || s.StripComments) && !s.Xlat && !s.XlatOnly {
		sink.Report(diag.CLIError("--preserve-comments/--strip-comments require --xlat"))
	}
	if s.PreserveComments && s.StripComments {
		sink.Report(diag.CLIError("--preserve-comments and --strip-comments are mutually exclusive"))
	}

	rest := fs.Args()
	switch {
	case len(rest) == 1:
		s.SourceFile = rest[0]
	case len(rest) == 0:
		if !s.InfoOnly() {
			sink.Report(diag.CLIError("missing source file"))
		}
	default:
		sink.Report(diag.CLIErrorf("unexpected extra arguments: %v", rest[1:]))
		s.SourceFile = rest[0]
	}

	return s, sink.Diagnostics()
}
