// Command m2c is the bootstrap-subset compiler front end's driver: it
// parses a single Modula-2 source file into an AST (or a dependency list,
// for --graph-only) and reports diagnostics, without performing semantic
// analysis or code generation.
package main

import (
	"fmt"
	"os"

	"github.com/dekarrin/m2comp/internal/deplist"
	"github.com/dekarrin/m2comp/internal/diag"
	"github.com/dekarrin/m2comp/internal/intern"
	"github.com/dekarrin/m2comp/internal/lex"
	"github.com/dekarrin/m2comp/internal/options"
	"github.com/dekarrin/m2comp/internal/parse"
	"github.com/dekarrin/m2comp/internal/pathname"
	"github.com/dekarrin/m2comp/internal/source"
	"github.com/dekarrin/m2comp/internal/trace"
	"github.com/dekarrin/m2comp/internal/version"
)

const (
	ExitSuccess = iota
	ExitErrors
	ExitCLIError
	ExitResourceError
)

var returnCode = ExitSuccess

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(panicErr)
		}
		os.Exit(returnCode)
	}()

	settings, diags := options.ParseArgs(os.Args[1:])
	if len(diags) > 0 {
		for _, d := range diags {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", d.Error())
		}
		returnCode = ExitCLIError
		return
	}

	if settings.Help {
		printUsage(os.Stdout)
		return
	}
	if settings.Version {
		fmt.Println(version.Current)
		return
	}
	if settings.License {
		fmt.Println("see LICENSE")
		return
	}
	if settings.ShowSettings {
		dump, err := settings.Dump()
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
			returnCode = ExitCLIError
			return
		}
		fmt.Print(dump)
		return
	}

	pn, pdiags := pathname.Parse(settings.SourceFile, pathname.PosixPolicy)
	if len(pdiags) > 0 {
		for _, d := range pdiags {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", d.Error())
		}
		returnCode = ExitCLIError
		return
	}

	f, err := os.Open(settings.SourceFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		returnCode = ExitResourceError
		return
	}
	defer f.Close()

	pool := intern.New(256)
	sink := diag.NewSink(1000)
	tr := traceSession(settings)

	if settings.GraphOnly {
		deps := deplist.Walk(f, pn.Filename(), pool, sink)
		if _, err := os.Stdout.Write(deps.MarshalBinary()); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
			returnCode = ExitResourceError
			return
		}
		reportAndExit(sink, tr)
		return
	}

	rd := source.New(f, pn.Filename())
	lx := lex.New(rd, pool, sink, lex.Options{
		DollarIdentifiers:  settings.DollarIdentifiers,
		LowlineIdentifiers: settings.LowlineIdentifiers,
	})
	lx.SetTrace(tr)
	p := parse.New(lx, pool, sink)
	p.SetTrace(tr)
	unit := p.ParseCompilationUnit()

	if !settings.SyntaxOnly {
		fmt.Println(unit.String())
	}

	reportAndExit(sink, tr)
}

func traceSession(s options.Settings) *trace.Session {
	var channels []trace.Channel
	if s.Verbose {
		channels = append(channels, trace.Verbose)
	}
	if s.LexerDebug {
		channels = append(channels, trace.LexerDebug)
	}
	if s.ParserDebug {
		channels = append(channels, trace.ParserDebug)
	}
	return trace.NewSession(os.Stderr, channels...)
}

func reportAndExit(sink *diag.Sink, tr *trace.Session) {
	for _, d := range sink.Diagnostics() {
		fmt.Fprintf(os.Stderr, "%s\n", d.Error())
	}
	tr.Tracef(trace.Verbose, "%d diagnostic(s) reported", sink.ErrorCount())
	if sink.ErrorCount() > 0 {
		returnCode = sink.ErrorCount()
	}
}

func printUsage(w *os.File) {
	fmt.Fprintln(w, "usage: m2c [options] <source-file>")
	fmt.Fprintln(w, "  -h, --help               show this help and exit")
	fmt.Fprintln(w, "  -V, --version            show version and exit")
	fmt.Fprintln(w, "      --license            show license and exit")
	fmt.Fprintln(w, "      --syntax-only        check syntax only")
	fmt.Fprintln(w, "      --ast-only           produce only an AST dump")
	fmt.Fprintln(w, "      --graph-only         produce only a dependency graph")
	fmt.Fprintln(w, "      --show-settings      dump resolved settings and exit")
}
