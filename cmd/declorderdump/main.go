// Command declorderdump loads a declaration-graph fixture, resolves its
// targets, and prints the emit order the resolver decided on — or, on a
// cycle or emit failure, the reason chain that explains why. It takes a
// single positional argument, the path to a fixture YAML file, plus an
// optional --debug flag, the same plain-os.Args style cmd/funxy uses (no
// flag-parsing framework).
package main

import (
	"fmt"
	"os"

	"github.com/kr/pretty"
	"github.com/mattn/go-isatty"

	"github.com/declgraph/declorder/internal/depgraph"
	"github.com/declgraph/declorder/internal/diagnostics"
	"github.com/declgraph/declorder/internal/fixture"
	"github.com/declgraph/declorder/internal/resolver"
)

var colorEnabled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

func main() {
	var path string
	var debug bool
	for _, a := range os.Args[1:] {
		if a == "--debug" {
			debug = true
			continue
		}
		path = a
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "usage: declorderdump [--debug] <fixture.yaml>")
		os.Exit(2)
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		colorEnabled = false
	}
	if err := run(path, debug); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(path string, debug bool) error {
	res, err := fixture.LoadFile(path)
	if err != nil {
		return err
	}

	var emitted []emittedLine
	emit := func(ctx *resolver.ResolverContext, target resolver.Target, state depgraph.State) error {
		if debug {
			fmt.Fprintf(os.Stderr, "%# v\n", pretty.Formatter(target.Decl.GetDependencies(state)))
			fmt.Fprintf(os.Stderr, "%# v\n", pretty.Formatter(ctx.Reason))
		}
		emitted = append(emitted, emittedLine{name: target.Decl.Name(), state: state})
		return nil
	}

	stats, err := resolver.ResolveDependencies(res.Arena, res.Targets, emit)
	if err != nil {
		printError(err)
		return err
	}

	for i, e := range emitted {
		fmt.Printf("%3d. %s\n", i+1, formatLine(e))
	}
	fmt.Println(colorize(36, stats.String()))
	return nil
}

type emittedLine struct {
	name  string
	state depgraph.State
}

func formatLine(e emittedLine) string {
	if e.state == depgraph.Complete {
		return colorize(32, e.name+"@Complete")
	}
	return colorize(33, e.name+"@Partial")
}

func printError(err error) {
	rerr, ok := err.(*diagnostics.ResolutionError)
	if !ok {
		fmt.Fprintln(os.Stderr, colorize(31, err.Error()))
		return
	}
	fmt.Fprintln(os.Stderr, colorize(31, rerr.Error()))
	if rerr.Reason != nil {
		fmt.Fprintln(os.Stderr, "  "+rerr.Reason.String())
	}
}

// colorize wraps s in an SGR color code when writing to a real terminal,
// and returns it unchanged otherwise (NO_COLOR, pipes, redirected output).
func colorize(code int, s string) string {
	if !colorEnabled {
		return s
	}
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", code, s)
}
