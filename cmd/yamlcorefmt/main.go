// Command yamlcorefmt tokenizes a YAML file and prints its token stream,
// one token per line, colorized by kind. It is a smoke-test harness for
// the tokenizer and emitter packages, not a general-purpose YAML tool:
// compose.go's composer is a minimal, test-only bridge (no anchor/alias
// resolution, no tag handling) rather than a real loader, just enough
// to exercise --roundtrip end to end.
//
// Grounded on goccy-go-yaml's cmd/ycat in its use of fatih/color and
// mattn/go-colorable for ANSI output that degrades gracefully when
// stdout isn't a terminal.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	colorable "github.com/mattn/go-colorable"
	"github.com/spf13/pflag"

	"github.com/kvx-labs/yamlcore/emitter"
	"github.com/kvx-labs/yamlcore/token"
	"github.com/kvx-labs/yamlcore/tokenizer"
)

func main() {
	var withComments bool
	var noColor bool
	var roundtrip bool
	pflag.BoolVar(&withComments, "comments", true, "surface '#' lines as Comment tokens")
	pflag.BoolVar(&noColor, "no-color", false, "disable ANSI colors even on a terminal")
	pflag.BoolVar(&roundtrip, "roundtrip", false, "compose the token stream into a value.Value tree and re-emit it, instead of dumping tokens")
	pflag.Parse()

	if noColor {
		color.NoColor = true
	}

	args := pflag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: yamlcorefmt [flags] file.yml")
		os.Exit(2)
	}

	runFn := run
	if roundtrip {
		runFn = runRoundtrip
	}
	if err := runFn(args[0], withComments); err != nil {
		fmt.Fprintf(os.Stderr, "yamlcorefmt: %v\n", err)
		os.Exit(1)
	}
}

func runRoundtrip(path string, withComments bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	tok := tokenizer.New(tokenizer.NewReaderSource(f), withComments)
	doc, err := newComposer(tok).composeDocument()
	if err != nil {
		return err
	}
	return emitter.New(os.Stdout).Dump(doc)
}

func run(path string, withComments bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	out := colorable.NewColorableStdout()
	tok := tokenizer.New(tokenizer.NewReaderSource(f), withComments)

	kindColor := map[token.Kind]*color.Color{
		token.Scalar:             color.New(color.FgHiGreen),
		token.Key:                color.New(color.FgHiCyan),
		token.Value:              color.New(color.FgHiCyan),
		token.Comment:            color.New(color.FgHiBlack),
		token.Anchor:             color.New(color.FgHiYellow),
		token.Alias:              color.New(color.FgHiYellow),
		token.Tag:                color.New(color.FgHiMagenta),
		token.BlockSequenceStart: color.New(color.FgHiBlue),
		token.BlockMappingStart:  color.New(color.FgHiBlue),
		token.FlowSequenceStart:  color.New(color.FgHiBlue),
		token.FlowMappingStart:   color.New(color.FgHiBlue),
	}

	for {
		t, err := tok.Next()
		if err != nil {
			return err
		}
		c, ok := kindColor[t.Kind]
		if !ok {
			c = color.New(color.Reset)
		}
		c.Fprintln(out, t.String())
		if t.Kind == token.StreamEnd {
			return nil
		}
		if t.Kind == token.NoToken {
			return nil
		}
	}
}
