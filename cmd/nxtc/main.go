// Copyright 2024 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Nxtc converts a NeXt document into a self-contained HTML page.
//
// Usage:
//
//	nxtc [flags] [-i] FILE
//
// The output is written next to the input with its extension replaced by
// ".html", unless -o is given. Math spans are rendered in the browser by
// KaTeX.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"golang.org/x/text/language"
	"zombiezen.com/go/nxt"
)

// tracer traces with key 'nxt.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("nxt.cmd")
}

type flags struct {
	input    string
	output   string
	lang     string
	trace    string
	bodyOnly bool
	help     bool
}

func newFlagSet(f *flags) *flag.FlagSet {
	fs := flag.NewFlagSet("nxtc", flag.ContinueOnError)
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)

	fs.StringVar(&f.input, "input", "", "NeXt `file` to convert")
	fs.StringVar(&f.input, "i", "", "shorthand for -input")
	fs.StringVar(&f.output, "output", "", "HTML `file` to write (default is the input with a .html extension)")
	fs.StringVar(&f.output, "o", "", "shorthand for -output")
	fs.StringVar(&f.lang, "lang", "", "`language` of the default title (default from $LANG)")
	fs.StringVar(&f.trace, "trace", "Error", "trace `level` [Debug|Info|Error]")
	fs.BoolVar(&f.bodyOnly, "body", false, "write only the HTML body instead of a complete page")
	fs.BoolVar(&f.help, "help", false, "show usage help and quit")
	return fs
}

func usage(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, "Usage: nxtc [flags] [-i] FILE")
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
}

func main() {
	if err := setupTracing(); err != nil {
		fmt.Fprintln(os.Stderr, "nxtc: configure tracing:", err)
		os.Exit(1)
	}
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// setupTracing routes traces through the standard log package.
// The level is adjusted later from the -trace flag.
func setupTracing() error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.nxt.cmd":   "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// run parses command-line flags and converts the input file.
// It returns the exit status of the program.
func run(args []string, stdout, stderr io.Writer) int {
	f := new(flags)
	fs := newFlagSet(f)
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			usage(stdout, fs)
			return 0
		}
		fmt.Fprintln(stderr, err)
		usage(stderr, fs)
		return 2
	}
	if f.help {
		usage(stdout, fs)
		return 0
	}
	if f.input == "" && fs.NArg() > 0 {
		f.input = fs.Arg(0)
	}
	if f.input == "" || fs.NArg() > 1 {
		fmt.Fprintln(stderr, "nxtc: exactly one input file required")
		usage(stderr, fs)
		return 2
	}
	if err := setTraceLevel(f.trace); err != nil {
		fmt.Fprintln(stderr, "nxtc:", err)
		return 2
	}

	if f.output == "" {
		f.output = defaultOutputPath(f.input)
	}
	if f.lang == "" {
		f.lang = os.Getenv("LANG")
	}
	c := &converter{
		parser: &nxt.Parser{
			DefaultTitle: nxt.DefaultTitle(parseLanguage(f.lang)),
		},
		bodyOnly: f.bodyOnly,
	}
	if err := c.convert(f.input, f.output); err != nil {
		tracer().Errorf("%v", err)
		fmt.Fprintln(stderr, "nxtc:", err)
		return 1
	}
	tracer().Infof("wrote %s", f.output)
	fmt.Fprintf(stdout, "Generated %s\n", f.output)
	return 0
}

// defaultOutputPath returns the input path with its extension replaced by ".html".
func defaultOutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".html"
}

func setTraceLevel(s string) error {
	switch strings.ToLower(s) {
	case "debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		return fmt.Errorf("unknown trace level %q", s)
	}
	return nil
}

// parseLanguage interprets a BCP 47 tag or a POSIX locale name like "it_IT.UTF-8".
// Unrecognized values yield English.
func parseLanguage(s string) language.Tag {
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "" || s == "C" || s == "POSIX" {
		return language.English
	}
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		tracer().Debugf("language %q: %v", s, err)
		return language.English
	}
	return tag
}
