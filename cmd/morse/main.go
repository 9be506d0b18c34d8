/*
Command morse converts text from stdin to Morse code on stdout, or back.

	echo "Hello, World!" | morse
	echo ".... . .-.. .-.. ---" | morse -d
	morse --decode --script japanese --compose < wabun.txt
	morse --list --script greek

Decoding uses the standard (Latin) script unless --script names another one.
Flags may also be given as environment variables with prefix MORSE_
(e.g. MORSE_SCRIPT=russian), optionally from a .env file.
*/
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/npillmayer/morse"
	"github.com/npillmayer/morse/chart"
)

func main() {
	if err := mainE(); err != nil {
		fmt.Fprintf(os.Stderr, "morse: %v\n", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()
	return run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

type options struct {
	decode  *bool
	script  *string
	ascii   *bool
	chart   *string
	nfc     *bool
	compose *bool
	list    *bool
	trace   *string
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := ff.NewFlagSet("morse")
	opts := options{
		decode:  fs.Bool('d', "decode", "decode Morse text instead of encoding"),
		script:  fs.String('s', "script", "standard", "script for decoding and --list "+scriptList()),
		ascii:   fs.BoolLong("ascii", "encode single-byte input only (faster)"),
		chart:   fs.StringLong("chart", "", "use a chart file instead of the builtin tables"),
		nfc:     fs.BoolLong("nfc", "normalize input to NFC before encoding"),
		compose: fs.BoolLong("compose", "fold decoded Wabun kana and (handa)kuten into voiced kana"),
		list:    fs.BoolLong("list", "print the code chart and exit"),
		trace:   fs.StringEnumLong("trace", "trace level", "error", "info", "debug"),
	}
	if err := ff.Parse(fs, args, ff.WithEnvVarPrefix("MORSE")); err != nil {
		fmt.Fprintf(stderr, "%s\n", ffhelp.Flags(fs))
		if errors.Is(err, ff.ErrHelp) {
			return nil
		}
		return fmt.Errorf("parsing flags: %w", err)
	}
	setupTracing(*opts.trace, stderr)

	table, codebook, err := loadTables(opts)
	if err != nil {
		return err
	}
	out := bufio.NewWriter(stdout)
	if *opts.list {
		if err := listChart(out, table); err != nil {
			return err
		}
		return out.Flush()
	}
	if *opts.decode {
		err = decode(stdin, out, table, *opts.compose)
	} else {
		err = encode(stdin, out, codebook, *opts.ascii, *opts.nfc)
	}
	if err != nil {
		return err
	}
	return out.Flush()
}

func scriptList() string {
	names := make([]string, 0, 7)
	for _, s := range morse.Scripts() {
		names = append(names, s.String())
	}
	return "(" + strings.Join(names, ", ") + ")"
}

func setupTracing(level string, w io.Writer) {
	tracer := gologadapter.New()
	tracer.SetOutput(w)
	tracer.SetTraceLevel(tracing.TraceLevelFromString(level))
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace {
		return tracer
	}))
}

// loadTables selects the decoding table and the codebook, either from a chart
// file or from the builtin script tables.
func loadTables(opts options) (*morse.Table, *morse.Codebook, error) {
	if *opts.chart != "" {
		f, err := os.Open(*opts.chart)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		table, codebook, err := chart.Load("", f)
		if err != nil {
			return nil, nil, fmt.Errorf("loading chart %s: %w", *opts.chart, err)
		}
		return table, codebook, nil
	}
	script, err := morse.ParseScript(*opts.script)
	if err != nil {
		return nil, nil, err
	}
	return script.Table(), morse.International(), nil
}

func encode(r io.Reader, w io.Writer, codebook *morse.Codebook, ascii, nfc bool) error {
	if ascii {
		return codebook.EncodeStreamASCII(r, w)
	}
	if nfc {
		r = transform.NewReader(r, norm.NFC)
	}
	return codebook.EncodeStream(r, w)
}

func decode(r io.Reader, w io.Writer, table *morse.Table, compose bool) error {
	if !compose {
		return table.DecodeStream(r, w)
	}
	tw := transform.NewWriter(w, morse.KanaComposer())
	if err := table.DecodeStream(r, tw); err != nil {
		return err
	}
	return tw.Close()
}

func listChart(w io.Writer, table *morse.Table) error {
	for _, e := range table.Chart("") {
		if _, err := fmt.Fprintf(w, "%-8s %s\n", e.Symbol, e.Chars); err != nil {
			return err
		}
	}
	return nil
}
