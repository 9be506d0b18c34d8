/*
Package chart reads Morse code charts from text files.

A chart has one entry per line: a symbol of dots and dashes, followed by the
character it decodes to and optionally further characters which encode to
the same symbol:

	# comment
	!name Latin (ITU-R M.1677-1)
	.-      A a
	-...    B b
	..-..   É é È è

Blank lines and lines starting with '#' are ignored. A line starting with
"!name" sets the chart's identifier.
*/
package chart

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/morse"
)

// tracer writes to trace with key 'morse'
func tracer() tracing.Trace {
	return tracing.Select("morse")
}

// Reader streams chart entries from a text source.
type Reader struct {
	scanner    *bufio.Scanner
	identifier string
	line       int
}

// Load reads a chart and builds both the decoding table and the codebook
// from it. If name is empty, the chart's identifier is used.
func Load(name string, reader io.Reader) (*morse.Table, *morse.Codebook, error) {
	r := NewReader(reader)
	entries, err := morse.ReadEntries(r)
	if err != nil {
		return nil, nil, err
	}
	if name == "" {
		name = r.Identifier()
	}
	tracer().Debugf("chart %q: %d entries in %d lines", name, len(entries), r.line)
	table, err := morse.NewTable(name, entries)
	if err != nil {
		return nil, nil, err
	}
	codebook, err := morse.NewCodebook(name, entries)
	if err != nil {
		return nil, nil, err
	}
	return table, codebook, nil
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Identifier returns the name given by a "!name" line, if any.
func (r *Reader) Identifier() string {
	return r.identifier
}

// Next returns the next chart entry.
// It returns io.EOF when exhausted.
func (r *Reader) Next() (morse.Entry, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if rest, ok := strings.CutPrefix(line, "!name"); ok {
			r.identifier = strings.TrimSpace(rest)
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return morse.Entry{}, fmt.Errorf("chart: line %d: symbol %q without characters", r.line, fields[0])
		}
		if !validSymbol(fields[0]) {
			return morse.Entry{}, fmt.Errorf("chart: line %d: invalid symbol %q", r.line, fields[0])
		}
		return morse.Entry{
			Symbol: fields[0],
			Chars:  strings.Join(fields[1:], ""),
		}, nil
	}
	if err := r.scanner.Err(); err != nil {
		return morse.Entry{}, err
	}
	return morse.Entry{}, io.EOF
}

func validSymbol(s string) bool {
	if len(s) == 0 || len(s) > 7 {
		return false
	}
	return strings.Trim(s, ".-") == ""
}
