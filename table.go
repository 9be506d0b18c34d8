package morse

import (
	"fmt"
	"io"
	"slices"
	"unicode/utf8"

	"github.com/derekparker/trie"
)

// Entry is one line of a code chart: a Morse symbol and the characters
// spelled with it.
//
// For decoding tables Symbol is a single run of dots and dashes and the first
// rune of Chars is the character it decodes to. For codebooks every rune of
// Chars encodes to Symbol, which may be a sequence of runs separated by single
// spaces (e.g. "----- -..-. -----" for '%').
type Entry struct {
	Symbol string
	Chars  string
}

// EntryReader yields chart entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type EntryReader interface {
	Next() (Entry, error)
}

// ReadEntries drains an EntryReader.
func ReadEntries(reader EntryReader) ([]Entry, error) {
	var entries []Entry
	for {
		e, err := reader.Next()
		if err == io.EOF {
			return entries, nil
		}
		if err != nil {
			return entries, err
		}
		entries = append(entries, e)
	}
}

// Table is the decoding direction of a script: a flat array indexed by the
// key of a Morse symbol. A zero rune means "no character".
type Table struct {
	name    string
	reverse [256]rune
	symbols *trie.Trie // symbol -> key, for chart listings
}

// NewTable builds a decoding table. Each symbol must consist of 1 to 7 dots
// and dashes. Two entries with the same symbol are an error naming both
// characters.
func NewTable(name string, entries []Entry) (*Table, error) {
	t := &Table{
		name:    name,
		symbols: trie.New(),
	}
	for _, e := range entries {
		key, ok := symbolKey(e.Symbol)
		if !ok {
			return nil, fmt.Errorf("morse: table %s: invalid symbol %q", name, e.Symbol)
		}
		r, size := utf8.DecodeRuneInString(e.Chars)
		if size == 0 || r == 0 || (r == utf8.RuneError && size == 1) {
			return nil, fmt.Errorf("morse: table %s: symbol %q has no valid character", name, e.Symbol)
		}
		if prev := t.reverse[key]; prev != 0 {
			return nil, fmt.Errorf("morse: table %s: %q and %q are both spelled %s", name, prev, r, e.Symbol)
		}
		t.reverse[key] = r
		t.symbols.Add(e.Symbol, key)
	}
	tracer().Infof("morse table %s: %d symbols", name, t.Len())
	return t, nil
}

// MustTable is like NewTable, but panics on error.
func MustTable(name string, entries []Entry) *Table {
	t, err := NewTable(name, entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the name the table was created with.
func (t *Table) Name() string {
	return t.name
}

// Lookup returns the character for a symbol key, or 0.
func (t *Table) Lookup(key uint8) rune {
	return t.reverse[key]
}

// LookupSymbol returns the character for a textual symbol such as "-.-.", or 0.
func (t *Table) LookupSymbol(symbol string) rune {
	key, ok := symbolKey(symbol)
	if !ok {
		return 0
	}
	return t.reverse[key]
}

// Len returns the number of symbols in the table.
func (t *Table) Len() int {
	n := 0
	for _, r := range t.reverse {
		if r != 0 {
			n++
		}
	}
	return n
}

// Chart lists all entries whose symbol starts with prefix, shortest symbols
// first and dots before dashes, i.e. in the order of a Morse code tree.
// An empty prefix lists the whole table. Entries are rebuilt from the keys
// of the decoding array, so they show what Decode will produce.
func (t *Table) Chart(prefix string) []Entry {
	symbols := t.symbols.PrefixSearch(prefix)
	slices.SortFunc(symbols, compareSymbols)
	chart := make([]Entry, 0, len(symbols))
	for _, s := range symbols {
		node, ok := t.symbols.Find(s)
		if !ok {
			continue
		}
		key, _ := node.Meta().(uint8)
		if r := t.reverse[key]; r != 0 {
			chart = append(chart, Entry{Symbol: keySymbol(key), Chars: string(r)})
		}
	}
	return chart
}

func compareSymbols(a, b string) int {
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			if a[i] == '.' {
				return -1
			}
			return 1
		}
	}
	return 0
}
