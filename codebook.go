package morse

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/morse/pagemap"
)

// Characters with a fixed representation in Morse text. They are part of
// every codebook.
var wireFormat = []Entry{
	{Symbol: "/", Chars: " "},
	{Symbol: "\t", Chars: "\t"},
	{Symbol: "\n", Chars: "\n"},
	{Symbol: "\r", Chars: "\r"},
}

// Codebook is the encoding direction: it maps characters to Morse patterns.
//
// ASCII characters are found with a single array index, all other characters
// of the Basic Multilingual Plane through a two-level page map. Both yield a
// pattern id into a symbol store.
type Codebook struct {
	name  string
	ascii [256]uint16 // only the lower half is ever set
	bmp   pagemap.Map
	store *symbolStore
	chars int
}

// NewCodebook builds a codebook. Each rune of an entry's Chars encodes to the
// entry's Symbol. Space, tab, line feed and carriage return are added
// implicitly and must not be part of the entries. A character listed twice is
// an error, as is a character outside the Basic Multilingual Plane.
func NewCodebook(name string, entries []Entry) (*Codebook, error) {
	cb := &Codebook{
		name:  name,
		store: newSymbolStore(),
	}
	for _, e := range wireFormat {
		if err := cb.add([]rune(e.Chars)[0], e.Symbol); err != nil {
			return nil, fmt.Errorf("morse: codebook %s: %w", name, err)
		}
	}
	for _, e := range entries {
		if err := validPattern(e.Symbol); err != nil {
			return nil, fmt.Errorf("morse: codebook %s: %w", name, err)
		}
		if e.Chars == "" {
			return nil, fmt.Errorf("morse: codebook %s: pattern %q has no characters", name, e.Symbol)
		}
		for _, r := range e.Chars {
			if err := cb.add(r, e.Symbol); err != nil {
				return nil, fmt.Errorf("morse: codebook %s: %w", name, err)
			}
		}
	}
	tracer().Infof("morse codebook %s: %d characters, %d patterns, %d pages",
		name, cb.chars, cb.store.Len(), cb.bmp.NumPages())
	return cb, nil
}

// MustCodebook is like NewCodebook, but panics on error.
func MustCodebook(name string, entries []Entry) *Codebook {
	cb, err := NewCodebook(name, entries)
	if err != nil {
		panic(err)
	}
	return cb
}

// validPattern checks for one or more symbols separated by single spaces.
func validPattern(pattern string) error {
	if pattern == "" {
		return fmt.Errorf("empty pattern")
	}
	for _, symbol := range strings.Split(pattern, " ") {
		if _, ok := symbolKey(symbol); !ok {
			return fmt.Errorf("invalid symbol %q in pattern %q", symbol, pattern)
		}
	}
	return nil
}

func (cb *Codebook) add(r rune, pattern string) error {
	if r == utf8.RuneError {
		return fmt.Errorf("invalid UTF-8 in characters for %q", pattern)
	}
	if cb.id(r) != 0 {
		return fmt.Errorf("character %q listed twice (%q and %q)", r, cb.Symbol(r), pattern)
	}
	id, err := cb.store.Put(pattern)
	if err != nil {
		return err
	}
	if r < utf8.RuneSelf {
		cb.ascii[r] = id
	} else if !cb.bmp.Set(r, id) {
		return fmt.Errorf("character %q is outside the Basic Multilingual Plane", r)
	}
	cb.chars++
	return nil
}

func (cb *Codebook) id(r rune) uint16 {
	if r >= 0 && r < utf8.RuneSelf {
		return cb.ascii[r]
	}
	return cb.bmp.Lookup(r)
}

// Name returns the name the codebook was created with.
func (cb *Codebook) Name() string {
	return cb.name
}

// Symbol returns the Morse pattern for r, or "" if r cannot be encoded.
func (cb *Codebook) Symbol(r rune) string {
	return cb.store.Pattern(cb.id(r))
}

// Len returns the number of characters the codebook can encode.
func (cb *Codebook) Len() int {
	return cb.chars
}
