package morse

import (
	"fmt"
	"strings"
	"sync"
)

// Script selects the decoding table. Most scripts re-use the symbols of the
// Latin alphabet, so Morse text cannot be decoded without knowing its script.
type Script uint8

const (
	Standard Script = iota // Latin letters, figures and punctuation
	Greek
	Russian
	Japanese // Wabun code, katakana
	Korean   // SKATS, Hangul jamo
	Hebrew
	Arabic
	numScripts
)

var scriptNames = [numScripts]string{
	"standard", "greek", "russian", "japanese", "korean", "hebrew", "arabic",
}

var scriptCharts = [numScripts][]Entry{
	standardChart, greekChart, russianChart, japaneseChart,
	koreanChart, hebrewChart, arabicChart,
}

func (s Script) String() string {
	if s >= numScripts {
		return fmt.Sprintf("Script(%d)", uint8(s))
	}
	return scriptNames[s]
}

// ParseScript finds a script by name, ignoring case.
func ParseScript(name string) (Script, error) {
	for s, n := range scriptNames {
		if strings.EqualFold(n, name) {
			return Script(s), nil
		}
	}
	return Standard, fmt.Errorf("morse: unknown script %q (one of %s)", name, strings.Join(scriptNames[:], ", "))
}

// Scripts lists all builtin scripts.
func Scripts() []Script {
	all := make([]Script, numScripts)
	for i := range all {
		all[i] = Script(i)
	}
	return all
}

var scriptTables [numScripts]struct {
	once  sync.Once
	table *Table
}

// Table returns the decoding table of a builtin script. Tables are built on
// first use.
func (s Script) Table() *Table {
	assert(s < numScripts, "morse: unknown script")
	st := &scriptTables[s]
	st.once.Do(func() {
		st.table = MustTable(s.String(), scriptCharts[s])
	})
	return st.table
}

var international struct {
	once     sync.Once
	codebook *Codebook
}

// International returns the builtin codebook, which encodes the characters
// of all builtin scripts plus a number of Latin letters with diacritics and
// typographic characters.
func International() *Codebook {
	international.once.Do(func() {
		international.codebook = MustCodebook("international", internationalChart)
	})
	return international.codebook
}
