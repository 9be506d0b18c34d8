package morse

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Wabun sends voiced kana as the plain kana followed by a (handa)kuten
// symbol, so decoded Japanese text contains spacing marks.
const (
	dakuten             = '゛'
	handakuten          = '゜'
	combiningDakuten    = '\u3099'
	combiningHandakuten = '\u309A'
)

// KanaComposer returns a transformer which folds kana followed by ゛ or ゜
// into the precomposed voiced kana, e.g. "カ゛" into "ガ" and "ヘ゜" into "ペ".
// Marks which do not combine with the preceding character are kept.
//
// The composer normalizes its input to NFC.
func KanaComposer() transform.Transformer {
	return transform.Chain(
		runes.Map(func(r rune) rune {
			switch r {
			case dakuten:
				return combiningDakuten
			case handakuten:
				return combiningHandakuten
			}
			return r
		}),
		norm.NFC,
		runes.Map(func(r rune) rune {
			switch r {
			case combiningDakuten:
				return dakuten
			case combiningHandakuten:
				return handakuten
			}
			return r
		}),
	)
}
