/*
Package morse converts text to and from Morse code, for arbitrarily large inputs.

Morse text uses '.' for a dot, '-' for a dash, a single space between the
symbols of a word and '/' between words. Tab, line feed and carriage return
are kept as-is in both directions. Decoding is parameterized by a Script,
as most scripts re-use the Latin symbols for their own letters:

	morse.Encode("Hello, World!")                 // ".... . .-.. .-.. --- --..-- / .-- --- .-. .-.. -.. -.-.--"
	morse.Decode([]byte(".--. .- .-. .. ..."), morse.Standard) // "PARIS"

Streams are processed in bounded chunks. The state needed to continue across
chunk boundaries (an owed letter separator when encoding, an unfinished symbol
when decoding, an incomplete UTF-8 sequence) lives in a per-call session, so
that encoding or decoding a stream gives byte-identical output to processing
the same data as one contiguous string.

Decoding turns each run of up to seven dots and dashes into an 8-bit key
(one bit per element plus a leading sentinel bit) and looks the key up in a
flat 256-entry table. Characters without a Morse representation are dropped
when encoding, unknown symbols are dropped when decoding; neither is an error.

Further Reading

	ITU-R M.1677-1 International Morse code
	https://en.wikipedia.org/wiki/Morse_code_for_non-Latin_alphabets
	https://en.wikipedia.org/wiki/Wabun_code

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package morse

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'morse'
func tracer() tracing.Trace {
	return tracing.Select("morse")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
