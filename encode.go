package morse

import (
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// encoder turns characters into Morse text.
//
// The letter separator is deferred: it is written in front of the next
// symbol, never after the last one. Tab, line feed and carriage return are
// copied and cancel an owed separator. Characters without a pattern are
// skipped and leave needSep alone.
type encoder struct {
	cb      *Codebook
	needSep bool
}

// room is the space in dst needed to encode one more character.
func (e *encoder) room() int {
	return 1 + e.cb.store.Runway()
}

func (e *encoder) put(dst []byte, id uint16) int {
	n := 0
	if e.needSep {
		dst[0] = ' '
		n = 1
	}
	n += e.cb.store.Write(dst[n:], id)
	e.needSep = true
	return n
}

func isVerbatim(c byte) bool {
	return c == '\t' || c == '\n' || c == '\r'
}

// encode encodes UTF-8 text. An incomplete UTF-8 sequence at the end of src
// is left unconsumed (ErrShortSrc) unless atEOF is set. Invalid bytes are
// dropped.
func (e *encoder) encode(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	room := e.room()
	for nSrc < len(src) {
		if len(dst)-nDst < room {
			return nDst, nSrc, transform.ErrShortDst
		}
		c := src[nSrc]
		if c < utf8.RuneSelf {
			nSrc++
			if isVerbatim(c) {
				dst[nDst] = c
				nDst++
				e.needSep = false
			} else if id := e.cb.ascii[c]; id != 0 {
				nDst += e.put(dst[nDst:], id)
			}
			continue
		}
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			tracer().Debugf("morse: dropping invalid UTF-8 byte %#x", c)
		}
		nSrc += size
		if id := e.cb.bmp.Lookup(r); id != 0 {
			nDst += e.put(dst[nDst:], id)
		}
	}
	return nDst, nSrc, nil
}

// encodeASCII encodes single-byte characters. Bytes >= 0x80 have no pattern.
func (e *encoder) encodeASCII(dst, src []byte) (nDst, nSrc int, err error) {
	room := e.room()
	for ; nSrc < len(src); nSrc++ {
		if len(dst)-nDst < room {
			return nDst, nSrc, transform.ErrShortDst
		}
		c := src[nSrc]
		if isVerbatim(c) {
			dst[nDst] = c
			nDst++
			e.needSep = false
		} else if id := e.cb.ascii[c]; id != 0 {
			nDst += e.put(dst[nDst:], id)
		}
	}
	return nDst, nSrc, nil
}

// encodeBuffer encodes src, writing to sink whenever buf is full.
// It returns the number of bytes consumed, which is less than len(src) only
// for an incomplete UTF-8 sequence at the end of src.
func (e *encoder) encodeBuffer(sink io.Writer, src, buf []byte, ascii, atEOF bool) (int, error) {
	consumed := 0
	for {
		var nDst, nSrc int
		var err error
		if ascii {
			nDst, nSrc, err = e.encodeASCII(buf, src[consumed:])
		} else {
			nDst, nSrc, err = e.encode(buf, src[consumed:], atEOF)
		}
		consumed += nSrc
		if nDst > 0 {
			if _, werr := sink.Write(buf[:nDst]); werr != nil {
				return consumed, werr
			}
		}
		if err != transform.ErrShortDst {
			return consumed, nil
		}
	}
}

func (cb *Codebook) encodeString(src []byte, ascii bool) string {
	e := encoder{cb: cb}
	buf := make([]byte, min(e.room()*(len(src)+1), streamBufferSize))
	var sb strings.Builder
	sb.Grow(4 * len(src))
	_, _ = e.encodeBuffer(&sb, src, buf, ascii, true) // strings.Builder never fails
	return sb.String()
}

// Encode encodes text with the International codebook.
// Characters without a Morse representation are dropped.
func Encode(s string) string {
	return International().Encode(s)
}

// EncodeASCII encodes single-byte text with the International codebook.
// Bytes >= 0x80 are dropped.
func EncodeASCII(b []byte) string {
	return International().EncodeASCII(b)
}

// Encode encodes text. Characters without a Morse representation are dropped.
func (cb *Codebook) Encode(s string) string {
	return cb.encodeString([]byte(s), false)
}

// EncodeASCII encodes single-byte text. Bytes >= 0x80 are dropped.
func (cb *Codebook) EncodeASCII(b []byte) string {
	return cb.encodeString(b, true)
}

// --- Transformer -----------------------------------------------------------

type encodeTransformer struct {
	e encoder
}

// NewEncoder returns a transformer from UTF-8 text to Morse text, using
// codebook cb.
func NewEncoder(cb *Codebook) transform.Transformer {
	return &encodeTransformer{e: encoder{cb: cb}}
}

func (et *encodeTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	return et.e.encode(dst, src, atEOF)
}

func (et *encodeTransformer) Reset() {
	et.e.needSep = false
}
