package morse

import (
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// maxDecoded is the output a single terminator can produce: one character
// and the terminator itself (tab, line feed, carriage return).
const maxDecoded = utf8.UTFMax + 1

// decoder turns Morse text into characters.
//
// A run of elements is terminated by any byte <= ' '. Tab, line feed and
// carriage return are copied to the output, other terminators are not. If a
// run does not end within the bytes seen so far, callers either keep its
// bytes in front of the next chunk (streams) or hand it to hold
// (transformers). Bytes >= 0x80 neither terminate nor extend a run; runs of
// more than seven elements do not decode to anything.
type decoder struct {
	table    *Table
	run      [keyRunway]byte // held elements, compacted
	n        int
	overlong bool
}

func (d *decoder) reset() {
	d.n = 0
	d.overlong = false
}

// scan decodes the runs of src which are terminated within src.
// It stops in front of the unterminated tail of src or, with full set, in
// front of the first run it had no room to decode in dst. nSrc never counts
// bytes of an unfinished run.
func (d *decoder) scan(dst, src []byte) (nDst, nSrc int, full bool) {
	start := 0
	dirty := d.n > 0 || d.overlong // run must go through the held elements
	bulk := len(src) - maxElements // fast packer is safe in front of this
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case c <= ' ':
			if len(dst)-nDst < maxDecoded {
				return nDst, start, true
			}
			var key uint8
			if dirty {
				d.hold(src[start:i])
				key = d.heldKey()
				d.reset()
			} else if n := i - start; n > maxElements {
				key = noKey
			} else if i < bulk {
				key = packKey(src[start:], n)
			} else {
				key = packKeySafe(src[start:], n)
			}
			if r := d.table.reverse[key]; r != 0 {
				nDst += utf8.EncodeRune(dst[nDst:], r)
			}
			if isVerbatim(c) {
				dst[nDst] = c
				nDst++
			}
			start, dirty = i+1, false
		case c == '/':
			if nDst == len(dst) {
				return nDst, start, true
			}
			dst[nDst] = ' '
			nDst++
			d.reset() // an unterminated run in front of '/' is discarded
			start, dirty = i+1, false
		case c >= utf8.RuneSelf:
			dirty = true
		}
	}
	return nDst, start, false
}

// hold appends the elements of an unterminated run to the held run.
func (d *decoder) hold(b []byte) {
	for _, c := range b {
		if c >= utf8.RuneSelf || d.overlong {
			continue
		}
		if d.n == maxElements {
			d.overlong = true
			continue
		}
		d.run[d.n] = c
		d.n++
	}
}

func (d *decoder) heldKey() uint8 {
	if d.overlong {
		return noKey
	}
	return packKey(d.run[:], d.n)
}

// finish decodes the held run as if it were followed by a separator.
// It reports false, keeping the run, if dst is too small for the result.
func (d *decoder) finish(dst []byte) (int, bool) {
	r := d.table.reverse[d.heldKey()]
	if r == 0 {
		d.reset()
		return 0, true
	}
	if len(dst) < utf8.RuneLen(r) {
		return 0, false
	}
	d.reset()
	return utf8.EncodeRune(dst, r), true
}

// decodeBuffer decodes all terminated runs of src, writing to sink whenever
// buf is full. It returns the number of bytes consumed.
func (d *decoder) decodeBuffer(sink io.Writer, src, buf []byte) (int, error) {
	consumed := 0
	for {
		nDst, nSrc, full := d.scan(buf, src[consumed:])
		consumed += nSrc
		if nDst > 0 {
			if _, err := sink.Write(buf[:nDst]); err != nil {
				return consumed, err
			}
		}
		if !full {
			return consumed, nil
		}
	}
}

// Decode decodes Morse text with the table of script.
// Unknown symbols are dropped.
func Decode(b []byte, script Script) string {
	return script.Table().Decode(b)
}

// Decode decodes Morse text. Unknown symbols are dropped.
func (t *Table) Decode(b []byte) string {
	d := decoder{table: t}
	buf := make([]byte, min(len(b)+maxDecoded, streamBufferSize))
	var sb strings.Builder
	sb.Grow(len(b) / 2)
	consumed, _ := d.decodeBuffer(&sb, b, buf) // strings.Builder never fails
	d.hold(b[consumed:])
	n, _ := d.finish(buf)
	sb.Write(buf[:n])
	return sb.String()
}

// --- Transformer -----------------------------------------------------------

type decodeTransformer struct {
	d decoder
}

// NewDecoder returns a transformer from Morse text to characters, using
// table t. Unfinished symbols are held inside the transformer between calls
// and decoded when the input ends.
func NewDecoder(t *Table) transform.Transformer {
	return &decodeTransformer{d: decoder{table: t}}
}

func (dt *decodeTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	nDst, nSrc, full := dt.d.scan(dst, src)
	if full {
		return nDst, nSrc, transform.ErrShortDst
	}
	dt.d.hold(src[nSrc:])
	nSrc = len(src)
	if atEOF {
		n, ok := dt.d.finish(dst[nDst:])
		nDst += n
		if !ok {
			return nDst, nSrc, transform.ErrShortDst
		}
	}
	return nDst, nSrc, nil
}

func (dt *decodeTransformer) Reset() {
	dt.d.reset()
}
