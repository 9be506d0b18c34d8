package morse

import (
	"io"
	"unicode/utf8"
)

// Size of the input and output buffers of a stream session.
const streamBufferSize = 1 << 15

// EncodeStream encodes UTF-8 text from r to w with the International codebook.
func EncodeStream(r io.Reader, w io.Writer) error {
	return International().EncodeStream(r, w)
}

// EncodeStreamASCII encodes single-byte text from r to w with the
// International codebook.
func EncodeStreamASCII(r io.Reader, w io.Writer) error {
	return International().EncodeStreamASCII(r, w)
}

// DecodeStream decodes Morse text from r to w with the table of script.
func DecodeStream(r io.Reader, w io.Writer, script Script) error {
	return script.Table().DecodeStream(r, w)
}

// EncodeStream encodes UTF-8 text from r to w. Input is read in bounded
// chunks; a UTF-8 sequence cut by a chunk boundary is completed by the next
// read. Invalid UTF-8 is dropped, as is an incomplete sequence at the end of
// the input. Errors from r or w are returned as-is.
func (cb *Codebook) EncodeStream(r io.Reader, w io.Writer) error {
	return cb.encodeStream(r, w, false)
}

// EncodeStreamASCII is like EncodeStream for single-byte text.
func (cb *Codebook) EncodeStreamASCII(r io.Reader, w io.Writer) error {
	return cb.encodeStream(r, w, true)
}

func (cb *Codebook) encodeStream(r io.Reader, w io.Writer, ascii bool) error {
	e := encoder{cb: cb}
	in := make([]byte, streamBufferSize)
	out := make([]byte, max(streamBufferSize, 2*e.room()))
	avail := 0 // carried bytes of an incomplete UTF-8 sequence, then the chunk
	var total int64
	for {
		n, rerr := r.Read(in[avail:])
		avail += n
		total += int64(n)
		atEOF := rerr == io.EOF
		if n > 0 || atEOF {
			used, err := e.encodeBuffer(w, in[:avail], out, ascii, atEOF)
			if err != nil {
				return err
			}
			avail = copy(in, in[used:avail])
			assert(avail < utf8.UTFMax, "morse: encoder left more than an incomplete rune")
		}
		if atEOF {
			break
		}
		if rerr != nil {
			return rerr
		}
	}
	tracer().Debugf("morse: encoded %d bytes with codebook %s", total, cb.name)
	return nil
}

// DecodeStream decodes Morse text from r to w. Input is read in bounded
// chunks; an unfinished symbol at the end of a chunk is moved to the front of
// the buffer and completed by the next read, or decoded when the input ends.
// Errors from r or w are returned as-is.
func (t *Table) DecodeStream(r io.Reader, w io.Writer) error {
	d := decoder{table: t}
	in := make([]byte, streamBufferSize)
	out := make([]byte, streamBufferSize)
	avail := 0 // bytes of an unfinished symbol, then the chunk
	var total int64
	for {
		n, rerr := r.Read(in[avail:])
		avail += n
		total += int64(n)
		if n > 0 {
			used, err := d.decodeBuffer(w, in[:avail], out)
			if err != nil {
				return err
			}
			avail = d.slide(in, used, avail)
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return rerr
		}
	}
	d.hold(in[:avail])
	if n, _ := d.finish(out); n > 0 {
		if _, err := w.Write(out[:n]); err != nil {
			return err
		}
	}
	tracer().Debugf("morse: decoded %d bytes with table %s", total, t.name)
	return nil
}

// slide moves the elements of the unfinished symbol buf[from:to] to the front
// of buf and returns their count. Bytes >= 0x80 are left behind. A symbol
// already too long to decode is not carried; the decoder remembers to drop it.
func (d *decoder) slide(buf []byte, from, to int) int {
	n := 0
	for _, c := range buf[from:to] {
		if c >= utf8.RuneSelf {
			continue
		}
		if n == maxElements {
			d.overlong = true
			return 0
		}
		buf[n] = c
		n++
	}
	return n
}
