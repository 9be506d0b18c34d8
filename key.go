package morse

import "encoding/binary"

const (
	maxElements = 7               // longest symbol a key can hold
	keyRunway   = maxElements + 1 // bytes read by the fast packer
	noKey       = 0               // never produced for a valid run; always unmapped
	emptyKey    = 1               // zero-length run
)

const (
	lsbMask     = 0x0101010101010101 // low bit of every byte
	gatherMagic = 0x0102040810204080 // moves bit 0 of byte i to bit 56+i
)

// packKey converts a run of n dots and dashes, starting at b[0], into a key.
// Only the low bit of each byte is significant ('.' is 0x2e, '-' is 0x2d).
// Element i ends up in bit i, and bit n is set as a sentinel, so that runs of
// different lengths never share a key.
//
// packKey reads 8 bytes regardless of n; b must provide that runway.
func packKey(b []byte, n int) uint8 {
	assert(len(b) >= keyRunway, "morse: fast key packer called without 8 bytes of runway")
	assert(n <= maxElements, "morse: run too long for key packer")
	a := binary.LittleEndian.Uint64(b) & lsbMask
	a = (a * gatherMagic) >> 56
	a &^= 0xff << n
	// the low byte of lsbMask is 0x01, so this sets the sentinel bit n
	a |= lsbMask << n
	return uint8(a)
}

// packKeySafe computes the same key as packKey without reading past b[n-1].
// If there is enough runway it delegates to packKey.
func packKeySafe(b []byte, n int) uint8 {
	assert(n <= len(b), "morse: run exceeds buffer")
	assert(n <= maxElements, "morse: run too long for key packer")
	if n+keyRunway <= len(b) {
		return packKey(b, n)
	}
	key := uint8(1)
	for i := n - 1; i >= 0; i-- {
		key = key<<1 | b[i]&1
	}
	return key
}

// symbolKey computes the key of a textual symbol such as "-.-.". It is used
// when building tables, not on the decoding path.
func symbolKey(symbol string) (uint8, bool) {
	if len(symbol) == 0 || len(symbol) > maxElements {
		return noKey, false
	}
	for i := 0; i < len(symbol); i++ {
		if symbol[i] != '.' && symbol[i] != '-' {
			return noKey, false
		}
	}
	return packKeySafe([]byte(symbol), len(symbol)), true
}

// keySymbol is the inverse of symbolKey.
func keySymbol(key uint8) string {
	if key < emptyKey {
		return ""
	}
	n := 7
	for key&(1<<n) == 0 {
		n--
	}
	b := make([]byte, n)
	for i := 0; i < n; i++ {
		if key&(1<<i) == 0 {
			b[i] = '.'
		} else {
			b[i] = '-'
		}
	}
	return string(b)
}
