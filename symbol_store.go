package morse

import (
	"encoding/binary"
	"fmt"
)

const (
	slotWidth          = 8 // bytes of pattern held in one uint64 slot
	maxPatternLength   = 0xFF
	initialSymbolSlots = 1 // slot 0 is "absent"
)

// symbolStore keeps the Morse patterns of a codebook indexed by pattern id.
// Patterns of up to 8 bytes are packed into a uint64 slot and written with a
// single store. Longer patterns (multi-symbol expansions) are copied from
// their text. Identical patterns share an id.
type symbolStore struct {
	slots   []uint64 // little endian, zero padded
	length  []uint8
	text    []string
	ids     map[string]uint16
	longest int
}

func packSlot(pattern string) uint64 {
	var b [slotWidth]byte
	copy(b[:], pattern)
	return binary.LittleEndian.Uint64(b[:])
}

func newSymbolStore() *symbolStore {
	return &symbolStore{
		slots:  make([]uint64, initialSymbolSlots),
		length: make([]uint8, initialSymbolSlots),
		text:   make([]string, initialSymbolSlots),
		ids:    make(map[string]uint16),
	}
}

// Put stores a pattern and returns its id. Ids are never 0.
func (s *symbolStore) Put(pattern string) (uint16, error) {
	if id, ok := s.ids[pattern]; ok {
		return id, nil
	}
	if pattern == "" {
		return 0, fmt.Errorf("empty pattern")
	}
	if len(pattern) > maxPatternLength {
		return 0, fmt.Errorf("pattern too long (%d bytes): %.16q...", len(pattern), pattern)
	}
	if len(s.text) > 0xFFFF {
		return 0, fmt.Errorf("symbol store full")
	}
	id := uint16(len(s.text))
	s.slots = append(s.slots, packSlot(pattern))
	s.length = append(s.length, uint8(len(pattern)))
	s.text = append(s.text, pattern)
	s.ids[pattern] = id
	s.longest = max(s.longest, len(pattern))
	return id, nil
}

// Pattern returns the pattern text for an id, or "" for an unknown id.
func (s *symbolStore) Pattern(id uint16) string {
	if int(id) >= len(s.text) {
		return ""
	}
	return s.text[id]
}

// Runway is the number of bytes of dst a call to Write may touch.
func (s *symbolStore) Runway() int {
	return max(slotWidth, s.longest)
}

// Write puts the pattern for id at the start of dst and returns its length.
// Short patterns are written as a whole slot, so dst must provide Runway
// bytes; bytes past the returned length are garbage.
func (s *symbolStore) Write(dst []byte, id uint16) int {
	n := int(s.length[id])
	if n <= slotWidth {
		binary.LittleEndian.PutUint64(dst, s.slots[id])
		return n
	}
	return copy(dst, s.text[id])
}

// Len returns the number of distinct patterns.
func (s *symbolStore) Len() int {
	return len(s.text) - initialSymbolSlots
}
