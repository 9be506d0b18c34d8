/*
Package pagemap implements a sparse map from BMP code points to small ids.

It is a two-level page table: the high byte of a code point selects a page,
the low byte selects a slot inside the page. Scripts occupy few contiguous
Unicode blocks, so a map for all the scripts of a Morse codebook allocates
only a handful of pages.

Lookup is O(1) with two array reads.

Memory:
  - Top: 256 * 2 = 512 bytes
  - Each populated page: 256 * 2 = 512 bytes
*/
package pagemap

// Map maps BMP code points (0..0xFFFF) to ids (uint16).
// Id 0 means "absent". The zero value is an empty map ready to use.
type Map struct {
	top   [256]uint16 // page index (1-based); 0 means none
	pages []uint16    // flat: NumPages*256
}

// Lookup returns the id for code point r, or 0 if r is absent or outside the BMP.
func (m *Map) Lookup(r rune) uint16 {
	if r < 0 || r > 0xFFFF {
		return 0
	}
	pi := m.top[r>>8]
	if pi == 0 {
		return 0
	}
	base := int(pi-1) << 8 // *256
	return m.pages[base+int(r&0xFF)]
}

// Set maps r to id. An id of 0 clears the mapping.
// It returns false if r is outside the BMP.
func (m *Map) Set(r rune, id uint16) bool {
	if r < 0 || r > 0xFFFF {
		return false
	}
	hi := r >> 8
	pi := m.top[hi]
	if pi == 0 {
		if id == 0 {
			return true
		}
		pi = m.ensurePage(hi)
	}
	base := int(pi-1) << 8
	m.pages[base+int(r&0xFF)] = id
	return true
}

// NumPages returns the number of allocated pages.
func (m *Map) NumPages() int { return len(m.pages) >> 8 }

// Len returns the number of code points with a non-zero id.
func (m *Map) Len() int {
	n := 0
	for _, id := range m.pages {
		if id != 0 {
			n++
		}
	}
	return n
}

// ensurePage allocates the page for high byte hi if missing and returns its
// 1-based index.
func (m *Map) ensurePage(hi rune) uint16 {
	if pi := m.top[hi]; pi != 0 {
		return pi
	}
	m.pages = append(m.pages, make([]uint16, 256)...)
	pi := uint16(len(m.pages) >> 8) // number of pages, 1-based index
	m.top[hi] = pi
	return pi
}
