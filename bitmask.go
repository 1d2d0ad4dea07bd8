package scenery

import "math/bits"

// bitmask256 records which component lists (by list ID) an entity is
// attached to. Each bit corresponds to a registered list.
type bitmask256 [4]uint64

// set enables the bit for the given list ID.
func (m *bitmask256) set(bit uint8) {
	i := bit >> 6 // (bit / 64) to find the uint64 index
	o := bit & 63 // (bit % 64) to find the bit offset
	m[i] |= uint64(1) << uint64(o)
}

// unset disables the bit for the given list ID.
func (m *bitmask256) unset(bit uint8) {
	i := bit >> 6
	o := bit & 63
	m[i] &= ^(uint64(1) << uint64(o))
}

// containsBit checks if a specific bit is set in the mask.
func (m bitmask256) containsBit(bit uint8) bool {
	i := bit >> 6
	o := bit & 63
	return (m[i] & (uint64(1) << uint64(o))) != 0
}

// count returns the number of set bits.
func (m bitmask256) count() int {
	return bits.OnesCount64(m[0]) + bits.OnesCount64(m[1]) +
		bits.OnesCount64(m[2]) + bits.OnesCount64(m[3])
}

// forEach calls fn for every set bit in ascending order.
func (m bitmask256) forEach(fn func(bit uint8)) {
	for i, word := range m {
		for word != 0 {
			o := bits.TrailingZeros64(word)
			fn(uint8(i<<6 | o))
			word &= word - 1
		}
	}
}
