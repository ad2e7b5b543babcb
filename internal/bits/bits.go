// Package bits provides the addressing arithmetic for the extendible hash
// directory: slot indexing by low-order key bits and buddy (image) slot
// computation.
package bits

// MaxDepth bounds the global depth so that a directory of 2^depth slots
// always fits in an int slice index on 32-bit platforms.
const MaxDepth = 30

// SlotIndex returns the directory slot for key at the given depth: the low
// depth bits of the key's two's complement value. For non-negative keys this
// equals key mod 2^depth; masking keeps it total for negative keys as well.
func SlotIndex(key int64, depth int) int {
	return int(uint64(key) & (uint64(1)<<depth - 1))
}

// ImageIndex returns the buddy slot of slot in a directory of global depth
// globalDepth: the slot that differs only in the most significant address bit
// currently in use. The two halves of the directory are not symmetric once
// the directory has doubled more than once, which is why the branch depends
// on which half slot lies in.
//
// A directory of depth 0 has a single slot and no buddy; the slot is its own
// image, which disables merging against it.
func ImageIndex(slot, globalDepth int) int {
	if globalDepth == 0 {
		return slot
	}
	oldHalf := 1 << (globalDepth - 1)
	if slot < oldHalf {
		return 1<<globalDepth - (oldHalf - slot)
	}
	return slot - oldHalf
}
