// Package bucket implements the fixed-capacity key containers of the
// extendible hash table and the arena that owns them.
//
// Buckets model disk pages of a database index: each holds up to a fixed
// number of distinct integer keys and carries a local depth, the number of
// low-order address bits that uniquely identify the directory slots pointing
// at it. Buckets never allocate beyond capacity+1 keys; the extra key is the
// overflow signal the directory reacts to by splitting.
package bucket

import "slices"

// Outcome reports the result of a Bucket insert.
type Outcome uint8

const (
	// Inserted means the key was added and the bucket is within capacity.
	Inserted Outcome = iota

	// Duplicate means the key was already present; the bucket is unchanged.
	Duplicate

	// Overflowed means the key was added and the bucket now holds
	// capacity+1 keys. The key is retained; the caller must split.
	Overflowed
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Inserted:
		return "inserted"
	case Duplicate:
		return "duplicate"
	case Overflowed:
		return "overflowed"
	default:
		return "unknown"
	}
}

// Bucket is a fixed-capacity container of distinct int64 keys with a local
// depth counter. Keys are kept in ascending order so enumeration for dumps
// needs no extra work.
//
// A Bucket is not safe for concurrent use.
type Bucket struct {
	capacity   int
	localDepth int
	keys       []int64
}

// Insert adds key to the bucket. It reports Duplicate without mutating when
// the key is already present, Inserted when the bucket stays within capacity,
// and Overflowed when the insert pushed it to capacity+1 keys. On overflow
// the key is kept in the bucket pending the caller's split.
func (b *Bucket) Insert(key int64) Outcome {
	i, found := slices.BinarySearch(b.keys, key)
	if found {
		return Duplicate
	}
	b.keys = slices.Insert(b.keys, i, key)
	if len(b.keys) <= b.capacity {
		return Inserted
	}
	return Overflowed
}

// Erase removes key and reports whether it was present. Absent keys are a
// silent no-op.
func (b *Bucket) Erase(key int64) bool {
	i, found := slices.BinarySearch(b.keys, key)
	if !found {
		return false
	}
	b.keys = slices.Delete(b.keys, i, i+1)
	return true
}

// Contains reports whether key is present.
func (b *Bucket) Contains(key int64) bool {
	_, found := slices.BinarySearch(b.keys, key)
	return found
}

// Len returns the number of keys currently held.
func (b *Bucket) Len() int {
	return len(b.keys)
}

// Capacity returns the fixed capacity set at allocation.
func (b *Bucket) Capacity() int {
	return b.capacity
}

// Keys returns a copy of the keys in ascending order.
func (b *Bucket) Keys() []int64 {
	return slices.Clone(b.keys)
}

// Drain removes and returns all keys in ascending order. Ownership of the
// returned slice transfers to the caller; the bucket is left empty with its
// storage released so later arena reuse starts clean.
func (b *Bucket) Drain() []int64 {
	ks := b.keys
	b.keys = nil
	return ks
}

// LocalDepth returns the bucket's local depth.
func (b *Bucket) LocalDepth() int {
	return b.localDepth
}

// IncrementDepth raises the local depth by one; called by the directory when
// the bucket splits.
func (b *Bucket) IncrementDepth() {
	b.localDepth++
}

// DecrementDepth lowers the local depth by one; called by the directory when
// the bucket absorbs its merge partner.
func (b *Bucket) DecrementDepth() {
	b.localDepth--
}
