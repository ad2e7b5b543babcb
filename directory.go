package exthash

import (
	exterrors "github.com/tamirms/exthash/errors"
	"github.com/tamirms/exthash/internal/bits"
	"github.com/tamirms/exthash/internal/bucket"
)

// Directory is an extendible hash table over int64 keys.
//
// The directory is an array of 2^globalDepth slots, each referencing one
// bucket in the arena. A bucket at local depth d is referenced by exactly
// 2^(globalDepth-d) slots, all agreeing on their low d address bits. The
// directory length invariant holds between public operations; Insert and
// Remove restructure the table (extend, split, merge, shrink) internally.
//
// A Directory is not safe for concurrent use. No operation blocks.
type Directory struct {
	globalDepth    int
	bucketCapacity int
	arena          *bucket.Arena
	slots          []bucket.ID
	numKeys        int
}

// New creates a Directory. By default it starts with a single slot and
// buckets of capacity 2; see WithBucketCapacity and WithGlobalDepth.
func New(opts ...Option) (*Directory, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.bucketCapacity < 1 {
		return nil, exterrors.ErrInvalidBucketCapacity
	}
	if cfg.globalDepth < 0 || cfg.globalDepth > bits.MaxDepth {
		return nil, exterrors.ErrDepthTooLarge
	}

	d := &Directory{
		globalDepth:    cfg.globalDepth,
		bucketCapacity: cfg.bucketCapacity,
		arena:          bucket.NewArena(),
		slots:          make([]bucket.ID, 1<<cfg.globalDepth),
	}
	for i := range d.slots {
		d.slots[i] = d.arena.Alloc(cfg.bucketCapacity, cfg.globalDepth)
	}
	return d, nil
}

// Insert adds key to the table and returns the slot index where the key
// resides afterwards. Inserting a present key returns ErrDuplicateKey and
// leaves the table unchanged (the returned slot is still the key's address).
//
// An insert that overflows a bucket splits it, first doubling the directory
// when the bucket already owns every addressing bit. Splitting drains the
// bucket and re-inserts every drained key through this same entry point, so
// a skewed key set can cascade through several consecutive extends before
// the call returns.
func (d *Directory) Insert(key int64) (int, error) {
	slot := bits.SlotIndex(key, d.globalDepth)
	b := d.arena.Get(d.slots[slot])

	switch b.Insert(key) {
	case bucket.Duplicate:
		return slot, exterrors.ErrDuplicateKey
	case bucket.Overflowed:
		if b.LocalDepth() == d.globalDepth {
			d.extend()
		}
		d.split(slot)
	}
	d.numKeys++
	// Cascaded splits may have deepened the directory; the key's address is
	// its low bits at whatever depth the cascade settled on.
	return bits.SlotIndex(key, d.globalDepth), nil
}

// Remove deletes key from the table. Removing an absent key is a no-op.
//
// After the erase, the bucket and its buddy (image) bucket are merged when
// they are distinct and both hold at most capacity/2 keys; the bucket at the
// lower slot survives and absorbs the other's keys. Merging is attempted at
// most once per call. Finally, if every bucket's local depth sits one below
// the global depth, the directory shrinks to half its length.
func (d *Directory) Remove(key int64) {
	slot := bits.SlotIndex(key, d.globalDepth)
	image := bits.ImageIndex(slot, d.globalDepth)

	if d.arena.Get(d.slots[slot]).Erase(key) {
		d.numKeys--
	}

	// The original formulation frees the higher bucket of the pair even when
	// both slots alias a single bucket (local depth below global depth),
	// leaving a live slot pointing at released storage. A merge needs two
	// buckets, so alias pairs are skipped.
	if image != slot && d.slots[image] != d.slots[slot] {
		half := d.bucketCapacity / 2
		if d.arena.Get(d.slots[slot]).Len() <= half && d.arena.Get(d.slots[image]).Len() <= half {
			d.merge(slot, image)
		}
	}

	if d.globalDepth > 0 && d.uniformLocalDepth() == d.globalDepth-1 {
		d.shrink()
	}
}

// Contains reports whether key is present.
func (d *Directory) Contains(key int64) bool {
	slot := bits.SlotIndex(key, d.globalDepth)
	return d.arena.Get(d.slots[slot]).Contains(key)
}

// Len returns the number of keys in the table.
func (d *Directory) Len() int {
	return d.numKeys
}

// GlobalDepth returns the current global depth.
func (d *Directory) GlobalDepth() int {
	return d.globalDepth
}

// NumSlots returns the directory length, always 2^GlobalDepth().
func (d *Directory) NumSlots() int {
	return len(d.slots)
}

// NumBuckets returns the number of distinct buckets referenced by the
// directory.
func (d *Directory) NumBuckets() int {
	return d.arena.Live()
}

// BucketCapacity returns the fixed per-bucket capacity.
func (d *Directory) BucketCapacity() int {
	return d.bucketCapacity
}

// extend doubles the directory. Every new slot in the upper half mirrors the
// bucket its address resolved to at the old depth, so no bucket's ownership
// changes; the extra address bit only becomes meaningful at the next split.
func (d *Directory) extend() {
	oldDepth := d.globalDepth
	d.globalDepth++
	for i := 1 << oldDepth; i < 1<<d.globalDepth; i++ {
		d.slots = append(d.slots, d.slots[bits.SlotIndex(int64(i), oldDepth)])
	}
}

// split resolves an overflow at slot by carving a fresh bucket out of the
// overflowed one. A bucket at local depth d owns every slot agreeing with
// it on the low d bits; the next bit up partitions that set, and the fresh
// bucket takes the slots where it is set while the overflowed bucket keeps
// the rest. Drained keys are re-inserted through Insert so a bucket that
// still collides overflows again and the cascade continues.
//
// Repointing the full slot set is what keeps the reference-count invariant
// (2^(globalDepth-localDepth) slots per bucket) across splits of buckets
// whose local depth lags the global depth by more than one.
func (d *Directory) split(slot int) {
	b := d.arena.Get(d.slots[slot])
	oldDepth := b.LocalDepth()
	newID := d.arena.Alloc(d.bucketCapacity, oldDepth+1)

	low := slot & (1<<oldDepth - 1)
	for i := low + 1<<oldDepth; i < len(d.slots); i += 2 << oldDepth {
		d.slots[i] = newID
	}

	drained := b.Drain()
	b.IncrementDepth()

	d.numKeys -= len(drained)
	for _, k := range drained {
		d.Insert(k)
	}
}

// merge combines the buckets at slot and image: the bucket at the lower slot
// index survives, absorbs the higher bucket's keys, and loses one bit of
// local depth; the higher bucket is released and its slot repointed.
// Both buckets hold at most capacity/2 keys, so absorption cannot overflow.
//
// A buddy pair only references two distinct buckets when both sit at local
// depth equal to the global depth: a shallower bucket's slot set spans both
// buddies, which the caller's alias check already rejects. Each bucket of
// the pair is therefore referenced by exactly its own slot, and freeing the
// higher one cannot strand a reference elsewhere in the directory.
func (d *Directory) merge(slot, image int) {
	lo, hi := slot, image
	if lo > hi {
		lo, hi = hi, lo
	}
	survivor := d.arena.Get(d.slots[lo])
	for _, k := range d.arena.Get(d.slots[hi]).Keys() {
		survivor.Insert(k)
	}
	d.arena.Free(d.slots[hi])
	d.slots[hi] = d.slots[lo]
	survivor.DecrementDepth()
}

// uniformLocalDepth returns the local depth shared by every bucket, or -1
// when they differ. The scan covers all slots on every removal; shrink
// timing depends on this global check, so it is not narrowed to the merged
// pair. TODO: maintain a per-depth bucket count to make this O(1) for large
// directories without changing when shrinks fire.
func (d *Directory) uniformLocalDepth() int {
	first := d.arena.Get(d.slots[0]).LocalDepth()
	for _, id := range d.slots[1:] {
		if d.arena.Get(id).LocalDepth() != first {
			return -1
		}
	}
	return first
}

// shrink halves the directory. Valid only when every bucket's local depth is
// globalDepth-1: each bucket is then referenced once from each half, so
// discarding the upper half drops only mirror references.
func (d *Directory) shrink() {
	d.globalDepth--
	d.slots = d.slots[:1<<d.globalDepth]
}
