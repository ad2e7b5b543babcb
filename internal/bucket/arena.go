package bucket

// ID identifies a bucket within an Arena. Directory slots store IDs rather
// than bucket pointers: repointing a slot is a plain integer write, multiple
// slots may alias one ID without shared-ownership bookkeeping, and teardown
// is a single pass over the arena instead of a deduplicating walk of the
// slot array.
type ID int32

// Arena is the owning store of every bucket in one table. Freed IDs are
// recycled through a free list and their storage reused on the next Alloc.
//
// An Arena is not safe for concurrent use.
type Arena struct {
	buckets []*Bucket
	free    []ID
	live    int
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Alloc creates a bucket with the given capacity and local depth and returns
// its ID, reusing a freed slot when one is available.
func (a *Arena) Alloc(capacity, localDepth int) ID {
	a.live++
	if n := len(a.free); n > 0 {
		id := a.free[n-1]
		a.free = a.free[:n-1]
		b := a.buckets[id]
		b.capacity = capacity
		b.localDepth = localDepth
		b.keys = b.keys[:0]
		return id
	}
	a.buckets = append(a.buckets, &Bucket{capacity: capacity, localDepth: localDepth})
	return ID(len(a.buckets) - 1)
}

// Get returns the bucket for id. The pointer stays valid across later Alloc
// and Free calls; it must not be used after its ID is freed.
func (a *Arena) Get(id ID) *Bucket {
	return a.buckets[id]
}

// Free releases id for reuse. The bucket's key storage is retained for the
// next Alloc. Freeing an ID that is still referenced by a directory slot is
// a caller bug; the arena does not track references.
func (a *Arena) Free(id ID) {
	a.buckets[id].keys = a.buckets[id].keys[:0]
	a.free = append(a.free, id)
	a.live--
}

// Live returns the number of allocated, unfreed buckets.
func (a *Arena) Live() int {
	return a.live
}
