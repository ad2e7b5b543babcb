// Package exthash implements an in-memory extendible hash table: a
// dynamically resizable index mapping integer keys to fixed-capacity
// buckets, modelling disk-bucket database indexing without physical I/O.
//
// A directory of 2^globalDepth slots routes each key by its low-order bits
// to a bucket. Buckets that overflow are split, doubling the directory when
// no spare addressing bit is available; buckets that drain are merged with
// their buddy and the directory halves once every addressing bit is
// uniformly unused.
//
// # Basic Usage
//
//	dir, err := exthash.New(exthash.WithBucketCapacity(4))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	slot, err := dir.Insert(42)
//	if errors.Is(err, exterrors.ErrDuplicateKey) {
//	    // key was already present; slot is still its address
//	}
//	dir.Remove(42)
//
//	for _, s := range dir.Dump() {
//	    fmt.Printf("slot %d/%d depth=%d keys=%v\n", s.Slot, s.NumSlots, s.LocalDepth, s.Keys)
//	}
//
// # Package Structure
//
// The implementation is organized as follows:
//
//   - Public API: directory.go (New, Insert, Remove, Contains), dump.go (Dump, Checksum, Stats)
//   - Configuration: options.go (Option, With* functions)
//   - Addressing: internal/bits (slot and buddy-slot arithmetic)
//   - Storage: internal/bucket (fixed-capacity buckets, owning arena)
//   - Errors: errors (exported sentinels)
//
// The table is fully synchronous and not safe for concurrent use.
package exthash
