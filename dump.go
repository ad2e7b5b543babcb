package exthash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// SlotInfo describes one directory slot for diagnostics.
type SlotInfo struct {
	Slot       int     // slot index
	NumSlots   int     // total directory length at dump time
	LocalDepth int     // local depth of the referenced bucket
	Keys       []int64 // bucket keys in ascending order
}

// Stats holds table statistics.
type Stats struct {
	NumKeys       int
	NumSlots      int
	NumBuckets    int
	GlobalDepth   int
	MinLocalDepth int
	MaxLocalDepth int
	LoadFactor    float64 // keys per bucket slot of capacity
}

// Dump enumerates every directory slot with its bucket's local depth and
// ascending keys. Slots referencing the same bucket repeat its contents, one
// entry per slot; diagnostic use only.
func (d *Directory) Dump() []SlotInfo {
	out := make([]SlotInfo, len(d.slots))
	for i, id := range d.slots {
		b := d.arena.Get(id)
		out[i] = SlotInfo{
			Slot:       i,
			NumSlots:   len(d.slots),
			LocalDepth: b.LocalDepth(),
			Keys:       b.Keys(),
		}
	}
	return out
}

// Checksum returns an xxhash digest of the table's observable state: global
// depth, directory length, and each slot's local depth and keys. Bucket
// identities are excluded, so two tables that dump identically produce the
// same checksum regardless of allocation history.
func (d *Directory) Checksum() uint64 {
	h := xxhash.New()
	var buf [8]byte

	writeU64 := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}

	writeU64(uint64(d.globalDepth))
	writeU64(uint64(len(d.slots)))
	for _, id := range d.slots {
		b := d.arena.Get(id)
		writeU64(uint64(b.LocalDepth()))
		writeU64(uint64(b.Len()))
		for _, k := range b.Keys() {
			writeU64(uint64(k))
		}
	}
	return h.Sum64()
}

// Stats returns summary statistics for the table.
func (d *Directory) Stats() *Stats {
	minDepth, maxDepth := d.globalDepth, 0
	for _, id := range d.slots {
		ld := d.arena.Get(id).LocalDepth()
		if ld < minDepth {
			minDepth = ld
		}
		if ld > maxDepth {
			maxDepth = ld
		}
	}
	capacity := d.arena.Live() * d.bucketCapacity
	var load float64
	if capacity > 0 {
		load = float64(d.numKeys) / float64(capacity)
	}
	return &Stats{
		NumKeys:       d.numKeys,
		NumSlots:      len(d.slots),
		NumBuckets:    d.arena.Live(),
		GlobalDepth:   d.globalDepth,
		MinLocalDepth: minDepth,
		MaxLocalDepth: maxDepth,
		LoadFactor:    load,
	}
}
