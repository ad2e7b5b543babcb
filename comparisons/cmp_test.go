// Package comparisons benchmarks the extendible hash table against
// third-party in-memory maps and ordered trees over the same integer
// workload: sequential fill, point lookup, and insert/remove churn.
//
// The structures differ in guarantees (the concurrent maps synchronize, the
// trees keep order), so the numbers contextualize the directory/bucket
// overhead rather than rank the libraries.
package comparisons

import (
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	godshashmap "github.com/emirpasic/gods/maps/hashmap"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"

	"github.com/tamirms/exthash"
)

const benchmarkItemCount = 1 << 13

// Bucket capacity for the extendible table; sized like a small disk page so
// directory restructuring is exercised during the fill.
const benchBucketCapacity = 64

func setupExtHash(b *testing.B) *exthash.Directory {
	b.Helper()
	d, err := exthash.New(exthash.WithBucketCapacity(benchBucketCapacity))
	if err != nil {
		b.Fatal(err)
	}
	for i := int64(0); i < benchmarkItemCount; i++ {
		d.Insert(i)
	}
	return d
}

func setupHashMap(b *testing.B) *hashmap.Map[uintptr, uintptr] {
	b.Helper()
	m := hashmap.New[uintptr, uintptr]()
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		m.Set(i, i)
	}
	return m
}

func setupHaxMap(b *testing.B) *haxmap.Map[uintptr, uintptr] {
	b.Helper()
	m := haxmap.New[uintptr, uintptr]()
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		m.Set(i, i)
	}
	return m
}

func setupGodsHashMap(b *testing.B) *godshashmap.Map {
	b.Helper()
	m := godshashmap.New()
	for i := int64(0); i < benchmarkItemCount; i++ {
		m.Put(i, struct{}{})
	}
	return m
}

func setupBTree(b *testing.B) *btree.BTree {
	b.Helper()
	tr := btree.New(32)
	for i := 0; i < benchmarkItemCount; i++ {
		tr.ReplaceOrInsert(btree.Int(i))
	}
	return tr
}

func setupLLRB(b *testing.B) *llrb.LLRB {
	b.Helper()
	tr := llrb.New()
	for i := 0; i < benchmarkItemCount; i++ {
		tr.ReplaceOrInsert(llrb.Int(i))
	}
	return tr
}

// ---------------------------------------------------------------------------
// Fill
// ---------------------------------------------------------------------------

func BenchmarkFillExtHash(b *testing.B) {
	for i := 0; i < b.N; i++ {
		d, err := exthash.New(exthash.WithBucketCapacity(benchBucketCapacity))
		if err != nil {
			b.Fatal(err)
		}
		for k := int64(0); k < benchmarkItemCount; k++ {
			d.Insert(k)
		}
	}
}

func BenchmarkFillHashMap(b *testing.B) {
	for i := 0; i < b.N; i++ {
		m := hashmap.New[uintptr, uintptr]()
		for k := uintptr(0); k < benchmarkItemCount; k++ {
			m.Set(k, k)
		}
	}
}

func BenchmarkFillHaxMap(b *testing.B) {
	for i := 0; i < b.N; i++ {
		m := haxmap.New[uintptr, uintptr]()
		for k := uintptr(0); k < benchmarkItemCount; k++ {
			m.Set(k, k)
		}
	}
}

func BenchmarkFillGodsHashMap(b *testing.B) {
	for i := 0; i < b.N; i++ {
		m := godshashmap.New()
		for k := int64(0); k < benchmarkItemCount; k++ {
			m.Put(k, struct{}{})
		}
	}
}

func BenchmarkFillBTree(b *testing.B) {
	for i := 0; i < b.N; i++ {
		tr := btree.New(32)
		for k := 0; k < benchmarkItemCount; k++ {
			tr.ReplaceOrInsert(btree.Int(k))
		}
	}
}

func BenchmarkFillLLRB(b *testing.B) {
	for i := 0; i < b.N; i++ {
		tr := llrb.New()
		for k := 0; k < benchmarkItemCount; k++ {
			tr.ReplaceOrInsert(llrb.Int(k))
		}
	}
}

// ---------------------------------------------------------------------------
// Lookup
// ---------------------------------------------------------------------------

func BenchmarkLookupExtHash(b *testing.B) {
	d := setupExtHash(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !d.Contains(int64(i % benchmarkItemCount)) {
			b.Fail()
		}
	}
}

func BenchmarkLookupHashMap(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := m.Get(uintptr(i % benchmarkItemCount)); !ok {
			b.Fail()
		}
	}
}

func BenchmarkLookupHaxMap(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := m.Get(uintptr(i % benchmarkItemCount)); !ok {
			b.Fail()
		}
	}
}

func BenchmarkLookupGodsHashMap(b *testing.B) {
	m := setupGodsHashMap(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := m.Get(int64(i % benchmarkItemCount)); !ok {
			b.Fail()
		}
	}
}

func BenchmarkLookupBTree(b *testing.B) {
	tr := setupBTree(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !tr.Has(btree.Int(i % benchmarkItemCount)) {
			b.Fail()
		}
	}
}

func BenchmarkLookupLLRB(b *testing.B) {
	tr := setupLLRB(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !tr.Has(llrb.Int(i % benchmarkItemCount)) {
			b.Fail()
		}
	}
}

// ---------------------------------------------------------------------------
// Churn: alternating insert and remove keeps the structures resizing
// ---------------------------------------------------------------------------

func BenchmarkChurnExtHash(b *testing.B) {
	d := setupExtHash(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := int64(benchmarkItemCount + i%benchmarkItemCount)
		d.Insert(k)
		d.Remove(k)
	}
}

func BenchmarkChurnHashMap(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := uintptr(benchmarkItemCount + i%benchmarkItemCount)
		m.Set(k, k)
		m.Del(k)
	}
}

func BenchmarkChurnHaxMap(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := uintptr(benchmarkItemCount + i%benchmarkItemCount)
		m.Set(k, k)
		m.Del(k)
	}
}

func BenchmarkChurnGodsHashMap(b *testing.B) {
	m := setupGodsHashMap(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := int64(benchmarkItemCount + i%benchmarkItemCount)
		m.Put(k, struct{}{})
		m.Remove(k)
	}
}

func BenchmarkChurnBTree(b *testing.B) {
	tr := setupBTree(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := btree.Int(benchmarkItemCount + i%benchmarkItemCount)
		tr.ReplaceOrInsert(k)
		tr.Delete(k)
	}
}

func BenchmarkChurnLLRB(b *testing.B) {
	tr := setupLLRB(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := llrb.Int(benchmarkItemCount + i%benchmarkItemCount)
		tr.ReplaceOrInsert(k)
		tr.Delete(k)
	}
}
