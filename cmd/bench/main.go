// Bench is a benchmarking tool for measuring extendible hash table insert
// and remove throughput, directory growth, and memory usage.
//
// Usage:
//
//	go run ./cmd/bench -keys 1000000 -capacity 64 -keygen murmur3
//
// Flags:
//
//	-keys       Number of keys per table (default: 1,000,000)
//	-capacity   Bucket capacity (default: 64)
//	-depth      Initial global depth (default: 0)
//	-tables     Number of independent tables built in parallel (default: 1)
//	-keygen     Key stream: seq, murmur3 or xxh3 (default: murmur3)
//	-remove     Fraction of keys removed after the build (default: 0.5)
//	-cpuprofile Write a CPU profile of the build phase
//
// Each table is driven by exactly one goroutine; parallelism across tables
// only measures aggregate throughput of independent instances.
package main

import (
	"context"
	"encoding/binary"
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"

	"github.com/tamirms/exthash"
)

// getMaxRSS returns the maximum resident set size in bytes.
// Uses getrusage(RUSAGE_SELF) which tracks peak RSS since process start.
func getMaxRSS() uint64 {
	var rusage unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &rusage); err != nil {
		return 0
	}
	// On macOS, Maxrss is in bytes. On Linux, it's in kilobytes.
	maxRSS := uint64(rusage.Maxrss)
	if runtime.GOOS == "linux" {
		maxRSS *= 1024
	}
	return maxRSS
}

// keygen maps a sequence number to a key. The hashed generators spread keys
// across the address bits; seq keeps them dense in the low bits, which is
// the directory's best case.
type keygen func(i uint64) int64

func newKeygen(name string, table int) (keygen, error) {
	// Distinct tables get distinct streams via a per-table seed.
	seed := uint64(table)*0x9E3779B97F4A7C15 + 1
	switch name {
	case "seq":
		return func(i uint64) int64 { return int64(seed + i) }, nil
	case "murmur3":
		return func(i uint64) int64 {
			var buf [8]byte
			binary.LittleEndian.PutUint64(buf[:], seed^i)
			return int64(murmur3.Sum64(buf[:]))
		}, nil
	case "xxh3":
		return func(i uint64) int64 {
			var buf [8]byte
			binary.LittleEndian.PutUint64(buf[:], seed^i)
			return int64(xxh3.Hash(buf[:]))
		}, nil
	default:
		return nil, fmt.Errorf("unknown keygen %q (want seq, murmur3 or xxh3)", name)
	}
}

type tableResult struct {
	inserted   int
	duplicates int
	removed    int
	buildTime  time.Duration
	removeTime time.Duration
	stats      *exthash.Stats
}

func runTable(ctx context.Context, numKeys, capacity, depth int, gen keygen, removeFrac float64) (*tableResult, error) {
	dir, err := exthash.New(
		exthash.WithBucketCapacity(capacity),
		exthash.WithGlobalDepth(depth),
	)
	if err != nil {
		return nil, err
	}

	res := &tableResult{}
	buildStart := time.Now()
	for i := 0; i < numKeys; i++ {
		if i%10000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if _, err := dir.Insert(gen(uint64(i))); err != nil {
			// Hashed key streams can collide; count rather than fail.
			res.duplicates++
			continue
		}
		res.inserted++
	}
	res.buildTime = time.Since(buildStart)

	toRemove := int(float64(numKeys) * removeFrac)
	removeStart := time.Now()
	for i := 0; i < toRemove; i++ {
		dir.Remove(gen(uint64(i)))
	}
	res.removeTime = time.Since(removeStart)
	res.removed = toRemove
	res.stats = dir.Stats()
	return res, nil
}

func main() {
	keysFlag := flag.Int("keys", 1_000_000, "number of keys per table")
	capacityFlag := flag.Int("capacity", 64, "bucket capacity")
	depthFlag := flag.Int("depth", 0, "initial global depth")
	tablesFlag := flag.Int("tables", 1, "number of independent tables built in parallel")
	keygenFlag := flag.String("keygen", "murmur3", "key stream: seq, murmur3 or xxh3")
	removeFlag := flag.Float64("remove", 0.5, "fraction of keys removed after the build")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file")
	flag.Parse()

	if *tablesFlag < 1 {
		fmt.Println("-tables must be at least 1")
		os.Exit(1)
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Printf("could not create CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = f.Close() }()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Printf("could not start CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	fmt.Printf("Building %d table(s): %d keys each, capacity %d, keygen %s\n",
		*tablesFlag, *keysFlag, *capacityFlag, *keygenFlag)

	results := make([]*tableResult, *tablesFlag)
	g, ctx := errgroup.WithContext(context.Background())
	wallStart := time.Now()
	for table := 0; table < *tablesFlag; table++ {
		g.Go(func() error {
			gen, err := newKeygen(*keygenFlag, table)
			if err != nil {
				return err
			}
			res, err := runTable(ctx, *keysFlag, *capacityFlag, *depthFlag, gen, *removeFlag)
			if err != nil {
				return err
			}
			results[table] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Printf("benchmark failed: %v\n", err)
		os.Exit(1)
	}
	wall := time.Since(wallStart)

	var inserted, duplicates, removed int
	for table, res := range results {
		inserted += res.inserted
		duplicates += res.duplicates
		removed += res.removed
		s := res.stats
		fmt.Printf("table %d: build %v (%.0f inserts/s), remove %v (%.0f removes/s)\n",
			table, res.buildTime.Round(time.Millisecond),
			float64(res.inserted)/res.buildTime.Seconds(),
			res.removeTime.Round(time.Millisecond),
			float64(res.removed)/res.removeTime.Seconds())
		fmt.Printf("table %d: depth %d, %d slots, %d buckets, local depth [%d, %d], load %.3f\n",
			table, s.GlobalDepth, s.NumSlots, s.NumBuckets,
			s.MinLocalDepth, s.MaxLocalDepth, s.LoadFactor)
	}

	fmt.Printf("total: %d inserted (%d duplicate), %d removed in %v\n",
		inserted, duplicates, removed, wall.Round(time.Millisecond))
	fmt.Printf("max RSS: %.1f MiB\n", float64(getMaxRSS())/(1<<20))
}
