package exthash

// defaultBucketCapacity matches the classic two-entry disk page used by the
// textbook extendible hashing examples.
const defaultBucketCapacity = 2

// Option is a functional option for configuring a Directory.
type Option func(*config)

type config struct {
	bucketCapacity int
	globalDepth    int
}

func defaultConfig() *config {
	return &config{
		bucketCapacity: defaultBucketCapacity,
		globalDepth:    0,
	}
}

// WithBucketCapacity sets the fixed capacity of every bucket.
// The capacity must be at least 1.
func WithBucketCapacity(n int) Option {
	return func(c *config) {
		c.bucketCapacity = n
	}
}

// WithGlobalDepth sets the initial global depth. The directory starts with
// 2^d slots, one bucket per slot, each at local depth d. Default is 0: a
// single slot backed by a single bucket.
func WithGlobalDepth(d int) Option {
	return func(c *config) {
		c.globalDepth = d
	}
}
