package quadtree

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/ristretto/v2"
)

// cacheKey identifies one memoized evolve result: a node handle paired with
// the jump exponent it was evolved by, hashed into the single uint64 that
// ristretto's generic Cache requires as a key.
func cacheKey(h Handle, k int) uint64 {
	var buf [9]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(h))
	buf[8] = uint8(k)
	return xxhash.Sum64(buf[:])
}

// Cache is the memoized (node, k) -> evolved-node table described in §4.4.
// It is backed by ristretto's approximate-LRU admission policy rather than
// an exact map: under memory pressure a live entry may be evicted and
// silently recomputed on the next lookup, which is safe because evolve
// results are pure functions of (h, k) and the arena never invalidates a
// handle once interned.
type Cache struct {
	rc      *ristretto.Cache[uint64, Handle]
	metrics *Metrics
}

// NewCache builds a result cache admitting up to maxEntries entries. A
// nil Metrics disables instrumentation.
func NewCache(maxEntries int64, m *Metrics) (*Cache, error) {
	if maxEntries <= 0 {
		maxEntries = 1 << 20
	}
	rc, err := ristretto.NewCache(&ristretto.Config[uint64, Handle]{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	return &Cache{rc: rc, metrics: m}, nil
}

// Get consults the cache for a memoized evolve(h, k) result.
func (c *Cache) Get(h Handle, k int) (Handle, bool) {
	v, ok := c.rc.Get(cacheKey(h, k))
	if c.metrics != nil {
		if ok {
			c.metrics.CacheHits.Inc()
		} else {
			c.metrics.CacheMiss.Inc()
		}
	}
	return v, ok
}

// Set stores an evolve(h, k) result, cost 1 per entry.
func (c *Cache) Set(h Handle, k int, result Handle) {
	c.rc.Set(cacheKey(h, k), result, 1)
	if c.metrics != nil {
		c.metrics.CacheSize.Set(float64(c.rc.Metrics.KeysAdded() - c.rc.Metrics.KeysEvicted()))
	}
}

// Close releases the cache's background goroutines.
func (c *Cache) Close() {
	c.rc.Close()
}
