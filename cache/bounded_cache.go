package cache

import "sync"
import "strconv"

import "golang.org/x/sync/singleflight"

// Default number of glyph records a [BoundedCache] keeps in memory.
// For a 16px font that's 64*32 bytes of bitmap data.
const DefaultCapacity = 64

// The default hzk glyph cache. It is concurrent-safe, bounded to a
// fixed number of entries and backed by a [Loader] that reads records
// from the font file.
//
// When the cache is full, the entry with the smallest glyph code is
// evicted. Note that this is not an LRU policy: recency of access
// plays no part in victim selection, only key order does.
//
// Concurrent misses on the same code are coalesced: only one loader
// call is in flight per code, and every waiter shares its result.
type BoundedCache struct {
	loader Loader
	capacity int
	flights singleflight.Group
	mutex sync.Mutex
	records *orderedMap
}

// New creates a [BoundedCache] over the given loader, bounded to
// capacity entries. Non-positive capacities fall back to
// [DefaultCapacity].
func New(loader Loader, capacity int) *BoundedCache {
	if capacity <= 0 { capacity = DefaultCapacity }
	return &BoundedCache{
		loader: loader,
		capacity: capacity,
		records: newOrderedMap(capacity),
	}
}

// Gets the bitmap record for the given glyph code, reading it through
// the loader on a miss. See [GlyphCache].
func (self *BoundedCache) Get(code uint16) ([]byte, bool) {
	self.mutex.Lock()
	record, found := self.records.Get(code)
	self.mutex.Unlock()
	if found { return record, true }

	// miss: load outside the lock, one flight per code
	loaded, err, _ := self.flights.Do(strconv.FormatUint(uint64(code), 10),
		func() (any, error) { return self.loader.LoadGlyph(code) },
	)
	if err != nil { return nil, false }
	record = loaded.([]byte)

	self.mutex.Lock()
	defer self.mutex.Unlock()
	prev, found := self.records.Get(code)
	if found { return prev, true } // raced insert, discard our copy
	if self.records.Len() >= self.capacity {
		self.records.EvictMin()
	}
	self.records.Insert(code, record)
	return record, true
}

// Len returns the current number of cached records. Never exceeds the
// cache capacity.
func (self *BoundedCache) Len() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.records.Len()
}

// Capacity returns the maximum number of records the cache may hold.
func (self *BoundedCache) Capacity() int { return self.capacity }

// MinCode returns the smallest cached glyph code, the next eviction
// victim. The bool is false when the cache is empty.
func (self *BoundedCache) MinCode() (uint16, bool) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	if len(self.records.keys) == 0 { return 0, false }
	return self.records.keys[0], true
}
