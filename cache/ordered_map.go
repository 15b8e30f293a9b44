package cache

import "sort"

// An orderedMap is a glyph-code-keyed map that also tracks its keys in
// ascending order, so the minimum key can be evicted without scanning.
// It replaces the intrusive balanced tree a lower-level implementation
// would use; at the sizes involved (tens of entries) the sorted slice
// is both smaller and faster.
//
// Not concurrent-safe; [BoundedCache] guards it with its own mutex.
type orderedMap struct {
	entries map[uint16][]byte
	keys []uint16 // ascending
}

func newOrderedMap(capacityHint int) *orderedMap {
	return &orderedMap{
		entries: make(map[uint16][]byte, capacityHint),
		keys: make([]uint16, 0, capacityHint),
	}
}

func (self *orderedMap) Get(key uint16) ([]byte, bool) {
	value, found := self.entries[key]
	return value, found
}

// Insert adds the given entry. Inserting an already present key is a
// no-op and returns false; the caller's value is discarded.
func (self *orderedMap) Insert(key uint16, value []byte) bool {
	_, found := self.entries[key]
	if found { return false }
	self.entries[key] = value
	at := sort.Search(len(self.keys), func(i int) bool { return self.keys[i] >= key })
	self.keys = append(self.keys, 0)
	copy(self.keys[at+1:], self.keys[at:])
	self.keys[at] = key
	return true
}

// EvictMin removes the entry with the smallest key. Returns false on
// an empty map.
func (self *orderedMap) EvictMin() (uint16, bool) {
	if len(self.keys) == 0 { return 0, false }
	min := self.keys[0]
	self.keys = self.keys[1:]
	delete(self.entries, min)
	return min, true
}

func (self *orderedMap) Len() int { return len(self.entries) }
