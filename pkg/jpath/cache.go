package jpath

import "sync"

// cache is the process-wide JPath parse cache. A single RWMutex matches
// the concurrency model this module commits to: reads (the common case,
// looking up an already-parsed path) run concurrently, writes (parsing a
// path for the first time) take the write lock briefly.
var cache = struct {
	mu sync.RWMutex
	m  map[string]Path
}{m: make(map[string]Path)}

// ParseCached parses raw, consulting and populating the process-wide parse
// cache. The returned Path must be treated as read-only: it may be shared
// with other callers.
func ParseCached(raw string) (Path, error) {
	cache.mu.RLock()
	p, ok := cache.m[raw]
	cache.mu.RUnlock()
	if ok {
		return p, nil
	}

	p, err := Parse(raw)
	if err != nil {
		return nil, err
	}

	cache.mu.Lock()
	cache.m[raw] = p
	cache.mu.Unlock()
	return p, nil
}

// CacheSize returns the number of distinct JPaths currently cached.
func CacheSize() int {
	cache.mu.RLock()
	defer cache.mu.RUnlock()
	return len(cache.m)
}

// CacheClear empties the process-wide parse cache.
func CacheClear() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.m = make(map[string]Path)
}
