package service

import (
	"sort"
	"sync"
)

// RefLocks serializes writes per record key. Reference-list updates
// are read-modify-write, so two concurrent creations under the same
// parent would otherwise race and one append could be lost.
type RefLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewRefLocks() *RefLocks {
	return &RefLocks{locks: make(map[string]*sync.Mutex)}
}

func (k *RefLocks) get(key string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	return m
}

// Lock acquires the locks for the given keys in sorted order, so callers
// holding overlapping key sets cannot deadlock. The returned function
// releases them in reverse order.
func (k *RefLocks) Lock(keys ...string) func() {
	sorted := make([]string, len(keys))
	copy(sorted, keys)
	sort.Strings(sorted)

	acquired := make([]*sync.Mutex, 0, len(sorted))
	for i, key := range sorted {
		if i > 0 && key == sorted[i-1] {
			continue // same key requested twice
		}
		m := k.get(key)
		m.Lock()
		acquired = append(acquired, m)
	}

	return func() {
		for i := len(acquired) - 1; i >= 0; i-- {
			acquired[i].Unlock()
		}
	}
}
