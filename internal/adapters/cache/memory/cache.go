package memory

import (
	"sync"

	"github.com/bnema/petition-tracker/internal/domain"
	"github.com/bnema/petition-tracker/internal/ports"
)

// DatasetCache holds fetched series for the lifetime of a detail view. It
// never evicts on its own.
type DatasetCache struct {
	mu      sync.RWMutex
	entries map[domain.DatasetKey]domain.Dataset
}

var _ ports.DatasetCache = (*DatasetCache)(nil)

func NewDatasetCache() *DatasetCache {
	return &DatasetCache{entries: map[domain.DatasetKey]domain.Dataset{}}
}

func (c *DatasetCache) Get(key domain.DatasetKey) (domain.Dataset, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	dataset, ok := c.entries[key]
	if !ok {
		return domain.Dataset{}, false
	}

	return dataset.Clone(), true
}

func (c *DatasetCache) Put(key domain.DatasetKey, dataset domain.Dataset) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = dataset.Clone()
}

func (c *DatasetCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = map[domain.DatasetKey]domain.Dataset{}
}

func (c *DatasetCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
