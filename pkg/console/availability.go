package console

import "time"

// availabilityTTL is the freshness window after which a cached availability
// value must be re-verified upstream.
const availabilityTTL = 10 * time.Minute

type availabilityEntry struct {
	available bool
	syncedAt  time.Time
}

// cachedAvailability returns the cached availability for a product when the
// entry exists and is still fresh.
func (c *Client) cachedAvailability(id int) (bool, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.availability[id]
	if !ok || time.Since(entry.syncedAt) >= availabilityTTL {
		return false, false
	}
	return entry.available, true
}

// storeAvailability records a freshly observed availability value. Entries are
// keyed by product id, last write wins, and are never purged; stale entries
// simply age out of relevance.
func (c *Client) storeAvailability(id int, available bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.availability[id] = availabilityEntry{available: available, syncedAt: time.Now()}
}
