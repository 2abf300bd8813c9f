// Package tlb provides the translation-lookaside cache that shortcuts
// page-table resolutions for recently inserted pages.
package tlb

import (
	"sync/atomic"

	"github.com/sarchlab/vmsim/vm"
)

type entry struct {
	pageNumber uint64
	frame      vm.Frame
	valid      bool
}

// Comp is a fixed-capacity cache of page-to-frame mappings. Insertion
// overwrites slots in round-robin order, so the entry that has lived
// in the cache the longest is always the one evicted, regardless of
// how recently it was looked up.
type Comp struct {
	name string

	entries []entry
	cursor  int

	hitCount atomic.Uint64
}

// Name returns the name of the cache.
func (c *Comp) Name() string {
	return c.name
}

// Lookup scans the cache for the page in ascending slot order and
// returns the frame of the first valid match. The bool return value
// indicates a hit. A hit increments the hit counter.
func (c *Comp) Lookup(pageNumber uint64) (vm.Frame, bool) {
	for _, e := range c.entries {
		if e.valid && e.pageNumber == pageNumber {
			c.hitCount.Add(1)
			return e.frame, true
		}
	}

	return vm.InvalidFrame, false
}

// Insert writes the mapping into the slot under the write cursor,
// unconditionally evicting whatever occupied it, and advances the
// cursor. A page that is already cached under an older slot is not
// deduplicated; the older entry stays valid until its slot is
// recycled.
func (c *Comp) Insert(pageNumber uint64, frame vm.Frame) {
	c.entries[c.cursor] = entry{
		pageNumber: pageNumber,
		frame:      frame,
		valid:      true,
	}

	c.cursor = (c.cursor + 1) % len(c.entries)
}

// HitCount returns the number of lookups served by the cache so far.
func (c *Comp) HitCount() uint64 {
	return c.hitCount.Load()
}

// NumEntries returns the capacity of the cache.
func (c *Comp) NumEntries() int {
	return len(c.entries)
}

// reset invalidates all the entries and rewinds the write cursor.
func (c *Comp) reset() {
	for i := range c.entries {
		c.entries[i] = entry{
			pageNumber: 0,
			frame:      vm.InvalidFrame,
			valid:      false,
		}
	}

	c.cursor = 0
}
