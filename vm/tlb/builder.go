package tlb

// A Builder can build translation-lookaside caches.
type Builder struct {
	numEntries int
}

// MakeBuilder returns a Builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		numEntries: 16,
	}
}

// WithNumEntries sets the capacity of the cache to build.
func (b Builder) WithNumEntries(n int) Builder {
	b.numEntries = n
	return b
}

// Build creates a cache with the given name.
func (b Builder) Build(name string) *Comp {
	if b.numEntries <= 0 {
		panic("a TLB must have at least one entry")
	}

	c := &Comp{
		name:    name,
		entries: make([]entry, b.numEntries),
	}
	c.reset()

	return c
}
