package mmu

import (
	"github.com/sarchlab/vmsim/mem"
	"github.com/sarchlab/vmsim/vm"
	"github.com/sarchlab/vmsim/vm/tlb"
)

// A Builder can build translation components.
type Builder struct {
	source     PageSource
	numFrames  int
	tlbEntries int
}

// MakeBuilder returns a Builder with default parameters: 256 frames
// and a 16-entry TLB.
func MakeBuilder() Builder {
	return Builder{
		numFrames:  vm.NumPages,
		tlbEntries: 16,
	}
}

// WithPageSource sets the provider of non-resident page content.
func (b Builder) WithPageSource(s PageSource) Builder {
	b.source = s
	return b
}

// WithNumFrames sets the number of physical frames. Fewer frames than
// pages makes frame exhaustion reachable.
func (b Builder) WithNumFrames(n int) Builder {
	b.numFrames = n
	return b
}

// WithTLBEntries sets the capacity of the translation cache.
func (b Builder) WithTLBEntries(n int) Builder {
	b.tlbEntries = n
	return b
}

// Build creates a translation component with the given name.
func (b Builder) Build(name string) *Comp {
	if b.source == nil {
		panic("an MMU requires a page source")
	}

	return &Comp{
		name:      name,
		tlb:       tlb.MakeBuilder().WithNumEntries(b.tlbEntries).Build(name + ".TLB"),
		pageTable: vm.NewPageTable(),
		storage:   mem.NewStorage(b.numFrames, vm.PageSize),
		allocator: mem.NewFrameAllocator(b.numFrames),
		source:    b.source,
	}
}
