// Package mmu provides the translation component that drives the TLB,
// the page table, the frame allocator, and the backing store to turn
// logical addresses into physical memory locations.
package mmu

import (
	"sync/atomic"

	"github.com/sarchlab/vmsim/mem"
	"github.com/sarchlab/vmsim/vm"
	"github.com/sarchlab/vmsim/vm/tlb"
)

// A Translation describes one completed address translation.
type Translation struct {
	LogicalAddress  uint64
	PageNumber      uint64
	Offset          uint64
	Frame           vm.Frame
	PhysicalAddress uint64
	Value           int8
	TLBHit          bool
	PageFault       bool
}

// Stats is a snapshot of the translation counters.
type Stats struct {
	PageFaults uint64 `json:"page_faults"`
	TLBHits    uint64 `json:"tlb_hits"`
}

// A TranslationListener is notified after every completed
// translation. Faulted translations produce no notification.
type TranslationListener interface {
	TranslationDone(t Translation)
}

// Comp owns all the translation state for one run: the TLB, the page
// table, the physical memory, the frame allocator, and the counters.
// It processes one translation at a time; only the counters may be
// read concurrently (by a monitor) while a run is in progress.
type Comp struct {
	name string

	tlb       *tlb.Comp
	pageTable vm.PageTable
	storage   *mem.Storage
	allocator *mem.FrameAllocator
	source    PageSource

	pageFaultCount atomic.Uint64
	listeners      []TranslationListener
}

// Name returns the name of the component.
func (c *Comp) Name() string {
	return c.name
}

// RegisterListener adds a listener that observes completed
// translations.
func (c *Comp) RegisterListener(l TranslationListener) {
	c.listeners = append(c.listeners, l)
}

// Translate converts a logical address into a physical address and
// the byte stored there. A page fault that cannot be serviced returns
// a *Fault and leaves the TLB, the page table, and the frame pool
// unchanged.
func (c *Comp) Translate(logicalAddr uint64) (Translation, error) {
	pageNumber, offset := vm.DecomposeAddress(logicalAddr)

	t := Translation{
		LogicalAddress: logicalAddr,
		PageNumber:     pageNumber,
		Offset:         offset,
	}

	frame, hit := c.tlb.Lookup(pageNumber)
	t.TLBHit = hit

	if !hit {
		var err error
		frame, err = c.resolvePage(pageNumber, &t)
		if err != nil {
			return Translation{}, err
		}

		c.tlb.Insert(pageNumber, frame)
	}

	t.Frame = frame
	t.PhysicalAddress = frame.Address(offset)

	data, err := c.storage.Read(t.PhysicalAddress, 1)
	if err != nil {
		// The frame came from the allocator, so it is in bounds.
		panic(err)
	}
	t.Value = int8(data[0])

	for _, l := range c.listeners {
		l.TranslationDone(t)
	}

	return t, nil
}

// resolvePage returns the frame bound to the page, loading the page
// from the backing store on a fault.
func (c *Comp) resolvePage(
	pageNumber uint64,
	t *Translation,
) (vm.Frame, error) {
	if frame, found := c.pageTable.Find(pageNumber); found {
		return frame, nil
	}

	t.PageFault = true
	c.pageFaultCount.Add(1)

	data, err := c.source.ReadPage(pageNumber)
	if err != nil {
		return vm.InvalidFrame, &Fault{
			Kind:       FaultBackingStore,
			PageNumber: pageNumber,
			Err:        err,
		}
	}

	frame, err := c.allocator.Allocate()
	if err != nil {
		return vm.InvalidFrame, &Fault{
			Kind:       FaultFrameExhausted,
			PageNumber: pageNumber,
			Err:        err,
		}
	}

	if err := c.storage.WriteFrame(frame, data); err != nil {
		panic(err)
	}

	c.pageTable.Insert(pageNumber, frame)

	return frame, nil
}

// Stats returns a snapshot of the fault and hit counters.
func (c *Comp) Stats() Stats {
	return Stats{
		PageFaults: c.pageFaultCount.Load(),
		TLBHits:    c.tlb.HitCount(),
	}
}

// TLB returns the translation cache owned by the component.
func (c *Comp) TLB() *tlb.Comp {
	return c.tlb
}

// Storage returns the physical memory owned by the component.
func (c *Comp) Storage() *mem.Storage {
	return c.storage
}
