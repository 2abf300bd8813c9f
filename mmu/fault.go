package mmu

import "fmt"

// FaultKind classifies the ways a translation can fail.
type FaultKind int

const (
	// FaultBackingStore marks a seek or read failure while loading a
	// page. The translation is abandoned; the page table and the
	// frame pool are untouched, so a later reference can retry.
	FaultBackingStore FaultKind = iota

	// FaultFrameExhausted marks a page fault that found no free
	// frame. Without a replacement policy the fault cannot be
	// resolved, so the page stays unbound.
	FaultFrameExhausted
)

func (k FaultKind) String() string {
	switch k {
	case FaultBackingStore:
		return "backing-store"
	case FaultFrameExhausted:
		return "frame-exhausted"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// A Fault is returned by Translate when a page fault cannot be
// serviced.
type Fault struct {
	Kind       FaultKind
	PageNumber uint64
	Err        error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s fault on page %d: %v",
		f.Kind, f.PageNumber, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
