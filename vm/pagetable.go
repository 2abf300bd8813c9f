package vm

// A PageTable maintains the authoritative page-number-to-frame
// mapping. Entries start unbound and, once bound, are never rebound.
type PageTable interface {
	Find(pageNumber uint64) (Frame, bool)
	Insert(pageNumber uint64, frame Frame)
}

// NewPageTable creates a PageTable with all entries unbound.
func NewPageTable() PageTable {
	pt := &pageTableImpl{}
	for i := range pt.entries {
		pt.entries[i] = InvalidFrame
	}

	return pt
}

type pageTableImpl struct {
	entries [NumPages]Frame
}

// Find returns the frame bound to the page. The bool return value
// indicates whether the page is bound.
func (pt *pageTableImpl) Find(pageNumber uint64) (Frame, bool) {
	pt.pageMustBeInRange(pageNumber)

	frame := pt.entries[pageNumber]
	if !frame.Valid() {
		return InvalidFrame, false
	}

	return frame, true
}

// Insert binds a page to a frame. Rebinding a page is a programming
// error.
func (pt *pageTableImpl) Insert(pageNumber uint64, frame Frame) {
	pt.pageMustBeInRange(pageNumber)

	if pt.entries[pageNumber].Valid() {
		panic("page is already bound to a frame")
	}

	if !frame.Valid() {
		panic("cannot bind a page to an invalid frame")
	}

	pt.entries[pageNumber] = frame
}

func (pt *pageTableImpl) pageMustBeInRange(pageNumber uint64) {
	if pageNumber >= NumPages {
		panic("page number out of range")
	}
}
