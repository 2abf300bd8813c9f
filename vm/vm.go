// Package vm defines the address-space geometry shared by all the
// translation components, including the logical-address layout, the
// Frame type, and the page table.
package vm

const (
	// PageSize is the number of bytes in a page and in a frame.
	PageSize = 256

	// NumPages is the number of pages in the logical address space.
	NumPages = 256

	// AddressSpaceSize is the total number of addressable bytes.
	AddressSpaceSize = NumPages * PageSize

	pageNumberMask = 0xff00
	offsetMask     = 0x00ff
)

// DecomposeAddress splits a logical address into a page number and an
// in-page offset. Bits above bit 15 are discarded, so every input maps
// to a page number and an offset in [0, 255].
func DecomposeAddress(addr uint64) (pageNumber, offset uint64) {
	pageNumber = (addr & pageNumberMask) >> 8
	offset = addr & offsetMask

	return pageNumber, offset
}

// A Frame identifies a physical memory frame.
type Frame int

// InvalidFrame is the frame value used before a page is bound to a
// frame.
const InvalidFrame = Frame(-1)

// Valid returns true if the frame refers to an actual storage slot.
func (f Frame) Valid() bool {
	return f >= 0
}

// Address returns the physical address of the given offset within the
// frame.
func (f Frame) Address(offset uint64) uint64 {
	return uint64(f)*PageSize + offset
}
