package mem

import (
	"errors"

	"github.com/sarchlab/vmsim/vm"
)

// ErrNoFreeFrame is returned by Allocate when every frame is occupied.
var ErrNoFreeFrame = errors.New("no free frame available")

// A FrameAllocator hands out physical frames to newly loaded pages.
// Frames are never released; the free pool only shrinks.
type FrameAllocator struct {
	free      []bool
	freeCount int
}

// NewFrameAllocator creates an allocator with numFrames free frames.
func NewFrameAllocator(numFrames int) *FrameAllocator {
	if numFrames <= 0 {
		panic("an allocator must manage at least one frame")
	}

	free := make([]bool, numFrames)
	for i := range free {
		free[i] = true
	}

	return &FrameAllocator{
		free:      free,
		freeCount: numFrames,
	}
}

// Allocate removes and returns the lowest-numbered free frame. It
// returns ErrNoFreeFrame when the pool is exhausted.
func (a *FrameAllocator) Allocate() (vm.Frame, error) {
	if a.freeCount == 0 {
		return vm.InvalidFrame, ErrNoFreeFrame
	}

	for i, isFree := range a.free {
		if isFree {
			a.free[i] = false
			a.freeCount--

			return vm.Frame(i), nil
		}
	}

	panic("free count is positive but no frame is free")
}

// FreeCount returns the number of frames still available.
func (a *FrameAllocator) FreeCount() int {
	return a.freeCount
}
