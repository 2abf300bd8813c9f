// Package mem provides the physical memory model, including the
// frame-granular storage and the free-frame allocator.
package mem

import (
	"errors"

	"github.com/sarchlab/vmsim/vm"
)

// A Storage keeps the data of the physical memory.
//
// The storage manages its bytes in frame-sized units. Frames that are
// never written do not allocate memory.
type Storage struct {
	frameSize uint64
	capacity  uint64
	data      map[uint64][]byte
}

// NewStorage creates a storage with the given number of frames, each
// holding frameSize bytes.
func NewStorage(numFrames int, frameSize uint64) *Storage {
	if numFrames <= 0 || frameSize == 0 {
		panic("storage must have at least one frame of at least one byte")
	}

	return &Storage{
		frameSize: frameSize,
		capacity:  uint64(numFrames) * frameSize,
		data:      make(map[uint64][]byte),
	}
}

// Capacity returns the total number of bytes the storage can hold.
func (s *Storage) Capacity() uint64 {
	return s.capacity
}

// FrameSize returns the number of bytes in each frame.
func (s *Storage) FrameSize() uint64 {
	return s.frameSize
}

func (s *Storage) createOrGetFrameUnit(address uint64) ([]byte, error) {
	if address >= s.capacity {
		return nil, errors.New(
			"accessing physical address beyond the storage capacity")
	}

	baseAddr, _ := s.parseAddress(address)
	unit, ok := s.data[baseAddr]
	if !ok {
		unit = make([]byte, s.frameSize)
		s.data[baseAddr] = unit
	}

	return unit, nil
}

func (s *Storage) parseAddress(addr uint64) (baseAddr, inFrameAddr uint64) {
	inFrameAddr = addr % s.frameSize
	baseAddr = addr - inFrameAddr
	return
}

// Read returns length bytes starting at the given physical address.
func (s *Storage) Read(address, length uint64) ([]byte, error) {
	if address+length > s.capacity {
		return nil, errors.New(
			"accessing physical address beyond the storage capacity")
	}

	res := make([]byte, length)
	dataOffset := uint64(0)

	for currAddr := address; currAddr < address+length; {
		unit, err := s.createOrGetFrameUnit(currAddr)
		if err != nil {
			return nil, err
		}

		baseAddr, inFrameAddr := s.parseAddress(currAddr)
		lenInUnit := baseAddr + s.frameSize - currAddr
		if address+length-currAddr < lenInUnit {
			lenInUnit = address + length - currAddr
		}

		copy(res[dataOffset:dataOffset+lenInUnit],
			unit[inFrameAddr:inFrameAddr+lenInUnit])
		dataOffset += lenInUnit
		currAddr += lenInUnit
	}

	return res, nil
}

// Write stores data starting at the given physical address.
func (s *Storage) Write(address uint64, data []byte) error {
	if address+uint64(len(data)) > s.capacity {
		return errors.New(
			"accessing physical address beyond the storage capacity")
	}

	dataOffset := uint64(0)

	for currAddr := address; dataOffset < uint64(len(data)); {
		unit, err := s.createOrGetFrameUnit(currAddr)
		if err != nil {
			return err
		}

		_, inFrameAddr := s.parseAddress(currAddr)
		lenInUnit := s.frameSize - inFrameAddr
		if uint64(len(data))-dataOffset < lenInUnit {
			lenInUnit = uint64(len(data)) - dataOffset
		}

		copy(unit[inFrameAddr:inFrameAddr+lenInUnit],
			data[dataOffset:dataOffset+lenInUnit])
		dataOffset += lenInUnit
		currAddr += lenInUnit
	}

	return nil
}

// ReadFrame returns the full content of a frame.
func (s *Storage) ReadFrame(frame vm.Frame) ([]byte, error) {
	if !frame.Valid() {
		return nil, errors.New("reading from an invalid frame")
	}

	return s.Read(frame.Address(0), s.frameSize)
}

// WriteFrame fills a frame with the given data. The data must be
// exactly one frame long.
func (s *Storage) WriteFrame(frame vm.Frame, data []byte) error {
	if !frame.Valid() {
		return errors.New("writing to an invalid frame")
	}

	if uint64(len(data)) != s.frameSize {
		return errors.New("frame data must be exactly one frame long")
	}

	return s.Write(frame.Address(0), data)
}
