// Package backingstore provides read-only, page-granular access to
// the file that holds the content of every page in the address space.
package backingstore

import (
	"fmt"
	"io"
	"os"

	"github.com/sarchlab/vmsim/vm"
)

// A BackingStore reads pages from a flat file that stores the pages
// consecutively, 256 bytes each.
type BackingStore struct {
	file     *os.File
	pageSize uint64
	numPages uint64
}

// Open opens the backing-store file at the given path. The file must
// be exactly one address space long (65536 bytes).
func Open(path string) (*BackingStore, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open backing store: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("cannot stat backing store: %w", err)
	}

	if info.Size() != vm.AddressSpaceSize {
		file.Close()
		return nil, fmt.Errorf(
			"backing store %s is %d bytes, expected %d",
			path, info.Size(), vm.AddressSpaceSize)
	}

	return &BackingStore{
		file:     file,
		pageSize: vm.PageSize,
		numPages: vm.NumPages,
	}, nil
}

// ReadPage returns the full content of the page with the given page
// number. A seek past the end of the file or a short read is an
// error.
func (b *BackingStore) ReadPage(pageNumber uint64) ([]byte, error) {
	if pageNumber >= b.numPages {
		return nil, fmt.Errorf(
			"page number %d out of range [0, %d)", pageNumber, b.numPages)
	}

	data := make([]byte, b.pageSize)
	offset := int64(pageNumber * b.pageSize)

	n, err := b.file.ReadAt(data, offset)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf(
			"cannot read page %d from backing store: %w", pageNumber, err)
	}

	if uint64(n) != b.pageSize {
		return nil, fmt.Errorf(
			"short read of page %d: got %d bytes, expected %d",
			pageNumber, n, b.pageSize)
	}

	return data, nil
}

// Close closes the underlying file.
func (b *BackingStore) Close() error {
	return b.file.Close()
}
