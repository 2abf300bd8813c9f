package mmu

// Local abstraction layer for the page-content provider. The mmu
// package depends on this interface only, so tests can mock it
// without touching the file system.
//
//go:generate mockgen -destination "mock_source_test.go" -package $GOPACKAGE -write_package_comment=false -source interface.go

// A PageSource provides the content of pages that are not resident in
// physical memory. It is implemented by backingstore.BackingStore.
type PageSource interface {
	ReadPage(pageNumber uint64) ([]byte, error)
}
