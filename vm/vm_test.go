package vm_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/vmsim/vm"
)

var _ = Describe("DecomposeAddress", func() {
	It("should split an address into page number and offset", func() {
		pageNumber, offset := vm.DecomposeAddress(0x1234)

		Expect(pageNumber).To(Equal(uint64(0x12)))
		Expect(offset).To(Equal(uint64(0x34)))
	})

	It("should map address 0 to page 0, offset 0", func() {
		pageNumber, offset := vm.DecomposeAddress(0)

		Expect(pageNumber).To(Equal(uint64(0)))
		Expect(offset).To(Equal(uint64(0)))
	})

	It("should map address 256 to page 1, offset 0", func() {
		pageNumber, offset := vm.DecomposeAddress(256)

		Expect(pageNumber).To(Equal(uint64(1)))
		Expect(offset).To(Equal(uint64(0)))
	})

	It("should discard bits above bit 15", func() {
		pageNumber, offset := vm.DecomposeAddress(0xdead_1234)

		Expect(pageNumber).To(Equal(uint64(0x12)))
		Expect(offset).To(Equal(uint64(0x34)))
	})

	It("should always produce values in [0, 255]", func() {
		for addr := uint64(0); addr < vm.AddressSpaceSize; addr += 97 {
			pageNumber, offset := vm.DecomposeAddress(addr)

			Expect(pageNumber).To(BeNumerically("<", 256))
			Expect(offset).To(BeNumerically("<", 256))
			Expect(pageNumber*vm.PageSize + offset).To(Equal(addr))
		}
	})
})

var _ = Describe("Frame", func() {
	It("should compute the physical address of an offset", func() {
		frame := vm.Frame(3)

		Expect(frame.Address(0x10)).To(Equal(uint64(3*256 + 0x10)))
	})

	It("should report the invalid frame as invalid", func() {
		Expect(vm.InvalidFrame.Valid()).To(BeFalse())
		Expect(vm.Frame(0).Valid()).To(BeTrue())
	})
})
