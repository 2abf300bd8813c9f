package mem_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/vmsim/mem"
	"github.com/sarchlab/vmsim/vm"
)

var _ = Describe("FrameAllocator", func() {
	It("should allocate frames from the lowest number up", func() {
		allocator := mem.NewFrameAllocator(4)

		for i := 0; i < 4; i++ {
			frame, err := allocator.Allocate()

			Expect(err).ToNot(HaveOccurred())
			Expect(frame).To(Equal(vm.Frame(i)))
		}
	})

	It("should shrink the free count on every allocation", func() {
		allocator := mem.NewFrameAllocator(4)

		Expect(allocator.FreeCount()).To(Equal(4))

		_, err := allocator.Allocate()
		Expect(err).ToNot(HaveOccurred())
		Expect(allocator.FreeCount()).To(Equal(3))
	})

	It("should report exhaustion explicitly", func() {
		allocator := mem.NewFrameAllocator(2)

		_, err := allocator.Allocate()
		Expect(err).ToNot(HaveOccurred())
		_, err = allocator.Allocate()
		Expect(err).ToNot(HaveOccurred())

		frame, err := allocator.Allocate()
		Expect(err).To(MatchError(mem.ErrNoFreeFrame))
		Expect(frame).To(Equal(vm.InvalidFrame))
		Expect(allocator.FreeCount()).To(Equal(0))
	})
})
