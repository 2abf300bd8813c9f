package tlb_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/vmsim/vm"
	"github.com/sarchlab/vmsim/vm/tlb"
)

var _ = Describe("TLB", func() {
	var cache *tlb.Comp

	BeforeEach(func() {
		cache = tlb.MakeBuilder().Build("TLB")
	})

	It("should have 16 entries by default", func() {
		Expect(cache.NumEntries()).To(Equal(16))
	})

	It("should miss on an empty cache", func() {
		_, hit := cache.Lookup(1)

		Expect(hit).To(BeFalse())
		Expect(cache.HitCount()).To(Equal(uint64(0)))
	})

	It("should hit after an insert", func() {
		cache.Insert(1, vm.Frame(7))

		frame, hit := cache.Lookup(1)

		Expect(hit).To(BeTrue())
		Expect(frame).To(Equal(vm.Frame(7)))
		Expect(cache.HitCount()).To(Equal(uint64(1)))
	})

	It("should not count misses as hits", func() {
		cache.Insert(1, vm.Frame(7))

		cache.Lookup(2)

		Expect(cache.HitCount()).To(Equal(uint64(0)))
	})

	It("should evict the oldest entry when overflowing", func() {
		for p := uint64(0); p < 17; p++ {
			cache.Insert(p, vm.Frame(p))
		}

		_, hit := cache.Lookup(0)
		Expect(hit).To(BeFalse())

		frame, hit := cache.Lookup(1)
		Expect(hit).To(BeTrue())
		Expect(frame).To(Equal(vm.Frame(1)))

		frame, hit = cache.Lookup(16)
		Expect(hit).To(BeTrue())
		Expect(frame).To(Equal(vm.Frame(16)))
	})

	It("should evict by insertion order, not by last use", func() {
		for p := uint64(0); p < 16; p++ {
			cache.Insert(p, vm.Frame(p))
		}

		// Touching page 0 must not save it from eviction.
		_, hit := cache.Lookup(0)
		Expect(hit).To(BeTrue())

		cache.Insert(16, vm.Frame(16))

		_, hit = cache.Lookup(0)
		Expect(hit).To(BeFalse())
	})

	It("should keep duplicate entries until their slots recycle", func() {
		cache.Insert(1, vm.Frame(7))
		cache.Insert(1, vm.Frame(7))

		// Both entries live. Fifteen more inserts recycle the first
		// slot; the second copy must still hit.
		for p := uint64(2); p < 17; p++ {
			cache.Insert(p, vm.Frame(p))
		}

		frame, hit := cache.Lookup(1)
		Expect(hit).To(BeTrue())
		Expect(frame).To(Equal(vm.Frame(7)))

		// One more insert recycles the second copy as well.
		cache.Insert(17, vm.Frame(17))

		_, hit = cache.Lookup(1)
		Expect(hit).To(BeFalse())
	})

	It("should return the first matching slot in ascending slot order", func() {
		cache.Insert(1, vm.Frame(7))
		for p := uint64(2); p < 9; p++ {
			cache.Insert(p, vm.Frame(p))
		}
		cache.Insert(1, vm.Frame(9))

		frame, hit := cache.Lookup(1)

		Expect(hit).To(BeTrue())
		Expect(frame).To(Equal(vm.Frame(7)))
	})

	It("should respect a custom capacity", func() {
		small := tlb.MakeBuilder().WithNumEntries(2).Build("SmallTLB")

		small.Insert(1, vm.Frame(1))
		small.Insert(2, vm.Frame(2))
		small.Insert(3, vm.Frame(3))

		_, hit := small.Lookup(1)
		Expect(hit).To(BeFalse())

		_, hit = small.Lookup(2)
		Expect(hit).To(BeTrue())
	})
})
