package vmm

import (
	"github.com/AlexSunNik/ECE391-Kernel/kernel"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/mem"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/mem/pmm"
)

// heapNextFree is the low-water mark of the kernel heap's bump-pointer
// virtual address reservation, used only to bootstrap the Go runtime
// allocator (see kernel/goruntime). Nothing else in this kernel allocates
// memory dynamically.
var heapNextFree = heapVirtAddr

var errHeapExhausted = &kernel.Error{Module: "vmm", Message: "kernel heap region is exhausted"}

// FrameAllocatorFn allocates a single physical frame.
type FrameAllocatorFn func() (pmm.Frame, *kernel.Error)

// EarlyReserveRegion hands out address space from the fixed-size kernel
// heap region, bump-pointer style, without establishing any page mapping.
// It is the boundary between "the Go runtime wants a range of addresses to
// exist" (sysReserve) and "a page within that range now needs a physical
// frame behind it" (Map).
func EarlyReserveRegion(size mem.Size) (uintptr, *kernel.Error) {
	aligned := (size + mem.PageSize - 1) &^ (mem.PageSize - 1)
	if heapNextFree+uintptr(aligned) > heapVirtAddr+uintptr(heapSize) {
		return 0, errHeapExhausted
	}

	start := heapNextFree
	heapNextFree += uintptr(aligned)
	return start, nil
}

// Map establishes a mapping for a single page inside the kernel heap
// region. The heap's page table is a single always-present static array
// initialized by Init, so Map never needs to allocate a page table of its
// own the way a general-purpose multi-level mapper would.
func Map(page Page, frame pmm.Frame, flags PageTableEntryFlag) *kernel.Error {
	addr := page.Address()
	if addr < heapVirtAddr || addr >= heapVirtAddr+uintptr(heapSize) {
		return ErrInvalidMapping
	}

	idx := (addr - heapVirtAddr) >> mem.PageShift
	pageTableHeap[idx] = 0
	pageTableHeap[idx].SetFlags(FlagPresent | flags)
	pageTableHeap[idx].SetFrame(frame)
	flushTLBFn()
	return nil
}
