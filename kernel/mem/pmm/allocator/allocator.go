package allocator

import (
	"github.com/AlexSunNik/ECE391-Kernel/kernel"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/kfmt/early"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/mem"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/mem/pmm"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/mem/vmm"
)

// Init prepares the boot-time frame allocator and fast-forwards its
// allocation cursor past every region of physical memory this kernel
// addresses directly rather than through the allocator: the kernel image
// itself, plus the fixed physical slots kernel/proc hands its six possible
// processes (vmm.ReservedPhysicalCeiling). The kernel has no general-purpose
// frame allocator: once boot is complete, the only physical memory ever
// claimed through AllocFrame is the handful of kernel heap pages in
// kernel/goruntime, obtained once and never released.
func Init(kernelStart, kernelEnd uintptr) *kernel.Error {
	EarlyAllocator.Init()

	reserveUpTo := vmm.ReservedPhysicalCeiling
	if kernelEnd > reserveUpTo {
		reserveUpTo = kernelEnd
	}

	reservedFrameIndex := int64((mem.Size(reserveUpTo)+mem.PageSize-1)>>mem.PageShift) - 1
	if reservedFrameIndex > EarlyAllocator.lastAllocIndex {
		early.Printf("[boot_mem_alloc] reserving frames below 0x%x for kernel image and process slots\n", uint64(reserveUpTo))
		EarlyAllocator.lastAllocIndex = reservedFrameIndex
	}

	return nil
}

// AllocFrame reserves and returns the next available physical frame. The
// allocator only supports single-frame (order 0) allocations; see
// BootMemAllocator for why frames can never be freed once claimed.
func AllocFrame() (pmm.Frame, *kernel.Error) {
	return EarlyAllocator.AllocFrame(mem.PageOrder(0))
}
