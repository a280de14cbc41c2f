// Package vmm owns the kernel's single, shared page directory: one 4MiB
// entry mapping the kernel image, one page table mapping the low 4MiB
// (text-mode video memory and its per-terminal backup pages), and two
// entries rewritten on every context switch to expose a process's 4MiB
// program image and, on request, a remapped view of video memory.
//
// Unlike a general-purpose virtual memory manager there is no notion of a
// page directory per process: init_paging in the original ECE391 kernel
// builds exactly one directory and every process reuses it, rewriting only
// the entries that need to change. We keep that design rather than building
// a per-process address space abstraction nothing here needs.
package vmm

import (
	"unsafe"

	"github.com/AlexSunNik/ECE391-Kernel/kernel"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/cpu"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/irq"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/kfmt/early"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/mem/pmm"
)

var (
	// pageDirectory, pageTable0 and pageTableVideo must each land on their
	// own page-aligned frame; the linker script backing this kernel places
	// the bss section on a page boundary and reserves these arrays first so
	// that property holds without any runtime relocation.
	pageDirectory  [entryCount]pageTableEntry
	pageTable0     [entryCount]pageTableEntry
	pageTableVideo [entryCount]pageTableEntry
	pageTableHeap  [entryCount]pageTableEntry

	// the following functions are mocked by tests and are automatically
	// inlined by the compiler.
	panicFn                   = kernel.Panic
	handleExceptionWithCodeFn = irq.HandleExceptionWithCode
	readCR2Fn                 = cpu.ReadCR2
	switchPDTFn               = cpu.SwitchPDT
	flushTLBFn                = flushTLB

	errUnalignedTable = &kernel.Error{Module: "vmm", Message: "page table is not 4KiB-aligned"}
)

// addrOf returns the physical address of a page-aligned static table. The
// kernel's own image, and therefore its bss, is identity mapped, so the
// linear address of the array is also its physical address.
func addrOf(table *[entryCount]pageTableEntry) uintptr {
	return uintptr(unsafe.Pointer(&table[0]))
}

// flushTLB reloads CR3 with its own current value, which the CPU defines to
// invalidate every non-global TLB entry. i386 has no equivalent of amd64's
// per-entry INVLPG convenience wrapper in this kernel's asm stubs, so every
// mapping change is followed by a full flush, matching flush_tlb() in the
// original kernel.
func flushTLB() {
	switchPDTFn(cpu.ActivePDT())
}

func pageFaultHandler(errorCode uint32, frame *irq.Frame, regs *irq.Regs) {
	faultAddress := uintptr(readCR2Fn())

	early.Printf("\nPage fault while accessing address: 0x%8x\nReason: ", faultAddress)
	switch {
	case errorCode&0x1 == 0:
		early.Printf("read/write to a non-present page")
	case errorCode&0x2 != 0:
		early.Printf("page protection violation (write)")
	case errorCode&0x4 != 0:
		early.Printf("page-fault in user-mode")
	default:
		early.Printf("page protection violation (read)")
	}

	early.Printf("\n\nRegisters:\n")
	regs.Print()
	frame.Print()

	panicFn(&kernel.Error{Module: "vmm", Message: "unrecoverable page fault"})
}

func generalProtectionFaultHandler(_ uint32, frame *irq.Frame, regs *irq.Regs) {
	early.Printf("\nGeneral protection fault while accessing address: 0x%8x\n", readCR2Fn())
	early.Printf("Registers:\n")
	regs.Print()
	frame.Print()

	panicFn(&kernel.Error{Module: "vmm", Message: "unrecoverable general protection fault"})
}

// Init builds the kernel's single page directory: an identity-mapped 4MiB
// huge page for the kernel image (directory entry 1), a page table for the
// low 4MiB carrying the real video page and its backup pages (directory
// entry 0), and a not-yet-present user-video slot (directory entry 33,
// enabled per-process via EnableUserVideoPage). It then loads CR3 and
// installs the page-fault and general-protection-fault handlers; once the
// process layer comes up, kernel/syscall registers its own versions over
// these so a fault inside a running process halts it instead of panicking
// the kernel, falling back to these only for faults during early boot.
func Init() *kernel.Error {
	if addrOf(&pageDirectory)%4096 != 0 || addrOf(&pageTable0)%4096 != 0 || addrOf(&pageTableVideo)%4096 != 0 {
		return errUnalignedTable
	}

	for i := range pageDirectory {
		pageDirectory[i] = 0
		pageDirectory[i].SetFlags(FlagRW)
	}

	pageDirectory[kernelDirectoryIndex].SetFlags(FlagPresent | FlagRW | FlagHugePage)
	pageDirectory[kernelDirectoryIndex].SetFrame(pmm.Frame(kernelImageFrame))

	for i := range pageTable0 {
		pageTable0[i] = 0
		pageTable0[i].SetFlags(FlagRW)
		pageTable0[i].SetFrame(pmm.Frame(i))
	}
	for i := 0; i <= maxTerminals; i++ {
		pageTable0[videoPage+i].SetFlags(FlagPresent)
	}
	pageDirectory[lowMemDirectoryIndex].SetFlags(FlagPresent | FlagRW)
	pageDirectory[lowMemDirectoryIndex].SetFrame(pmm.Frame(addrOf(&pageTable0) >> 12))

	for i := range pageTableVideo {
		pageTableVideo[i] = 0
		pageTableVideo[i].SetFlags(FlagRW | FlagUserAccessible)
		pageTableVideo[i].SetFrame(pmm.Frame(i))
	}
	pageDirectory[progVidDirectoryIndex].SetFlags(FlagRW | FlagUserAccessible)
	pageDirectory[progVidDirectoryIndex].SetFrame(pmm.Frame(addrOf(&pageTableVideo) >> 12))
	pageTableVideo[0].SetFrame(pmm.Frame(videoPage))

	for i := range pageTableHeap {
		pageTableHeap[i] = 0
		pageTableHeap[i].SetFlags(FlagRW)
	}
	pageDirectory[heapDirectoryIndex].SetFlags(FlagPresent | FlagRW)
	pageDirectory[heapDirectoryIndex].SetFrame(pmm.Frame(addrOf(&pageTableHeap) >> 12))

	switchPDTFn(addrOf(&pageDirectory))

	handleExceptionWithCodeFn(irq.PageFaultException, pageFaultHandler)
	handleExceptionWithCodeFn(irq.GPFException, generalProtectionFaultHandler)
	return nil
}
