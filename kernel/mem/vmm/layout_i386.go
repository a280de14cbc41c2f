package vmm

import "github.com/AlexSunNik/ECE391-Kernel/kernel/mem"

// The kernel uses a single, fixed, 1024-entry page directory shared by every
// process rather than one directory per process: only two directory entries
// ever change after boot (the program image slot and the user video slot),
// so there is nothing to gain from per-process directories and a great deal
// of bookkeeping to lose.
const (
	// entryCount is the number of entries in a page directory or page table.
	entryCount = 1024

	// kernelDirectoryIndex is the directory entry mapping the kernel's own
	// 4MiB image (physical and virtual address 4MiB-8MiB).
	kernelDirectoryIndex = 1

	// kernelImageFrame is the physical frame (in 4KiB units) backing the
	// kernel's 4MiB page: the kernel is linked to load at physical 4MiB,
	// and 0x400000>>12 happens to leave the low 10 bits of the 20-bit PDE
	// address field zero, which is what the hardware requires for a
	// PSE (4MiB) page's upper address bits to be well formed.
	kernelImageFrame = 0x400000 >> 12

	// lowMemDirectoryIndex is the directory entry covering the first 4MiB
	// of memory, mapped through a page table rather than a 4MiB page since
	// it also has to carry the real video memory page plus the per-terminal
	// backup pages as individually-addressable 4KiB entries.
	lowMemDirectoryIndex = 0

	// videoPhysAddr is the physical address of the real VGA text-mode
	// framebuffer.
	videoPhysAddr = 0xB8000

	// videoPage is the page index of videoPhysAddr within page table 0.
	videoPage = videoPhysAddr >> mem.PageShift

	// maxTerminals bounds the number of backup video pages reserved
	// immediately after the real framebuffer page.
	maxTerminals = 3

	// progImageVirtAddr is the fixed virtual address every user program is
	// linked to start at.
	progImageVirtAddr = 0x08048000

	// progDirectoryIndex is the directory entry a running program's 4MiB
	// image is mapped through; it is rewritten on every context switch.
	progDirectoryIndex = progImageVirtAddr >> 22

	// progPhysBase and progPhysStride locate the physical 4MiB frame
	// backing PID p's program image at progPhysBase + p*progPhysStride.
	progPhysBase   = 0x800000
	progPhysStride = 0x400000

	// progVidDirectoryIndex is the directory entry used to expose a single
	// remappable video-memory page to user-mode programs that request it
	// via vidmap.
	progVidDirectoryIndex = 33

	// progVidVirtAddr is the virtual address a process sees its mapped
	// video page at, the first page of the directory entry above.
	progVidVirtAddr = progVidDirectoryIndex << 22

	// maxProcesses is the process-table ceiling shared with kernel/proc:
	// six PCB slots, each owning one fixed 4MiB physical image frame.
	maxProcesses = 6

	// heapDirectoryIndex is the directory entry backing the kernel heap
	// used only to bootstrap the Go runtime allocator; nothing in the
	// original ECE391 kernel needed one, since it never runs Go code of
	// its own construction.
	heapDirectoryIndex = 2
	heapVirtAddr       = uintptr(heapDirectoryIndex) << 22
	heapSize           = mem.Size(4 * 1024 * 1024)
)

// ReservedPhysicalCeiling is the first physical address past every fixed
// physical region this kernel hands out directly by address arithmetic
// rather than through a frame allocator: the kernel image and all
// maxProcesses possible process image slots. The boot-time frame allocator
// is told to never return a frame below this address.
const ReservedPhysicalCeiling = uintptr(progPhysBase + maxProcesses*progPhysStride)

// Exported layout constants kernel/syscall needs to validate and construct
// a user execution frame without reaching into vmm's unexported internals.
const (
	// ProgWindowBase and ProgWindowEnd bound the 4MiB virtual window every
	// process's image and user stack live in.
	ProgWindowBase = progDirectoryIndex << 22
	ProgWindowEnd  = ProgWindowBase + 0x400000

	// ProgImageVirtAddr is the fixed virtual address a loaded executable's
	// first byte lands at.
	ProgImageVirtAddr = progImageVirtAddr

	// ProgVidVirtAddr is the fixed virtual address vidmap installs, the
	// first byte past the program window.
	ProgVidVirtAddr = progVidVirtAddr
)
