// Package cpu declares the bodyless, assembly-backed primitives that need
// privileged instructions unavailable from plain Go: interrupt control, port
// I/O, paging control registers and the CPUID instruction. The function
// bodies live in hand-written i386 assembly (not part of this tree) and are
// linked in at build time.
package cpu

var (
	cpuidFn = ID
)

// EnableInterrupts enables interrupt handling (STI).
func EnableInterrupts()

// DisableInterrupts disables interrupt handling (CLI).
func DisableInterrupts()

// Halt stops instruction execution until the next interrupt (HLT).
func Halt()

// Inb reads a single byte from the given I/O port.
func Inb(port uint16) uint8

// Outb writes a single byte to the given I/O port.
func Outb(port uint16, value uint8)

// FlushTLBEntry flushes a single TLB entry for a particular virtual address
// (INVLPG).
func FlushTLBEntry(virtAddr uintptr)

// SwitchPDT loads the given physical address into CR3, replacing the active
// page directory and flushing the entire TLB.
func SwitchPDT(pdtPhysAddr uintptr)

// ActivePDT returns the physical address of the currently active page
// directory (the contents of CR3).
func ActivePDT() uintptr

// ReadCR2 returns the faulting linear address recorded by the CPU in CR2
// during the most recent page fault.
func ReadCR2() uint32

// FramePointer returns the caller's EBP. execute saves this into the new
// process's PCB so halt can later unwind straight back into the matching
// execute call without the Go compiler's cooperation, mirroring the inline
// asm the original kernel uses for the same save.
func FramePointer() uint32

// SetKernelStack programs the task-state segment's esp0 field, the ring-0
// stack pointer the CPU loads on the next privilege-level change (a ring-3
// process trapping back into the kernel via interrupt or int 0x80). Callers
// pass the top of the kernel stack belonging to whichever process is about
// to run or resume, so its ring-0 activity lands on its own stack memory
// instead of whatever the previously scheduled process left behind. ss0 is
// programmed once at boot (it is always the kernel data selector) and is
// not touched here.
func SetKernelStack(esp0 uint32)

// ID returns information about the CPU and its features. It is implemented
// as a CPUID instruction with EAX=leaf and returns the values in EAX, EBX,
// ECX and EDX.
func ID(leaf uint32) (uint32, uint32, uint32, uint32)

// IsIntel returns true if the code is running on an Intel processor.
func IsIntel() bool {
	_, ebx, ecx, edx := cpuidFn(0)
	return ebx == 0x756e6547 && // "Genu"
		edx == 0x49656e69 && // "ineI"
		ecx == 0x6c65746e // "ntel"
}
