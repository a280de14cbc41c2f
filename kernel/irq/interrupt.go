package irq

import "github.com/AlexSunNik/ECE391-Kernel/kernel/kfmt/early"

// Regs contains a snapshot of the general purpose register values at the
// time an exception or interrupt occurred, in the order `pusha` pushes them.
type Regs struct {
	EDI uint32
	ESI uint32
	EBP uint32
	ESP uint32
	EBX uint32
	EDX uint32
	ECX uint32
	EAX uint32
}

// Print outputs a dump of the register values to the active console. Like
// every other diagnostic dump in this kernel, it goes through kfmt/early
// rather than a general-purpose formatter: a fault can land before the Go
// allocator, or anything else a heavier Printf might depend on, is ready.
func (r *Regs) Print() {
	early.Printf("EAX = %8x EBX = %8x ECX = %8x EDX = %8x\n", r.EAX, r.EBX, r.ECX, r.EDX)
	early.Printf("ESI = %8x EDI = %8x EBP = %8x ESP = %8x\n", r.ESI, r.EDI, r.EBP, r.ESP)
}

// Frame describes the exception frame the CPU automatically pushes to the
// stack when an exception or interrupt occurs.
type Frame struct {
	EIP    uint32
	CS     uint32
	EFlags uint32
	ESP    uint32
	SS     uint32
}

// Print outputs a dump of the exception frame to the active console.
func (f *Frame) Print() {
	early.Printf("EIP = %8x CS  = %8x\n", f.EIP, f.CS)
	early.Printf("ESP = %8x SS  = %8x\n", f.ESP, f.SS)
	early.Printf("EFL = %8x\n", f.EFlags)
}
