package proc

import "unsafe"

// KernelStackSize is the size of each process's dedicated ring-0 stack,
// matching the original kernel's KERNEL_STACK_SIZE.
const KernelStackSize = 0x2000

// kernelStacks reserves one KernelStackSize-byte region per PCB slot. The
// original kernel carves these out of a fixed physical range below the
// kernel image (PROG0_KSTACK_BOTTOM - KERNEL_STACK_SIZE*pid); with no
// dynamic kernel allocation in this kernel, a static array indexed by pid
// is the direct equivalent, and needs no address arithmetic against a
// hand-picked physical constant to stay non-overlapping.
var kernelStacks [MaxProcesses][KernelStackSize]byte

// KernelStackTop returns the initial ESP0 for pid: the address one past
// the end of its reserved stack region, since the stack grows down from
// there. sched.Transfer and syscall's execute/halt paths feed this to
// cpu.SetKernelStack immediately before resuming or creating a process, so
// that process's kernel-mode activity (syscalls, interrupts) runs on its
// own stack instead of colliding with another terminal's parked one.
func KernelStackTop(pid int) uint32 {
	return uint32(uintptr(unsafe.Pointer(&kernelStacks[pid][0])) + KernelStackSize)
}
