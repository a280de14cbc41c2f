// Package syscall is the single entry point every user program traps
// through to ask the kernel for service: load and run another program,
// read or write a file descriptor, or tear itself down. It is the
// replacement for system_call.c's dispatch table, wired to the IDT's
// software interrupt 0x80 gate instead of to a hand-written assembly jump
// table, but following the same eight-call, register-argument ABI.
package syscall

import (
	"unsafe"

	"github.com/AlexSunNik/ECE391-Kernel/kernel/fs"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/irq"
)

const (
	callHalt     = 1
	callExecute  = 2
	callRead     = 3
	callWrite    = 4
	callOpen     = 5
	callClose    = 6
	callGetArgs  = 7
	callVidmap   = 8
	callSetHndlr = 9
	callSigret   = 10
)

// image is the mounted (read-only) filesystem every open/execute call
// resolves names against. It is set once, at boot, by Init.
var image *fs.FS

// Init records the mounted filesystem image and installs the syscall and
// fatal-exception handlers. It must run after kernel/fs has mounted the
// boot module and before any user process is executed.
func Init(fsImage *fs.FS) {
	image = fsImage
	irq.HandleSyscall(dispatch)
	installFaultHandlers()
}

// dispatch reads the call number and its up-to-three arguments out of regs
// (EAX, EBX, ECX, EDX, in that order) and writes the call's return value
// back into regs.EAX, matching the register convention every one of the
// eight calls below is documented against.
func dispatch(regs *irq.Regs) {
	var ret int32
	switch regs.EAX {
	case callHalt:
		Halt(uint8(regs.EBX))
		// Halt never returns.
	case callExecute:
		ret = Execute(userCString(uintptr(regs.EBX), fs.NameLength+ArgsSize+1))
	case callRead:
		ret = Read(int(regs.EBX), userBytes(uintptr(regs.ECX), int(int32(regs.EDX))))
	case callWrite:
		ret = Write(int(regs.EBX), userBytes(uintptr(regs.ECX), int(int32(regs.EDX))))
	case callOpen:
		ret = Open(userCString(uintptr(regs.EBX), fs.NameLength+1))
	case callClose:
		ret = Close(int(regs.EBX))
	case callGetArgs:
		ret = GetArgs(userBytes(uintptr(regs.EBX), int(int32(regs.ECX))))
	case callVidmap:
		ret = Vidmap(uintptr(regs.EBX))
	case callSetHndlr, callSigret:
		ret = -1
	default:
		ret = -1
	}
	regs.EAX = uint32(ret)
}

// userCString reads a NUL-terminated string out of user memory starting at
// ptr, stopping at maxLen bytes if no NUL is found first. Every syscall
// argument that is conventionally a C string is read this way rather than
// copied through a bounded "copy_from_user" helper, since this kernel runs
// every process against the single shared page directory kernel/mem/vmm
// maintains: the calling process's own mapping is already active, so a
// pointer it handed the kernel is valid to dereference directly.
func userCString(ptr uintptr, maxLen int) string {
	if ptr == 0 {
		return ""
	}
	raw := (*[1 << 20]byte)(unsafe.Pointer(ptr))
	n := 0
	for n < maxLen && raw[n] != 0 {
		n++
	}
	return string(raw[:n])
}

// userBytes returns a slice over n bytes of user memory starting at ptr,
// for the read/write/getargs buffer arguments.
func userBytes(ptr uintptr, n int) []byte {
	if ptr == 0 || n <= 0 {
		return nil
	}
	return (*[1 << 20]byte)(unsafe.Pointer(ptr))[:n:n]
}
