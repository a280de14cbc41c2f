package syscall

import (
	"unsafe"

	"github.com/AlexSunNik/ECE391-Kernel/kernel/mem/vmm"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/proc"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/sched"
)

// current returns the PCB of the process the calling system call belongs
// to: whichever process is topmost on the scheduled terminal's stack.
func current() *proc.PCB {
	pid, ok := sched.CurrentPID()
	if !ok {
		return nil
	}
	return proc.Find(pid)
}

// Read dispatches to descriptor fd's Ops.Read. buf nil (a bad user pointer
// or a non-positive byte count) is rejected the same as an invalid fd.
func Read(fdNum int, buf []byte) int32 {
	p := current()
	if p == nil || buf == nil {
		return -1
	}
	n, err := p.FDs.Read(fdNum, buf)
	if err != nil {
		return -1
	}
	return int32(n)
}

// Write dispatches to descriptor fd's Ops.Write.
func Write(fdNum int, buf []byte) int32 {
	p := current()
	if p == nil || buf == nil {
		return -1
	}
	n, err := p.FDs.Write(fdNum, buf)
	if err != nil {
		return -1
	}
	return int32(n)
}

// Open resolves name against the mounted filesystem, installs the matching
// device's Ops into the calling process's first free descriptor slot above
// stdin/stdout, and returns that slot number.
func Open(name string) int32 {
	p := current()
	if p == nil || name == "" {
		return -1
	}
	dentry, err := image.ReadDentryByName(name)
	if err != nil {
		return -1
	}
	ops := opsFor(dentry.FileType)
	if ops == nil {
		return -1
	}
	slot, oerr := p.FDs.Open(ops, dentry.InodeIdx)
	if oerr != nil {
		return -1
	}
	return int32(slot)
}

// Close releases descriptor fd. Closing stdin or stdout is rejected here,
// matching close()'s own ceiling in the original kernel (the fd package
// itself would permit it).
func Close(fdNum int) int32 {
	p := current()
	if p == nil || fdNum < 2 {
		return -1
	}
	if err := p.FDs.Close(fdNum); err != nil {
		return -1
	}
	return 0
}

// GetArgs copies the calling process's stored argument tail into buf, iff
// it (plus a terminating NUL) fits.
func GetArgs(buf []byte) int32 {
	p := current()
	if p == nil || buf == nil {
		return -1
	}
	if p.ArgsLen == 0 || len(buf) < p.ArgsLen+1 {
		return -1
	}
	copy(buf, p.Args[:p.ArgsLen])
	buf[p.ArgsLen] = 0
	return 0
}

// Vidmap exposes the text-mode video page to the calling process at the
// fixed user-space address past its program window, and writes that
// address through ptr (itself a pointer supplied by user code, pointing at
// a single uint32-sized slot it owns). It rejects any ptr outside the
// calling process's own program window, the same bounds check vidmap()
// applies to its screen_start argument.
func Vidmap(ptr uintptr) int32 {
	p := current()
	if p == nil || ptr < vmm.ProgWindowBase || ptr >= vmm.ProgWindowEnd {
		return -1
	}

	vmm.EnableUserVideoPage()
	*(*uint32)(unsafe.Pointer(ptr)) = uint32(vmm.ProgVidVirtAddr)
	p.VideoMapped = true
	return 0
}
