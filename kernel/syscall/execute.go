package syscall

import (
	"unsafe"

	"github.com/AlexSunNik/ECE391-Kernel/kernel/cpu"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/driver/rtc"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/driver/tty"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/fd"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/fs"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/mem/vmm"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/proc"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/sched"
)

// ArgsSize is the maximum length of the argument tail execute stores in a
// new process's PCB for getargs to hand back later.
const ArgsSize = proc.ArgsSize

// progLimitReached is the distinguished non-negative return value execute
// gives when either ceiling (six processes globally, four per terminal) is
// already full, kept apart from the generic -1 "could not execute at all"
// so a shell can tell the two failures apart.
const progLimitReached = 1

// expError is the status halt delivers to the parent when the child died
// by an unhandled CPU exception, regardless of what status halt's own
// argument said.
const expError = 256

// userStackGuard is the offset execute subtracts from the top of a
// program's 4MiB window before handing the result over as the initial
// user ESP: the first push after entry would otherwise dereference one
// byte past the mapped window and immediately page-fault.
const userStackGuard = 4

var (
	switchToProcessFn = vmm.SwitchToProcess
	framePointerFn    = cpu.FramePointer
	contextSwitchFn   = proc.ContextSwitch
	setKernelStackFn  = cpu.SetKernelStack
)

// parseCommand splits a raw "[filename] [arguments]" command line the way
// the original kernel's parse_command does: leading spaces before the
// filename are skipped, the filename ends at the first space/NUL, any
// spaces between filename and arguments are skipped, and everything after
// that up to the first NUL becomes the argument tail verbatim.
func parseCommand(cmd string) (filename, args string) {
	i := 0
	for i < len(cmd) && cmd[i] == ' ' {
		i++
	}
	start := i
	for i < len(cmd) && cmd[i] != ' ' {
		i++
	}
	filename = cmd[start:i]
	if len(filename) > fs.NameLength {
		filename = filename[:fs.NameLength]
	}
	for i < len(cmd) && cmd[i] == ' ' {
		i++
	}
	args = cmd[i:]
	if len(args) > ArgsSize {
		args = args[:ArgsSize]
	}
	return filename, args
}

// opsFor returns the fd.Ops implementation backing a directory entry of
// the given type, or nil if the type is not one user code can open.
func opsFor(fileType fs.FileType) fd.Ops {
	switch fileType {
	case fs.FileTypeDevice:
		return rtc.Ops{}
	case fs.FileTypeDirectory:
		return fs.DirectoryOps{FS: image}
	case fs.FileTypeRegular:
		return fs.FileOps{FS: image}
	default:
		return nil
	}
}

// Execute loads and runs the named program as a new child pushed on top of
// the calling terminal's nested-process stack: it returns only if the program could not be started at all (-1),
// or if one of the two process ceilings is already full (progLimitReached);
// otherwise control passes to the new process and this call never returns
// to its caller directly — the matching return happens later, when that
// process (or one of its own descendants) halts and unwinds back through
// ReturnFromExec.
func Execute(cmd string) int32 {
	termID := sched.CurrentTerminal()
	term := tty.Get(termID)

	if term.ProcessCount() >= 4 {
		return progLimitReached
	}
	if proc.LiveCount() >= proc.MaxProcesses {
		return progLimitReached
	}

	filename, args := parseCommand(cmd)
	if filename == "" {
		return -1
	}

	dentry, err := image.ReadDentryByName(filename)
	if err != nil {
		return -1
	}
	if dentry.FileType != fs.FileTypeRegular {
		return -1
	}

	var magic [4]byte
	if n, err := image.ReadData(dentry.InodeIdx, 0, magic[:]); err != nil || n != 4 || magic != fs.ExecMagic {
		return -1
	}

	pid, perr := proc.Create(termID, tty.Ops{TermID: termID})
	if perr != nil {
		return -1
	}
	p := proc.Find(pid)
	p.SetArgs([]byte(args))

	switchToProcessFn(pid)

	size, err := image.FileSize(dentry)
	if err != nil {
		proc.Destroy(pid)
		return -1
	}
	image.ReadData(dentry.InodeIdx, 0, userBytes(vmm.ProgImageVirtAddr, int(size)))

	entry := *(*uint32)(unsafe.Pointer(uintptr(vmm.ProgImageVirtAddr + 24)))

	p.ExecEBP = framePointerFn()

	userESP := uint32(vmm.ProgWindowEnd - userStackGuard)
	setKernelStackFn(proc.KernelStackTop(pid))
	contextSwitchFn(entry, userESP, userCS, userDS)
	// never reached
	return 0
}

// userCS and userDS are the ring-3 code/data segment selectors installed in
// the GDT at boot; proc.ContextSwitch loads them verbatim into the
// interrupt-return frame it builds.
const (
	userCS = 0x23
	userDS = 0x2B
)
