// Package proc owns the process table: a fixed slab of six process control
// blocks, one per possible process, allocated lowest-free-slot-first and
// linked to their parent by index rather than pointer. There is no dynamic
// PCB allocation; the slab is a package-level array sized to the kernel's
// process ceiling. The original kernel co-locates each PCB with its kernel
// stack, recovering the PCB address from ESP by masking off the stack's
// low bits; that trick has no Go equivalent, so the PCB slab and the
// per-pid kernel stacks in layout.go are two separate arrays instead, tied
// together by sharing a pid as their common index rather than by address.
package proc

import (
	"github.com/AlexSunNik/ECE391-Kernel/kernel"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/driver/tty"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/fd"
)

// MaxProcesses is the global process ceiling: six PCB slots, matching the
// six 4MiB physical frames kernel/mem/vmm reserves for program images.
const MaxProcesses = 6

// ArgsSize is the size of a PCB's stored command-line argument tail.
const ArgsSize = 128

// NoParent marks a PCB with no parent: the root shell of a terminal.
const NoParent = -1

// Status is a PCB's lifecycle state.
type Status int

const (
	StatusFree Status = iota
	StatusLive
)

// PCB is one process's kernel-resident metadata.
type PCB struct {
	PID    int
	Status Status

	// ParentPID is NoParent for a terminal's root shell, otherwise the
	// pid that called execute to create this process.
	ParentPID int
	TermID    int

	// ExecEBP is the frame pointer saved by execute, used by halt to
	// unwind back into the parent's execute call.
	ExecEBP uint32
	// SchedEBP is the frame pointer saved by the scheduler when this
	// process's terminal is rotated away from, used to resume it later.
	SchedEBP uint32

	VideoMapped bool

	// Excepted is set by the common CPU exception handler just before it
	// forces a halt(0): it tells halt to deliver status 256 to the
	// parent instead of the argument it was (nominally) called with.
	Excepted bool

	Args    [ArgsSize]byte
	ArgsLen int

	FDs fd.Table
}

var (
	table     [MaxProcesses]PCB
	liveCount int

	errProcessLimitReached  = &kernel.Error{Module: "proc", Message: "global process limit reached"}
	errTerminalLimitReached = &kernel.Error{Module: "proc", Message: "terminal process limit reached"}
	errNotLive              = &kernel.Error{Module: "proc", Message: "pid is not live"}
	errNotTopOfStack        = &kernel.Error{Module: "proc", Message: "pid is not the innermost process on its terminal"}
)

func init() {
	for i := range table {
		table[i] = PCB{PID: i, Status: StatusFree, ParentPID: NoParent}
	}
}

// LiveCount returns the number of currently live processes across every
// terminal, the global counterpart of each Terminal's own process count.
func LiveCount() int {
	return liveCount
}

// Create allocates the lowest free PCB slot for a new process on termID,
// wires its file-descriptor table's stdin/stdout to terminalOps, sets its
// parent to the terminal's current innermost process (or NoParent if the
// terminal is empty), and pushes it onto the terminal's PID stack. It
// fails without mutating anything if either the global or per-terminal
// process ceiling is already reached.
func Create(termID int, terminalOps fd.Ops) (int, *kernel.Error) {
	if liveCount >= MaxProcesses {
		return 0, errProcessLimitReached
	}
	term := tty.Get(termID)
	if term.ProcessCount() >= 4 {
		return 0, errTerminalLimitReached
	}

	slot := -1
	for i := range table {
		if table[i].Status == StatusFree {
			slot = i
			break
		}
	}
	if slot == -1 {
		// liveCount < MaxProcesses guarantees a free slot exists; this
		// would only fire if the two counters drifted apart.
		return 0, errProcessLimitReached
	}

	parent := NoParent
	if top, ok := term.TopPID(); ok {
		parent = top
	}

	table[slot] = PCB{PID: slot, Status: StatusLive, ParentPID: parent, TermID: termID}
	table[slot].FDs.Init(terminalOps)

	if !term.PushPID(slot) {
		table[slot] = PCB{PID: slot, Status: StatusFree, ParentPID: NoParent}
		return 0, errTerminalLimitReached
	}
	liveCount++

	return slot, nil
}

// Find returns the PCB for pid, or nil if pid is out of range.
func Find(pid int) *PCB {
	if pid < 0 || pid >= MaxProcesses {
		return nil
	}
	return &table[pid]
}

// Destroy tears down pid: it must be the innermost (topmost) process on
// its terminal, matching halt()'s assumption that only the scheduled
// terminal's active process can terminate itself.
func Destroy(pid int) *kernel.Error {
	p := Find(pid)
	if p == nil || p.Status != StatusLive {
		return errNotLive
	}
	term := tty.Get(p.TermID)
	if top, ok := term.TopPID(); !ok || top != pid {
		return errNotTopOfStack
	}
	term.PopPID()
	*p = PCB{PID: pid, Status: StatusFree, ParentPID: NoParent}
	liveCount--
	return nil
}

// SetArgs copies args (truncated to ArgsSize) into pid's argument buffer.
func (p *PCB) SetArgs(args []byte) {
	p.ArgsLen = copy(p.Args[:], args)
}
