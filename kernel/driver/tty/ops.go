package tty

import (
	"github.com/AlexSunNik/ECE391-Kernel/kernel"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/cpu"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/fd"
)

var errBadArgument = &kernel.Error{Module: "tty", Message: "nil buffer"}

var (
	enableInterrupts = cpu.EnableInterrupts
	disableInts      = cpu.DisableInterrupts
)

// Ops is the fd.Ops implementation bound to a process's controlling
// terminal: slot 0 (stdin) reads a line at a time from TermID's keyboard
// queue, slot 1 (stdout) writes to TermID's screen. TermID is fixed at
// process creation to whichever terminal spawned the process, not whichever
// terminal happens to be on screen, so background terminals keep working
// when switched out.
type Ops struct {
	TermID int
}

func (o Ops) Open(d *fd.Descriptor) *kernel.Error { return nil }

func (o Ops) Close(d *fd.Descriptor) *kernel.Error { return nil }

// Read blocks, with interrupts enabled, until a line is available on
// TermID's terminal and copies it into buf. It mirrors the busy-wait every
// other blocking device read in this kernel uses rather than a scheduler
// wakeup queue.
func (o Ops) Read(d *fd.Descriptor, buf []byte) (int, *kernel.Error) {
	if buf == nil {
		return 0, errBadArgument
	}
	t := Get(o.TermID)
	t.BeginRead()
	enableInterrupts()
	for {
		if n, ok := t.ReadLine(buf); ok {
			disableInts()
			return n, nil
		}
	}
}

// Write echoes buf to TermID's screen, silently skipping embedded NUL
// bytes exactly as the original terminal_write does.
func (o Ops) Write(d *fd.Descriptor, buf []byte) (int, *kernel.Error) {
	if buf == nil {
		return 0, errBadArgument
	}
	t := Get(o.TermID)
	for _, b := range buf {
		if b == 0 {
			continue
		}
		t.WriteByte(b)
	}
	return len(buf), nil
}

var _ fd.Ops = Ops{}
