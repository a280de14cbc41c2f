// Package sched implements round-robin rotation across the three virtual
// terminals, driven by the timer IRQ. Only one terminal's process runs at a
// time; the other two are suspended mid-instruction at whatever point the
// last tick preempted them, resumed later by jumping back into their saved
// kernel frame pointer exactly where they left off.
package sched

import (
	"github.com/AlexSunNik/ECE391-Kernel/kernel/cpu"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/driver/tty"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/irq"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/mem/vmm"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/proc"
)

// TerminalCount mirrors tty.Count; scheduling rotates across exactly this
// many terminals regardless of how many currently host a process.
const TerminalCount = tty.Count

var scheduledTerm int

// SpawnShellFn is called by Transfer when the terminal it is rotating onto
// has no live process. It is injected at boot (kmain wires it to
// kernel/syscall's Execute) rather than imported directly, since execute
// belongs a layer above the scheduler and importing it here would cycle
// back through sched for the current-terminal lookup syscall needs.
var SpawnShellFn func(termID int)

var (
	switchToProcessFn = vmm.SwitchToProcess
	enableUserVideoFn = vmm.EnableUserVideoPage
	remapUserVideoFn  = vmm.RemapUserVideo
	activeDisplayIDFn = tty.ActiveID
	currentFramePtrFn = FramePointer
	resumeFrameFn     = ResumeFrame
	setKernelStackFn  = cpu.SetKernelStack
)

// CurrentTerminal returns the terminal index whose process is presently
// scheduled (i.e. whichever terminal's process issued the system call
// currently executing).
func CurrentTerminal() int {
	return scheduledTerm
}

// CurrentPID returns the PID of the process currently scheduled, or
// ok=false if that terminal has no live process.
func CurrentPID() (pid int, ok bool) {
	return tty.Get(scheduledTerm).TopPID()
}

// Tick runs on every timer interrupt. If no process exists anywhere it is a
// no-op (the dispatcher still sends EOI); otherwise it advances the
// scheduled terminal by one, saves the outgoing terminal's current frame
// pointer into its topmost PCB, and transfers control to the next
// terminal's process, never returning to this call unless the next
// terminal turns out to need a fresh shell (see Transfer).
func Tick(_ *irq.Frame, _ *irq.Regs) {
	if proc.LiveCount() == 0 {
		return
	}

	outgoing := scheduledTerm
	scheduledTerm = (scheduledTerm + 1) % TerminalCount

	if pid, ok := tty.Get(outgoing).TopPID(); ok {
		if p := proc.Find(pid); p != nil {
			p.SchedEBP = currentFramePtrFn()
		}
	}

	Transfer(scheduledTerm)
}

// Transfer switches execution to terminal t: points the video-output layer
// at t's framebuffer or backup page depending on whether t is displayed,
// spawns a shell if t is idle, or otherwise restores t's topmost process's
// paging, user-video mapping and file-descriptor table and resumes it at
// its saved frame pointer. The resume path never returns to the caller.
func Transfer(t int) {
	remapUserVideoFn(t, activeDisplayIDFn())

	pid, ok := tty.Get(t).TopPID()
	if !ok {
		if SpawnShellFn != nil {
			SpawnShellFn(t)
		}
		return
	}

	p := proc.Find(pid)
	if p == nil {
		return
	}

	switchToProcessFn(pid)
	if p.VideoMapped {
		enableUserVideoFn()
	}

	setKernelStackFn(proc.KernelStackTop(pid))
	resumeFrameFn(p.SchedEBP)
}
