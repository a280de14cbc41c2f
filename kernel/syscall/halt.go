package syscall

import (
	"github.com/AlexSunNik/ECE391-Kernel/kernel/driver/tty"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/fd"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/mem/vmm"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/proc"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/sched"
)

var (
	disableUserVideoFn = vmm.DisableUserVideoPage
	returnFromExecFn   = proc.ReturnFromExec
)

// Halt tears down the scheduled terminal's topmost process and delivers
// status (or 256, if the process died by an uncaught CPU exception) to
// whichever process called the execute that started it. It requires the
// dying process to be its terminal's innermost one, matching halt()'s
// assumption that only the running process can terminate itself.
//
// If the dying process is its terminal's root shell, there is no parent to
// return to: the terminal is cleared and a fresh shell is launched in its
// place instead, so every virtual terminal always has something running.
//
// Halt returns only if the scheduled terminal has no process or the
// replacement shell cannot be started; otherwise it ends either inside the
// tail-called Execute("shell") or by unwinding through proc.ReturnFromExec
// into the parent's execute call.
func Halt(status uint8) {
	termID := sched.CurrentTerminal()
	pid, ok := tty.Get(termID).TopPID()
	if !ok {
		return
	}
	p := proc.Find(pid)
	if p == nil {
		return
	}

	for slot := 2; slot < fd.Count; slot++ {
		p.FDs.Close(slot)
	}

	parentPID := p.ParentPID
	excepted := p.Excepted

	if parentPID == proc.NoParent {
		proc.Destroy(pid)
		tty.Get(termID).ClearScreenAndLine()
		Execute("shell")
		return
	}

	if p.VideoMapped {
		disableUserVideoFn()
	}
	execEBP := p.ExecEBP
	proc.Destroy(pid)

	switchToProcessFn(parentPID)

	result := int32(status)
	if excepted {
		result = expError
	}
	setKernelStackFn(proc.KernelStackTop(parentPID))
	returnFromExecFn(execEBP, result)
}
