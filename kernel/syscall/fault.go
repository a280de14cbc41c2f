package syscall

import (
	"github.com/AlexSunNik/ECE391-Kernel/kernel"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/irq"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/kfmt/early"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/proc"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/sched"
)

// installFaultHandlers wires the CPU exception vectors a user program can
// actually trigger (divide-by-zero, general protection, page fault) to a
// common handler: if a process is scheduled when the fault lands, it is
// marked excepted and force-halted with status 0, delivering 256 to its
// parent exactly as the original kernel's one shared exception handler
// does. A fault with no scheduled process (still possible during early
// boot, before the first execute) is a genuine kernel bug and still
// panics, which is the behavior kernel/mem/vmm installed before Init ran.
func installFaultHandlers() {
	irq.HandleException(irq.DivideByZero, func(frame *irq.Frame, regs *irq.Regs) {
		faultToHalt("divide-by-zero", frame, regs)
	})
	irq.HandleExceptionWithCode(irq.GPFException, func(_ uint32, frame *irq.Frame, regs *irq.Regs) {
		faultToHalt("general protection fault", frame, regs)
	})
	irq.HandleExceptionWithCode(irq.PageFaultException, func(_ uint32, frame *irq.Frame, regs *irq.Regs) {
		faultToHalt("page fault", frame, regs)
	})
}

func faultToHalt(name string, frame *irq.Frame, regs *irq.Regs) {
	pid, ok := sched.CurrentPID()
	if !ok {
		early.Printf("\nunrecoverable %s with no process scheduled\n", name)
		regs.Print()
		frame.Print()
		kernel.Panic(&kernel.Error{Module: "syscall", Message: "fatal exception outside any process"})
		return
	}

	early.Printf("\n%s in pid %d\n", name, pid)
	if p := proc.Find(pid); p != nil {
		p.Excepted = true
	}
	Halt(0)
}
