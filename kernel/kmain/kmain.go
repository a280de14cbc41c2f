package kmain

import (
	"github.com/AlexSunNik/ECE391-Kernel/kernel"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/driver/keyboard"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/driver/rtc"
	_ "github.com/AlexSunNik/ECE391-Kernel/kernel/goruntime"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/fs"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/hal"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/hal/multiboot"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/irq"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/mem/pmm/allocator"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/mem/vmm"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/sched"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/selftest"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/syscall"
)

var (
	errKmainReturned  = &kernel.Error{Module: "kmain", Message: "Kmain returned"}
	errNoFilesystem   = &kernel.Error{Module: "kmain", Message: "boot loader did not supply a filesystem module"}
	errNoInitialShell = &kernel.Error{Module: "kmain", Message: "could not start the initial shell"}
)

// Kmain is the only Go symbol that is visible (exported) from the rt0 initialization
// code. This function is invoked by the rt0 assembly code after setting up the GDT
// and setting up a a minimal g0 struct that allows Go code using the 4K stack
// allocated by the assembly code.
//
// The rt0 code passes the address of the multiboot info payload provided by the
// bootloader as well as the physical addresses for the kernel start/end.
//
// Kmain is not expected to return. If it does, the rt0 code will halt the CPU.
//
//go:noinline
func Kmain(multibootInfoPtr, kernelStart, kernelEnd uintptr) {
	multiboot.SetInfoPtr(multibootInfoPtr)

	hal.InitTerminal()
	hal.ActiveTerminal.Clear()

	var err *kernel.Error
	if err = allocator.Init(kernelStart, kernelEnd); err != nil {
		panic(err)
	} else if err = vmm.Init(); err != nil {
		panic(err)
	}

	modStart, _, ok := multiboot.FirstModule()
	if !ok {
		kernel.Panic(errNoFilesystem)
	}
	fsImage := fs.Mount(modStart)

	keyboard.Init()
	rtc.Init()
	syscall.Init(fsImage)

	selftest.Run(fsImage).Print()

	// Execute always targets sched.CurrentTerminal, which Tick already set
	// to the terminal being transferred into before calling SpawnShellFn.
	sched.SpawnShellFn = func(int) { syscall.Execute("shell") }

	irq.HandleIRQ(irq.IRQTimer, sched.Tick)

	if syscall.Execute("shell") < 0 {
		kernel.Panic(errNoInitialShell)
	}

	// Use kernel.Panic instead of panic to prevent the compiler from
	// treating kernel.Panic as dead-code and eliminating it.
	kernel.Panic(errKmainReturned)
}
