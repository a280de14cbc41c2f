package main

import "github.com/AlexSunNik/ECE391-Kernel/kernel/kmain"

// multibootInfoPtr, kernelStart and kernelEnd are populated by the rt0
// assembly stub before main is invoked. They are kept as package-level
// variables (rather than passed through a register-only calling convention)
// so the Go compiler can see a concrete use of the values and will not
// optimize away the call below. kernelStart/kernelEnd bound the kernel's own
// image in physical memory so the boot-time frame allocator can skip them.
var (
	multibootInfoPtr uintptr
	kernelStart      uintptr
	kernelEnd        uintptr
)

// main is the only Go symbol exported from the rt0 initialization code. It
// works as a trampoline into the real kernel entrypoint and is intentionally
// defined to prevent the compiler from treating kmain.Kmain as dead code.
//
// The rt0 code invokes main after programming the GDT, installing a minimal
// IDT stub and setting up a boot stack large enough to run Go code. main is
// not expected to return; if it does the rt0 code halts the CPU.
func main() {
	kmain.Kmain(multibootInfoPtr, kernelStart, kernelEnd)
}
