package vmm

import (
	"testing"

	"github.com/AlexSunNik/ECE391-Kernel/kernel"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/irq"
)

func mockVMMHooks(t *testing.T) *struct {
	switched   []uintptr
	registered []irq.ExceptionNum
	panicked   []*kernel.Error
} {
	t.Helper()
	origSwitch, origHandle, origPanic, origReadCR2 := switchPDTFn, handleExceptionWithCodeFn, panicFn, readCR2Fn
	t.Cleanup(func() {
		switchPDTFn, handleExceptionWithCodeFn, panicFn, readCR2Fn = origSwitch, origHandle, origPanic, origReadCR2
	})

	calls := &struct {
		switched   []uintptr
		registered []irq.ExceptionNum
		panicked   []*kernel.Error
	}{}
	switchPDTFn = func(addr uintptr) { calls.switched = append(calls.switched, addr) }
	handleExceptionWithCodeFn = func(vector irq.ExceptionNum, _ irq.ExceptionHandlerWithCode) {
		calls.registered = append(calls.registered, vector)
	}
	panicFn = func(err *kernel.Error) { calls.panicked = append(calls.panicked, err) }
	readCR2Fn = func() uint32 { return 0 }
	return calls
}

func TestInitBuildsAndLoadsTheDirectory(t *testing.T) {
	calls := mockVMMHooks(t)

	if err := Init(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !pageDirectory[kernelDirectoryIndex].HasFlags(FlagPresent | FlagRW | FlagHugePage) {
		t.Fatalf("expected the kernel directory entry to be present/RW/huge")
	}
	if !pageDirectory[lowMemDirectoryIndex].HasFlags(FlagPresent | FlagRW) {
		t.Fatalf("expected the low-memory directory entry to be present/RW")
	}
	if pageDirectory[progVidDirectoryIndex].HasFlags(FlagPresent) {
		t.Fatalf("expected the user-video directory entry to start out not-present")
	}
	if !pageDirectory[heapDirectoryIndex].HasFlags(FlagPresent | FlagRW) {
		t.Fatalf("expected the heap directory entry to be present/RW")
	}
	if len(calls.switched) != 1 {
		t.Fatalf("expected exactly one CR3 load; got %d", len(calls.switched))
	}
	if len(calls.registered) != 2 || calls.registered[0] != irq.PageFaultException || calls.registered[1] != irq.GPFException {
		t.Fatalf("expected page-fault and GPF handlers to be registered, in that order; got %v", calls.registered)
	}
}

func TestPageFaultHandlerPanics(t *testing.T) {
	calls := mockVMMHooks(t)

	pageFaultHandler(0, &irq.Frame{}, &irq.Regs{})

	if len(calls.panicked) != 1 {
		t.Fatalf("expected exactly one panic call; got %d", len(calls.panicked))
	}
}

func TestGeneralProtectionFaultHandlerPanics(t *testing.T) {
	calls := mockVMMHooks(t)

	generalProtectionFaultHandler(0, &irq.Frame{}, &irq.Regs{})

	if len(calls.panicked) != 1 {
		t.Fatalf("expected exactly one panic call; got %d", len(calls.panicked))
	}
}

func TestFlushTLBReloadsCR3WithItsCurrentValue(t *testing.T) {
	orig := switchPDTFn
	t.Cleanup(func() { switchPDTFn = orig })

	var got uintptr
	switchPDTFn = func(addr uintptr) { got = addr }

	flushTLB()

	if got == 0 {
		t.Fatalf("expected flushTLB to call switchPDTFn with the active PDT's address")
	}
}
