package tty

import (
	"testing"
	"unsafe"

	"github.com/AlexSunNik/ECE391-Kernel/kernel/driver/video/console"
)

func attachedTerminal(id int) *Terminal {
	fb := make([]uint16, 80*25)
	var cons console.Ega
	cons.Init(80, 25, uintptr(unsafe.Pointer(&fb[0])))

	term := Get(id)
	term.AttachTo(&cons)
	return term
}

func TestOpsWriteSkipsEmbeddedNUL(t *testing.T) {
	term := attachedTerminal(0)
	term.Clear()
	term.SetPosition(0, 0)

	ops := Ops{TermID: 0}
	n, err := ops.Write(nil, []byte{'h', 'i', 0, '!'})
	if err != nil || n != 4 {
		t.Fatalf("unexpected write result: n=%d err=%v", n, err)
	}
	if x, _ := term.Position(); x != 3 {
		t.Fatalf("expected the embedded NUL to be skipped, leaving cursor at column 3; got %d", x)
	}
}

func TestOpsReadReturnsCompletedLine(t *testing.T) {
	origEnable, origDisable := enableInterrupts, disableInts
	defer func() { enableInterrupts, disableInts = origEnable, origDisable }()
	enableInterrupts = func() {}
	disableInts = func() {}

	term := attachedTerminal(1)
	ops := Ops{TermID: 1}

	// Read arms the terminal and busy-waits, exactly like the keyboard
	// interrupt handler racing a blocked terminal_read in the real
	// kernel; a goroutine stands in for that interrupt-driven input.
	done := make(chan struct{})
	buf := make([]byte, lineBufSize)
	var n int
	var readErr error
	go func() {
		n, readErr = ops.Read(nil, buf)
		close(done)
	}()

	for !term.reading {
	}
	for _, ch := range []byte("ls") {
		term.PushKey(ch)
	}
	term.Enter()
	<-done

	if readErr != nil {
		t.Fatalf("unexpected error: %v", readErr)
	}
	if string(buf[:n]) != "ls\n" {
		t.Fatalf("expected %q; got %q", "ls\n", buf[:n])
	}
}

func TestOpsRejectsNilBuffer(t *testing.T) {
	ops := Ops{TermID: 0}
	if _, err := ops.Write(nil, nil); err == nil {
		t.Fatalf("expected a nil write buffer to be rejected")
	}
	if _, err := ops.Read(nil, nil); err == nil {
		t.Fatalf("expected a nil read buffer to be rejected")
	}
}
