package tty

import (
	"testing"
	"unsafe"

	"github.com/AlexSunNik/ECE391-Kernel/kernel/driver/video/console"
)

func TestTerminalPosition(t *testing.T) {
	specs := []struct {
		inX, inY   uint16
		expX, expY uint16
	}{
		{20, 20, 20, 20},
		{100, 20, 79, 20},
		{10, 200, 10, 24},
		{100, 100, 79, 24},
	}

	fb := make([]uint16, 80*25)
	var cons console.Ega
	cons.Init(80, 25, uintptr(unsafe.Pointer(&fb[0])))

	var term Terminal
	term.AttachTo(&cons)

	for specIndex, spec := range specs {
		term.SetPosition(spec.inX, spec.inY)
		if x, y := term.Position(); x != spec.expX || y != spec.expY {
			t.Errorf("[spec %d] expected setting position to (%d, %d) to update the position to (%d, %d); got (%d, %d)", specIndex, spec.inX, spec.inY, spec.expX, spec.expY, x, y)
		}
	}
}

func TestTerminalWrite(t *testing.T) {
	fb := make([]uint16, 80*25)
	var cons console.Ega
	cons.Init(80, 25, uintptr(unsafe.Pointer(&fb[0])))

	var term Terminal
	term.AttachTo(&cons)

	term.Clear()
	term.SetPosition(0, 1)
	term.Write([]byte("12\n\t3\n4\r567\b8"))

	specs := []struct {
		x, y    uint16
		expChar byte
	}{
		{0, 1, '1'},
		{1, 1, '2'},
		{0, 2, ' '},
		{1, 2, ' '},
		{2, 2, ' '},
		{3, 2, ' '},
		{4, 2, '3'},
		{0, 3, '5'},
		{1, 3, '6'},
		{2, 3, '8'}, // overwritten by backspace, so the 7 is gone
	}

	for specIndex, spec := range specs {
		ch := byte(fb[(spec.y*80)+spec.x] & 0xFF)
		if ch != spec.expChar {
			t.Errorf("[spec %d] expected char at (%d, %d) to be %c; got %c", specIndex, spec.x, spec.y, spec.expChar, ch)
		}
	}
}

func TestLineDiscipline(t *testing.T) {
	fb := make([]uint16, 80*25)
	var cons console.Ega
	cons.Init(80, 25, uintptr(unsafe.Pointer(&fb[0])))

	var term Terminal
	term.AttachTo(&cons)
	term.SetID(0)

	term.BeginRead()
	for _, ch := range []byte("ls") {
		term.PushKey(ch)
	}
	term.Backspace()
	term.PushKey('s')

	if _, ok := term.ReadLine(make([]byte, lineBufSize)); ok {
		t.Fatalf("expected ReadLine to report not-ready before Enter")
	}

	term.Enter()

	buf := make([]byte, lineBufSize)
	n, ok := term.ReadLine(buf)
	if !ok {
		t.Fatalf("expected ReadLine to report ready after Enter")
	}
	if got := string(buf[:n]); got != "ls\n" {
		t.Fatalf("expected line %q; got %q", "ls\n", got)
	}
}

func TestPIDStack(t *testing.T) {
	var term Terminal

	for pid := 0; pid < maxNestedProcesses; pid++ {
		if !term.PushPID(pid) {
			t.Fatalf("expected PushPID(%d) to succeed", pid)
		}
	}
	if term.PushPID(99) {
		t.Fatalf("expected PushPID to fail once the terminal is full")
	}

	if top, ok := term.TopPID(); !ok || top != maxNestedProcesses-1 {
		t.Fatalf("expected top pid %d; got %d (ok=%v)", maxNestedProcesses-1, top, ok)
	}
	if parent, ok := term.ParentPID(); !ok || parent != maxNestedProcesses-2 {
		t.Fatalf("expected parent pid %d; got %d (ok=%v)", maxNestedProcesses-2, parent, ok)
	}

	for expected := maxNestedProcesses - 1; expected >= 0; expected-- {
		pid, ok := term.PopPID()
		if !ok || pid != expected {
			t.Fatalf("expected popped pid %d; got %d (ok=%v)", expected, pid, ok)
		}
	}
	if _, ok := term.PopPID(); ok {
		t.Fatalf("expected PopPID to fail on an empty stack")
	}
}
