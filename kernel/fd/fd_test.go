package fd

import (
	"testing"

	"github.com/AlexSunNik/ECE391-Kernel/kernel"
)

type stubOps struct {
	opened, closed bool
	writeLog       []byte
}

func (s *stubOps) Open(d *Descriptor) *kernel.Error  { s.opened = true; return nil }
func (s *stubOps) Close(d *Descriptor) *kernel.Error { s.closed = true; return nil }
func (s *stubOps) Read(d *Descriptor, buf []byte) (int, *kernel.Error) {
	return copy(buf, "hi"), nil
}
func (s *stubOps) Write(d *Descriptor, buf []byte) (int, *kernel.Error) {
	s.writeLog = append(s.writeLog, buf...)
	return len(buf), nil
}

func TestTableInitBindsStdinStdout(t *testing.T) {
	var tbl Table
	term := &stubOps{}
	tbl.Init(term)

	if _, err := tbl.Get(Stdin); err != nil {
		t.Fatalf("expected stdin to be in use: %v", err)
	}
	if _, err := tbl.Get(Stdout); err != nil {
		t.Fatalf("expected stdout to be in use: %v", err)
	}
	if _, err := tbl.Get(2); err == nil {
		t.Fatalf("expected slot 2 to be free after Init")
	}
}

func TestTableOpenFindsFirstFreeSlot(t *testing.T) {
	var tbl Table
	tbl.Init(&stubOps{})

	first := &stubOps{}
	fdNum, err := tbl.Open(first, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fdNum != 2 {
		t.Fatalf("expected first open to land in slot 2; got %d", fdNum)
	}
	if !first.opened {
		t.Fatalf("expected Ops.Open to be called")
	}
}

func TestTableOpenFailsWhenFull(t *testing.T) {
	var tbl Table
	tbl.Init(&stubOps{})

	for i := 2; i < Count; i++ {
		if _, err := tbl.Open(&stubOps{}, 0); err != nil {
			t.Fatalf("unexpected error filling slot %d: %v", i, err)
		}
	}
	if _, err := tbl.Open(&stubOps{}, 0); err == nil {
		t.Fatalf("expected Open to fail once all 8 slots are in use")
	}
}

func TestTableCloseFreesSlot(t *testing.T) {
	var tbl Table
	tbl.Init(&stubOps{})

	ops := &stubOps{}
	fdNum, _ := tbl.Open(ops, 0)

	if err := tbl.Close(fdNum); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ops.closed {
		t.Fatalf("expected Ops.Close to be called")
	}
	if _, err := tbl.Get(fdNum); err == nil {
		t.Fatalf("expected slot %d to be free after Close", fdNum)
	}

	second, err := tbl.Open(&stubOps{}, 0)
	if err != nil || second != fdNum {
		t.Fatalf("expected the freed slot %d to be reused; got %d, err=%v", fdNum, second, err)
	}
}

func TestTableReadWriteDispatch(t *testing.T) {
	var tbl Table
	tbl.Init(&stubOps{})

	ops := &stubOps{}
	fdNum, _ := tbl.Open(ops, 0)

	n, err := tbl.Write(fdNum, []byte("abc"))
	if err != nil || n != 3 {
		t.Fatalf("unexpected write result: n=%d err=%v", n, err)
	}
	if string(ops.writeLog) != "abc" {
		t.Fatalf("expected write to reach the underlying Ops; got %q", ops.writeLog)
	}

	buf := make([]byte, 8)
	n, err = tbl.Read(fdNum, buf)
	if err != nil || string(buf[:n]) != "hi" {
		t.Fatalf("unexpected read result: n=%d err=%v buf=%q", n, err, buf[:n])
	}
}

func TestTableOperationsOnInvalidFD(t *testing.T) {
	var tbl Table
	tbl.Init(&stubOps{})

	if _, err := tbl.Read(2, nil); err == nil {
		t.Fatalf("expected an error reading an unopened slot")
	}
	if _, err := tbl.Write(-1, nil); err == nil {
		t.Fatalf("expected an error writing a negative fd")
	}
	if err := tbl.Close(Count); err == nil {
		t.Fatalf("expected an error closing an out-of-range fd")
	}
}
