package rtc

import (
	"testing"

	"github.com/AlexSunNik/ECE391-Kernel/kernel/fd"
)

func TestOpsOpenInstallsDefaultDivisor(t *testing.T) {
	var d fd.Descriptor
	if err := (Ops{}).Open(&d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Divisor(d.Position) != DefaultDivisor {
		t.Fatalf("expected default divisor %d; got %d", DefaultDivisor, d.Position)
	}
}

func TestOpsWriteRejectsShortBuffer(t *testing.T) {
	var d fd.Descriptor
	if _, err := (Ops{}).Write(&d, []byte{1, 2, 3}); err == nil {
		t.Fatalf("expected a 3-byte buffer to be rejected")
	}
}

func TestOpsWriteInstallsFrequency(t *testing.T) {
	var d fd.Descriptor
	buf := []byte{32, 0, 0, 0} // little-endian 32
	n, err := (Ops{}).Write(&d, buf)
	if err != nil || n != 4 {
		t.Fatalf("unexpected write result: n=%d err=%v", n, err)
	}
	wantDiv, _ := SetFrequency(32)
	if Divisor(d.Position) != wantDiv {
		t.Fatalf("expected divisor %d; got %d", wantDiv, d.Position)
	}
}

func TestOpsWriteRejectsInvalidFrequency(t *testing.T) {
	var d fd.Descriptor
	buf := []byte{7, 0, 0, 0} // not a power of two
	if _, err := (Ops{}).Write(&d, buf); err == nil {
		t.Fatalf("expected an invalid frequency to be rejected")
	}
}

func TestOpsReadWaitsOneTick(t *testing.T) {
	origEnable, origDisable := enableInterrupts, disableInts
	defer func() { enableInterrupts, disableInts = origEnable, origDisable }()
	enableInterrupts = func() {}
	disableInts = func() {}

	tickAvailable = true
	tickCount = uint32(DefaultDivisor) / terminalCount

	d := &fd.Descriptor{Position: uint32(DefaultDivisor)}
	if _, err := (Ops{}).Read(d, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tickAvailable {
		t.Fatalf("expected Read to consume the available tick")
	}
}
