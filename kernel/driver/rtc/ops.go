package rtc

import (
	"github.com/AlexSunNik/ECE391-Kernel/kernel"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/fd"
)

// Ops is the fd.Ops implementation bound to the RTC device descriptor. It
// stores the descriptor's virtual divisor in Position, reusing the same
// cursor field every other device treats as a byte offset.
type Ops struct{}

func (Ops) Open(d *fd.Descriptor) *kernel.Error {
	d.Position = uint32(Open())
	return nil
}

func (Ops) Close(d *fd.Descriptor) *kernel.Error {
	Close()
	return nil
}

// Read blocks until one virtual tick at the descriptor's current rate
// elapses, then returns. buf's contents and length are ignored, matching
// the original kernel's rtc_read.
func (Ops) Read(d *fd.Descriptor, buf []byte) (int, *kernel.Error) {
	Wait(Divisor(d.Position))
	return 0, nil
}

// Write interprets buf as a single little-endian uint32 frequency and
// installs it as the descriptor's new virtual rate.
func (Ops) Write(d *fd.Descriptor, buf []byte) (int, *kernel.Error) {
	if len(buf) != 4 {
		return 0, errInvalidFrequency
	}
	freq := uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24
	div, err := SetFrequency(freq)
	if err != nil {
		return 0, err
	}
	d.Position = uint32(div)
	return len(buf), nil
}

var _ fd.Ops = Ops{}
