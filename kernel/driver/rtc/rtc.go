// Package rtc drives the CMOS real-time clock as a periodic interrupt
// source. The hardware is programmed once, at its maximum rate; every file
// descriptor opened against it gets its own virtual frequency, derived by
// counting physical ticks and dividing down, so several processes can each
// "read" the clock at a different pace off the one physical signal.
package rtc

import (
	"github.com/AlexSunNik/ECE391-Kernel/kernel"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/cpu"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/irq"
)

const (
	regStatusPort = 0x70
	regDataPort   = 0x71

	regA = 0x8A
	regB = 0x8B
	regC = 0x0C

	// maxFreq is the hardware's maximum interrupt rate, selected by
	// programming register A with rate 3 at Init time.
	maxFreq = 1024

	// MaxWritableFreq is the highest frequency rtc_write accepts. It is
	// lower than the physical rate: a descriptor's virtual frequency is
	// additionally derated by the terminal count so three terminals can
	// each drive their own virtual rate off the one physical tick.
	MaxWritableFreq = 512

	terminalCount = 3
)

var (
	tickCount uint32

	// tickAvailable is true whenever a physical tick has occurred since
	// the last Wait consumed one; Wait clears it before returning so a
	// second concurrent reader can't observe the same physical tick.
	tickAvailable = true

	outbFn           = cpu.Outb
	inbFn            = cpu.Inb
	enableInterrupts = cpu.EnableInterrupts
	disableInts      = cpu.DisableInterrupts

	errInvalidFrequency = &kernel.Error{Module: "rtc", Message: "frequency must be a power of two no greater than MaxWritableFreq"}
)

// Init programs register B to enable RTC interrupts and register A to the
// hardware's maximum rate (rate 3), then registers the IRQ8 handler.
func Init() {
	outbFn(regStatusPort, regB)
	prev := inbFn(regDataPort)
	outbFn(regStatusPort, regB)
	outbFn(regDataPort, prev|0x40)

	setRate(3)

	irq.HandleIRQ(irq.IRQRTC, handleIRQ)
}

func setRate(rate uint8) {
	rate &= 0x0F
	outbFn(regStatusPort, regA)
	prev := inbFn(regDataPort)
	outbFn(regStatusPort, regA)
	outbFn(regDataPort, (prev&0xF0)|rate)
}

func handleIRQ(_ *irq.Frame, _ *irq.Regs) {
	tickCount++
	tickAvailable = true

	// Reading register C acknowledges the interrupt; without it the RTC
	// never raises another one.
	outbFn(regStatusPort, regC)
	inbFn(regDataPort)
}

// Divisor is the per-descriptor RTC state: the number of physical ticks per
// virtual tick. rtc.Ops keeps it in fd.Descriptor's Position field, which
// carries no byte-stream meaning for the RTC device.
type Divisor uint32

// DefaultDivisor is installed by Open, corresponding to a virtual rate of
// 2Hz.
const DefaultDivisor = Divisor(maxFreq / 2)

// Open resets a descriptor's virtual RTC rate to 2Hz.
func Open() Divisor {
	return DefaultDivisor
}

// Close is a no-op; the RTC has no per-descriptor resource to release.
func Close() {}

// SetFrequency validates freq (a power of two no greater than
// MaxWritableFreq) and returns the divisor that produces it, or an error.
func SetFrequency(freq uint32) (Divisor, *kernel.Error) {
	if freq == 0 || freq&(freq-1) != 0 || freq > MaxWritableFreq {
		return 0, errInvalidFrequency
	}
	return Divisor(maxFreq / freq), nil
}

// Wait blocks, with interrupts enabled, until the next virtual tick for the
// given divisor elapses, then returns. It derates the physical tick count
// by the terminal count, matching the original kernel's three-terminal
// multiplex of a single hardware rate.
func Wait(div Divisor) {
	enableInterrupts()
	for !tickAvailable {
	}
	disableInts()

	virtualDiv := uint32(div) / terminalCount
	if virtualDiv == 0 {
		virtualDiv = 1
	}

	enableInterrupts()
	for tickCount%virtualDiv != 0 {
	}
	disableInts()

	tickAvailable = false
}
