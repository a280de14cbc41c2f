// Package keyboard drives the PS/2 keyboard: it translates scancode set 1
// bytes into ASCII using the shift/caps/ctrl/alt modifier state, feeds
// completed characters into the active virtual terminal's line discipline,
// and handles the keyboard's two chords that never reach a running process:
// Ctrl+L (clear screen) and Alt+F1/F2/F3 (switch the displayed terminal).
package keyboard

import (
	"github.com/AlexSunNik/ECE391-Kernel/kernel/cpu"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/driver/tty"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/irq"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/mem/vmm"
)

const dataPort = 0x60

const (
	scanCapsLock     = 0x3A
	scanLShiftPress  = 0x2A
	scanLShiftRelese = 0xAA
	scanRShiftPress  = 0x36
	scanRShiftReles  = 0xB6
	scanCtrlPress    = 0x1D
	scanCtrlRelease  = 0x9D
	scanAltPress     = 0x38
	scanAltRelease   = 0xB8
	scanEnter        = 0x1C
	scanBackspace    = 0x0E
	scanTab          = 0x0F
	scanL            = 0x26
	scanF1           = 0x3B
	scanF2           = 0x3C
	scanF3           = 0x3D

	tabSpaces = 4
)

var (
	capsLock, leftShift, rightShift, ctrl, alt bool

	inbFn            = cpu.Inb
	setActiveIDFn    = tty.SetActiveID
	activeIDFn       = tty.ActiveID
	saveVideoFn      = vmm.SaveVideoToBackup
	restoreVideoFn   = vmm.RestoreVideoFromBackup
	remapUserVideoFn = vmm.RemapUserVideo
)

// Init registers the IRQ1 handler with the interrupt dispatcher.
func Init() {
	irq.HandleIRQ(irq.IRQKeyboard, handleIRQ)
}

func handleIRQ(_ *irq.Frame, _ *irq.Regs) {
	scancode := inbFn(dataPort)
	handleScancode(scancode)
}

// handleScancode applies one scancode's worth of modifier-state update and
// acts on the resulting key. It is factored out of handleIRQ so tests can
// drive it directly without faking port I/O.
func handleScancode(scancode uint8) {
	switch scancode {
	case scanCapsLock:
		capsLock = !capsLock
	case scanLShiftPress:
		leftShift = true
	case scanLShiftRelese:
		leftShift = false
	case scanRShiftPress:
		rightShift = true
	case scanRShiftReles:
		rightShift = false
	case scanCtrlPress:
		ctrl = true
	case scanCtrlRelease:
		ctrl = false
	case scanAltPress:
		alt = true
	case scanAltRelease:
		alt = false
	}

	if alt {
		switch scancode {
		case scanF1:
			switchTerminal(0)
			return
		case scanF2:
			switchTerminal(1)
			return
		case scanF3:
			switchTerminal(2)
			return
		}
	}

	shift := leftShift || rightShift

	if ctrl && scancode == scanL {
		activeTerminal().ClearScreenAndLine()
		return
	}

	switch scancode {
	case scanBackspace:
		activeTerminal().Backspace()
		return
	case scanEnter:
		activeTerminal().Enter()
		return
	case scanTab:
		for i := 0; i < tabSpaces; i++ {
			activeTerminal().PushKey(' ')
		}
		return
	}

	if int(scancode) >= numScancodes {
		return
	}

	var ch byte
	switch {
	case shift:
		ch = scancodeShift[scancode]
	case capsLock:
		ch = scancodeCaps[scancode]
	default:
		ch = scancodeLower[scancode]
	}
	if ch == 0 {
		return
	}

	activeTerminal().PushKey(ch)
}

func activeTerminal() *tty.Terminal {
	return tty.Get(activeIDFn())
}

// switchTerminal makes target the terminal shown on screen, saving the
// outgoing terminal's framebuffer contents to its backup page and restoring
// the incoming terminal's, then remapping every terminal's vidmap'd video
// page (if any) to follow the new arrangement. It is a no-op if target is
// already the displayed terminal.
func switchTerminal(target int) {
	current := activeIDFn()
	if target == current {
		return
	}

	saveVideoFn(current)
	setActiveIDFn(target)
	restoreVideoFn(target)

	for id := 0; id < tty.Count; id++ {
		remapUserVideoFn(id, target)
	}
}
