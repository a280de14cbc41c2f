// Package tty implements the three virtual terminals a booted kernel
// multiplexes between: each owns its own cursor, line-discipline input
// buffer and backup video page, and each can host up to four processes.
package tty

import "github.com/AlexSunNik/ECE391-Kernel/kernel/driver/video/console"

const (
	defaultFg = console.LightGrey
	defaultBg = console.Black
	tabWidth  = 4

	// lineBufSize is the maximum number of bytes terminal_read can return
	// in one call, including the trailing newline.
	lineBufSize = 128

	// maxNestedProcesses bounds how many processes may be running on a
	// single terminal at once (a shell plus three levels of children).
	maxNestedProcesses = 4

	// Count is the number of virtual terminals the kernel multiplexes.
	Count = 3
)

// Terminal implements a single virtual terminal: a text-mode console
// viewport plus the line-buffered keyboard input queue and process stack
// associated with it. Only the terminal currently on screen drives the
// physical framebuffer directly; the other two read and write through
// their backup video pages until switched in.
type Terminal struct {
	id int

	// Go interfaces will not work before we can get memory allocation
	// working. Till then we need to use concrete types instead.
	cons *console.Ega

	width  uint16
	height uint16

	curX    uint16
	curY    uint16
	curAttr console.Attr

	// line discipline: keyboard input accumulates here until Enter is
	// pressed, at which point ReadLine hands the buffer to whichever
	// process is blocked in a terminal_read system call.
	lineBuf   [lineBufSize]byte
	lineLen   int
	lineReady bool
	reading   bool

	// pidStack holds the PIDs of every process running on this terminal,
	// oldest (the shell) first. The scheduler switches into whichever
	// entry is on top.
	pidStack [maxNestedProcesses]int
	pidCount int
}

// ID returns this terminal's index (0-2).
func (t *Terminal) ID() int {
	return t.id
}

// SetID assigns this terminal's index. Called once during Init.
func (t *Terminal) SetID(id int) {
	t.id = id
}

// AttachTo links the terminal with the specified console device and updates
// the terminal's dimensions to match the ones reported by the attached
// device.
func (t *Terminal) AttachTo(cons *console.Ega) {
	t.cons = cons
	t.width, t.height = cons.Dimensions()
	t.curX = 0
	t.curY = 0

	// Default to lightgrey on black text.
	t.curAttr = makeAttr(defaultFg, defaultBg)
}

// Clear clears the terminal screen. It does not affect the in-progress
// input line; use ClearScreenAndLine for the Ctrl+L behavior.
func (t *Terminal) Clear() {
	t.clear()
}

// ClearScreenAndLine clears the screen and, if a terminal_read is in
// progress, discards whatever has been typed so far and restarts the
// prompt at the top-left corner. This matches Ctrl+L in the original
// keyboard driver, which clears the line buffer unconditionally whenever a
// read is outstanding, regardless of how much has already been typed.
func (t *Terminal) ClearScreenAndLine() {
	t.clear()
	t.SetPosition(0, 0)
	if t.reading {
		t.lineLen = 0
		t.lineReady = false
	}
}

// Position returns the current cursor position (x, y).
func (t *Terminal) Position() (uint16, uint16) {
	return t.curX, t.curY
}

// SetPosition sets the current cursor position to (x,y).
func (t *Terminal) SetPosition(x, y uint16) {
	if x >= t.width {
		x = t.width - 1
	}
	if y >= t.height {
		y = t.height - 1
	}
	t.curX, t.curY = x, y
}

// Write implements io.Writer.
func (t *Terminal) Write(data []byte) (int, error) {
	for _, b := range data {
		t.WriteByte(b)
	}
	return len(data), nil
}

// WriteByte implements io.ByteWriter.
func (t *Terminal) WriteByte(b byte) error {
	switch b {
	case '\r':
		t.cr()
	case '\n':
		t.cr()
		t.lf()
	case '\b':
		if t.curX > 0 {
			t.curX--
			t.cons.Write(' ', t.curAttr, t.curX, t.curY)
		}
	case '\t':
		for i := 0; i < tabWidth; i++ {
			t.cons.Write(' ', t.curAttr, t.curX, t.curY)
			t.curX++
			if t.curX == t.width {
				t.cr()
				t.lf()
			}
		}
	default:
		t.cons.Write(b, t.curAttr, t.curX, t.curY)
		t.curX++
		if t.curX == t.width {
			t.cr()
			t.lf()
		}
	}

	return nil
}

func (t *Terminal) clear() {
	t.cons.Clear(0, 0, t.width, t.height)
}

func (t *Terminal) cr() {
	t.curX = 0
}

func (t *Terminal) lf() {
	if t.curY+1 < t.height {
		t.curY++
		return
	}

	t.cons.Scroll(console.Up, 1)
	t.cons.Clear(0, t.height-1, t.width, 1)
}

func makeAttr(fg, bg console.Attr) console.Attr {
	return (bg << 4) | (fg & 0xF)
}
