package tty

// BeginRead marks this terminal as having a terminal_read system call in
// progress, discarding any stale buffered line from before the call.
func (t *Terminal) BeginRead() {
	t.reading = true
	t.lineLen = 0
	t.lineReady = false
}

// PushKey appends a printable byte typed at the keyboard to the in-progress
// input line and echoes it to the screen. Bytes beyond lineBufSize-1 are
// dropped, leaving room for the newline Enter appends.
func (t *Terminal) PushKey(b byte) {
	if t.lineLen >= lineBufSize-1 {
		return
	}
	t.lineBuf[t.lineLen] = b
	t.lineLen++
	t.WriteByte(b)
}

// Backspace erases the last buffered character, if any, from both the
// input line and the screen.
func (t *Terminal) Backspace() {
	if t.lineLen == 0 {
		return
	}
	t.lineLen--
	t.WriteByte('\b')
}

// Enter terminates the in-progress input line with a newline, echoes it,
// and marks the line ready for ReadLine to consume.
func (t *Terminal) Enter() {
	t.WriteByte('\n')
	if t.lineLen < lineBufSize {
		t.lineBuf[t.lineLen] = '\n'
		t.lineLen++
	}
	t.lineReady = true
}

// ReadLine copies the most recently completed input line into dst and
// reports how many bytes were copied. It returns ok=false if Enter has not
// been pressed since BeginRead, in which case the caller is expected to
// keep polling with interrupts enabled, exactly like the busy-wait used
// elsewhere in this kernel for device reads.
func (t *Terminal) ReadLine(dst []byte) (n int, ok bool) {
	if !t.lineReady {
		return 0, false
	}

	n = copy(dst, t.lineBuf[:t.lineLen])
	t.reading = false
	t.lineReady = false
	t.lineLen = 0
	return n, true
}
