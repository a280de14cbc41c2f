package tty

// PushPID registers pid as the newest (innermost) process running on this
// terminal. It returns false if the terminal is already hosting
// maxNestedProcesses processes, matching execute()'s PROG_LIMIT_REACHED
// check in the original kernel.
func (t *Terminal) PushPID(pid int) bool {
	if t.pidCount >= maxNestedProcesses {
		return false
	}
	t.pidStack[t.pidCount] = pid
	t.pidCount++
	return true
}

// PopPID removes and returns the innermost process running on this
// terminal. The second return value is false if no process is running.
func (t *Terminal) PopPID() (int, bool) {
	if t.pidCount == 0 {
		return 0, false
	}
	t.pidCount--
	return t.pidStack[t.pidCount], true
}

// TopPID returns the innermost (currently scheduled) process on this
// terminal, or ok=false if the terminal is idle.
func (t *Terminal) TopPID() (pid int, ok bool) {
	if t.pidCount == 0 {
		return 0, false
	}
	return t.pidStack[t.pidCount-1], true
}

// ParentPID returns the process one level up from the innermost process,
// i.e. the process that will regain control when the current one halts.
// ok is false for the outermost (first shell) process on the terminal.
func (t *Terminal) ParentPID() (pid int, ok bool) {
	if t.pidCount < 2 {
		return 0, false
	}
	return t.pidStack[t.pidCount-2], true
}

// ProcessCount returns the number of processes currently running on this
// terminal.
func (t *Terminal) ProcessCount() int {
	return t.pidCount
}
