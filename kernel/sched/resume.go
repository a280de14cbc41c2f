package sched

// FramePointer returns the caller's EBP, i.e. Tick's own kernel stack
// frame at the instant it preempts the outgoing process. It is declared
// bodyless and backed by hand-written assembly, the same boundary the
// cpu package draws for every privileged or frame-raw primitive.
func FramePointer() uint32

// ResumeFrame installs ebp as the current frame pointer and returns from
// the enclosing function using that frame instead of the one it was
// called with. This is how Transfer jumps back into a previously
// preempted process: the process never sees a return from Tick, only a
// resumption of whatever instruction the timer interrupted it at.
// ResumeFrame never returns to its caller.
func ResumeFrame(ebp uint32)
