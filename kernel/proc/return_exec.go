package proc

// ReturnFromExec installs ebp as the current frame pointer, places status in
// the return-value register, and returns from the enclosing function using
// that frame. halt uses this to unwind straight back into the matching
// execute call's caller with status as execute's return value, skipping
// every stack frame in between exactly as the original kernel's inline-asm
// jump_to_exec_ret does. The body is hand-written i386 assembly (not part
// of this tree); ReturnFromExec never returns to its caller.
func ReturnFromExec(ebp uint32, status int32)
