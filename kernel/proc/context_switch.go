package proc

// ContextSwitch builds the interrupt-return frame expected by IRET (user
// ss, user esp, flags with the interrupt-enable bit forced on, user cs,
// entry eip) and performs the user-mode transfer. It never returns; control
// resumes only via a later syscall interrupt or halt's unwind back through
// the saved execEBP. The body is hand-written i386 assembly (not part of
// this tree): a portable Go structure describing the saved context would
// still need inline assembly to actually execute IRET, so the boundary is
// drawn at this single bodyless declaration rather than spread across the
// caller.
func ContextSwitch(eip, esp, userCS, userDS uint32)
