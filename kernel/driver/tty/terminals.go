package tty

import "github.com/AlexSunNik/ECE391-Kernel/kernel/driver/video/console"

// terminals holds the three virtual terminals the kernel multiplexes
// between. Terminal 0 is the one shown on screen (and therefore driving the
// real framebuffer) at boot.
var terminals [Count]Terminal

// activeID is the index of the terminal currently shown on screen.
var activeID int

func init() {
	for i := range terminals {
		terminals[i].SetID(i)
	}
}

// Terminals returns the fixed array of virtual terminals.
func Terminals() *[Count]Terminal {
	return &terminals
}

// Get returns the terminal with the given index.
func Get(id int) *Terminal {
	return &terminals[id]
}

// ActiveID returns the index of the terminal currently shown on screen.
func ActiveID() int {
	return activeID
}

// SetActiveID records which terminal is now shown on screen. It does not
// perform the video page copy itself; callers pair it with
// vmm.SaveVideoToBackup/RestoreVideoFromBackup around the switch.
func SetActiveID(id int) {
	activeID = id
}

// InitAll attaches every terminal to the given console and clears it. Only
// terminal 0's console is the real framebuffer; terminals 1 and 2 render
// into their own backup video pages via separate Ega consoles pointed at
// those physical addresses, so their contents stay current even while they
// are not shown on screen.
func InitAll(real *console.Ega, backups [Count - 1]*console.Ega) {
	terminals[0].AttachTo(real)
	terminals[0].Clear()

	for i, cons := range backups {
		terminals[i+1].AttachTo(cons)
		terminals[i+1].Clear()
	}
}
