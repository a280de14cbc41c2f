package hal

import (
	"github.com/AlexSunNik/ECE391-Kernel/kernel/driver/tty"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/driver/video/console"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/hal/multiboot"
)

var (
	realConsole    console.Ega
	backupConsoles [tty.Count - 1]console.Ega

	// ActiveTerminal points to virtual terminal 0, the one driving the
	// real framebuffer, for code (early.Printf, panic dumps) that only
	// ever needs a single write target and existed before the three
	// virtual terminals were wired up.
	ActiveTerminal = tty.Get(0)
)

// backupVideoAddr returns the physical address of the backup video page
// reserved for the given terminal (1-based slot immediately following the
// real framebuffer page), matching kernel/mem/vmm's layout.
func backupVideoAddr(terminalID int) uintptr {
	const (
		videoPhysAddr = 0xB8000
		pageSize      = 4096
	)
	return videoPhysAddr + uintptr(1+terminalID)*pageSize
}

// InitTerminal attaches all three virtual terminals to their consoles: the
// real EGA framebuffer for terminal 0, and a console over each of the
// other terminals' backup video pages so their contents stay correct even
// while not shown on screen.
func InitTerminal() {
	fbInfo := multiboot.GetFramebufferInfo()
	width, height := uint16(fbInfo.Width), uint16(fbInfo.Height)

	realConsole.Init(width, height, uintptr(fbInfo.PhysAddr))

	var backups [tty.Count - 1]*console.Ega
	for i := range backupConsoles {
		backupConsoles[i].Init(width, height, backupVideoAddr(i+1))
		backups[i] = &backupConsoles[i]
	}

	tty.InitAll(&realConsole, backups)
}
