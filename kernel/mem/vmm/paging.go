package vmm

import (
	"github.com/AlexSunNik/ECE391-Kernel/kernel/mem"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/mem/pmm"
)

func memcopyPage(src, dst uintptr) {
	mem.Memcopy(src, dst, mem.PageSize)
}

// SwitchToProcess rewrites the program-image directory entry to point at
// the 4MiB physical frame owned by the given pid and flushes the TLB. It
// does not touch the user-video slot; callers that also need the video
// page visible call EnableUserVideoPage separately, matching setup_paging
// followed by an explicit vidmap in the original kernel.
func SwitchToProcess(pid int) {
	physAddr := uintptr(progPhysBase + pid*progPhysStride)

	pageDirectory[progDirectoryIndex].SetFlags(FlagPresent | FlagRW | FlagUserAccessible | FlagHugePage)
	pageDirectory[progDirectoryIndex].SetFrame(pmm.Frame(physAddr >> 12))
	flushTLBFn()
}

// EnableUserVideoPage makes the remapped video page visible to user mode.
func EnableUserVideoPage() {
	pageDirectory[progVidDirectoryIndex].SetFlags(FlagPresent)
	pageTableVideo[0].SetFlags(FlagPresent)
	flushTLBFn()
}

// DisableUserVideoPage hides the remapped video page from user mode.
func DisableUserVideoPage() {
	pageDirectory[progVidDirectoryIndex].ClearFlags(FlagPresent)
	pageTableVideo[0].ClearFlags(FlagPresent)
	flushTLBFn()
}

// RemapUserVideo points the user-visible video page at the real framebuffer
// when termID is the terminal currently shown on screen, or at that
// terminal's backup page otherwise. Called whenever the active terminal
// changes so a background process's vidmap'd page keeps following its own
// terminal's contents.
func RemapUserVideo(termID, activeTermID int) {
	if termID == activeTermID {
		pageTableVideo[0].SetFrame(pmm.Frame(videoPage))
	} else {
		pageTableVideo[0].SetFrame(pmm.Frame(videoPage + termID + 1))
	}
	flushTLBFn()
}

// SaveVideoToBackup copies the live framebuffer into termID's backup page,
// used just before switching the screen away from that terminal.
func SaveVideoToBackup(termID int) {
	memcopyPage(videoPhysAddr, videoPhysAddr+(1+termID)<<12)
}

// RestoreVideoFromBackup copies termID's backup page into the live
// framebuffer, used just after switching the screen onto that terminal.
func RestoreVideoFromBackup(termID int) {
	memcopyPage(videoPhysAddr+(1+termID)<<12, videoPhysAddr)
}
