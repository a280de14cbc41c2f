package vmm

import (
	"github.com/AlexSunNik/ECE391-Kernel/kernel"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/mem"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/mem/pmm"
)

// ErrInvalidMapping is returned when a virtual address does not fall within
// a region this kernel knows how to map.
var ErrInvalidMapping = &kernel.Error{Module: "vmm", Message: "virtual address does not point to a mappable region"}

// PageTableEntryFlag describes the flag bits of a directory or table entry.
// The bit layout is identical for page directory and page table entries on
// i386, with the exception that PageSize (bit 7) only has meaning in a
// directory entry.
type PageTableEntryFlag uintptr

const (
	FlagPresent PageTableEntryFlag = 1 << iota
	FlagRW
	FlagUserAccessible
	FlagWriteThroughCaching
	FlagDoNotCache
	FlagAccessed
	FlagDirty
	FlagHugePage
	FlagGlobal

	// FlagCopyOnWrite occupies bit 9, one of the three bits the x86 paging
	// format leaves available for OS use in both directory and table
	// entries.
	FlagCopyOnWrite PageTableEntryFlag = 1 << 9
)

// pteAddrMask isolates bits 12-31, the physical frame address field common
// to both 4KiB table entries and 4MiB-aligned directory entries.
const pteAddrMask = uintptr(0xfffff000)

// pageTableEntry is a single page directory or page table entry.
type pageTableEntry uintptr

// HasFlags returns true if all flags in the given flag-set are set.
func (pte pageTableEntry) HasFlags(flags PageTableEntryFlag) bool {
	return (uintptr(pte) & uintptr(flags)) == uintptr(flags)
}

// HasAnyFlag returns true if at least one of the flags in the given
// flag-set is set.
func (pte pageTableEntry) HasAnyFlag(flags PageTableEntryFlag) bool {
	return (uintptr(pte) & uintptr(flags)) != 0
}

// SetFlags sets the given flags on this entry without touching the frame
// address or any other flag bits.
func (pte *pageTableEntry) SetFlags(flags PageTableEntryFlag) {
	*pte = pageTableEntry(uintptr(*pte) | uintptr(flags))
}

// ClearFlags clears the given flags on this entry.
func (pte *pageTableEntry) ClearFlags(flags PageTableEntryFlag) {
	*pte = pageTableEntry(uintptr(*pte) &^ uintptr(flags))
}

// Frame returns the physical frame this entry points to.
func (pte pageTableEntry) Frame() pmm.Frame {
	return pmm.Frame((uintptr(pte) & pteAddrMask) >> mem.PageShift)
}

// SetFrame updates the physical frame this entry points to without
// affecting any flag bit.
func (pte *pageTableEntry) SetFrame(frame pmm.Frame) {
	*pte = pageTableEntry((uintptr(*pte) &^ pteAddrMask) | (uintptr(frame.Address()) & pteAddrMask))
}
