// Package fs reads the kernel's read-only filesystem image: a boot block
// of directory entries, an inode table and a data-block region, all laid
// out verbatim in memory at the address the multiboot module table hands
// the kernel. There is no mutation path; every operation here is a read
// against that fixed image.
package fs

import (
	"unsafe"

	"github.com/AlexSunNik/ECE391-Kernel/kernel"
)

const (
	// NameLength is the maximum (not necessarily NUL-terminated) length
	// of a directory entry's name.
	NameLength = 32

	blockSize         = 4096
	maxBlocksPerInode = 1023
	maxDentries       = 63

	// firstSearchableDentry preserves a quirk of the original kernel's
	// by-name lookup: it begins comparing at directory entry index 1,
	// so entry 0 can never be matched by name (only by
	// ReadDentryByIndex(0)). This is deliberate preservation of observed
	// behavior, not a bug fix.
	firstSearchableDentry = 1
)

// FileType identifies what a directory entry's inode holds.
type FileType uint32

const (
	FileTypeDevice    FileType = 0
	FileTypeDirectory FileType = 1
	FileTypeRegular   FileType = 2
)

// ExecMagic is the four-byte header every executable regular file starts
// with.
var ExecMagic = [4]byte{0x7F, 'E', 'L', 'F'}

type onDiskDentry struct {
	name     [NameLength]byte
	fileType uint32
	inodeIdx uint32
	reserved [24]byte
}

type bootBlock struct {
	numDentries uint32
	numInodes   uint32
	numBlocks   uint32
	reserved    [52]byte
	dentries    [maxDentries]onDiskDentry
}

type onDiskInode struct {
	length   uint32
	blockIdx [maxBlocksPerInode]uint32
}

type dataBlock [blockSize]byte

// Dentry is a directory entry, copied out of the image.
type Dentry struct {
	Name     [NameLength]byte
	FileType FileType
	InodeIdx uint32
}

var (
	errNotMounted   = &kernel.Error{Module: "fs", Message: "filesystem is not mounted"}
	errBadName      = &kernel.Error{Module: "fs", Message: "name is empty or exceeds NameLength"}
	errNameNotFound = &kernel.Error{Module: "fs", Message: "no directory entry matches the given name"}
	errBadIndex     = &kernel.Error{Module: "fs", Message: "directory entry index out of range"}
	errBadInode     = &kernel.Error{Module: "fs", Message: "inode index out of range"}
)

// FS is a mounted filesystem image.
type FS struct {
	boot *bootBlock
}

// Mount interprets the image at base (the physical address the multiboot
// module table points at) as a filesystem. It performs no validation
// beyond reading the three boot-block counts; a corrupt image surfaces as
// out-of-range errors from later calls.
func Mount(base uintptr) *FS {
	return &FS{boot: (*bootBlock)(unsafe.Pointer(base))}
}

func (f *FS) inodeAt(idx uint32) *onDiskInode {
	addr := uintptr(unsafe.Pointer(f.boot)) + blockSize*(1+uintptr(idx))
	return (*onDiskInode)(unsafe.Pointer(addr))
}

func (f *FS) dataBlockAt(idx uint32) *dataBlock {
	addr := uintptr(unsafe.Pointer(f.boot)) + blockSize*(1+uintptr(f.boot.numInodes)+uintptr(idx))
	return (*dataBlock)(unsafe.Pointer(addr))
}

func toDentry(d *onDiskDentry) Dentry {
	return Dentry{Name: d.name, FileType: FileType(d.fileType), InodeIdx: d.inodeIdx}
}

func nameEquals(name string, raw [NameLength]byte) bool {
	if len(name) > NameLength {
		return false
	}
	for i := 0; i < len(name); i++ {
		if raw[i] != name[i] {
			return false
		}
	}
	// A name shorter than NameLength must be NUL-terminated in the
	// entry; a name of exactly NameLength is allowed to fill it.
	return len(name) == NameLength || raw[len(name)] == 0
}

// ReadDentryByName scans the directory for an entry named name. It starts
// at firstSearchableDentry, so directory entry 0 is never matched by name
// (only ReadDentryByIndex(0) can retrieve it) — preserved exactly as the
// original kernel behaves.
func (f *FS) ReadDentryByName(name string) (Dentry, *kernel.Error) {
	if f == nil || f.boot == nil {
		return Dentry{}, errNotMounted
	}
	if len(name) == 0 || len(name) > NameLength {
		return Dentry{}, errBadName
	}
	for i := firstSearchableDentry; i < int(f.boot.numDentries); i++ {
		if nameEquals(name, f.boot.dentries[i].name) {
			return toDentry(&f.boot.dentries[i]), nil
		}
	}
	return Dentry{}, errNameNotFound
}

// ReadDentryByIndex returns the index-th directory entry (0-based).
func (f *FS) ReadDentryByIndex(index uint32) (Dentry, *kernel.Error) {
	if f == nil || f.boot == nil {
		return Dentry{}, errNotMounted
	}
	if index >= f.boot.numDentries {
		return Dentry{}, errBadIndex
	}
	return toDentry(&f.boot.dentries[index]), nil
}

// DentryCount returns the number of directory entries in the image.
func (f *FS) DentryCount() uint32 {
	return f.boot.numDentries
}

// FileSize returns the byte length recorded in dentry's inode.
func (f *FS) FileSize(dentry Dentry) (uint32, *kernel.Error) {
	if dentry.InodeIdx >= f.boot.numInodes {
		return 0, errBadInode
	}
	return f.inodeAt(dentry.InodeIdx).length, nil
}

// ReadData copies up to len(buf) bytes starting at offset from inode's data
// into buf. It preserves the original kernel's two distinct early-return
// arithmetic expressions rather than unifying them: reaching the end of
// the file mid-buffer returns the number of bytes actually copied so far
// (i - offset); encountering an out-of-range block index instead returns
// one less than that (i - offset - 1), an off-by-one the spec records as
// deliberately preserved rather than corrected.
func (f *FS) ReadData(inode uint32, offset uint32, buf []byte) (int, *kernel.Error) {
	if f == nil || f.boot == nil {
		return 0, errNotMounted
	}
	if inode >= f.boot.numInodes || buf == nil {
		return 0, errBadInode
	}
	if len(buf) == 0 {
		return 0, nil
	}

	inodeStruct := f.inodeAt(inode)
	length := uint32(len(buf))

	var i uint32
	for i = offset; i < offset+length; i++ {
		blockIdx := inodeStruct.blockIdx[i/blockSize]
		if blockIdx >= f.boot.numBlocks {
			return int(i) - int(offset) - 1, nil
		}

		data := f.dataBlockAt(blockIdx)
		buf[i-offset] = data[i%blockSize]

		if i == inodeStruct.length {
			return int(i) - int(offset), nil
		}
	}
	return int(i) - int(offset), nil
}
