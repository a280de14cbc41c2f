package fs

import (
	"encoding/binary"
	"io"

	"github.com/AlexSunNik/ECE391-Kernel/kernel"
)

// Entry describes one file to place in a freshly built image; mkfsimg and
// the syscall and selftest packages' tests build images from it. It mirrors Dentry/onDiskInode but in a form a hosted
// tool can populate without reaching into this package's unexported
// on-disk structs.
type Entry struct {
	Name     string
	FileType FileType
	Data     []byte
}

var (
	errTooManyEntries = &kernel.Error{Module: "fs", Message: "more entries than the boot block's directory table can hold"}
	errNameTooLong    = &kernel.Error{Module: "fs", Message: "entry name exceeds NameLength"}
	errTooManyBlocks  = &kernel.Error{Module: "fs", Message: "entry data exceeds a single inode's block table"}
)

// WriteImage encodes entries (with an implicit leading "." directory entry
// at index 0, matching every image this kernel mounts) into the exact
// boot-block/inode-table/data-block layout Mount expects, and writes it to
// w. It is the inverse of Mount: Mount interprets bytes as the on-disk
// structs via unsafe.Pointer, WriteImage produces those same bytes by hand
// for a hosted tool that has no business doing unsafe pointer casts of its
// own.
func WriteImage(w io.Writer, entries []Entry) *kernel.Error {
	if len(entries)+1 > maxDentries {
		return errTooManyEntries
	}

	numBlocksByEntry := make([]int, len(entries))
	totalBlocks := 0
	for i, e := range entries {
		if len(e.Name) > NameLength {
			return errNameTooLong
		}
		n := (len(e.Data) + blockSize - 1) / blockSize
		if n == 0 {
			n = 1
		}
		if n > maxBlocksPerInode {
			return errTooManyBlocks
		}
		numBlocksByEntry[i] = n
		totalBlocks += n
	}

	boot := make([]byte, blockSize)
	binary.LittleEndian.PutUint32(boot[0:4], uint32(len(entries)+1))
	binary.LittleEndian.PutUint32(boot[4:8], uint32(len(entries)))
	binary.LittleEndian.PutUint32(boot[8:12], uint32(totalBlocks))

	putDentry := func(idx int, name string, fileType FileType, inodeIdx uint32) {
		off := 64 + idx*64
		copy(boot[off:off+NameLength], name)
		binary.LittleEndian.PutUint32(boot[off+32:off+36], uint32(fileType))
		binary.LittleEndian.PutUint32(boot[off+36:off+40], inodeIdx)
	}
	putDentry(0, ".", FileTypeDirectory, 0)
	for i, e := range entries {
		putDentry(i+1, e.Name, e.FileType, uint32(i))
	}

	if _, err := w.Write(boot); err != nil {
		return &kernel.Error{Module: "fs", Message: "short write of boot block: " + err.Error()}
	}

	blockCursor := 0
	for i, e := range entries {
		inode := make([]byte, blockSize)
		binary.LittleEndian.PutUint32(inode[0:4], uint32(len(e.Data)))
		for b := 0; b < numBlocksByEntry[i]; b++ {
			binary.LittleEndian.PutUint32(inode[4+b*4:8+b*4], uint32(blockCursor+b))
		}
		blockCursor += numBlocksByEntry[i]
		if _, err := w.Write(inode); err != nil {
			return &kernel.Error{Module: "fs", Message: "short write of an inode block: " + err.Error()}
		}
	}

	for _, e := range entries {
		remaining := e.Data
		wrote := 0
		for wrote == 0 || len(remaining) > 0 {
			block := make([]byte, blockSize)
			n := copy(block, remaining)
			remaining = remaining[n:]
			if _, err := w.Write(block); err != nil {
				return &kernel.Error{Module: "fs", Message: "short write of a data block: " + err.Error()}
			}
			wrote += n
			if len(e.Data) == 0 {
				break
			}
		}
	}

	return nil
}
