package fs

import (
	"github.com/AlexSunNik/ECE391-Kernel/kernel"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/fd"
)

var (
	errWriteOnly = &kernel.Error{Module: "fs", Message: "the filesystem is read-only"}
)

// FileOps is the fd.Ops implementation bound to a regular file's
// descriptor: open does nothing beyond what Table.Open already set up,
// read pulls from the image starting at the descriptor's cursor and
// advances it by the actual bytes read, write always fails.
type FileOps struct {
	FS *FS
}

func (o FileOps) Open(d *fd.Descriptor) *kernel.Error { return nil }

func (o FileOps) Close(d *fd.Descriptor) *kernel.Error { return nil }

func (o FileOps) Read(d *fd.Descriptor, buf []byte) (int, *kernel.Error) {
	n, err := o.FS.ReadData(d.InodeIdx, d.Position, buf)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		d.Position += uint32(n)
	}
	return n, nil
}

func (o FileOps) Write(d *fd.Descriptor, buf []byte) (int, *kernel.Error) {
	return 0, errWriteOnly
}

// DirectoryOps is the fd.Ops implementation bound to the single directory
// descriptor: each read copies the next directory entry's name, one per
// call, into buf (at most len(buf) bytes). The cursor walks entry indices
// starting at 1 — directory entry 0 is skipped here exactly as
// ReadDentryByName skips it — and the byte count returned is the name's own
// length (capped at len(buf)), not the number of bytes requested, matching
// the original kernel's directory_read.
type DirectoryOps struct {
	FS *FS
}

func (o DirectoryOps) Open(d *fd.Descriptor) *kernel.Error {
	d.Position = firstSearchableDentry
	return nil
}

func (o DirectoryOps) Close(d *fd.Descriptor) *kernel.Error { return nil }

func (o DirectoryOps) Read(d *fd.Descriptor, buf []byte) (int, *kernel.Error) {
	if uint32(d.Position) >= o.FS.DentryCount() || buf == nil {
		return 0, nil
	}
	dentry, err := o.FS.ReadDentryByIndex(d.Position)
	if err != nil {
		return 0, err
	}
	d.Position++

	n := copy(buf, dentry.Name[:])
	length := 0
	for length < NameLength && dentry.Name[length] != 0 {
		length++
	}
	if length < n {
		n = length
	}
	return n, nil
}

func (o DirectoryOps) Write(d *fd.Descriptor, buf []byte) (int, *kernel.Error) {
	return 0, errWriteOnly
}

var (
	_ fd.Ops = FileOps{}
	_ fd.Ops = DirectoryOps{}
)
