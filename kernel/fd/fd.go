// Package fd implements the per-process file-descriptor table: eight fixed
// slots, the first two permanently bound to the terminal at process
// creation, the rest handed out by open to whichever device or file the
// name resolves to. Every slot dispatches through the same four-method
// interface regardless of what is behind it, matching the original
// kernel's op-table-pointer-per-slot design but expressed as a Go interface
// instead of a struct of function pointers.
package fd

import "github.com/AlexSunNik/ECE391-Kernel/kernel"

// Count is the number of descriptor slots in every process's table.
const Count = 8

const (
	// Stdin and Stdout are permanently bound to the controlling
	// terminal's read and write ends at process creation.
	Stdin  = 0
	Stdout = 1
)

// Descriptor is one slot of a process's file-descriptor table.
type Descriptor struct {
	Ops Ops
	// InodeIdx is the backing inode for a regular file; unused (left 0)
	// by character devices and directories.
	InodeIdx uint32
	// Position is a cursor most devices treat as a byte offset, but
	// which the RTC instead reinterprets as a frequency divisor.
	Position uint32
	InUse    bool
}

// Ops is the polymorphic device interface every descriptor slot dispatches
// through. Handlers receive the Descriptor itself rather than just a slot
// number so they can read and reinterpret Position and InodeIdx (a regular
// file's read cursor, a directory's next-entry index, the RTC's frequency
// divisor) without the fd package knowing anything about those meanings.
type Ops interface {
	Open(d *Descriptor) *kernel.Error
	Close(d *Descriptor) *kernel.Error
	Read(d *Descriptor, buf []byte) (int, *kernel.Error)
	Write(d *Descriptor, buf []byte) (int, *kernel.Error)
}

var (
	errNoFreeSlot    = &kernel.Error{Module: "fd", Message: "no free file descriptor slot"}
	errBadDescriptor = &kernel.Error{Module: "fd", Message: "invalid or unopened file descriptor"}
)

// Table is a process's fixed eight-slot file-descriptor array.
type Table struct {
	slots [Count]Descriptor
}

// Init resets the table and binds slots 0 and 1 to the terminal ops table,
// as every process gets on creation.
func (t *Table) Init(terminalOps Ops) {
	for i := range t.slots {
		t.slots[i] = Descriptor{}
	}
	t.slots[Stdin] = Descriptor{Ops: terminalOps, InUse: true}
	t.slots[Stdout] = Descriptor{Ops: terminalOps, InUse: true}
}

// Open installs ops (and an optional inode index, for regular files) into
// the first free slot starting at slot 2, calls its Open hook, and returns
// the slot number. User `open` is the only caller; slots 0 and 1 are never
// reassigned.
func (t *Table) Open(ops Ops, inodeIdx uint32) (int, *kernel.Error) {
	for i := 2; i < Count; i++ {
		if t.slots[i].InUse {
			continue
		}
		t.slots[i] = Descriptor{Ops: ops, InodeIdx: inodeIdx, InUse: true}
		if err := ops.Open(&t.slots[i]); err != nil {
			t.slots[i] = Descriptor{}
			return 0, err
		}
		return i, nil
	}
	return 0, errNoFreeSlot
}

// Close releases fd's slot after calling its Close hook. Closing slot 0 or
// 1 is permitted by this layer; callers (the syscall dispatcher) reject it
// before it reaches here, matching the original kernel's close().
func (t *Table) Close(fd int) *kernel.Error {
	d, err := t.get(fd)
	if err != nil {
		return err
	}
	if err := d.Ops.Close(d); err != nil {
		return err
	}
	t.slots[fd] = Descriptor{}
	return nil
}

// Read dispatches to fd's Ops.Read.
func (t *Table) Read(fd int, buf []byte) (int, *kernel.Error) {
	d, err := t.get(fd)
	if err != nil {
		return 0, err
	}
	return d.Ops.Read(d, buf)
}

// Write dispatches to fd's Ops.Write.
func (t *Table) Write(fd int, buf []byte) (int, *kernel.Error) {
	d, err := t.get(fd)
	if err != nil {
		return 0, err
	}
	return d.Ops.Write(d, buf)
}

// Get returns the descriptor at fd for callers (getargs, vidmap) that need
// to reach the owning process state without going through Read/Write.
func (t *Table) Get(fd int) (*Descriptor, *kernel.Error) {
	return t.get(fd)
}

func (t *Table) get(fd int) (*Descriptor, *kernel.Error) {
	if fd < 0 || fd >= Count || !t.slots[fd].InUse {
		return nil, errBadDescriptor
	}
	return &t.slots[fd], nil
}
