package sched

import (
	"testing"

	"github.com/AlexSunNik/ECE391-Kernel/kernel"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/driver/tty"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/fd"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/proc"
)

// fakeTermOps is a minimal fd.Ops stand-in so proc.Create has something to
// bind stdin/stdout to without pulling in the real tty device plumbing.
type fakeTermOps struct{}

func (fakeTermOps) Open(d *fd.Descriptor) *kernel.Error  { return nil }
func (fakeTermOps) Close(d *fd.Descriptor) *kernel.Error { return nil }
func (fakeTermOps) Read(d *fd.Descriptor, buf []byte) (int, *kernel.Error) {
	return 0, nil
}
func (fakeTermOps) Write(d *fd.Descriptor, buf []byte) (int, *kernel.Error) {
	return 0, nil
}

// resetState drains every terminal's PID stack and destroys any live PCB so
// each test starts from a clean process table, since both tty and proc keep
// package-level state.
func resetState(t *testing.T) {
	t.Helper()
	scheduledTerm = 0
	for id := 0; id < tty.Count; id++ {
		term := tty.Get(id)
		for {
			pid, ok := term.TopPID()
			if !ok {
				break
			}
			proc.Destroy(pid)
		}
	}
}

func mockHooks(t *testing.T) *[]int {
	t.Helper()
	origSwitch, origVideo, origRemap, origDisplay, origFrame, origResume, origKStack :=
		switchToProcessFn, enableUserVideoFn, remapUserVideoFn, activeDisplayIDFn, currentFramePtrFn, resumeFrameFn, setKernelStackFn
	t.Cleanup(func() {
		switchToProcessFn, enableUserVideoFn, remapUserVideoFn, activeDisplayIDFn, currentFramePtrFn, resumeFrameFn, setKernelStackFn =
			origSwitch, origVideo, origRemap, origDisplay, origFrame, origResume, origKStack
	})

	calls := &[]int{}
	switchToProcessFn = func(pid int) { *calls = append(*calls, pid) }
	enableUserVideoFn = func() {}
	remapUserVideoFn = func(int, int) {}
	activeDisplayIDFn = func() int { return 0 }
	currentFramePtrFn = func() uint32 { return 0xdeadbeef }
	resumeFrameFn = func(uint32) {}
	setKernelStackFn = func(uint32) {}
	return calls
}

func TestTickNoopWhenNoProcessesExist(t *testing.T) {
	resetState(t)
	mockHooks(t)

	before := scheduledTerm
	Tick(nil, nil)
	if scheduledTerm != before {
		t.Fatalf("expected Tick to leave scheduledTerm unchanged with no live processes")
	}
}

func TestTickRotatesAndSavesOutgoingFrame(t *testing.T) {
	resetState(t)
	calls := mockHooks(t)

	pid0, err := proc.Create(0, fakeTermOps{})
	if err != nil {
		t.Fatalf("unexpected error creating terminal 0's shell: %v", err)
	}
	if _, err := proc.Create(1, fakeTermOps{}); err != nil {
		t.Fatalf("unexpected error creating terminal 1's shell: %v", err)
	}

	scheduledTerm = 0
	Tick(nil, nil)

	if scheduledTerm != 1 {
		t.Fatalf("expected scheduledTerm to advance to 1; got %d", scheduledTerm)
	}
	if got := proc.Find(pid0).SchedEBP; got != 0xdeadbeef {
		t.Fatalf("expected outgoing terminal's PCB to record the mocked frame pointer; got %#x", got)
	}
	if len(*calls) == 0 {
		t.Fatalf("expected Transfer to call switchToProcessFn for the new terminal's process")
	}
}

func TestTransferSpawnsShellOnIdleTerminal(t *testing.T) {
	resetState(t)
	mockHooks(t)

	spawned := -1
	origSpawn := SpawnShellFn
	defer func() { SpawnShellFn = origSpawn }()
	SpawnShellFn = func(termID int) { spawned = termID }

	Transfer(2)

	if spawned != 2 {
		t.Fatalf("expected SpawnShellFn to be called for the idle terminal 2; got %d", spawned)
	}
}

func TestTransferResumesExistingProcess(t *testing.T) {
	resetState(t)
	calls := mockHooks(t)

	pid, err := proc.Create(0, fakeTermOps{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	proc.Find(pid).VideoMapped = true

	origSpawn := SpawnShellFn
	defer func() { SpawnShellFn = origSpawn }()
	SpawnShellFn = func(int) { t.Fatalf("SpawnShellFn should not run for a terminal with a live process") }

	Transfer(0)

	if len(*calls) != 1 || (*calls)[0] != pid {
		t.Fatalf("expected switchToProcessFn to be called with pid %d; got %v", pid, *calls)
	}
}
