package proc

import "testing"

func TestKernelStackTopIsDistinctAndAlignedPerPID(t *testing.T) {
	seen := make(map[uint32]int, MaxProcesses)
	for pid := 0; pid < MaxProcesses; pid++ {
		top := KernelStackTop(pid)
		if top == 0 {
			t.Fatalf("expected a non-zero kernel stack top for pid %d", pid)
		}
		if other, ok := seen[top]; ok {
			t.Fatalf("pid %d and pid %d got the same kernel stack top %#x", pid, other, top)
		}
		seen[top] = pid
	}
}

func TestKernelStackTopCoversTheFullReservedRegion(t *testing.T) {
	first := KernelStackTop(0)
	second := KernelStackTop(1)

	var gotDiff uint32
	if second > first {
		gotDiff = second - first
	} else {
		gotDiff = first - second
	}
	if gotDiff != KernelStackSize {
		t.Fatalf("expected adjacent pids' stack tops to be exactly KernelStackSize apart; got %d", gotDiff)
	}
}
