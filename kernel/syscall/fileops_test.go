package syscall

import (
	"testing"

	"github.com/AlexSunNik/ECE391-Kernel/kernel/fd"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/fs"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/mem/vmm"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/proc"
)

func TestReadWriteWithNoCurrentProcess(t *testing.T) {
	resetProcState(t)

	if Read(0, make([]byte, 4)) != -1 {
		t.Fatalf("expected Read to fail with no scheduled process")
	}
	if Write(0, make([]byte, 4)) != -1 {
		t.Fatalf("expected Write to fail with no scheduled process")
	}
}

func TestOpenCloseRoundTrip(t *testing.T) {
	resetProcState(t)
	mockTerminals(t)

	img, _ := buildFSImage(t, []string{".", "rtc", "notes"},
		[]fs.FileType{fs.FileTypeDirectory, fs.FileTypeDevice, fs.FileTypeRegular},
		[][]byte{{}, {}, []byte("hello")})
	image = img

	if _, err := proc.Create(0, nopTermOps{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fdNum := Open("notes")
	if fdNum < 2 {
		t.Fatalf("expected a descriptor slot >= 2; got %d", fdNum)
	}

	buf := make([]byte, 5)
	n := Read(int(fdNum), buf)
	if n != 5 || string(buf) != "hello" {
		t.Fatalf("expected to read \"hello\"; got %q (%d)", buf[:n], n)
	}

	if Close(int(fdNum)) != 0 {
		t.Fatalf("expected Close to succeed")
	}
	if Read(int(fdNum), buf) != -1 {
		t.Fatalf("expected Read on a closed descriptor to fail")
	}
}

func TestOpenUnknownNameFails(t *testing.T) {
	resetProcState(t)
	img, _ := buildFSImage(t, []string{"."}, []fs.FileType{fs.FileTypeDirectory}, [][]byte{{}})
	image = img

	if _, err := proc.Create(0, nopTermOps{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Open("missing") != -1 {
		t.Fatalf("expected Open of an unknown name to fail")
	}
}

func TestCloseRejectsStandardDescriptors(t *testing.T) {
	resetProcState(t)
	if _, err := proc.Create(0, nopTermOps{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Close(fd.Stdin) != -1 || Close(fd.Stdout) != -1 {
		t.Fatalf("expected stdin/stdout to be unclosable through the syscall layer")
	}
}

func TestGetArgsRoundTrip(t *testing.T) {
	resetProcState(t)
	pid, err := proc.Create(0, nopTermOps{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	proc.Find(pid).SetArgs([]byte("-l -a"))

	buf := make([]byte, 32)
	if GetArgs(buf) != 0 {
		t.Fatalf("expected GetArgs to succeed")
	}
	if string(buf[:5]) != "-l -a" || buf[5] != 0 {
		t.Fatalf("expected a NUL-terminated copy of the stored args; got %q", buf[:6])
	}
}

func TestGetArgsFailsWhenBufferTooSmall(t *testing.T) {
	resetProcState(t)
	pid, err := proc.Create(0, nopTermOps{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	proc.Find(pid).SetArgs([]byte("verbose"))

	if GetArgs(make([]byte, 3)) != -1 {
		t.Fatalf("expected GetArgs to fail when the buffer can't fit args plus a NUL")
	}
}

func TestGetArgsFailsWithNoStoredArgs(t *testing.T) {
	resetProcState(t)
	if _, err := proc.Create(0, nopTermOps{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if GetArgs(make([]byte, 32)) != -1 {
		t.Fatalf("expected GetArgs to fail when the process has no stored args")
	}
}

func TestVidmapRejectsOutOfWindowPointer(t *testing.T) {
	resetProcState(t)
	if _, err := proc.Create(0, nopTermOps{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Vidmap(vmm.ProgWindowBase - 4) != -1 {
		t.Fatalf("expected Vidmap to reject a pointer before the program window")
	}
	if Vidmap(vmm.ProgWindowEnd) != -1 {
		t.Fatalf("expected Vidmap to reject a pointer at or past the end of the program window")
	}
}
