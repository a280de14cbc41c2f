package selftest

import (
	"bytes"
	"testing"
	"unsafe"

	"github.com/AlexSunNik/ECE391-Kernel/kernel/fs"
)

// buildFSImage encodes names[1:] (names[0] is always the implicit "."
// directory entry fs.WriteImage supplies on its own) as a filesystem image
// and mounts it, mirroring the helper in kernel/syscall's tests (which also
// returns the raw image bytes).
func buildFSImage(t *testing.T, names []string, types []fs.FileType, fileData [][]byte) *fs.FS {
	t.Helper()

	entries := make([]fs.Entry, 0, len(names)-1)
	for i := 1; i < len(names); i++ {
		entries = append(entries, fs.Entry{Name: names[i], FileType: types[i], Data: fileData[i]})
	}

	var buf bytes.Buffer
	if err := fs.WriteImage(&buf, entries); err != nil {
		t.Fatalf("unexpected error building test image: %v", err)
	}
	img := buf.Bytes()
	return fs.Mount(uintptr(unsafe.Pointer(&img[0])))
}

func TestRunReportsAllPassingOnAWellFormedImage(t *testing.T) {
	image := buildFSImage(t,
		[]string{".", "rtc", "frame0.txt"},
		[]fs.FileType{fs.FileTypeDirectory, fs.FileTypeDevice, fs.FileTypeRegular},
		[][]byte{{}, {}, []byte("hello world")})

	report := Run(image)

	if report.Failed() != 0 {
		for _, res := range report.Results {
			if !res.Pass {
				t.Errorf("unexpected failure: %s (%s)", res.Name, res.Detail)
			}
		}
	}
	if report.Passed() != len(report.Results) {
		t.Fatalf("expected every check to pass; got %d/%d", report.Passed(), len(report.Results))
	}
}

func TestRTCFrequencyChecks(t *testing.T) {
	report := &Report{}
	checkRTCValidFrequencies(report)
	checkRTCRejectsInvalidFrequencies(report)

	for _, res := range report.Results {
		if !res.Pass {
			t.Fatalf("expected %s to pass; detail: %s", res.Name, res.Detail)
		}
	}
}
