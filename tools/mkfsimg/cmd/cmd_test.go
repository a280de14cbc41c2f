package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"unsafe"

	"github.com/AlexSunNik/ECE391-Kernel/kernel/fs"
)

func TestRunMkfsimgPacksFilesAndDevices(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "frame0.txt")
	if err := os.WriteFile(filePath, []byte("hello world"), 0o644); err != nil {
		t.Fatalf("unexpected error writing fixture file: %v", err)
	}

	origOut, origDevices := outPath, deviceNames
	t.Cleanup(func() { outPath, deviceNames = origOut, origDevices })

	outPath = filepath.Join(dir, "fs.img")
	deviceNames = []string{"rtc"}

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)

	if err := runMkfsimg(rootCmd, []string{filePath}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("expected the image file to have been written: %v", err)
	}

	img := fs.Mount(uintptr(unsafe.Pointer(&data[0])))
	if _, err := img.ReadDentryByName("rtc"); err != nil {
		t.Fatalf("expected the rtc device entry to be present: %v", err)
	}
	dentry, err := img.ReadDentryByName("frame0.txt")
	if err != nil {
		t.Fatalf("expected frame0.txt to be present: %v", err)
	}
	size, err := img.FileSize(dentry)
	if err != nil || size != uint32(len("hello world")) {
		t.Fatalf("expected size %d; got %d, err=%v", len("hello world"), size, err)
	}
}

func TestRunMkfsimgFailsOnMissingFile(t *testing.T) {
	dir := t.TempDir()

	origOut, origDevices := outPath, deviceNames
	t.Cleanup(func() { outPath, deviceNames = origOut, origDevices })

	outPath = filepath.Join(dir, "fs.img")
	deviceNames = nil

	if err := runMkfsimg(rootCmd, []string{filepath.Join(dir, "missing.txt")}); err == nil {
		t.Fatalf("expected an error for a nonexistent input file")
	}
}
