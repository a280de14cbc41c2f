// Package selftest runs a small suite of boot-time sanity checks against
// the filesystem image and RTC driver, in the spirit of the original
// kernel's checkpoint test harness: each check is a short, self-contained
// function returning pass/fail, and Run reports every result instead of
// stopping at the first failure. Unlike the original, nothing here ever
// triggers a real CPU exception or blocks on an interrupt: those checks
// (IDT population, page-fault boundaries, keyboard echo) only make sense
// against real hardware and have no useful hosted-test equivalent, so this
// package covers the parts of the original suite that can run to
// completion and report a result on their own: filesystem listing and
// read-back, and RTC frequency validation.
package selftest

import (
	"github.com/AlexSunNik/ECE391-Kernel/kernel/driver/rtc"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/fs"
	"github.com/AlexSunNik/ECE391-Kernel/kernel/kfmt/early"
)

// Result is the outcome of a single check.
type Result struct {
	Name   string
	Pass   bool
	Detail string
}

// Report is the full set of results from a Run.
type Report struct {
	Results []Result
}

// Passed is the number of checks that succeeded.
func (r *Report) Passed() int {
	n := 0
	for _, res := range r.Results {
		if res.Pass {
			n++
		}
	}
	return n
}

// Failed is the number of checks that did not succeed.
func (r *Report) Failed() int {
	return len(r.Results) - r.Passed()
}

func (r *Report) record(name string, pass bool, detail string) {
	r.Results = append(r.Results, Result{Name: name, Pass: pass, Detail: detail})
}

// Run exercises every check against the given mounted filesystem image and
// returns the accumulated report. It never panics: a check that can't run
// to completion (a malformed image, for instance) reports itself as failed
// rather than taking the rest of the suite down with it.
func Run(image *fs.FS) *Report {
	report := &Report{}
	checkListAllFiles(report, image)
	checkReadRegularFile(report, image)
	checkReadDirectoryName(report, image)
	checkRTCValidFrequencies(report)
	checkRTCRejectsInvalidFrequencies(report)
	return report
}

// checkListAllFiles walks every directory entry the image reports,
// grounded on tests.c's list_all_file: it exercises ReadDentryByIndex
// across the full range and FileSize for every regular file it finds.
func checkListAllFiles(report *Report, image *fs.FS) {
	count := image.DentryCount()
	seen := 0
	for i := uint32(0); i < count; i++ {
		dentry, err := image.ReadDentryByIndex(i)
		if err != nil {
			report.record("list_all_file", false, "ReadDentryByIndex failed before listing every entry")
			return
		}
		if dentry.FileType == fs.FileTypeRegular {
			if _, err := image.FileSize(dentry); err != nil {
				report.record("list_all_file", false, "FileSize failed for a regular file entry")
				return
			}
		}
		seen++
	}
	report.record("list_all_file", seen == int(count), "")
}

// checkReadRegularFile opens the first regular file the image lists and
// reads it back to completion, grounded on tests.c's print_file_txt_small /
// print_file_txt_large (both of which just drain a file one byte at a
// time and never inspect the content itself).
func checkReadRegularFile(report *Report, image *fs.FS) {
	count := image.DentryCount()
	for i := uint32(0); i < count; i++ {
		dentry, err := image.ReadDentryByIndex(i)
		if err != nil || dentry.FileType != fs.FileTypeRegular {
			continue
		}
		size, err := image.FileSize(dentry)
		if err != nil {
			report.record("print_file", false, "FileSize failed for a readable regular file")
			return
		}
		buf := make([]byte, size)
		n, err := image.ReadData(dentry.InodeIdx, 0, buf)
		if err != nil || uint32(n) != size {
			report.record("print_file", false, "ReadData did not return the whole file in one call")
			return
		}
		report.record("print_file", true, "")
		return
	}
	report.record("print_file", true, "no regular file present to read back")
}

// checkReadDirectoryName confirms entry 0 (".") is a directory, grounded on
// tests.c's list_all_file implicitly depending on "." always being present
// and always being the root entry.
func checkReadDirectoryName(report *Report, image *fs.FS) {
	dentry, err := image.ReadDentryByIndex(0)
	if err != nil {
		report.record("root_directory_entry", false, "could not read directory entry 0")
		return
	}
	report.record("root_directory_entry", dentry.FileType == fs.FileTypeDirectory, "")
}

// checkRTCValidFrequencies sweeps the power-of-two frequencies the original
// kernel's rtc_freq_change test cycles through, grounded on that test's
// frequency table (minus the non-power-of-two entries its comment doesn't
// actually use).
func checkRTCValidFrequencies(report *Report) {
	for _, freq := range []uint32{2, 8, 32, 128, 512} {
		if _, err := rtc.SetFrequency(freq); err != nil {
			report.record("rtc_freq_change", false, "a documented-valid frequency was rejected")
			return
		}
	}
	report.record("rtc_freq_change", true, "")
}

// checkRTCRejectsInvalidFrequencies mirrors tests.c's rtc_invalid_freq,
// which writes 182 (not a power of two) and expects rejection.
func checkRTCRejectsInvalidFrequencies(report *Report) {
	if _, err := rtc.SetFrequency(182); err == nil {
		report.record("rtc_invalid_freq", false, "a non-power-of-two frequency was accepted")
		return
	}
	if _, err := rtc.SetFrequency(rtc.MaxWritableFreq * 2); err == nil {
		report.record("rtc_invalid_freq", false, "a frequency above MaxWritableFreq was accepted")
		return
	}
	report.record("rtc_invalid_freq", true, "")
}

// Print writes a PASS/FAIL line per check to the early console, matching
// the original suite's TEST_OUTPUT macro.
func (r *Report) Print() {
	for _, res := range r.Results {
		status := "FAIL"
		if res.Pass {
			status = "PASS"
		}
		if res.Detail != "" {
			early.Printf("[selftest %s] %s (%s)\n", res.Name, status, res.Detail)
		} else {
			early.Printf("[selftest %s] %s\n", res.Name, status)
		}
	}
	early.Printf("[selftest] %d passed, %d failed\n", r.Passed(), r.Failed())
}
