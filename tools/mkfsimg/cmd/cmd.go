// Package cmd implements mkfsimg's command-line interface: a hosted tool
// that packs a set of regular files, plus any named device entries, into
// the read-only boot-block image kernel/fs mounts at boot.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AlexSunNik/ECE391-Kernel/kernel/fs"
	"github.com/spf13/cobra"
)

var (
	outPath     string
	deviceNames []string
)

var rootCmd = &cobra.Command{
	Use:   "mkfsimg [files...]",
	Short: "Builds a kernel/fs filesystem image out of regular files and named device entries.",
	Long: "mkfsimg packs each file argument into the image as a regular file, named by its base\n" +
		"name, and adds one zero-length device entry per --device name. The output always\n" +
		"carries the implicit \".\" root directory entry kernel/fs expects at index 0.",
	RunE: runMkfsimg,
}

func init() {
	rootCmd.Flags().StringVarP(&outPath, "output", "o", "fs.img", "path to write the image to")
	rootCmd.Flags().StringSliceVarP(&deviceNames, "device", "d", nil, "name of a zero-length device entry to add (repeatable)")
}

func runMkfsimg(cmd *cobra.Command, args []string) error {
	entries := make([]fs.Entry, 0, len(args)+len(deviceNames))

	for _, name := range deviceNames {
		entries = append(entries, fs.Entry{Name: name, FileType: fs.FileTypeDevice})
	}

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		entries = append(entries, fs.Entry{
			Name:     filepath.Base(path),
			FileType: fs.FileTypeRegular,
			Data:     data,
		})
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer out.Close()

	if ferr := fs.WriteImage(out, entries); ferr != nil {
		return fmt.Errorf("writing image: %s", ferr.Message)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %d file(s), %d device(s)\n", outPath, len(args), len(deviceNames))
	return nil
}

// SetupCommands returns the configured root command; main's only job is to
// Execute it.
func SetupCommands() *cobra.Command {
	return rootCmd
}
