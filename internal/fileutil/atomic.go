// Package fileutil provides file system utilities.
package fileutil

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteAtomic streams output from write into filename atomically. write gets
// a buffered writer backed by a temporary file in the same directory; once it
// returns nil the file is synced and renamed over filename. Readers see either
// the previous file or the complete new one.
//
// If write fails, the temporary file is removed and filename is untouched.
func WriteAtomic(filename string, perm os.FileMode, write func(w io.Writer) error) error {
	// same directory keeps the rename on one filesystem
	dir := filepath.Dir(filename)
	base := filepath.Base(filename)

	tmpFile, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// tmpFile is nil once closed, committed once renamed
	committed := false
	defer func() {
		if tmpFile != nil {
			tmpFile.Close()
		}
		if !committed {
			os.Remove(tmpPath)
		}
	}()

	bw := bufio.NewWriter(tmpFile)
	if err := write(bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	err = tmpFile.Close()
	tmpFile = nil
	if err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, filename); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	committed = true
	return nil
}

// WriteFileAtomic is WriteAtomic for a byte slice.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return WriteAtomic(filename, perm, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}
