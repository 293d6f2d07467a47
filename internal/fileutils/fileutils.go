// Package fileutils provides the file operations used by the expense store.
package fileutils

import (
	"fmt"
	"os"
	"path/filepath"
)

const dirPerm = 0750

// FileExists checks if a file exists and is not a directory.
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists.
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// HasContent reports whether filePath is an existing file of non-zero size.
func HasContent(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir() && info.Size() > 0
}

// EnsureParentDirectory creates the directory holding filePath if needed.
func EnsureParentDirectory(filePath string) error {
	dir := filepath.Dir(filePath)
	if dir == "" || dir == "." || DirectoryExists(dir) {
		return nil
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// OpenAppend opens filePath for appending, creating it and its parent
// directory when missing. The returned size is the file length before any
// write, which callers use to detect a newly created file.
func OpenAppend(filePath string, perm os.FileMode) (*os.File, int64, error) {
	if err := EnsureParentDirectory(filePath); err != nil {
		return nil, 0, err
	}
	file, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, perm)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open file for append: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, 0, fmt.Errorf("failed to stat file: %w", err)
	}
	return file, info.Size(), nil
}

// CreateFile creates or truncates a file for writing, creating its parent
// directory when missing.
func CreateFile(filePath string, perm os.FileMode) (*os.File, error) {
	if err := EnsureParentDirectory(filePath); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	return file, nil
}
