//go:build windows

package storage

import "os"

// WriteFileAtomic writes filename in place; rename over an open file is not
// reliable on Windows.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return os.WriteFile(filename, data, perm)
}
