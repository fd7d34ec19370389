//go:build !windows

package storage

import (
	"os"

	"github.com/google/renameio/v2"
)

// WriteFileAtomic replaces filename through a temp file and rename, so
// readers never observe a partially written file.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	return renameio.WriteFile(filename, data, perm)
}
