package platform

import (
	"os"
	"runtime"
)

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// MarkExecutable sets 0755 on the given file so it can be run directly.
// No-op on Windows, where executability comes from the file extension.
func MarkExecutable(path string) error {
	return Chmod(path, 0755)
}
